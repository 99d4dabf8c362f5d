package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler     projectHandler
	skillHandler       skillHandler
	testimonialHandler testimonialHandler
	profileHandler     profileHandler
	formHandler        formHandler
	adminAuthHandler   adminAuthHandler
	adminIndexHandler  adminIndexHandler
	mediaHandler       mediaHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Not found"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"page_size"`
	Details string `json:"details,omitempty" example:"Additional error details"`
}

// HealthResponse reports liveness and uptime.
type HealthResponse struct {
	Status    string `json:"status" example:"ok"`
	StartedAt string `json:"started_at"`
	Uptime    string `json:"uptime"`
}
