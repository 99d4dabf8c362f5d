package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/validation"
)

const (
	maxFormBodyBytes   = 1 << 20
	invalidFormMessage = "Invalid form data. Please check your inputs."
)

// formNotifier sends the mails that follow an accepted submission and reports
// whether the operator was notified.
type formNotifier interface {
	ServiceRequestReceived(ctx context.Context, r *models.ServiceRequest) bool
	ContactMessageReceived(ctx context.Context, m *models.ContactMessage) bool
}

type formHandler struct {
	responder          Responder
	logger             zerolog.Logger
	serviceRequestRepo *database.ServiceRequestRepo
	contactMessageRepo *database.ContactMessageRepo
	notifier           formNotifier
	serializer         serializer
}

func newFormHandler(
	serviceRequestRepo *database.ServiceRequestRepo,
	contactMessageRepo *database.ContactMessageRepo,
	notifier formNotifier,
	s serializer,
) formHandler {
	logger := log.With().Str("handlerName", "formHandler").Logger()
	return formHandler{
		responder:          NewResponder(logger),
		logger:             logger,
		serviceRequestRepo: serviceRequestRepo,
		contactMessageRepo: contactMessageRepo,
		notifier:           notifier,
		serializer:         s,
	}
}

// FormResponse is the envelope shared by both form endpoints.
type FormResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	EmailSent *bool             `json:"email_sent,omitempty"`
	Data      any               `json:"data,omitempty"`
	Errors    validation.Errors `json:"errors,omitempty"`
	Error     string            `json:"error,omitempty"`
}

// submitServiceRequest stores a service request, then notifies the operator
// and confirms to the submitter
// @Summary Submit service request
// @Tags Forms
// @Accept json
// @Produce json
// @Success 201 {object} FormResponse
// @Failure 400 {object} FormResponse "Invalid form data"
// @Failure 500 {object} FormResponse "Failed to store the request"
// @Router /api/service-request [post]
func (h formHandler) submitServiceRequest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ServiceRequest
		if fieldErrs := decodeForm(w, r, &req); fieldErrs != nil {
			h.writeInvalid(w, fieldErrs)
			return
		}

		// Status and timestamps are not client writable.
		req.ID = 0
		req.SetDefaults()
		req.SubmittedAt, req.UpdatedAt = time.Time{}, time.Time{}

		fieldErrs := validation.Struct(&req)
		if !req.AgreeToTerms {
			if fieldErrs == nil {
				fieldErrs = validation.Errors{}
			}
			fieldErrs.Add("agree_to_terms", "You must agree to the terms and conditions.")
		}
		if fieldErrs != nil {
			h.writeInvalid(w, fieldErrs)
			return
		}

		if err := h.serviceRequestRepo.Add(r.Context(), &req); err != nil {
			h.logger.Error().Err(err).Str("requestID", ctxGetRequestID(r.Context())).Msg("Error processing service request")
			h.responder.WriteJSONStatus(w, http.StatusInternalServerError, FormResponse{
				Message: "Failed to process your request. Please try again.",
				Error:   err.Error(),
			})
			return
		}

		emailSent := h.notifier.ServiceRequestReceived(r.Context(), &req)
		h.responder.WriteJSONStatus(w, http.StatusCreated, FormResponse{
			Success:   true,
			Message:   "Service request submitted successfully!",
			EmailSent: &emailSent,
			Data:      h.serializer.serviceRequest(&req),
		})
	}
}

// submitContactMessage stores a contact message, then notifies the operator
// and confirms to the submitter
// @Summary Submit contact message
// @Tags Forms
// @Accept json
// @Produce json
// @Success 201 {object} FormResponse
// @Failure 400 {object} FormResponse "Invalid form data"
// @Failure 500 {object} FormResponse "Failed to store the message"
// @Router /api/contact-message [post]
func (h formHandler) submitContactMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg models.ContactMessage
		if fieldErrs := decodeForm(w, r, &msg); fieldErrs != nil {
			h.writeInvalid(w, fieldErrs)
			return
		}

		msg.ID = 0
		msg.SetDefaults()
		msg.SubmittedAt, msg.UpdatedAt = time.Time{}, time.Time{}

		if fieldErrs := validation.Struct(&msg); fieldErrs != nil {
			h.writeInvalid(w, fieldErrs)
			return
		}

		if err := h.contactMessageRepo.Add(r.Context(), &msg); err != nil {
			h.logger.Error().Err(err).Str("requestID", ctxGetRequestID(r.Context())).Msg("Error processing contact message")
			h.responder.WriteJSONStatus(w, http.StatusInternalServerError, FormResponse{
				Message: "Failed to process your message. Please try again.",
				Error:   err.Error(),
			})
			return
		}

		emailSent := h.notifier.ContactMessageReceived(r.Context(), &msg)
		h.responder.WriteJSONStatus(w, http.StatusCreated, FormResponse{
			Success:   true,
			Message:   "Your message has been sent successfully!",
			EmailSent: &emailSent,
			Data:      h.serializer.contactMessage(&msg),
		})
	}
}

func (h formHandler) writeInvalid(w http.ResponseWriter, fieldErrs validation.Errors) {
	h.responder.WriteJSONStatus(w, http.StatusBadRequest, FormResponse{
		Message: invalidFormMessage,
		Errors:  fieldErrs,
	})
}

// decodeForm reads a JSON body into dst. Decoding problems are reported in the
// same per-field shape as validation failures.
func decodeForm(w http.ResponseWriter, r *http.Request, dst any) validation.Errors {
	body := http.MaxBytesReader(w, r.Body, maxFormBodyBytes)
	err := json.NewDecoder(body).Decode(dst)
	if err == nil {
		return nil
	}

	out := validation.Errors{}
	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		out.Add(typeErr.Field, typeMessage(typeErr.Type.Kind()))
	case errors.As(err, &maxErr):
		out.Add("non_field_errors", "Request body too large.")
	case errors.Is(err, io.EOF):
		out.Add("non_field_errors", "No data provided.")
	default:
		out.Add("non_field_errors", "JSON parse error - "+strings.TrimPrefix(err.Error(), "json: "))
	}
	return out
}

func typeMessage(kind reflect.Kind) string {
	switch kind {
	case reflect.Bool:
		return "Must be a valid boolean."
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "A valid integer is required."
	case reflect.String:
		return "Not a valid string."
	default:
		return "Incorrect type."
	}
}
