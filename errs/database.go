package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
)

var (
	ErrUniqueConstraintViolation = errors.New("unique constraint violation")
	ErrForeignKeyConstraint      = errors.New("foreign key constraint violation")
	ErrCheckConstraint           = errors.New("check constraint violation")
	ErrSingletonViolation        = errors.New("singleton violation")
)

// NewDatabaseError creates a new database error with details about the operation
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	if cause == nil {
		return &ApiErr{StatusCode: http.StatusInternalServerError, err: ErrDatabaseQuery, Details: details}
	}

	var apiErr *ApiErr
	if errors.As(cause, &apiErr) {
		return apiErr
	}

	errStr := strings.ToLower(cause.Error())
	switch {
	case errors.Is(cause, models.ErrAboutMeExists):
		return &ApiErr{
			StatusCode: http.StatusConflict,
			err:        fmt.Errorf("%w: %w", ErrSingletonViolation, models.ErrAboutMeExists),
			Details:    details,
			Cause:      cause,
		}
	case errors.Is(cause, models.ErrAboutMeUndeletable):
		return &ApiErr{
			StatusCode: http.StatusMethodNotAllowed,
			err:        fmt.Errorf("%w: %w", ErrSingletonViolation, models.ErrAboutMeUndeletable),
			Details:    details,
			Cause:      cause,
		}
	case errors.Is(cause, gorm.ErrRecordNotFound), strings.Contains(errStr, "record not found"):
		return &ApiErr{
			StatusCode: http.StatusNotFound,
			err:        fmt.Errorf("%s %w", entity, ErrNotFound),
			Details:    details,
			Cause:      cause,
		}
	case errors.Is(cause, gorm.ErrDuplicatedKey),
		strings.Contains(errStr, "duplicate key"),
		strings.Contains(errStr, "unique constraint failed"):
		return &ApiErr{
			StatusCode: http.StatusConflict,
			err:        fmt.Errorf("%s %w: %w", entity, ErrAlreadyExists, ErrUniqueConstraintViolation),
			Details:    details,
			Cause:      cause,
		}
	case errors.Is(cause, gorm.ErrForeignKeyViolated), strings.Contains(errStr, "foreign key constraint"):
		return &ApiErr{
			StatusCode: http.StatusBadRequest,
			err:        fmt.Errorf("invalid reference in %s: %w", entity, ErrForeignKeyConstraint),
			Details:    "The referenced resource does not exist or cannot be linked",
			Cause:      cause,
		}
	case strings.Contains(errStr, "check constraint"):
		return &ApiErr{
			StatusCode: http.StatusBadRequest,
			err:        fmt.Errorf("invalid value in %s: %w", entity, ErrCheckConstraint),
			Details:    details,
			Cause:      cause,
		}
	case strings.Contains(errStr, "connection refused"), strings.Contains(errStr, "database is closed"):
		return &ApiErr{
			StatusCode: http.StatusServiceUnavailable,
			err:        ErrDatabaseConnection,
			Details:    "Unable to connect to database",
			Cause:      cause,
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Details:    details,
		Cause:      cause,
	}
}

func IsUniqueConstraintViolationError(err error) bool {
	return errors.Is(err, ErrUniqueConstraintViolation)
}

func IsForeignKeyConstraintError(err error) bool {
	return errors.Is(err, ErrForeignKeyConstraint)
}

func IsSingletonViolation(err error) bool {
	return errors.Is(err, ErrSingletonViolation)
}
