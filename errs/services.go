package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrConfigInvalid = errors.New("configuration invalid")
	ErrMailDelivery  = errors.New("mail delivery failed")
	ErrStorage       = errors.New("storage write failed")
)

// NewConfigError reports a setting that is missing or unusable at startup.
func NewConfigError(setting string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrConfigInvalid,
		Details:    "Invalid configuration: " + setting,
		Cause:      cause,
		Field:      setting,
	}
}

// NewMailDeliveryError wraps a failed send. Form handlers never surface it to
// the submitter; it only reaches logs and the test-email command.
func NewMailDeliveryError(transport string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrMailDelivery,
		Details:    fmt.Sprintf("Mail delivery through %s failed", transport),
		Cause:      cause,
	}
}

func NewStorageError(backend string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrStorage,
		Details:    fmt.Sprintf("Writing media to %s failed", backend),
		Cause:      cause,
	}
}

func IsConfigError(err error) bool {
	return errors.Is(err, ErrConfigInvalid)
}

func IsMailDeliveryError(err error) bool {
	return errors.Is(err, ErrMailDelivery)
}
