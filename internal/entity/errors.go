package entity

import (
	"errors"
	"fmt"
)

var (
	ErrNetwork           = errors.New("network error")
	ErrValidation        = errors.New("validation error")
	ErrGatewayLoad       = errors.New("payment gateway failed to load")
	ErrVerification      = errors.New("payment verification failed")
	ErrRender            = errors.New("document render failed")
	ErrNotFound          = errors.New("not found")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrAlreadyPaid       = errors.New("already paid")
	ErrPaymentInProgress = errors.New("payment already in progress")
	ErrNoCheckout        = errors.New("no open checkout")
	ErrStaleResponse     = errors.New("stale response")
)

// BackendError is a non-2xx answer of the tax backend.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: backend responded %d", ErrNetwork, e.StatusCode)
	}

	return fmt.Sprintf("%s: backend responded %d: %s", ErrNetwork, e.StatusCode, e.Message)
}

func (e *BackendError) Unwrap() error {
	return ErrNetwork
}

// BackendMessage returns the message the backend attached to err, if any.
func BackendMessage(err error) string {
	var be *BackendError
	if errors.As(err, &be) {
		return be.Message
	}

	return ""
}
