package flight

import (
	"fmt"
	"net/http"
)

// AppError carries the HTTP status and machine-readable code for an error so
// the handler can map it without inspecting messages. Err keeps the underlying
// cause for logs; it is never rendered to the caller.
type AppError struct {
	Status  int
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewInvalidDateError marks a date string that failed to parse. Client fault.
func NewInvalidDateError(err error) *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Code:    ErrorCodeInvalidDate,
		Message: err.Error(),
		Err:     err,
	}
}

// NewInvalidQueryError marks parsed dates that violate the ordering or
// future-date rules. Client fault.
func NewInvalidQueryError(msg string) *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Code:    ErrorCodeInvalidQuery,
		Message: msg,
	}
}

// NewUpstreamUnavailableError wraps any provider failure behind one fixed
// message; the upstream cause must not leak to the caller.
func NewUpstreamUnavailableError(err error) *AppError {
	return &AppError{
		Status:  http.StatusBadGateway,
		Code:    ErrorCodeUpstreamUnavailable,
		Message: "Flight data service is not available",
		Err:     err,
	}
}

// NewDiscountRateExceededError signals a discount rate above the cap. This is
// a programming-contract violation, not a client fault.
func NewDiscountRateExceededError(rate float64) *AppError {
	return &AppError{
		Status:  http.StatusInternalServerError,
		Code:    ErrorCodeDiscountRateExceeded,
		Message: fmt.Sprintf("discount rate %.2f exceeds maximum %.2f", rate, MaxDiscountRate),
	}
}
