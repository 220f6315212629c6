// api/errors/api_errors.go
package errors

import "errors"

var (
	ErrDatabaseOperation = errors.New("database operation failed")
	ErrInternalServer    = errors.New("internal server error")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidPagination = errors.New("invalid pagination parameters")
	ErrUpstreamFailure   = errors.New("upstream service failure")
)

// APIError carries an HTTP status alongside a client-safe message. Services
// return these when the controller mapping needs more than a sentinel.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *APIError) Unwrap() error { return e.Err }

func NewAPIError(status int, message string, err error) *APIError {
	return &APIError{Status: status, Message: message, Err: err}
}
