package api

import "errors"

var (
	// ErrUnauthorized maps 401/403 responses.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnavailable maps connectivity failures and 5xx responses.
	ErrUnavailable = errors.New("server unavailable")
)

// APIError carries the server-provided message for 4xx failures that are
// neither auth nor availability problems (validation errors and the like).
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// ErrorMessage extracts the human-readable message to show the user for any
// error produced by this package, falling back to the given default.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrUnavailable) {
		return err.Error()
	}
	return fallback
}
