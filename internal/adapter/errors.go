package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport matches every failure of the exchange itself: no
	// response at all, or a response with a non-2xx status.
	ErrTransport = errors.New("transport failure")

	// ErrNetwork means no response was received (connection refused,
	// timeout, cancelled context).
	ErrNetwork = fmt.Errorf("%w: server unreachable", ErrTransport)

	// ErrHTTPStatus means the backend answered with a non-2xx status and no
	// error envelope.
	ErrHTTPStatus = fmt.Errorf("%w: unexpected http status", ErrTransport)

	ErrBadRequest          = fmt.Errorf("%w: bad request", ErrHTTPStatus)
	ErrNotFound            = fmt.Errorf("%w: not found", ErrHTTPStatus)
	ErrInternalServerError = fmt.Errorf("%w: internal server error", ErrHTTPStatus)
	ErrBadGateway          = fmt.Errorf("%w: bad gateway", ErrHTTPStatus)
	ErrServiceUnavailable  = fmt.Errorf("%w: service unavailable", ErrHTTPStatus)

	// ErrProtocol means a 2xx response whose body is not the expected JSON.
	ErrProtocol = errors.New("malformed response payload")

	// ErrBackendReported is matched by every [*BackendError].
	ErrBackendReported = errors.New("backend reported error")
)

// BackendError is returned when the backend explicitly answered with
// {"status":"error"}. Message is the backend's own explanation.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend reported error (http %d)", e.StatusCode)
	}
	return e.Message
}

// Is makes errors.Is(err, ErrBackendReported) true for any *BackendError.
func (e *BackendError) Is(target error) bool {
	return target == ErrBackendReported
}
