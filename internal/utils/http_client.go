package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// RequestIDHeader is the header every outbound launcher request carries so
// client and backend log lines can be correlated.
const RequestIDHeader = "X-Request-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://127.0.0.1:5000", 10*time.Second)
//	resp, err := client.R().Get("/api/versions")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL. A non-positive
// timeout leaves resty's default (no timeout) in place.
//
// Every request gets an X-Request-ID header: the one stored in the request
// context via [WithRequestID] if present, otherwise a freshly generated ID.
// Retries are disabled; callers decide what to do with a failed exchange.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0).
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if req.Header.Get(RequestIDHeader) != "" {
				return nil
			}
			id, ok := RequestIDFromContext(req.Context())
			if !ok {
				id = NewRequestID()
			}
			req.SetHeader(RequestIDHeader, id)
			return nil
		})

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
