// Package utils provides general-purpose helper utilities used across the
// launcher client: request-scoped context values, the resty-based HTTP
// client, request ID generation and JSON response helpers.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey is the key used to store a request ID in the context.
var RequestIDCtxKey = contextKey("requestID")

// WithRequestID returns a copy of ctx carrying id. Outbound requests made
// with that context reuse the ID instead of generating a new one.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// RequestIDFromContext retrieves the request ID from the context.
//
// Returns ok == false when the value is missing, empty or has an unexpected
// type.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}
