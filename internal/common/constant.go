// Package common contains shared constants and sentinel errors used across
// trip planner components.
package common

const (
	// AuthorizationHeaderName is the HTTP header that carries the session token.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the token in the Authorization header value.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName is echoed back by the server for log correlation.
	RequestIDHeaderName = "X-Request-Id"
)
