package transport

import "errors"

var (
	ErrUnavailable       = errors.New("backend unavailable")
	ErrMalformedResponse = errors.New("malformed backend response")
)

// Rejection messages produced by the simulator. The backend uses the same texts.
const (
	MsgUserExists         = "User exists"
	MsgInvalidCredentials = "Invalid credentials"
)
