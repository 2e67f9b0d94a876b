package gateway

import "errors"

// AuthFailedMessage is what users see when authentication could not be
// carried out at all.
const AuthFailedMessage = "Auth failed"

var (
	ErrAuthFailed     = errors.New("auth failed")
	ErrGenerateFailed = errors.New("itinerary generation failed")
	ErrMissingField   = errors.New("missing required field")
)
