package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type credentialsRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type generateRequest struct {
	Destination string   `json:"destination" validate:"required"`
	Days        flexDays `json:"days"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type itineraryResponse struct {
	Itinerary string `json:"itinerary"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// flexDays accepts the trip length as a JSON string or number and keeps
// its textual form for itinerary.CoerceDays.
type flexDays string

func (d *flexDays) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*d = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*d = flexDays(s)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("days: %w", err)
		}
		*d = flexDays(n.String())
	}
	return nil
}
