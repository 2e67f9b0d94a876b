// Package models holds the value types passed between the client layers.
package models

import "github.com/dmitrijs2005/tripplanner/internal/itinerary"

// UserRecord is an entry of the local simulated user registry.
type UserRecord struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is the normalized answer to register and login. Exactly one of
// Token and Error is set on a well-formed result.
type AuthResult struct {
	Token string `json:"token,omitempty"`
	Error string `json:"error,omitempty"`
}

// Rejected reports whether the backend refused the request.
func (r AuthResult) Rejected() bool {
	return r.Error != ""
}

// Days is the trip length exactly as the user typed it.
type Days string

// Count is the usable number of days, see itinerary.CoerceDays.
func (d Days) Count() int {
	return itinerary.CoerceDays(string(d))
}

type ItineraryRequest struct {
	Destination string `json:"destination"`
	Days        Days   `json:"days"`
}
