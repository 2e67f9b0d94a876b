// Package transport implements the two ways the client can answer a request:
// over HTTP against the planner backend, or in-process against the local
// user registry.
package transport

import (
	"context"

	"github.com/dmitrijs2005/tripplanner/internal/client/models"
)

// Backend paths. The simulator answers the same operations.
const (
	PathRegister = "/auth/register"
	PathLogin    = "/auth/login"
	PathGenerate = "/generate"
	PathPing     = "/ping"
)

// Transport is one implementation of the backend contract.
//
// Register and Login report domain rejections through AuthResult.Error and
// return a non-nil error only when the request itself failed.
type Transport interface {
	Register(ctx context.Context, email, password string) (models.AuthResult, error)
	Login(ctx context.Context, email, password string) (models.AuthResult, error)
	Generate(ctx context.Context, req models.ItineraryRequest) (string, error)
	Ping(ctx context.Context) error
	Name() string
}

// TokenSource yields the bearer token for authenticated calls.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
