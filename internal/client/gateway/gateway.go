// Package gateway is the single entry point the client uses for register,
// login, itinerary generation and logout. It hides which transport answers
// a call and keeps the session in step with authentication results.
package gateway

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tripplanner/internal/client/models"
	"github.com/dmitrijs2005/tripplanner/internal/client/session"
	"github.com/dmitrijs2005/tripplanner/internal/client/transport"
	"github.com/dmitrijs2005/tripplanner/internal/logging"
)

type Gateway struct {
	primary  transport.Transport
	fallback transport.Transport
	session  *session.Session
	policy   Policy
	logger   logging.Logger
}

// New builds a gateway. fallback may be nil, or the same transport as
// primary, when there is nothing to fall back to.
func New(primary, fallback transport.Transport, s *session.Session, policy Policy, logger logging.Logger) *Gateway {
	if logger == nil {
		logger = logging.Nop()
	}
	if fallback == primary {
		fallback = nil
	}
	return &Gateway{
		primary:  primary,
		fallback: fallback,
		session:  s,
		policy:   policy,
		logger:   logger.With("component", "gateway", "mode", primary.Name()),
	}
}

// Mode is the name of the primary transport.
func (g *Gateway) Mode() string {
	return g.primary.Name()
}

func (g *Gateway) Register(ctx context.Context, email, password string) (models.AuthResult, error) {
	if email == "" || password == "" {
		return models.AuthResult{}, fmt.Errorf("%w: email and password are required", ErrMissingField)
	}
	return g.authenticate(ctx, OpRegister, func(t transport.Transport) (models.AuthResult, error) {
		return t.Register(ctx, email, password)
	})
}

func (g *Gateway) Login(ctx context.Context, email, password string) (models.AuthResult, error) {
	if email == "" || password == "" {
		return models.AuthResult{}, fmt.Errorf("%w: email and password are required", ErrMissingField)
	}
	return g.authenticate(ctx, OpLogin, func(t transport.Transport) (models.AuthResult, error) {
		return t.Login(ctx, email, password)
	})
}

// authenticate runs an auth call. A token starts the session; a rejection
// is returned as is and leaves the session alone.
func (g *Gateway) authenticate(ctx context.Context, op Operation, call func(transport.Transport) (models.AuthResult, error)) (models.AuthResult, error) {
	res, err := invoke(ctx, g, op, call)
	if err != nil {
		g.logger.Error(ctx, "authentication failed", "op", op, "error", err)
		return models.AuthResult{}, fmt.Errorf("%w: %s: %w", ErrAuthFailed, op, err)
	}
	if res.Rejected() {
		g.logger.Info(ctx, "authentication rejected", "op", op, "reason", res.Error)
		return res, nil
	}

	if err := g.session.Begin(ctx, res.Token); err != nil {
		g.logger.Error(ctx, "store session", "op", op, "error", err)
		return models.AuthResult{}, fmt.Errorf("%w: %s: %w", ErrAuthFailed, op, err)
	}
	return res, nil
}

// GenerateItinerary asks for a plan of days for destination. days is passed
// through as typed; the simulator coerces it.
func (g *Gateway) GenerateItinerary(ctx context.Context, destination, days string) (string, error) {
	if destination == "" || days == "" {
		return "", fmt.Errorf("%w: destination and days are required", ErrMissingField)
	}
	req := models.ItineraryRequest{Destination: destination, Days: models.Days(days)}

	text, err := invoke(ctx, g, OpGenerate, func(t transport.Transport) (string, error) {
		return t.Generate(ctx, req)
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerateFailed, err)
	}
	return text, nil
}

// Logout ends the session. Storage failures are logged, not returned.
func (g *Gateway) Logout(ctx context.Context) {
	if err := g.session.End(ctx); err != nil {
		g.logger.Error(ctx, "logout", "error", err)
	}
}

func (g *Gateway) CurrentToken(ctx context.Context) (string, bool) {
	return g.session.Token(ctx)
}

// Ping checks the primary transport.
func (g *Gateway) Ping(ctx context.Context) error {
	return g.primary.Ping(ctx)
}

// invoke calls the primary transport and, when it fails and the policy allows
// it for op, the fallback.
func invoke[T any](ctx context.Context, g *Gateway, op Operation, call func(transport.Transport) (T, error)) (T, error) {
	res, err := call(g.primary)
	if err == nil {
		return res, nil
	}
	if g.fallback == nil || !g.policy.Fallback(op) || ctx.Err() != nil {
		return res, err
	}

	g.logger.Warn(ctx, "primary transport failed, using fallback",
		"op", op, "fallback", g.fallback.Name(), "error", err)
	return call(g.fallback)
}
