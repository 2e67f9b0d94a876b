// Package session owns the client's authentication state. The token itself
// lives in the credential store so a session survives restarts.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tripplanner/internal/logging"
)

type State string

const (
	Anonymous     State = "anonymous"
	Authenticated State = "authenticated"
)

var ErrEmptyToken = errors.New("session token is empty")

// TokenStore is the persistence the session needs; store.CredentialStore
// satisfies it.
type TokenStore interface {
	GetToken(ctx context.Context) (string, bool, error)
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

type Session struct {
	store  TokenStore
	logger logging.Logger
}

func New(store TokenStore, logger logging.Logger) *Session {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Session{store: store, logger: logger.With("component", "session")}
}

// Token returns the active token. A store that cannot be read counts as no
// session; the failure is logged.
func (s *Session) Token(ctx context.Context) (string, bool) {
	token, ok, err := s.store.GetToken(ctx)
	if err != nil {
		s.logger.Error(ctx, "read session token", "error", err)
		return "", false
	}
	return token, ok
}

func (s *Session) State(ctx context.Context) State {
	if _, ok := s.Token(ctx); ok {
		return Authenticated
	}
	return Anonymous
}

// Begin stores token as the active session, replacing any previous one.
func (s *Session) Begin(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	if err := s.store.SetToken(ctx, token); err != nil {
		return fmt.Errorf("begin session: %w", err)
	}
	s.logger.Debug(ctx, "session started")
	return nil
}

// End forgets the active token. Ending an anonymous session is a no-op.
func (s *Session) End(ctx context.Context) error {
	if err := s.store.ClearToken(ctx); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	s.logger.Debug(ctx, "session ended")
	return nil
}
