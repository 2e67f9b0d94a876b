package transport

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/tripplanner/internal/client/models"
	"github.com/dmitrijs2005/tripplanner/internal/itinerary"
	"github.com/dmitrijs2005/tripplanner/internal/logging"
)

// UserRegistry is the local list of simulated accounts; store.CredentialStore
// satisfies it.
type UserRegistry interface {
	LoadUsers(ctx context.Context) ([]models.UserRecord, error)
	UpdateUsers(ctx context.Context, fn func([]models.UserRecord) ([]models.UserRecord, error)) error
}

// SimulatedTransport answers every operation locally. Accounts are kept in
// the registry in plain text and the issued token is derived from the email
// alone, so it is only fit for offline demos.
type SimulatedTransport struct {
	users  UserRegistry
	logger logging.Logger
}

func NewSimulatedTransport(users UserRegistry, logger logging.Logger) *SimulatedTransport {
	if logger == nil {
		logger = logging.Nop()
	}
	return &SimulatedTransport{users: users, logger: logger.With("transport", "simulated")}
}

// SimulatedToken is the token the simulator issues for email.
func SimulatedToken(email string) string {
	return "mock-token-" + email
}

func (t *SimulatedTransport) Name() string { return "simulated" }

var errDuplicateUser = errors.New("duplicate user")

func (t *SimulatedTransport) Register(ctx context.Context, email, password string) (models.AuthResult, error) {
	err := t.users.UpdateUsers(ctx, func(users []models.UserRecord) ([]models.UserRecord, error) {
		if slices.ContainsFunc(users, func(u models.UserRecord) bool { return u.Email == email }) {
			return nil, errDuplicateUser
		}
		return append(users, models.UserRecord{Email: email, Password: password}), nil
	})
	if errors.Is(err, errDuplicateUser) {
		return models.AuthResult{Error: MsgUserExists}, nil
	}
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("simulated register: %w", err)
	}

	t.logger.Info(ctx, "user registered", "email", email)
	return models.AuthResult{Token: SimulatedToken(email)}, nil
}

func (t *SimulatedTransport) Login(ctx context.Context, email, password string) (models.AuthResult, error) {
	users, err := t.users.LoadUsers(ctx)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("simulated login: %w", err)
	}

	for _, u := range users {
		if u.Email == email && u.Password == password {
			return models.AuthResult{Token: SimulatedToken(email)}, nil
		}
	}
	return models.AuthResult{Error: MsgInvalidCredentials}, nil
}

func (t *SimulatedTransport) Generate(_ context.Context, req models.ItineraryRequest) (string, error) {
	return itinerary.Build(req.Destination, req.Days.Count()), nil
}

func (t *SimulatedTransport) Ping(context.Context) error { return nil }
