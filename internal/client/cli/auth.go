package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/tripplanner/internal/client/gateway"
	"github.com/dmitrijs2005/tripplanner/internal/client/models"
	"github.com/dmitrijs2005/tripplanner/internal/common"
)

// getSimpleText and getPassword are indirections used in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Register prompts for email and password and creates an account. On
// success the user is logged in straight away.
func (a *App) Register(ctx context.Context) error {
	return a.authenticate(ctx, "Registered", a.gateway.Register)
}

// Login prompts for credentials and opens a session.
func (a *App) Login(ctx context.Context) error {
	return a.authenticate(ctx, "Logged in", a.gateway.Login)
}

func (a *App) authenticate(ctx context.Context, verb string, call func(ctx context.Context, email, password string) (models.AuthResult, error)) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := call(ctx, email, string(password))
	switch {
	case errors.Is(err, gateway.ErrMissingField):
		a.println("Email and password are required.")
		return nil
	case err != nil:
		a.logger.Error(ctx, "authentication", "error", err)
		a.println(gateway.AuthFailedMessage)
		return nil
	case res.Rejected():
		a.println(res.Error)
		return nil
	}

	a.loggedIn = true
	a.userName = email
	a.println(verb + " as " + email + ".")
	return nil
}

// Logout ends the session and closes the gate.
func (a *App) Logout(ctx context.Context) error {
	a.gateway.Logout(ctx)
	a.lastPlan, a.lastDestination = nil, ""
	a.refreshLogin(ctx)
	if a.loggedIn {
		a.println("Logout could not clear the stored session.")
		return nil
	}
	a.println("Logged out.")
	return nil
}
