package cli

import (
	"context"
	"fmt"
)

// Status prints the transport mode, backend reachability and session state.
func (a *App) Status(ctx context.Context) error {
	mode := a.gateway.Mode()
	a.println("Mode:    " + mode)
	if a.config != nil && a.config.BackendBaseAddr != "" {
		a.println("Backend: " + a.config.BackendBaseAddr)
	}

	if err := a.gateway.Ping(ctx); err != nil {
		a.logger.Debug(ctx, "ping failed", "error", err)
		a.println("Reachable: no")
	} else {
		a.println("Reachable: yes")
	}

	a.refreshLogin(ctx)
	switch {
	case a.loggedIn && a.userName != "":
		a.println(fmt.Sprintf("Session: logged in as %s", a.userName))
	case a.loggedIn:
		a.println("Session: logged in")
	default:
		a.println("Session: anonymous")
	}
	return nil
}
