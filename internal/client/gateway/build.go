package gateway

import (
	"github.com/dmitrijs2005/tripplanner/internal/client/config"
	"github.com/dmitrijs2005/tripplanner/internal/client/session"
	"github.com/dmitrijs2005/tripplanner/internal/client/store"
	"github.com/dmitrijs2005/tripplanner/internal/client/transport"
	"github.com/dmitrijs2005/tripplanner/internal/logging"
)

// PolicyFromConfig applies the configured fallback switches to DefaultPolicy.
func PolicyFromConfig(cfg *config.Config) Policy {
	return DefaultPolicy().
		WithFallback(OpRegister, cfg.AuthFallback).
		WithFallback(OpLogin, cfg.AuthFallback).
		WithFallback(OpGenerate, cfg.GenerateFallback)
}

// FromConfig wires a gateway over cs. The transport is chosen here, once:
// the backend when an address is configured, otherwise the simulator. In
// remote mode the simulator stays available as the fallback.
func FromConfig(cfg *config.Config, cs *store.CredentialStore, logger logging.Logger) *Gateway {
	if logger == nil {
		logger = logging.Nop()
	}
	sess := session.New(cs, logger)
	sim := transport.NewSimulatedTransport(cs, logger)
	policy := PolicyFromConfig(cfg)

	if cfg.Simulated() {
		return New(sim, nil, sess, policy, logger)
	}
	remote := transport.NewRemoteTransport(cfg.BackendBaseAddr, sess, logger)
	return New(remote, sim, sess, policy, logger)
}
