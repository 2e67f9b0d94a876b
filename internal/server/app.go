// Package server wires the reference backend: storage selection, the account
// service, and the HTTP API with signal-driven graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/tripplanner/internal/logging"
	"github.com/dmitrijs2005/tripplanner/internal/server/config"
	"github.com/dmitrijs2005/tripplanner/internal/server/httpserver"
	"github.com/dmitrijs2005/tripplanner/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tripplanner/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      *logging.ZapLogger
	repos       repomanager.RepositoryManager
	userService *services.UserService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.NewProductionZapLogger(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	repos, err := repomanager.New(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	storage := "memory"
	if c.DatabaseDSN != "" {
		storage = "postgres"
	}
	logger.Info(ctx, "storage ready", "storage", storage)

	return &App{
		config:      c,
		logger:      logger,
		repos:       repos,
		userService: services.NewUserService(repos.Users(), c),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until a termination signal arrives or the server fails, then
// releases storage and flushes the logger.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	s := httpserver.NewServer(app.config.Addr, app.logger, app.userService, app.config.ShutdownTimeout)
	runErr := s.Run(ctx)
	if runErr != nil {
		app.logger.Error(ctx, "server stopped", "error", runErr)
	}

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "close storage", "error", err)
	}
	_ = app.logger.Sync()

	return runErr
}
