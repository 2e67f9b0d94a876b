package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/tripplanner/internal/client/config"
	"github.com/dmitrijs2005/tripplanner/internal/client/gateway"
	"github.com/dmitrijs2005/tripplanner/internal/client/models"
	"github.com/dmitrijs2005/tripplanner/internal/client/store"
	"github.com/dmitrijs2005/tripplanner/internal/itinerary"
	"github.com/dmitrijs2005/tripplanner/internal/logging"
)

// Gateway is the part of *gateway.Gateway the CLI drives.
type Gateway interface {
	Register(ctx context.Context, email, password string) (models.AuthResult, error)
	Login(ctx context.Context, email, password string) (models.AuthResult, error)
	GenerateItinerary(ctx context.Context, destination, days string) (string, error)
	Logout(ctx context.Context)
	CurrentToken(ctx context.Context) (string, bool)
	Ping(ctx context.Context) error
	Mode() string
}

type App struct {
	config  *config.Config
	gateway Gateway
	closer  io.Closer
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer

	loggedIn bool
	userName string

	lastDestination string
	lastPlan        []itinerary.DayBlock
}

// NewApp opens the credential store named in c and wires the gateway over it.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewTextLogger(os.Stderr, c.LogLevel)

	cs, err := store.Open(ctx, c.StoragePath, logger)
	if err != nil {
		return nil, fmt.Errorf("open credential store: %w", err)
	}

	gw := gateway.FromConfig(c, cs, logger)
	return newApp(c, gw, cs, logger, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, gw Gateway, closer io.Closer, logger logging.Logger, in io.Reader, out io.Writer) *App {
	if logger == nil {
		logger = logging.Nop()
	}
	return &App{
		config:  c,
		gateway: gw,
		closer:  closer,
		logger:  logger,
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

// Run shows the gate and serves commands until exit.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if a.closer != nil {
			if err := a.closer.Close(); err != nil {
				a.logger.Error(ctx, "close credential store", "error", err)
			}
		}
	}()

	a.refreshLogin(ctx)
	a.println(fmt.Sprintf("Trip planner (%s mode), type 'help' for commands", a.gateway.Mode()))
	if a.loggedIn {
		a.println("Welcome back, your session is still active.")
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
	return nil
}

// refreshLogin derives the gate state from the stored session.
func (a *App) refreshLogin(ctx context.Context) {
	_, a.loggedIn = a.gateway.CurrentToken(ctx)
	if !a.loggedIn {
		a.userName = ""
	}
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

func (a *App) getStatus() string {
	if !a.loggedIn {
		return ""
	}
	if a.userName != "" {
		return "(" + a.userName + ")"
	}
	return "(logged in)"
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
