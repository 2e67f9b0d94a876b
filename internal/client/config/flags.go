package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/tripplanner/internal/flagx"
)

// parseFlags applies the flags this package owns; everything else in args
// is ignored. Boolean flags take their value in the -flag=value form.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-s", "-l", "-auth-fallback", "-generate-fallback"})

	fs := flag.NewFlagSet("planner", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.BackendBaseAddr, "a", cfg.BackendBaseAddr, "backend base address (empty for local mode)")
	fs.StringVar(&cfg.StoragePath, "s", cfg.StoragePath, "path of the local credential database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.AuthFallback, "auth-fallback", cfg.AuthFallback, "use the simulator when login/register cannot reach the backend")
	fs.BoolVar(&cfg.GenerateFallback, "generate-fallback", cfg.GenerateFallback, "use the simulator when generation cannot reach the backend")

	return fs.Parse(args)
}
