package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface runREPL needs. App satisfies it; tests
// use a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Plan(ctx context.Context) error
	Day(ctx context.Context, arg string) error
	Status(ctx context.Context) error
	Logout(ctx context.Context) error
}

const (
	helpAnonymous     = "Available commands: register, login, status, exit"
	helpAuthenticated = "Available commands: plan, day <n>, status, logout, exit"
)

// runREPL reads one command per line from r and dispatches it to a. The
// commands offered depend on whether a is logged in. The loop ends on "exit",
// "quit" or end of input. Command errors are reported and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "planner%s> ", prefixSpace(statusFn()))

		line, err := r.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch {
		case cmd == "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpAuthenticated)
			} else {
				fmt.Fprintln(w, helpAnonymous)
			}

		case cmd == "exit" || cmd == "quit":
			fmt.Fprintln(w, "Bye!")
			return

		case cmd == "status":
			cmdErr = a.Status(ctx)

		case !a.isLoggedIn() && cmd == "register":
			cmdErr = a.Register(ctx)

		case !a.isLoggedIn() && cmd == "login":
			cmdErr = a.Login(ctx)

		case a.isLoggedIn() && cmd == "plan":
			cmdErr = a.Plan(ctx)

		case a.isLoggedIn() && cmd == "day":
			cmdErr = a.Day(ctx, strings.Join(args, " "))

		case a.isLoggedIn() && cmd == "logout":
			cmdErr = a.Logout(ctx)

		case isGated(cmd):
			if a.isLoggedIn() {
				fmt.Fprintln(w, "You are logged in; use logout first.")
			} else {
				fmt.Fprintln(w, "Please register or login first.")
			}

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			fmt.Fprintln(w, "Error:", cmdErr)
		}
	}
}

func isGated(cmd string) bool {
	switch cmd {
	case "register", "login", "plan", "day", "logout":
		return true
	}
	return false
}

func prefixSpace(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}
