package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Dreams(ctx context.Context, args []string) error
	Goals(ctx context.Context, args []string) error
	Ideas(ctx context.Context, args []string) error
	Sleep(ctx context.Context, args []string) error
	Overview(ctx context.Context) error
	Insights(ctx context.Context) error
	Brainstorm(ctx context.Context) error
	AIStatus(ctx context.Context) error
}

// runREPL starts a read–eval–print loop for the Dreamcatcher CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Resource commands take a
// subcommand ("dreams list", "goals add"); the rest of the line is passed
// through as arguments. Unknown commands are reported back to the user.
// The loop exits on scanner EOF or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers
// report their own errors. This keeps the REPL loop resilient and focused
// on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("dc %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dreams, goals, ideas, sleep, overview, insights, brainstorm, aistatus, whoami, logout, exit")
				printlnFn("Resource commands take a subcommand: list, show, add, edit, delete (dreams also interpret; goals also suggest, categories, statuses)")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "dreams":
			_ = a.Dreams(ctx, args)

		case "goals":
			_ = a.Goals(ctx, args)

		case "ideas":
			_ = a.Ideas(ctx, args)

		case "sleep":
			_ = a.Sleep(ctx, args)

		case "overview":
			_ = a.Overview(ctx)

		case "insights":
			_ = a.Insights(ctx)

		case "brainstorm":
			_ = a.Brainstorm(ctx)

		case "aistatus":
			_ = a.AIStatus(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
