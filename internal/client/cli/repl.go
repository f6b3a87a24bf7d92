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
	isLoggedIn(ctx context.Context) bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Get(ctx context.Context, path string) error
	Health(ctx context.Context) error
	Stats(ctx context.Context) error
	Recs(ctx context.Context, text string) error
}

// runREPL starts a simple read-eval-print loop.
//
// It reads a line from reader, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits at end of input, on context cancellation
// or when the user types "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help           show available commands
//	  - login          authenticate
//	  - health, stats  backend status
//	  - recs [text]    render recommendation text
//	  - exit | quit    leave the program
//
//	Logged in, additionally:
//	  - whoami         show the stored identity
//	  - (d)ashboard    show the dashboard for the role
//	  - get <path>     print any API path, e.g. get /teachers/1/students
//	  - logout         clear the session
//
// Errors returned by command handlers are not printed here. API failures
// are already shown by the notifier and handlers report their own input
// problems.
//
// Commands that prompt for more input read from the same reader, so the
// loop must not buffer ahead of them.
func runREPL(ctx context.Context, a execIface, statusFn func(context.Context) string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(strings.TrimSpace(fmt.Sprintf("dropwatch %s", statusFn(ctx))) + "> ")
		line, err := reader.ReadString('\n')
		if line == "" && err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: whoami, (d)ashboard, get <path>, health, stats, recs [text], logout, exit")
			} else {
				printlnFn("Available commands: login, health, stats, recs [text], exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "d", "dashboard":
			_ = a.Dashboard(ctx)

		case "get":
			if len(args) == 0 {
				printlnFn("Usage: get <path>")
				continue
			}
			_ = a.Get(ctx, args[0])

		case "health":
			_ = a.Health(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "recs":
			_ = a.Recs(ctx, strings.Join(args, " "))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
