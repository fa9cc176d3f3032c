package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Onboard(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Plan(ctx context.Context) error
	Tip(ctx context.Context) error
	Toggle(ctx context.Context, arg string) error
	Objectives(ctx context.Context, date string) error
	CheckIn(ctx context.Context) error
	Profile(ctx context.Context) error
	Goal(ctx context.Context) error
	Hobbies(ctx context.Context) error
	AddHobby(ctx context.Context) error
	Suggest(ctx context.Context) error
	Workout(ctx context.Context) error
}

const (
	helpGuest  = "Available commands: onboard, login, exit"
	helpMember = "Available commands: plan, tip, toggle <n>, objectives [date], checkin, profile, goal, hobbies, addhobby, suggest, workout, logout, exit"
)

// readLine reads one line from r without the trailing newline. A final line
// without newline is returned as is; io.EOF is returned only when nothing
// was read.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// runREPL starts a simple read-eval-print loop for the Momentum CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on a. Commands other than help, onboard, login and
// exit require a session. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are ignored here; the services have
// already reported them through the notifier.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("momentum %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if _, member := memberCommands[cmd]; member && !a.isLoggedIn() {
			printlnFn("Please log in first (login or onboard)")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpMember)
			} else {
				printlnFn(helpGuest)
			}

		case "onboard":
			_ = a.Onboard(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "plan":
			_ = a.Plan(ctx)

		case "tip":
			_ = a.Tip(ctx)

		case "toggle":
			if len(args) != 1 {
				printlnFn("Usage: toggle <n>")
				continue
			}
			_ = a.Toggle(ctx, args[0])

		case "objectives":
			date := ""
			if len(args) > 0 {
				date = args[0]
			}
			_ = a.Objectives(ctx, date)

		case "checkin":
			_ = a.CheckIn(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "goal":
			_ = a.Goal(ctx)

		case "hobbies":
			_ = a.Hobbies(ctx)

		case "addhobby":
			_ = a.AddHobby(ctx)

		case "suggest":
			_ = a.Suggest(ctx)

		case "workout":
			_ = a.Workout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// memberCommands require a session.
var memberCommands = map[string]struct{}{
	"logout": {}, "plan": {}, "tip": {}, "toggle": {}, "objectives": {}, "checkin": {},
	"profile": {}, "goal": {}, "hobbies": {}, "addhobby": {}, "suggest": {}, "workout": {},
}
