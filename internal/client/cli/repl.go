package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/CarlosParra69/Citas-sub001/internal/client/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(args ...any) { fmt.Println(args...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	role() models.Role
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Appointments(ctx context.Context) error
	AddPatient(ctx context.Context) error
	Activity(ctx context.Context) error
	AvatarSet(ctx context.Context) error
	AvatarShow(ctx context.Context) error
	AvatarDelete(ctx context.Context) error
	AvatarCleanup(ctx context.Context) error
}

func helpText(a execIface) string {
	if !a.isLoggedIn() {
		return "Available commands: register, login, exit"
	}
	cmds := "whoami, appointments, avatar [set|show|delete|cleanup], logout, exit"
	switch a.role() {
	case models.RoleDoctor:
		cmds = "addpatient, " + cmds
	case models.RoleSuperAdmin:
		cmds = "addpatient, activity, " + cmds
	}
	return "Available commands: " + cmds
}

// runREPL starts a read–eval–print loop for the Citas CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Role-gated commands (addpatient, activity) are dispatched here and
// re-checked inside their handlers; the backend enforces authorization
// either way.
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("citas %s> ", statusFn()))
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
			printlnFn(helpText(a))

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "appointments", "appts":
			_ = a.Appointments(ctx)

		case "addpatient":
			_ = a.AddPatient(ctx)

		case "activity":
			_ = a.Activity(ctx)

		case "avatar":
			sub := "show"
			if len(args) > 0 {
				sub = args[0]
			}
			switch sub {
			case "set":
				_ = a.AvatarSet(ctx)
			case "show":
				_ = a.AvatarShow(ctx)
			case "delete":
				_ = a.AvatarDelete(ctx)
			case "cleanup":
				_ = a.AvatarCleanup(ctx)
			default:
				printlnFn("Usage: avatar [set|show|delete|cleanup]")
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
