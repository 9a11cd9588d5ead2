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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Google(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Status(ctx context.Context) error
	Profile(ctx context.Context) error
	AddFund(ctx context.Context) error
	ListFunds(ctx context.Context) error
	ClearFunds(ctx context.Context) error
	SubmitFunds(ctx context.Context) error
	Chat(ctx context.Context) error
	ResetChat(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the FundScope CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not signed in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate with email and password
//	  - google         — sign in with Google
//	  - status         — show session and channel state
//	  - exit | quit    — leave the program
//
//	Signed in:
//	  - help           — show available commands
//	  - whoami         — show the signed-in user
//	  - profile        — run the risk-profile wizard
//	  - addfund        — add a fund to the manual selection
//	  - funds          — list the current selection
//	  - clearfunds     — drop the current selection
//	  - submitfunds    — submit the selection for diagnosis
//	  - chat           — talk to the advisory assistant
//	  - resetchat      — start a fresh conversation
//	  - status         — show session and channel state
//	  - logout         — sign out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fs> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, profile, addfund, funds, clearfunds, submitfunds, chat, resetchat, status, logout, exit")
			} else {
				printlnFn("Available commands: register, login, google, status, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "google":
			_ = a.Google(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "status":
			_ = a.Status(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "addfund":
			_ = a.AddFund(ctx)

		case "funds":
			_ = a.ListFunds(ctx)

		case "clearfunds":
			_ = a.ClearFunds(ctx)

		case "submitfunds":
			_ = a.SubmitFunds(ctx)

		case "chat":
			_ = a.Chat(ctx)

		case "resetchat":
			_ = a.ResetChat(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
