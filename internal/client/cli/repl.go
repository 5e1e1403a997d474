package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL needs. App satisfies it; tests
// provide a lightweight stub.
type execIface interface {
	isSignedIn() bool
	Signup(ctx context.Context) error
	Signin(ctx context.Context) error
	Signout(ctx context.Context) error
	Whoami(ctx context.Context) error
}

// runREPL reads commands from reader until EOF, "exit" or "quit". Errors
// returned by command handlers are printed and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "gophgram %s> ", statusFn())

		line, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		var cmdErr error
		switch cmd := parts[0]; cmd {
		case "help":
			if a.isSignedIn() {
				fmt.Fprintln(w, "Available commands: whoami, signout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: signup, signin, whoami, exit")
			}
		case "signup":
			cmdErr = a.Signup(ctx)
		case "signin":
			cmdErr = a.Signin(ctx)
		case "signout":
			cmdErr = a.Signout(ctx)
		case "whoami":
			cmdErr = a.Whoami(ctx)
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			fmt.Fprintln(w, "Error:", cmdErr)
		}
	}
}
