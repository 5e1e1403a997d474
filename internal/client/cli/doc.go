// Package cli provides the interactive GophGram command-line client.
//
// It wires configuration, the local session store, API services and an
// interactive REPL. The signup and signin commands render a
// presentation.Form field by field: the focused field shows its
// description instead of its placeholder, the password is read without echo
// unless the user reveals it, validation messages are printed next to the
// offending fields and values entered earlier are offered as defaults when
// the user retries.
//
// Commands: signup, signin, signout, whoami, help, exit.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
