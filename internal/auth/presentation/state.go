// Package presentation keeps the render-only state of the signup and signin
// forms consistent with the attempt running behind them.
//
// The package owns no business rules. It validates through package validate,
// runs attempts through package workflow and projects their progress onto a
// State value that a renderer (the terminal client, a test) reads through
// Form.Snapshot.
package presentation

import (
	"github.com/dmitrijs2005/gophgram/internal/auth/validate"
	"github.com/dmitrijs2005/gophgram/internal/auth/workflow"
)

// HomeDestination is where a successful attempt navigates to.
const HomeDestination = "/"

// State is what a renderer needs to draw a form.
type State struct {
	// Busy is true while an attempt is in flight. It doubles as the guard
	// that rejects a second submit.
	Busy bool
	// RevealSecret shows the password in clear text.
	RevealSecret bool
	// FocusedField is the field the user is editing, FieldNone if none.
	FocusedField validate.Field
	// LastError is the message of the last failed attempt.
	LastError string
	// FieldErrors holds per-field validation messages of the last submit.
	FieldErrors validate.Result
	// Phase is the workflow state of the current or last attempt.
	Phase workflow.State
}

func (s State) clone() State {
	if s.FieldErrors != nil {
		fe := make(validate.Result, len(s.FieldErrors))
		for k, v := range s.FieldErrors {
			fe[k] = v
		}
		s.FieldErrors = fe
	}
	return s
}

// Messages maps failure reasons to user-visible text.
type Messages map[workflow.Reason]string

// GenericFailure is shown for reasons missing from Messages.
const GenericFailure = "Something went wrong. Please try again."

// DefaultMessages returns the built-in failure texts. Each reason maps to a
// different message.
func DefaultMessages() Messages {
	return Messages{
		workflow.ReasonAccountCreation:   "Sign-up failed! Please try again.",
		workflow.ReasonSignInAfterCreate: "Your account was created, but signing in failed. Please sign in.",
		workflow.ReasonSignIn:            "Sign-in failed! Please try again.",
		workflow.ReasonVerification:      "Could not verify your session. Please try again.",
		workflow.ReasonTimeout:           "The server took too long to respond. Please try again.",
	}
}

// For returns the message for r.
func (m Messages) For(r workflow.Reason) string {
	if msg, ok := m[r]; ok {
		return msg
	}
	return GenericFailure
}

// Project derives the busy flag and the error message from a workflow state.
// A canceled attempt produces no message.
func Project(s workflow.State, r workflow.Reason, m Messages) (busy bool, lastError string) {
	busy = s.InFlight()
	if s == workflow.Failed && r != workflow.ReasonCanceled {
		lastError = m.For(r)
	}
	return busy, lastError
}
