package workflow

import "fmt"

// State is a node of the attempt state machine.
type State int

const (
	Idle State = iota
	CreatingAccount
	SigningIn
	VerifyingSession
	Succeeded
	Failed
)

var stateNames = map[State]string{
	Idle:             "idle",
	CreatingAccount:  "creating-account",
	SigningIn:        "signing-in",
	VerifyingSession: "verifying-session",
	Succeeded:        "succeeded",
	Failed:           "failed",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// InFlight reports whether a remote call is outstanding in state s.
func (s State) InFlight() bool {
	return s == CreatingAccount || s == SigningIn || s == VerifyingSession
}

// Terminal reports whether s ends an attempt.
func (s State) Terminal() bool {
	return s == Succeeded || s == Failed
}

// Reason explains a Failed state.
type Reason string

const (
	ReasonNone              Reason = ""
	ReasonAccountCreation   Reason = "account-creation"
	ReasonSignInAfterCreate Reason = "sign-in-after-create"
	ReasonSignIn            Reason = "sign-in"
	ReasonVerification      Reason = "verification"
	ReasonTimeout           Reason = "timeout"
	// ReasonCanceled ends an attempt its caller abandoned. It is never shown
	// to the user.
	ReasonCanceled Reason = "canceled"
)

// Outcome is what a single remote step reported.
type Outcome int

const (
	OutcomeNone Outcome = iota
	AccountCreated
	AccountCreationFailed
	SessionEstablished
	SessionEstablishmentFailed
	SessionVerified
	SessionVerificationFailed
)

var outcomeNames = map[Outcome]string{
	OutcomeNone:                "none",
	AccountCreated:             "account-created",
	AccountCreationFailed:      "account-creation-failed",
	SessionEstablished:         "session-established",
	SessionEstablishmentFailed: "session-establishment-failed",
	SessionVerified:            "session-verified",
	SessionVerificationFailed:  "session-verification-failed",
}

func (o Outcome) String() string {
	if n, ok := outcomeNames[o]; ok {
		return n
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Flow names the kind of attempt.
type Flow string

const (
	FlowSignup Flow = "signup"
	FlowSignin Flow = "signin"
)

// Transition is one edge taken by an attempt. Outcome is OutcomeNone for the
// initial Idle → first step edge.
type Transition struct {
	Flow    Flow
	From    State
	To      State
	Outcome Outcome
	Reason  Reason
}

// Result is the terminal state of an attempt. Err holds the underlying cause
// of a failure for logging; callers must branch on Reason, not on Err.
type Result struct {
	Flow    Flow
	State   State
	Reason  Reason
	Outcome Outcome
	Err     error
}

// Succeeded reports whether the attempt ended in Succeeded.
func (r Result) Succeeded() bool { return r.State == Succeeded }
