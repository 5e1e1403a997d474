package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophgram/internal/auth/validate"
	"github.com/dmitrijs2005/gophgram/internal/logging"
)

var (
	// ErrStepTimeout is returned when a remote step exceeds the configured
	// step timeout.
	ErrStepTimeout = errors.New("workflow step timed out")
	// ErrSessionNotConfirmed is the cause recorded when the session gate
	// answers false.
	ErrSessionNotConfirmed = errors.New("session not confirmed")
)

// AccountHandle identifies a freshly created account.
type AccountHandle struct {
	ID string
}

// SessionHandle describes a session the backend reported as established.
type SessionHandle struct {
	AccountID string
	ExpiresAt time.Time
}

// AccountCreator creates accounts on the remote backend.
type AccountCreator interface {
	CreateAccount(ctx context.Context, c validate.Credentials) (AccountHandle, error)
}

// SessionEstablisher signs a user in on the remote backend.
type SessionEstablisher interface {
	EstablishSession(ctx context.Context, email, password string) (SessionHandle, error)
}

// SessionGate answers whether an authenticated session exists right now. It
// must reflect externally stored session state, not anything the engine
// remembers.
type SessionGate interface {
	CheckSession(ctx context.Context) (bool, error)
}

// Engine runs signup and signin attempts.
type Engine struct {
	accounts AccountCreator
	sessions SessionEstablisher
	gate     SessionGate
	timeout  time.Duration
	logger   logging.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithStepTimeout bounds every remote step. A step that neither succeeds nor
// fails within d ends the attempt with ReasonTimeout. Zero disables the bound.
func WithStepTimeout(d time.Duration) Option {
	return func(e *Engine) { e.timeout = d }
}

// WithLogger sets the logger used for transitions and failures.
func WithLogger(l logging.Logger) Option {
	return func(e *Engine) { e.logger = l.With("module", "workflow") }
}

// New builds an Engine. accounts may be nil for an engine that only serves
// signin attempts.
func New(accounts AccountCreator, sessions SessionEstablisher, gate SessionGate, opts ...Option) *Engine {
	e := &Engine{
		accounts: accounts,
		sessions: sessions,
		gate:     gate,
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Signup runs create account → establish session → verify session.
// observe, if non-nil, is called synchronously for every transition.
func (e *Engine) Signup(ctx context.Context, c validate.Credentials, observe func(Transition)) Result {
	a := e.begin(ctx, FlowSignup, observe)
	if e.accounts == nil {
		return a.fail(AccountCreationFailed, ReasonAccountCreation, errors.New("account service not configured"))
	}

	a.move(CreatingAccount, OutcomeNone, ReasonNone)
	handle, err := call(ctx, e.timeout, func(ctx context.Context) (AccountHandle, error) {
		return e.accounts.CreateAccount(ctx, c)
	})
	if err != nil {
		return a.fail(AccountCreationFailed, ReasonAccountCreation, err)
	}
	e.logger.Debug(ctx, "account created", "account_id", handle.ID)

	a.move(SigningIn, AccountCreated, ReasonNone)
	if res, ok := a.signIn(c, ReasonSignInAfterCreate); !ok {
		return res
	}
	return a.verify()
}

// Signin runs establish session → verify session.
func (e *Engine) Signin(ctx context.Context, c validate.Credentials, observe func(Transition)) Result {
	a := e.begin(ctx, FlowSignin, observe)
	a.move(SigningIn, OutcomeNone, ReasonNone)
	if res, ok := a.signIn(c, ReasonSignIn); !ok {
		return res
	}
	return a.verify()
}

type attempt struct {
	ctx     context.Context
	engine  *Engine
	flow    Flow
	state   State
	observe func(Transition)
}

func (e *Engine) begin(ctx context.Context, flow Flow, observe func(Transition)) *attempt {
	return &attempt{ctx: ctx, engine: e, flow: flow, state: Idle, observe: observe}
}

func (a *attempt) move(to State, outcome Outcome, reason Reason) {
	t := Transition{Flow: a.flow, From: a.state, To: to, Outcome: outcome, Reason: reason}
	a.state = to
	a.engine.logger.Debug(a.ctx, "transition",
		"flow", string(a.flow), "from", t.From.String(), "to", t.To.String(),
		"outcome", t.Outcome.String(), "reason", string(t.Reason))
	if a.observe != nil {
		a.observe(t)
	}
}

func (a *attempt) signIn(c validate.Credentials, reason Reason) (Result, bool) {
	sessions := a.engine.sessions
	_, err := call(a.ctx, a.engine.timeout, func(ctx context.Context) (SessionHandle, error) {
		return sessions.EstablishSession(ctx, c.Email, c.Password)
	})
	if err != nil {
		return a.fail(SessionEstablishmentFailed, reason, err), false
	}
	a.move(VerifyingSession, SessionEstablished, ReasonNone)
	return Result{}, true
}

func (a *attempt) verify() Result {
	gate := a.engine.gate
	ok, err := call(a.ctx, a.engine.timeout, gate.CheckSession)
	if err == nil && !ok {
		err = ErrSessionNotConfirmed
	}
	if err != nil {
		return a.fail(SessionVerificationFailed, ReasonVerification, err)
	}
	a.move(Succeeded, SessionVerified, ReasonNone)
	a.engine.logger.Info(a.ctx, "attempt succeeded", "flow", string(a.flow))
	return Result{Flow: a.flow, State: Succeeded, Outcome: SessionVerified}
}

func (a *attempt) fail(outcome Outcome, reason Reason, err error) Result {
	switch {
	case a.ctx.Err() != nil:
		reason = ReasonCanceled
	case errors.Is(err, ErrStepTimeout):
		reason = ReasonTimeout
	}
	a.move(Failed, outcome, reason)
	a.engine.logger.Warn(a.ctx, "attempt failed",
		"flow", string(a.flow), "reason", string(reason), "outcome", outcome.String(), "error", err)
	return Result{Flow: a.flow, State: Failed, Reason: reason, Outcome: outcome, Err: err}
}

// call runs fn and waits for it, the step timeout or ctx, whichever comes
// first. fn is not started when ctx is already done. A callee that ignores
// its context is left running; its result is discarded.
func call[T any](ctx context.Context, timeout time.Duration, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	stepCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		stepCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	type result struct {
		v   T
		err error
	}
	done := make(chan result, 1)
	go func() {
		v, err := fn(stepCtx)
		done <- result{v: v, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil && ctx.Err() == nil && errors.Is(stepCtx.Err(), context.DeadlineExceeded) {
			return zero, fmt.Errorf("%w: %w", ErrStepTimeout, r.err)
		}
		return r.v, r.err
	case <-stepCtx.Done():
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		return zero, ErrStepTimeout
	}
}
