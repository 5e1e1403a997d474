package presentation

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/gophgram/internal/auth/validate"
	"github.com/dmitrijs2005/gophgram/internal/auth/workflow"
	"github.com/dmitrijs2005/gophgram/internal/logging"
)

var (
	// ErrBusy is returned by Submit while another attempt is in flight.
	ErrBusy = errors.New("an attempt is already in progress")
	// ErrInvalid is returned by Submit when validation blocks the attempt.
	// The messages are in State.FieldErrors.
	ErrInvalid = errors.New("form has invalid fields")
	// ErrNotMounted is returned by Submit on an unmounted form.
	ErrNotMounted = errors.New("form is not mounted")
	// ErrAbandoned is returned by Submit when the form was unmounted or
	// remounted while its attempt ran. The result was not applied.
	ErrAbandoned = errors.New("attempt abandoned")
)

// Navigator moves the user to another screen.
type Navigator interface {
	Navigate(ctx context.Context, destination string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, destination string)

func (f NavigatorFunc) Navigate(ctx context.Context, destination string) { f(ctx, destination) }

// Notifier shows a transient message to the user.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, message string)

func (f NotifierFunc) Notify(ctx context.Context, message string) { f(ctx, message) }

// Form is one signup or signin form. It is safe for concurrent use; at most
// one attempt runs at a time.
type Form struct {
	flow      workflow.Flow
	engine    *workflow.Engine
	validator validate.Validator
	navigator Navigator
	notifier  Notifier
	messages  Messages
	logger    logging.Logger

	mu         sync.Mutex
	values     validate.Credentials
	state      State
	submitted  bool
	mounted    bool
	generation uint64
	cancel     context.CancelFunc
}

// Option configures a Form.
type Option func(*Form)

// WithMessages replaces the failure texts.
func WithMessages(m Messages) Option {
	return func(f *Form) { f.messages = m }
}

// WithLogger sets the form logger.
func WithLogger(l logging.Logger) Option {
	return func(f *Form) { f.logger = l }
}

// NewSignupForm returns an unmounted signup form.
func NewSignupForm(e *workflow.Engine, nav Navigator, n Notifier, opts ...Option) *Form {
	return newForm(workflow.FlowSignup, validate.Signup(), e, nav, n, opts...)
}

// NewSigninForm returns an unmounted signin form.
func NewSigninForm(e *workflow.Engine, nav Navigator, n Notifier, opts ...Option) *Form {
	return newForm(workflow.FlowSignin, validate.Signin(), e, nav, n, opts...)
}

func newForm(flow workflow.Flow, v validate.Validator, e *workflow.Engine, nav Navigator, n Notifier, opts ...Option) *Form {
	f := &Form{
		flow:      flow,
		engine:    e,
		validator: v,
		navigator: nav,
		notifier:  n,
		messages:  DefaultMessages(),
		logger:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.With("module", "form", "flow", string(flow))
	return f
}

// Flow reports whether this is a signup or a signin form.
func (f *Form) Flow() workflow.Flow { return f.flow }

// Fields lists the form fields in display order.
func (f *Form) Fields() []validate.Field { return f.validator.Fields() }

// Mount resets the form to its defaults and makes it accept submits. An
// attempt still running from a previous mount is abandoned.
func (f *Form) Mount() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.abandonLocked()
	f.values = validate.Credentials{}
	f.state = State{}
	f.submitted = false
	f.mounted = true
}

// Unmount abandons any in-flight attempt. Its eventual result is discarded.
func (f *Form) Unmount() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.abandonLocked()
	f.mounted = false
}

func (f *Form) abandonLocked() {
	f.generation++
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}

// SetField stores a value typed by the user. After the first submit the field
// is re-validated on every change.
func (f *Form) SetField(field validate.Field, value string) {
	if !f.validator.Has(field) {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = validate.Set(f.values, field, value)
	if !f.submitted {
		return
	}
	if f.state.FieldErrors == nil {
		f.state.FieldErrors = validate.Result{}
	}
	if msg := f.validator.ValidateField(field, f.values); msg != "" {
		f.state.FieldErrors[field] = msg
	} else {
		delete(f.state.FieldErrors, field)
	}
}

// Focus marks field as being edited.
func (f *Form) Focus(field validate.Field) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.FocusedField = field
}

// Blur clears the focus.
func (f *Form) Blur() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.FocusedField = validate.FieldNone
}

// ToggleReveal flips between hidden and clear-text password display.
func (f *Form) ToggleReveal() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.RevealSecret = !f.state.RevealSecret
}

// Snapshot returns a copy of the current state.
func (f *Form) Snapshot() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.clone()
}

// Values returns the values entered so far.
func (f *Form) Values() validate.Credentials {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// Submit validates the form and, if every field is valid, runs one attempt
// and waits for it. Busy stays true from the start of the attempt until its
// result has been applied.
//
// On success the form resets and the navigator is sent to HomeDestination.
// On failure the values are kept, LastError is set and the notifier is
// called. A Submit issued while Busy returns ErrBusy and changes nothing.
func (f *Form) Submit(ctx context.Context) (workflow.Result, error) {
	f.mu.Lock()
	if !f.mounted {
		f.mu.Unlock()
		return workflow.Result{}, ErrNotMounted
	}
	if f.state.Busy {
		f.mu.Unlock()
		return workflow.Result{}, ErrBusy
	}

	f.submitted = true
	f.state.FieldErrors = f.validator.Validate(f.values)
	if !f.state.FieldErrors.OK() {
		f.mu.Unlock()
		return workflow.Result{}, ErrInvalid
	}

	creds := f.values
	f.generation++
	gen := f.generation
	attemptCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.state.Busy = true
	f.state.LastError = ""
	f.state.Phase = workflow.Idle
	f.mu.Unlock()
	defer cancel()

	observe := func(t workflow.Transition) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if gen == f.generation {
			f.state.Phase = t.To
		}
	}

	var res workflow.Result
	switch f.flow {
	case workflow.FlowSignup:
		res = f.engine.Signup(attemptCtx, creds, observe)
	default:
		res = f.engine.Signin(attemptCtx, creds, observe)
	}

	f.mu.Lock()
	if gen != f.generation || !f.mounted {
		f.mu.Unlock()
		f.logger.Debug(ctx, "discarding result of abandoned attempt", "state", res.State.String())
		return res, ErrAbandoned
	}
	f.cancel = nil

	busy, lastError := Project(res.State, res.Reason, f.messages)
	if res.Succeeded() {
		f.values = validate.Credentials{}
		f.state = State{Phase: workflow.Succeeded}
		f.submitted = false
		f.mu.Unlock()
		if f.navigator != nil {
			f.navigator.Navigate(ctx, HomeDestination)
		}
		return res, nil
	}

	f.state.Busy = busy
	f.state.Phase = res.State
	f.state.LastError = lastError
	f.mu.Unlock()

	if lastError != "" && f.notifier != nil {
		f.notifier.Notify(ctx, lastError)
	}
	return res, nil
}
