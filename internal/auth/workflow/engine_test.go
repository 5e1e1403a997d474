package workflow

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophgram/internal/auth/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend implements all three collaborators and records the order in
// which they were called.
type fakeBackend struct {
	mu    sync.Mutex
	calls []string

	createErr    error
	establishErr error
	sessionOK    bool
	checkErr     error

	// block, when set, makes the named call wait until the channel closes,
	// ignoring its context.
	block map[string]chan struct{}

	gotCreds    validate.Credentials
	gotEmail    string
	gotPassword string
}

func (f *fakeBackend) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	ch := f.block[name]
	f.mu.Unlock()
	if ch != nil {
		<-ch
	}
}

func (f *fakeBackend) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeBackend) CreateAccount(_ context.Context, c validate.Credentials) (AccountHandle, error) {
	f.record("create")
	f.gotCreds = c
	if f.createErr != nil {
		return AccountHandle{}, f.createErr
	}
	return AccountHandle{ID: "acc-1"}, nil
}

func (f *fakeBackend) EstablishSession(_ context.Context, email, password string) (SessionHandle, error) {
	f.record("establish")
	f.gotEmail, f.gotPassword = email, password
	if f.establishErr != nil {
		return SessionHandle{}, f.establishErr
	}
	return SessionHandle{AccountID: "acc-1"}, nil
}

func (f *fakeBackend) CheckSession(context.Context) (bool, error) {
	f.record("check")
	return f.sessionOK, f.checkErr
}

func newEngine(f *fakeBackend, opts ...Option) *Engine {
	return New(f, f, f, opts...)
}

func creds() validate.Credentials {
	return validate.Credentials{Name: "Ann", Username: "ann", Email: "ann@example.com", Password: "correct-horse"}
}

type recorder struct {
	transitions []Transition
}

func (r *recorder) observe(t Transition) { r.transitions = append(r.transitions, t) }

func (r *recorder) states() []State {
	out := make([]State, 0, len(r.transitions))
	for _, t := range r.transitions {
		out = append(out, t.To)
	}
	return out
}

func TestSignup_Success(t *testing.T) {
	f := &fakeBackend{sessionOK: true}
	rec := &recorder{}

	res := newEngine(f).Signup(context.Background(), creds(), rec.observe)

	require.True(t, res.Succeeded())
	assert.Equal(t, ReasonNone, res.Reason)
	assert.NoError(t, res.Err)
	assert.Equal(t, []string{"create", "establish", "check"}, f.Calls())
	assert.Equal(t, []State{CreatingAccount, SigningIn, VerifyingSession, Succeeded}, rec.states())
	assert.Equal(t, []Outcome{OutcomeNone, AccountCreated, SessionEstablished, SessionVerified},
		[]Outcome{rec.transitions[0].Outcome, rec.transitions[1].Outcome, rec.transitions[2].Outcome, rec.transitions[3].Outcome})
	assert.Equal(t, Idle, rec.transitions[0].From)
	assert.Equal(t, creds(), f.gotCreds)
	assert.Equal(t, "ann@example.com", f.gotEmail)
	assert.Equal(t, "correct-horse", f.gotPassword)
}

func TestSignup_FailureReasons(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name        string
		backend     *fakeBackend
		wantReason  Reason
		wantOutcome Outcome
		wantCalls   []string
		wantErr     error
	}{
		{
			name:        "account creation rejected",
			backend:     &fakeBackend{createErr: boom, sessionOK: true},
			wantReason:  ReasonAccountCreation,
			wantOutcome: AccountCreationFailed,
			wantCalls:   []string{"create"},
			wantErr:     boom,
		},
		{
			name:        "account created but sign-in rejected",
			backend:     &fakeBackend{establishErr: boom, sessionOK: true},
			wantReason:  ReasonSignInAfterCreate,
			wantOutcome: SessionEstablishmentFailed,
			wantCalls:   []string{"create", "establish"},
			wantErr:     boom,
		},
		{
			name:        "session not confirmed",
			backend:     &fakeBackend{sessionOK: false},
			wantReason:  ReasonVerification,
			wantOutcome: SessionVerificationFailed,
			wantCalls:   []string{"create", "establish", "check"},
			wantErr:     ErrSessionNotConfirmed,
		},
		{
			name:        "session check errored",
			backend:     &fakeBackend{sessionOK: true, checkErr: boom},
			wantReason:  ReasonVerification,
			wantOutcome: SessionVerificationFailed,
			wantCalls:   []string{"create", "establish", "check"},
			wantErr:     boom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			res := newEngine(tt.backend).Signup(context.Background(), creds(), rec.observe)

			assert.Equal(t, Failed, res.State)
			assert.Equal(t, tt.wantReason, res.Reason)
			assert.Equal(t, tt.wantOutcome, res.Outcome)
			assert.ErrorIs(t, res.Err, tt.wantErr)
			assert.Equal(t, tt.wantCalls, tt.backend.Calls())

			last := rec.transitions[len(rec.transitions)-1]
			assert.Equal(t, Failed, last.To)
			assert.Equal(t, tt.wantReason, last.Reason)
		})
	}
}

func TestSignup_SignInAfterCreateIsDistinctFromRejection(t *testing.T) {
	rejected := newEngine(&fakeBackend{createErr: errors.New("dup")}).Signup(context.Background(), creds(), nil)
	partial := newEngine(&fakeBackend{establishErr: errors.New("nope")}).Signup(context.Background(), creds(), nil)

	assert.NotEqual(t, rejected.Reason, partial.Reason)
	assert.Equal(t, ReasonAccountCreation, rejected.Reason)
	assert.Equal(t, ReasonSignInAfterCreate, partial.Reason)
}

func TestSignup_WithoutAccountService(t *testing.T) {
	f := &fakeBackend{sessionOK: true}
	res := New(nil, f, f).Signup(context.Background(), creds(), nil)

	assert.Equal(t, ReasonAccountCreation, res.Reason)
	assert.Empty(t, f.Calls())
}

func TestSignin(t *testing.T) {
	tests := []struct {
		name       string
		backend    *fakeBackend
		wantState  State
		wantReason Reason
		wantCalls  []string
	}{
		{name: "success", backend: &fakeBackend{sessionOK: true}, wantState: Succeeded, wantCalls: []string{"establish", "check"}},
		{name: "wrong credentials", backend: &fakeBackend{establishErr: errors.New("unauthorized"), sessionOK: true}, wantState: Failed, wantReason: ReasonSignIn, wantCalls: []string{"establish"}},
		{name: "gate disagrees", backend: &fakeBackend{sessionOK: false}, wantState: Failed, wantReason: ReasonVerification, wantCalls: []string{"establish", "check"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			res := newEngine(tt.backend).Signin(context.Background(), creds(), rec.observe)

			assert.Equal(t, tt.wantState, res.State)
			assert.Equal(t, tt.wantReason, res.Reason)
			assert.Equal(t, FlowSignin, res.Flow)
			assert.Equal(t, tt.wantCalls, tt.backend.Calls())
			assert.Equal(t, SigningIn, rec.transitions[0].To)
			assert.NotContains(t, rec.states(), CreatingAccount)
		})
	}
}

func TestStepTimeout_ForcesFailedTimeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	f := &fakeBackend{sessionOK: true, block: map[string]chan struct{}{"establish": release}}

	start := time.Now()
	res := newEngine(f, WithStepTimeout(20*time.Millisecond)).Signin(context.Background(), creds(), nil)

	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, Failed, res.State)
	assert.Equal(t, ReasonTimeout, res.Reason)
	assert.ErrorIs(t, res.Err, ErrStepTimeout)
	assert.Equal(t, []string{"establish"}, f.Calls())
}

func TestCanceledContext_NoRemoteCalls(t *testing.T) {
	f := &fakeBackend{sessionOK: true}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := newEngine(f).Signup(ctx, creds(), nil)

	assert.Equal(t, ReasonCanceled, res.Reason)
	assert.Empty(t, f.Calls())
}

func TestCancelDuringStep_EndsAttemptWithoutFurtherCalls(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	f := &fakeBackend{sessionOK: true, block: map[string]chan struct{}{"create": release}}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan Result, 1)
	go func() { done <- newEngine(f).Signup(ctx, creds(), nil) }()

	require.Eventually(t, func() bool { return len(f.Calls()) == 1 }, time.Second, time.Millisecond)
	cancel()

	select {
	case res := <-done:
		assert.Equal(t, ReasonCanceled, res.Reason)
		assert.Equal(t, AccountCreationFailed, res.Outcome)
	case <-time.After(2 * time.Second):
		t.Fatal("attempt did not end after cancel")
	}
	assert.Equal(t, []string{"create"}, f.Calls())
}

func TestStateHelpers(t *testing.T) {
	for _, s := range []State{CreatingAccount, SigningIn, VerifyingSession} {
		assert.True(t, s.InFlight(), s.String())
		assert.False(t, s.Terminal(), s.String())
	}
	for _, s := range []State{Succeeded, Failed} {
		assert.False(t, s.InFlight(), s.String())
		assert.True(t, s.Terminal(), s.String())
	}
	assert.False(t, Idle.InFlight())
	assert.Equal(t, "state(42)", State(42).String())
	assert.Equal(t, "session-verified", SessionVerified.String())
}
