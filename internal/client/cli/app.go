package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophgram/internal/auth/presentation"
	"github.com/dmitrijs2005/gophgram/internal/auth/workflow"
	"github.com/dmitrijs2005/gophgram/internal/client/client"
	"github.com/dmitrijs2005/gophgram/internal/client/config"
	"github.com/dmitrijs2005/gophgram/internal/client/services"
	"github.com/dmitrijs2005/gophgram/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type authService interface {
	SignOut(ctx context.Context) error
	Ping(ctx context.Context) error
}

type sessionGate interface {
	Whoami(ctx context.Context) (client.SessionInfo, error)
}

type App struct {
	config *config.Config
	logger logging.Logger
	auth   authService
	gate   sessionGate
	signup *presentation.Form
	signin *presentation.Form
	reader *bufio.Reader
	out    io.Writer
	closer func() error

	mu       sync.Mutex
	mode     Mode
	location string
	username string
}

// NewApp opens the local database, connects to the server and builds the
// forms on top of a workflow engine.
func NewApp(ctx context.Context, c *config.Config, l logging.Logger) (*App, error) {
	repos, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	as := services.NewAuthService(apiClient, repos.DB, l)
	gate := services.NewSessionGate(apiClient, repos.DB)
	engine := workflow.New(as, as, gate, workflow.WithStepTimeout(c.StepTimeout), workflow.WithLogger(l))

	a := newApp(c, l, as, gate, engine, os.Stdin, os.Stdout)
	a.closer = func() error {
		cerr := as.Close()
		if err := repos.Close(); err != nil {
			return err
		}
		return cerr
	}
	return a, nil
}

func newApp(c *config.Config, l logging.Logger, as authService, gate sessionGate, engine *workflow.Engine, in io.Reader, out io.Writer) *App {
	a := &App{
		config: c,
		logger: l.With("module", "cli"),
		auth:   as,
		gate:   gate,
		reader: bufio.NewReader(in),
		out:    out,
		closer: func() error { return nil },
	}

	nav := presentation.NavigatorFunc(a.navigate)
	notifier := presentation.NotifierFunc(a.notify)
	a.signup = presentation.NewSignupForm(engine, nav, notifier, presentation.WithLogger(l))
	a.signin = presentation.NewSigninForm(engine, nav, notifier, presentation.WithLogger(l))
	return a
}

// Run blocks until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.closer(); err != nil {
			a.logger.Warn(ctx, "close failed", "error", err)
		}
	}()

	fmt.Fprintln(a.out, "Welcome to GophGram CLI (type 'help' for commands)")
	a.restoreSession(ctx)

	if a.config.OnlineCheckInterval > 0 {
		go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
	return nil
}

// restoreSession picks up a session stored by an earlier run.
func (a *App) restoreSession(ctx context.Context) {
	info, err := a.gate.Whoami(ctx)
	if err != nil {
		a.logger.Debug(ctx, "no session restored", "error", err)
		return
	}
	a.setSignedIn(presentation.HomeDestination, info.Username)
	fmt.Fprintf(a.out, "Signed in as %s\n", info.Username)
}

func (a *App) navigate(ctx context.Context, destination string) {
	username := ""
	if info, err := a.gate.Whoami(ctx); err == nil {
		username = info.Username
	}
	a.setSignedIn(destination, username)
	fmt.Fprintln(a.out, "Welcome!")
}

func (a *App) notify(_ context.Context, message string) {
	fmt.Fprintf(a.out, "! %s\n", message)
}

func (a *App) setSignedIn(location, username string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.location = location
	a.username = username
}

func (a *App) isSignedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.location == presentation.HomeDestination
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	var parts []string
	if a.username != "" {
		parts = append(parts, a.username)
	}
	if a.mode != "" {
		parts = append(parts, string(a.mode))
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(ctx, "connectivity changed", "mode", string(mode))
	}
}

// StartOnlineStatusWatcher pings the server every interval until ctx is done
// and keeps the mode shown in the prompt current.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.auth.Ping(pingCtx); err != nil {
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}
