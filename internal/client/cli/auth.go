package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophgram/internal/auth/presentation"
	"github.com/dmitrijs2005/gophgram/internal/auth/validate"
	"github.com/dmitrijs2005/gophgram/internal/auth/workflow"
	"github.com/dmitrijs2005/gophgram/internal/client/services"
)

// Commands typed at a field prompt.
const (
	cmdReveal = "/reveal"
	cmdCancel = "/cancel"
)

var errCanceled = errors.New("canceled")

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

func (a *App) Signup(ctx context.Context) error {
	return a.runForm(ctx, a.signup, "Create an account")
}

func (a *App) Signin(ctx context.Context) error {
	return a.runForm(ctx, a.signin, "Sign in")
}

// Signout forgets the session locally and on the server. It runs even when
// the prompt shows no session, so a token left behind by a failed restore
// can still be cleared.
func (a *App) Signout(ctx context.Context) error {
	wasSignedIn := a.isSignedIn()

	err := a.auth.SignOut(ctx)
	a.setSignedIn("", "")
	if err != nil {
		return err
	}
	if wasSignedIn {
		fmt.Fprintln(a.out, "Signed out.")
	} else {
		fmt.Fprintln(a.out, "Not signed in.")
	}
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	info, err := a.gate.Whoami(ctx)
	if errors.Is(err, services.ErrNoSession) {
		a.setSignedIn("", "")
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	if err != nil {
		return err
	}

	a.setSignedIn(presentation.HomeDestination, info.Username)
	fmt.Fprintf(a.out, "Signed in as %s (account %s)\n", info.Username, info.AccountID)
	return nil
}

// runForm mounts f and walks the user through it until the attempt succeeds,
// the user gives up or types /cancel. A failed attempt keeps the values, so
// a retry offers them as defaults.
func (a *App) runForm(ctx context.Context, f *presentation.Form, title string) error {
	if a.isSignedIn() {
		fmt.Fprintln(a.out, "Already signed in. Use 'signout' first.")
		return nil
	}

	f.Mount()
	defer f.Unmount()

	fmt.Fprintf(a.out, "%s (type %s to show the password, %s to leave)\n", title, cmdReveal, cmdCancel)
	a.render(f)

	for {
		if err := a.fillForm(f); err != nil {
			if errors.Is(err, errCanceled) {
				return nil
			}
			return err
		}

		res, err := f.Submit(ctx)
		switch {
		case errors.Is(err, presentation.ErrInvalid):
			a.printFieldErrors(f)
			continue
		case err != nil:
			return err
		}

		if res.State == workflow.Succeeded {
			return nil
		}
		if res.Reason == workflow.ReasonCanceled {
			return ctx.Err()
		}

		retry, err := getSimpleText(a.reader, "Try again? [Y/n]", a.out)
		if err != nil {
			return err
		}
		if strings.HasPrefix(strings.ToLower(retry), "n") {
			return nil
		}
	}
}

func (a *App) fillForm(f *presentation.Form) error {
	for _, field := range f.Fields() {
		f.Focus(field)
		value, err := a.promptField(f, field)
		f.Blur()
		if err != nil {
			return err
		}
		f.SetField(field, value)
	}
	return nil
}

// promptField reads one field. An empty answer keeps the current value.
func (a *App) promptField(f *presentation.Form, field validate.Field) (string, error) {
	if d := f.Description(field); d != "" {
		fmt.Fprintln(a.out, "  "+d)
	}

	for {
		current := validate.Value(f.Values(), field)
		prompt := presentation.Label(field)

		var (
			line string
			err  error
		)
		if field == validate.FieldPassword && !f.Snapshot().RevealSecret {
			if current != "" {
				prompt += " [unchanged]"
			}
			line, err = getPassword(a.reader, prompt, a.out)
		} else {
			if current != "" {
				prompt += " [" + current + "]"
			}
			line, err = getSimpleText(a.reader, prompt, a.out)
		}
		if err != nil {
			return "", err
		}

		switch line {
		case cmdCancel:
			return "", errCanceled
		case cmdReveal:
			f.ToggleReveal()
			continue
		case "":
			return current, nil
		default:
			return line, nil
		}
	}
}

func (a *App) render(f *presentation.Form) {
	s := f.Snapshot()
	values := f.Values()

	for _, field := range f.Fields() {
		v := validate.Value(values, field)
		switch {
		case v == "":
			v = f.Placeholder(field)
		case field == validate.FieldPassword && !s.RevealSecret:
			v = strings.Repeat("*", len([]rune(v)))
		}
		fmt.Fprintf(a.out, "  %-9s %s\n", presentation.Label(field)+":", v)
	}
}

func (a *App) printFieldErrors(f *presentation.Form) {
	s := f.Snapshot()
	for _, field := range f.Fields() {
		if msg := s.FieldErrors.Error(field); msg != "" {
			fmt.Fprintf(a.out, "  %s: %s\n", presentation.Label(field), msg)
		}
	}
}
