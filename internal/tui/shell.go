// Package tui implements the interactive terminal shell of the
// file-tracking client: the login screen, the authenticated navigation loop,
// and the six functional views. The shell owns no business state of its own;
// identity lives in the session store, the active view in the view router,
// and transient feedback in the notifier.
package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Aayush01055/File-tracking-system/internal/core/domain"
	"github.com/Aayush01055/File-tracking-system/internal/core/ports"
)

// Options tailors the shell's I/O. Zero values mean stdin/stdout and a
// plain-text password prompt, which tests override with buffers.
type Options struct {
	In           io.Reader
	Out          io.Writer
	ReadPassword func() (string, error)
}

// Shell is the composition root: it wires the session store, view router,
// notifier and remote gateway into one interactive loop.
type Shell struct {
	sessions ports.SessionStore
	router   ports.ViewRouter
	notifier ports.Notifier
	gateway  ports.Gateway
	logger   zerolog.Logger

	in           *bufio.Reader
	out          io.Writer
	readPassword func() (string, error)
}

func New(sessions ports.SessionStore, router ports.ViewRouter, notifier ports.Notifier, gw ports.Gateway, logger zerolog.Logger, opts Options) *Shell {
	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return &Shell{
		sessions:     sessions,
		router:       router,
		notifier:     notifier,
		gateway:      gw,
		logger:       logger,
		in:           bufio.NewReader(in),
		out:          out,
		readPassword: opts.ReadPassword,
	}
}

// Run drives the shell until the user quits, input ends, or ctx is
// cancelled. A session restored from durable storage skips the login screen.
func (s *Shell) Run(ctx context.Context) error {
	if sess := s.sessions.Restore(); sess.Complete() {
		s.router.DefaultView(sess.Role)
		s.logger.Info().Str("username", sess.Username).Str("role", sess.Role).Msg("session restored")
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var quit bool
		var err error
		if s.sessions.Current().IsZero() {
			quit, err = s.loginScreen(ctx)
		} else {
			quit, err = s.homeScreen(ctx)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

func (s *Shell) loginScreen(ctx context.Context) (quit bool, err error) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "=== File Tracking System / Login ===")
	s.renderNotification()

	username, err := s.prompt("Username (q to quit)")
	if err != nil {
		return false, err
	}
	if username == "q" {
		return true, nil
	}
	password, err := s.promptSecret("Password")
	if err != nil {
		return false, err
	}
	if username == "" || password == "" {
		s.notifier.Error("Username and password are required")
		return false, nil
	}

	gen := s.sessions.Generation()
	identity, err := s.gateway.Login(ctx, username, password)
	if s.stale(gen) {
		return false, nil
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("username", username).Msg("login failed")
		s.notifier.Error(humanError(err))
		return false, nil
	}

	s.sessions.Login(identity)
	s.router.DefaultView(identity.Role)
	s.notifier.Success("Login successful")
	s.logger.Info().Str("username", identity.Username).Str("role", identity.Role).Msg("logged in")
	return false, nil
}

func (s *Shell) homeScreen(ctx context.Context) (quit bool, err error) {
	sess := s.sessions.Current()
	views := s.router.AllowedViews(sess.Role)
	active := s.router.Active()

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "=== File Tracking System ===")
	s.renderNotification()
	fmt.Fprintf(s.out, "Signed in as %s (%s)\n", sess.Username, sess.Role)
	for i, v := range views {
		marker := " "
		if v == active {
			marker = "*"
		}
		fmt.Fprintf(s.out, "  %d)%s %s\n", i+1, marker, v.Title())
	}
	fmt.Fprintln(s.out, "  l) Logout   q) Quit")

	choice, err := s.prompt("Select (enter opens " + active.Title() + ")")
	if err != nil {
		return false, err
	}

	switch choice {
	case "q":
		return true, nil
	case "l":
		s.sessions.Logout()
		s.logger.Info().Msg("logged out")
		return false, nil
	case "":
		s.openView(ctx, active)
		return false, nil
	}

	idx, convErr := strconv.Atoi(choice)
	if convErr != nil || idx < 1 || idx > len(views) {
		s.notifier.Error("Unknown selection: " + choice)
		return false, nil
	}
	target := s.router.SetView(views[idx-1], sess.Role)
	s.openView(ctx, target)
	return false, nil
}

func (s *Shell) openView(ctx context.Context, view domain.ViewID) {
	switch view {
	case domain.ViewCreate:
		s.createView(ctx)
	case domain.ViewUpdate:
		s.updateView(ctx)
	case domain.ViewRegister:
		s.registerView(ctx)
	case domain.ViewTrack:
		s.trackView(ctx)
	case domain.ViewSearch:
		s.searchView(ctx)
	case domain.ViewAudit:
		s.auditView(ctx)
	}
}

// stale reports whether the session changed while a remote call was in
// flight; results of such calls are discarded so a late response can never
// surface state for a session it was not issued under.
func (s *Shell) stale(gen uint64) bool {
	if s.sessions.Generation() != gen {
		s.logger.Debug().Msg("discarding remote result for a stale session")
		return true
	}
	return false
}

func (s *Shell) renderNotification() {
	note, ok := s.notifier.Current()
	if !ok {
		return
	}
	prefix := "[ok]"
	if note.Kind == domain.NotifyError {
		prefix = "[error]"
	}
	fmt.Fprintf(s.out, "%s %s\n", prefix, note.Message)
}

// transportPrefix matches the gateway's internal "gateway: [verb] METHOD
// /path:" error wrapping, which carries no meaning for the user.
var transportPrefix = regexp.MustCompile(`^gateway: (?:(?:decode|encode|build) )?(?:[A-Z]+ \S+: )?`)

// humanError turns a gateway error into the message shown to the user.
func humanError(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "Invalid username or password"
	case errors.Is(err, domain.ErrNotFound):
		return "Record not found"
	case errors.Is(err, domain.ErrForbidden):
		return "Access denied"
	case errors.Is(err, domain.ErrUserExists):
		return "User already exists"
	case errors.Is(err, domain.ErrInvalidInput):
		return "Rejected: " + strings.TrimPrefix(err.Error(), domain.ErrInvalidInput.Error()+": ")
	default:
		return "Request failed: " + transportPrefix.ReplaceAllString(err.Error(), "")
	}
}
