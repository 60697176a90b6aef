package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/mpm/internal/errors"
	"github.com/thoreinstein/mpm/internal/event"
	"github.com/thoreinstein/mpm/internal/logging"
	"github.com/thoreinstein/mpm/internal/project"
	"github.com/thoreinstein/mpm/internal/shell"
	"github.com/thoreinstein/mpm/internal/state"
)

// stateStore is the remembered-project store. Tests replace it.
var stateStore = state.Default

// eventPrinter renders lifecycle events for a terminal. Progress goes to
// errOut so stdout carries only toolchain output.
type eventPrinter struct {
	out, errOut io.Writer
	quiet       bool

	started, failed, done *color.Color
}

func newEventPrinter(out, errOut io.Writer, quiet bool) *eventPrinter {
	p := &eventPrinter{
		out:     out,
		errOut:  errOut,
		quiet:   quiet,
		started: color.New(color.FgCyan),
		failed:  color.New(color.FgRed, color.Bold),
		done:    color.New(color.FgGreen),
	}
	if !logging.SupportsColor(errOut) {
		for _, c := range []*color.Color{p.started, p.failed, p.done} {
			c.DisableColor()
		}
	}
	return p
}

// Notify implements event.Observer.
func (p *eventPrinter) Notify(e event.Event) {
	switch e.Kind {
	case event.Started:
		if !p.quiet {
			p.started.Fprintf(p.errOut, "==> %s\n", e.Text)
		}
	case event.Output:
		if e.Text == "" || p.quiet {
			return
		}
		fmt.Fprint(p.out, e.Text)
		if !strings.HasSuffix(e.Text, "\n") {
			fmt.Fprintln(p.out)
		}
	case event.Error:
		p.failed.Fprintf(p.errOut, "error: %s\n", strings.TrimRight(e.Text, "\n"))
	case event.Completed:
		if !p.quiet {
			p.done.Fprintf(p.errOut, "ok: %s\n", e.Text)
		}
	}
}

// session bundles the objects one project command needs.
type session struct {
	manager *project.Manager
	errs    *event.Recorder
}

// openSession builds a manager for the resolved project directory and
// wires the terminal printer to its events. The directory must exist.
func openSession(cmd *cobra.Command) (*session, error) {
	dir, err := resolveExistingProjectDir(cmd)
	if err != nil {
		return nil, err
	}
	return openSessionAt(cmd, dir), nil
}

// openSessionAt is openSession for an explicit directory.
func openSessionAt(cmd *cobra.Command, dir string) *session {
	return newSession(cmd, dir, newEventPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), quiet))
}

// openQuietSession is openSessionAt without terminal output.
func openQuietSession(cmd *cobra.Command, dir string) *session {
	return newSession(cmd, dir, nil)
}

func newSession(cmd *cobra.Command, dir string, printer event.Observer) *session {
	family, ok := shell.ParseFamily(cfg.Shell)
	if !ok {
		family = shell.HostFamily()
	}

	bus := event.NewBus()
	if printer != nil {
		bus.Subscribe(printer)
	}

	errs := &event.Recorder{}
	bus.Subscribe(event.ObserverFunc(func(e event.Event) {
		if e.Kind == event.Error {
			errs.Notify(e)
		}
	}))

	m := project.NewManager(bus, shell.NewExecutor(family, bus), commandsFromConfig())
	m.SetProjectDirectory(cmd.Context(), dir)

	return &session{manager: m, errs: errs}
}

// result converts reported error events into the command's exit error.
func (s *session) result() error {
	n := s.errs.Count(event.Error)
	if n == 0 {
		return nil
	}
	err := errors.Wrapf(errors.ErrCommandFailed, "%d error(s) reported", n)
	return errors.NewSystemError(err, "Re-run with -v for details, or run: mpm doctor")
}

// requireValid fails with a user error when the project is not a MAUI
// application. The manager itself skips such operations silently.
func (s *session) requireValid() error {
	pc := s.manager.Context()
	switch s.manager.State() {
	case project.Valid:
		return nil
	case project.Unset:
		return errors.NewUserError(errors.ErrNoProject, "Run: mpm use <path>")
	default:
		if pc.DescriptorPath == "" {
			return errors.NewUserError(
				errors.Wrapf(errors.ErrNoProject, "no .csproj file in %s", pc.Root),
				"Run: mpm create")
		}
		return errors.NewUserError(
			errors.Wrapf(errors.ErrNoProject, "%s is not a MAUI application", pc.DescriptorPath),
			"Check UseMaui and OutputType in the project file")
	}
}

func commandsFromConfig() project.Commands {
	return project.Commands{
		Toolchain:     cfg.Toolchain,
		Template:      cfg.Template,
		AndroidDevice: cfg.AndroidDevice,
	}
}

// resolveProjectDir picks the project directory: --project, then the
// remembered project if it still exists, then the working directory.
func resolveProjectDir(cmd *cobra.Command) (string, error) {
	if projectFlag != "" {
		return projectFlag, nil
	}

	logger := logging.FromContext(cmd.Context())

	root, err := stateStore().Root()
	if err != nil {
		logger.Warn("ignoring unreadable state file", "error", err)
	}
	if root != "" {
		if info, err := os.Stat(root); err == nil && info.IsDir() {
			logger.Debug("using remembered project", "root", root)
			return root, nil
		}
		logger.Warn("remembered project no longer exists", "root", root)
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", errors.NewSystemError(errors.Wrap(err, "getting working directory"), "Use --project to name the project directory")
	}
	return wd, nil
}

// resolveExistingProjectDir is resolveProjectDir for commands that must not
// create the directory as a side effect.
func resolveExistingProjectDir(cmd *cobra.Command) (string, error) {
	dir, err := resolveProjectDir(cmd)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewUserError(
				errors.Wrapf(errors.ErrNoProject, "%s does not exist", dir),
				"Run: mpm create -C "+dir)
		}
		return "", errors.NewSystemError(errors.Wrapf(err, "checking %s", dir), "")
	}
	return dir, nil
}

// PrintError writes err and its suggestion, if any, for the user. An
// ExitError without a cause carries only an exit code and prints nothing.
func PrintError(w io.Writer, err error) {
	var exitErr *errors.ExitError
	hasExit := errors.As(err, &exitErr)
	if hasExit && exitErr.Err == nil {
		return
	}

	fmt.Fprintf(w, "Error: %v\n", err)
	if hasExit && exitErr.Suggestion != "" {
		fmt.Fprintf(w, "  %s\n", exitErr.Suggestion)
	}
}
