package shell

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"sync"

	"github.com/thoreinstein/mpm/internal/errors"
	"github.com/thoreinstein/mpm/internal/event"
	"github.com/thoreinstein/mpm/internal/logging"
)

// Result is the captured outcome of a finished process.
type Result struct {
	// ExitCode is -1 when the process was terminated by a signal.
	ExitCode int

	// Signal describes the terminating signal, if any.
	Signal string

	Stdout string
	Stderr string
}

// Executor runs command lines and emits their lifecycle events.
type Executor struct {
	family  Family
	emitter event.Emitter
}

// NewExecutor returns an Executor for family that reports to emitter.
func NewExecutor(family Family, emitter event.Emitter) *Executor {
	return &Executor{family: family, emitter: emitter}
}

// Family returns the shell family the executor launches commands with.
func (e *Executor) Family() Family {
	return e.family
}

// Execute runs commandLine in dir and reports whether it exited with code
// zero. The context carries the logger only; running processes are never
// cancelled.
func (e *Executor) Execute(ctx context.Context, dir, commandLine string) (ok bool) {
	logger := logging.FromContext(ctx).With("command", commandLine, "dir", dir)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("command panicked", "panic", r)
			e.emitter.Emit(event.Error, fmt.Sprintf("error executing command: %v", r))
			ok = false
		}
	}()

	e.emitter.Emit(event.Started, commandLine)
	logger.Debug("starting command", "shell", e.family)

	res, err := e.run(e.family.Build(dir, commandLine))
	var startErr *startError
	switch {
	case errors.As(err, &startErr):
		logger.Warn("command failed to start", "error", err)
		e.emitter.Emit(event.Error, fmt.Sprintf("process failed to start: %v", startErr.cause))
		return false
	case err != nil:
		logger.Warn("command failed", "error", err)
		e.emitter.Emit(event.Error, fmt.Sprintf("error executing command: %v", err))
		return false
	}

	logger.Log(ctx, logging.LevelTrace, "command output", "stdout", res.Stdout, "stderr", res.Stderr)

	if res.ExitCode != 0 {
		logger.Info("command exited non-zero", "exit_code", res.ExitCode, "signal", res.Signal)
		code := fmt.Sprintf("%d", res.ExitCode)
		if res.Signal != "" {
			code += " (" + res.Signal + ")"
		}
		e.emitter.Emit(event.Error, fmt.Sprintf("command failed with exit code %s: %s", code, res.Stderr))
		return false
	}

	logger.Debug("command completed", "stdout_bytes", len(res.Stdout))
	e.emitter.Emit(event.Output, res.Stdout)
	e.emitter.Emit(event.Completed, commandLine)
	return true
}

// startError marks a process that could not be launched.
type startError struct{ cause error }

func (s *startError) Error() string { return s.cause.Error() }
func (s *startError) Unwrap() error { return s.cause }

// run launches spec and captures both streams. A non-zero exit or a
// terminating signal is reported through Result, not as an error.
func (e *Executor) run(spec Spec) (Result, error) {
	cmd := exec.Command(spec.Program, spec.Args...)
	cmd.Dir = spec.Dir
	configureProcess(cmd)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Result{}, &startError{cause: err}
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return Result{}, &startError{cause: err}
	}

	if err := cmd.Start(); err != nil {
		return Result{}, &startError{cause: err}
	}

	// Both pipes are drained before Wait so neither stream can block the
	// child on a full buffer.
	var (
		wg                     sync.WaitGroup
		outBuf, errBuf         bytes.Buffer
		outReadErr, errReadErr error
	)
	wg.Go(func() { _, outReadErr = io.Copy(&outBuf, stdout) })
	wg.Go(func() { _, errReadErr = io.Copy(&errBuf, stderr) })
	wg.Wait()

	res := Result{Stdout: outBuf.String(), Stderr: errBuf.String()}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			if res.ExitCode < 0 {
				res.Signal = exitErr.String()
			}
			return res, nil
		}
		return res, errors.Wrap(err, "waiting for process")
	}

	if outReadErr != nil {
		return res, errors.Wrap(outReadErr, "reading stdout")
	}
	if errReadErr != nil {
		return res, errors.Wrap(errReadErr, "reading stderr")
	}

	return res, nil
}
