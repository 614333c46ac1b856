package robocopy

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"robosync/internal/app"
	appErrors "robosync/internal/errors"
	"robosync/internal/logging"
)

const (
	DefaultBinary = "robocopy"
	// DefaultFatalExitCode is the lowest exit status that means failure;
	// lower codes describe what was copied or skipped.
	DefaultFatalExitCode = 8
)

type Runner struct {
	Binary        string
	FatalExitCode int
	// Env is appended to the inherited environment of the child.
	Env    []string
	Logger logging.Logger
}

func (r Runner) Run(ctx context.Context, inv app.Invocation) error {
	cmd, err := r.command(ctx, inv)
	if err != nil {
		return err
	}

	err = cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		r.Logger.Verbosef("%s exited with code %d", r.binary(), code)
		if code >= 0 && code < r.fatalExitCode() {
			return nil
		}
		return appErrors.Wrap(appErrors.ExternalTool, "run", r.binary(), fmt.Errorf("%w: exit code %d", appErrors.ErrFatalExit, code))
	}
	return appErrors.Wrap(appErrors.ExternalTool, "run", r.binary(), err)
}

// Start launches the utility and returns at once. Output streams are
// discarded; the log file is the only channel the caller reads. The process
// is not bound to ctx: whoever holds the handle decides when to kill it.
func (r Runner) Start(_ context.Context, inv app.Invocation) (app.Process, error) {
	cmd, err := r.command(context.Background(), inv)
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, appErrors.Wrap(appErrors.ExternalTool, "start", r.binary(), err)
	}

	proc := &process{cmd: cmd, done: make(chan struct{})}
	go proc.wait()
	return proc, nil
}

func (r Runner) command(ctx context.Context, inv app.Invocation) (*exec.Cmd, error) {
	path, err := exec.LookPath(r.binary())
	if err != nil {
		return nil, appErrors.Wrap(appErrors.ExternalTool, "lookup", r.binary(), err)
	}

	args := Args(inv)
	r.Logger.Verbosef("%s %s", path, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, path, args...)
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}
	return cmd, nil
}

func (r Runner) binary() string {
	if r.Binary == "" {
		return DefaultBinary
	}
	return r.Binary
}

func (r Runner) fatalExitCode() int {
	if r.FatalExitCode <= 0 {
		return DefaultFatalExitCode
	}
	return r.FatalExitCode
}

type process struct {
	cmd  *exec.Cmd
	done chan struct{}
}

// wait reaps the child; the exit status is read from ProcessState afterwards.
func (p *process) wait() {
	_ = p.cmd.Wait()
	close(p.done)
}

func (p *process) Exited() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

func (p *process) ExitCode() int {
	if !p.Exited() {
		return -1
	}
	return p.cmd.ProcessState.ExitCode()
}

func (p *process) Kill() error {
	if p.Exited() {
		return nil
	}
	err := p.cmd.Process.Kill()
	if errors.Is(err, os.ErrProcessDone) {
		return nil
	}
	return err
}
