package process

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrSubprocessFailed is matched by every *SubprocessError.
var ErrSubprocessFailed = errors.New("subprocess failed")

// Stream identifies which output pipe a line came from.
type Stream string

const (
	Stdout Stream = "stdout"
	Stderr Stream = "stderr"
)

// Step is one program invocation.
type Step struct {
	Program string
	Args    []string
	Dir     string
}

// String renders the step as a command line.
func (s Step) String() string {
	if len(s.Args) == 0 {
		return s.Program
	}
	return s.Program + " " + strings.Join(s.Args, " ")
}

// Line is a single line of subprocess output without its terminator.
type Line struct {
	Stream Stream
	Text   string
}

// Result records how a step ended and what it printed.
type Result struct {
	Step       Step
	ExitStatus int
	Output     []Line
}

// SubprocessError reports a step that could not start (ExitStatus -1) or
// exited with a non-zero status.
type SubprocessError struct {
	Program    string
	Args       []string
	ExitStatus int
	Err        error
}

func (e *SubprocessError) Error() string {
	cmd := Step{Program: e.Program, Args: e.Args}.String()
	if e.ExitStatus < 0 {
		return fmt.Sprintf("%s: %q could not be started: %v", ErrSubprocessFailed, cmd, e.Err)
	}
	return fmt.Sprintf("%s: %q exited with status %d", ErrSubprocessFailed, cmd, e.ExitStatus)
}

func (e *SubprocessError) Is(target error) bool {
	return target == ErrSubprocessFailed
}

func (e *SubprocessError) Unwrap() error {
	return e.Err
}

// LineHandler receives each output line as soon as it is read. Calls for
// stdout and stderr may happen concurrently.
type LineHandler func(step Step, line Line)

// Orchestrator executes steps sequentially.
type Orchestrator struct {
	Logger  *slog.Logger
	Handler LineHandler // nil logs through Logger
}

// Run executes steps in order and returns the results of every step that
// started. On failure the returned error is a *SubprocessError for the
// failing step, whose Result is the last element.
func (o *Orchestrator) Run(ctx context.Context, steps []Step) ([]Result, error) {
	results := make([]Result, 0, len(steps))
	for _, step := range steps {
		res, err := o.runStep(ctx, step)
		results = append(results, res)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

func (o *Orchestrator) runStep(ctx context.Context, step Step) (Result, error) {
	logger := o.logger()
	logger.Info("running", "cmd", step.String(), "dir", step.Dir)

	res := Result{Step: step, ExitStatus: -1}
	fail := func(status int, err error) (Result, error) {
		res.ExitStatus = status
		return res, &SubprocessError{
			Program:    step.Program,
			Args:       step.Args,
			ExitStatus: status,
			Err:        err,
		}
	}

	cmd := exec.CommandContext(ctx, step.Program, step.Args...)
	cmd.Dir = step.Dir

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fail(-1, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fail(-1, err)
	}
	if err := cmd.Start(); err != nil {
		return fail(-1, err)
	}

	var mu sync.Mutex
	emit := func(l Line) {
		o.handle(step, l)
		mu.Lock()
		res.Output = append(res.Output, l)
		mu.Unlock()
	}

	// Both pipes must be drained before Wait closes them.
	var g errgroup.Group
	g.Go(func() error { return scanLines(stdout, Stdout, emit) })
	g.Go(func() error { return scanLines(stderr, Stderr, emit) })
	readErr := g.Wait()

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fail(exitErr.ExitCode(), err)
		}
		return fail(-1, err)
	}
	if readErr != nil {
		logger.Warn("reading subprocess output", "cmd", step.String(), "err", readErr)
	}

	res.ExitStatus = 0
	return res, nil
}

func (o *Orchestrator) handle(step Step, l Line) {
	if o.Handler != nil {
		o.Handler(step, l)
		return
	}
	LogLine(o.logger())(step, l)
}

func (o *Orchestrator) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

// LogLine returns a LineHandler that logs stdout lines at info and stderr
// lines at warn.
func LogLine(logger *slog.Logger) LineHandler {
	return func(step Step, l Line) {
		level := slog.LevelInfo
		if l.Stream == Stderr {
			level = slog.LevelWarn
		}
		logger.Log(context.Background(), level, l.Text, "program", step.Program, "stream", string(l.Stream))
	}
}

func scanLines(r io.Reader, stream Stream, emit func(Line)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		emit(Line{Stream: stream, Text: sc.Text()})
	}
	if err := sc.Err(); err != nil {
		// Keep draining so the child never blocks on a full pipe.
		_, _ = io.Copy(io.Discard, r)
		return err
	}
	return nil
}
