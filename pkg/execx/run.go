// Package execx runs external processes synchronously while streaming their
// output to the task log.
package execx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
)

// defaultTailSize bounds how much stderr is kept for error reporting.
const defaultTailSize = 8 * 1024

// Command describes one process execution.
type Command struct {
	Name string
	Args []string
	// Env is the full process environment; nil inherits the current one.
	Env []string
	// Stdin is fed to the process; nil means no input.
	Stdin io.Reader
}

// String renders the command line the way it is echoed to the log.
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Result is the outcome of a process execution.
type Result struct {
	// Code is the exit status, or -1 when the process could not be started.
	Code int
	// Err is nil only when Code is 0.
	Err error
	// Stderr is the trailing part of the standard error stream.
	Stderr string
}

// Runner executes a Command to completion.
type Runner interface {
	Run(ctx context.Context, cmd Command) Result
}

// StreamRunner runs processes with stdout/stderr passed through to the given
// writers as they are produced.
type StreamRunner struct {
	Stdout io.Writer
	Stderr io.Writer
	// TailSize caps the captured stderr; zero uses 8KiB.
	TailSize int
}

// NewStreamRunner returns a runner writing to the current process streams.
func NewStreamRunner() *StreamRunner {
	return &StreamRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run starts cmd and blocks until it exits. The command line is echoed as
// "[command]<line>" before the process starts.
func (r *StreamRunner) Run(ctx context.Context, cmd Command) Result {
	stdout := r.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = io.Discard
	}
	size := r.TailSize
	if size <= 0 {
		size = defaultTailSize
	}

	fmt.Fprintf(stdout, "[command]%s\n", cmd.String())

	tail := newTailBuffer(size)
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Env = cmd.Env
	c.Stdin = cmd.Stdin
	c.Stdout = stdout
	c.Stderr = io.MultiWriter(stderr, tail)

	err := c.Run()
	if err == nil {
		return Result{Code: 0, Stderr: tail.String()}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Result{Code: exitErr.ExitCode(), Err: err, Stderr: tail.String()}
	}
	return Result{Code: -1, Err: err, Stderr: tail.String()}
}

// tailBuffer keeps the last max bytes written to it.
type tailBuffer struct {
	mu  sync.Mutex
	max int
	buf []byte
}

func newTailBuffer(max int) *tailBuffer {
	return &tailBuffer{max: max}
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.max; over > 0 {
		t.buf = append(t.buf[:0], t.buf[over:]...)
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return string(t.buf)
}
