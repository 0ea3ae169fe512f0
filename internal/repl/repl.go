// Package repl runs the interpreter's read-eval-print loop: it reads one
// line at a time from an input stream, hands it to the dispatcher, and
// routes each response to exactly one of the output streams.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"gush/internal/shell"
	"gush/internal/slogger"
)

// dispatcher is the slice of the shell.Dispatcher contract the loop uses.
type dispatcher interface {
	Dispatch(ctx context.Context, line string) (shell.Response, error)
}

// Options configure a Loop.
type Options struct {
	// Prompt is written before each read when Interactive is set.
	Prompt string

	// Interactive enables prompt emission. Piped input and one-shot runs
	// leave it off.
	Interactive bool
}

// Loop reads lines from in and dispatches them until the input is exhausted
// or a command stops the session.
type Loop struct {
	dispatcher dispatcher
	in         io.Reader
	out        io.Writer
	errOut     io.Writer
	opts       Options
}

// New wires a Loop over the given streams. Command output and the prompt go
// to out; error-classified responses go to errOut.
func New(d dispatcher, in io.Reader, out, errOut io.Writer, opts Options) *Loop {
	return &Loop{
		dispatcher: d,
		in:         in,
		out:        out,
		errOut:     errOut,
		opts:       opts,
	}
}

// Run processes lines until the input ends or a command stops the loop. The
// exit builtin and end of input both finish the session cleanly; a transport
// failure or an unrecoverable command error aborts with that error.
func (l *Loop) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(l.in)
	for {
		if l.opts.Interactive {
			fmt.Fprint(l.out, l.opts.Prompt)
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			slogger.L(ctx).Debug("input exhausted")
			return nil
		}
		if err := l.RunLine(ctx, scanner.Text()); err != nil {
			if errors.Is(err, shell.ErrExit) {
				return nil
			}
			return err
		}
	}
}

// RunLine dispatches a single line and routes its response. The exit builtin
// surfaces as shell.ErrExit for the caller to map to a clean stop.
func (l *Loop) RunLine(ctx context.Context, line string) error {
	resp, err := l.dispatcher.Dispatch(ctx, line)
	if err != nil {
		return err
	}
	if resp.Text == "" {
		return nil
	}

	w := l.out
	if resp.Err {
		w = l.errOut
	}
	if _, err := fmt.Fprintln(w, resp.Text); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}
