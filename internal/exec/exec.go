// Package exec provides an abstraction over spawning external commands.
package exec

import (
	"context"
	"io"
)

// Result holds the outcome of a command that ran to completion.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// RunOptions configures command execution.
type RunOptions struct {
	Name   string    // Executable path or name (required)
	Args   []string  // Command arguments
	Dir    string    // Working directory (empty = inherit)
	Env    []string  // Extra environment entries (KEY=VALUE format)
	Stdin  io.Reader // Stdin source (nil = no input)
	Stdout io.Writer // If set, streams stdout here instead of capturing
	Stderr io.Writer // If set, streams stderr here instead of capturing
}

// Executor runs external commands.
type Executor interface {
	// Run executes a command and blocks until it finishes. Output of a
	// stream without a writer set in opts is captured into the Result; a
	// stream with a writer set is passed through and left nil there. A
	// command that runs but exits non-zero returns a valid Result alongside
	// the os/exec ExitError. A nil Result means the command never started.
	Run(ctx context.Context, opts *RunOptions) (*Result, error)
}
