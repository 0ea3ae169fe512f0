// Package shell implements the command resolution and execution engine: it
// tokenizes one line of input, classifies the leading token as a built-in or
// an executable on the search path, performs the matched operation, and maps
// the outcome to a single textual response.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"gush/internal/exec"
	"gush/internal/slogger"
)

// ErrExit signals that the exit builtin ran. The surrounding loop stops on
// it and the process terminates with code 0; no Response is produced.
var ErrExit = errors.New("exit")

// Response is the textual result of executing one CommandLine. Exactly one
// Response is produced per line. Text may be empty, meaning no output at
// all. Err routes the text to the error stream instead of standard output;
// it never means the interpreter should stop.
type Response struct {
	Text string
	Err  bool
}

// commandRunner is the slice of the exec.Executor contract the dispatcher
// uses to spawn external commands.
type commandRunner interface {
	Run(ctx context.Context, opts *exec.RunOptions) (*exec.Result, error)
}

// Dispatcher executes command lines. Built-ins run in-process against the
// Environ; everything else resolves through the Resolver and spawns via the
// runner. The dispatcher is synchronous: Dispatch blocks until the command,
// external children included, has finished.
type Dispatcher struct {
	resolver *Resolver
	env      Environ
	runner   commandRunner
	childErr io.Writer
}

// NewDispatcher wires a Dispatcher. childErr receives the standard error of
// spawned children; it is never part of a Response. A nil childErr discards
// child diagnostics.
func NewDispatcher(resolver *Resolver, env Environ, runner commandRunner, childErr io.Writer) *Dispatcher {
	if childErr == nil {
		childErr = io.Discard
	}
	return &Dispatcher{
		resolver: resolver,
		env:      env,
		runner:   runner,
		childErr: childErr,
	}
}

// Dispatch processes one raw input line and returns its Response. A line
// with no tokens yields an empty Response with nothing attempted. The error
// return carries control flow only: ErrExit for the exit builtin, or an
// unrecoverable failure (losing the working directory) that must abort the
// surrounding loop. All per-command diagnostics arrive as error-classified
// Responses, and the loop keeps running after them.
func (d *Dispatcher) Dispatch(ctx context.Context, line string) (Response, error) {
	cl := ParseLine(line)
	if cl.Empty() {
		return Response{}, nil
	}

	if b, ok := LookupBuiltin(cl.Name); ok {
		return d.runBuiltin(b, cl.Args)
	}
	return d.runExternal(ctx, cl), nil
}

// runBuiltin dispatches the closed built-in set through a single exhaustive
// switch.
func (d *Dispatcher) runBuiltin(b Builtin, args []string) (Response, error) {
	switch b {
	case BuiltinEcho:
		return Response{Text: strings.Join(args, " ")}, nil

	case BuiltinExit:
		// Arguments are ignored; the interpreter always exits with code 0.
		return Response{}, ErrExit

	case BuiltinType:
		return d.classify(args), nil

	case BuiltinPwd:
		dir, err := d.env.Getwd()
		if err != nil {
			return Response{}, fmt.Errorf("pwd: %w", err)
		}
		return Response{Text: dir}, nil

	case BuiltinCd:
		return d.changeDir(args), nil

	default:
		panic("shell: unhandled builtin " + b.String())
	}
}

// classify implements the type builtin: report whether its argument is a
// built-in, an executable on the search path, or unknown.
func (d *Dispatcher) classify(args []string) Response {
	if len(args) == 0 {
		return Response{Text: "type: expected an argument of a command name", Err: true}
	}

	name := args[0]
	switch res := d.resolver.Resolve(name); res.Kind {
	case ResolvedBuiltin:
		return Response{Text: res.Builtin.Description()}
	case ResolvedExternal:
		return Response{Text: name + " is " + res.Path}
	default:
		return Response{Text: name + ": not found", Err: true}
	}
}

// changeDir implements the cd builtin. With no argument it targets HOME.
// Every failure is reported as a diagnostic Response; cd never aborts the
// interpreter.
func (d *Dispatcher) changeDir(args []string) Response {
	var target string
	if len(args) > 0 {
		expanded, ok := d.expandHome(args[0])
		if !ok {
			return Response{Text: "cd: HOME environment variable not set", Err: true}
		}
		target = expanded
	} else {
		target = d.env.Getenv("HOME")
	}
	if target == "" {
		return Response{Text: "cd: HOME environment variable not set", Err: true}
	}

	err := d.env.Chdir(target)
	switch {
	case err == nil:
		return Response{}
	case errors.Is(err, fs.ErrNotExist):
		return Response{Text: fmt.Sprintf("cd: %s: No such file or directory", target), Err: true}
	case errors.Is(err, fs.ErrPermission):
		return Response{Text: fmt.Sprintf("cd: permission denied: %s", target), Err: true}
	default:
		return Response{Text: fmt.Sprintf("cd: error changing to %s: %v", target, rawError(err)), Err: true}
	}
}

// rawError strips the operation and path a *fs.PathError carries, leaving
// only the underlying cause. The cd diagnostic already names the target, so
// the wrapped form would state it twice.
func rawError(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}

// expandHome rewrites a leading tilde to the HOME directory: "~" alone and
// "~/rest" expand, tildes anywhere else are literal path characters. ok is
// false when expansion was required but HOME is unset.
func (d *Dispatcher) expandHome(arg string) (string, bool) {
	if arg != "~" && !strings.HasPrefix(arg, "~/") {
		return arg, true
	}
	home := d.env.Getenv("HOME")
	if home == "" {
		return "", false
	}
	if arg == "~" {
		return home, true
	}
	return filepath.Join(home, arg[2:]), true
}

// runExternal resolves a non-built-in name on the search path and spawns it,
// blocking until the child exits. The child's captured standard output,
// minus exactly one trailing newline sequence, becomes the Response; its
// standard error flows to childErr and is never captured.
func (d *Dispatcher) runExternal(ctx context.Context, cl CommandLine) Response {
	log := slogger.L(ctx)

	path, ok := d.resolver.ResolveExternal(cl.Name)
	if !ok {
		return Response{Text: cl.Name + ": command not found", Err: true}
	}
	log.Debug("spawning external command", "name", cl.Name, "path", path)

	result, err := d.runner.Run(ctx, &exec.RunOptions{
		Name:   path,
		Args:   cl.Args,
		Stderr: d.childErr,
	})
	if result == nil {
		// The child never started (removed or unrunnable since resolution).
		// This stays a per-command diagnostic; the interpreter keeps going.
		log.Error("spawn failed", "name", cl.Name, "path", path, "err", err)
		return Response{Text: cl.Name + ": failed to execute", Err: true}
	}
	if err != nil {
		// Non-zero exit is not a dispatch failure; the output still stands.
		log.Debug("command exited with error", "name", cl.Name, "err", err)
	}
	return Response{Text: trimOneNewline(string(result.Stdout))}
}

// trimOneNewline removes exactly one trailing "\r\n" or "\n" sequence. A
// carriage return on its own is not a newline sequence and stays put.
func trimOneNewline(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	return strings.TrimSuffix(s, "\n")
}
