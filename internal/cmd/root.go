// Package cmd implements the gush CLI using Cobra. The root command runs the
// interactive interpreter loop; a single line can be run instead with -c.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"gush/internal/config"
	"gush/internal/exec"
	"gush/internal/repl"
	"gush/internal/shell"
	"gush/internal/slogger"
)

// appConfig holds the loaded application configuration.
var appConfig *config.Config

// commandLine holds the -c flag value: one line to run instead of the loop.
var commandLine string

// verbosity counts the -v flags.
var verbosity int

var rootCmd = &cobra.Command{
	Use:   "gush",
	Short: "An interactive command interpreter",
	Long: `Gush is a small interactive command interpreter. It reads one line at a
time, runs built-in commands (echo, type, exit, pwd, cd) in-process, and
spawns anything else from PATH, printing each command's result before the
next read.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := appConfig
		if cfg == nil {
			// Config loading already warned; fall back to defaults.
			cfg = &config.Config{Prompt: config.DefaultPrompt, Verbosity: config.DefaultVerbosity}
		}
		if verbosity > 0 {
			cfg.Verbosity = verbosity
		}

		logger := slogger.New(slogger.Config{
			Verbosity: cfg.Verbosity,
			Output:    cmd.ErrOrStderr(),
		})

		// Store dependencies in context for subcommands
		ctx := cmd.Context()
		ctx = WithConfig(ctx, cfg)
		ctx = slogger.WithLogger(ctx, logger)
		cmd.SetContext(ctx)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg := ConfigFromContext(ctx)

		env := shell.OSEnviron()
		resolver := shell.NewResolver(shell.SearchPathFrom(env.Getenv("PATH")))
		dispatcher := shell.NewDispatcher(resolver, env, exec.New(), cmd.ErrOrStderr())

		loop := repl.New(dispatcher, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), repl.Options{
			Prompt:      cfg.Prompt,
			Interactive: isInteractive(cmd.InOrStdin()),
		})

		if cmd.Flags().Changed("command") {
			err := loop.RunLine(ctx, commandLine)
			if errors.Is(err, shell.ErrExit) {
				return nil
			}
			return err
		}
		return loop.Run(ctx)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringVarP(&commandLine, "command", "c", "", "run a single command line and exit")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (-v info, -vv debug)")
}

func initConfig() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		return
	}
	appConfig = cfg
}

// isInteractive reports whether the reader is a terminal. Prompts are only
// written for terminal sessions; piped input stays clean.
func isInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
