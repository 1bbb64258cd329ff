// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"envf/internal/config"
	"envf/internal/launcher"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// rootCmd is the only command: envf has no subcommands, just the
	// launcher grammar. Flag parsing is disabled because launcher flags
	// are a strict prefix of the argument vector and everything after the
	// first non-flag argument belongs to the target command verbatim —
	// pflag would reject or reorder those tokens. args.go owns the scan.
	rootCmd = &cobra.Command{
		Use:                "envf [(-f FILE) ...] [-f=FILE ...] [-s] COMMAND [ARGS...]",
		Short:              "Run a command in an environment augmented from TOML files",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(args, os.Stderr)
		},
	}

	// newLauncher builds the launcher for a run. Injectable for testing —
	// tests swap it for one whose exec records its arguments instead of
	// replacing the test process.
	newLauncher = func(logger *log.Logger) *launcher.Launcher {
		return launcher.New(logger)
	}
)

// Execute runs the root command and maps its outcome to a process exit
// code. This is called by main.main(). On a successful launch the process
// image has already been replaced and Execute never returns at all.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// versionString returns a formatted version string for display.
func versionString() string {
	if Version == "dev" {
		return "envf dev (built from source)"
	}
	return fmt.Sprintf("envf %s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// run is the whole launcher pipeline: parse the argument vector, build the
// merged environment, replace the process image. All diagnostics go to
// stderr — stdout belongs to the launched command.
func run(args []string, stderr io.Writer) error {
	logger := newDiagLogger(stderr)

	inv, err := parseArgs(args)
	var usageErr *usageError
	switch {
	case errors.Is(err, errHelpRequested):
		printUsage(stderr)
		return nil
	case errors.Is(err, errVersionRequested):
		fmt.Fprintln(stderr, versionString())
		return nil
	case errors.As(err, &usageErr):
		logger.Error(usageErr.msg)
		fmt.Fprintln(stderr)
		printUsage(stderr)
		return &ExitError{Code: 1, Err: err}
	case err != nil:
		return err
	}

	cfg, err := config.Load()
	if err != nil && !inv.silent {
		logger.Warn(err.Error())
	}

	// Config-file defaults sit below command-line files in the override
	// order, and -s cannot be un-set by the config file.
	files := append(cfg.Files, inv.files...)
	silent := inv.silent || cfg.Silent

	l := newLauncher(logger)
	env := l.MergeEnv(files, silent)

	// Run returns only when the process image could not be replaced. The
	// user's invocation was fine, so this error is printed without usage
	// text.
	err = l.Run(inv.command, env)
	logger.Error(err.Error())
	return &ExitError{Code: 1, Err: err}
}
