// Package cli implements the yfiles2mermaid command-line interface.
//
// The command takes exactly one argument, the path of a yFiles GraphML file,
// and prints the equivalent Mermaid flowchart on standard output. Diagnostics
// and log messages go to standard error.
//
// # Exit codes
//
//   - 0: success
//   - 1: usage error (usage printed on stdout), parse error, or any other failure
//   - 130: interrupted
//
// # Logging
//
// --verbose (-v) enables debug logging via charmbracelet/log. The logger is
// attached to the command context and retrieved with loggerFromContext.
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/yfiles2mermaid/pkg/buildinfo"
	"github.com/matzehuels/yfiles2mermaid/pkg/errors"
)

const (
	// appName is the application name used for display.
	appName = "yfiles2mermaid"

	// usageLine is printed on stdout when the arguments are wrong.
	usageLine = "Usage: " + appName + " <path_to_graphml_file>"
)

// Exit codes returned by Execute.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInterrupted = 130
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger

	stdout io.Writer
	stderr io.Writer
}

// New creates a CLI that writes results to stdout and diagnostics to stderr.
func New(stdout, stderr io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(stderr, level),
		stdout: stdout,
		stderr: stderr,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose bool
		opts    convertOpts
	)

	root := &cobra.Command{
		Use:   appName + " <path_to_graphml_file>",
		Short: "Convert yFiles GraphML diagrams to Mermaid flowcharts",
		Long: `yfiles2mermaid reads a diagram saved by yEd Live or yFiles for HTML and prints
it as a Mermaid flowchart. Label text colors, node border colors, and the
layout direction are carried over as inline Mermaid styles.`,
		Version:       buildinfo.Version,
		Args:          exactlyOneInput,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd.Context(), args[0], &opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Wrap(errors.ErrCodeInvalidUsage, err, "invalid flags")
	})

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().StringVarP(&opts.config, "config", "c", "", "TOML file with [theme] overrides")

	return root
}

// Execute runs the command with args (without the program name) and returns
// the process exit code. Errors are reported on the CLI's writers.
func (c *CLI) Execute(ctx context.Context, args []string) int {
	root := c.RootCommand()
	root.SetArgs(args)
	return c.report(root.ExecuteContext(ctx))
}

// exactlyOneInput rejects any arity other than a single input path.
func exactlyOneInput(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New(errors.ErrCodeInvalidUsage, "expected 1 argument, got %d", len(args))
	}
	return nil
}

// report prints err in the form its class calls for and maps it to an exit code.
func (c *CLI) report(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case stderrors.Is(err, context.Canceled):
		return ExitInterrupted
	case errors.Is(err, errors.ErrCodeInvalidUsage):
		fmt.Fprintln(c.stdout, usageLine)
	case errors.Is(err, errors.ErrCodeParse):
		printError(c.stderr, "Error parsing XML file: %s", errors.UserMessage(err))
	default:
		printError(c.stderr, "An unexpected error occurred: %s", errors.UserMessage(err))
	}
	return ExitFailure
}
