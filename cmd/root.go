// Package cmd provides the CLI commands for commandkit.
package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/commandkit/internal/logging"
	"github.com/manav03panchal/commandkit/internal/output"
	"github.com/manav03panchal/commandkit/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// stdout receives formatted output.
var stdout io.Writer = os.Stdout

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "commandkit",
	Short: "Move scene objects with undoable commands",
	Long: `commandkit drives a small scene of named objects through commands that
can be undone and redone. Each invocation is one session: steps given to
'do' or listed in a scenario file share one history.

Examples:
  commandkit do north east undo south
  commandkit do --object player up:2 label=jumping undo redo
  commandkit run scenario.yaml
  commandkit scene`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		return initContext()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeContext()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show the scene
		return runSceneList(cmd, args)
	},
}

// initContext opens the runtime context from the global flags.
func initContext() error {
	if ctx != nil {
		return nil
	}

	var format output.Format
	switch flagFormat {
	case "json":
		format = output.FormatJSON
	case "plain":
		format = output.FormatPlain
	default:
		format = output.FormatCLI
	}

	var colorMode output.ColorMode
	switch flagColor {
	case "always":
		colorMode = output.ColorAlways
	case "never":
		colorMode = output.ColorNever
	default:
		colorMode = output.ColorAuto
	}

	opts := runtime.DefaultOptions()
	opts.Format = format
	opts.ColorMode = colorMode
	opts.Debug = flagDebug

	var err error
	ctx, err = runtime.New(opts)
	if err != nil {
		return err
	}
	ctx.Formatter.Writer = stdout
	return nil
}

func closeContext() error {
	if ctx == nil {
		return nil
	}
	err := ctx.Close()
	ctx = nil
	return err
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.ExecuteContext(logging.NewSessionContext())
	if err == nil {
		return runtime.ExitOK
	}

	if ctx != nil {
		ctx.ReportError(os.Stderr, err)
		_ = closeContext()
	} else {
		runtime.WriteError(os.Stderr, err)
	}
	return runtime.ExitCode(err)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("commandkit %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}
