package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/commandkit/internal/command"
	"github.com/manav03panchal/commandkit/internal/logging"
	"github.com/manav03panchal/commandkit/internal/runtime"
	"github.com/manav03panchal/commandkit/internal/script"
	"github.com/manav03panchal/commandkit/internal/validate"
)

var (
	flagDoObject   string
	flagDoDistance float64
)

// doCmd represents the do command.
var doCmd = &cobra.Command{
	Use:   "do <steps...>",
	Short: "Play steps against the scene",
	Long: `Play steps in order within one session.

Steps:
  north, south, east, west, up, down   move one unit
  w, a, s, d, arrowup, ...              key-style aliases
  up:2, crate.east:0.5                  distance and object
  label=hello, crate.label=hello        set a label
  undo (z), redo (y)                    walk the history
  clear                                 forget the history

Examples:
  commandkit do north east undo south
  commandkit do --object player --distance 2 w w a undo
  commandkit do label=heavy label=fragile undo`,
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeSteps,
	RunE:              runDo,
}

func init() {
	doCmd.Flags().StringVarP(&flagDoObject, "object", "o", "",
		"Object for steps that don't name one (default from COMMANDKIT_DEFAULT_OBJECT)")
	doCmd.Flags().Float64VarP(&flagDoDistance, "distance", "d", 0,
		"Distance for moves that don't give one (default from COMMANDKIT_DEFAULT_DISTANCE)")
	_ = doCmd.RegisterFlagCompletionFunc("object", completeObjectFlag)

	rootCmd.AddCommand(doCmd)
}

func runDo(cmd *cobra.Command, args []string) error {
	steps, err := script.ParseArgs(args)
	if err != nil {
		return err
	}

	if flagDoObject != "" {
		if err := validate.ObjectName(flagDoObject); err != nil {
			return err
		}
		ctx.Config.Scene.DefaultObject = flagDoObject
	}
	if cmd.Flags().Changed("distance") {
		if err := validate.Distance(flagDoDistance); err != nil {
			return err
		}
		ctx.Config.Scene.DefaultDistance = flagDoDistance
	}

	return play(cmd.Context(), steps)
}

// play runs steps in the session and prints what happened.
func play(c context.Context, steps []script.Step) error {
	log := logging.FromContext(c).With(logging.KeyComponent, "cli")

	outcomes, runErr := ctx.Runner().Run(c, steps)
	log.Debug("steps played",
		logging.KeyCount, len(outcomes),
		logging.KeyCursor, ctx.Storage.Cursor(),
		logging.KeyHistoryLen, ctx.Storage.Len(),
	)
	ctx.Debugf("history at %d of %d, %d active", ctx.Storage.Cursor(), ctx.Storage.Len(), ctx.Storage.ActiveCount())

	objs, err := ctx.ObjectRepo.List()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		if err := ctx.JSONFormatter().PrintRun(outcomes, ctx.Storage.Entries(),
			ctx.Storage.Cursor(), ctx.Storage.ActiveKinds(), objs, runErr); err != nil {
			return err
		}
		return runtime.Reported(runErr)
	}

	cli := ctx.CLIFormatter()
	cli.PrintOutcomes(outcomes)
	if runErr != nil {
		return runErr
	}

	if failed := countFailed(outcomes); failed > 0 {
		log.Warn("some steps failed", logging.KeyCount, failed)
	}

	cli.Println()
	cli.PrintHistory(ctx.Storage.Entries(), ctx.Storage.Cursor())
	cli.PrintActive(ctx.Storage.ActiveKinds())
	cli.Println()
	for _, obj := range objs {
		cli.PrintObject(obj)
	}
	return nil
}

func countFailed(outcomes []script.Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Result.Status == command.StatusFailed {
			n++
		}
	}
	return n
}
