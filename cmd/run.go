package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/commandkit/internal/script"
)

var flagRunCheck bool

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>",
	Short: "Play a scenario file",
	Long: `Play the steps of a YAML scenario file within one session.

A scenario names a default object and distance and lists steps, either as
the tokens 'do' accepts or as mappings:

  object: crate
  distance: 1
  steps:
    - north
    - east:2
    - undo
    - label: heavy
    - {op: move, object: player, direction: up, distance: 3}

Examples:
  commandkit run scenario.yaml
  commandkit run --check scenario.yaml`,
	Args: cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
	},
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&flagRunCheck, "check", false,
		"Parse the scenario and list its steps without playing them")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	sc, err := script.Load(args[0])
	if err != nil {
		return err
	}

	if flagRunCheck {
		if ctx.IsJSON() {
			return ctx.Formatter.JSON(map[string]any{
				"status": "ok",
				"steps":  sc.Steps,
			})
		}
		cli := ctx.CLIFormatter()
		for i, step := range sc.Steps {
			cli.Printf("%3d. %s\n", i+1, step.String())
		}
		cli.Success("Scenario is valid")
		return nil
	}

	return play(cmd.Context(), sc.Steps)
}
