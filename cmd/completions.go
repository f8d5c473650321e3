package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// stepWords are the step tokens offered for completion.
var stepWords = []string{
	"north\tmove forward",
	"south\tmove back",
	"east\tmove right",
	"west\tmove left",
	"up\tmove up",
	"down\tmove down",
	"undo\tstep back in history",
	"redo\tstep forward in history",
	"clear\tforget history",
	"label=\tset a label",
}

// objectNames returns object names with the given prefix.
// Completion runs without the pre-run hook, so the context is opened here.
func objectNames(toComplete string) []string {
	if initContext() != nil {
		return nil
	}
	defer closeContext()

	objs, err := ctx.ObjectRepo.List()
	if err != nil {
		return nil
	}

	var completions []string
	for _, obj := range objs {
		if strings.HasPrefix(obj.Name, toComplete) {
			completions = append(completions, obj.Name+"\t"+obj.Position.String())
		}
	}
	return completions
}

// completeObjectArgs handles completion for commands that take an object name.
func completeObjectArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// Only complete first argument
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return objectNames(toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeObjectFlag completes the --object flag.
func completeObjectFlag(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return objectNames(toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeSteps completes step tokens for the do command.
func completeSteps(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var filtered []string
	for _, w := range stepWords {
		if strings.HasPrefix(strings.Split(w, "\t")[0], toComplete) {
			filtered = append(filtered, w)
		}
	}
	return filtered, cobra.ShellCompDirectiveNoFileComp
}
