package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/commandkit/internal/model"
	"github.com/manav03panchal/commandkit/internal/validate"
)

// sceneCmd represents the scene command.
var sceneCmd = &cobra.Command{
	Use:     "scene",
	Aliases: []string{"ls"},
	Short:   "List and manage scene objects",
	Long: `List the objects in the scene, or add, show, reset and remove them.

Examples:
  commandkit scene
  commandkit scene add player
  commandkit scene show crate
  commandkit scene reset crate
  commandkit scene remove player`,
	RunE: runSceneList,
}

var sceneAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an object at the origin",
	Args:  cobra.ExactArgs(1),
	RunE:  runSceneAdd,
}

var sceneShowCmd = &cobra.Command{
	Use:               "show <name>",
	Short:             "Show one object",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeObjectArgs,
	RunE:              runSceneShow,
}

var sceneResetCmd = &cobra.Command{
	Use:               "reset <name>",
	Short:             "Move an object back to the origin and clear its label",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeObjectArgs,
	RunE:              runSceneReset,
}

var sceneRemoveCmd = &cobra.Command{
	Use:               "remove <name>",
	Aliases:           []string{"rm"},
	Short:             "Remove an object",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeObjectArgs,
	RunE:              runSceneRemove,
}

func init() {
	sceneCmd.AddCommand(sceneAddCmd)
	sceneCmd.AddCommand(sceneShowCmd)
	sceneCmd.AddCommand(sceneResetCmd)
	sceneCmd.AddCommand(sceneRemoveCmd)
	rootCmd.AddCommand(sceneCmd)
}

func runSceneList(cmd *cobra.Command, args []string) error {
	objs, err := ctx.ObjectRepo.List()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintObjects(objs)
	}
	ctx.CLIFormatter().PrintObjects(objs)
	return nil
}

func runSceneAdd(cmd *cobra.Command, args []string) error {
	name := validate.SanitizeName(args[0])
	if err := validate.ObjectName(name); err != nil {
		return err
	}

	obj := model.NewObject(name)
	if err := ctx.ObjectRepo.Create(obj); err != nil {
		return err
	}
	return printObjectChange("added", obj)
}

func runSceneShow(cmd *cobra.Command, args []string) error {
	obj, err := ctx.ObjectRepo.Get(args[0])
	if err != nil {
		return err
	}
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintObject("ok", obj)
	}
	ctx.CLIFormatter().PrintObject(obj)
	return nil
}

func runSceneReset(cmd *cobra.Command, args []string) error {
	obj, err := ctx.ObjectRepo.Get(args[0])
	if err != nil {
		return err
	}

	obj.Position = model.Vector{}
	obj.Label = ""
	if err := ctx.ObjectRepo.Update(obj); err != nil {
		return err
	}
	return printObjectChange("reset", obj)
}

func runSceneRemove(cmd *cobra.Command, args []string) error {
	if err := ctx.ObjectRepo.Delete(args[0]); err != nil {
		return err
	}
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintObject("removed", nil)
	}
	ctx.CLIFormatter().Success("Removed " + args[0])
	return nil
}

func printObjectChange(status string, obj *model.Object) error {
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintObject(status, obj)
	}
	cli := ctx.CLIFormatter()
	cli.Success(strings.ToUpper(status[:1]) + status[1:] + " " + obj.Name)
	cli.PrintObject(obj)
	return nil
}
