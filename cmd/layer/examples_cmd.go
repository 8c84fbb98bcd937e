package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"layer/examples"
	"layer/internal/compiler"
)

func newExamplesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "examples [name]",
		Aliases: []string{"ex"},
		Short:   "List, show or run the bundled example programs",
		Args:    cobra.MaximumNArgs(1),
		RunE:    examplesHandler,
	}
	cmd.Flags().BoolP("run", "r", false, "Run the example")
	return cmd
}

func examplesHandler(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		bold := color.New(color.Bold).SprintFunc()
		fmt.Fprintln(out, bold("Examples:"))
		for _, name := range examples.List() {
			fmt.Fprintf(out, "  %s\n", name)
		}
		fmt.Fprintln(out, "\nRun one with: layer examples <name> --run")
		return nil
	}

	name := args[0]
	source, err := examples.Load(name)
	if err != nil {
		return err
	}

	if !viper.GetBool("run") {
		fmt.Fprint(out, source)
		return nil
	}

	cfg, closeOutput, err := getCompilerConfig(cmd)
	if err != nil {
		return err
	}
	defer closeOutput()

	filename := examples.Filename(name)
	if err := compiler.Run(filename, source, cfg); err != nil {
		return reportError(cmd.ErrOrStderr(), filename, source, err)
	}
	return nil
}
