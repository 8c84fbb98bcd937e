package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"layer/internal/ast"
	"layer/internal/compiler"
	"layer/internal/ir"
)

func newIRCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ir [file]",
		Short: "Print the IR for a Layer program",
		Args:  cobra.MaximumNArgs(1),
		RunE:  irHandler,
	}
	cmd.Flags().Bool("both", false, "Print the generated IR before the optimized IR")
	cmd.Flags().Bool("numbered", false, "Prefix each instruction with its index")
	return cmd
}

func newASTCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ast [file]",
		Short: "Print the syntax tree for a Layer program",
		Args:  cobra.MaximumNArgs(1),
		RunE:  astHandler,
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Parse and check a Layer program without running it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  checkHandler,
	}
}

func irHandler(cmd *cobra.Command, args []string) error {
	name, source, err := getLayerCode(cmd, args)
	if err != nil {
		return err
	}

	optimize := !viper.GetBool("no-optimize")
	result, err := compiler.Compile(name, source, optimize)
	if err != nil {
		return reportError(cmd.ErrOrStderr(), name, source, err)
	}

	format := ir.Format
	if viper.GetBool("numbered") {
		format = ir.FormatNumbered
	}

	out := cmd.OutOrStdout()
	heading := color.New(color.Bold).SprintFunc()
	if viper.GetBool("both") && optimize {
		fmt.Fprintf(out, "%s (%d instructions)\n", heading("generated"), len(result.IR))
		fmt.Fprint(out, format(result.IR))
		fmt.Fprintf(out, "\n%s (%d instructions)\n", heading("optimized"), len(result.Code))
	}
	fmt.Fprint(out, format(result.Code))
	return nil
}

func astHandler(cmd *cobra.Command, args []string) error {
	name, source, err := getLayerCode(cmd, args)
	if err != nil {
		return err
	}

	program, err := compiler.Parse(name, source)
	if err != nil {
		return reportError(cmd.ErrOrStderr(), name, source, err)
	}

	fmt.Fprint(cmd.OutOrStdout(), ast.Dump(program))
	return nil
}

func checkHandler(cmd *cobra.Command, args []string) error {
	name, source, err := getLayerCode(cmd, args)
	if err != nil {
		return err
	}

	start := time.Now()
	if _, err := compiler.Check(name, source); err != nil {
		return reportError(cmd.ErrOrStderr(), name, source, err)
	}

	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Successfully checked %s in %s\n", name, formatDuration(time.Since(start)))
	return nil
}
