package main

import (
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"layer/internal/compiler"
	"layer/repl"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [file]",
		Short: "Compile and execute a Layer program",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHandler,
	}
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Long: `Start an interactive session. Each entry is added to the session and the
whole program is rerun; only output the entry produced is shown. With
--fwrite-file, fwrite() lines added by each entry are appended to that file.`,
		Args:  cobra.NoArgs,
		RunE:  replHandler,
	}
}

func runHandler(cmd *cobra.Command, args []string) error {
	name, source, err := getLayerCode(cmd, args)
	if err != nil {
		return err
	}

	cfg, closeOutput, err := getCompilerConfig(cmd)
	if err != nil {
		return err
	}
	defer closeOutput()

	start := time.Now()
	if err := compiler.Run(name, source, cfg); err != nil {
		return reportError(cmd.ErrOrStderr(), name, source, err)
	}

	if viper.GetBool("timing") {
		color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "Ran %s in %s\n", name, formatDuration(time.Since(start)))
	}
	return nil
}

func replHandler(cmd *cobra.Command, args []string) error {
	cfg, closeOutput, err := getCompilerConfig(cmd)
	if err != nil {
		return err
	}
	defer closeOutput()

	out := cmd.OutOrStdout()
	color.New(color.Bold).Fprintf(out, "Layer %s\n", version)
	repl.Start(cmd.InOrStdin(), out, cfg)
	return nil
}
