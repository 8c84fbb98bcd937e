// SPDX-License-Identifier: Apache-2.0
package main

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if !stderrors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, color.RedString(err.Error()))
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "layer [file]",
		Short:         "Compile and run Layer programs",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if shouldRunRepl(cmd, args) {
				return replHandler(cmd, args)
			}
			return runHandler(cmd, args)
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("code", "c", "", "Code to compile")
	flags.Bool("stdin", false, "Read code from stdin")
	flags.String("config", "", "Config file (default ./layer.yaml)")
	flags.Bool("no-color", false, "Disable colored output")
	flags.CountP("verbose", "v", "Increase log verbosity")
	flags.Bool("no-optimize", false, "Skip dead code elimination")
	flags.Int("max-steps", 0, "Abort execution after this many instructions (0 is unlimited)")
	flags.String("fwrite-file", "", "Send fwrite() output to this file instead of stdout")
	flags.Bool("trace", false, "Trace executed instructions to stderr")
	flags.Bool("timing", false, "Show elapsed time")
	root.Flags().Bool("no-repl", false, "Disable the REPL")

	root.AddCommand(
		newRunCmd(),
		newTokensCmd(),
		newIRCmd(),
		newASTCmd(),
		newCheckCmd(),
		newExamplesCmd(),
		newReplCmd(),
		newVersionCmd(),
	)

	return root
}

// initConfig layers flags over LAYER_* environment variables over the
// config file.
func initConfig(cmd *cobra.Command) error {
	viper.SetEnvPrefix("layer")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if path := viper.GetString("config"); path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		viper.SetConfigName("layer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !stderrors.As(err, &notFound) {
				return fmt.Errorf("reading config: %w", err)
			}
		}
	}

	if viper.GetBool("no-color") {
		color.NoColor = true
	}
	commonlog.Configure(viper.GetInt("verbose"), nil)

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "layer %s (%s)\n", version, commit)
		},
	}
}
