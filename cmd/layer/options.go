package main

import (
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"layer/internal/compiler"
	"layer/internal/vm"
)

func isTerminalIO() bool {
	stdin := os.Stdin.Fd()
	stdout := os.Stdout.Fd()
	inTerm := isatty.IsTerminal(stdin) || isatty.IsCygwinTerminal(stdin)
	outTerm := isatty.IsTerminal(stdout) || isatty.IsCygwinTerminal(stdout)
	return inTerm && outTerm
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

func shouldRunRepl(cmd *cobra.Command, args []string) bool {
	if viper.GetBool("no-repl") || viper.GetBool("stdin") {
		return false
	}
	if flagChanged(cmd, "code") || len(args) > 0 {
		return false
	}
	return isTerminalIO()
}

// getLayerCode returns the source to compile and the name it is reported
// under. Exactly one of --code, --stdin or a path argument may be given.
func getLayerCode(cmd *cobra.Command, args []string) (name, source string, err error) {
	codeFlagSet := flagChanged(cmd, "code")
	stdinFlagSet := flagChanged(cmd, "stdin")
	pathSupplied := len(args) > 0

	if pathSupplied && (codeFlagSet || stdinFlagSet) {
		return "", "", errors.New("multiple input sources specified")
	} else if codeFlagSet && stdinFlagSet {
		return "", "", errors.New("multiple input sources specified")
	}

	switch {
	case stdinFlagSet:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", err
		}
		return "<stdin>", string(data), nil
	case pathSupplied:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", err
		}
		return args[0], string(data), nil
	case codeFlagSet || viper.GetString("code") != "":
		return "<code>", viper.GetString("code"), nil
	}
	return "", "", errors.New("no input: pass a file, --code or --stdin")
}

// getCompilerConfig builds the compiler configuration from flags and
// config. The returned closer releases the fwrite file, if any.
func getCompilerConfig(cmd *cobra.Command) (compiler.Config, func() error, error) {
	cfg := compiler.DefaultConfig(cmd.OutOrStdout())
	cfg.Optimize = !viper.GetBool("no-optimize")
	cfg.MaxSteps = viper.GetInt("max-steps")
	if viper.GetBool("trace") {
		cfg.Observer = vm.NewTraceObserver(cmd.ErrOrStderr())
	}

	closer := func() error { return nil }
	if path := viper.GetString("fwrite-file"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return cfg, closer, err
		}
		cfg.FileOutput = f
		closer = f.Close
	}

	return cfg, closer, nil
}
