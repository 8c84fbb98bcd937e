package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"layer/internal/compiler"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream of a Layer program",
		Args:  cobra.MaximumNArgs(1),
		RunE:  tokensHandler,
	}
}

func tokensHandler(cmd *cobra.Command, args []string) error {
	name, source, err := getLayerCode(cmd, args)
	if err != nil {
		return err
	}

	tokens, lexErr := compiler.Tokens(name, source)

	heading := color.New(color.Bold).SprintFunc()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, heading("TYPE")+"\t"+heading("VALUE")+"\t"+heading("POSITION"))
	for _, tok := range tokens {
		value := tok.Value
		if tok.Kind == "String" {
			value = strconv.Quote(value)
		}
		fmt.Fprintf(w, "%s\t%s\t%d:%d\n", tok.Kind, value, tok.Pos.Line, tok.Pos.Column)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if lexErr != nil {
		return reportError(cmd.ErrOrStderr(), name, source, lexErr)
	}
	return nil
}
