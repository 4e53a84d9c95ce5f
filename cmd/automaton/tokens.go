package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"automaton/internal/regex"
)

func newTokensCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <pattern>",
		Short: "Print the token stream of a pattern, one token per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toks := regex.Tokens(args[0])
			verbosef(v, "%d tokens", len(toks))
			for _, tok := range toks {
				fmt.Fprintln(cmd.OutOrStdout(), tok)
			}
			return nil
		},
	}
}
