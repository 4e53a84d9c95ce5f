package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"automaton/compiler"
)

func newCheckCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "check <pattern> <input>...",
		Short: "Run inputs through both automata and report whether they agree",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, v, args[0], args[1:])
		},
	}
}

func runCheck(cmd *cobra.Command, v *viper.Viper, pattern string, inputs []string) error {
	sm, err := compiler.CompileWithConfig(pattern, compilerConfig(v))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	mismatches := 0
	for _, input := range inputs {
		byNFA := sm.NFA.Accepts(input)
		byDFA := sm.DFA.Accepts(input)
		if byNFA != byDFA {
			mismatches++
			fmt.Fprintf(out, "%q\tmismatch nfa=%s dfa=%s\n", input, verdict(byNFA), verdict(byDFA))
			continue
		}
		fmt.Fprintf(out, "%q\t%s\n", input, verdict(byNFA))
	}
	verbosef(v, "checked %d inputs against %q", len(inputs), pattern)

	if mismatches > 0 {
		return fmt.Errorf("%d of %d inputs disagree between NFA and DFA", mismatches, len(inputs))
	}
	return nil
}

func verdict(accepts bool) string {
	if accepts {
		return "accept"
	}
	return "reject"
}
