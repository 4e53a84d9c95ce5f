package main

import (
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"automaton/compiler"
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "automaton",
		Short: "Regular expression to NFA/DFA compiler",
		Long: "Automaton compiles a regular expression (literals, concatenation, |, ( ) and *) " +
			"into a nondeterministic automaton and its subset-construction DFA.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initConfig(v)
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("minimize", false, "Merge equivalent DFA states")

	_ = v.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = v.BindPFlag("minimize", rootCmd.PersistentFlags().Lookup("minimize"))

	rootCmd.AddCommand(newCompileCmd(v), newTokensCmd(v), newCheckCmd(v))
	return rootCmd
}

func initConfig(v *viper.Viper) {
	v.SetEnvPrefix("AUTOMATON")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

func compilerConfig(v *viper.Viper) compiler.Config {
	config := compiler.DefaultConfig()
	config.Minimize = v.GetBool("minimize")
	return config
}

func verbosef(v *viper.Viper, format string, args ...any) {
	if v.GetBool("verbose") {
		log.Printf(format, args...)
	}
}
