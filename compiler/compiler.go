// Package compiler turns a regular expression into a pair of equivalent finite automata.
//
// The supported syntax is deliberately small: runs of literal characters,
// concatenation by juxtaposition, alternation with |, grouping with ( ) and the
// postfix Kleene star *. Every other character is literal.
//
// Basic usage:
//
//	sm, err := compiler.Compile("(a|b)*c")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(sm.NFA.States), len(sm.DFA.States))
//
// Both automata share one shape (see nfa.NFA), so callers can serialize and render them
// the same way. The deterministic one simply has single-element branch lists and no
// epsilon transitions.
package compiler

import (
	"automaton/internal/dfa"
	"automaton/internal/nfa"
	"automaton/internal/regex"
)

// StateMachines is the result of a successful compile.
type StateMachines struct {
	// NFA is built directly from the pattern's syntax tree.
	NFA *nfa.NFA `json:"nfa"`
	// DFA is the subset construction of NFA, expressed in the NFA shape.
	DFA *nfa.NFA `json:"dfa"`
}

// Config controls optional post-processing of the DFA.
type Config struct {
	// Minimize merges equivalent DFA states after determinization.
	Minimize bool
}

// DefaultConfig returns the configuration used by Compile.
func DefaultConfig() Config {
	return Config{}
}

// Compile parses pattern and builds both automata.
//
// Errors are *CompileError values wrapping ErrEmpty, ErrUnexpectedEnd or
// ErrUnexpectedToken; use errors.Is to tell them apart.
func Compile(pattern string) (*StateMachines, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *StateMachines {
	sm, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return sm
}

// CompileWithConfig is Compile with explicit options.
func CompileWithConfig(pattern string, config Config) (*StateMachines, error) {
	re, err := regex.Parse(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	n := nfa.Build(re)
	d := dfa.FromNFA(n).Prune()
	if config.Minimize {
		d = dfa.Minimize(d)
	}

	return &StateMachines{NFA: n, DFA: d.NFAView()}, nil
}
