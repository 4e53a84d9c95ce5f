// Package nfa holds the nondeterministic automaton produced from a parsed pattern.
//
// States live in an append-only slice and are addressed by their index. Handle 0 is
// always the initial state.
package nfa

import (
	"encoding/json"
	"slices"
)

// State is a single NFA state.
type State struct {
	// Branches maps a character to every successor reached by consuming it.
	Branches map[rune][]int
	// Epsilon lists successors reached without consuming input.
	Epsilon []int
	Accepts bool
}

// NFA is an arena of states.
type NFA struct {
	States []State
}

// New returns an NFA holding only the initial state.
func New() *NFA {
	n := &NFA{}
	n.AddState()
	return n
}

// AddState appends an empty state and returns its handle.
func (n *NFA) AddState() int {
	id := len(n.States)
	n.States = append(n.States, State{Branches: map[rune][]int{}})
	return id
}

// AddBranch records a transition from -> to on c.
func (n *NFA) AddBranch(from int, c rune, to int) {
	s := &n.States[from]
	if s.Branches == nil {
		s.Branches = map[rune][]int{}
	}
	s.Branches[c] = append(s.Branches[c], to)
}

// AddEpsilon records an epsilon transition from -> to.
func (n *NFA) AddEpsilon(from, to int) {
	n.States[from].Epsilon = append(n.States[from].Epsilon, to)
}

// Chars returns the characters s has branches on, in ascending order.
func (s *State) Chars() []rune {
	out := make([]rune, 0, len(s.Branches))
	for c := range s.Branches {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// Accepting returns the handles of all accepting states.
func (n *NFA) Accepting() []int {
	var out []int
	for id, s := range n.States {
		if s.Accepts {
			out = append(out, id)
		}
	}
	return out
}

type stateJSON struct {
	Branches map[string][]int `json:"branches"`
	Epsilon  []int            `json:"epsilon_transitions"`
	Accepts  bool             `json:"accepts"`
}

// MarshalJSON encodes the state with one-character string keys.
func (s State) MarshalJSON() ([]byte, error) {
	out := stateJSON{
		Branches: make(map[string][]int, len(s.Branches)),
		Epsilon:  s.Epsilon,
		Accepts:  s.Accepts,
	}
	for c, to := range s.Branches {
		if to == nil {
			to = []int{}
		}
		out.Branches[string(c)] = to
	}
	if out.Epsilon == nil {
		out.Epsilon = []int{}
	}
	return json.Marshal(out)
}

// MarshalJSON encodes the automaton as {"states": [...]}.
func (n *NFA) MarshalJSON() ([]byte, error) {
	states := n.States
	if states == nil {
		states = []State{}
	}
	return json.Marshal(struct {
		States []State `json:"states"`
	}{states})
}
