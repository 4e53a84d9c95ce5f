// Package dfa converts an NFA into a deterministic automaton by subset construction.
package dfa

import (
	"encoding/json"
	"slices"

	"automaton/internal/nfa"
)

// State is a single DFA state. Every character has at most one successor.
type State struct {
	Branches map[rune]int
	Accepts  bool
}

// DFA is an arena of states; handle 0 is the initial state.
type DFA struct {
	States []State
}

func (d *DFA) addState(accepts bool) int {
	d.States = append(d.States, State{Branches: map[rune]int{}, Accepts: accepts})
	return len(d.States) - 1
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

// FromNFA determinizes n. The epsilon closure of the NFA initial state becomes handle 0;
// every further reachable closure gets the next free handle the first time it is seen.
func FromNFA(n *nfa.NFA) *DFA {
	d := &DFA{}
	start := EpsilonClosure(n, 0)
	ids := map[string]int{start.Key(): d.addState(start.Accepts(n))}

	queue := []StateSet{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		from := ids[cur.Key()]

		moves := Transitions(n, cur)
		chars := make([]rune, 0, len(moves))
		for c := range moves {
			chars = append(chars, c)
		}
		slices.Sort(chars)

		for _, c := range chars {
			target := moves[c]
			k := target.Key()
			to, ok := ids[k]
			if !ok {
				to = d.addState(target.Accepts(n))
				ids[k] = to
				queue = append(queue, target)
			}
			d.States[from].Branches[c] = to
		}
	}
	return d
}

// Accepts reports whether the automaton accepts input in its entirety.
func (d *DFA) Accepts(input string) bool {
	if len(d.States) == 0 {
		return false
	}
	cur := 0
	for _, c := range input {
		next, ok := d.States[cur].Branches[c]
		if !ok {
			return false
		}
		cur = next
	}
	return d.States[cur].Accepts
}

type stateJSON struct {
	Branches map[string]int `json:"branches"`
	Accepts  bool           `json:"accepts"`
}

// MarshalJSON encodes the state with one-character string keys.
func (s State) MarshalJSON() ([]byte, error) {
	out := stateJSON{Branches: make(map[string]int, len(s.Branches)), Accepts: s.Accepts}
	for c, to := range s.Branches {
		out.Branches[string(c)] = to
	}
	return json.Marshal(out)
}

// MarshalJSON encodes the automaton as {"states": [...]}.
func (d *DFA) MarshalJSON() ([]byte, error) {
	states := d.States
	if states == nil {
		states = []State{}
	}
	return json.Marshal(struct {
		States []State `json:"states"`
	}{states})
}
