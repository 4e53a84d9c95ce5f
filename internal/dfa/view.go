package dfa

import "automaton/internal/nfa"

// NFAView re-expresses d in the NFA shape: every branch target becomes a one-element
// list and no state has epsilon transitions. Handles and accept flags are unchanged.
func (d *DFA) NFAView() *nfa.NFA {
	out := &nfa.NFA{States: make([]nfa.State, len(d.States))}
	for i, s := range d.States {
		branches := make(map[rune][]int, len(s.Branches))
		for c, to := range s.Branches {
			branches[c] = []int{to}
		}
		out.States[i] = nfa.State{
			Branches: branches,
			Epsilon:  []int{},
			Accepts:  s.Accepts,
		}
	}
	return out
}
