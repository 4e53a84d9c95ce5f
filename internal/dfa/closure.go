package dfa

import (
	"container/list"
	"fmt"
	"slices"

	"automaton/internal/nfa"
)

// StateSet is a sorted, duplicate-free set of NFA handles. It is the identity of a DFA
// state during subset construction.
type StateSet []int

func newStateSet(members map[int]struct{}) StateSet {
	set := make(StateSet, 0, len(members))
	for s := range members {
		set = append(set, s)
	}
	slices.Sort(set)
	return set
}

// Key is the canonical map key of the set.
func (s StateSet) Key() string { return fmt.Sprint([]int(s)) }

// Accepts reports whether any member is accepting in n.
func (s StateSet) Accepts(n *nfa.NFA) bool {
	for _, id := range s {
		if n.States[id].Accepts {
			return true
		}
	}
	return false
}

// EpsilonClosure returns every handle reachable from handles through epsilon edges,
// handles included.
func EpsilonClosure(n *nfa.NFA, handles ...int) StateSet {
	seen := make(map[int]struct{}, len(handles))
	stack := list.New()
	for _, s := range handles {
		stack.PushBack(s)
	}
	for stack.Len() > 0 {
		s := stack.Remove(stack.Back()).(int)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		for _, to := range n.States[s].Epsilon {
			if _, ok := seen[to]; !ok {
				stack.PushBack(to)
			}
		}
	}
	return newStateSet(seen)
}

// Transitions groups the successors of set by character and epsilon-closes each group.
func Transitions(n *nfa.NFA, set StateSet) map[rune]StateSet {
	targets := map[rune][]int{}
	for _, s := range set {
		for c, to := range n.States[s].Branches {
			targets[c] = append(targets[c], to...)
		}
	}
	out := make(map[rune]StateSet, len(targets))
	for c, to := range targets {
		out[c] = EpsilonClosure(n, to...)
	}
	return out
}
