package nfa

import (
	"fmt"

	"automaton/internal/regex"
)

// Build lowers a parsed pattern into an NFA whose single accepting state is the exit of
// the root expression.
func Build(re *regex.Regex) *NFA {
	return FromNode(re.Root)
}

// FromNode lowers root starting at the initial state.
func FromNode(root regex.Node) *NFA {
	n := New()
	exit := n.insert(0, root)
	n.States[exit].Accepts = true
	return n
}

// insert wires node in after state and returns the state reached once node has matched.
func (n *NFA) insert(state int, node regex.Node) int {
	switch t := node.(type) {
	case *regex.Atom:
		for _, c := range t.Literal {
			s := n.AddState()
			n.AddBranch(state, c, s)
			state = s
		}
		return state
	case *regex.Repeat:
		// loop is both entry and exit, so the body may be skipped or repeated
		loop := n.AddState()
		n.AddEpsilon(state, loop)
		s := n.insert(loop, t.Pattern)
		n.AddEpsilon(s, loop)
		return loop
	case *regex.Or:
		s0 := n.insert(state, t.Left)
		s1 := n.insert(state, t.Right)
		s := n.AddState()
		n.AddEpsilon(s0, s)
		n.AddEpsilon(s1, s)
		return s
	case *regex.Join:
		mid := n.insert(state, t.Left)
		return n.insert(mid, t.Right)
	default:
		panic(fmt.Sprintf("nfa: unknown node %T", node))
	}
}
