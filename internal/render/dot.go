// Package render writes automata in the interchange formats: JSON and Graphviz DOT.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"automaton/internal/nfa"
)

// WriteDOT prints n as a Graphviz digraph called name. Accepting states are drawn as
// double circles; epsilon edges are labelled ε.
func WriteDOT(w io.Writer, name string, n *nfa.NFA) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %s {\n", strconv.Quote(name))
	fmt.Fprintln(&buf, "    rankdir=LR;")

	for id := range n.States {
		s := &n.States[id]
		shape := "circle"
		if s.Accepts {
			shape = "doublecircle"
		}
		fmt.Fprintf(&buf, "    q%d [shape=%s];\n", id, shape)
		for _, c := range s.Chars() {
			for _, to := range s.Branches[c] {
				fmt.Fprintf(&buf, "    q%d -> q%d [label=%s];\n", id, to, strconv.Quote(string(c)))
			}
		}
		for _, to := range s.Epsilon {
			fmt.Fprintf(&buf, "    q%d -> q%d [label=\"ε\"];\n", id, to)
		}
	}
	if len(n.States) > 0 {
		fmt.Fprintln(&buf, "    _start [shape=point]; _start -> q0;")
	}
	fmt.Fprintln(&buf, "}")

	_, err := w.Write(buf.Bytes())
	return err
}
