package dfa

import (
	"fmt"
	"slices"
	"strings"
)

// Minimize merges equivalent states. Missing transitions behave as edges into an
// implicit dead state. The result is numbered in breadth-first order from handle 0.
func Minimize(d *DFA) *DFA {
	if d == nil || len(d.States) == 0 {
		return d
	}
	d = d.Prune()

	// --- 1. initial partition: accepting vs. non-accepting -----------------
	block := make([]int, len(d.States))
	for i, s := range d.States {
		if s.Accepts {
			block[i] = 1
		}
	}
	count := countBlocks(block)

	// --- 2. refine until no block splits ----------------------------------
	alpha := d.alphabet()
	for {
		signatures := map[string]int{}
		next := make([]int, len(d.States))
		for i := range d.States {
			sig := signature(d, block, i, alpha)
			id, ok := signatures[sig]
			if !ok {
				id = len(signatures)
				signatures[sig] = id
			}
			next[i] = id
		}
		block = next
		if len(signatures) == count {
			break
		}
		count = len(signatures)
	}

	// --- 3. build the reduced DFA from one representative per block -------
	representative := map[int]int{}
	for i, b := range block {
		if _, ok := representative[b]; !ok {
			representative[b] = i
		}
	}

	out := &DFA{}
	ids := map[int]int{block[0]: out.addState(d.States[0].Accepts)}
	queue := []int{block[0]}
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		src := &d.States[representative[b]]
		for _, c := range src.Chars() {
			tb := block[src.Branches[c]]
			to, ok := ids[tb]
			if !ok {
				to = out.addState(d.States[representative[tb]].Accepts)
				ids[tb] = to
				queue = append(queue, tb)
			}
			out.States[ids[b]].Branches[c] = to
		}
	}
	return out
}

func signature(d *DFA, block []int, state int, alpha []rune) string {
	var b strings.Builder
	fmt.Fprint(&b, block[state])
	for _, c := range alpha {
		to, ok := d.States[state].Branches[c]
		if !ok {
			b.WriteString(" -")
			continue
		}
		fmt.Fprintf(&b, " %d", block[to])
	}
	return b.String()
}

func countBlocks(block []int) int {
	seen := map[int]struct{}{}
	for _, b := range block {
		seen[b] = struct{}{}
	}
	return len(seen)
}

func (d *DFA) alphabet() []rune {
	set := map[rune]struct{}{}
	for _, s := range d.States {
		for c := range s.Branches {
			set[c] = struct{}{}
		}
	}
	out := make([]rune, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}
