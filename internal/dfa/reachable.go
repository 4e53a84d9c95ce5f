package dfa

import "slices"

// Reachable returns the handles reachable from state, state included, in ascending order.
func (d *DFA) Reachable(state int) []int {
	seen := map[int]struct{}{state: {}}
	stack := []int{state}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, to := range d.States[s].Branches {
			if _, ok := seen[to]; ok {
				continue
			}
			seen[to] = struct{}{}
			stack = append(stack, to)
		}
	}
	out := make([]int, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// Prune drops states unreachable from the initial state. Surviving states keep their
// relative order, so the initial state stays at handle 0.
func (d *DFA) Prune() *DFA {
	if len(d.States) == 0 {
		return &DFA{}
	}
	keep := d.Reachable(0)
	remap := make(map[int]int, len(keep))
	for i, old := range keep {
		remap[old] = i
	}
	out := &DFA{States: make([]State, len(keep))}
	for i, old := range keep {
		src := d.States[old]
		branches := make(map[rune]int, len(src.Branches))
		for c, to := range src.Branches {
			branches[c] = remap[to]
		}
		out.States[i] = State{Branches: branches, Accepts: src.Accepts}
	}
	return out
}
