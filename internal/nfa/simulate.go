package nfa

// Accepts reports whether the automaton accepts input in its entirety, tracking every
// active state at once.
func (n *NFA) Accepts(input string) bool {
	if len(n.States) == 0 {
		return false
	}
	cur := n.close(map[int]struct{}{0: {}})
	for _, c := range input {
		next := map[int]struct{}{}
		for s := range cur {
			for _, to := range n.States[s].Branches[c] {
				next[to] = struct{}{}
			}
		}
		if len(next) == 0 {
			return false
		}
		cur = n.close(next)
	}
	for s := range cur {
		if n.States[s].Accepts {
			return true
		}
	}
	return false
}

func (n *NFA) close(set map[int]struct{}) map[int]struct{} {
	stack := make([]int, 0, len(set))
	for s := range set {
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, to := range n.States[s].Epsilon {
			if _, seen := set[to]; !seen {
				set[to] = struct{}{}
				stack = append(stack, to)
			}
		}
	}
	return set
}
