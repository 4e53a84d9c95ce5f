package regex

// Node is a parsed pattern element: *Atom, *Repeat, *Or or *Join.
type Node interface {
	String() string
	node()
}

// Atom matches its literal run character by character.
type Atom struct {
	Literal string
}

// Repeat matches Pattern zero or more times.
type Repeat struct {
	Pattern Node
}

// Or matches either side.
type Or struct {
	Left, Right Node
}

// Join matches Left followed by Right.
type Join struct {
	Left, Right Node
}

func (*Atom) node()   {}
func (*Repeat) node() {}
func (*Or) node()     {}
func (*Join) node()   {}

// String renders the node back into fully parenthesized pattern syntax.
func (n *Atom) String() string   { return n.Literal }
func (n *Repeat) String() string { return "(" + n.Pattern.String() + ")*" }
func (n *Or) String() string     { return "(" + n.Left.String() + "|" + n.Right.String() + ")" }
func (n *Join) String() string   { return n.Left.String() + n.Right.String() }

// Regex is a successfully parsed pattern.
type Regex struct {
	Pattern string
	Root    Node
}

// Walk visits n and its descendants in pre-order.
func Walk(n Node, visit func(Node)) {
	if n == nil {
		return
	}
	visit(n)
	switch t := n.(type) {
	case *Repeat:
		Walk(t.Pattern, visit)
	case *Or:
		Walk(t.Left, visit)
		Walk(t.Right, visit)
	case *Join:
		Walk(t.Left, visit)
		Walk(t.Right, visit)
	}
}

// Alphabet returns the set of runes appearing in literals of n.
func Alphabet(n Node) map[rune]struct{} {
	set := map[rune]struct{}{}
	Walk(n, func(n Node) {
		if a, ok := n.(*Atom); ok {
			for _, r := range a.Literal {
				set[r] = struct{}{}
			}
		}
	})
	return set
}
