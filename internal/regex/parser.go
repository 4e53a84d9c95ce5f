package regex

import "errors"

// Parse parses pattern. Precedence from tightest to loosest: grouping, postfix *,
// concatenation, alternation.
func Parse(pattern string) (*Regex, error) {
	root, rest, err := parse(pattern, noStop)
	if err != nil {
		return nil, err
	}
	// Only an unmatched ")" can stop the top level early.
	if rest != "" {
		return nil, ErrUnexpectedToken
	}
	return &Regex{Pattern: pattern, Root: root}, nil
}

// parse reads one expression from s. It returns without consuming a token of kind stop
// or a ")" left for the enclosing group.
func parse(s string, stop Kind) (Node, string, error) {
	tok, rest, ok := Take(s)
	if !ok {
		return nil, s, ErrEmpty
	}

	var node Node
	switch tok.Kind {
	case Literal:
		node = &Atom{Literal: tok.Text}
	case LParen:
		inner, r, err := parse(rest, noStop)
		if err != nil {
			return nil, s, err
		}
		closing, r, ok := Take(r)
		if !ok {
			return nil, s, ErrUnexpectedEnd
		}
		if closing.Kind != RParen {
			return nil, s, ErrUnexpectedToken
		}
		node, rest = inner, r
	default:
		return nil, s, ErrUnexpectedToken
	}

	// a single postfix star; a second one is rejected by the concatenation branch below
	if next, r, ok := Take(rest); ok && next.Kind == Asterisk {
		node = &Repeat{Pattern: node}
		rest = r
	}

	for {
		next, r, ok := Take(rest)
		if !ok {
			break
		}
		if next.Kind == stop || next.Kind == RParen {
			break
		}
		if next.Kind == VerticalBar {
			right, r, err := parse(r, noStop)
			if errors.Is(err, ErrEmpty) {
				return nil, s, ErrUnexpectedEnd
			}
			if err != nil {
				return nil, s, err
			}
			node = &Or{Left: node, Right: right}
			rest = r
			continue
		}
		right, r, err := parse(rest, VerticalBar)
		if err != nil {
			return nil, s, err
		}
		node = &Join{Left: node, Right: right}
		rest = r
	}

	return node, rest, nil
}
