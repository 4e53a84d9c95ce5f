package regex

import "fmt"

// Kind identifies a token.
type Kind int

const (
	Literal     Kind = iota // maximal run of ordinary characters
	LParen                  // (
	RParen                  // )
	Asterisk                // *
	VerticalBar             // |

	noStop Kind = -1
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "Literal"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case Asterisk:
		return "Asterisk"
	case VerticalBar:
		return "VerticalBar"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is a single lexical element of a pattern. Text is only meaningful for Literal.
type Token struct {
	Kind Kind
	Text string
}

func (t Token) String() string {
	if t.Kind == Literal {
		return fmt.Sprintf("Literal(%q)", t.Text)
	}
	return t.Kind.String()
}
