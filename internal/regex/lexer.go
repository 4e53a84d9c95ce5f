package regex

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// The rule set covers every input character, so lexing a non-empty slice always yields a token.
var definition = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Asterisk", Pattern: `\*`},
	{Name: "VerticalBar", Pattern: `\|`},
	{Name: "Literal", Pattern: `[^()*|]+`},
})

var kinds = func() map[lexer.TokenType]Kind {
	symbols := definition.Symbols()
	return map[lexer.TokenType]Kind{
		symbols["LParen"]:      LParen,
		symbols["RParen"]:      RParen,
		symbols["Asterisk"]:    Asterisk,
		symbols["VerticalBar"]: VerticalBar,
		symbols["Literal"]:     Literal,
	}
}()

// Take returns the next token of s together with the unconsumed remainder.
// ok is false when s is empty.
func Take(s string) (tok Token, rest string, ok bool) {
	if s == "" {
		return Token{}, s, false
	}
	lex, err := definition.LexString("", s)
	if err != nil {
		panic(fmt.Sprintf("regex: lexer setup: %v", err))
	}
	t, err := lex.Next()
	if err != nil || t.EOF() {
		panic(fmt.Sprintf("regex: no token at %q: %v", s, err))
	}
	kind, known := kinds[t.Type]
	if !known {
		panic(fmt.Sprintf("regex: unknown token type %d", t.Type))
	}
	tok = Token{Kind: kind}
	if kind == Literal {
		tok.Text = t.Value
	}
	return tok, s[len(t.Value):], true
}

// Tokens drains s into its token sequence.
func Tokens(s string) []Token {
	var out []Token
	for {
		tok, rest, ok := Take(s)
		if !ok {
			return out
		}
		out = append(out, tok)
		s = rest
	}
}
