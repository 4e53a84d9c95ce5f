package dfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// fullMatcher compiles pattern with lexmachine and reports whether the longest match at
// the start of a non-empty input covers all of it.
func fullMatcher(t *testing.T, pattern string) func(string) bool {
	t.Helper()
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(pattern), func(scan *lexmachine.Scanner, match *machines.Match) (interface{}, error) {
		return match, nil
	})
	require.NoError(t, lexer.Compile())

	return func(input string) bool {
		scanner, err := lexer.Scanner([]byte(input))
		require.NoError(t, err)
		tok, err, eof := scanner.Next()
		if err != nil || eof {
			return false
		}
		return len(tok.(*machines.Match).Bytes) == len(input)
	}
}

func TestAgreesWithLexmachine(t *testing.T) {
	// patterns that never match the empty string, which lexmachine cannot report
	oracle := []string{
		"a",
		"abc",
		"a|b",
		"(a|b)*c",
		"ab|ac",
		"a(b|c)*d",
		"(ab|a)*c",
		"x(a*|b)y",
		"(a|ab)(c|bcd)",
	}
	for _, p := range oracle {
		t.Run(p, func(t *testing.T) {
			d := FromNFA(compileNFA(t, p))
			matches := fullMatcher(t, p)
			for _, w := range words(alphabetOf(t, p), 5) {
				if w == "" {
					assert.False(t, d.Accepts(w))
					continue
				}
				assert.Equal(t, matches(w), d.Accepts(w), "%q", w)
			}
		})
	}
}
