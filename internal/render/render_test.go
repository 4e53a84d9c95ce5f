package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automaton/internal/nfa"
	"automaton/internal/regex"
)

func build(t *testing.T, pattern string) *nfa.NFA {
	t.Helper()
	re, err := regex.Parse(pattern)
	require.NoError(t, err)
	return nfa.Build(re)
}

func TestWriteDOT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDOT(&buf, "nfa", build(t, "a*")))
	want := `digraph "nfa" {
    rankdir=LR;
    q0 [shape=circle];
    q0 -> q1 [label="ε"];
    q1 [shape=doublecircle];
    q1 -> q2 [label="a"];
    q2 [shape=circle];
    q2 -> q1 [label="ε"];
    _start [shape=point]; _start -> q0;
}
`
	assert.Equal(t, want, buf.String())
}

func TestWriteDOTQuotesLabels(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDOT(&buf, "g", build(t, `"`)))
	assert.Contains(t, buf.String(), `q0 -> q1 [label="\""];`)
}

func TestWriteDOTEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDOT(&buf, "empty", &nfa.NFA{}))
	assert.Equal(t, "digraph \"empty\" {\n    rankdir=LR;\n}\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteDOTPropagatesWriteError(t *testing.T) {
	err := WriteDOT(failingWriter{}, "g", build(t, "a"))
	assert.EqualError(t, err, "disk full")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, build(t, "a"), false))
	assert.Equal(t,
		`{"states":[{"branches":{"a":[1]},"epsilon_transitions":[],"accepts":false},{"branches":{},"epsilon_transitions":[],"accepts":true}]}`+"\n",
		buf.String())

	buf.Reset()
	require.NoError(t, WriteJSON(&buf, build(t, "ab"), true))
	assert.True(t, strings.HasPrefix(buf.String(), "{\n  \"states\": ["))
	assert.Contains(t, buf.String(), `"b": [`)
}
