package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automaton/compiler"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCompileJSON(t *testing.T) {
	out, err := execute(t, "compile", "--compact", "a")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"nfa": {"states": [
			{"branches": {"a": [1]}, "epsilon_transitions": [], "accepts": false},
			{"branches": {}, "epsilon_transitions": [], "accepts": true}
		]},
		"dfa": {"states": [
			{"branches": {"a": [1]}, "epsilon_transitions": [], "accepts": false},
			{"branches": {}, "epsilon_transitions": [], "accepts": true}
		]}
	}`, out)
}

func TestCompileMinimize(t *testing.T) {
	out, err := execute(t, "compile", "--minimize", "a|b")
	require.NoError(t, err)

	var got struct {
		DFA struct {
			States []json.RawMessage `json:"states"`
		} `json:"dfa"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.DFA.States, 2)
}

func TestCompileMinimizeFromEnv(t *testing.T) {
	t.Setenv("AUTOMATON_MINIMIZE", "true")
	out, err := execute(t, "compile", "--format", "dot", "--machine", "dfa", "a|b")
	require.NoError(t, err)
	assert.Contains(t, out, "q1 [shape=doublecircle];")
	assert.NotContains(t, out, "q2")
}

func TestCompileDOT(t *testing.T) {
	out, err := execute(t, "compile", "-f", "dot", "a")
	require.NoError(t, err)
	assert.Contains(t, out, `digraph "nfa" {`)
	assert.Contains(t, out, `digraph "dfa" {`)
	assert.Contains(t, out, `q0 -> q1 [label="a"];`)
}

func TestCompileToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	out, err := execute(t, "compile", "-o", path, "(a|b)*c")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Contains(t, got, "nfa")
	assert.Contains(t, got, "dfa")
}

func TestCompileErrors(t *testing.T) {
	_, err := execute(t, "compile", "a**")
	assert.ErrorIs(t, err, compiler.ErrUnexpectedToken)

	_, err = execute(t, "compile", "-f", "yaml", "a")
	assert.EqualError(t, err, `unknown format "yaml" (want json or dot)`)

	_, err = execute(t, "compile", "-f", "dot", "--machine", "pda", "a")
	assert.EqualError(t, err, `unknown machine "pda" (want nfa, dfa or both)`)

	_, err = execute(t, "compile")
	assert.Error(t, err)
}

func TestTokens(t *testing.T) {
	out, err := execute(t, "tokens", "(ab|c)*")
	require.NoError(t, err)
	assert.Equal(t, "LParen\nLiteral(\"ab\")\nVerticalBar\nLiteral(\"c\")\nRParen\nAsterisk\n", out)
}

func TestCheck(t *testing.T) {
	out, err := execute(t, "check", "(a|b)*c", "c", "abc", "ab", "")
	require.NoError(t, err)
	assert.Equal(t, "\"c\"\taccept\n\"abc\"\taccept\n\"ab\"\treject\n\"\"\treject\n", out)
}

func TestCheckNeedsInput(t *testing.T) {
	_, err := execute(t, "check", "a")
	assert.Error(t, err)
}
