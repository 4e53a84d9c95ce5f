package compiler

import (
	"fmt"

	"automaton/internal/regex"
)

// Parse errors. Lowering and determinization never fail, so these are the only causes
// a CompileError can carry.
var (
	// ErrEmpty indicates there was nothing to parse.
	ErrEmpty = regex.ErrEmpty

	// ErrUnexpectedEnd indicates the pattern ended inside an unfinished construct,
	// such as an unclosed group or a trailing |.
	ErrUnexpectedEnd = regex.ErrUnexpectedEnd

	// ErrUnexpectedToken indicates a token no production accepts at that position.
	ErrUnexpectedToken = regex.ErrUnexpectedToken
)

// CompileError wraps a parse failure with the offending pattern.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}
