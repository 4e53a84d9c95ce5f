package regex

import "errors"

var (
	// ErrEmpty is returned when there is nothing to parse.
	ErrEmpty = errors.New("input is empty")

	// ErrUnexpectedEnd is returned when input ends inside an open construct.
	ErrUnexpectedEnd = errors.New("unexpected end of input")

	// ErrUnexpectedToken is returned when a token cannot start or continue an expression.
	ErrUnexpectedToken = errors.New("unexpected token")
)
