package render

import (
	"encoding/json"
	"io"
)

// WriteJSON encodes v followed by a newline. Automaton types carry their own
// MarshalJSON, so v may be an NFA, a DFA or a compile result.
func WriteJSON(w io.Writer, v any, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
