package producer

import (
	"encoding/json"
	"strings"
)

// FirstJSONObject recovers the first complete JSON object from free text.
//
// LLM output is frequently wrapped in prose, markdown or duplicated objects.
// The scan starts at the first '{' and tracks string state (honoring
// backslash escapes, so an escaped quote does not end a string) plus a
// brace-depth counter that ignores braces inside strings. The span from the
// first '{' to the brace that returns depth to zero is parsed once; if that
// parse fails, recovery gives up rather than hunting for a second candidate.
//
// Returns nil when the text contains no '{', the braces never balance, or
// the balanced span is not valid JSON.
func FirstJSONObject(s string) map[string]any {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return nil
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' && inString {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				var obj map[string]any
				if err := json.Unmarshal([]byte(s[start:i+1]), &obj); err != nil {
					return nil
				}
				return obj
			}
		}
	}

	// Ran out of input with unbalanced braces.
	return nil
}
