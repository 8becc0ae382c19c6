package oracle

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ParseError indicates a response could not be reduced to a JSON object even
// after repair. Raw carries the unmodified response text for diagnostics.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("oracle response parse: %v (raw snippet: %s)", e.Err, summarizeSnippet(e.Raw))
}

func (e *ParseError) Unwrap() error { return e.Err }

var trailingCommaPattern = regexp.MustCompile(`,\s*([}\]])`)

// DecodeObject extracts the single JSON object embedded in free-form oracle
// output and unmarshals it into target.
//
// The candidate is the substring between the first '{' and the last '}' in
// the text, with trailing commas before a closing brace or bracket stripped.
// If a strict parse of the candidate fails, ASCII control characters are
// removed and the parse is retried exactly once. Either the whole object
// decodes or a *ParseError is returned; no partial result is ever applied.
// No shape validation happens here.
func DecodeObject(content string, target any) error {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return &ParseError{Raw: content, Err: fmt.Errorf("no JSON object found")}
	}
	candidate := content[start : end+1]
	candidate = trailingCommaPattern.ReplaceAllString(candidate, "$1")

	firstErr := json.Unmarshal([]byte(candidate), target)
	if firstErr == nil {
		return nil
	}

	cleaned := stripControlChars(candidate)
	if err := json.Unmarshal([]byte(cleaned), target); err != nil {
		return &ParseError{Raw: content, Err: firstErr}
	}
	return nil
}

func stripControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
