// Package llmjson recovers structured data from model replies that were
// prompted to emit pure JSON but are not guaranteed to comply. Observed
// failure modes: prose preambles, markdown fences, trailing commentary,
// unescaped line breaks inside string values, and trailing commas.
package llmjson

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

const excerptLimit = 120

// ParseError is returned only after every recovery strategy has failed. It
// carries a bounded excerpt of the offending region for diagnostics.
type ParseError struct {
	Excerpt string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed model response: %v (near %q)", e.Err, e.Excerpt)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var trailingSeparators = regexp.MustCompile(`,\s*([}\]])`)

// Decode parses raw into v. Strategy order: strict parse of the whole text;
// strict parse of the slice between the first opening and last closing brace;
// strict parse of that slice after light repair.
func Decode(raw string, v any) error {
	if err := json.Unmarshal([]byte(raw), v); err == nil {
		return nil
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return &ParseError{Excerpt: excerpt(raw), Err: fmt.Errorf("no JSON object found")}
	}
	sliced := raw[start : end+1]

	if err := json.Unmarshal([]byte(sliced), v); err == nil {
		return nil
	}

	repaired := repair(sliced)
	if err := json.Unmarshal([]byte(repaired), v); err != nil {
		return &ParseError{Excerpt: excerpt(repaired), Err: err}
	}

	return nil
}

// repair fixes the two malformations models produce most often: raw line
// breaks inside string values (structured text must not span unescaped line
// breaks) and trailing separators immediately before a closing brace or
// bracket.
func repair(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return trailingSeparators.ReplaceAllString(s, "$1")
}

func excerpt(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > excerptLimit {
		return s[:excerptLimit] + "..."
	}
	return s
}
