package exam

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrNoJSON is returned when no parsable JSON object can be located in the
// model output. Callers treat this as a generation failure; there is no
// internal retry.
var ErrNoJSON = errors.New("no parsable JSON found in model output")

var fencedBlockRes = []*regexp.Regexp{
	regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```"),
	regexp.MustCompile("(?s)```\\s*(.*?)\\s*```"),
}

// Extract locates and parses the first JSON value in an arbitrary text blob.
// The input may be bare JSON, JSON wrapped in prose, or JSON inside a fenced
// code block. Candidates are attempted in order: the whole trimmed input,
// each fenced block by order of appearance, then the first balanced-brace
// span. The brace scan is not string-aware; a brace inside a JSON string can
// throw the count off, which is accepted.
func Extract(text string) (any, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoJSON
	}

	if v, err := parseJSON(strings.TrimSpace(text)); err == nil {
		return v, nil
	}

	for _, re := range fencedBlockRes {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if v, err := parseJSON(strings.TrimSpace(m[1])); err == nil {
				return v, nil
			}
		}
	}

	if start := strings.IndexByte(text, '{'); start != -1 {
		depth := 0
		for i := start; i < len(text); i++ {
			switch text[i] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					if v, err := parseJSON(text[start : i+1]); err == nil {
						return v, nil
					}
					return nil, ErrNoJSON
				}
			}
		}
	}

	return nil, ErrNoJSON
}

func parseJSON(s string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, err
	}
	return v, nil
}
