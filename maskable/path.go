package maskable

import (
	"errors"
	"fmt"
	"strings"
)

// SplitPath splits a dotted field path string into segments, validating
// that every segment is a plausible field name. Examples: "name" →
// ["name"], "contact.email" → ["contact", "email"]. The empty string is
// rejected; callers selecting a whole value pass an empty segment slice
// to the parser directly.
func SplitPath(path string) ([]string, error) {
	if path == "" {
		return nil, errors.New("empty path")
	}

	segs := strings.Split(path, ".")
	for _, seg := range segs {
		if seg == "" {
			return nil, fmt.Errorf("invalid path %q: empty segment", path)
		}
		if !isValidIdent(seg) {
			return nil, fmt.Errorf("invalid path %q: invalid identifier %q", path, seg)
		}
	}

	return segs, nil
}

// isValidIdent checks if a string is a valid field-name segment.
func isValidIdent(s string) bool {
	for i, r := range s {
		if i == 0 {
			if !isLetter(r) && r != '_' {
				return false
			}
		} else {
			if !isLetter(r) && !isDigit(r) && r != '_' {
				return false
			}
		}
	}
	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
