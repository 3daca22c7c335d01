package common

import (
	"strings"
	"unicode"
)

// SnakeCase converts a Go identifier to snake_case.
// Examples: "FullName" -> "full_name", "UserID" -> "user_id",
// "HTTPAddr" -> "http_addr".
func SnakeCase(s string) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)

	var b strings.Builder

	for i, r := range runes {
		if unicode.IsUpper(r) {
			// Word boundary: previous rune is lower/digit, or this is the
			// last rune of an initialism followed by a lowercase rune.
			if i > 0 && (!unicode.IsUpper(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}

			b.WriteRune(unicode.ToLower(r))

			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}
