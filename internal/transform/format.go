package transform

import (
	"strings"
	"unicode/utf8"

	"fieldmap/internal/mapping"
)

// Format is the last step for every field. A nil value is treated as "".
// With length <= 0 the value passes through untouched. Otherwise short
// values are filled with padChar (on the left for PadLeft, on the right
// for PadRight and PadNone) and long values keep their leftmost length
// characters, so the result always has exactly length characters.
// Widths above mapping.MaxFieldLength are capped at that maximum.
func Format(value *string, length int, pad mapping.PadDirection, padChar rune) string {
	var s string
	if value != nil {
		s = *value
	}

	if length <= 0 {
		return s
	}

	length = min(length, mapping.MaxFieldLength)

	if n := utf8.RuneCountInString(s); n < length {
		fill := strings.Repeat(string(padChar), length-n)

		if pad == mapping.PadLeft {
			return fill + s
		}

		return s + fill
	}

	return truncate(s, length)
}

// truncate keeps the first n characters of s.
func truncate(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}

		i++
	}

	return s
}
