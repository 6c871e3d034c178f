package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an identifier for fuzzy comparison: lower case,
// with separators (_, -, ., spaces) removed. "ACH_DEBIT", "ach-debit"
// and "AchDebit" all normalize to "achdebit".
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}
