package textutil

import (
	"strings"
	"unicode"
)

// Slug converts a directory name to a lowercase identifier safe for HTML
// fragment anchors. Letters are lowercased, digits are kept, and every run
// of other characters collapses to a single underscore. Leading and trailing
// underscores are trimmed.
func Slug(value string) string {
	value = strings.TrimSpace(value)
	var b strings.Builder
	pendingSep := false
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r + ('a' - 'A'))
		default:
			pendingSep = true
		}
	}
	return b.String()
}

// Title converts a directory name to a display title: hyphens and
// underscores become spaces and each word's first letter is uppercased.
// The remainder of every word is left untouched.
func Title(value string) string {
	replaced := strings.Map(func(r rune) rune {
		if r == '-' || r == '_' {
			return ' '
		}
		return r
	}, value)

	var b strings.Builder
	startOfWord := true
	for _, r := range replaced {
		if r == ' ' {
			startOfWord = true
			b.WriteRune(r)
			continue
		}
		if startOfWord {
			b.WriteRune(unicode.ToUpper(r))
			startOfWord = false
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
