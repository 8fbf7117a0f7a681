package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Initials returns up to two upper-cased initials for a person's name, "?" when empty.
func Initials(name string) string {
	tokens := strings.Fields(name)
	switch len(tokens) {
	case 0:
		return "?"
	case 1:
		return firstUpper(tokens[0])
	default:
		return firstUpper(tokens[0]) + firstUpper(tokens[len(tokens)-1])
	}
}

func firstUpper(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r))
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// SplitList splits comma/semicolon/newline separated values into trimmed, non-empty items.
func SplitList(raw string) []string {
	out := []string{}
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
