package domain

import (
	"strings"
	"unicode"
)

// CleanText prepares card text for storage. Each line is trimmed and its
// inner runs of blanks (spaces, tabs, NBSP) become one space; blank lines at
// either end are dropped. Case, diacritics and punctuation are kept, and so
// are line breaks inside a definition.
func CleanText(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.FieldsFunc(line, isBlank), " ")
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}

// NormalizeText is the form answers are compared in: all whitespace,
// line breaks included, folds to single spaces and letters are lowercased.
func NormalizeText(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

func isBlank(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}
