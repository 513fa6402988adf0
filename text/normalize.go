package text

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalize canonicalizes raw extracted text for classification:
//
//   - applies Unicode NFC normalization
//   - folds East Asian full-width forms to their canonical width, so
//     "１.２" and "1.2" match the same numbering patterns
//   - collapses runs of ordinary spaces to a single space
//
// Literal tab and newline characters are content, not structural
// delimiters, and are preserved. Normalize always succeeds; invalid byte
// sequences are passed through unchanged.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = norm.NFC.String(s)
	s = width.Fold.String(s)
	return collapseSpaces(s)
}

// collapseSpaces replaces each run of U+0020 with a single space, leaving
// tabs, newlines, and other whitespace untouched.
func collapseSpaces(s string) string {
	if !strings.Contains(s, "  ") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false
	for _, r := range s {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
