package util

import (
	"strings"
	"unicode"
)

// IsSpace reports whether r is formatting whitespace.
func IsSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
}

// IsNumeric reports whether s is non-empty and made only of numeric characters.
//
// Any Unicode number counts, so "255", "²" and "٣" are numeric while "1.5",
// "-1" and "10px" are not.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// TrimFormatting removes source-formatting padding from a text run.
//
// A leading or trailing whitespace run is dropped only when it contains a
// newline, i.e. when it is indentation between tags. Whitespace without a
// newline ("hello " before a tag) is content and stays.
func TrimFormatting(text string) string {
	start := 0
	for start < len(text) && IsSpace(rune(text[start])) {
		start++
	}
	if strings.Contains(text[:start], "\n") {
		text = text[start:]
	}

	end := len(text)
	for end > 0 && IsSpace(rune(text[end-1])) {
		end--
	}
	if strings.Contains(text[end:], "\n") {
		text = text[:end]
	}
	return text
}
