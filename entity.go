package draftify

import (
	"strings"

	"github.com/google/uuid"

	"github.com/riverfjs/draftify-go/internal/util"
)

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Draft.js measures range offsets and lengths in UTF-16 code units,
// not Go string bytes or runes. Characters outside the BMP (codepoint > 0xFFFF)
// take 2 UTF-16 code units (a surrogate pair); all others take 1.
func UTF16Len(text string) int {
	return util.UTF16Len(text)
}

// EmptyKey is the default key generator: every block key is "".
func EmptyKey(*Block) string {
	return ""
}

// RandomKey returns a random 5-character block key, the length Draft.js generates.
func RandomKey(*Block) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:5]
}
