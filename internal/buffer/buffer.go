package buffer

import (
	"strings"

	"github.com/riverfjs/draftify-go/internal/util"
)

// TextBuffer accumulates the text of one block and tracks its UTF-16 length.
//
// Text is append-only: offsets handed out by UTF16Offset stay valid for the
// lifetime of the buffer.
type TextBuffer struct {
	parts       []string
	utf16Offset int
	byteOffset  int
}

// New creates a new TextBuffer.
func New() *TextBuffer {
	return &TextBuffer{
		parts: make([]string, 0),
	}
}

// Write appends text to the buffer.
func (tb *TextBuffer) Write(text string) {
	if text == "" {
		return
	}
	tb.parts = append(tb.parts, text)
	tb.utf16Offset += util.UTF16Len(text)
	tb.byteOffset += len(text)
}

// UTF16Offset returns the current UTF-16 offset.
func (tb *TextBuffer) UTF16Offset() int {
	return tb.utf16Offset
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	if len(tb.parts) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(tb.byteOffset)
	for _, p := range tb.parts {
		sb.WriteString(p)
	}
	return sb.String()
}
