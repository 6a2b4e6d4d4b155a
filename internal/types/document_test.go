package types

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func validDocument() *Document {
	doc := NewDocument()
	b := NewBlock()
	b.Text = "hello 📌 world"
	b.InlineStyleRanges = []StyleRange{{Offset: 0, Length: 5, Style: "BOLD"}, {Offset: 6, Length: 2, Style: "ITALIC"}}
	b.EntityRanges = []EntityRange{{Offset: 9, Length: 5, Key: 0}}
	img := NewBlock()
	img.EntityRanges = []EntityRange{{Offset: 0, Length: 0, Key: 1}}
	doc.Blocks = []*Block{b, img}
	doc.EntityMap = map[string]Entity{
		"0": {Type: "LINK", Mutability: Mutable, Data: map[string]any{"url": "x"}},
		"1": {Type: "IMAGE", Mutability: Mutable, Data: map[string]any{"src": "y"}},
	}
	return doc
}

func TestDocument_Validate(t *testing.T) {
	if err := validDocument().Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(d *Document)
		want   string
	}{
		{"key gap", func(d *Document) {
			d.EntityMap["5"] = d.EntityMap["1"]
			delete(d.EntityMap, "1")
			d.Blocks[1].EntityRanges[0].Key = 5
		}, "outside"},
		{"empty block", func(d *Document) { d.Blocks = append(d.Blocks, NewBlock()) }, "empty block"},
		{"style out of range", func(d *Document) { d.Blocks[0].InlineStyleRanges[1].Length = 20 }, "style range"},
		{"empty style", func(d *Document) { d.Blocks[0].InlineStyleRanges[0].Length = 0 }, "style range"},
		{"unsorted styles", func(d *Document) {
			r := d.Blocks[0].InlineStyleRanges
			r[0], r[1] = r[1], r[0]
		}, "not sorted"},
		{"unknown entity", func(d *Document) { d.Blocks[0].EntityRanges[0].Key = 7 }, "unknown key"},
		{"unreferenced entity", func(d *Document) { d.Blocks = d.Blocks[:1] }, "not referenced"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDocument()
			tt.mutate(d)
			err := d.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestBlock_Slice(t *testing.T) {
	b := validDocument().Blocks[0]
	for _, r := range []struct {
		offset, length int
		want           string
	}{
		{0, 5, "hello"},
		{6, 2, "📌"},
		{9, 5, "world"},
	} {
		if got, ok := b.Slice(r.offset, r.length); !ok || got != r.want {
			t.Errorf("Slice(%d, %d) = %q, %v, want %q", r.offset, r.length, got, ok, r.want)
		}
	}
	if _, ok := b.Slice(7, 1); ok {
		t.Error("Slice() inside a surrogate pair should fail")
	}
}

func TestBlock_SortRanges(t *testing.T) {
	b := NewBlock()
	b.InlineStyleRanges = []StyleRange{{Offset: 4, Length: 1, Style: "A"}, {Offset: 0, Length: 9, Style: "B"}, {Offset: 4, Length: 2, Style: "C"}}
	b.EntityRanges = []EntityRange{{Key: 3}, {Key: 1}}
	b.SortRanges()
	var got []string
	for _, r := range b.InlineStyleRanges {
		got = append(got, r.Style)
	}
	if strings.Join(got, "") != "BAC" {
		t.Errorf("style order = %v, want B A C (stable)", got)
	}
	if b.EntityRanges[0].Key != 1 {
		t.Errorf("entity order = %v", b.EntityRanges)
	}
}

func TestDocument_TextLength(t *testing.T) {
	if got := validDocument().TextLength(); got != 14 {
		t.Errorf("TextLength() = %d, want 14", got)
	}
}

func TestError_Is(t *testing.T) {
	err := fmt.Errorf("scan: %w", NewUnterminatedTagError("em"))
	if !errors.Is(err, ErrUnterminatedTag) {
		t.Error("errors.Is(err, ErrUnterminatedTag) = false")
	}
	if errors.Is(err, ErrMalformedAttributeValue) {
		t.Error("errors.Is matched a different code")
	}
	if got := NewInvalidValueError("href").Error(); got != "Invalid value for the attribute (href)" {
		t.Errorf("Error() = %q", got)
	}
	e := &Error{Code: CodeUnsupportedTag, Message: "Unsupported tag", Nodes: []string{"<span></span>"}}
	if got := e.Error(); got != "Unsupported tag: <span></span>" {
		t.Errorf("Error() = %q", got)
	}
}

func TestErrorCode_Structural(t *testing.T) {
	for code, want := range map[ErrorCode]bool{
		CodeMalformedAttributeValue: false,
		CodeUnterminatedTag:         false,
		CodeBlockInInline:           true,
		CodeUnsupportedTag:          true,
		CodeEmptyInlineStyle:        true,
	} {
		if got := code.Structural(); got != want {
			t.Errorf("%s.Structural() = %v, want %v", code, got, want)
		}
	}
}
