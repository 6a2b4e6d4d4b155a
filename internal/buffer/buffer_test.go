package buffer

import "testing"

func TestTextBuffer_Offsets(t *testing.T) {
	tb := New()
	if tb.UTF16Offset() != 0 || tb.String() != "" {
		t.Fatalf("new buffer not empty: %q", tb.String())
	}

	tb.Write("My content has ")
	if got := tb.UTF16Offset(); got != 15 {
		t.Errorf("UTF16Offset() = %d, want 15", got)
	}

	tb.Write("📌")
	if got := tb.UTF16Offset(); got != 17 {
		t.Errorf("UTF16Offset() after emoji = %d, want 17", got)
	}

	tb.Write("你好")
	if got := tb.UTF16Offset(); got != 19 {
		t.Errorf("UTF16Offset() after CJK = %d, want 19", got)
	}
	if got, want := tb.String(), "My content has 📌你好"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTextBuffer_EmptyWrite(t *testing.T) {
	tb := New()
	tb.Write("")
	if tb.UTF16Offset() != 0 || len(tb.parts) != 0 {
		t.Errorf("empty writes should be dropped, parts = %q", tb.parts)
	}
}
