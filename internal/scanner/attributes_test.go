package scanner

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/riverfjs/draftify-go/internal/dom"
	"github.com/riverfjs/draftify-go/internal/types"
)

func TestParseAttributes(t *testing.T) {
	tests := []struct {
		raw  string
		want dom.Attributes
	}{
		{"href='abc'", dom.Attributes{"href": dom.String("abc")}},
		{`href="abc"`, dom.Attributes{"href": dom.String("abc")}},
		{`src='hello' href="abc"`, dom.Attributes{"src": dom.String("hello"), "href": dom.String("abc")}},
		{"a='1'     b='2'", dom.Attributes{"a": dom.String("1"), "b": dom.String("2")}},
		{"a='1'\nb='2'", dom.Attributes{"a": dom.String("1"), "b": dom.String("2")}},
		{"a", dom.Attributes{"a": dom.Bare()}},
		{"a b src='hello'", dom.Attributes{"a": dom.Bare(), "b": dom.Bare(), "src": dom.String("hello")}},
		{"a=''", dom.Attributes{"a": dom.String("")}},
		{`title='say "hi"'`, dom.Attributes{"title": dom.String(`say "hi"`)}},
		{"  checked  ", dom.Attributes{"checked": dom.Bare()}},
		{"", dom.Attributes{}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseAttributes(tt.raw)
			if err != nil {
				t.Fatalf("ParseAttributes(%q) error = %v", tt.raw, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseAttributes(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestParseAttributes_InvalidValues(t *testing.T) {
	for _, raw := range []string{
		"href='abc\"",
		"href=abc",
		"href=",
		"href= hello",
		"href='abc'invalid",
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseAttributes(raw)
			if err == nil {
				t.Fatalf("ParseAttributes(%q) should fail", raw)
			}
			if !errors.Is(err, types.ErrMalformedAttributeValue) {
				t.Errorf("error %v is not ErrMalformedAttributeValue", err)
			}
			if err.Error() != "Invalid value for the attribute (href)" {
				t.Errorf("error message = %q", err.Error())
			}
			var convErr *types.Error
			if !errors.As(err, &convErr) || convErr.Attribute != "href" {
				t.Errorf("error should name attribute href, got %+v", convErr)
			}
		})
	}
}
