package htmltree

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"

	"github.com/riverfjs/draftify-go/internal/dom"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *dom.Node
	}{
		{
			name:  "void element",
			input: "<p><img src='picture.png'>Invalid</img></p>",
			want: dom.NewElement("body", nil,
				dom.NewElement("p", nil,
					dom.NewElement("img", dom.Attributes{"src": dom.String("picture.png")}),
					dom.NewText("Invalid"),
				),
			),
		},
		{
			name:  "comments and doctype dropped",
			input: "<!DOCTYPE html><!-- note --><P CLASS='x'>Hi<br></P>",
			want: dom.NewElement("body", nil,
				dom.NewElement("p", dom.Attributes{"class": dom.String("x")},
					dom.NewText("Hi"),
					dom.NewElement("br", nil),
				),
			),
		},
		{
			name:  "unclosed tags completed",
			input: "<ul><li>a<li>b</ul>",
			want: dom.NewElement("body", nil,
				dom.NewElement("ul", nil,
					dom.NewElement("li", nil, dom.NewText("a")),
					dom.NewElement("li", nil, dom.NewText("b")),
				),
			),
		},
		{
			name:  "empty",
			input: "",
			want:  dom.NewElement("body", nil),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromNode_Document(t *testing.T) {
	doc, err := html.Parse(strings.NewReader("<b>x</b>"))
	if err != nil {
		t.Fatal(err)
	}
	got := FromNode(doc)
	if got.Name != "body" || len(got.Children) != 1 || got.Children[0].Name != "b" {
		t.Errorf("FromNode(document) = %s", got)
	}
}
