// Package dom 定义前端无关的节点树
//
// 任何标记解析前端（内置 scanner、x/net/html、goldmark）都产出这里的 Node，
// converter 只依赖节点类型、文本、属性和有序子节点。
package dom

import "strings"

// RootName is the name of the synthesized root container.
const RootName = "body"

// Kind 节点类型
type Kind int

const (
	// TextNode is a run of text between tag boundaries.
	TextNode Kind = iota
	// ElementNode is a tagged node with attributes and children.
	ElementNode
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case TextNode:
		return "text"
	case ElementNode:
		return "element"
	default:
		return "unknown"
	}
}

// Value is an attribute value: either a string or the flag of a bare attribute.
type Value struct {
	Str  string
	Flag bool
}

// String returns a string attribute value.
func String(s string) Value {
	return Value{Str: s}
}

// Bare returns the value of an attribute written without '='.
func Bare() Value {
	return Value{Flag: true}
}

// Interface returns the value as it appears in entity data: string or true.
func (v Value) Interface() any {
	if v.Flag {
		return true
	}
	return v.Str
}

// Attributes maps attribute names to values.
type Attributes map[string]Value

// Node 节点
type Node struct {
	Kind     Kind
	Name     string // lowercase, ElementNode only
	Text     string // TextNode only
	Attrs    Attributes
	Children []*Node
}

// NewText creates a text node.
func NewText(text string) *Node {
	return &Node{Kind: TextNode, Text: text}
}

// NewElement creates an element node; the name is case-folded to lowercase.
func NewElement(name string, attrs Attributes, children ...*Node) *Node {
	if attrs == nil {
		attrs = Attributes{}
	}
	return &Node{
		Kind:     ElementNode,
		Name:     strings.ToLower(name),
		Attrs:    attrs,
		Children: children,
	}
}

// IsText reports whether n is a text node.
func (n *Node) IsText() bool {
	return n.Kind == TextNode
}

// Append adds child as the last child of n.
func (n *Node) Append(child *Node) {
	n.Children = append(n.Children, child)
}

// String renders the node back to markup, for diagnostics.
func (n *Node) String() string {
	if n.IsText() {
		return n.Text
	}
	var sb strings.Builder
	sb.WriteString("<" + n.Name + ">")
	for _, c := range n.Children {
		sb.WriteString(c.String())
	}
	sb.WriteString("</" + n.Name + ">")
	return sb.String()
}
