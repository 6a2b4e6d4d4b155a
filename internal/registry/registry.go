// Package registry 保存标签分类表
//
// 五张表全部以小写标签名为键：行内样式、块、上下文相关的类型化块、
// 文本替换以及实体。Registry 构建后只读，可在并发转换间共享。
package registry

import (
	"maps"
	"slices"
	"strings"

	"github.com/riverfjs/draftify-go/internal/dom"
	"github.com/riverfjs/draftify-go/internal/util"
)

// UnstyledType is the block type used when no typed rule applies.
const UnstyledType = "unstyled"

// Transform converts a projected attribute value.
type Transform func(value any) any

// AttributeRule projects one node attribute into entity data.
type AttributeRule struct {
	Name       string    // source attribute
	Rename     string    // destination key, Name when empty
	HasDefault bool      // fill Default when the attribute is absent
	Default    any       // may be nil: a nil default still writes the key
	Convert    Transform // optional
}

// Key returns the destination key in entity data.
func (r AttributeRule) Key() string {
	if r.Rename != "" {
		return r.Rename
	}
	return r.Name
}

// EntityType describes an entity-producing tag.
type EntityType struct {
	Type       string
	Attributes []AttributeRule
}

// Project builds entity data from the node attributes.
func (e EntityType) Project(attrs dom.Attributes) map[string]any {
	data := make(map[string]any, len(e.Attributes))
	for _, rule := range e.Attributes {
		var value any
		if v, ok := attrs[rule.Name]; ok {
			value = v.Interface()
		} else if rule.HasDefault {
			value = rule.Default
		} else {
			continue
		}
		if rule.Convert != nil {
			value = rule.Convert(value)
		}
		data[rule.Key()] = value
	}
	return data
}

// ParentRule maps an immediate parent tag to a block type.
type ParentRule struct {
	Parent string
	Type   string
}

// BlockType is either a constant type or a list of parent rules.
type BlockType struct {
	Type  string
	Rules []ParentRule
}

// Constant returns a block type that ignores the parent.
func Constant(blockType string) BlockType {
	return BlockType{Type: blockType}
}

// ByParent returns a block type resolved against the parent tag.
func ByParent(rules ...ParentRule) BlockType {
	return BlockType{Rules: rules}
}

// Resolve returns the block type for a node under parent.
func (b BlockType) Resolve(parent string) string {
	if b.Rules == nil {
		return b.Type
	}
	for _, rule := range b.Rules {
		if strings.EqualFold(rule.Parent, parent) {
			return rule.Type
		}
	}
	return UnstyledType
}

// Registry 标签注册表
type Registry struct {
	Inline   map[string]string     // tag -> style
	Blocks   []string              // plain blocks, first one is the default wrapper
	Typed    map[string]BlockType  // tag -> type rule
	Text     map[string]string     // tag -> literal substitution
	Entities map[string]EntityType // tag -> entity description
}

// ToDimension appends "px" to bare numeric strings and leaves everything else alone.
func ToDimension(value any) any {
	if s, ok := value.(string); ok && util.IsNumeric(s) {
		return s + "px"
	}
	return value
}

// Default returns a fresh copy of the default tables.
func Default() *Registry {
	return &Registry{
		Inline: map[string]string{
			// Bold
			"b":      "BOLD",
			"strong": "BOLD",
			// Italic
			"i":  "ITALIC",
			"em": "ITALIC",
			// Underline
			"u":   "UNDERLINE",
			"ins": "UNDERLINE",
			// Strikethrough
			"s":      "STRIKETHROUGH",
			"del":    "STRIKETHROUGH",
			"strike": "STRIKETHROUGH",
			// Code
			"code": "CODE",
		},
		Blocks: []string{"p", "div", "ul"},
		Typed: map[string]BlockType{
			"h1":         Constant("header-one"),
			"h2":         Constant("header-two"),
			"h3":         Constant("header-three"),
			"h4":         Constant("header-four"),
			"h5":         Constant("header-five"),
			"h6":         Constant("header-six"),
			"blockquote": Constant("blockquote"),
			"pre":        Constant("code-block"),
			"li": ByParent(
				ParentRule{Parent: "ul", Type: "unordered-list-item"},
				ParentRule{Parent: "ol", Type: "ordered-list-item"},
			),
			"p":  ByParent(ParentRule{Parent: "blockquote", Type: "blockquote"}),
			"ol": Constant(UnstyledType),
			"ul": Constant(UnstyledType),
		},
		Text: map[string]string{
			"br": "\n",
		},
		Entities: map[string]EntityType{
			"a": {
				Type: "LINK",
				Attributes: []AttributeRule{
					{Name: "href", Rename: "url"},
					{Name: "target"},
					{Name: "title"},
				},
			},
			"img": {
				Type: "IMAGE",
				Attributes: []AttributeRule{
					{Name: "src"},
					{Name: "alt", HasDefault: true, Default: ""},
					{Name: "height", HasDefault: true, Default: "initial", Convert: ToDimension},
					{Name: "width", HasDefault: true, Default: "initial", Convert: ToDimension},
				},
			},
		},
	}
}

// Clone returns a copy whose tables can be modified independently.
func (r *Registry) Clone() *Registry {
	entities := make(map[string]EntityType, len(r.Entities))
	for name, et := range r.Entities {
		entities[name] = EntityType{Type: et.Type, Attributes: slices.Clone(et.Attributes)}
	}
	typed := make(map[string]BlockType, len(r.Typed))
	for name, bt := range r.Typed {
		typed[name] = BlockType{Type: bt.Type, Rules: slices.Clone(bt.Rules)}
	}
	return &Registry{
		Inline:   maps.Clone(r.Inline),
		Blocks:   slices.Clone(r.Blocks),
		Typed:    typed,
		Text:     maps.Clone(r.Text),
		Entities: entities,
	}
}

// DefaultBlock returns the tag used to wrap orphan inline content.
func (r *Registry) DefaultBlock() string {
	if len(r.Blocks) == 0 {
		return "p"
	}
	return r.Blocks[0]
}

// IsBlock reports whether name starts a new block.
func (r *Registry) IsBlock(name string) bool {
	if _, ok := r.Typed[name]; ok {
		return true
	}
	return slices.Contains(r.Blocks, name)
}

// IsInline reports whether name is inline-capable: a style, entity or text tag.
func (r *Registry) IsInline(name string) bool {
	if _, ok := r.Inline[name]; ok {
		return true
	}
	if _, ok := r.Entities[name]; ok {
		return true
	}
	_, ok := r.Text[name]
	return ok
}

// Style returns the inline style of name.
func (r *Registry) Style(name string) (string, bool) {
	style, ok := r.Inline[name]
	return style, ok
}

// Substitution returns the literal text that replaces name.
func (r *Registry) Substitution(name string) (string, bool) {
	text, ok := r.Text[name]
	return text, ok
}

// Entity returns the entity description of name.
func (r *Registry) Entity(name string) (EntityType, bool) {
	et, ok := r.Entities[name]
	return et, ok
}

// BlockType returns the type of a block tag under parent.
func (r *Registry) BlockType(name, parent string) string {
	if bt, ok := r.Typed[name]; ok {
		return bt.Resolve(parent)
	}
	return UnstyledType
}
