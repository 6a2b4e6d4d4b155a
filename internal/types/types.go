package types

import (
	"github.com/riverfjs/draftify-go/internal/registry"
)

// Mutability of every entity produced by the converter.
const Mutable = "MUTABLE"

// StyleRange 行内样式区间，offset/length 以 UTF-16 code units 计
type StyleRange struct {
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	Style  string `json:"style"`
}

// EntityRange 引用 entity map 中的实体
type EntityRange struct {
	Offset int `json:"offset"`
	Length int `json:"length"`
	Key    int `json:"key"`
}

// Entity 实体（链接、图片等）
type Entity struct {
	Type       string         `json:"type"`
	Mutability string         `json:"mutability"`
	Data       map[string]any `json:"data"`
}

// Block 文档块
type Block struct {
	Key               string         `json:"key"`
	Text              string         `json:"text"`
	Type              string         `json:"type"`
	Depth             int            `json:"depth"`
	InlineStyleRanges []StyleRange   `json:"inlineStyleRanges"`
	EntityRanges      []EntityRange  `json:"entityRanges"`
	Data              map[string]any `json:"data"`
}

// NewBlock returns a block with default fields.
func NewBlock() *Block {
	return &Block{
		Type:              registry.UnstyledType,
		InlineStyleRanges: []StyleRange{},
		EntityRanges:      []EntityRange{},
		Data:              map[string]any{},
	}
}

// IsEmpty reports whether the block has no text and no entity ranges.
func (b *Block) IsEmpty() bool {
	return b.Text == "" && len(b.EntityRanges) == 0
}

// Document 转换结果：entityMap + blocks
type Document struct {
	EntityMap map[string]Entity `json:"entityMap"`
	Blocks    []*Block          `json:"blocks"`

	// Warnings collected in lenient mode; not part of the serialized document.
	Warnings []Warning `json:"-"`
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{
		EntityMap: map[string]Entity{},
		Blocks:    []*Block{},
	}
}

// KeyGenerator produces the key of a finished block.
type KeyGenerator func(block *Block) string

// Config 转换配置
type Config struct {
	Registry        *registry.Registry
	KeyGenerator    KeyGenerator  // nil returns ""
	DefaultBlockTag string        // empty uses Registry.DefaultBlock()
	OnWarning       func(Warning) // lenient-mode diagnostics
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Registry: registry.Default(),
	}
}

// WrapperTag returns the tag synthesized around orphan inline content.
func (c *Config) WrapperTag() string {
	if c.DefaultBlockTag != "" {
		return c.DefaultBlockTag
	}
	if c.Registry == nil {
		return registry.Default().DefaultBlock()
	}
	return c.Registry.DefaultBlock()
}

// Key runs the key generator on a finished block.
func (c *Config) Key(block *Block) string {
	if c.KeyGenerator == nil {
		return ""
	}
	return c.KeyGenerator(block)
}
