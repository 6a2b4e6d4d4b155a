package draftify

import (
	"sync"

	"github.com/riverfjs/draftify-go/internal/dom"
	"github.com/riverfjs/draftify-go/internal/registry"
	"github.com/riverfjs/draftify-go/internal/types"
)

// 导出类型别名
type Config = types.Config
type KeyGenerator = types.KeyGenerator
type Document = types.Document
type Block = types.Block
type StyleRange = types.StyleRange
type EntityRange = types.EntityRange
type Entity = types.Entity
type Warning = types.Warning
type Error = types.Error
type ErrorCode = types.ErrorCode
type Registry = registry.Registry
type Node = dom.Node

// 错误码
const (
	CodeMalformedAttributeValue = types.CodeMalformedAttributeValue
	CodeUnterminatedTag         = types.CodeUnterminatedTag
	CodeBlockInInline           = types.CodeBlockInInline
	CodeUnsupportedTag          = types.CodeUnsupportedTag
	CodeEmptyInlineStyle        = types.CodeEmptyInlineStyle
)

// 用于 errors.Is 的哨兵错误
var (
	ErrMalformedAttributeValue = types.ErrMalformedAttributeValue
	ErrUnterminatedTag         = types.ErrUnterminatedTag
	ErrBlockInInline           = types.ErrBlockInInline
	ErrUnsupportedTag          = types.ErrUnsupportedTag
	ErrEmptyInlineStyle        = types.ErrEmptyInlineStyle
)

var (
	defaultConfig     *Config
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default conversion configuration (singleton).
//
// The returned value is shared and must not be modified; use NewConfig to customize.
func DefaultConfig() *Config {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultConfig()
	})
	return defaultConfig
}

// NewConfig returns a fresh configuration with its own copy of the default tables.
func NewConfig() *Config {
	return types.DefaultConfig()
}

// DefaultRegistry returns a fresh copy of the default tag tables.
func DefaultRegistry() *Registry {
	return registry.Default()
}

// NewText creates a text node for ConvertNode.
func NewText(text string) *Node {
	return dom.NewText(text)
}

// NewElement creates an element node for ConvertNode.
func NewElement(name string, attrs map[string]string, children ...*Node) *Node {
	var a dom.Attributes
	if attrs != nil {
		a = make(dom.Attributes, len(attrs))
		for k, v := range attrs {
			a[k] = dom.String(v)
		}
	}
	return dom.NewElement(name, a, children...)
}
