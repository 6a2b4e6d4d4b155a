// Package parser 使用 goldmark 解析 Markdown，并转换为 dom.Node 树
package parser

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/draftify-go/internal/dom"
)

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM, // GitHub Flavored Markdown (tables, strikethrough, tasklists, linkify)
	),
}

// Parse 解析 Markdown 并返回以 body 为根的节点树
func Parse(markdown string) (*dom.Node, error) {
	source := []byte(markdown)
	node := ParseAST(source)

	walker := newTreeWalker(source)
	if err := ast.Walk(node, walker.Walk); err != nil {
		return nil, err
	}
	return walker.Result(), nil
}

// ParseAST 仅解析为 AST，不遍历
func ParseAST(source []byte) ast.Node {
	md := goldmark.New(StandardOptions...)
	return md.Parser().Parse(text.NewReader(source))
}
