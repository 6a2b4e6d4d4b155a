package draftify

import (
	"fmt"

	"github.com/riverfjs/draftify-go/internal/converter"
	"github.com/riverfjs/draftify-go/internal/parser"
	"github.com/riverfjs/draftify-go/internal/scanner"
)

// Convert 将 HTML 片段转换为 Draft.js 文档
//
// 使用内置 scanner 解析：属性值必须加引号，img 等 void 标签必须自闭合。
//
// 参数:
//   - html: HTML 片段
//   - strict: 严格模式下，块嵌套在行内标签中、不支持的标签、空行内样式都是致命错误
//   - config: 转换配置，如为 nil 则使用默认配置
//
// 返回:
//   - *Document: 转换结果，非严格模式下 Warnings 记录被跳过的节点
//   - error: 致命错误
func Convert(html string, strict bool, config *Config) (*Document, error) {
	root, err := scanner.Parse(html)
	if err != nil {
		return nil, err
	}
	return ConvertNode(root, strict, config)
}

// ConvertNode 转换调用方提供的节点树
//
// root 通常是 body 这样的容器；为 nil 时返回空文档。
func ConvertNode(root *Node, strict bool, config *Config) (*Document, error) {
	if config == nil {
		config = DefaultConfig()
	}
	return converter.NewBuilder(withWarningLog(config), strict).Convert(root)
}

// ConvertMarkdown 将 Markdown 转换为 Draft.js 文档
func ConvertMarkdown(markdown string, strict bool, config *Config) (*Document, error) {
	root, err := parser.Parse(markdown)
	if err != nil {
		return nil, fmt.Errorf("parse markdown: %w", err)
	}
	return ConvertNode(root, strict, config)
}

// withWarningLog 在没有自定义处理函数时通过 Logger 输出警告
func withWarningLog(config *Config) *Config {
	if config.OnWarning != nil {
		return config
	}
	c := *config
	c.OnWarning = func(w Warning) {
		Logger.Printf("warning: %s", w)
	}
	return &c
}
