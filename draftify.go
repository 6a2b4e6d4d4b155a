// Package draftify 将 HTML 片段转换为 Draft.js 原始内容（blocks + entityMap）
//
// 这个包把富文本标记（手写 HTML、编辑器导出、Markdown 等）转换为
// Draft.js 编辑器可以直接加载的 convertFromRaw 格式。
//
// 核心功能：
//   - 块标签生成 block，行内标签生成样式区间，链接/图片生成实体
//   - 偏移量以 UTF-16 code units 计算，与 JavaScript 字符串一致
//   - 严格模式下结构错误直接返回，默认模式下记录警告并跳过
//   - 可选的 HTML5 / Markdown 前端以及本地图片尺寸补全
//
// 主要 API：
//   - Convert(): 使用内置 scanner 转换 HTML
//   - ConvertNode(): 转换调用方提供的节点树
//   - ConvertMarkdown(): 转换 Markdown
//   - Draftify(): 通过 Option 选择前端和配置的完整处理
//
// 示例：
//
//	// 简单转换
//	doc, err := draftify.Convert("<p>Hello <b>world</b></p>", false, nil)
//
//	// 完整处理
//	doc, err := draftify.Draftify(markdown,
//	    draftify.WithFrontEnd(draftify.FrontEndMarkdown),
//	    draftify.WithKeyGenerator(draftify.RandomKey),
//	)
//	raw, _ := doc.JSON("  ")
package draftify

import (
	"fmt"

	"github.com/riverfjs/draftify-go/internal/htmltree"
	"github.com/riverfjs/draftify-go/internal/imagesize"
)

// Draftify 按 Option 转换 content
//
// 这是主要的高层 API：选择解析前端、应用配置覆盖，并在设置了
// WithImageDir 时补全本地图片尺寸。对于较低级别的转换，使用 Convert()。
//
// 参数：
//   - content: 原始标记（HTML 或 Markdown，取决于 FrontEnd）
//   - opts: 转换选项，默认使用内置 scanner、非严格模式
//
// 返回：
//   - *Document: 转换结果
//   - error: 致命错误（严格模式下的结构错误、属性格式错误、前端解析失败）
func Draftify(content string, opts ...Option) (*Document, error) {
	options := applyOptions(opts...)
	config := options.config()

	var (
		doc *Document
		err error
	)
	switch options.FrontEnd {
	case FrontEndScanner:
		doc, err = Convert(content, options.Strict, config)
	case FrontEndHTML:
		var root *Node
		root, err = htmltree.Parse(content)
		if err != nil {
			return nil, fmt.Errorf("parse html: %w", err)
		}
		doc, err = ConvertNode(root, options.Strict, config)
	case FrontEndMarkdown:
		doc, err = ConvertMarkdown(content, options.Strict, config)
	default:
		return nil, fmt.Errorf("unknown front end: %s", options.FrontEnd)
	}
	if err != nil {
		return nil, err
	}

	if options.ImageDir != "" {
		filled, err := imagesize.Fill(doc, options.ImageDir)
		if err != nil {
			Logger.Printf("image size: %v", err)
		}
		if filled > 0 {
			Logger.Printf("filled size of %d image(s)", filled)
		}
	}
	return doc, nil
}
