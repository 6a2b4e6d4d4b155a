// Package htmltree 使用 golang.org/x/net/html 解析 HTML5，
// 并转换为 dom.Node 树。
//
// 与内置 scanner 不同，这里遵循浏览器的容错规则：void 元素（img、br）
// 无需自闭合，未闭合的标签会被自动补全。
package htmltree

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/riverfjs/draftify-go/internal/dom"
)

// Parse 解析 markup 并返回以 body 为根的节点树
func Parse(markup string) (*dom.Node, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}
	body := findBody(doc)
	if body == nil {
		return dom.NewElement(dom.RootName, nil), nil
	}
	return FromNode(body), nil
}

// FromNode 转换一个 x/net/html 节点及其子树
//
// 注释、doctype 等非内容节点被丢弃；文档节点被视为 body。
// 返回 nil 表示 n 本身没有对应的内容节点。
func FromNode(n *html.Node) *dom.Node {
	switch n.Type {
	case html.TextNode:
		return dom.NewText(n.Data)
	case html.DocumentNode:
		if body := findBody(n); body != nil {
			return FromNode(body)
		}
		return dom.NewElement(dom.RootName, nil)
	case html.ElementNode:
		node := dom.NewElement(n.Data, attributes(n.Attr))
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := FromNode(c); child != nil {
				node.Append(child)
			}
		}
		return node
	default:
		return nil
	}
}

func attributes(attrs []html.Attribute) dom.Attributes {
	out := make(dom.Attributes, len(attrs))
	for _, a := range attrs {
		if a.Namespace != "" {
			continue
		}
		out[strings.ToLower(a.Key)] = dom.String(a.Val)
	}
	return out
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if body := findBody(c); body != nil {
			return body
		}
	}
	return nil
}
