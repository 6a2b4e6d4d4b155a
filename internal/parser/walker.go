package parser

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/util"

	"github.com/riverfjs/draftify-go/internal/dom"
	"github.com/riverfjs/draftify-go/internal/scanner"
)

// treeWalker 遍历 goldmark AST 并生成等价的 HTML 节点树
//
// 每个有对应标签的 AST 节点在 entering 时压栈、离开时出栈；
// 没有对应标签的容器（TextBlock、TableCell）直接把子节点写入栈顶。
type treeWalker struct {
	source []byte
	root   *dom.Node
	stack  []*dom.Node

	// Table state
	cellIndex int
}

func newTreeWalker(source []byte) *treeWalker {
	root := dom.NewElement(dom.RootName, nil)
	return &treeWalker{
		source: source,
		root:   root,
		stack:  []*dom.Node{root},
	}
}

// Walk 遍历 AST 节点
func (w *treeWalker) Walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := node.(type) {
	// --- Inline elements ---
	case *ast.Text:
		if entering {
			w.onText(n)
		}

	case *ast.String:
		if entering {
			if n.IsCode() || n.IsRaw() {
				w.appendText(string(n.Value))
			} else {
				w.appendText(resolveText(n.Value))
			}
		}

	case *ast.CodeSpan:
		if entering {
			w.push("code", nil)
			w.appendText(extractCodeSpanText(n, w.source))
			w.pop()
			// 子节点已写入
			return ast.WalkSkipChildren, nil
		}

	case *ast.Emphasis:
		// Level 1 = italic, Level 2 = bold
		tag := "em"
		if n.Level == 2 {
			tag = "strong"
		}
		w.enterOrLeave(entering, tag, nil)

	case *east.Strikethrough:
		w.enterOrLeave(entering, "del", nil)

	// --- Links & Images ---
	case *ast.Link:
		attrs := dom.Attributes{"href": dom.String(string(n.Destination))}
		if len(n.Title) > 0 {
			attrs["title"] = dom.String(string(n.Title))
		}
		w.enterOrLeave(entering, "a", attrs)

	case *ast.AutoLink:
		if entering {
			url := string(n.URL(w.source))
			if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(strings.ToLower(url), "mailto:") {
				url = "mailto:" + url
			}
			w.push("a", dom.Attributes{"href": dom.String(url)})
			w.appendText(string(n.Label(w.source)))
			w.pop()
			return ast.WalkSkipChildren, nil
		}

	case *ast.Image:
		if entering {
			w.onImage(n)
			// alt 文本不是正文
			return ast.WalkSkipChildren, nil
		}

	case *ast.RawHTML:
		// Inline HTML ignored

	// --- Block elements ---
	case *ast.Paragraph:
		// loose list 的段落直接写入 li，保留列表项类型
		if _, ok := n.Parent().(*ast.ListItem); ok {
			if entering && n.PreviousSibling() != nil {
				w.push("br", nil)
				w.pop()
			}
			break
		}
		w.enterOrLeave(entering, "p", nil)

	case *ast.Heading:
		w.enterOrLeave(entering, fmt.Sprintf("h%d", n.Level), nil)

	case *ast.Blockquote:
		w.enterOrLeave(entering, "blockquote", nil)

	case *ast.List:
		tag := "ul"
		if n.IsOrdered() {
			tag = "ol"
		}
		w.enterOrLeave(entering, tag, nil)

	case *ast.ListItem:
		w.enterOrLeave(entering, "li", nil)

	case *east.TaskCheckBox:
		if entering {
			if n.IsChecked {
				w.appendText("[x] ")
			} else {
				w.appendText("[ ] ")
			}
		}

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if entering {
			w.onCodeBlock(n)
			return ast.WalkSkipChildren, nil
		}

	case *ast.HTMLBlock:
		if entering {
			w.onHTMLBlock(n)
		}
		return ast.WalkSkipChildren, nil

	// --- Table ---
	case *east.TableHeader, *east.TableRow:
		if entering {
			w.cellIndex = 0
		}
		w.enterOrLeave(entering, "p", nil)

	case *east.TableCell:
		if entering {
			if w.cellIndex > 0 {
				w.appendText(" | ")
			}
			w.cellIndex++
		}
	}

	return ast.WalkContinue, nil
}

// Result 返回节点树
func (w *treeWalker) Result() *dom.Node {
	return w.root
}

func (w *treeWalker) top() *dom.Node {
	return w.stack[len(w.stack)-1]
}

func (w *treeWalker) push(name string, attrs dom.Attributes) {
	node := dom.NewElement(name, attrs)
	w.top().Append(node)
	w.stack = append(w.stack, node)
}

func (w *treeWalker) pop() {
	if len(w.stack) > 1 {
		w.stack = w.stack[:len(w.stack)-1]
	}
}

func (w *treeWalker) enterOrLeave(entering bool, name string, attrs dom.Attributes) {
	if entering {
		w.push(name, attrs)
	} else {
		w.pop()
	}
}

// appendText 合并相邻文本节点
//
// goldmark 会把一行文本切成多个 Text，合并后空白裁剪只作用于真正的边界。
func (w *treeWalker) appendText(text string) {
	if text == "" {
		return
	}
	top := w.top()
	if n := len(top.Children); n > 0 && top.Children[n-1].IsText() {
		top.Children[n-1].Text += text
		return
	}
	top.Append(dom.NewText(text))
}

// --- Text handling ---

func (w *treeWalker) onText(n *ast.Text) {
	value := n.Segment.Value(w.source)
	if n.IsRaw() {
		w.appendText(string(value))
	} else {
		w.appendText(resolveText(value))
	}
	switch {
	case n.HardLineBreak():
		w.push("br", nil)
		w.pop()
	case n.SoftLineBreak():
		// 软换行在 HTML 中渲染为空格
		w.appendText(" ")
	}
}

func (w *treeWalker) onImage(n *ast.Image) {
	attrs := dom.Attributes{
		"src": dom.String(string(n.Destination)),
		"alt": dom.String(extractText(n, w.source)),
	}
	if len(n.Title) > 0 {
		attrs["title"] = dom.String(string(n.Title))
	}
	w.push("img", attrs)
	w.pop()
}

func (w *treeWalker) onCodeBlock(n ast.Node) {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		sb.Write(line.Value(w.source))
	}
	w.push("pre", nil)
	w.appendText(strings.TrimRight(sb.String(), "\n"))
	w.pop()
}

// onHTMLBlock 用内置 scanner 解析块级 HTML；无法解析的片段被丢弃
func (w *treeWalker) onHTMLBlock(n *ast.HTMLBlock) {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		sb.Write(line.Value(w.source))
	}
	if n.HasClosure() {
		sb.Write(n.ClosureLine.Value(w.source))
	}
	tree, err := scanner.Parse(sb.String())
	if err != nil {
		return
	}
	for _, child := range tree.Children {
		w.top().Append(child)
	}
}

// resolveText 去掉反斜杠转义并解析字符引用，与 goldmark 渲染 HTML 时一致
func resolveText(value []byte) string {
	value = util.UnescapePunctuations(value)
	value = util.ResolveNumericReferences(value)
	value = util.ResolveEntityNames(value)
	return string(value)
}

// extractCodeSpanText 代码内容保持原样
func extractCodeSpanText(n *ast.CodeSpan, source []byte) string {
	var buf strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if textNode, ok := c.(*ast.Text); ok {
			_, _ = buf.Write(textNode.Segment.Value(source))
		}
	}
	return buf.String()
}

// extractText 收集子树中的纯文本
func extractText(n ast.Node, source []byte) string {
	var buf strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			buf.WriteString(resolveText(t.Segment.Value(source)))
		case *ast.String:
			buf.WriteString(resolveText(t.Value))
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}
