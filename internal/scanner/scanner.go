// Package scanner 内置的标记扫描器
//
// Scanner 在字节缓冲区上逐字符推进一个显式状态机，惰性地产出文本片段
// 或完整解析的 Tag。Tag 的内部 HTML 可再次扫描得到子节点，Parse 以此
// 物化出完整的 dom.Node 树。
package scanner

import (
	"io"
	"iter"
	"strings"

	"github.com/riverfjs/draftify-go/internal/dom"
	"github.com/riverfjs/draftify-go/internal/types"
)

// ItemKind 扫描结果类型
type ItemKind int

const (
	// TextItem is the text before the next tag.
	TextItem ItemKind = iota
	// TagItem is a fully parsed tag.
	TagItem
)

// Item is one scanned text run or tag; End is the position right after it.
type Item struct {
	Kind ItemKind
	Text string
	Tag  *Tag
	End  int
}

// Tag is a parsed tag with its raw, trimmed inner HTML.
type Tag struct {
	Name        string
	Attributes  dom.Attributes
	InnerHTML   string
	SelfClosing bool
}

// NewTag creates a tag over innerHTML, e.g. a synthesized root.
func NewTag(name string, attrs dom.Attributes, innerHTML string) *Tag {
	if attrs == nil {
		attrs = dom.Attributes{}
	}
	return &Tag{
		Name:       strings.ToLower(name),
		Attributes: attrs,
		InnerHTML:  innerHTML,
	}
}

type state int

const (
	seekingTagOrText state = iota
	inTagName
	inTagAttrs
)

// Scanner 扫描器，本身不保存位置，调用方持有游标
type Scanner struct {
	buf string
}

// New creates a scanner over buf.
func New(buf string) *Scanner {
	return &Scanner{buf: buf}
}

// Next scans the item starting at pos.
//
// Next is idempotent for a given pos. It returns io.EOF once pos reaches the
// end of the buffer.
func (s *Scanner) Next(pos int) (Item, error) {
	buf := s.buf
	if pos >= len(buf) {
		return Item{End: pos}, io.EOF
	}

	st := seekingTagOrText
	nameStart, nameEnd := 0, 0
	for i := pos; i < len(buf); i++ {
		c := buf[i]
		switch st {
		case seekingTagOrText:
			if c != '<' {
				continue
			}
			// text and tag are never merged into one item
			if i > pos {
				return Item{Kind: TextItem, Text: buf[pos:i], End: i}, nil
			}
			st = inTagName
			nameStart = i + 1

		case inTagName:
			switch {
			case isSpace(c), c == '/' && i > nameStart:
				nameEnd = i
				st = inTagAttrs
			case c == '>':
				return s.tag(nameStart, i, i)
			}

		case inTagAttrs:
			if c == '>' {
				return s.tag(nameStart, nameEnd, i)
			}
		}
	}

	if st == seekingTagOrText {
		return Item{Kind: TextItem, Text: buf[pos:], End: len(buf)}, nil
	}
	if st == inTagName {
		nameEnd = len(buf)
	}
	return Item{End: len(buf)}, types.NewUnterminatedTagError(strings.ToLower(buf[nameStart:nameEnd]))
}

// tag finishes an opening tag whose '>' is at gt.
func (s *Scanner) tag(nameStart, nameEnd, gt int) (Item, error) {
	buf := s.buf
	name := strings.ToLower(buf[nameStart:nameEnd])
	raw := buf[nameEnd:gt]
	selfClosing := gt > nameStart && buf[gt-1] == '/'
	if selfClosing {
		raw = strings.TrimSuffix(strings.TrimSpace(raw), "/")
	}

	attrs, err := ParseAttributes(strings.TrimSpace(raw))
	if err != nil {
		return Item{End: gt + 1}, err
	}

	tag := &Tag{Name: name, Attributes: attrs, SelfClosing: selfClosing}
	if selfClosing {
		return Item{Kind: TagItem, Tag: tag, End: gt + 1}, nil
	}

	closeStart, closeEnd, ok := s.findClose(name, gt+1)
	if !ok {
		return Item{End: len(buf)}, types.NewUnterminatedTagError(name)
	}
	tag.InnerHTML = strings.TrimSpace(buf[gt+1 : closeStart])
	return Item{Kind: TagItem, Tag: tag, End: closeEnd}, nil
}

// findClose locates the "</name>" matching an opening tag at nesting depth 0.
// It returns the position of its '<' and the position right after its '>'.
func (s *Scanner) findClose(name string, from int) (int, int, bool) {
	buf := s.buf
	depth := 0
	for i := from; i < len(buf); i++ {
		if buf[i] != '<' {
			continue
		}
		j := i + 1
		closing := j < len(buf) && buf[j] == '/'
		if closing {
			j++
		}
		k := j
		for k < len(buf) && !isSpace(buf[k]) && buf[k] != '>' && buf[k] != '/' {
			k++
		}
		// compare the complete candidate name, "stronp" must not match "strong"
		if !strings.EqualFold(buf[j:k], name) {
			continue
		}
		gt := strings.IndexByte(buf[k:], '>')
		if gt < 0 {
			return 0, 0, false
		}
		gt += k

		switch {
		case closing && depth == 0:
			return i, gt + 1, true
		case closing:
			depth--
		case buf[gt-1] != '/':
			depth++
		}
		i = gt
	}
	return 0, 0, false
}

// Items yields the children of t in order.
func (t *Tag) Items() iter.Seq2[Item, error] {
	return func(yield func(Item, error) bool) {
		s := New(t.InnerHTML)
		pos := 0
		for {
			item, err := s.Next(pos)
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(item, err)
				return
			}
			if !yield(item, nil) {
				return
			}
			pos = item.End
		}
	}
}

// Tree materializes t and all its descendants.
func (t *Tag) Tree() (*dom.Node, error) {
	node := dom.NewElement(t.Name, t.Attributes)
	for item, err := range t.Items() {
		if err != nil {
			return nil, err
		}
		switch item.Kind {
		case TextItem:
			node.Append(dom.NewText(item.Text))
		case TagItem:
			child, err := item.Tag.Tree()
			if err != nil {
				return nil, err
			}
			node.Append(child)
		}
	}
	return node, nil
}

// Parse scans markup into a node tree under a synthesized body root.
func Parse(markup string) (*dom.Node, error) {
	return NewTag(dom.RootName, nil, strings.TrimSpace(markup)).Tree()
}
