package scanner

import (
	"strings"

	"github.com/riverfjs/draftify-go/internal/dom"
	"github.com/riverfjs/draftify-go/internal/types"
)

// ParseAttributes 解析标签名与 '>' 之间的原始属性串
//
//	ParseAttributes("href='https://example.com/' target='_blank'")
//	// {"href": "https://example.com/", "target": "_blank"}
//
//	ParseAttributes("title='hello' checked")
//	// {"title": "hello", "checked": true}
//
// 值必须用单引号或双引号包裹，闭合引号之后只能是空白或结尾，
// 否则返回 CodeMalformedAttributeValue 错误。
func ParseAttributes(raw string) (dom.Attributes, error) {
	attrs := dom.Attributes{}
	pos := 0
	for {
		for pos < len(raw) && isSpace(raw[pos]) {
			pos++
		}
		if pos >= len(raw) {
			return attrs, nil
		}

		start := pos
		for pos < len(raw) && !isSpace(raw[pos]) && raw[pos] != '=' {
			pos++
		}
		name := raw[start:pos]

		if pos >= len(raw) || raw[pos] != '=' {
			attrs[name] = dom.Bare()
			continue
		}

		// skip '=' and read the quote type
		pos++
		if pos >= len(raw) || (raw[pos] != '\'' && raw[pos] != '"') {
			return nil, types.NewInvalidValueError(name)
		}
		quote := raw[pos]
		pos++

		end := strings.IndexByte(raw[pos:], quote)
		if end < 0 {
			return nil, types.NewInvalidValueError(name)
		}
		value := raw[pos : pos+end]
		pos += end + 1

		if pos < len(raw) && !isSpace(raw[pos]) {
			return nil, types.NewInvalidValueError(name)
		}
		attrs[name] = dom.String(value)
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t' || c == '\f'
}
