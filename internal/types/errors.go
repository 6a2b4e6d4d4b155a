package types

import (
	"fmt"
	"strings"
)

// ErrorCode identifies a conversion failure.
type ErrorCode string

const (
	// CodeMalformedAttributeValue: mismatched quotes or trailing garbage after a value.
	CodeMalformedAttributeValue ErrorCode = "malformed-attribute-value"
	// CodeUnterminatedTag: the buffer ended inside an unclosed tag.
	CodeUnterminatedTag ErrorCode = "unterminated-tag"
	// CodeBlockInInline: a block tag nested inside an inline tag.
	CodeBlockInInline ErrorCode = "block-in-inline"
	// CodeUnsupportedTag: a tag absent from every registry table.
	CodeUnsupportedTag ErrorCode = "unsupported-tag"
	// CodeEmptyInlineStyle: an inline style applied to no text.
	CodeEmptyInlineStyle ErrorCode = "empty-inline-style"
)

// Structural reports whether the code is subject to the strict/lenient policy.
func (c ErrorCode) Structural() bool {
	switch c {
	case CodeBlockInInline, CodeUnsupportedTag, CodeEmptyInlineStyle:
		return true
	default:
		return false
	}
}

// Error 结构化转换错误
type Error struct {
	Code      ErrorCode
	Message   string
	Tag       string   // offending tag, if any
	Attribute string   // offending attribute, if any
	Nodes     []string // offending nodes rendered as markup
}

// Error returns the message followed by the offending nodes.
func (e *Error) Error() string {
	if len(e.Nodes) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Nodes, ", "))
}

// Is matches errors by code, so errors.Is(err, ErrUnterminatedTag) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Sentinels for errors.Is.
var (
	ErrMalformedAttributeValue = &Error{Code: CodeMalformedAttributeValue, Message: "malformed attribute value"}
	ErrUnterminatedTag         = &Error{Code: CodeUnterminatedTag, Message: "unterminated tag"}
	ErrBlockInInline           = &Error{Code: CodeBlockInInline, Message: "block tag inside inline tag"}
	ErrUnsupportedTag          = &Error{Code: CodeUnsupportedTag, Message: "unsupported tag"}
	ErrEmptyInlineStyle        = &Error{Code: CodeEmptyInlineStyle, Message: "empty inline style"}
)

// NewInvalidValueError reports a malformed value of the named attribute.
func NewInvalidValueError(attribute string) *Error {
	return &Error{
		Code:      CodeMalformedAttributeValue,
		Message:   fmt.Sprintf("Invalid value for the attribute (%s)", attribute),
		Attribute: attribute,
	}
}

// NewUnterminatedTagError reports a tag without closure.
func NewUnterminatedTagError(tag string) *Error {
	return &Error{
		Code:    CodeUnterminatedTag,
		Message: fmt.Sprintf("Did not find a closure for: %s", tag),
		Tag:     tag,
	}
}

// Warning 宽松模式下的非致命诊断
type Warning struct {
	Code    ErrorCode `json:"code"`
	Tag     string    `json:"tag,omitempty"`
	Message string    `json:"message"`
}

// String formats the warning the way it is logged.
func (w Warning) String() string {
	if w.Tag == "" {
		return fmt.Sprintf("%s: %s", w.Code, w.Message)
	}
	return fmt.Sprintf("%s: %s <%s>", w.Code, w.Message, w.Tag)
}
