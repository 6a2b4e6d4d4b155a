package draftify

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// captureLogger 替换 Logger 并在测试结束时恢复
func captureLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := Logger
	SetLogger(log.New(&buf, "", 0))
	t.Cleanup(func() { SetLogger(old) })
	return &buf
}

// TestDraftify_Defaults 测试默认选项
func TestDraftify_Defaults(t *testing.T) {
	logs := captureLogger(t)
	doc, err := Draftify("<p>x<span>y</span></p>")
	if err != nil {
		t.Fatalf("Draftify() error = %v", err)
	}
	if doc.Blocks[0].Text != "x" || doc.Blocks[0].Key != "" {
		t.Errorf("block = %+v", doc.Blocks[0])
	}
	// 默认模式下警告通过 Logger 输出
	if !strings.Contains(logs.String(), "Unsupported tag") {
		t.Errorf("log = %q, want unsupported tag warning", logs.String())
	}
}

// TestDraftify_WarningHandler 测试自定义警告处理函数
func TestDraftify_WarningHandler(t *testing.T) {
	logs := captureLogger(t)
	var seen []Warning
	_, err := Draftify("<p>x<span>y</span></p>", WithWarningHandler(func(w Warning) {
		seen = append(seen, w)
	}))
	if err != nil {
		t.Fatalf("Draftify() error = %v", err)
	}
	if len(seen) != 1 || seen[0].Tag != "span" {
		t.Errorf("handler saw %v", seen)
	}
	if logs.Len() != 0 {
		t.Errorf("log = %q, want nothing when a handler is set", logs.String())
	}
}

// TestDraftify_Strict 测试严格模式
func TestDraftify_Strict(t *testing.T) {
	_, err := Draftify("<b><p>x</p></b>", WithStrict(true))
	if err == nil {
		t.Fatal("Draftify() expected error in strict mode")
	}
	var convErr *Error
	if !errors.As(err, &convErr) || convErr.Code != CodeBlockInInline {
		t.Errorf("Draftify() error = %v, want block-in-inline", err)
	}
}

// TestDraftify_FrontEnds 测试三种前端
func TestDraftify_FrontEnds(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		frontEnd FrontEnd
		want     string
	}{
		{"scanner", "<p>A <b>b</b></p>", FrontEndScanner, "A b"},
		{"html", "<p>A &amp; <b>b</b>", FrontEndHTML, "A & b"},
		{"markdown", "A **b**", FrontEndMarkdown, "A b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Draftify(tt.content, WithFrontEnd(tt.frontEnd), WithStrict(true))
			if err != nil {
				t.Fatalf("Draftify() error = %v", err)
			}
			if len(doc.Blocks) != 1 || doc.Blocks[0].Text != tt.want {
				t.Fatalf("blocks = %+v", doc.Blocks)
			}
			if bold := findStyle(doc.Blocks[0], "BOLD"); bold == nil || rangeText(t, doc.Blocks[0], bold.Offset, bold.Length) != "b" {
				t.Errorf("BOLD range = %+v", bold)
			}
		})
	}
}

// TestDraftify_HTMLVoidElement 测试 HTML5 前端中的 void 元素
func TestDraftify_HTMLVoidElement(t *testing.T) {
	doc, err := Draftify("<p><img src='picture.png'>Invalid</img></p>", WithFrontEnd(FrontEndHTML), WithStrict(true))
	if err != nil {
		t.Fatalf("Draftify() error = %v", err)
	}
	b := doc.Blocks[0]
	if b.Text != "Invalid" || len(b.EntityRanges) != 1 || b.EntityRanges[0].Length != 0 {
		t.Errorf("block = %+v", b)
	}
}

// TestDraftify_KeysAndWrapper 测试 key 生成器和默认块标签
func TestDraftify_KeysAndWrapper(t *testing.T) {
	doc, err := Draftify("orphan <i>text</i>",
		WithKeyGenerator(RandomKey),
		WithDefaultBlockTag("blockquote"),
	)
	if err != nil {
		t.Fatalf("Draftify() error = %v", err)
	}
	b := doc.Blocks[0]
	if len(b.Key) != 5 || b.Type != "blockquote" {
		t.Errorf("block = %+v, want random key and blockquote type", b)
	}
	// 覆盖不影响共享的默认配置
	if DefaultConfig().KeyGenerator != nil || DefaultConfig().DefaultBlockTag != "" {
		t.Error("options must not modify DefaultConfig()")
	}
}

// TestDraftify_CustomConfig 测试自定义注册表
func TestDraftify_CustomConfig(t *testing.T) {
	config := NewConfig()
	config.Registry.Inline["mark"] = "HIGHLIGHT"
	doc, err := Draftify("<p><mark>x</mark></p>", WithConfig(config), WithStrict(true))
	if err != nil {
		t.Fatalf("Draftify() error = %v", err)
	}
	if findStyle(doc.Blocks[0], "HIGHLIGHT") == nil {
		t.Errorf("ranges = %+v", doc.Blocks[0].InlineStyleRanges)
	}
}

// TestDraftify_ImageDir 测试本地图片尺寸补全
func TestDraftify_ImageDir(t *testing.T) {
	captureLogger(t)
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "pic.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewGray(image.Rect(0, 0, 40, 30))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	doc, err := Draftify("<p><img src='pic.png' width='10' /></p>", WithImageDir(dir))
	if err != nil {
		t.Fatalf("Draftify() error = %v", err)
	}
	data := doc.EntityMap["0"].Data
	if data["width"] != "10px" || data["height"] != "30px" {
		t.Errorf("IMAGE data = %v", data)
	}
}

// TestDocument_JSON 测试 JSON 输出只有两个顶层字段
func TestDocument_JSON(t *testing.T) {
	doc := mustConvert(t, "<p>x<span>y</span></p>", false)
	raw, err := doc.JSON("")
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		t.Fatal(err)
	}
	if len(top) != 2 || top["blocks"] == nil || top["entityMap"] == nil {
		t.Errorf("JSON() top-level fields = %s", raw)
	}
	var blocks []map[string]any
	if err := json.Unmarshal(top["blocks"], &blocks); err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{"key", "text", "type", "depth", "inlineStyleRanges", "entityRanges", "data"} {
		if _, ok := blocks[0][field]; !ok {
			t.Errorf("block JSON missing %q: %s", field, top["blocks"])
		}
	}
}
