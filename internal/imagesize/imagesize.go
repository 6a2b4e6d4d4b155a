// Package imagesize 读取本地图片的尺寸，用于补全 IMAGE 实体的 width/height
//
// 支持 png、jpeg、gif（标准库）以及 webp、bmp、tiff（golang.org/x/image）。
package imagesize

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/riverfjs/draftify-go/internal/types"
)

// Unset is the dimension value of an image whose size was not given.
const Unset = "initial"

// Size 图片尺寸
type Size struct {
	Width  int
	Height int
	Format string
}

// Probe 只读取图片头部，返回尺寸
func Probe(r io.Reader) (Size, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return Size{}, err
	}
	return Size{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}

// ProbeFile 读取 root 目录内文件的图片尺寸，name 不能逃出 root
func ProbeFile(root *os.Root, name string) (Size, error) {
	f, err := root.Open(name)
	if err != nil {
		return Size{}, err
	}
	defer f.Close()
	return Probe(f)
}

// Fill 为 doc 中尺寸为 "initial" 的 IMAGE 实体补全像素尺寸
//
// src 相对于 dir 解析，且必须位于 dir 之内（"../x.png"、绝对路径和
// 指向外部的符号链接都会被拒绝）；远程地址和 data URI 被跳过。
// 返回补全的实体数量，以及所有无法读取的图片错误。
func Fill(doc *types.Document, dir string) (int, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return 0, fmt.Errorf("image dir: %w", err)
	}
	defer root.Close()

	var errs []error
	filled := 0
	for key, entity := range doc.EntityMap {
		if entity.Type != "IMAGE" {
			continue
		}
		src, _ := entity.Data["src"].(string)
		if !isLocal(src) || !needsSize(entity.Data) {
			continue
		}
		size, err := ProbeFile(root, filepath.FromSlash(src))
		if err != nil {
			errs = append(errs, fmt.Errorf("entity %s (%s): %w", key, src, err))
			continue
		}
		if entity.Data["width"] == Unset {
			entity.Data["width"] = strconv.Itoa(size.Width) + "px"
		}
		if entity.Data["height"] == Unset {
			entity.Data["height"] = strconv.Itoa(size.Height) + "px"
		}
		filled++
	}
	return filled, errors.Join(errs...)
}

func needsSize(data map[string]any) bool {
	return data["width"] == Unset || data["height"] == Unset
}

func isLocal(src string) bool {
	if src == "" || strings.HasPrefix(src, "data:") || strings.HasPrefix(src, "//") {
		return false
	}
	return !strings.Contains(src, "://")
}
