package converter

import (
	"github.com/riverfjs/draftify-go/internal/dom"
	"github.com/riverfjs/draftify-go/internal/registry"
	"github.com/riverfjs/draftify-go/internal/types"
	"github.com/riverfjs/draftify-go/internal/util"
)

// Builder 遍历节点树并生成 blocks + entityMap
//
// Builder 只在一次 Convert 期间持有会话状态，不能被并发调用；
// 并发转换需要各自创建 Builder。配置表只读，可以共享。
type Builder struct {
	config  *types.Config
	reg     *registry.Registry
	strict  bool
	session *session
}

// NewBuilder 创建新的 Builder
func NewBuilder(config *types.Config, strict bool) *Builder {
	if config == nil {
		config = types.DefaultConfig()
	}
	reg := config.Registry
	if reg == nil {
		reg = registry.Default()
	}
	return &Builder{
		config: config,
		reg:    reg,
		strict: strict,
	}
}

// Convert 将根节点转换为文档
//
// root 通常是 body 这样的容器，其子节点就是顶层元素；如果 root 本身是块
// 或行内标签，则把它当作唯一的顶层元素。root 为 nil 时返回空文档。
func (b *Builder) Convert(root *dom.Node) (*types.Document, error) {
	b.session = newSession()
	defer func() { b.session = nil }()

	if root == nil {
		return b.session.result(b.config), nil
	}

	container, items := b.rootItems(root)
	for _, item := range b.wrapOrphans(items) {
		if err := b.buildBlock(item, container); err != nil {
			return nil, err
		}
	}
	return b.session.result(b.config), nil
}

func (b *Builder) rootItems(root *dom.Node) (*dom.Node, []*dom.Node) {
	if root.IsText() || b.reg.IsBlock(root.Name) || b.reg.IsInline(root.Name) {
		return dom.NewElement(dom.RootName, nil, root), []*dom.Node{root}
	}
	return root, root.Children
}

// wrapOrphans 为没有块祖先的行内内容合成默认块
//
// 连续的文本、行内标签（以及不支持的标签，稍后报告）合并到同一个块中，
// 块标签原样保留。只包含格式化空白的分组被丢弃。
func (b *Builder) wrapOrphans(items []*dom.Node) []*dom.Node {
	out := make([]*dom.Node, 0, len(items))
	var group *dom.Node
	flush := func() {
		if group != nil && hasContent(group) {
			out = append(out, group)
		}
		group = nil
	}

	for _, n := range items {
		if !n.IsText() && b.reg.IsBlock(n.Name) {
			flush()
			out = append(out, n)
			continue
		}
		if group == nil {
			group = dom.NewElement(b.config.WrapperTag(), nil)
		}
		group.Append(n)
	}
	flush()
	return out
}

func hasContent(n *dom.Node) bool {
	for _, c := range n.Children {
		if !c.IsText() || util.TrimFormatting(c.Text) != "" {
			return true
		}
	}
	return false
}

// buildBlock 创建块并处理其子节点
func (b *Builder) buildBlock(node, parent *dom.Node) error {
	bs := newBlockState()
	// registered before the children so nested blocks follow it
	b.session.appendBlock(bs)

	bs.block.Type = b.reg.BlockType(node.Name, parent.Name)

	if err := b.processChildren(bs, node); err != nil {
		return err
	}

	bs.block.Text = bs.buf.String()
	return nil
}

// processChildren 将 node 的子节点写入当前块
func (b *Builder) processChildren(bs *blockState, node *dom.Node) error {
	for _, child := range node.Children {
		if child.IsText() {
			bs.buf.Write(util.TrimFormatting(child.Text))
			continue
		}

		name := child.Name
		if b.reg.IsBlock(name) {
			if b.reg.IsInline(node.Name) {
				if err := b.dispatch(types.CodeBlockInInline, "Block tag inside an inline tag", child, node); err != nil {
					return err
				}
				continue
			}
			if err := b.buildBlock(child, node); err != nil {
				return err
			}
			continue
		}

		if text, ok := b.reg.Substitution(name); ok {
			bs.buf.Write(text)
			continue
		}

		if name != "" && !b.reg.IsInline(name) {
			if err := b.dispatch(types.CodeUnsupportedTag, "Unsupported tag", child); err != nil {
				return err
			}
			continue
		}

		if err := b.processInline(bs, child); err != nil {
			return err
		}
	}
	return nil
}

// processInline 处理行内标签：先写入子节点，再记录样式或实体区间
func (b *Builder) processInline(bs *blockState, node *dom.Node) error {
	start := bs.buf.UTF16Offset()
	if err := b.processChildren(bs, node); err != nil {
		return err
	}
	length := bs.buf.UTF16Offset() - start

	if et, ok := b.reg.Entity(node.Name); ok {
		key := b.session.appendEntity(types.Entity{
			Type:       et.Type,
			Mutability: types.Mutable,
			Data:       et.Project(node.Attrs),
		})
		// length 0 is valid, e.g. <img />
		bs.block.EntityRanges = append(bs.block.EntityRanges, types.EntityRange{
			Offset: start,
			Length: length,
			Key:    key,
		})
		return nil
	}

	if style, ok := b.reg.Style(node.Name); ok {
		if length == 0 {
			return b.dispatch(types.CodeEmptyInlineStyle, "Empty inline style", node)
		}
		bs.block.InlineStyleRanges = append(bs.block.InlineStyleRanges, types.StyleRange{
			Offset: start,
			Length: length,
			Style:  style,
		})
	}
	return nil
}

// dispatch 处理结构性错误
//
// 严格模式下返回致命错误；默认模式下记录警告并跳过该节点。
// 非结构性错误码总是致命的。
func (b *Builder) dispatch(code types.ErrorCode, msg string, nodes ...*dom.Node) error {
	tag := nodes[0].Name
	if b.strict || !code.Structural() {
		rendered := make([]string, len(nodes))
		for i, n := range nodes {
			rendered[i] = n.String()
		}
		return &types.Error{Code: code, Message: msg, Tag: tag, Nodes: rendered}
	}

	w := types.Warning{Code: code, Tag: tag, Message: msg}
	b.session.warnings = append(b.session.warnings, w)
	if b.config.OnWarning != nil {
		b.config.OnWarning(w)
	}
	return nil
}
