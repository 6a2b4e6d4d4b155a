package draftify

// CountText 计算文档正文的总长度（UTF-16 code units）
//
// 与 Draft.js 在浏览器中看到的 block.text.length 之和一致，
// 不包含块之间的分隔。
//
// 参数：
//   - doc: 转换结果
//
// 返回：
//   - int: UTF-16 code units 数量
func CountText(doc *Document) int {
	if doc == nil {
		return 0
	}
	return doc.TextLength()
}
