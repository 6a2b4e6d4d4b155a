package converter

import (
	"strconv"

	"github.com/riverfjs/draftify-go/internal/buffer"
	"github.com/riverfjs/draftify-go/internal/types"
)

// blockState 正在构建的块：文本只追加，偏移量由 buffer 跟踪
type blockState struct {
	block *types.Block
	buf   *buffer.TextBuffer
}

func newBlockState() *blockState {
	return &blockState{
		block: types.NewBlock(),
		buf:   buffer.New(),
	}
}

// session 单次转换的状态，每次 Convert 重新创建，结束时被 result 消费
type session struct {
	entityCursor int
	entities     map[string]types.Entity
	blocks       []*blockState
	warnings     []types.Warning
}

func newSession() *session {
	return &session{
		entities: make(map[string]types.Entity),
		blocks:   make([]*blockState, 0),
	}
}

// appendBlock registers a block in document order.
func (s *session) appendBlock(bs *blockState) {
	s.blocks = append(s.blocks, bs)
}

// appendEntity stores the entity under the next cursor value and returns its key.
func (s *session) appendEntity(entity types.Entity) int {
	key := s.entityCursor
	s.entityCursor++
	s.entities[strconv.Itoa(key)] = entity
	return key
}

// result 生成最终文档：移除空块，排序区间，为保留的块生成 key
func (s *session) result(config *types.Config) *types.Document {
	doc := types.NewDocument()
	doc.EntityMap = s.entities
	for _, bs := range s.blocks {
		if bs.block.IsEmpty() {
			continue
		}
		bs.block.SortRanges()
		bs.block.Key = config.Key(bs.block)
		doc.Blocks = append(doc.Blocks, bs.block)
	}
	doc.Warnings = s.warnings
	return doc
}
