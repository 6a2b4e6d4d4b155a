package types

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/riverfjs/draftify-go/internal/util"
)

// Slice returns the block text covered by a UTF-16 range.
func (b *Block) Slice(offset, length int) (string, bool) {
	return util.UTF16Slice(b.Text, offset, length)
}

// SortRanges orders style ranges by offset and entity ranges by key.
func (b *Block) SortRanges() {
	sort.SliceStable(b.InlineStyleRanges, func(i, j int) bool {
		return b.InlineStyleRanges[i].Offset < b.InlineStyleRanges[j].Offset
	})
	sort.SliceStable(b.EntityRanges, func(i, j int) bool {
		return b.EntityRanges[i].Key < b.EntityRanges[j].Key
	})
}

// Validate checks the structural properties of a finalized document:
// entity keys are 0..n-1 and all referenced, ranges lie inside their block
// text and are sorted, and no block is empty. Style ranges must be
// non-empty; entity ranges may have length 0.
func (d *Document) Validate() error {
	for k := range d.EntityMap {
		n, err := strconv.Atoi(k)
		if err != nil || n < 0 || n >= len(d.EntityMap) {
			return fmt.Errorf("entity key %q outside 0..%d", k, len(d.EntityMap)-1)
		}
	}

	referenced := make(map[int]bool, len(d.EntityMap))
	for i, b := range d.Blocks {
		if b.IsEmpty() {
			return fmt.Errorf("block %d: empty block not elided", i)
		}
		size := util.UTF16Len(b.Text)
		for j, r := range b.InlineStyleRanges {
			if r.Offset < 0 || r.Length <= 0 || r.Offset+r.Length > size {
				return fmt.Errorf("block %d: style range %d (%d,%d) outside text of length %d", i, j, r.Offset, r.Length, size)
			}
			if j > 0 && b.InlineStyleRanges[j-1].Offset > r.Offset {
				return fmt.Errorf("block %d: style ranges not sorted by offset", i)
			}
		}
		for j, r := range b.EntityRanges {
			if r.Offset < 0 || r.Length < 0 || r.Offset+r.Length > size {
				return fmt.Errorf("block %d: entity range %d (%d,%d) outside text of length %d", i, j, r.Offset, r.Length, size)
			}
			if j > 0 && b.EntityRanges[j-1].Key > r.Key {
				return fmt.Errorf("block %d: entity ranges not sorted by key", i)
			}
			if _, ok := d.EntityMap[strconv.Itoa(r.Key)]; !ok {
				return fmt.Errorf("block %d: entity range references unknown key %d", i, r.Key)
			}
			referenced[r.Key] = true
		}
	}
	if len(referenced) != len(d.EntityMap) {
		return fmt.Errorf("%d of %d entities are not referenced by any block", len(d.EntityMap)-len(referenced), len(d.EntityMap))
	}
	return nil
}

// JSON encodes the document; indent "" produces compact output.
func (d *Document) JSON(indent string) ([]byte, error) {
	if indent == "" {
		return json.Marshal(d)
	}
	return json.MarshalIndent(d, "", indent)
}

// TextLength returns the total UTF-16 length of all block texts.
func (d *Document) TextLength() int {
	total := 0
	for _, b := range d.Blocks {
		total += util.UTF16Len(b.Text)
	}
	return total
}
