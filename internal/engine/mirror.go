package engine

import "app/internal/domain/model"

// ミラー本体。並び順は最後にロードした added_at 昇順のまま。
// ロックは Engine 側が持つ。
type mirror struct {
	lines []model.CartLineItem
}

func newMirror() *mirror {
	return &mirror{}
}

// 全置き換え
func (m *mirror) replaceAll(lines []model.CartLineItem) {
	m.lines = append(m.lines[:0:0], lines...)
}

// itemID一致の行に加算。未ロードや不在なら何もしない。
func (m *mirror) addQuantity(itemID string, delta int64) {
	for i := range m.lines {
		if m.lines[i].ItemID == itemID {
			m.lines[i].Quantity += delta
			return
		}
	}
}

// position の行がその itemID のものなら数量を差し替える。
func (m *mirror) setQuantityAt(position int, itemID string, quantity int64) bool {
	if position < 0 || position >= len(m.lines) {
		return false
	}
	if m.lines[position].ItemID != itemID {
		return false
	}
	m.lines[position].Quantity = quantity
	return true
}

// position の行がその itemID のものなら取り除く。他の行の並びは維持。
func (m *mirror) removeAt(position int, itemID string) bool {
	if position < 0 || position >= len(m.lines) {
		return false
	}
	if m.lines[position].ItemID != itemID {
		return false
	}
	m.lines = append(m.lines[:position], m.lines[position+1:]...)
	return true
}

// 表示用のコピー。空でもnilにしない（JSONで "items": [] にしたい）。
func (m *mirror) items() []model.CartLineItem {
	out := make([]model.CartLineItem, len(m.lines))
	copy(out, m.lines)
	return out
}

// 合計。丸めは表示側でだけ行う。
func (m *mirror) total() float64 {
	var total float64
	for _, l := range m.lines {
		total += l.ItemPrice * float64(l.Quantity)
	}
	return total
}
