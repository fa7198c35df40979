package engine

import (
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func mirrorWith(lines ...model.CartLineItem) *mirror {
	m := newMirror()
	m.replaceAll(lines)
	return m
}

func TestMirror_SetQuantityAt(t *testing.T) {
	m := mirrorWith(
		model.CartLineItem{ItemID: "a", Quantity: 1},
		model.CartLineItem{ItemID: "b", Quantity: 2},
	)

	assert.True(t, m.setQuantityAt(1, "b", 9))
	assert.Equal(t, int64(9), m.lines[1].Quantity)

	// 位置とitemIDの食い違いは書き換えない
	assert.False(t, m.setQuantityAt(0, "b", 5))
	assert.False(t, m.setQuantityAt(-1, "a", 5))
	assert.False(t, m.setQuantityAt(2, "a", 5))
	assert.Equal(t, int64(1), m.lines[0].Quantity)
}

func TestMirror_RemoveAt_PreservesOrder(t *testing.T) {
	m := mirrorWith(
		model.CartLineItem{ItemID: "a"},
		model.CartLineItem{ItemID: "b"},
		model.CartLineItem{ItemID: "c"},
	)

	assert.True(t, m.removeAt(1, "b"))
	assert.Len(t, m.lines, 2)
	assert.Equal(t, "a", m.lines[0].ItemID)
	assert.Equal(t, "c", m.lines[1].ItemID)

	assert.False(t, m.removeAt(1, "a"))
	assert.Len(t, m.lines, 2)
}

func TestMirror_AddQuantity_NoopWhenAbsent(t *testing.T) {
	m := mirrorWith(model.CartLineItem{ItemID: "a", Quantity: 1})

	m.addQuantity("a", 2)
	assert.Equal(t, int64(3), m.lines[0].Quantity)

	// 未ロードや不在は何も起きない
	m.addQuantity("zzz", 2)
	assert.Len(t, m.lines, 1)
}

func TestMirror_ItemsReturnsCopy(t *testing.T) {
	m := mirrorWith(model.CartLineItem{ItemID: "a", Quantity: 1})

	items := m.items()
	items[0].Quantity = 100

	assert.Equal(t, int64(1), m.lines[0].Quantity)
}

// 空カートでもnilを返さない。レスポンスが "items": null にならないように。
func TestMirror_ItemsEmptyNotNil(t *testing.T) {
	assert.NotNil(t, newMirror().items())
	assert.Empty(t, newMirror().items())

	m := mirrorWith(model.CartLineItem{ItemID: "a"})
	m.replaceAll(nil)
	assert.NotNil(t, m.items())
}

func TestMirror_ReplaceAllCopiesInput(t *testing.T) {
	src := []model.CartLineItem{{ItemID: "a", Quantity: 1}}
	m := newMirror()
	m.replaceAll(src)

	src[0].Quantity = 100
	assert.Equal(t, int64(1), m.lines[0].Quantity)
}

func TestMirror_Total(t *testing.T) {
	m := mirrorWith(
		model.CartLineItem{ItemID: "a", ItemPrice: 2.50, Quantity: 3},
		model.CartLineItem{ItemID: "b", ItemPrice: 9.99, Quantity: 1},
	)

	assert.InDelta(t, 17.49, m.total(), 1e-9)
	assert.InDelta(t, 0, newMirror().total(), 1e-9)
}
