package catalog_test

import (
	"testing"

	"app/internal/catalog"
	"app/internal/price"

	"github.com/stretchr/testify/assert"
)

func TestStaticSource_Find(t *testing.T) {
	src := catalog.NewStaticSource(catalog.DefaultItems())

	item, ok := src.Find("fruit_apple")
	assert.True(t, ok)
	assert.Equal(t, "Apple", item.DisplayName)

	_, ok = src.Find("nope")
	assert.False(t, ok)
}

func TestDefaultItems_PricesAllParsable(t *testing.T) {
	for _, it := range catalog.DefaultItems() {
		v, warn := price.Parse(it.DisplayPrice)
		assert.Nilf(t, warn, "item %s", it.ItemID)
		assert.Greaterf(t, v, 0.0, "item %s", it.ItemID)
	}
}

func TestStaticSource_ListReturnsCopy(t *testing.T) {
	src := catalog.NewStaticSource(catalog.DefaultItems())

	list := src.List()
	list[0].DisplayName = "mutated"

	again := src.List()
	assert.NotEqual(t, "mutated", again[0].DisplayName)
}
