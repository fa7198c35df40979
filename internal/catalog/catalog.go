package catalog

import "app/internal/domain/model"

// Source は固定カタログの読み出し口。コアはここを読むだけ。
type Source interface {
	List() []model.CatalogItem
	Find(itemID string) (model.CatalogItem, bool)
}

// StaticSource はアプリ組み込みの固定カタログ。
type StaticSource struct {
	items []model.CatalogItem
	byID  map[string]model.CatalogItem
}

func NewStaticSource(items []model.CatalogItem) *StaticSource {
	byID := make(map[string]model.CatalogItem, len(items))
	for _, it := range items {
		byID[it.ItemID] = it
	}
	return &StaticSource{items: items, byID: byID}
}

func (s *StaticSource) List() []model.CatalogItem {
	return append([]model.CatalogItem(nil), s.items...)
}

func (s *StaticSource) Find(itemID string) (model.CatalogItem, bool) {
	it, ok := s.byID[itemID]
	return it, ok
}

// DefaultItems は出荷時のカタログ
func DefaultItems() []model.CatalogItem {
	return []model.CatalogItem{
		{ItemID: "fruit_apple", DisplayName: "Apple", DisplayPrice: "$2.50", Details: "Crisp red apples, sold per kg."},
		{ItemID: "fruit_banana", DisplayName: "Banana", DisplayPrice: "$1.20", Details: "Sweet ripe bananas, sold per bunch."},
		{ItemID: "fruit_orange", DisplayName: "Orange", DisplayPrice: "$3.00", Details: "Juicy navel oranges, sold per kg."},
		{ItemID: "fruit_strawberry", DisplayName: "Strawberry", DisplayPrice: "$4.99", Details: "Fresh strawberries, 250g punnet."},
		{ItemID: "fruit_grapes", DisplayName: "Grapes", DisplayPrice: "$3.75", Details: "Seedless green grapes, sold per kg."},
		{ItemID: "fruit_watermelon", DisplayName: "Watermelon", DisplayPrice: "$6.50", Details: "Whole watermelon."},
		{ItemID: "fruit_mango", DisplayName: "Mango", DisplayPrice: "$2.80", Details: "Ripe mangoes, sold each."},
		{ItemID: "fruit_pineapple", DisplayName: "Pineapple", DisplayPrice: "$4.20", Details: "Whole pineapple."},
	}
}
