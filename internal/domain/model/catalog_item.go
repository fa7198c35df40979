package model

// 固定カタログの商品。
// コアは ItemID / DisplayName / DisplayPrice しか読まない。
type CatalogItem struct {
	ItemID       string `json:"item_id"`
	DisplayName  string `json:"display_name"`
	DisplayPrice string `json:"display_price"` // "$2.99" のような表示文字列
	Details      string `json:"details"`
	ImageURL     string `json:"image_url,omitempty"`
}
