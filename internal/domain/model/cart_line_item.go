package model

import "time"

// カートの明細。リモート側は userId → itemId で1ユーザー1商品1件。
// ItemPrice は追加時点にPriceParserで得た値を保存する。
type CartLineItem struct {
	UserID    string    `gorm:"primaryKey;size:128" json:"-"`
	ItemID    string    `gorm:"primaryKey;size:128" json:"item_id"`
	ItemName  string    `gorm:"not null" json:"item_name"`
	ItemPrice float64   `gorm:"not null" json:"item_price"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	AddedAt   time.Time `gorm:"not null;default:now()" json:"timestamp"`
}

func (CartLineItem) TableName() string {
	return "cart_items"
}

// 明細単体の小計
func (i CartLineItem) LineTotal() float64 {
	return i.ItemPrice * float64(i.Quantity)
}
