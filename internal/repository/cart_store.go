package repository

import (
	"context"
	"errors"
	"fmt"

	"app/internal/domain/model"
)

// レコードが無いを統一
var ErrNotFound = errors.New("not found")

// リモート側の失敗（通信・認可など）。どの操作で落ちたかを持つ。
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// RemoteCartStore はユーザーごとのカート明細コレクション。
// 全操作は呼び出し元自身の userID に閉じる。
type RemoteCartStore interface {
	// 1件取得。無ければ ErrNotFound
	Get(ctx context.Context, userID string, itemID string) (model.CartLineItem, error)
	// added_at 昇順。0件なら空スライス
	ListOrderedByAddedAt(ctx context.Context, userID string) ([]model.CartLineItem, error)
	// 全項目の書き込み。added_at はサーバー側が付与し、置き換えでは維持する。
	// 同一キーを同時に作成した場合、負けた側は数量加算に合流する。
	CreateOrReplace(ctx context.Context, userID string, item model.CartLineItem) error
	// サーバー側のアトミック加算。クライアントでの読み出し→書き戻しはしない。
	IncrementQuantity(ctx context.Context, userID string, itemID string, delta int64) error
	// 数量の絶対値セット。無ければ ErrNotFound
	UpdateQuantity(ctx context.Context, userID string, itemID string, newQuantity int64) error
	// 削除。既に無い場合も成功扱い
	Delete(ctx context.Context, userID string, itemID string) error
}
