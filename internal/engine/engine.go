package engine

import (
	"context"
	"errors"
	"sync"

	"app/internal/domain/model"
	"app/internal/price"
	repo "app/internal/repository"
)

// 数量の上限。0は確認待ちの経過状態としてだけ現れる。
const MaxQuantity = 999

// Engine は1セッション分のカート同期。
// リモート書き込みが確定してからミラーへ反映する。失敗時はミラーに触らない。
type Engine struct {
	userID string
	store  repo.RemoteCartStore

	// ミラーの書き込みは必ずこのロックの中を通る
	mu     sync.Mutex
	mirror *mirror
}

// DI
func New(userID string, store repo.RemoteCartStore) *Engine {
	return &Engine{
		userID: userID,
		store:  store,
		mirror: newMirror(),
	}
}

// AddOrIncrement の結果
type AddOutcome struct {
	Created bool           // falseなら既存明細への加算
	Warning *price.Warning // 価格が読めずに0で作った場合だけ非nil
}

// ChangeQuantity の結果
type ChangeOutcome int

const (
	ChangeApplied ChangeOutcome = iota
	// 数量0が要求された。エンジンは何もせず、削除か0維持かを呼び出し側に委ねる。
	ChangeQuantityZeroRequested
)

// AddOrIncrement はカタログ商品の追加。既にあれば加算、無ければ新規作成。
// 数量が不正でも追加は拒否せず1に丸める。
func (e *Engine) AddOrIncrement(ctx context.Context, item model.CatalogItem, desiredQuantity int64) (AddOutcome, error) {
	if e.userID == "" {
		return AddOutcome{}, ErrUnauthenticated
	}
	if item.ItemID == "" {
		return AddOutcome{}, &ValidationError{Reason: MissingItemID}
	}

	qty := desiredQuantity
	if qty < 1 {
		qty = 1
	}
	if qty > MaxQuantity {
		qty = MaxQuantity
	}

	_, err := e.store.Get(ctx, e.userID, item.ItemID)
	switch {
	case err == nil:
		// 既存明細。サーバー側でアトミックに加算する。
		if err := e.store.IncrementQuantity(ctx, e.userID, item.ItemID, qty); err != nil {
			return AddOutcome{}, &SyncError{Op: "add", ItemID: item.ItemID, Err: err}
		}

		e.mu.Lock()
		e.mirror.addQuantity(item.ItemID, qty)
		e.mu.Unlock()

		return AddOutcome{}, nil

	case errors.Is(err, repo.ErrNotFound):
		value, warn := price.Parse(item.DisplayPrice)

		line := model.CartLineItem{
			ItemID:    item.ItemID,
			ItemName:  item.DisplayName,
			ItemPrice: value,
			Quantity:  qty,
			// AddedAt はストア側が付与する
		}
		if err := e.store.CreateOrReplace(ctx, e.userID, line); err != nil {
			return AddOutcome{}, &SyncError{Op: "add", ItemID: item.ItemID, Err: err}
		}

		// 新規行の added_at はこちらでは分からないので、ミラーは次のLoadCartに任せる
		return AddOutcome{Created: true, Warning: warn}, nil

	default:
		return AddOutcome{}, &SyncError{Op: "add", ItemID: item.ItemID, Err: err}
	}
}

// ChangeQuantity は数量の絶対値変更。
// 0は自動では適用しない。削除か0維持かの確認を呼び出し側へ返すだけ。
func (e *Engine) ChangeQuantity(ctx context.Context, itemID string, newQuantity int64, position int) (ChangeOutcome, error) {
	if e.userID == "" {
		return 0, ErrUnauthenticated
	}
	if itemID == "" {
		return 0, &ValidationError{Reason: MissingItemID}
	}
	if newQuantity < 0 || newQuantity > MaxQuantity {
		return 0, &ValidationError{Reason: QuantityOutOfRange}
	}
	if newQuantity == 0 {
		return ChangeQuantityZeroRequested, nil
	}

	if err := e.store.UpdateQuantity(ctx, e.userID, itemID, newQuantity); err != nil {
		return 0, &SyncError{Op: "updateQuantity", ItemID: itemID, Err: err}
	}

	return ChangeApplied, e.applyQuantity(itemID, newQuantity, position)
}

// SetQuantityZero は「0のまま残す」の明示的な決着。
// ChangeQuantity の確認シグナルを受けた呼び出し側だけが使う。
func (e *Engine) SetQuantityZero(ctx context.Context, itemID string, position int) error {
	if e.userID == "" {
		return ErrUnauthenticated
	}
	if itemID == "" {
		return &ValidationError{Reason: MissingItemID}
	}

	if err := e.store.UpdateQuantity(ctx, e.userID, itemID, 0); err != nil {
		return &SyncError{Op: "updateQuantity", ItemID: itemID, Err: err}
	}

	return e.applyQuantity(itemID, 0, position)
}

// RemoveItem は明細の削除。
// リモート削除が確定した後、位置が現状と食い違っていたら勝手に別の行を
// 消したりせず ErrMirrorStale を返す。
func (e *Engine) RemoveItem(ctx context.Context, itemID string, position int) error {
	if e.userID == "" {
		return ErrUnauthenticated
	}
	if itemID == "" {
		return &ValidationError{Reason: MissingItemID}
	}

	if err := e.store.Delete(ctx, e.userID, itemID); err != nil {
		return &SyncError{Op: "delete", ItemID: itemID, Err: err}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.mirror.removeAt(position, itemID) {
		return ErrMirrorStale
	}
	return nil
}

// LoadCart はリモートの一覧でミラーを丸ごと置き換える。
// 失敗時は古い明細を残さず空にする。全再同期の逃げ道でもある。
func (e *Engine) LoadCart(ctx context.Context) ([]model.CartLineItem, error) {
	if e.userID == "" {
		return nil, ErrUnauthenticated
	}

	items, err := e.store.ListOrderedByAddedAt(ctx, e.userID)

	e.mu.Lock()
	defer e.mu.Unlock()

	if err != nil {
		e.mirror.replaceAll(nil)
		return nil, &SyncError{Op: "loadCart", Err: err}
	}

	e.mirror.replaceAll(items)
	return e.mirror.items(), nil
}

// Items は現在のミラーのコピー
func (e *Engine) Items() []model.CartLineItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mirror.items()
}

// ComputeTotal は Σ(単価×数量)。丸めは表示側でだけ行う。
func (e *Engine) ComputeTotal() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mirror.total()
}

// リモート確定後のミラー反映の唯一の書き込み口（数量系）。
// 位置の食い違いは ErrMirrorStale。
func (e *Engine) applyQuantity(itemID string, quantity int64, position int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.mirror.setQuantityAt(position, itemID, quantity) {
		return ErrMirrorStale
	}
	return nil
}
