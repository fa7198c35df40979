package engine

import (
	"errors"
	"fmt"
)

// 入力不正の理由
type ValidationReason string

const (
	QuantityOutOfRange ValidationReason = "quantity_out_of_range"
	MissingItemID      ValidationReason = "missing_item_id"
)

// ValidationError はストアへ行く前に弾いた入力不正。副作用なし。
type ValidationError struct {
	Reason ValidationReason
}

func (e *ValidationError) Error() string {
	return "validation: " + string(e.Reason)
}

// SyncError はリモート書き込みの失敗。どの操作・どの商品かを持つ。
type SyncError struct {
	Op     string
	ItemID string
	Err    error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync %s %s: %v", e.Op, e.ItemID, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

var (
	// ミラーの位置指定が現状と食い違った。
	// 呼び出し側の回復策は LoadCart での全再読込だけ。
	ErrMirrorStale = errors.New("mirror stale")

	// userID が無い。ストアには行かない。
	ErrUnauthenticated = errors.New("unauthenticated")
)
