package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type CartStoreGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartStoreGormRepository(db *gorm.DB) *CartStoreGormRepository {
	return &CartStoreGormRepository{db: db}
}

// 明細を1件取得
func (r *CartStoreGormRepository) Get(ctx context.Context, userID string, itemID string) (model.CartLineItem, error) {
	var item model.CartLineItem

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		First(&item).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CartLineItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CartLineItem{}, &repo.StoreError{Op: "get", Err: err}
	}
	return item, nil
}

// 明細を added_at 昇順で一覧取得
func (r *CartStoreGormRepository) ListOrderedByAddedAt(ctx context.Context, userID string) ([]model.CartLineItem, error) {
	items := []model.CartLineItem{}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at asc").
		Find(&items).Error; err != nil {
		return nil, &repo.StoreError{Op: "list", Err: err}
	}

	return items, nil
}

// 明細を新規作成。added_at はDBの now() が付与する。
// (user_id, item_id) は複合PKなので、同時作成の負け側は一意制約違反になる。
// その場合は作り直さず、数量のアトミック加算へ合流する。
func (r *CartStoreGormRepository) CreateOrReplace(ctx context.Context, userID string, item model.CartLineItem) error {
	row := item
	row.UserID = userID

	err := r.db.WithContext(ctx).Create(&row).Error
	if err == nil {
		return nil
	}

	if isUniqueViolation(err) {
		return r.IncrementQuantity(ctx, userID, item.ItemID, item.Quantity)
	}

	return &repo.StoreError{Op: "create", Err: err}
}

// サーバー側のアトミック加算。読み出し→書き戻しはしない。
func (r *CartStoreGormRepository) IncrementQuantity(ctx context.Context, userID string, itemID string, delta int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.CartLineItem{}).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Update("quantity", gorm.Expr("quantity + ?", delta))

	if res.Error != nil {
		return &repo.StoreError{Op: "increment", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 数量の絶対値セット
func (r *CartStoreGormRepository) UpdateQuantity(ctx context.Context, userID string, itemID string, newQuantity int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.CartLineItem{}).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Update("quantity", newQuantity)

	if res.Error != nil {
		return &repo.StoreError{Op: "updateQuantity", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 明細を削除。既に無い場合も成功扱い。
func (r *CartStoreGormRepository) Delete(ctx context.Context, userID string, itemID string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&model.CartLineItem{})

	if res.Error != nil {
		return &repo.StoreError{Op: "delete", Err: res.Error}
	}
	return nil
}

// Postgresの一意制約違反（23505）か
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
