package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// =====================
// helper
// =====================

// sqlmockを下に敷いたgorm.DB。トランザクションの期待値を書かなくて済むよう
// デフォルトトランザクションは切る。
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New failed: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("gorm.Open failed: %v", err)
	}
	return db, mock
}

func uniqueViolationErr() *pgconn.PgError {
	return &pgconn.PgError{Code: "23505", ConstraintName: "cart_items_pkey"}
}

// =====================
// isUniqueViolation
// =====================

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(uniqueViolationErr()))

	// ドライバのエラーはラップされて返ってくることがある
	assert.True(t, isUniqueViolation(fmt.Errorf("create: %w", uniqueViolationErr())))

	// 23505以外の制約違反は対象外
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
	assert.False(t, isUniqueViolation(nil))
}

// =====================
// CreateOrReplace
// =====================

func TestCreateOrReplace_Success(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewCartStoreGormRepository(db)

	// added_at はDB側のdefaultなのでINSERTはRETURNINGで返ってくる
	mock.ExpectQuery(`INSERT INTO "cart_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"added_at"}).AddRow(time.Now()))

	err := r.CreateOrReplace(context.Background(), "user-1", model.CartLineItem{
		ItemID:    "fruit_apple",
		ItemName:  "Apple",
		ItemPrice: 2.5,
		Quantity:  1,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 同時作成の負け側：一意制約違反ならアトミック加算に合流して両方の追加が残る
func TestCreateOrReplace_UniqueViolation_FallsBackToIncrement(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewCartStoreGormRepository(db)

	mock.ExpectQuery(`INSERT INTO "cart_items"`).
		WillReturnError(uniqueViolationErr())
	mock.ExpectExec(`UPDATE "cart_items" SET "quantity"=quantity \+ \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := r.CreateOrReplace(context.Background(), "user-1", model.CartLineItem{
		ItemID:   "fruit_apple",
		Quantity: 3,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 一意制約違反以外の失敗は加算に流さずStoreErrorで返す
func TestCreateOrReplace_OtherError_NoFallback(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewCartStoreGormRepository(db)

	mock.ExpectQuery(`INSERT INTO "cart_items"`).
		WillReturnError(errors.New("connection refused"))

	err := r.CreateOrReplace(context.Background(), "user-1", model.CartLineItem{
		ItemID:   "fruit_apple",
		Quantity: 1,
	})

	var se *repo.StoreError
	assert.ErrorAs(t, err, &se)
	assert.Equal(t, "create", se.Op)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// =====================
// IncrementQuantity
// =====================

func TestIncrementQuantity_MissingRow_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewCartStoreGormRepository(db)

	mock.ExpectExec(`UPDATE "cart_items"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := r.IncrementQuantity(context.Background(), "user-1", "fruit_apple", 2)

	assert.ErrorIs(t, err, repo.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
