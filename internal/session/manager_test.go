package session_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	"app/internal/engine"
	"app/internal/session"

	"github.com/stretchr/testify/assert"
)

type staticStore struct{}

func (staticStore) Get(ctx context.Context, userID string, itemID string) (model.CartLineItem, error) {
	return model.CartLineItem{}, nil
}
func (staticStore) ListOrderedByAddedAt(ctx context.Context, userID string) ([]model.CartLineItem, error) {
	return nil, nil
}
func (staticStore) CreateOrReplace(ctx context.Context, userID string, item model.CartLineItem) error {
	return nil
}
func (staticStore) IncrementQuantity(ctx context.Context, userID string, itemID string, delta int64) error {
	return nil
}
func (staticStore) UpdateQuantity(ctx context.Context, userID string, itemID string, newQuantity int64) error {
	return nil
}
func (staticStore) Delete(ctx context.Context, userID string, itemID string) error {
	return nil
}

func TestManager_SameUserSameEngine(t *testing.T) {
	m := session.NewManager(staticStore{})

	e1, err := m.Engine("user-1")
	assert.NoError(t, err)
	e2, err := m.Engine("user-1")
	assert.NoError(t, err)
	assert.Same(t, e1, e2)

	other, err := m.Engine("user-2")
	assert.NoError(t, err)
	assert.NotSame(t, e1, other)
}

func TestManager_EmptyUserID(t *testing.T) {
	m := session.NewManager(staticStore{})

	_, err := m.Engine("")
	assert.ErrorIs(t, err, engine.ErrUnauthenticated)
}

func TestManager_DropCreatesFreshEngine(t *testing.T) {
	m := session.NewManager(staticStore{})

	e1, _ := m.Engine("user-1")
	m.Drop("user-1")
	e2, _ := m.Engine("user-1")

	assert.NotSame(t, e1, e2)
}
