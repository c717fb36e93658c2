package member

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoward/bookshop/internal/storage"
	"github.com/khoward/bookshop/pkg/types"
)

func setupService(t *testing.T) *Service {
	store, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return NewService(store, nil)
}

func TestRegister(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	addr := types.Address{City: "Seoul", Street: "Riverside", Zipcode: "123-123"}

	id, err := svc.Register(ctx, "member1", addr)
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	m, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "member1", m.Name)
	assert.Equal(t, addr, m.Address)
}

func TestRegister_DuplicateName(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	addr := types.Address{City: "Seoul", Street: "Riverside", Zipcode: "123-123"}

	_, err := svc.Register(ctx, "member1", addr)
	require.NoError(t, err)

	_, err = svc.Register(ctx, "member1", addr)
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)

	members, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, members, 1)
}

func TestRegister_EmptyName(t *testing.T) {
	svc := setupService(t)
	_, err := svc.Register(context.Background(), "", types.Address{})
	assert.ErrorIs(t, err, types.ErrEmptyName)
}

func TestGet_NotFound(t *testing.T) {
	svc := setupService(t)
	_, err := svc.Get(context.Background(), 9999)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
