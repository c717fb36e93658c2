package catalog

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

func TestAddBook(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	id, err := svc.AddBook(ctx, "JPA", "kim", "979-11-0000", 10000, 10)
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	book, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, storage.ItemKindBook, book.Kind)
	assert.Equal(t, "JPA", book.Name)
	assert.Equal(t, "kim", book.Author)
	assert.Equal(t, int64(10000), book.Price)
	assert.Equal(t, 10, book.StockQuantity)
}

func TestAddBook_Validation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.AddBook(ctx, "", "kim", "", 10000, 10)
	assert.ErrorIs(t, err, types.ErrEmptyName)

	_, err = svc.AddBook(ctx, "JPA", "kim", "", 0, 10)
	assert.ErrorIs(t, err, types.ErrInvalidPrice)

	_, err = svc.AddBook(ctx, "JPA", "kim", "", 10000, -1)
	assert.ErrorIs(t, err, types.ErrInvalidStock)
}

func TestUpdateBook(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	id, err := svc.AddBook(ctx, "JPA", "kim", "", 10000, 10)
	require.NoError(t, err)

	err = svc.UpdateBook(ctx, id, "JPA 2nd", 12000, 20)
	require.NoError(t, err)

	book, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "JPA 2nd", book.Name)
	assert.Equal(t, int64(12000), book.Price)
	assert.Equal(t, 20, book.StockQuantity)
}

func TestUpdateBook_NotFound(t *testing.T) {
	svc := setupService(t)
	err := svc.UpdateBook(context.Background(), 9999, "ghost", 100, 1)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestList(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.AddBook(ctx, "a", "", "", 100, 1)
	require.NoError(t, err)
	_, err = svc.AddBook(ctx, "b", "", "", 200, 2)
	require.NoError(t, err)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
