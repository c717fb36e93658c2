package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoward/bookshop/pkg/types"
)

func setupTestDB(t *testing.T) *SQLiteStorage {
	// Use in-memory database for testing
	storage, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	require.NotNil(t, storage)
	return storage
}

func testAddress() types.Address {
	return types.Address{City: "Seoul", Street: "Riverside", Zipcode: "123-123"}
}

func TestNewSQLiteStorage(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	assert.NotNil(t, storage)
	assert.NotNil(t, storage.db)
}

func TestClose(t *testing.T) {
	storage := setupTestDB(t)
	err := storage.Close()
	assert.NoError(t, err)
}

func TestCreateMember(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	member := &Member{Name: "member1", Address: testAddress()}

	err := storage.CreateMember(ctx, member)
	require.NoError(t, err)
	assert.Greater(t, member.ID, int64(0))
	assert.False(t, member.CreatedAt.IsZero())
}

func TestGetMember(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	member := &Member{Name: "member1", Address: testAddress()}
	err := storage.CreateMember(ctx, member)
	require.NoError(t, err)

	retrieved, err := storage.GetMember(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, member.ID, retrieved.ID)
	assert.Equal(t, "member1", retrieved.Name)
	assert.Equal(t, testAddress(), retrieved.Address)
}

func TestGetMember_NotFound(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	_, err := storage.GetMember(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCountMembersByName(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	require.NoError(t, storage.CreateMember(ctx, &Member{Name: "dup", Address: testAddress()}))
	require.NoError(t, storage.CreateMember(ctx, &Member{Name: "dup", Address: testAddress()}))
	require.NoError(t, storage.CreateMember(ctx, &Member{Name: "other", Address: testAddress()}))

	count, err := storage.CountMembersByName(ctx, "dup")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = storage.CountMembersByName(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCreateItem(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	item := &Item{Name: "SQL for Shopkeepers", Author: "K. Howard", ISBN: "979-11-0000", Price: 10000, StockQuantity: 10}

	err := storage.CreateItem(ctx, item)
	require.NoError(t, err)
	assert.Greater(t, item.ID, int64(0))
	assert.Equal(t, ItemKindBook, item.Kind) // Defaulted

	retrieved, err := storage.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.Name, retrieved.Name)
	assert.Equal(t, item.Author, retrieved.Author)
	assert.Equal(t, int64(10000), retrieved.Price)
	assert.Equal(t, 10, retrieved.StockQuantity)
}

func TestGetItem_NotFound(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	_, err := storage.GetItem(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateItem(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	item := &Item{Name: "old", Price: 100, StockQuantity: 1}
	require.NoError(t, storage.CreateItem(ctx, item))

	item.Name = "new"
	item.Price = 200
	item.StockQuantity = 5
	err := storage.UpdateItem(ctx, item)
	require.NoError(t, err)

	updated, err := storage.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Name)
	assert.Equal(t, int64(200), updated.Price)
	assert.Equal(t, 5, updated.StockQuantity)
}

func TestUpdateItem_NotFound(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	err := storage.UpdateItem(ctx, &Item{ID: 9999, Name: "ghost", Price: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListItems(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	require.NoError(t, storage.CreateItem(ctx, &Item{Name: "a", Price: 1, StockQuantity: 1}))
	require.NoError(t, storage.CreateItem(ctx, &Item{Name: "b", Price: 2, StockQuantity: 2}))

	items, err := storage.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].Name)
	assert.Equal(t, "b", items[1].Name)
}

func TestCreateDelivery(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	delivery := &Delivery{Address: testAddress()}

	err := storage.CreateDelivery(ctx, delivery)
	require.NoError(t, err)
	assert.Greater(t, delivery.ID, int64(0))
	assert.Equal(t, types.DeliveryStatusReady, delivery.Status) // Defaulted

	retrieved, err := storage.GetDelivery(ctx, delivery.ID)
	require.NoError(t, err)
	assert.Equal(t, types.DeliveryStatusReady, retrieved.Status)
	assert.Equal(t, testAddress(), retrieved.Address)
}

func TestUpdateDeliveryStatus(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	delivery := &Delivery{Address: testAddress()}
	require.NoError(t, storage.CreateDelivery(ctx, delivery))

	err := storage.UpdateDeliveryStatus(ctx, delivery.ID, types.DeliveryStatusComp)
	require.NoError(t, err)

	updated, err := storage.GetDelivery(ctx, delivery.ID)
	require.NoError(t, err)
	assert.Equal(t, types.DeliveryStatusComp, updated.Status)
}

func TestUpdateDeliveryStatus_NotFound(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	err := storage.UpdateDeliveryStatus(ctx, 9999, types.DeliveryStatusComp)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestItemRemoveStock(t *testing.T) {
	item := &Item{StockQuantity: 10}

	err := item.RemoveStock(4)
	require.NoError(t, err)
	assert.Equal(t, 6, item.StockQuantity)

	err = item.RemoveStock(6)
	require.NoError(t, err)
	assert.Equal(t, 0, item.StockQuantity)
}

func TestItemRemoveStock_NotEnough(t *testing.T) {
	item := &Item{StockQuantity: 10}

	err := item.RemoveStock(11)
	assert.ErrorIs(t, err, types.ErrNotEnoughStock)
	assert.Equal(t, 10, item.StockQuantity) // Unchanged on failure
}

func TestItemAddStock(t *testing.T) {
	item := &Item{StockQuantity: 10}
	item.AddStock(5)
	assert.Equal(t, 15, item.StockQuantity)
}

func TestOrderCancel(t *testing.T) {
	order := &Order{Status: types.OrderStatusOrder}

	err := order.Cancel()
	require.NoError(t, err)
	assert.Equal(t, types.OrderStatusCancel, order.Status)

	// One-way transition: cancelling again fails
	err = order.Cancel()
	assert.ErrorIs(t, err, types.ErrOrderAlreadyCancelled)
}

func TestDeliveryComplete(t *testing.T) {
	delivery := &Delivery{Status: types.DeliveryStatusReady}

	err := delivery.Complete()
	require.NoError(t, err)
	assert.True(t, delivery.Completed())

	err = delivery.Complete()
	assert.ErrorIs(t, err, types.ErrDeliveryCompleted)
}

func TestBeginTx_RollbackDiscardsWrites(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	tx, err := storage.BeginTx(ctx)
	require.NoError(t, err)

	member := &Member{Name: "ghost", Address: testAddress()}
	require.NoError(t, tx.CreateMember(ctx, member))
	require.NoError(t, tx.Rollback())

	_, err = storage.GetMember(ctx, member.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBeginTx_CommitPersistsWrites(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	tx, err := storage.BeginTx(ctx)
	require.NoError(t, err)

	member := &Member{Name: "kept", Address: testAddress()}
	require.NoError(t, tx.CreateMember(ctx, member))
	require.NoError(t, tx.Commit())

	retrieved, err := storage.GetMember(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, "kept", retrieved.Name)
}

func TestBeginTx_NestedNotSupported(t *testing.T) {
	storage := setupTestDB(t)
	defer storage.Close()

	ctx := context.Background()
	tx, err := storage.BeginTx(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	_, err = tx.BeginTx(ctx)
	assert.Error(t, err)
}
