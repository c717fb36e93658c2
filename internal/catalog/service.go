// Package catalog manages the book catalog: creating books and editing
// their name, price, and stock outside the order flow.
package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoward/bookshop/internal/storage"
	"github.com/khoward/bookshop/pkg/types"
)

// Service manages catalog items.
type Service struct {
	store  storage.Storage
	logger *zap.Logger
}

// NewService creates a catalog service backed by store.
func NewService(store storage.Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// AddBook adds a book to the catalog and returns its ID.
func (s *Service) AddBook(ctx context.Context, name, author, isbn string, price int64, stock int) (int64, error) {
	if name == "" {
		return 0, types.ErrEmptyName
	}
	if price <= 0 {
		return 0, types.ErrInvalidPrice
	}
	if stock < 0 {
		return 0, types.ErrInvalidStock
	}

	book := &storage.Item{
		Kind:          storage.ItemKindBook,
		Name:          name,
		Author:        author,
		ISBN:          isbn,
		Price:         price,
		StockQuantity: stock,
	}
	if err := s.store.CreateItem(ctx, book); err != nil {
		return 0, err
	}

	s.logger.Info("book added", zap.Int64("itemId", book.ID), zap.String("name", name))
	return book.ID, nil
}

// UpdateBook edits a book's name, price, and stock quantity. The read and
// the write share one transaction so concurrent edits cannot interleave
// half-applied states.
func (s *Service) UpdateBook(ctx context.Context, itemID int64, name string, price int64, stock int) error {
	if name == "" {
		return types.ErrEmptyName
	}
	if price <= 0 {
		return types.ErrInvalidPrice
	}
	if stock < 0 {
		return types.ErrInvalidStock
	}

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	item, err := tx.GetItem(ctx, itemID)
	if err != nil {
		return err
	}
	item.Name = name
	item.Price = price
	item.StockQuantity = stock
	if err := tx.UpdateItem(ctx, item); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("book updated", zap.Int64("itemId", itemID))
	return nil
}

// Get returns the item with the given ID.
func (s *Service) Get(ctx context.Context, itemID int64) (*storage.Item, error) {
	return s.store.GetItem(ctx, itemID)
}

// List returns all catalog items.
func (s *Service) List(ctx context.Context) ([]*storage.Item, error) {
	return s.store.ListItems(ctx)
}
