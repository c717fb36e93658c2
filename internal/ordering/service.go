package ordering

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoward/bookshop/internal/storage"
	"github.com/khoward/bookshop/pkg/types"
)

// Service orchestrates order placement and cancellation. Stock mutation is
// delegated to storage.Item and status transitions to storage.Order; the
// service owns transaction boundaries and persistence.
type Service struct {
	store  storage.Storage
	logger *zap.Logger
}

// NewService creates an order service backed by store.
func NewService(store storage.Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// PlaceOrder creates an order of count units of the given item for the
// given member and returns the new order's ID.
//
// The whole placement is one transaction: the stock decrement, the new
// delivery in READY status at the member's address, the order row, and the
// order line either all commit or none does. It fails with
// storage.ErrNotFound for an unknown member or item and with
// types.ErrNotEnoughStock when count exceeds the item's stock, in which
// case nothing is persisted.
func (s *Service) PlaceOrder(ctx context.Context, memberID, itemID int64, count int) (int64, error) {
	if count <= 0 {
		return 0, types.ErrInvalidCount
	}

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	member, err := tx.GetMember(ctx, memberID)
	if err != nil {
		return 0, fmt.Errorf("member %d: %w", memberID, err)
	}
	item, err := tx.GetItem(ctx, itemID)
	if err != nil {
		return 0, fmt.Errorf("item %d: %w", itemID, err)
	}

	// Snapshot the unit price before mutating anything
	orderPrice := item.Price

	if err := item.RemoveStock(count); err != nil {
		return 0, err
	}
	if err := tx.UpdateItem(ctx, item); err != nil {
		return 0, err
	}

	delivery := &storage.Delivery{
		Address: member.Address,
		Status:  types.DeliveryStatusReady,
	}
	if err := tx.CreateDelivery(ctx, delivery); err != nil {
		return 0, err
	}

	order := &storage.Order{
		ReferenceNo: uuid.NewString(),
		MemberID:    member.ID,
		DeliveryID:  delivery.ID,
		Status:      types.OrderStatusOrder,
		OrderDate:   time.Now(),
	}
	if err := tx.CreateOrder(ctx, order); err != nil {
		return 0, err
	}

	line := &storage.OrderItem{
		OrderID:    order.ID,
		ItemID:     item.ID,
		OrderPrice: orderPrice,
		Count:      count,
	}
	if err := tx.CreateOrderItem(ctx, line); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	s.logger.Info("order placed",
		zap.Int64("orderId", order.ID),
		zap.String("referenceNo", order.ReferenceNo),
		zap.Int64("memberId", memberID),
		zap.Int64("itemId", itemID),
		zap.Int("count", count))
	return order.ID, nil
}

// CancelOrder cancels the order, restoring to each referenced item exactly
// the quantity its order line recorded. It fails with storage.ErrNotFound
// for an unknown order, with types.ErrOrderAlreadyCancelled when the order
// is already cancelled, and with types.ErrDeliveryCompleted when the
// delivery has completed. The status flip and every stock restoration
// become visible together or not at all.
func (s *Service) CancelOrder(ctx context.Context, orderID int64) error {
	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	order, err := tx.GetOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("order %d: %w", orderID, err)
	}

	delivery, err := tx.GetDelivery(ctx, order.DeliveryID)
	if err != nil {
		return err
	}
	if delivery.Completed() {
		return types.ErrDeliveryCompleted
	}

	if err := order.Cancel(); err != nil {
		return err
	}

	lines, err := tx.ListOrderItems(ctx, order.ID)
	if err != nil {
		return err
	}
	for _, line := range lines {
		item, err := tx.GetItem(ctx, line.ItemID)
		if err != nil {
			return err
		}
		item.AddStock(line.Count)
		if err := tx.UpdateItem(ctx, item); err != nil {
			return err
		}
	}

	if err := tx.UpdateOrderStatus(ctx, order.ID, order.Status); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("order cancelled",
		zap.Int64("orderId", orderID),
		zap.Int("restoredLines", len(lines)))
	return nil
}

// CompleteDelivery marks the order's delivery as completed, after which the
// order can no longer be cancelled.
func (s *Service) CompleteDelivery(ctx context.Context, orderID int64) error {
	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	order, err := tx.GetOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("order %d: %w", orderID, err)
	}
	delivery, err := tx.GetDelivery(ctx, order.DeliveryID)
	if err != nil {
		return err
	}
	if err := delivery.Complete(); err != nil {
		return err
	}
	if err := tx.UpdateDeliveryStatus(ctx, delivery.ID, delivery.Status); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("delivery completed", zap.Int64("orderId", orderID))
	return nil
}

// GetOrder returns the order row.
func (s *Service) GetOrder(ctx context.Context, orderID int64) (*storage.Order, error) {
	return s.store.GetOrder(ctx, orderID)
}

// TotalPrice returns the order's derived total: the sum of unit price
// times quantity over its order lines.
func (s *Service) TotalPrice(ctx context.Context, orderID int64) (int64, error) {
	return s.store.OrderTotalPrice(ctx, orderID)
}

// ListOrders returns orders matching the search criteria.
func (s *Service) ListOrders(ctx context.Context, search storage.OrderSearch) ([]*storage.Order, error) {
	return s.store.ListOrders(ctx, search)
}

// ListOrderSummaries returns the flattened list-view projection, one row
// per order, without hydrating order lines.
func (s *Service) ListOrderSummaries(ctx context.Context) ([]storage.OrderSummary, error) {
	return s.store.ListOrderSummaries(ctx)
}
