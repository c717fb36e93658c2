package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/khoward/bookshop/pkg/types"
)

// Storage defines the interface for persisting and querying order data
type Storage interface {
	// Member operations
	CreateMember(ctx context.Context, member *Member) error
	GetMember(ctx context.Context, memberID int64) (*Member, error)
	ListMembers(ctx context.Context) ([]*Member, error)
	CountMembersByName(ctx context.Context, name string) (int, error)

	// Item operations
	CreateItem(ctx context.Context, item *Item) error
	GetItem(ctx context.Context, itemID int64) (*Item, error)
	ListItems(ctx context.Context) ([]*Item, error)
	UpdateItem(ctx context.Context, item *Item) error

	// Delivery operations
	CreateDelivery(ctx context.Context, delivery *Delivery) error
	GetDelivery(ctx context.Context, deliveryID int64) (*Delivery, error)
	UpdateDeliveryStatus(ctx context.Context, deliveryID int64, status types.DeliveryStatus) error

	// Order operations
	CreateOrder(ctx context.Context, order *Order) error
	CreateOrderItem(ctx context.Context, line *OrderItem) error
	GetOrder(ctx context.Context, orderID int64) (*Order, error)
	ListOrders(ctx context.Context, search OrderSearch) ([]*Order, error)
	ListOrderItems(ctx context.Context, orderID int64) ([]*OrderItem, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status types.OrderStatus) error
	OrderTotalPrice(ctx context.Context, orderID int64) (int64, error)

	// Read model
	ListOrderSummaries(ctx context.Context) ([]OrderSummary, error)

	// Database operations
	Close() error
	BeginTx(ctx context.Context) (Tx, error)
}

// Tx represents a database transaction
type Tx interface {
	Commit() error
	Rollback() error
	Storage // Embed Storage interface for transaction operations
}

// Member represents a registered customer
type Member struct {
	ID        int64
	Name      string
	Address   types.Address
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemKindBook is the only catalog item kind currently sold.
const ItemKindBook = "BOOK"

// Item represents a catalog item. Author and ISBN are set for books.
type Item struct {
	ID            int64
	Kind          string
	Name          string
	Author        string
	ISBN          string
	Price         int64
	StockQuantity int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RemoveStock decreases the stock quantity by quantity. It fails with
// types.ErrNotEnoughStock when the requested quantity exceeds the current
// stock, leaving the item unchanged.
//
// RemoveStock and AddStock are the only two mutators of StockQuantity;
// keeping them exclusive is what makes the non-negative invariant checkable
// in one place.
func (i *Item) RemoveStock(quantity int) error {
	rest := i.StockQuantity - quantity
	if rest < 0 {
		return fmt.Errorf("%w: requested %d, have %d", types.ErrNotEnoughStock, quantity, i.StockQuantity)
	}
	i.StockQuantity = rest
	return nil
}

// AddStock increases the stock quantity by quantity. No upper bound is
// enforced.
func (i *Item) AddStock(quantity int) {
	i.StockQuantity += quantity
}

// Delivery represents the shipping leg of an order, one-to-one with it.
type Delivery struct {
	ID        int64
	Address   types.Address
	Status    types.DeliveryStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Complete marks the delivery as completed. Completing twice fails.
func (d *Delivery) Complete() error {
	if d.Status == types.DeliveryStatusComp {
		return types.ErrDeliveryCompleted
	}
	d.Status = types.DeliveryStatusComp
	return nil
}

// Completed reports whether the delivery has already completed.
func (d *Delivery) Completed() bool {
	return d.Status == types.DeliveryStatusComp
}

// Order aggregates a member, a delivery, and a set of order lines.
// Related rows are referenced by ID and fetched explicitly.
type Order struct {
	ID          int64
	ReferenceNo string
	MemberID    int64
	DeliveryID  int64
	Status      types.OrderStatus
	OrderDate   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Cancel transitions the order from ORDER to CANCEL. Cancelling an already
// cancelled order fails with types.ErrOrderAlreadyCancelled. The caller is
// responsible for restoring stock on every order line and for persisting
// the new status within the same transaction.
func (o *Order) Cancel() error {
	if o.Status == types.OrderStatusCancel {
		return types.ErrOrderAlreadyCancelled
	}
	o.Status = types.OrderStatusCancel
	return nil
}

// OrderItem is one order line: it references an order and an item and
// records the unit price snapshotted at order time together with the
// quantity. The quantity is fixed at creation; cancellation restores
// exactly that quantity to the referenced item.
type OrderItem struct {
	ID         int64
	OrderID    int64
	ItemID     int64
	OrderPrice int64
	Count      int
	CreatedAt  time.Time
}

// Subtotal returns the line total, unit price times quantity.
func (oi *OrderItem) Subtotal() int64 {
	return oi.OrderPrice * int64(oi.Count)
}

// OrderSearch narrows ListOrders results. Zero-valued fields are ignored.
type OrderSearch struct {
	MemberName string            // Substring match on the member name
	Status     types.OrderStatus // Exact status match
	Limit      int               // Maximum rows; 0 means no limit
}

// OrderSummary is the flattened list-view projection of an order: one row
// per order with the fields a list view needs, produced by a single join
// without loading order lines or full entity graphs.
type OrderSummary struct {
	OrderID    int64
	MemberName string
	OrderDate  time.Time
	Status     types.OrderStatus
	Address    types.Address
}
