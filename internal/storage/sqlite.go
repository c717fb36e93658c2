package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/khoward/bookshop/pkg/types"
)

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when trying to create a duplicate entity
	ErrAlreadyExists = errors.New("already exists")
)

// SQLiteStorage implements the Storage interface using SQLite
type SQLiteStorage struct {
	db *sql.DB
}

// openDatabase opens a SQLite database with appropriate settings
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(1) // SQLite benefits from single writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// NewSQLiteStorage creates a new SQLite storage instance
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Apply migrations
	if err := ApplyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// BeginTx starts a new transaction
func (s *SQLiteStorage) BeginTx(ctx context.Context) (Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &sqliteTx{tx: tx, storage: s}, nil
}

// querier is an interface that both *sql.DB and *sql.Tx implement
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// sqliteTx wraps a SQL transaction
type sqliteTx struct {
	tx      *sql.Tx
	storage *SQLiteStorage
}

func (t *sqliteTx) Commit() error {
	return t.tx.Commit()
}

func (t *sqliteTx) Rollback() error {
	return t.tx.Rollback()
}

// querier returns the transaction querier
func (t *sqliteTx) querier() querier {
	return t.tx
}

// querier returns the DB querier
func (s *SQLiteStorage) querier() querier {
	return s.db
}

// Member operations

// createMemberWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) createMemberWithQuerier(ctx context.Context, q querier, member *Member) error {
	query := `
		INSERT INTO members (name, city, street, zipcode, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	now := time.Now()
	result, err := q.ExecContext(ctx, query,
		member.Name, member.Address.City, member.Address.Street, member.Address.Zipcode,
		now, now)
	if err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	member.ID = id
	member.CreatedAt = now
	member.UpdatedAt = now
	return nil
}

func (s *SQLiteStorage) CreateMember(ctx context.Context, member *Member) error {
	return s.createMemberWithQuerier(ctx, s.querier(), member)
}

// getMemberWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) getMemberWithQuerier(ctx context.Context, q querier, memberID int64) (*Member, error) {
	query := `
		SELECT id, name, city, street, zipcode, created_at, updated_at
		FROM members
		WHERE id = ?
	`
	var member Member
	err := q.QueryRowContext(ctx, query, memberID).Scan(
		&member.ID, &member.Name,
		&member.Address.City, &member.Address.Street, &member.Address.Zipcode,
		&member.CreatedAt, &member.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *SQLiteStorage) GetMember(ctx context.Context, memberID int64) (*Member, error) {
	return s.getMemberWithQuerier(ctx, s.querier(), memberID)
}

// listMembersWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) listMembersWithQuerier(ctx context.Context, q querier) ([]*Member, error) {
	query := `
		SELECT id, name, city, street, zipcode, created_at, updated_at
		FROM members
		ORDER BY id
	`
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	members := make([]*Member, 0)
	for rows.Next() {
		var member Member
		err := rows.Scan(
			&member.ID, &member.Name,
			&member.Address.City, &member.Address.Street, &member.Address.Zipcode,
			&member.CreatedAt, &member.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		members = append(members, &member)
	}
	return members, rows.Err()
}

func (s *SQLiteStorage) ListMembers(ctx context.Context) ([]*Member, error) {
	return s.listMembersWithQuerier(ctx, s.querier())
}

// countMembersByNameWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) countMembersByNameWithQuerier(ctx context.Context, q querier, name string) (int, error) {
	var count int
	err := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM members WHERE name = ?", name).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count members: %w", err)
	}
	return count, nil
}

func (s *SQLiteStorage) CountMembersByName(ctx context.Context, name string) (int, error) {
	return s.countMembersByNameWithQuerier(ctx, s.querier(), name)
}

// Item operations

// createItemWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) createItemWithQuerier(ctx context.Context, q querier, item *Item) error {
	if item.Kind == "" {
		item.Kind = ItemKindBook
	}
	query := `
		INSERT INTO items (kind, name, author, isbn, price, stock_quantity, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	now := time.Now()
	result, err := q.ExecContext(ctx, query,
		item.Kind, item.Name, item.Author, item.ISBN,
		item.Price, item.StockQuantity, now, now)
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	item.ID = id
	item.CreatedAt = now
	item.UpdatedAt = now
	return nil
}

func (s *SQLiteStorage) CreateItem(ctx context.Context, item *Item) error {
	return s.createItemWithQuerier(ctx, s.querier(), item)
}

// getItemWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) getItemWithQuerier(ctx context.Context, q querier, itemID int64) (*Item, error) {
	query := `
		SELECT id, kind, name, author, isbn, price, stock_quantity, created_at, updated_at
		FROM items
		WHERE id = ?
	`
	var item Item
	var author, isbn sql.NullString
	err := q.QueryRowContext(ctx, query, itemID).Scan(
		&item.ID, &item.Kind, &item.Name, &author, &isbn,
		&item.Price, &item.StockQuantity, &item.CreatedAt, &item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	item.Author = author.String
	item.ISBN = isbn.String
	return &item, nil
}

func (s *SQLiteStorage) GetItem(ctx context.Context, itemID int64) (*Item, error) {
	return s.getItemWithQuerier(ctx, s.querier(), itemID)
}

// listItemsWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) listItemsWithQuerier(ctx context.Context, q querier) ([]*Item, error) {
	query := `
		SELECT id, kind, name, author, isbn, price, stock_quantity, created_at, updated_at
		FROM items
		ORDER BY id
	`
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	items := make([]*Item, 0)
	for rows.Next() {
		var item Item
		var author, isbn sql.NullString
		err := rows.Scan(
			&item.ID, &item.Kind, &item.Name, &author, &isbn,
			&item.Price, &item.StockQuantity, &item.CreatedAt, &item.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		item.Author = author.String
		item.ISBN = isbn.String
		items = append(items, &item)
	}
	return items, rows.Err()
}

func (s *SQLiteStorage) ListItems(ctx context.Context) ([]*Item, error) {
	return s.listItemsWithQuerier(ctx, s.querier())
}

// updateItemWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) updateItemWithQuerier(ctx context.Context, q querier, item *Item) error {
	query := `
		UPDATE items
		SET name = ?, author = ?, isbn = ?, price = ?, stock_quantity = ?, updated_at = ?
		WHERE id = ?
	`
	now := time.Now()
	result, err := q.ExecContext(ctx, query,
		item.Name, item.Author, item.ISBN, item.Price, item.StockQuantity,
		now, item.ID)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	item.UpdatedAt = now
	return nil
}

func (s *SQLiteStorage) UpdateItem(ctx context.Context, item *Item) error {
	return s.updateItemWithQuerier(ctx, s.querier(), item)
}

// Delivery operations

// createDeliveryWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) createDeliveryWithQuerier(ctx context.Context, q querier, delivery *Delivery) error {
	if delivery.Status == "" {
		delivery.Status = types.DeliveryStatusReady
	}
	query := `
		INSERT INTO deliveries (city, street, zipcode, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	now := time.Now()
	result, err := q.ExecContext(ctx, query,
		delivery.Address.City, delivery.Address.Street, delivery.Address.Zipcode,
		string(delivery.Status), now, now)
	if err != nil {
		return fmt.Errorf("failed to create delivery: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	delivery.ID = id
	delivery.CreatedAt = now
	delivery.UpdatedAt = now
	return nil
}

func (s *SQLiteStorage) CreateDelivery(ctx context.Context, delivery *Delivery) error {
	return s.createDeliveryWithQuerier(ctx, s.querier(), delivery)
}

// getDeliveryWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) getDeliveryWithQuerier(ctx context.Context, q querier, deliveryID int64) (*Delivery, error) {
	query := `
		SELECT id, city, street, zipcode, status, created_at, updated_at
		FROM deliveries
		WHERE id = ?
	`
	var delivery Delivery
	var status string
	err := q.QueryRowContext(ctx, query, deliveryID).Scan(
		&delivery.ID,
		&delivery.Address.City, &delivery.Address.Street, &delivery.Address.Zipcode,
		&status, &delivery.CreatedAt, &delivery.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	delivery.Status = types.DeliveryStatus(status)
	return &delivery, nil
}

func (s *SQLiteStorage) GetDelivery(ctx context.Context, deliveryID int64) (*Delivery, error) {
	return s.getDeliveryWithQuerier(ctx, s.querier(), deliveryID)
}

// updateDeliveryStatusWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) updateDeliveryStatusWithQuerier(ctx context.Context, q querier, deliveryID int64, status types.DeliveryStatus) error {
	query := `UPDATE deliveries SET status = ?, updated_at = ? WHERE id = ?`
	result, err := q.ExecContext(ctx, query, string(status), time.Now(), deliveryID)
	if err != nil {
		return fmt.Errorf("failed to update delivery status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStorage) UpdateDeliveryStatus(ctx context.Context, deliveryID int64, status types.DeliveryStatus) error {
	return s.updateDeliveryStatusWithQuerier(ctx, s.querier(), deliveryID, status)
}

// Order operations

// createOrderWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) createOrderWithQuerier(ctx context.Context, q querier, order *Order) error {
	if order.Status == "" {
		order.Status = types.OrderStatusOrder
	}
	query := `
		INSERT INTO orders (reference_no, member_id, delivery_id, status, order_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	now := time.Now()
	result, err := q.ExecContext(ctx, query,
		order.ReferenceNo, order.MemberID, order.DeliveryID,
		string(order.Status), order.OrderDate, now, now)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to create order: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	order.ID = id
	order.CreatedAt = now
	order.UpdatedAt = now
	return nil
}

func (s *SQLiteStorage) CreateOrder(ctx context.Context, order *Order) error {
	return s.createOrderWithQuerier(ctx, s.querier(), order)
}

// createOrderItemWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) createOrderItemWithQuerier(ctx context.Context, q querier, line *OrderItem) error {
	query := `
		INSERT INTO order_items (order_id, item_id, order_price, count, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	now := time.Now()
	result, err := q.ExecContext(ctx, query,
		line.OrderID, line.ItemID, line.OrderPrice, line.Count, now)
	if err != nil {
		return fmt.Errorf("failed to create order item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	line.ID = id
	line.CreatedAt = now
	return nil
}

func (s *SQLiteStorage) CreateOrderItem(ctx context.Context, line *OrderItem) error {
	return s.createOrderItemWithQuerier(ctx, s.querier(), line)
}

// getOrderWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) getOrderWithQuerier(ctx context.Context, q querier, orderID int64) (*Order, error) {
	query := `
		SELECT id, reference_no, member_id, delivery_id, status, order_date, created_at, updated_at
		FROM orders
		WHERE id = ?
	`
	var order Order
	var status string
	err := q.QueryRowContext(ctx, query, orderID).Scan(
		&order.ID, &order.ReferenceNo, &order.MemberID, &order.DeliveryID,
		&status, &order.OrderDate, &order.CreatedAt, &order.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	order.Status = types.OrderStatus(status)
	return &order, nil
}

func (s *SQLiteStorage) GetOrder(ctx context.Context, orderID int64) (*Order, error) {
	return s.getOrderWithQuerier(ctx, s.querier(), orderID)
}

// listOrdersWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) listOrdersWithQuerier(ctx context.Context, q querier, search OrderSearch) ([]*Order, error) {
	sqlQuery := `
		SELECT o.id, o.reference_no, o.member_id, o.delivery_id, o.status, o.order_date, o.created_at, o.updated_at
		FROM orders o
		JOIN members m ON o.member_id = m.id
	`
	conds := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)
	if search.MemberName != "" {
		conds = append(conds, "m.name LIKE ?")
		args = append(args, "%"+search.MemberName+"%")
	}
	if search.Status != "" {
		conds = append(conds, "o.status = ?")
		args = append(args, string(search.Status))
	}
	if len(conds) > 0 {
		sqlQuery += " WHERE " + strings.Join(conds, " AND ")
	}
	sqlQuery += " ORDER BY o.id"
	if search.Limit > 0 {
		sqlQuery += " LIMIT ?"
		args = append(args, search.Limit)
	}

	rows, err := q.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	orders := make([]*Order, 0)
	for rows.Next() {
		var order Order
		var status string
		err := rows.Scan(
			&order.ID, &order.ReferenceNo, &order.MemberID, &order.DeliveryID,
			&status, &order.OrderDate, &order.CreatedAt, &order.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		order.Status = types.OrderStatus(status)
		orders = append(orders, &order)
	}
	return orders, rows.Err()
}

func (s *SQLiteStorage) ListOrders(ctx context.Context, search OrderSearch) ([]*Order, error) {
	return s.listOrdersWithQuerier(ctx, s.querier(), search)
}

// listOrderItemsWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) listOrderItemsWithQuerier(ctx context.Context, q querier, orderID int64) ([]*OrderItem, error) {
	query := `
		SELECT id, order_id, item_id, order_price, count, created_at
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`
	rows, err := q.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	lines := make([]*OrderItem, 0)
	for rows.Next() {
		var line OrderItem
		err := rows.Scan(
			&line.ID, &line.OrderID, &line.ItemID,
			&line.OrderPrice, &line.Count, &line.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		lines = append(lines, &line)
	}
	return lines, rows.Err()
}

func (s *SQLiteStorage) ListOrderItems(ctx context.Context, orderID int64) ([]*OrderItem, error) {
	return s.listOrderItemsWithQuerier(ctx, s.querier(), orderID)
}

// updateOrderStatusWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) updateOrderStatusWithQuerier(ctx context.Context, q querier, orderID int64, status types.OrderStatus) error {
	query := `UPDATE orders SET status = ?, updated_at = ? WHERE id = ?`
	result, err := q.ExecContext(ctx, query, string(status), time.Now(), orderID)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStorage) UpdateOrderStatus(ctx context.Context, orderID int64, status types.OrderStatus) error {
	return s.updateOrderStatusWithQuerier(ctx, s.querier(), orderID, status)
}

// orderTotalPriceWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) orderTotalPriceWithQuerier(ctx context.Context, q querier, orderID int64) (int64, error) {
	// The total is derived, never stored
	var exists int
	err := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM orders WHERE id = ?", orderID).Scan(&exists)
	if err != nil {
		return 0, err
	}
	if exists == 0 {
		return 0, ErrNotFound
	}

	var total int64
	err = q.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(order_price * count), 0) FROM order_items WHERE order_id = ?",
		orderID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to compute order total: %w", err)
	}
	return total, nil
}

func (s *SQLiteStorage) OrderTotalPrice(ctx context.Context, orderID int64) (int64, error) {
	return s.orderTotalPriceWithQuerier(ctx, s.querier(), orderID)
}

// Read model

func (s *SQLiteStorage) ListOrderSummaries(ctx context.Context) ([]OrderSummary, error) {
	return listOrderSummaries(ctx, s.querier())
}

// Transaction implementations - delegate to the internal querier helpers

func (t *sqliteTx) CreateMember(ctx context.Context, member *Member) error {
	return t.storage.createMemberWithQuerier(ctx, t.querier(), member)
}

func (t *sqliteTx) GetMember(ctx context.Context, memberID int64) (*Member, error) {
	return t.storage.getMemberWithQuerier(ctx, t.querier(), memberID)
}

func (t *sqliteTx) ListMembers(ctx context.Context) ([]*Member, error) {
	return t.storage.listMembersWithQuerier(ctx, t.querier())
}

func (t *sqliteTx) CountMembersByName(ctx context.Context, name string) (int, error) {
	return t.storage.countMembersByNameWithQuerier(ctx, t.querier(), name)
}

func (t *sqliteTx) CreateItem(ctx context.Context, item *Item) error {
	return t.storage.createItemWithQuerier(ctx, t.querier(), item)
}

func (t *sqliteTx) GetItem(ctx context.Context, itemID int64) (*Item, error) {
	return t.storage.getItemWithQuerier(ctx, t.querier(), itemID)
}

func (t *sqliteTx) ListItems(ctx context.Context) ([]*Item, error) {
	return t.storage.listItemsWithQuerier(ctx, t.querier())
}

func (t *sqliteTx) UpdateItem(ctx context.Context, item *Item) error {
	return t.storage.updateItemWithQuerier(ctx, t.querier(), item)
}

func (t *sqliteTx) CreateDelivery(ctx context.Context, delivery *Delivery) error {
	return t.storage.createDeliveryWithQuerier(ctx, t.querier(), delivery)
}

func (t *sqliteTx) GetDelivery(ctx context.Context, deliveryID int64) (*Delivery, error) {
	return t.storage.getDeliveryWithQuerier(ctx, t.querier(), deliveryID)
}

func (t *sqliteTx) UpdateDeliveryStatus(ctx context.Context, deliveryID int64, status types.DeliveryStatus) error {
	return t.storage.updateDeliveryStatusWithQuerier(ctx, t.querier(), deliveryID, status)
}

func (t *sqliteTx) CreateOrder(ctx context.Context, order *Order) error {
	return t.storage.createOrderWithQuerier(ctx, t.querier(), order)
}

func (t *sqliteTx) CreateOrderItem(ctx context.Context, line *OrderItem) error {
	return t.storage.createOrderItemWithQuerier(ctx, t.querier(), line)
}

func (t *sqliteTx) GetOrder(ctx context.Context, orderID int64) (*Order, error) {
	return t.storage.getOrderWithQuerier(ctx, t.querier(), orderID)
}

func (t *sqliteTx) ListOrders(ctx context.Context, search OrderSearch) ([]*Order, error) {
	return t.storage.listOrdersWithQuerier(ctx, t.querier(), search)
}

func (t *sqliteTx) ListOrderItems(ctx context.Context, orderID int64) ([]*OrderItem, error) {
	return t.storage.listOrderItemsWithQuerier(ctx, t.querier(), orderID)
}

func (t *sqliteTx) UpdateOrderStatus(ctx context.Context, orderID int64, status types.OrderStatus) error {
	return t.storage.updateOrderStatusWithQuerier(ctx, t.querier(), orderID, status)
}

func (t *sqliteTx) OrderTotalPrice(ctx context.Context, orderID int64) (int64, error) {
	return t.storage.orderTotalPriceWithQuerier(ctx, t.querier(), orderID)
}

func (t *sqliteTx) ListOrderSummaries(ctx context.Context) ([]OrderSummary, error) {
	return listOrderSummaries(ctx, t.querier())
}

func (t *sqliteTx) Close() error {
	// Transactions don't close the underlying connection
	return nil
}

func (t *sqliteTx) BeginTx(ctx context.Context) (Tx, error) {
	// SQLite does not support true nested transactions
	return nil, errors.New("nested transactions not supported")
}
