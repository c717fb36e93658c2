// Package storage provides SQLite-based persistence for the bookshop
// order-management backend.
//
// The storage layer manages:
//   - Members (customer records with a home address)
//   - Items (the book catalog with price and stock quantity)
//   - Orders and their order lines
//   - Deliveries (one per order)
//   - The flattened order summary read model
//
// # Database Schema
//
// Tables:
//   - members: customer name and address columns
//   - items: book name, author, isbn, price, stock_quantity
//   - deliveries: shipping address and READY/COMP status
//   - orders: member and delivery references, ORDER/CANCEL status
//   - order_items: order lines with the unit price snapshotted at order time
//
// Entity relationships are plain foreign-key references; nothing is lazily
// loaded. Callers fetch related rows explicitly.
//
// # Transactions
//
// Service-level mutations run inside a transaction so that stock changes,
// status flips, and new rows become visible together or not at all:
//
//	tx, err := store.BeginTx(ctx)
//	if err != nil {
//	    return err
//	}
//	defer tx.Rollback()
//
//	if err := tx.CreateOrder(ctx, order); err != nil {
//	    return err
//	}
//	if err := tx.UpdateItem(ctx, item); err != nil {
//	    return err
//	}
//
//	return tx.Commit()
package storage
