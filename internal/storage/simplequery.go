package storage

import (
	"context"

	"github.com/khoward/bookshop/pkg/types"
)

// listOrderSummaries produces the flattened order list view with a single
// join across orders, members, and deliveries. Only the columns the list
// view needs are selected; order lines are never loaded, which keeps the
// query to one round trip regardless of how many orders exist.
//
// Result order is whatever the join yields; callers wanting a stable order
// must sort.
func listOrderSummaries(ctx context.Context, q querier) ([]OrderSummary, error) {
	query := `
		SELECT o.id, m.name, o.order_date, o.status, d.city, d.street, d.zipcode
		FROM orders o
		JOIN members m ON o.member_id = m.id
		JOIN deliveries d ON o.delivery_id = d.id
	`
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	summaries := make([]OrderSummary, 0)
	for rows.Next() {
		var s OrderSummary
		var status string
		err := rows.Scan(
			&s.OrderID, &s.MemberName, &s.OrderDate, &status,
			&s.Address.City, &s.Address.Street, &s.Address.Zipcode,
		)
		if err != nil {
			return nil, err
		}
		s.Status = types.OrderStatus(status)
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
