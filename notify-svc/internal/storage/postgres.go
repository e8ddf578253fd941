package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"qr-dine/notify-svc/internal/domain"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// LoadOrder reads the order as the dashboards should see it, grand total
// included, together with the status of its payment if one was submitted.
func (s *PostgresStore) LoadOrder(ctx context.Context, orderID int) (*domain.OrderSnapshot, error) {
	var (
		order   domain.OrderSnapshot
		tableID sql.NullInt64
		lines   []byte
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT o.id, o.restaurant_id, o.table_id, o.customer_name, o.line_items,
			ROUND(o.total * (100 + COALESCE(o.cgst_rate, 0) + COALESCE(o.sgst_rate, 0)) / 100, 2),
			o.status, o.source, COALESCE(p.status, ''), o.created_at, o.updated_at
		FROM orders o
		LEFT JOIN payments p ON p.order_id = o.id
		WHERE o.id = $1
	`, orderID).Scan(&order.ID, &order.RestaurantID, &tableID, &order.CustomerName, &lines,
		&order.GrandTotal, &order.Status, &order.Source, &order.PaymentStatus, &order.CreatedAt, &order.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if tableID.Valid {
		id := int(tableID.Int64)
		order.TableID = &id
	}
	if err := json.Unmarshal(lines, &order.Lines); err != nil {
		return nil, fmt.Errorf("decode line items of order %d: %w", orderID, err)
	}
	return &order, nil
}
