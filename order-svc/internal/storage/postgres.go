package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"qr-dine/order-svc/internal/domain"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func notFound(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	}
	return err
}

// restaurants

const restaurantColumns = `id, slug, name, COALESCE(address, ''), COALESCE(description, ''), COALESCE(image_url, ''),
	cgst_rate, sgst_rate, COALESCE(upi_id, ''), online_payment_enabled, created_at`

func scanRestaurant(row rowScanner) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := row.Scan(&rest.ID, &rest.Slug, &rest.Name, &rest.Address, &rest.Description, &rest.ImageURL,
		&rest.Tax.CGSTRate, &rest.Tax.SGSTRate, &rest.UPIID, &rest.OnlinePaymentEnabled, &rest.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) CreateRestaurant(rest *domain.Restaurant) error {
	err := r.DB.QueryRow(`
		INSERT INTO restaurants (slug, name, address, description, cgst_rate, sgst_rate, upi_id, online_payment_enabled)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		rest.Slug, rest.Name, rest.Address, rest.Description, rest.Tax.CGSTRate, rest.Tax.SGSTRate, rest.UPIID, rest.OnlinePaymentEnabled,
	).Scan(&rest.ID, &rest.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("restaurant slug %q: %w", rest.Slug, domain.ErrDuplicate)
	}
	return err
}

func (r *PostgresRepository) ListRestaurants() ([]domain.Restaurant, error) {
	rows, err := r.DB.Query(`SELECT ` + restaurantColumns + ` FROM restaurants ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, *rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	rest, err := scanRestaurant(r.DB.QueryRow(`SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "restaurant")
	}
	return rest, nil
}

func (r *PostgresRepository) GetRestaurantBySlug(slug string) (*domain.Restaurant, error) {
	rest, err := scanRestaurant(r.DB.QueryRow(`SELECT `+restaurantColumns+` FROM restaurants WHERE slug = $1`, slug))
	if err != nil {
		return nil, notFound(err, "restaurant")
	}
	return rest, nil
}

func (r *PostgresRepository) UpdateRestaurant(rest *domain.Restaurant) error {
	updated, err := scanRestaurant(r.DB.QueryRow(`
		UPDATE restaurants SET name=$1, address=$2, description=$3
		WHERE id=$4
		RETURNING `+restaurantColumns,
		rest.Name, rest.Address, rest.Description, rest.ID))
	if err != nil {
		return notFound(err, "restaurant")
	}
	*rest = *updated
	return nil
}

func (r *PostgresRepository) UpdateRestaurantSettings(id int, settings domain.RestaurantSettings) (*domain.Restaurant, error) {
	rest, err := scanRestaurant(r.DB.QueryRow(`
		UPDATE restaurants SET cgst_rate=$1, sgst_rate=$2, upi_id=$3, online_payment_enabled=$4
		WHERE id=$5
		RETURNING `+restaurantColumns,
		settings.Tax.CGSTRate, settings.Tax.SGSTRate, settings.UPIID, settings.OnlinePaymentEnabled, id))
	if err != nil {
		return nil, notFound(err, "restaurant")
	}
	return rest, nil
}

func (r *PostgresRepository) DeleteRestaurant(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM restaurants WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) UpdateRestaurantImage(id int, imageURL string) error {
	_, err := r.DB.Exec("UPDATE restaurants SET image_url=$1 WHERE id=$2", imageURL, id)
	return err
}

// menu items

const menuItemColumns = `id, restaurant_id, name, COALESCE(description, ''), COALESCE(category, ''), price, available,
	variants, add_ons, COALESCE(image_url, ''), created_at`

func scanMenuItem(row rowScanner) (*domain.MenuItem, error) {
	var (
		item             domain.MenuItem
		variants, addOns []byte
	)
	err := row.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Category, &item.Price,
		&item.Available, &variants, &addOns, &item.ImageURL, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := unmarshalJSONB(variants, &item.Variants); err != nil {
		return nil, fmt.Errorf("menu item %d variants: %w", item.ID, err)
	}
	if err := unmarshalJSONB(addOns, &item.AddOns); err != nil {
		return nil, fmt.Errorf("menu item %d add-ons: %w", item.ID, err)
	}
	return &item, nil
}

func unmarshalJSONB(data []byte, dest interface{}) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dest)
}

func menuItemOptions(item *domain.MenuItem) ([]byte, []byte, error) {
	if item.Variants == nil {
		item.Variants = []domain.Variant{}
	}
	if item.AddOns == nil {
		item.AddOns = []domain.AddOn{}
	}
	variants, err := json.Marshal(item.Variants)
	if err != nil {
		return nil, nil, err
	}
	addOns, err := json.Marshal(item.AddOns)
	if err != nil {
		return nil, nil, err
	}
	return variants, addOns, nil
}

func (r *PostgresRepository) CreateMenuItem(item *domain.MenuItem) error {
	variants, addOns, err := menuItemOptions(item)
	if err != nil {
		return err
	}
	return r.DB.QueryRow(`
		INSERT INTO menu_items (restaurant_id, name, description, category, price, available, variants, add_ons, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`,
		item.RestaurantID, item.Name, item.Description, item.Category, item.Price, item.Available, variants, addOns, item.ImageURL,
	).Scan(&item.ID, &item.CreatedAt)
}

func (r *PostgresRepository) ListMenuItems(restaurantID int, onlyAvailable bool) ([]domain.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE restaurant_id = $1`
	if onlyAvailable {
		query += ` AND available`
	}
	query += ` ORDER BY category, name`

	rows, err := r.DB.Query(query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetMenuItem(restaurantID, itemID int) (*domain.MenuItem, error) {
	item, err := scanMenuItem(r.DB.QueryRow(
		`SELECT `+menuItemColumns+` FROM menu_items WHERE id = $1 AND restaurant_id = $2`, itemID, restaurantID))
	if err != nil {
		return nil, notFound(err, "menu item")
	}
	return item, nil
}

func (r *PostgresRepository) UpdateMenuItem(item *domain.MenuItem) error {
	variants, addOns, err := menuItemOptions(item)
	if err != nil {
		return err
	}
	updated, err := scanMenuItem(r.DB.QueryRow(`
		UPDATE menu_items
		SET name=$1, description=$2, category=$3, price=$4, available=$5, variants=$6, add_ons=$7
		WHERE id=$8 AND restaurant_id=$9
		RETURNING `+menuItemColumns,
		item.Name, item.Description, item.Category, item.Price, item.Available, variants, addOns, item.ID, item.RestaurantID))
	if err != nil {
		return notFound(err, "menu item")
	}
	*item = *updated
	return nil
}

func (r *PostgresRepository) DeleteMenuItem(restaurantID, itemID int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM menu_items WHERE id=$1 AND restaurant_id=$2", itemID, restaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) UpdateMenuItemImage(restaurantID, itemID int, imageURL string) error {
	_, err := r.DB.Exec("UPDATE menu_items SET image_url = $1 WHERE id = $2 AND restaurant_id = $3",
		imageURL, itemID, restaurantID)
	return err
}

// tables

func (r *PostgresRepository) CreateTable(table *domain.Table) error {
	return r.DB.QueryRow(`
		INSERT INTO dining_tables (restaurant_id, branch_id, label)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		table.RestaurantID, table.BranchID, table.Label,
	).Scan(&table.ID, &table.CreatedAt)
}

func (r *PostgresRepository) ListTables(restaurantID int) ([]domain.Table, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, branch_id, label, created_at
		FROM dining_tables
		WHERE restaurant_id = $1
		ORDER BY id`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := []domain.Table{}
	for rows.Next() {
		var t domain.Table
		if err := rows.Scan(&t.ID, &t.RestaurantID, &t.BranchID, &t.Label, &t.CreatedAt); err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

func (r *PostgresRepository) GetTable(restaurantID, tableID int) (*domain.Table, error) {
	var t domain.Table
	err := r.DB.QueryRow(`
		SELECT id, restaurant_id, branch_id, label, created_at
		FROM dining_tables
		WHERE id = $1 AND restaurant_id = $2`, tableID, restaurantID).
		Scan(&t.ID, &t.RestaurantID, &t.BranchID, &t.Label, &t.CreatedAt)
	if err != nil {
		return nil, notFound(err, "table")
	}
	return &t, nil
}

// orders

const orderColumns = `id, restaurant_id, branch_id, table_id, customer_name, COALESCE(customer_phone, ''),
	COALESCE(special_instructions, ''), line_items, total, cgst_rate, sgst_rate, status, source,
	idempotency_key, created_at, updated_at`

func scanOrder(row rowScanner) (*domain.Order, error) {
	var (
		order      domain.Order
		tableID    sql.NullInt64
		lines      []byte
		cgst, sgst decimal.NullDecimal
	)
	err := row.Scan(&order.ID, &order.RestaurantID, &order.BranchID, &tableID, &order.CustomerName, &order.CustomerPhone,
		&order.SpecialInstructions, &lines, &order.Subtotal, &cgst, &sgst, &order.Status, &order.Source,
		&order.IdempotencyKey, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if tableID.Valid {
		id := int(tableID.Int64)
		order.TableID = &id
	}
	if cgst.Valid && sgst.Valid {
		order.TaxSnapshot = &domain.TaxConfiguration{CGSTRate: cgst.Decimal, SGSTRate: sgst.Decimal}
	}
	order.Lines = []domain.OrderLine{}
	if err := unmarshalJSONB(lines, &order.Lines); err != nil {
		return nil, fmt.Errorf("order %d line items: %w", order.ID, err)
	}
	return &order, nil
}

func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

// PlaceOrder inserts the order and, for online payment, its payment claim in
// one transaction. A repeated idempotency key loads the existing order into
// order and reports created=false.
func (r *PostgresRepository) PlaceOrder(order *domain.Order, payment *domain.Payment) (bool, error) {
	lines, err := json.Marshal(order.Lines)
	if err != nil {
		return false, err
	}
	var cgst, sgst decimal.NullDecimal
	if order.TaxSnapshot != nil {
		cgst = decimal.NullDecimal{Decimal: order.TaxSnapshot.CGSTRate, Valid: true}
		sgst = decimal.NullDecimal{Decimal: order.TaxSnapshot.SGSTRate, Valid: true}
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO orders (restaurant_id, branch_id, table_id, customer_name, customer_phone, special_instructions,
			line_items, total, cgst_rate, sgst_rate, status, source, idempotency_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (restaurant_id, idempotency_key) DO NOTHING
		RETURNING id, created_at, updated_at`,
		order.RestaurantID, order.BranchID, nullableInt(order.TableID), order.CustomerName, order.CustomerPhone,
		order.SpecialInstructions, lines, order.Subtotal, cgst, sgst, order.Status, order.Source, order.IdempotencyKey,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		if err := tx.Rollback(); err != nil {
			return false, err
		}
		existing, err := r.GetOrderByIdempotencyKey(order.RestaurantID, order.IdempotencyKey)
		if err != nil {
			return false, err
		}
		*order = *existing
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("insert order: %w", err)
	}

	if payment != nil {
		payment.OrderID = order.ID
		if err := tx.QueryRow(`
			INSERT INTO payments (order_id, restaurant_id, table_id, customer_name, utr_reference, amount, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at, updated_at`,
			payment.OrderID, payment.RestaurantID, nullableInt(payment.TableID), payment.CustomerName,
			payment.UTRReference, payment.Amount, payment.Status,
		).Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt); err != nil {
			return false, fmt.Errorf("insert payment: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

func (r *PostgresRepository) GetOrder(id int) (*domain.Order, error) {
	order, err := scanOrder(r.DB.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "order")
	}
	return order, nil
}

func (r *PostgresRepository) GetOrderByIdempotencyKey(restaurantID int, key string) (*domain.Order, error) {
	order, err := scanOrder(r.DB.QueryRow(
		`SELECT `+orderColumns+` FROM orders WHERE restaurant_id = $1 AND idempotency_key = $2`, restaurantID, key))
	if err != nil {
		return nil, notFound(err, "order")
	}
	return order, nil
}

// ListOrders returns the restaurant's orders, newest first. An empty status
// lists every status.
func (r *PostgresRepository) ListOrders(restaurantID int, status domain.OrderStatus) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE restaurant_id = $1`
	args := []interface{}{restaurantID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

// UpdateOrderStatus moves an order from one status to another. The update only
// applies while the order is still in from; when bill is set it is inserted in
// the same transaction, at most once per order.
func (r *PostgresRepository) UpdateOrderStatus(id int, from, to domain.OrderStatus, bill *domain.Bill) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.Exec(`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`, to, id, from)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("order %d is no longer %s: %w", id, from, domain.ErrConflict)
	}

	if bill != nil {
		bill.OrderID = id
		err := tx.QueryRow(`
			INSERT INTO bills (order_id, restaurant_id, subtotal, cgst_amount, sgst_amount, grand_total, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (order_id) DO NOTHING
			RETURNING id, created_at`,
			bill.OrderID, bill.RestaurantID, bill.Subtotal, bill.CGSTAmount, bill.SGSTAmount, bill.GrandTotal, bill.Status,
		).Scan(&bill.ID, &bill.CreatedAt)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("insert bill: %w", err)
		}
	}

	return tx.Commit()
}

// payments

const paymentColumns = `id, order_id, restaurant_id, table_id, customer_name, utr_reference, amount, status, created_at, updated_at`

func scanPayment(row rowScanner) (*domain.Payment, error) {
	var (
		p       domain.Payment
		tableID sql.NullInt64
	)
	err := row.Scan(&p.ID, &p.OrderID, &p.RestaurantID, &tableID, &p.CustomerName, &p.UTRReference, &p.Amount,
		&p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if tableID.Valid {
		id := int(tableID.Int64)
		p.TableID = &id
	}
	return &p, nil
}

// CreatePayment records a payment claim for an order. A previously failed claim
// is replaced; any other existing claim is a duplicate.
func (r *PostgresRepository) CreatePayment(p *domain.Payment) error {
	err := r.DB.QueryRow(`
		INSERT INTO payments (order_id, restaurant_id, table_id, customer_name, utr_reference, amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (order_id) DO UPDATE
			SET utr_reference = EXCLUDED.utr_reference, amount = EXCLUDED.amount,
				status = EXCLUDED.status, updated_at = NOW()
			WHERE payments.status = 'failed'
		RETURNING id, created_at, updated_at`,
		p.OrderID, p.RestaurantID, nullableInt(p.TableID), p.CustomerName, p.UTRReference, p.Amount, p.Status,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("payment for order %d: %w", p.OrderID, domain.ErrDuplicate)
	}
	return err
}

func (r *PostgresRepository) GetPayment(id int) (*domain.Payment, error) {
	p, err := scanPayment(r.DB.QueryRow(`SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "payment")
	}
	return p, nil
}

func (r *PostgresRepository) GetPaymentByOrder(orderID int) (*domain.Payment, error) {
	p, err := scanPayment(r.DB.QueryRow(`SELECT `+paymentColumns+` FROM payments WHERE order_id = $1`, orderID))
	if err != nil {
		return nil, notFound(err, "payment")
	}
	return p, nil
}

func (r *PostgresRepository) ListPayments(restaurantID int, status domain.PaymentStatus) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE restaurant_id = $1`
	args := []interface{}{restaurantID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}

// ReviewPayment settles a pending payment. Verifying also marks the order's
// bill paid when one exists.
func (r *PostgresRepository) ReviewPayment(id int, status domain.PaymentStatus) (*domain.Payment, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	p, err := scanPayment(tx.QueryRow(`
		UPDATE payments SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'pending'
		RETURNING `+paymentColumns, status, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("payment %d is not pending: %w", id, domain.ErrConflict)
	}
	if err != nil {
		return nil, err
	}

	if status == domain.PaymentVerified {
		if _, err := tx.Exec(`UPDATE bills SET status = 'paid' WHERE order_id = $1`, p.OrderID); err != nil {
			return nil, fmt.Errorf("mark bill paid: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return p, nil
}

// bills

const billColumns = `id, order_id, restaurant_id, subtotal, cgst_amount, sgst_amount, grand_total, status, created_at`

func scanBill(row rowScanner) (*domain.Bill, error) {
	var b domain.Bill
	err := row.Scan(&b.ID, &b.OrderID, &b.RestaurantID, &b.Subtotal, &b.CGSTAmount, &b.SGSTAmount, &b.GrandTotal,
		&b.Status, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PostgresRepository) GetBillByOrder(orderID int) (*domain.Bill, error) {
	b, err := scanBill(r.DB.QueryRow(`SELECT `+billColumns+` FROM bills WHERE order_id = $1`, orderID))
	if err != nil {
		return nil, notFound(err, "bill")
	}
	return b, nil
}

func (r *PostgresRepository) MarkBillPaid(orderID int) (*domain.Bill, error) {
	b, err := scanBill(r.DB.QueryRow(`
		UPDATE bills SET status = 'paid' WHERE order_id = $1
		RETURNING `+billColumns, orderID))
	if err != nil {
		return nil, notFound(err, "bill")
	}
	return b, nil
}

// staff

func (r *PostgresRepository) CreateStaff(staff *domain.Staff) error {
	err := r.DB.QueryRow(`
		INSERT INTO staff (restaurant_id, name, email, role, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		staff.RestaurantID, staff.Name, strings.ToLower(staff.Email), staff.Role.String(), staff.PasswordHash,
	).Scan(&staff.ID, &staff.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("staff email %q: %w", staff.Email, domain.ErrDuplicate)
	}
	return err
}

func scanStaff(row rowScanner) (*domain.Staff, error) {
	var (
		s    domain.Staff
		role string
	)
	if err := row.Scan(&s.ID, &s.RestaurantID, &s.Name, &s.Email, &role, &s.PasswordHash, &s.CreatedAt); err != nil {
		return nil, err
	}
	parsed, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}
	s.Role = parsed
	return &s, nil
}

func (r *PostgresRepository) GetStaffByEmail(email string) (*domain.Staff, error) {
	s, err := scanStaff(r.DB.QueryRow(`
		SELECT id, restaurant_id, name, email, role, password_hash, created_at
		FROM staff WHERE email = $1`, strings.ToLower(strings.TrimSpace(email))))
	if err != nil {
		return nil, notFound(err, "staff")
	}
	return s, nil
}

func (r *PostgresRepository) ListStaff(restaurantID int) ([]domain.Staff, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, name, email, role, password_hash, created_at
		FROM staff WHERE restaurant_id = $1
		ORDER BY name`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []domain.Staff{}
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *s)
	}
	return members, rows.Err()
}
