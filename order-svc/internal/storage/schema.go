package storage

import "fmt"

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS restaurants (
		id SERIAL PRIMARY KEY,
		slug TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		address TEXT,
		description TEXT,
		image_url TEXT,
		cgst_rate NUMERIC NOT NULL DEFAULT 0,
		sgst_rate NUMERIC NOT NULL DEFAULT 0,
		upi_id TEXT,
		online_payment_enabled BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS dining_tables (
		id SERIAL PRIMARY KEY,
		restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		branch_id INT NOT NULL DEFAULT 0,
		label TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id SERIAL PRIMARY KEY,
		restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		description TEXT,
		category TEXT,
		price NUMERIC NOT NULL CHECK (price >= 0),
		available BOOLEAN NOT NULL DEFAULT TRUE,
		variants JSONB NOT NULL DEFAULT '[]',
		add_ons JSONB NOT NULL DEFAULT '[]',
		image_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		branch_id INT NOT NULL DEFAULT 0,
		table_id INT,
		customer_name TEXT NOT NULL,
		customer_phone TEXT,
		special_instructions TEXT,
		line_items JSONB NOT NULL,
		total NUMERIC NOT NULL,
		cgst_rate NUMERIC,
		sgst_rate NUMERIC,
		status TEXT NOT NULL DEFAULT 'pending',
		source TEXT NOT NULL DEFAULT 'online',
		idempotency_key TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS orders_restaurant_created_idx ON orders (restaurant_id, created_at DESC)`,
	`ALTER TABLE orders DROP CONSTRAINT IF EXISTS orders_idempotency_key_key`,
	`CREATE UNIQUE INDEX IF NOT EXISTS orders_restaurant_idempotency_idx ON orders (restaurant_id, idempotency_key)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id SERIAL PRIMARY KEY,
		order_id INT NOT NULL UNIQUE REFERENCES orders(id) ON DELETE CASCADE,
		restaurant_id INT NOT NULL,
		table_id INT,
		customer_name TEXT NOT NULL,
		utr_reference TEXT NOT NULL,
		amount NUMERIC NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS bills (
		id SERIAL PRIMARY KEY,
		order_id INT NOT NULL UNIQUE REFERENCES orders(id) ON DELETE CASCADE,
		restaurant_id INT NOT NULL,
		subtotal NUMERIC NOT NULL,
		cgst_amount NUMERIC NOT NULL,
		sgst_amount NUMERIC NOT NULL,
		grand_total NUMERIC NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS staff (
		id SERIAL PRIMARY KEY,
		restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		role TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

func (r *PostgresRepository) EnsureSchema() error {
	for _, stmt := range schemaStatements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
