// internal/repository/testdb_test.go
package repository

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database with the tables these
// repositories touch. Schema is declared by hand: ids default to a random
// hex string instead of the server-side uuid Postgres provides, and the
// partial unique indexes mirror the ones createIndexes installs in
// production.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	statements := []string{
		`CREATE TABLE addresses (
			id text PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
			created_at datetime,
			updated_at datetime,
			user_id text NOT NULL,
			label text,
			full_name text,
			phone text,
			street text,
			apartment text,
			city text,
			state text,
			country text,
			postal_code text,
			notes text,
			is_default boolean NOT NULL DEFAULT 0
		)`,
		`CREATE UNIQUE INDEX idx_addresses_one_default ON addresses(user_id) WHERE is_default`,

		`CREATE TABLE billing_profiles (
			id text PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
			created_at datetime,
			updated_at datetime,
			user_id text NOT NULL,
			legal_name text,
			tax_id text,
			email text,
			phone text,
			address_line1 text,
			address_line2 text,
			city text,
			state text,
			country text,
			postal_code text,
			is_default boolean NOT NULL DEFAULT 0
		)`,
		`CREATE UNIQUE INDEX idx_billing_profiles_one_default ON billing_profiles(user_id) WHERE is_default`,

		`CREATE TABLE carts (
			id text PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
			created_at datetime,
			updated_at datetime,
			user_id text NOT NULL,
			is_checked_out boolean NOT NULL DEFAULT 0
		)`,
		`CREATE UNIQUE INDEX idx_carts_one_open ON carts(user_id) WHERE NOT is_checked_out`,

		`CREATE TABLE cart_items (
			id text PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
			created_at datetime,
			updated_at datetime,
			cart_id text NOT NULL,
			product_id text NOT NULL,
			quantity integer NOT NULL
		)`,
		`CREATE UNIQUE INDEX idx_cart_items_cart_product ON cart_items(cart_id, product_id)`,

		`CREATE TABLE orders (
			id text PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
			created_at datetime,
			updated_at datetime,
			order_number text,
			user_id text,
			status text,
			total real,
			notes text,
			shipping_address_id text,
			billing_profile_id text,
			shipping_snapshot text,
			billing_snapshot text
		)`,
	}

	for _, statement := range statements {
		if err := db.Exec(statement).Error; err != nil {
			t.Fatalf("failed to create test schema: %v", err)
		}
	}

	return db
}
