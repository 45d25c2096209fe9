package migrations

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"posadmin/m/internal/database"
	"posadmin/m/internal/logger"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            first_name TEXT NOT NULL,
            last_name TEXT NOT NULL,
            UNIQUE(first_name, last_name)
        );`,
	`CREATE TABLE IF NOT EXISTS cashiers (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            first_name TEXT NOT NULL,
            last_name TEXT NOT NULL,
            UNIQUE(first_name, last_name)
        );`,
	`CREATE TABLE IF NOT EXISTS suppliers (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            description TEXT NOT NULL UNIQUE,
            supplier_type TEXT
        );`,
	`CREATE TABLE IF NOT EXISTS products (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            description TEXT NOT NULL
        );`,
	`CREATE TABLE IF NOT EXISTS product_suppliers (
            product_id INTEGER NOT NULL,
            supplier_id INTEGER NOT NULL,
            PRIMARY KEY (product_id, supplier_id),
            FOREIGN KEY(product_id) REFERENCES products(id) ON DELETE CASCADE,
            FOREIGN KEY(supplier_id) REFERENCES suppliers(id) ON DELETE CASCADE
        );`,
	`CREATE TABLE IF NOT EXISTS sales (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            customer_id INTEGER NOT NULL,
            cashier_id INTEGER NOT NULL,
            sales_date TIMESTAMP NOT NULL,
            status TEXT NOT NULL DEFAULT 'Active' CHECK (status IN ('Active', 'Inactive')),
            FOREIGN KEY(customer_id) REFERENCES customers(id),
            FOREIGN KEY(cashier_id) REFERENCES cashiers(id)
        );`,
	`CREATE TABLE IF NOT EXISTS sale_items (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            sale_id INTEGER NOT NULL,
            product_id INTEGER NOT NULL,
            quantity INTEGER NOT NULL CHECK (quantity > 0),
            unit_price NUMERIC NOT NULL CHECK (unit_price >= 0),
            FOREIGN KEY(sale_id) REFERENCES sales(id) ON DELETE CASCADE,
            FOREIGN KEY(product_id) REFERENCES products(id)
        );`,
	`CREATE INDEX IF NOT EXISTS idx_sale_items_sale_id ON sale_items(sale_id);`,
	`CREATE INDEX IF NOT EXISTS idx_sales_sales_date ON sales(sales_date);`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
			id BIGSERIAL PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			UNIQUE(first_name, last_name)
		);`,
	`CREATE TABLE IF NOT EXISTS cashiers (
			id BIGSERIAL PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			UNIQUE(first_name, last_name)
		);`,
	`CREATE TABLE IF NOT EXISTS suppliers (
			id BIGSERIAL PRIMARY KEY,
			description TEXT NOT NULL UNIQUE,
			supplier_type TEXT
		);`,
	`CREATE TABLE IF NOT EXISTS products (
			id BIGSERIAL PRIMARY KEY,
			description TEXT NOT NULL
		);`,
	`CREATE TABLE IF NOT EXISTS product_suppliers (
			product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			supplier_id BIGINT NOT NULL REFERENCES suppliers(id) ON DELETE CASCADE,
			PRIMARY KEY (product_id, supplier_id)
		);`,
	`CREATE TABLE IF NOT EXISTS sales (
			id BIGSERIAL PRIMARY KEY,
			customer_id BIGINT NOT NULL REFERENCES customers(id),
			cashier_id BIGINT NOT NULL REFERENCES cashiers(id),
			sales_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			status TEXT NOT NULL DEFAULT 'Active' CHECK (status IN ('Active', 'Inactive'))
		);`,
	`CREATE TABLE IF NOT EXISTS sale_items (
			id BIGSERIAL PRIMARY KEY,
			sale_id BIGINT NOT NULL REFERENCES sales(id) ON DELETE CASCADE,
			product_id BIGINT NOT NULL REFERENCES products(id),
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			unit_price NUMERIC NOT NULL CHECK (unit_price >= 0)
		);`,
	`CREATE INDEX IF NOT EXISTS idx_sale_items_sale_id ON sale_items(sale_id);`,
	`CREATE INDEX IF NOT EXISTS idx_sales_sales_date ON sales(sales_date);`,
}

// Tables in dependency order; Reset drops them back to front.
var tables = []string{"customers", "cashiers", "suppliers", "products", "product_suppliers", "sales", "sale_items"}

// Run creates the database schema required for the POS backend. It is idempotent.
func Run(ctx context.Context, db *sqlx.DB) error {
	schema := sqliteSchema
	if database.IsPostgres(db) {
		schema = postgresSchema
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	logger.Logger.Debug().Str("driver", db.DriverName()).Int("statements", len(schema)).Msg("schema up to date")
	return nil
}

// Reset drops every table created by Run.
func Reset(ctx context.Context, db *sqlx.DB) error {
	for i := len(tables) - 1; i >= 0; i-- {
		if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+tables[i]); err != nil {
			return fmt.Errorf("drop table %s: %w", tables[i], err)
		}
	}
	return nil
}
