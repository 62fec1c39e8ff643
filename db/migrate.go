package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the schema and loads the seed fixtures when the
// catalog is empty. Safe to run on every startup.
func Migrate(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			product_name VARCHAR(255) NOT NULL,
			base_price DECIMAL(12,2) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS negotiations (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			product_id BIGINT NOT NULL,
			customer_email VARCHAR(255) NOT NULL,
			offered_price DECIMAL(12,2) NOT NULL,
			status VARCHAR(20) NOT NULL,
			reject_reason TEXT,
			version BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (product_id) REFERENCES products(id)
		)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	return seed(db)
}

func seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	seeds := []string{
		`INSERT INTO products (product_name, base_price) VALUES
			('Laptop', 2999.99),
			('Smartphone', 899.00)`,
		`INSERT INTO negotiations (product_id, customer_email, offered_price, status) VALUES
			(1, 'customer1@customer.com', 2500.00, 'Active'),
			(1, 'customer2@customer.com', 2000.00, 'Active'),
			(1, 'customer3@customer.com', 1000.00, 'Active')`,
	}
	for _, q := range seeds {
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	return nil
}
