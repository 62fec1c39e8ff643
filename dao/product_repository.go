package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"negotiation-api/model"
	"negotiation-api/pkg/apperrors"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT id, product_name, base_price
		FROM products
		ORDER BY id ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.ProductName, &p.BasePrice); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `
		SELECT id, product_name, base_price
		FROM products
		WHERE id = ?
	`
	var p model.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.ProductName, &p.BasePrice)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("product %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("query product %d: %w", id, err)
	}
	return &p, nil
}

func (r *ProductRepository) Insert(ctx context.Context, product *model.Product) error {
	query := `INSERT INTO products (product_name, base_price) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, query, product.ProductName, product.BasePrice)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("product insert id: %w", err)
	}
	product.ID = id
	return nil
}
