package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"negotiation-api/model"
	"negotiation-api/pkg/apperrors"
)

type NegotiationRepository struct {
	db *sql.DB
}

func NewNegotiationRepository(db *sql.DB) *NegotiationRepository {
	return &NegotiationRepository{db: db}
}

func (r *NegotiationRepository) GetByID(ctx context.Context, id int64) (*model.Negotiation, error) {
	query := `
		SELECT id, product_id, customer_email, offered_price, status, reject_reason, version, created_at, updated_at
		FROM negotiations
		WHERE id = ?
	`
	var n model.Negotiation
	var reason sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&n.ID, &n.ProductID, &n.CustomerEmail, &n.OfferedPrice,
		&n.Status, &reason, &n.Version, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("negotiation %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("query negotiation %d: %w", id, err)
	}
	if reason.Valid {
		n.RejectReason = reason.String
	}
	return &n, nil
}

func (r *NegotiationRepository) Insert(ctx context.Context, negotiation *model.Negotiation) error {
	query := `
		INSERT INTO negotiations (product_id, customer_email, offered_price, status, reject_reason, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		negotiation.ProductID, negotiation.CustomerEmail, negotiation.OfferedPrice,
		negotiation.Status, nullString(negotiation.RejectReason), negotiation.Version,
		negotiation.CreatedAt, negotiation.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert negotiation: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("negotiation insert id: %w", err)
	}
	negotiation.ID = id
	return nil
}

// Update applies the transition only if nobody else updated the row
// since it was read. Zero affected rows with an existing id means the
// version check lost.
func (r *NegotiationRepository) Update(ctx context.Context, negotiation *model.Negotiation) error {
	query := `
		UPDATE negotiations
		SET offered_price = ?, status = ?, reject_reason = ?, version = version + 1, updated_at = ?
		WHERE id = ? AND version = ?
	`
	res, err := r.db.ExecContext(ctx, query,
		negotiation.OfferedPrice, negotiation.Status, nullString(negotiation.RejectReason),
		negotiation.UpdatedAt, negotiation.ID, negotiation.Version,
	)
	if err != nil {
		return fmt.Errorf("update negotiation %d: %w", negotiation.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("negotiation update result: %w", err)
	}
	if affected == 0 {
		if _, err := r.GetByID(ctx, negotiation.ID); errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("negotiation %d: %w", negotiation.ID, apperrors.ErrVersionConflict)
	}
	negotiation.Version++
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
