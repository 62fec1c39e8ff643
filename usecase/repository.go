package usecase

import (
	"context"

	"negotiation-api/model"
)

// ProductRepository is the catalog store consumed by the usecases.
// Implementations return apperrors.ErrNotFound for unknown ids.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	Insert(ctx context.Context, product *model.Product) error
}

// NegotiationRepository is the negotiation store. Update must apply the
// read-modify-write atomically: it compares the entity's version
// against the stored one and returns apperrors.ErrVersionConflict when
// a concurrent writer got there first.
type NegotiationRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Negotiation, error)
	Insert(ctx context.Context, negotiation *model.Negotiation) error
	Update(ctx context.Context, negotiation *model.Negotiation) error
}

// EventPublisher receives negotiation lifecycle events. Publishing is
// best-effort; usecases log failures but never fail the request on them.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}
