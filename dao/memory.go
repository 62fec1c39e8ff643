package dao

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"negotiation-api/model"
	"negotiation-api/pkg/apperrors"
)

// MemoryProductRepository implements usecase.ProductRepository in memory.
// Used by tests and when the service runs without MySQL.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	nextID   int64
	products map[int64]model.Product
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		nextID:   1,
		products: make(map[int64]model.Product),
	}
}

func (r *MemoryProductRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]model.Product, 0, len(r.products))
	for id := int64(1); id < r.nextID; id++ {
		if p, ok := r.products[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

func (r *MemoryProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, apperrors.ErrNotFound)
	}
	return &p, nil
}

func (r *MemoryProductRepository) Insert(ctx context.Context, product *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	r.products[product.ID] = *product
	return nil
}

// MemoryNegotiationRepository implements usecase.NegotiationRepository
// in memory with the same optimistic version check the MySQL
// repository enforces.
type MemoryNegotiationRepository struct {
	mu           sync.RWMutex
	nextID       int64
	negotiations map[int64]model.Negotiation
}

func NewMemoryNegotiationRepository() *MemoryNegotiationRepository {
	return &MemoryNegotiationRepository{
		nextID:       1,
		negotiations: make(map[int64]model.Negotiation),
	}
}

func (r *MemoryNegotiationRepository) GetByID(ctx context.Context, id int64) (*model.Negotiation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.negotiations[id]
	if !ok {
		return nil, fmt.Errorf("negotiation %d: %w", id, apperrors.ErrNotFound)
	}
	return &n, nil
}

func (r *MemoryNegotiationRepository) Insert(ctx context.Context, negotiation *model.Negotiation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	negotiation.ID = r.nextID
	r.nextID++
	r.negotiations[negotiation.ID] = *negotiation
	return nil
}

func (r *MemoryNegotiationRepository) Update(ctx context.Context, negotiation *model.Negotiation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.negotiations[negotiation.ID]
	if !ok {
		return fmt.Errorf("negotiation %d: %w", negotiation.ID, apperrors.ErrNotFound)
	}
	if stored.Version != negotiation.Version {
		return fmt.Errorf("negotiation %d: %w", negotiation.ID, apperrors.ErrVersionConflict)
	}
	negotiation.Version++
	r.negotiations[negotiation.ID] = *negotiation
	return nil
}

// Seed loads the canonical fixtures: two products and two open
// negotiations against the Laptop.
func Seed(products *MemoryProductRepository, negotiations *MemoryNegotiationRepository) error {
	ctx := context.Background()
	now := time.Now()

	fixtures := []model.Product{
		{ProductName: "Laptop", BasePrice: decimal.RequireFromString("2999.99")},
		{ProductName: "Smartphone", BasePrice: decimal.RequireFromString("899.00")},
	}
	for i := range fixtures {
		if err := products.Insert(ctx, &fixtures[i]); err != nil {
			return err
		}
	}

	openOffers := []model.Negotiation{
		{ProductID: 1, CustomerEmail: "customer1@customer.com", OfferedPrice: decimal.RequireFromString("2500.00"), Status: model.StatusActive, CreatedAt: now, UpdatedAt: now},
		{ProductID: 1, CustomerEmail: "customer2@customer.com", OfferedPrice: decimal.RequireFromString("2000.00"), Status: model.StatusActive, CreatedAt: now, UpdatedAt: now},
		{ProductID: 1, CustomerEmail: "customer3@customer.com", OfferedPrice: decimal.RequireFromString("1000.00"), Status: model.StatusActive, CreatedAt: now, UpdatedAt: now},
	}
	for i := range openOffers {
		if err := negotiations.Insert(ctx, &openOffers[i]); err != nil {
			return err
		}
	}
	return nil
}
