package usecase

import (
	"context"

	"go.uber.org/zap"

	"negotiation-api/model"
)

type ProductUsecase struct {
	productRepo ProductRepository
	publisher   EventPublisher
	logger      *zap.Logger
}

func NewProductUsecase(productRepo ProductRepository, publisher EventPublisher, logger *zap.Logger) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func (u *ProductUsecase) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	return u.productRepo.GetAll(ctx)
}

func (u *ProductUsecase) GetProductByID(ctx context.Context, id int64) (*model.Product, error) {
	return u.productRepo.GetByID(ctx, id)
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, dto model.CreateProductDto) (*model.Product, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	product := &model.Product{
		ProductName: dto.ProductName,
		BasePrice:   dto.BasePrice.Round(2),
	}
	if err := u.productRepo.Insert(ctx, product); err != nil {
		return nil, err
	}

	if err := u.publisher.Publish(ctx, "product.created", product); err != nil {
		u.logger.Warn("failed to publish product.created",
			zap.Int64("product_id", product.ID), zap.Error(err))
	}
	return product, nil
}
