package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"negotiation-api/model"
	"negotiation-api/pkg/apperrors"
)

type NegotiationUsecase struct {
	negotiationRepo NegotiationRepository
	productRepo     ProductRepository
	publisher       EventPublisher
	logger          *zap.Logger
}

func NewNegotiationUsecase(negotiationRepo NegotiationRepository, productRepo ProductRepository, publisher EventPublisher, logger *zap.Logger) *NegotiationUsecase {
	return &NegotiationUsecase{
		negotiationRepo: negotiationRepo,
		productRepo:     productRepo,
		publisher:       publisher,
		logger:          logger,
	}
}

func (u *NegotiationUsecase) GetNegotiationByID(ctx context.Context, id int64) (*model.Negotiation, error) {
	return u.negotiationRepo.GetByID(ctx, id)
}

// StartNegotiation opens a new Active negotiation. The product must
// exist; an unknown product id surfaces as ErrInvalidProduct rather
// than ErrNotFound, since it arrives in the request body, not the path.
func (u *NegotiationUsecase) StartNegotiation(ctx context.Context, dto model.StartNegotiationDto) (*model.Negotiation, error) {
	product, err := u.productRepo.GetByID(ctx, dto.ProductID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: product %d does not exist", apperrors.ErrInvalidProduct, dto.ProductID)
		}
		return nil, err
	}

	negotiation, err := model.NewNegotiation(product, dto.CustomerEmail, dto.OfferedPrice)
	if err != nil {
		return nil, err
	}
	if err := u.negotiationRepo.Insert(ctx, negotiation); err != nil {
		return nil, err
	}

	u.publish(ctx, "negotiation.started", negotiation)
	return negotiation, nil
}

func (u *NegotiationUsecase) ProposeNewOffer(ctx context.Context, id int64, newPrice decimal.Decimal) (*model.Negotiation, error) {
	negotiation, err := u.negotiationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := negotiation.ProposeNewOffer(newPrice); err != nil {
		return nil, err
	}
	if err := u.negotiationRepo.Update(ctx, negotiation); err != nil {
		return nil, err
	}

	u.publish(ctx, "negotiation.reoffered", negotiation)
	return negotiation, nil
}

func (u *NegotiationUsecase) RejectNegotiation(ctx context.Context, id int64, reason string) (*model.Negotiation, error) {
	negotiation, err := u.negotiationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := negotiation.Reject(reason); err != nil {
		return nil, err
	}
	if err := u.negotiationRepo.Update(ctx, negotiation); err != nil {
		return nil, err
	}

	u.publish(ctx, "negotiation.rejected", negotiation)
	return negotiation, nil
}

func (u *NegotiationUsecase) AcceptNegotiation(ctx context.Context, id int64) (*model.Negotiation, error) {
	negotiation, err := u.negotiationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := negotiation.Accept(); err != nil {
		return nil, err
	}
	if err := u.negotiationRepo.Update(ctx, negotiation); err != nil {
		return nil, err
	}

	u.publish(ctx, "negotiation.accepted", negotiation)
	return negotiation, nil
}

func (u *NegotiationUsecase) publish(ctx context.Context, routingKey string, negotiation *model.Negotiation) {
	if err := u.publisher.Publish(ctx, routingKey, negotiation); err != nil {
		u.logger.Warn("failed to publish negotiation event",
			zap.String("routing_key", routingKey),
			zap.Int64("negotiation_id", negotiation.ID),
			zap.Error(err))
	}
}
