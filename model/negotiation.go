package model

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/shopspring/decimal"

	"negotiation-api/pkg/apperrors"
)

type NegotiationStatus string

const (
	StatusActive   NegotiationStatus = "Active"
	StatusRejected NegotiationStatus = "Rejected"
	StatusAccepted NegotiationStatus = "Accepted"
)

// Negotiation is a single buyer/seller offer thread for one product.
// Rejected and Accepted are terminal: no transition leaves them.
type Negotiation struct {
	ID            int64             `json:"id"`
	ProductID     int64             `json:"productId"`
	CustomerEmail string            `json:"customerEmail"`
	OfferedPrice  decimal.Decimal   `json:"offeredPrice"`
	Status        NegotiationStatus `json:"status"`
	RejectReason  string            `json:"rejectReason,omitempty"`
	Version       int64             `json:"-"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

type StartNegotiationDto struct {
	ProductID     int64           `json:"productId"`
	CustomerEmail string          `json:"customerEmail"`
	OfferedPrice  decimal.Decimal `json:"offeredPrice"`
}

type RejectNegotiationDto struct {
	Reason string `json:"reason"`
}

type NewOfferDto struct {
	CustomerEmail string          `json:"customerEmail"`
	NewPrice      decimal.Decimal `json:"newPrice"`
}

// NewNegotiation builds an Active negotiation against an already
// resolved product. Product existence is the caller's problem; price
// and email validity are checked here.
func NewNegotiation(product *Product, customerEmail string, offeredPrice decimal.Decimal) (*Negotiation, error) {
	if !offeredPrice.IsPositive() {
		return nil, fmt.Errorf("%w: offeredPrice must be positive", apperrors.ErrInvalidOffer)
	}
	if err := validateEmail(customerEmail); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidOffer, err)
	}
	now := time.Now()
	return &Negotiation{
		ProductID:     product.ID,
		CustomerEmail: customerEmail,
		OfferedPrice:  offeredPrice.Round(2),
		Status:        StatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// ProposeNewOffer lowers the offered price, keeping the negotiation
// Active. A counter-offer must be a concession: equal or higher prices
// are not improvements. The terminal check runs first so that a
// re-offer against a closed negotiation always reports the state, not
// the price.
func (n *Negotiation) ProposeNewOffer(newPrice decimal.Decimal) error {
	if n.Status != StatusActive {
		return fmt.Errorf("%w: negotiation is %s", apperrors.ErrInvalidStateTransition, n.Status)
	}
	if !newPrice.IsPositive() {
		return fmt.Errorf("%w: newPrice must be positive", apperrors.ErrInvalidOffer)
	}
	if newPrice.Round(2).Cmp(n.OfferedPrice) >= 0 {
		return fmt.Errorf("%w: %s is not lower than %s", apperrors.ErrOfferNotImproved, newPrice, n.OfferedPrice)
	}
	n.OfferedPrice = newPrice.Round(2)
	n.UpdatedAt = time.Now()
	return nil
}

func (n *Negotiation) Reject(reason string) error {
	if n.Status != StatusActive {
		return fmt.Errorf("%w: negotiation is %s", apperrors.ErrInvalidStateTransition, n.Status)
	}
	n.Status = StatusRejected
	n.RejectReason = reason
	n.UpdatedAt = time.Now()
	return nil
}

func (n *Negotiation) Accept() error {
	if n.Status != StatusActive {
		return fmt.Errorf("%w: negotiation is %s", apperrors.ErrInvalidStateTransition, n.Status)
	}
	n.Status = StatusAccepted
	n.UpdatedAt = time.Now()
	return nil
}

func validateEmail(addr string) error {
	if addr == "" {
		return fmt.Errorf("customerEmail must not be empty")
	}
	if _, err := mail.ParseAddress(addr); err != nil {
		return fmt.Errorf("customerEmail is malformed: %v", err)
	}
	return nil
}
