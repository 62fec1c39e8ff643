package controller

import (
	"net/http"
	"strings"

	"negotiation-api/model"
	"negotiation-api/pkg/auth"
	"negotiation-api/usecase"
)

type NegotiationController struct {
	usecase  *usecase.NegotiationUsecase
	verifier *auth.Verifier
}

func NewNegotiationController(usecase *usecase.NegotiationUsecase, verifier *auth.Verifier) *NegotiationController {
	return &NegotiationController{usecase: usecase, verifier: verifier}
}

func (c *NegotiationController) GetNegotiationByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	negotiation, err := c.usecase.GetNegotiationByID(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, negotiation)
}

func (c *NegotiationController) StartNegotiation(w http.ResponseWriter, r *http.Request) {
	var dto model.StartNegotiationDto
	if !decodeBody(w, r, &dto) {
		return
	}
	negotiation, err := c.usecase.StartNegotiation(r.Context(), dto)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, negotiation)
}

// RejectNegotiation is staff-only; an unauthenticated attempt never
// reaches the state machine.
func (c *NegotiationController) RejectNegotiation(w http.ResponseWriter, r *http.Request) {
	if !c.verifier.IsStaff(r) {
		respondError(w, http.StatusUnauthorized, "staff token required")
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var dto model.RejectNegotiationDto
	if !decodeBody(w, r, &dto) {
		return
	}

	negotiation, err := c.usecase.RejectNegotiation(r.Context(), id, dto.Reason)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, negotiation)
}

// AcceptNegotiation is staff-gated like Reject.
func (c *NegotiationController) AcceptNegotiation(w http.ResponseWriter, r *http.Request) {
	if !c.verifier.IsStaff(r) {
		respondError(w, http.StatusUnauthorized, "staff token required")
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}
	negotiation, err := c.usecase.AcceptNegotiation(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, negotiation)
}

func (c *NegotiationController) ProposeNewOffer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var dto model.NewOfferDto
	if !decodeBody(w, r, &dto) {
		return
	}
	if strings.TrimSpace(dto.CustomerEmail) == "" {
		respondError(w, http.StatusBadRequest, "customerEmail must not be empty")
		return
	}

	negotiation, err := c.usecase.ProposeNewOffer(r.Context(), id, dto.NewPrice)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, negotiation)
}
