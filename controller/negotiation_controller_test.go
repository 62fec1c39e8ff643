package controller_test

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"negotiation-api/model"
)

func getNegotiation(t *testing.T, serverURL string, id string) model.Negotiation {
	t.Helper()
	resp := doJSON(t, http.MethodGet, serverURL+"/Negotiations/"+id, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var n model.Negotiation
	decodeInto(t, resp, &n)
	return n
}

func TestGetNegotiationByID_WhenExists(t *testing.T) {
	server := newTestServer(t)

	n := getNegotiation(t, server.URL, "2")
	assert.Equal(t, int64(2), n.ID)
	assert.Equal(t, model.StatusActive, n.Status)
}

func TestGetNegotiationByID_Returns404_WhenNotFound(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodGet, server.URL+"/Negotiations/999", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStartNegotiation_ReturnsCreated(t *testing.T) {
	server := newTestServer(t)

	dto := model.StartNegotiationDto{
		ProductID:     1,
		CustomerEmail: "test@example.com",
		OfferedPrice:  decimal.RequireFromString("2500.00"),
	}
	resp := doJSON(t, http.MethodPost, server.URL+"/Negotiations", dto, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var n model.Negotiation
	decodeInto(t, resp, &n)
	assert.Equal(t, dto.CustomerEmail, n.CustomerEmail)
	assert.True(t, n.OfferedPrice.Equal(dto.OfferedPrice))
	assert.Equal(t, model.StatusActive, n.Status)
}

func TestStartNegotiation_ReturnsBadRequest_WhenProductInvalid(t *testing.T) {
	server := newTestServer(t)

	dto := model.StartNegotiationDto{
		ProductID:     999,
		CustomerEmail: "test@example.com",
		OfferedPrice:  decimal.RequireFromString("1000.00"),
	}
	resp := doJSON(t, http.MethodPost, server.URL+"/Negotiations", dto, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStartNegotiation_ReturnsBadRequest_WhenOfferInvalid(t *testing.T) {
	server := newTestServer(t)

	cases := []struct {
		name string
		dto  model.StartNegotiationDto
	}{
		{"non-positive price", model.StartNegotiationDto{ProductID: 1, CustomerEmail: "test@example.com"}},
		{"malformed email", model.StartNegotiationDto{ProductID: 1, CustomerEmail: "nope", OfferedPrice: decimal.RequireFromString("100.00")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, http.MethodPost, server.URL+"/Negotiations", tc.dto, "")
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestRejectNegotiation_ReturnsUnauthorized_WithoutToken(t *testing.T) {
	server := newTestServer(t)

	dto := model.RejectNegotiationDto{Reason: "Not enough margin"}
	resp := doJSON(t, http.MethodPatch, server.URL+"/Negotiations/2/reject", dto, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// The state machine was never reached.
	n := getNegotiation(t, server.URL, "2")
	assert.Equal(t, model.StatusActive, n.Status)
}

func TestRejectNegotiation_WithStaffToken(t *testing.T) {
	server := newTestServer(t)

	dto := model.RejectNegotiationDto{Reason: "Not enough margin"}
	resp := doJSON(t, http.MethodPatch, server.URL+"/Negotiations/2/reject", dto, staffToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var n model.Negotiation
	decodeInto(t, resp, &n)
	assert.Equal(t, model.StatusRejected, n.Status)
	assert.Equal(t, "Not enough margin", n.RejectReason)

	// Terminal: a second reject fails.
	resp = doJSON(t, http.MethodPatch, server.URL+"/Negotiations/2/reject", dto, staffToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAcceptNegotiation_ReturnsUnauthorized_WithoutToken(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodPatch, server.URL+"/Negotiations/2/accept", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAcceptNegotiation_WithStaffToken(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodPatch, server.URL+"/Negotiations/2/accept", nil, staffToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var n model.Negotiation
	decodeInto(t, resp, &n)
	assert.Equal(t, model.StatusAccepted, n.Status)

	// Accepted is terminal too.
	resp = doJSON(t, http.MethodPatch, server.URL+"/Negotiations/2/accept", nil, staffToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProposeNewOffer_ReturnsBadRequest_WhenPriceHigher(t *testing.T) {
	server := newTestServer(t)

	// Negotiation 3 stands at 1000.00.
	dto := model.NewOfferDto{
		CustomerEmail: "customer3@customer.com",
		NewPrice:      decimal.RequireFromString("1100.00"),
	}
	resp := doJSON(t, http.MethodPatch, server.URL+"/Negotiations/3/reoffer", dto, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	n := getNegotiation(t, server.URL, "3")
	assert.True(t, n.OfferedPrice.Equal(decimal.RequireFromString("1000.00")))
}

func TestProposeNewOffer_LowersPrice(t *testing.T) {
	server := newTestServer(t)

	dto := model.NewOfferDto{
		CustomerEmail: "customer3@customer.com",
		NewPrice:      decimal.RequireFromString("900.00"),
	}
	resp := doJSON(t, http.MethodPatch, server.URL+"/Negotiations/3/reoffer", dto, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var n model.Negotiation
	decodeInto(t, resp, &n)
	assert.Equal(t, model.StatusActive, n.Status)
	assert.True(t, n.OfferedPrice.Equal(dto.NewPrice))
}

func TestProposeNewOffer_ReturnsBadRequest_WhenTerminal(t *testing.T) {
	server := newTestServer(t)

	reject := model.RejectNegotiationDto{Reason: "closing"}
	resp := doJSON(t, http.MethodPatch, server.URL+"/Negotiations/3/reject", reject, staffToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Even a genuine concession is refused once the thread is closed.
	dto := model.NewOfferDto{
		CustomerEmail: "customer3@customer.com",
		NewPrice:      decimal.RequireFromString("1.00"),
	}
	resp = doJSON(t, http.MethodPatch, server.URL+"/Negotiations/3/reoffer", dto, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	n := getNegotiation(t, server.URL, "3")
	assert.Equal(t, model.StatusRejected, n.Status)
	assert.True(t, n.OfferedPrice.Equal(decimal.RequireFromString("1000.00")))
}

func TestHealth(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodGet, server.URL+"/health", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
