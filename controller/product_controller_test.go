package controller_test

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"negotiation-api/model"
)

func TestGetAllProducts_ReturnsProductList(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodGet, server.URL+"/Products", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var products []model.Product
	decodeInto(t, resp, &products)
	require.NotEmpty(t, products)

	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.ProductName)
	}
	assert.Contains(t, names, "Laptop")
}

func TestGetProductByID_WhenExists(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodGet, server.URL+"/Products/1", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var product model.Product
	decodeInto(t, resp, &product)
	assert.Equal(t, int64(1), product.ID)
	assert.Equal(t, "Laptop", product.ProductName)
}

func TestGetProductByID_Returns404_WhenNotFound(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodGet, server.URL+"/Products/999", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAddProduct_ReturnsUnauthorized_WithoutToken(t *testing.T) {
	server := newTestServer(t)

	dto := model.CreateProductDto{
		ProductName: "Tablet",
		BasePrice:   decimal.RequireFromString("1234.56"),
	}
	resp := doJSON(t, http.MethodPost, server.URL+"/Products", dto, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAddProduct_ReturnsCreated_WithStaffToken(t *testing.T) {
	server := newTestServer(t)

	dto := model.CreateProductDto{
		ProductName: "Tablet",
		BasePrice:   decimal.RequireFromString("1234.56"),
	}
	resp := doJSON(t, http.MethodPost, server.URL+"/Products", dto, staffToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var product model.Product
	decodeInto(t, resp, &product)
	assert.NotZero(t, product.ID)
	assert.Equal(t, "Tablet", product.ProductName)
	assert.True(t, product.BasePrice.Equal(dto.BasePrice))

	// Created products are immediately readable.
	resp = doJSON(t, http.MethodGet, server.URL+"/Products/3", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAddProduct_RejectsInvalidBody(t *testing.T) {
	server := newTestServer(t)

	cases := []struct {
		name string
		dto  model.CreateProductDto
	}{
		{"empty name", model.CreateProductDto{BasePrice: decimal.RequireFromString("10.00")}},
		{"zero price", model.CreateProductDto{ProductName: "Tablet"}},
		{"negative price", model.CreateProductDto{ProductName: "Tablet", BasePrice: decimal.RequireFromString("-1")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, http.MethodPost, server.URL+"/Products", tc.dto, staffToken)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}
