package controller

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"negotiation-api/model"
	"negotiation-api/pkg/auth"
	"negotiation-api/usecase"
)

type ProductController struct {
	usecase  *usecase.ProductUsecase
	verifier *auth.Verifier
}

func NewProductController(usecase *usecase.ProductUsecase, verifier *auth.Verifier) *ProductController {
	return &ProductController{usecase: usecase, verifier: verifier}
}

func (c *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := c.usecase.GetAllProducts(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if products == nil {
		products = []model.Product{}
	}
	respondJSON(w, http.StatusOK, products)
}

func (c *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	product, err := c.usecase.GetProductByID(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// AddProduct is staff-only: the token check runs before the body is
// even read, so unauthenticated callers cannot probe validation.
func (c *ProductController) AddProduct(w http.ResponseWriter, r *http.Request) {
	if !c.verifier.IsStaff(r) {
		respondError(w, http.StatusUnauthorized, "staff token required")
		return
	}

	var dto model.CreateProductDto
	if !decodeBody(w, r, &dto) {
		return
	}
	if err := dto.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := c.usecase.CreateProduct(r.Context(), dto)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, product)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
