package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"negotiation-api/pkg/middleware"
)

// NewRouter wires the HTTP surface. Paths keep the capitalized resource
// names of the public API contract.
func NewRouter(products *ProductController, negotiations *NegotiationController, logger *zap.Logger) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging(logger))
	router.Use(middleware.Recover(logger))

	router.HandleFunc("/Products", products.GetProducts).Methods(http.MethodGet)
	router.HandleFunc("/Products", products.AddProduct).Methods(http.MethodPost)
	router.HandleFunc("/Products/{id}", products.GetProductByID).Methods(http.MethodGet)

	router.HandleFunc("/Negotiations", negotiations.StartNegotiation).Methods(http.MethodPost)
	router.HandleFunc("/Negotiations/{id}", negotiations.GetNegotiationByID).Methods(http.MethodGet)
	router.HandleFunc("/Negotiations/{id}/reject", negotiations.RejectNegotiation).Methods(http.MethodPatch)
	router.HandleFunc("/Negotiations/{id}/accept", negotiations.AcceptNegotiation).Methods(http.MethodPatch)
	router.HandleFunc("/Negotiations/{id}/reoffer", negotiations.ProposeNewOffer).Methods(http.MethodPatch)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	return router
}
