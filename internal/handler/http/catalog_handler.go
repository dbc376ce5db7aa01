package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/ShivChilu/fresh-meat/internal/catalog"
)

type CatalogHandler struct {
	service catalog.Service
}

func NewCatalogHandler(service catalog.Service) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) RegisterRoutes(router chi.Router) {
	router.Get("/api/products", h.handleListProducts)
}

// handleListProducts serves the public catalog. The optional "category" and
// "q" query parameters narrow the list server-side with the same semantics
// the storefront uses for its visible subset.
func (h *CatalogHandler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")

	products, err := h.service.VisibleProducts(r.Context(), category, query)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list products")
		respondWithDetail(w, http.StatusInternalServerError, "Failed to load products")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"products": products})
}
