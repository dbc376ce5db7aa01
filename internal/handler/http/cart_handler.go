package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ShivChilu/fresh-meat/internal/auth"
	"github.com/ShivChilu/fresh-meat/internal/cart"
	"github.com/ShivChilu/fresh-meat/internal/catalog"
)

type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
}

type SetCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse is the cart view returned by every cart endpoint: the exact
// total plus a 2-decimal display total and the distinct line count for the
// badge.
type CartResponse struct {
	Items        []cart.LineItem `json:"items"`
	Total        float64         `json:"total"`
	DisplayTotal float64         `json:"display_total"`
	Count        int             `json:"count"`
}

func cartResponse(c cart.Cart) CartResponse {
	items := c.Items
	if items == nil {
		items = []cart.LineItem{}
	}
	return CartResponse{
		Items:        items,
		Total:        c.Total(),
		DisplayTotal: c.DisplayTotal(),
		Count:        c.Count(),
	}
}

type CartHandler struct {
	carts    cart.Service
	products catalog.Service
	validate *validator.Validate
}

func NewCartHandler(carts cart.Service, products catalog.Service) *CartHandler {
	return &CartHandler{
		carts:    carts,
		products: products,
		validate: validator.New(),
	}
}

func (h *CartHandler) RegisterRoutes(router chi.Router, requireCustomer func(http.Handler) http.Handler) {
	router.Route("/api/cart", func(r chi.Router) {
		r.Use(requireCustomer)
		r.Get("/", h.handleGetCart)
		r.Delete("/", h.handleClearCart)
		r.Post("/items", h.handleAddItem)
		r.Put("/items/{productID}", h.handleSetQuantity)
		r.Delete("/items/{productID}", h.handleRemoveItem)
	})
}

func customerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		respondWithDetail(w, http.StatusUnauthorized, "Not authenticated")
		return uuid.Nil, false
	}
	return id, true
}

func productIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.FromString(chi.URLParam(r, "productID"))
	if err != nil {
		respondWithDetail(w, http.StatusBadRequest, "Invalid product id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *CartHandler) handleGetCart(w http.ResponseWriter, r *http.Request) {
	id, ok := customerID(w, r)
	if !ok {
		return
	}

	c, err := h.carts.Get(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load cart")
		respondWithDetail(w, http.StatusInternalServerError, "Failed to load cart")
		return
	}

	respondWithJSON(w, http.StatusOK, cartResponse(c))
}

func (h *CartHandler) handleAddItem(w http.ResponseWriter, r *http.Request) {
	id, ok := customerID(w, r)
	if !ok {
		return
	}

	var req AddCartItemRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	productID, err := uuid.FromString(req.ProductID)
	if err != nil {
		respondWithDetail(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, err := h.products.GetProduct(r.Context(), productID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondWithDetail(w, http.StatusNotFound, "Product not found")
			return
		}
		log.Error().Err(err).Msg("Failed to load product for cart add")
		respondWithDetail(w, http.StatusInternalServerError, "Failed to add to cart")
		return
	}

	c, err := h.carts.Add(r.Context(), id, *product)
	if err != nil {
		log.Error().Err(err).Msg("Failed to add to cart")
		respondWithDetail(w, http.StatusInternalServerError, "Failed to add to cart")
		return
	}

	respondWithJSON(w, http.StatusOK, cartResponse(c))
}

func (h *CartHandler) handleSetQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := customerID(w, r)
	if !ok {
		return
	}
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	var req SetCartQuantityRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	c, err := h.carts.SetQuantity(r.Context(), id, productID, req.Quantity)
	if err != nil {
		log.Error().Err(err).Msg("Failed to update cart quantity")
		respondWithDetail(w, http.StatusInternalServerError, "Failed to update cart")
		return
	}

	respondWithJSON(w, http.StatusOK, cartResponse(c))
}

func (h *CartHandler) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := customerID(w, r)
	if !ok {
		return
	}
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	c, err := h.carts.Remove(r.Context(), id, productID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to remove cart item")
		respondWithDetail(w, http.StatusInternalServerError, "Failed to update cart")
		return
	}

	respondWithJSON(w, http.StatusOK, cartResponse(c))
}

func (h *CartHandler) handleClearCart(w http.ResponseWriter, r *http.Request) {
	id, ok := customerID(w, r)
	if !ok {
		return
	}

	if err := h.carts.Clear(r.Context(), id); err != nil {
		log.Error().Err(err).Msg("Failed to clear cart")
		respondWithDetail(w, http.StatusInternalServerError, "Failed to clear cart")
		return
	}

	respondWithJSON(w, http.StatusOK, cartResponse(cart.Cart{}))
}
