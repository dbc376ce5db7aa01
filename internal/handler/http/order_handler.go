package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/ShivChilu/fresh-meat/internal/order"
)

type OrderHandler struct {
	service order.Service
}

func NewOrderHandler(service order.Service) *OrderHandler {
	return &OrderHandler{service: service}
}

func (h *OrderHandler) RegisterRoutes(router chi.Router, requireCustomer func(http.Handler) http.Handler) {
	router.With(requireCustomer).Post("/api/customer/orders", h.handleCheckout)
	router.With(requireCustomer).Get("/api/customer/orders", h.handleListOrders)
}

// handleCheckout places an order from the customer's current cart. The cart
// survives any failure so the customer can retry; there is no dedup of rapid
// double submissions.
func (h *OrderHandler) handleCheckout(w http.ResponseWriter, r *http.Request) {
	id, ok := customerID(w, r)
	if !ok {
		return
	}

	o, err := h.service.Checkout(r.Context(), id)
	if err != nil {
		if errors.Is(err, order.ErrEmptyCart) {
			respondWithDetail(w, http.StatusBadRequest, "Cart is empty")
			return
		}
		log.Error().Err(err).Msg("Failed to place order")
		respondWithDetail(w, http.StatusInternalServerError, "Failed to place order")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Order placed successfully",
		"order_id": o.ID,
	})
}

func (h *OrderHandler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	id, ok := customerID(w, r)
	if !ok {
		return
	}

	orders, err := h.service.OrdersByCustomer(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list customer orders")
		respondWithDetail(w, http.StatusInternalServerError, "Failed to load orders")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}
