package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/ShivChilu/fresh-meat/internal/admin"
	"github.com/ShivChilu/fresh-meat/internal/auth"
	"github.com/ShivChilu/fresh-meat/internal/cart"
	"github.com/ShivChilu/fresh-meat/internal/catalog"
	"github.com/ShivChilu/fresh-meat/internal/customer"
	"github.com/ShivChilu/fresh-meat/internal/order"
)

// Services bundles everything the router wires into handlers.
type Services struct {
	Catalog   catalog.Service
	Carts     cart.Service
	Orders    order.Service
	Customers customer.Service
	Admins    admin.Service
	Tokens    *auth.TokenManager
}

func NewRouter(s Services) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"message": "Meat Delivery API is running",
		})
	})

	requireCustomer := s.Tokens.RequireRole(auth.RoleCustomer)
	requireAdmin := s.Tokens.RequireRole(auth.RoleAdmin)

	NewCatalogHandler(s.Catalog).RegisterRoutes(r)
	NewCustomerHandler(s.Customers, s.Carts, s.Tokens).RegisterRoutes(r, requireCustomer)
	NewCartHandler(s.Carts, s.Catalog).RegisterRoutes(r, requireCustomer)
	NewOrderHandler(s.Orders).RegisterRoutes(r, requireCustomer)
	NewAdminHandler(s.Admins, s.Catalog, s.Tokens).RegisterRoutes(r, requireAdmin)

	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}
