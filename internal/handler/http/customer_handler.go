package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/ShivChilu/fresh-meat/internal/auth"
	"github.com/ShivChilu/fresh-meat/internal/cart"
	"github.com/ShivChilu/fresh-meat/internal/customer"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=3"`
	Phone    string `json:"phone" validate:"required"`
}

type CustomerLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	Role         string `json:"role"`
	CustomerName string `json:"customer_name,omitempty"`
	Message      string `json:"message,omitempty"`
}

type CustomerHandler struct {
	service  customer.Service
	carts    cart.Service
	tokens   *auth.TokenManager
	validate *validator.Validate
}

func NewCustomerHandler(service customer.Service, carts cart.Service, tokens *auth.TokenManager) *CustomerHandler {
	return &CustomerHandler{
		service:  service,
		carts:    carts,
		tokens:   tokens,
		validate: validator.New(),
	}
}

func (h *CustomerHandler) RegisterRoutes(router chi.Router, requireCustomer func(http.Handler) http.Handler) {
	router.Post("/api/customer/register", h.handleRegister)
	router.Post("/api/customer/login", h.handleLogin)
	router.With(requireCustomer).Post("/api/customer/logout", h.handleLogout)
}

func (h *CustomerHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	c, err := h.service.Register(r.Context(), req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, customer.ErrEmailExists) {
			respondWithDetail(w, http.StatusBadRequest, "Email already registered")
			return
		}
		log.Error().Err(err).Msg("Failed to register customer")
		respondWithDetail(w, mapErrorToStatusCode(err), "Registration failed")
		return
	}

	token, err := h.tokens.Mint(c.ID, auth.RoleCustomer)
	if err != nil {
		log.Error().Err(err).Msg("Failed to mint token")
		respondWithDetail(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	respondWithJSON(w, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Role:        auth.RoleCustomer,
		Message:     "Registration successful",
	})
}

func (h *CustomerHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req CustomerLoginRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	c, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, customer.ErrInvalidCredentials) {
			respondWithDetail(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Error().Err(err).Msg("Failed to log in customer")
		respondWithDetail(w, mapErrorToStatusCode(err), "Login failed")
		return
	}

	token, err := h.tokens.Mint(c.ID, auth.RoleCustomer)
	if err != nil {
		log.Error().Err(err).Msg("Failed to mint token")
		respondWithDetail(w, http.StatusInternalServerError, "Login failed")
		return
	}

	respondWithJSON(w, http.StatusOK, TokenResponse{
		AccessToken:  token,
		TokenType:    "bearer",
		Role:         auth.RoleCustomer,
		CustomerName: c.Name,
	})
}

// handleLogout drops the server-side cart snapshot. The token itself is
// stateless; discarding it is the client's side of logout.
func (h *CustomerHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	customerID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		respondWithDetail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	if err := h.carts.Clear(r.Context(), customerID); err != nil {
		log.Error().Err(err).Msg("Failed to clear cart on logout")
		respondWithDetail(w, http.StatusInternalServerError, "Logout failed")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}
