package http

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ShivChilu/fresh-meat/internal/admin"
	"github.com/ShivChilu/fresh-meat/internal/auth"
	"github.com/ShivChilu/fresh-meat/internal/catalog"
)

const maxUploadBytes = 5 << 20

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category" validate:"required"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Image       string  `json:"image"`
	Weight      string  `json:"weight"`
}

type AdminHandler struct {
	admins   admin.Service
	products catalog.Service
	tokens   *auth.TokenManager
	validate *validator.Validate
}

func NewAdminHandler(admins admin.Service, products catalog.Service, tokens *auth.TokenManager) *AdminHandler {
	return &AdminHandler{
		admins:   admins,
		products: products,
		tokens:   tokens,
		validate: validator.New(),
	}
}

func (h *AdminHandler) RegisterRoutes(router chi.Router, requireAdmin func(http.Handler) http.Handler) {
	router.Post("/api/admin/login", h.handleLogin)

	router.Route("/api/admin", func(r chi.Router) {
		r.Use(requireAdmin)
		r.Get("/dashboard", h.handleDashboard)
		r.Get("/products", h.handleListProducts)
		r.Post("/products", h.handleAddProduct)
		r.Put("/products/{id}", h.handleUpdateProduct)
		r.Delete("/products/{id}", h.handleDeleteProduct)
		r.Get("/orders", h.handleListOrders)
		r.Get("/customers", h.handleListCustomers)
		r.Post("/upload", h.handleUpload)
	})
}

func (h *AdminHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req AdminLoginRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	a, err := h.admins.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			respondWithDetail(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Error().Err(err).Msg("Failed to log in admin")
		respondWithDetail(w, http.StatusInternalServerError, "Login failed")
		return
	}

	token, err := h.tokens.Mint(a.ID, auth.RoleAdmin)
	if err != nil {
		log.Error().Err(err).Msg("Failed to mint token")
		respondWithDetail(w, http.StatusInternalServerError, "Login failed")
		return
	}

	respondWithJSON(w, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Role:        auth.RoleAdmin,
	})
}

func (h *AdminHandler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.admins.Dashboard(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to load dashboard")
		respondWithDetail(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	respondWithJSON(w, http.StatusOK, d)
}

func (h *AdminHandler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListProducts(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list products")
		respondWithDetail(w, http.StatusInternalServerError, "Failed to load products")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"products": products})
}

func (h *AdminHandler) handleAddProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	p := &catalog.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		Image:       req.Image,
		Weight:      req.Weight,
	}

	if err := h.products.AddProduct(r.Context(), p); err != nil {
		log.Error().Err(err).Msg("Failed to add product")
		respondWithDetail(w, mapErrorToStatusCode(err), err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Product added successfully",
		"product_id": p.ID,
	})
}

func (h *AdminHandler) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		respondWithDetail(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	var req ProductRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	p := &catalog.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		Image:       req.Image,
		Weight:      req.Weight,
	}

	if err := h.products.UpdateProduct(r.Context(), p); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondWithDetail(w, http.StatusNotFound, "Product not found")
			return
		}
		log.Error().Err(err).Msg("Failed to update product")
		respondWithDetail(w, mapErrorToStatusCode(err), err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Product updated successfully"})
}

func (h *AdminHandler) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		respondWithDetail(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	if err := h.products.DeleteProduct(r.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondWithDetail(w, http.StatusNotFound, "Product not found")
			return
		}
		log.Error().Err(err).Msg("Failed to delete product")
		respondWithDetail(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

func (h *AdminHandler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.admins.ListOrders(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list orders")
		respondWithDetail(w, http.StatusInternalServerError, "Failed to load orders")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}

func (h *AdminHandler) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.admins.ListCustomers(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list customers")
		respondWithDetail(w, http.StatusInternalServerError, "Failed to load customers")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"customers": customers})
}

// handleUpload accepts a multipart image and returns it as a data URL, the
// same inline-base64 representation product images are stored with.
func (h *AdminHandler) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondWithDetail(w, http.StatusBadRequest, "Invalid upload")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondWithDetail(w, http.StatusBadRequest, "Missing image file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read upload")
		respondWithDetail(w, http.StatusInternalServerError, "Upload failed")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	imageURL := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
	respondWithJSON(w, http.StatusOK, map[string]string{"image_url": imageURL})
}
