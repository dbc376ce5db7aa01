package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShivChilu/fresh-meat/internal/auth"
	"github.com/ShivChilu/fresh-meat/internal/cart"
	"github.com/ShivChilu/fresh-meat/internal/customer"
)

type mockCustomerService struct {
	registerFunc func(ctx context.Context, name, email, phone, password string) (*customer.Customer, error)
	loginFunc    func(ctx context.Context, email, password string) (*customer.Customer, error)
	getByIDFunc  func(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
}

func (m *mockCustomerService) Register(ctx context.Context, name, email, phone, password string) (*customer.Customer, error) {
	return m.registerFunc(ctx, name, email, phone, password)
}

func (m *mockCustomerService) Login(ctx context.Context, email, password string) (*customer.Customer, error) {
	return m.loginFunc(ctx, email, password)
}

func (m *mockCustomerService) GetByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	return m.getByIDFunc(ctx, id)
}

func newCustomerTestRouter(svc customer.Service) (*chi.Mux, *auth.TokenManager) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	router := chi.NewRouter()
	h := NewCustomerHandler(svc, cart.NewService(cart.NewMemoryStore()), tokens)
	h.RegisterRoutes(router, tokens.RequireRole(auth.RoleCustomer))
	return router, tokens
}

func postJSON(t *testing.T, router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCustomerHandler_Register(t *testing.T) {
	id, err := uuid.NewV4()
	require.NoError(t, err)

	tests := []struct {
		name           string
		body           interface{}
		registerFunc   func(ctx context.Context, name, email, phone, password string) (*customer.Customer, error)
		expectedStatus int
		expectedDetail string
	}{
		{
			name: "success",
			body: RegisterRequest{Name: "Ravi", Email: "ravi@example.com", Password: "secret123", Phone: "9876543210"},
			registerFunc: func(ctx context.Context, name, email, phone, password string) (*customer.Customer, error) {
				return &customer.Customer{ID: id, Name: name, Email: email, Phone: phone}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "duplicate_email",
			body: RegisterRequest{Name: "Ravi", Email: "ravi@example.com", Password: "secret123", Phone: "9876543210"},
			registerFunc: func(ctx context.Context, name, email, phone, password string) (*customer.Customer, error) {
				return nil, customer.ErrEmailExists
			},
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "Email already registered",
		},
		{
			name:           "invalid_email",
			body:           RegisterRequest{Name: "Ravi", Email: "not-an-email", Password: "secret123", Phone: "9876543210"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing_fields",
			body:           map[string]string{"name": "Ravi"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, tokens := newCustomerTestRouter(&mockCustomerService{registerFunc: tt.registerFunc})

			rec := postJSON(t, router, "/api/customer/register", tt.body)
			assert.Equal(t, tt.expectedStatus, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

			if tt.expectedDetail != "" {
				assert.Equal(t, tt.expectedDetail, body["detail"])
			}
			if tt.expectedStatus == http.StatusOK {
				tokenString, _ := body["access_token"].(string)
				require.NotEmpty(t, tokenString)

				claims, err := tokens.Verify(tokenString)
				require.NoError(t, err)
				assert.Equal(t, auth.RoleCustomer, claims.Role)
				assert.Equal(t, id.String(), claims.UserID)
				assert.Equal(t, "Registration successful", body["message"])
			}
		})
	}
}

func TestCustomerHandler_Login(t *testing.T) {
	id, err := uuid.NewV4()
	require.NoError(t, err)

	tests := []struct {
		name           string
		loginFunc      func(ctx context.Context, email, password string) (*customer.Customer, error)
		expectedStatus int
		expectedName   string
	}{
		{
			name: "success",
			loginFunc: func(ctx context.Context, email, password string) (*customer.Customer, error) {
				return &customer.Customer{ID: id, Name: "Ravi", Email: email}, nil
			},
			expectedStatus: http.StatusOK,
			expectedName:   "Ravi",
		},
		{
			name: "bad_credentials",
			loginFunc: func(ctx context.Context, email, password string) (*customer.Customer, error) {
				return nil, customer.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newCustomerTestRouter(&mockCustomerService{loginFunc: tt.loginFunc})

			rec := postJSON(t, router, "/api/customer/login",
				CustomerLoginRequest{Email: "ravi@example.com", Password: "secret123"})
			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedName != "" {
				var resp TokenResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedName, resp.CustomerName)
				assert.Equal(t, "bearer", resp.TokenType)
			}
		})
	}
}

func TestCustomerHandler_LogoutClearsCart(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	carts := cart.NewService(cart.NewMemoryStore())

	router := chi.NewRouter()
	h := NewCustomerHandler(&mockCustomerService{}, carts, tokens)
	h.RegisterRoutes(router, tokens.RequireRole(auth.RoleCustomer))

	customerID, err := uuid.NewV4()
	require.NoError(t, err)
	token, err := tokens.Mint(customerID, auth.RoleCustomer)
	require.NoError(t, err)

	_, err = carts.Add(context.Background(), customerID, testProduct(t, "Chicken Breast", 299))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/customer/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	c, err := carts.Get(context.Background(), customerID)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}
