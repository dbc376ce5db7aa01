package http

import (
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
	"github.com/ShivChilu/fresh-meat/internal/order"
)

type mockOrderService struct {
	checkoutFunc         func(ctx context.Context, customerID uuid.UUID) (*order.Order, error)
	ordersByCustomerFunc func(ctx context.Context, customerID uuid.UUID) ([]order.Order, error)
}

func (m *mockOrderService) Checkout(ctx context.Context, customerID uuid.UUID) (*order.Order, error) {
	return m.checkoutFunc(ctx, customerID)
}

func (m *mockOrderService) OrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]order.Order, error) {
	return m.ordersByCustomerFunc(ctx, customerID)
}

func newOrderTestRouter(svc order.Service) (*chi.Mux, *auth.TokenManager) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	router := chi.NewRouter()
	NewOrderHandler(svc).RegisterRoutes(router, tokens.RequireRole(auth.RoleCustomer))
	return router, tokens
}

func TestOrderHandler_Checkout(t *testing.T) {
	orderID, err := uuid.NewV4()
	require.NoError(t, err)

	tests := []struct {
		name           string
		checkoutFunc   func(ctx context.Context, customerID uuid.UUID) (*order.Order, error)
		expectedStatus int
		expectedDetail string
	}{
		{
			name: "success",
			checkoutFunc: func(ctx context.Context, customerID uuid.UUID) (*order.Order, error) {
				return &order.Order{ID: orderID, CustomerID: customerID, TotalAmount: 25, Status: order.StatusPending}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "empty_cart",
			checkoutFunc: func(ctx context.Context, customerID uuid.UUID) (*order.Order, error) {
				return nil, order.ErrEmptyCart
			},
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "Cart is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, tokens := newOrderTestRouter(&mockOrderService{checkoutFunc: tt.checkoutFunc})

			customerID, err := uuid.NewV4()
			require.NoError(t, err)
			token, err := tokens.Mint(customerID, auth.RoleCustomer)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/api/customer/orders", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

			if tt.expectedDetail != "" {
				assert.Equal(t, tt.expectedDetail, body["detail"])
				return
			}
			assert.Equal(t, "Order placed successfully", body["message"])
			assert.Equal(t, orderID.String(), body["order_id"])
		})
	}
}

func TestOrderHandler_CheckoutRequiresAuth(t *testing.T) {
	router, _ := newOrderTestRouter(&mockOrderService{
		checkoutFunc: func(ctx context.Context, customerID uuid.UUID) (*order.Order, error) {
			t.Fatal("checkout must not run without a token")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/customer/orders", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrderHandler_ListOrders(t *testing.T) {
	customerID, err := uuid.NewV4()
	require.NoError(t, err)
	orderID, err := uuid.NewV4()
	require.NoError(t, err)

	router, tokens := newOrderTestRouter(&mockOrderService{
		ordersByCustomerFunc: func(ctx context.Context, id uuid.UUID) ([]order.Order, error) {
			assert.Equal(t, customerID, id)
			return []order.Order{{ID: orderID, CustomerID: id, TotalAmount: 598, Status: order.StatusPending}}, nil
		},
	})

	token, err := tokens.Mint(customerID, auth.RoleCustomer)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/customer/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Orders []order.Order `json:"orders"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Orders, 1)
	assert.Equal(t, orderID, body.Orders[0].ID)
}
