package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ShivChilu/fresh-meat/internal/cart"
)

// ErrEmptyCart is returned by Checkout when the customer has nothing in the
// cart. The check happens before any order I/O.
var ErrEmptyCart = errors.New("cart is empty")

// Carts is the slice of the cart service Checkout needs.
type Carts interface {
	Get(ctx context.Context, customerID uuid.UUID) (cart.Cart, error)
	Clear(ctx context.Context, customerID uuid.UUID) error
}

type Service interface {
	Checkout(ctx context.Context, customerID uuid.UUID) (*Order, error)
	OrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]Order, error)
}

type service struct {
	repo  Repository
	carts Carts
}

func NewService(repo Repository, carts Carts) Service {
	return &service{repo: repo, carts: carts}
}

// Checkout turns the customer's current cart into a pending order. The cart
// is cleared only after the order is durably stored; on any failure it is
// left untouched so the customer can retry. Submissions are not deduplicated:
// a rapid double checkout creates two orders.
func (s *service) Checkout(ctx context.Context, customerID uuid.UUID) (*Order, error) {
	c, err := s.carts.Get(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load cart for checkout: %w", err)
	}

	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	orderID, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("service: failed to generate order id: %w", err)
	}

	items := make([]OrderItem, 0, len(c.Items))
	for _, line := range c.Items {
		items = append(items, OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	o := &Order{
		ID:          orderID,
		CustomerID:  customerID,
		Items:       items,
		TotalAmount: c.Total(),
		Status:      StatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, o); err != nil {
		log.Error().Err(err).Stringer("customer_id", customerID).Msg("service: failed to place order")
		return nil, fmt.Errorf("service: failed to place order: %w", err)
	}

	if err := s.carts.Clear(ctx, customerID); err != nil {
		// The order is already stored; a stale cart snapshot is the lesser
		// problem. Log and move on.
		log.Error().Err(err).Stringer("customer_id", customerID).Msg("service: failed to clear cart after checkout")
	}

	log.Info().Stringer("order_id", o.ID).Stringer("customer_id", customerID).
		Float64("total_amount", o.TotalAmount).Msg("service: order placed")

	return o, nil
}

func (s *service) OrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]Order, error) {
	orders, err := s.repo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch customer orders: %w", err)
	}
	return orders, nil
}
