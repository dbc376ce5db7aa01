package cart

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ShivChilu/fresh-meat/internal/catalog"
)

// Store persists complete cart snapshots keyed by customer id. Every
// successful mutation replaces the previous snapshot atomically, so a
// restored session always sees the exact cart it left behind.
type Store interface {
	Get(ctx context.Context, customerID uuid.UUID) (Cart, error)
	Save(ctx context.Context, customerID uuid.UUID, c Cart) error
	Delete(ctx context.Context, customerID uuid.UUID) error
}

type Service interface {
	Get(ctx context.Context, customerID uuid.UUID) (Cart, error)
	Add(ctx context.Context, customerID uuid.UUID, p catalog.Product) (Cart, error)
	SetQuantity(ctx context.Context, customerID, productID uuid.UUID, quantity int) (Cart, error)
	Remove(ctx context.Context, customerID, productID uuid.UUID) (Cart, error)
	Clear(ctx context.Context, customerID uuid.UUID) error
}

type service struct {
	store Store
}

func NewService(store Store) Service {
	return &service{store: store}
}

func (s *service) Get(ctx context.Context, customerID uuid.UUID) (Cart, error) {
	c, err := s.store.Get(ctx, customerID)
	if err != nil {
		return Cart{}, fmt.Errorf("service: failed to load cart: %w", err)
	}
	return c, nil
}

func (s *service) mutate(ctx context.Context, customerID uuid.UUID, fn func(Cart) Cart) (Cart, error) {
	current, err := s.store.Get(ctx, customerID)
	if err != nil {
		return Cart{}, fmt.Errorf("service: failed to load cart: %w", err)
	}

	next := fn(current)

	if err := s.store.Save(ctx, customerID, next); err != nil {
		return Cart{}, fmt.Errorf("service: failed to persist cart: %w", err)
	}
	return next, nil
}

func (s *service) Add(ctx context.Context, customerID uuid.UUID, p catalog.Product) (Cart, error) {
	c, err := s.mutate(ctx, customerID, func(c Cart) Cart { return c.Add(p) })
	if err != nil {
		return Cart{}, err
	}
	log.Debug().Stringer("customer_id", customerID).Stringer("product_id", p.ID).Msg("service: product added to cart")
	return c, nil
}

func (s *service) SetQuantity(ctx context.Context, customerID, productID uuid.UUID, quantity int) (Cart, error) {
	return s.mutate(ctx, customerID, func(c Cart) Cart { return c.SetQuantity(productID, quantity) })
}

func (s *service) Remove(ctx context.Context, customerID, productID uuid.UUID) (Cart, error) {
	return s.mutate(ctx, customerID, func(c Cart) Cart { return c.Remove(productID) })
}

func (s *service) Clear(ctx context.Context, customerID uuid.UUID) error {
	if err := s.store.Delete(ctx, customerID); err != nil {
		return fmt.Errorf("service: failed to clear cart: %w", err)
	}
	return nil
}
