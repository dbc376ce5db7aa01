package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
)

const productListKey = "catalog:products"

var (
	ErrInvalidCategory = errors.New("unknown product category")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrNegativeStock   = errors.New("stock cannot be negative")
)

type Service interface {
	ListProducts(ctx context.Context) ([]Product, error)
	VisibleProducts(ctx context.Context, category, query string) ([]Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*Product, error)
	AddProduct(ctx context.Context, p *Product) error
	UpdateProduct(ctx context.Context, p *Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo     Repository
	cache    Cache
	cacheTTL time.Duration
}

func NewService(repo Repository, cache Cache, cacheTTL time.Duration) Service {
	return &service{repo: repo, cache: cache, cacheTTL: cacheTTL}
}

// ListProducts returns the full catalog, serving from the cache when
// possible. Cache failures degrade to a direct repository read.
func (s *service) ListProducts(ctx context.Context) ([]Product, error) {
	if cached, err := s.cache.Get(ctx, productListKey); err == nil {
		var products []Product
		if err := json.Unmarshal(cached, &products); err == nil {
			return products, nil
		}
		log.Warn().Msg("service: dropping undecodable catalog cache entry")
		_ = s.cache.Del(ctx, productListKey)
	} else if !errors.Is(err, ErrCacheMiss) {
		log.Warn().Err(err).Msg("service: catalog cache read failed")
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list products: %w", err)
	}

	if encoded, err := json.Marshal(products); err == nil {
		if err := s.cache.Set(ctx, productListKey, encoded, s.cacheTTL); err != nil {
			log.Warn().Err(err).Msg("service: catalog cache write failed")
		}
	}

	return products, nil
}

func (s *service) VisibleProducts(ctx context.Context, category, query string) ([]Product, error) {
	products, err := s.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(products, category, query), nil
}

func (s *service) GetProduct(ctx context.Context, id uuid.UUID) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("service: failed to get product: %w", err)
	}
	return p, nil
}

func validateProduct(p *Product) error {
	if !ValidCategory(p.Category) {
		return ErrInvalidCategory
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}

func (s *service) AddProduct(ctx context.Context, p *Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}

	if p.ID == uuid.Nil {
		id, err := uuid.NewV4()
		if err != nil {
			return fmt.Errorf("service: failed to generate product id: %w", err)
		}
		p.ID = id
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.repo.Create(ctx, p); err != nil {
		return fmt.Errorf("service: failed to add product: %w", err)
	}

	s.invalidate(ctx)
	log.Info().Stringer("product_id", p.ID).Str("name", p.Name).Msg("service: product added")
	return nil
}

func (s *service) UpdateProduct(ctx context.Context, p *Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, p); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("service: failed to update product: %w", err)
	}

	s.invalidate(ctx)
	return nil
}

func (s *service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("service: failed to delete product: %w", err)
	}

	s.invalidate(ctx)
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if err := s.cache.Del(ctx, productListKey); err != nil {
		log.Warn().Err(err).Msg("service: failed to invalidate catalog cache")
	}
}
