package catalog_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShivChilu/fresh-meat/internal/catalog"
)

type mockRepository struct {
	listFunc    func(ctx context.Context) ([]catalog.Product, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
	createFunc  func(ctx context.Context, p *catalog.Product) error
	updateFunc  func(ctx context.Context, p *catalog.Product) error
	deleteFunc  func(ctx context.Context, id uuid.UUID) error
	listCalls   int
}

func (m *mockRepository) List(ctx context.Context) ([]catalog.Product, error) {
	m.listCalls++
	return m.listFunc(ctx)
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockRepository) Create(ctx context.Context, p *catalog.Product) error {
	return m.createFunc(ctx, p)
}

func (m *mockRepository) Update(ctx context.Context, p *catalog.Product) error {
	return m.updateFunc(ctx, p)
}

func (m *mockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFunc(ctx, id)
}

// fakeCache is an in-process Cache with the same miss semantics as redis.
type fakeCache struct {
	mu     sync.Mutex
	values map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string][]byte)}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.values[key]
	if !ok {
		return nil, catalog.ErrCacheMiss
	}
	return v, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	return nil
}

func (c *fakeCache) Del(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
	return nil
}

func sampleProducts(t *testing.T) []catalog.Product {
	t.Helper()
	id, err := uuid.NewV4()
	require.NoError(t, err)
	return []catalog.Product{{
		ID:       id,
		Name:     "Fresh Chicken Breast",
		Price:    299,
		Category: "chicken",
		Stock:    50,
	}}
}

func TestService_ListProductsUsesCache(t *testing.T) {
	products := sampleProducts(t)
	repo := &mockRepository{
		listFunc: func(ctx context.Context) ([]catalog.Product, error) { return products, nil },
	}
	svc := catalog.NewService(repo, newFakeCache(), time.Minute)

	first, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	second, err := svc.ListProducts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.listCalls, "second read should be served from cache")
	assert.Len(t, first, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
}

func TestService_MutationsInvalidateCache(t *testing.T) {
	products := sampleProducts(t)
	repo := &mockRepository{
		listFunc:   func(ctx context.Context) ([]catalog.Product, error) { return products, nil },
		createFunc: func(ctx context.Context, p *catalog.Product) error { return nil },
	}
	svc := catalog.NewService(repo, newFakeCache(), time.Minute)

	_, err := svc.ListProducts(context.Background())
	require.NoError(t, err)

	err = svc.AddProduct(context.Background(), &catalog.Product{
		Name: "Mutton Curry Cut", Price: 699, Category: "mutton", Stock: 30,
	})
	require.NoError(t, err)

	_, err = svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls, "cache must be invalidated after a product write")
}

func TestService_AddProductValidation(t *testing.T) {
	repo := &mockRepository{
		createFunc: func(ctx context.Context, p *catalog.Product) error {
			t.Fatal("create must not be called for invalid products")
			return nil
		},
	}
	svc := catalog.NewService(repo, newFakeCache(), time.Minute)

	tests := []struct {
		name    string
		product catalog.Product
		wantErr error
	}{
		{
			name:    "unknown_category",
			product: catalog.Product{Name: "Beef Steak", Price: 500, Category: "beef"},
			wantErr: catalog.ErrInvalidCategory,
		},
		{
			name:    "negative_price",
			product: catalog.Product{Name: "Eggs", Price: -1, Category: "eggs"},
			wantErr: catalog.ErrNegativePrice,
		},
		{
			name:    "negative_stock",
			product: catalog.Product{Name: "Eggs", Price: 60, Category: "eggs", Stock: -5},
			wantErr: catalog.ErrNegativeStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.AddProduct(context.Background(), &tt.product)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_AddProductAssignsID(t *testing.T) {
	var created *catalog.Product
	repo := &mockRepository{
		createFunc: func(ctx context.Context, p *catalog.Product) error {
			created = p
			return nil
		},
	}
	svc := catalog.NewService(repo, newFakeCache(), time.Minute)

	p := &catalog.Product{Name: "Eggs", Price: 60, Category: "eggs", Stock: 10}
	require.NoError(t, svc.AddProduct(context.Background(), p))

	require.NotNil(t, created)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestService_VisibleProductsAppliesFilter(t *testing.T) {
	idA, _ := uuid.NewV4()
	idB, _ := uuid.NewV4()
	repo := &mockRepository{
		listFunc: func(ctx context.Context) ([]catalog.Product, error) {
			return []catalog.Product{
				{ID: idA, Name: "Chicken Breast", Category: "chicken"},
				{ID: idB, Name: "Rohu Fish", Category: "fish"},
			}, nil
		},
	}
	svc := catalog.NewService(repo, newFakeCache(), time.Minute)

	got, err := svc.VisibleProducts(context.Background(), "fish", "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, idB, got[0].ID)
}
