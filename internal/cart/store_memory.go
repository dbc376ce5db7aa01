package cart

import (
	"context"
	"sync"

	"github.com/gofrs/uuid"
)

// MemoryStore is an in-process Store used in tests and single-node
// development setups.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]Cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[uuid.UUID]Cart)}
}

func (s *MemoryStore) Get(_ context.Context, customerID uuid.UUID) (Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.carts[customerID], nil
}

func (s *MemoryStore) Save(_ context.Context, customerID uuid.UUID, c Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[customerID] = c
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, customerID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, customerID)
	return nil
}
