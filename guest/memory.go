package guest

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store used in tests and local development
// without Redis.
type MemoryStore struct {
	mu           sync.Mutex
	carts        map[string][]CartLine
	wishlists    map[string][]uint
	attributions map[string]Attribution
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts:        make(map[string][]CartLine),
		wishlists:    make(map[string][]uint),
		attributions: make(map[string]Attribution),
	}
}

func (s *MemoryStore) Cart(ctx context.Context, guestID string) ([]CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]CartLine(nil), s.carts[guestID]...), nil
}

func (s *MemoryStore) SaveCart(ctx context.Context, guestID string, lines []CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[guestID] = append([]CartLine(nil), lines...)
	return nil
}

func (s *MemoryStore) ClearCart(ctx context.Context, guestID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, guestID)
	return nil
}

func (s *MemoryStore) Wishlist(ctx context.Context, guestID string) ([]uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]uint(nil), s.wishlists[guestID]...), nil
}

func (s *MemoryStore) SaveWishlist(ctx context.Context, guestID string, productIDs []uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wishlists[guestID] = append([]uint(nil), productIDs...)
	return nil
}

func (s *MemoryStore) ClearWishlist(ctx context.Context, guestID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wishlists, guestID)
	return nil
}

func (s *MemoryStore) Attribution(ctx context.Context, guestID string) (*Attribution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.attributions[guestID]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (s *MemoryStore) SaveAttribution(ctx context.Context, guestID string, a Attribution) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attributions[guestID] = a
	return nil
}

func (s *MemoryStore) ClearAttribution(ctx context.Context, guestID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attributions, guestID)
	return nil
}
