package stores

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/colonyops/closet/internal/core/closet"
)

// MemoryItemStore implements closet.Store in memory. Every call waits for the
// configured latency first, which makes it a stand-in for a remote backend
// during demos and tests.
type MemoryItemStore struct {
	mu      sync.Mutex
	items   map[string]closet.Item
	latency time.Duration
	now     func() time.Time
}

var _ closet.Store = (*MemoryItemStore)(nil)

// NewMemoryItemStore creates an in-memory store seeded with items.
func NewMemoryItemStore(latency time.Duration, seed ...closet.Item) *MemoryItemStore {
	s := &MemoryItemStore{
		items:   make(map[string]closet.Item, len(seed)),
		latency: latency,
		now:     time.Now,
	}
	base := s.now()
	for i, it := range seed {
		if it.CreatedAt.IsZero() {
			// Keep seed order stable under created_at DESC.
			it.CreatedAt = base.Add(-time.Duration(i) * time.Millisecond)
		}
		if it.UpdatedAt.IsZero() {
			it.UpdatedAt = it.CreatedAt
		}
		s.items[it.ID] = cloneItem(it)
	}
	return s
}

// FindByID returns an item by ID. Returns closet.ErrNotFound if not found.
func (s *MemoryItemStore) FindByID(ctx context.Context, id string) (closet.Item, error) {
	if err := s.wait(ctx); err != nil {
		return closet.Item{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[id]
	if !ok {
		return closet.Item{}, closet.ErrNotFound
	}
	return cloneItem(it), nil
}

// DeleteByID removes an item by ID. Returns closet.ErrNotFound if not found.
func (s *MemoryItemStore) DeleteByID(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return closet.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

// List returns all items, newest first.
func (s *MemoryItemStore) List(ctx context.Context) ([]closet.Item, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]closet.Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, cloneItem(it))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Save creates or replaces an item.
func (s *MemoryItemStore) Save(ctx context.Context, item closet.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if err := s.wait(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if existing, ok := s.items[item.ID]; ok {
		item.CreatedAt = existing.CreatedAt
	} else if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now
	s.items[item.ID] = cloneItem(item)
	return nil
}

func (s *MemoryItemStore) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(s.latency)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func cloneItem(it closet.Item) closet.Item {
	it.Materials = slices.Clone(it.Materials)
	it.Colors = slices.Clone(it.Colors)
	it.StyleTags = slices.Clone(it.StyleTags)
	it.Images = slices.Clone(it.Images)
	if it.Price != nil {
		it.Price = closet.PriceOf(*it.Price)
	}
	if it.Purchase != nil {
		p := *it.Purchase
		it.Purchase = &p
	}
	return it
}
