package stores

import (
	"context"
	"time"

	"github.com/colonyops/closet/internal/core/closet"
)

// TimeoutStore bounds every call to the wrapped store with a deadline.
// The screens never cancel store calls themselves, so this is the only
// place a hung backend is cut off.
type TimeoutStore struct {
	next    closet.Store
	timeout time.Duration
}

var _ closet.Store = (*TimeoutStore)(nil)

// WithTimeout wraps next. A non-positive timeout returns next unchanged.
func WithTimeout(next closet.Store, timeout time.Duration) closet.Store {
	if timeout <= 0 {
		return next
	}
	return &TimeoutStore{next: next, timeout: timeout}
}

func (s *TimeoutStore) FindByID(ctx context.Context, id string) (closet.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.next.FindByID(ctx, id)
}

func (s *TimeoutStore) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.next.DeleteByID(ctx, id)
}

func (s *TimeoutStore) List(ctx context.Context) ([]closet.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.next.List(ctx)
}

func (s *TimeoutStore) Save(ctx context.Context, item closet.Item) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.next.Save(ctx, item)
}
