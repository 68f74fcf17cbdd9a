// Package testutil holds fakes and helpers shared by the TUI tests.
package testutil

import (
	"context"
	"errors"
	"sync"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/closet/internal/core/closet"
)

// ErrBoom is a generic store failure.
var ErrBoom = errors.New("boom")

// Collect runs cmd and returns the messages it produced, flattening batches.
// Spinner ticks are dropped so tests do not wait on animation timers.
func Collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case nil, spinner.TickMsg:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, Collect(c)...)
		}
		return out
	default:
		return []tea.Msg{msg}
	}
}

// Drive feeds the results of cmd back into m until no more work is produced.
func Drive[M interface {
	Update(tea.Msg) (M, tea.Cmd)
}](m M, cmd tea.Cmd) M {
	for _, msg := range Collect(cmd) {
		var next tea.Cmd
		m, next = m.Update(msg)
		m = Drive(m, next)
	}
	return m
}

// Navigator records navigation requests.
type Navigator struct {
	Routes []string
	Backs  int
}

func (n *Navigator) GoTo(route string) { n.Routes = append(n.Routes, route) }
func (n *Navigator) GoBack()           { n.Backs++ }

// Notifier records notifications.
type Notifier struct {
	Successes []string
	Errors    []string
}

func (n *Notifier) NotifySuccess(msg string) { n.Successes = append(n.Successes, msg) }
func (n *Notifier) NotifyError(msg string)   { n.Errors = append(n.Errors, msg) }

// Store is a closet.Store with programmable failures and call recording.
type Store struct {
	mu    sync.Mutex
	order []string
	items map[string]closet.Item

	FindErr   error
	ListErr   error
	DeleteErr error
	SaveErr   error

	Finds   []string
	Deletes []string
	Saved   []closet.Item
}

// NewStore returns a store holding items in the given order.
func NewStore(items ...closet.Item) *Store {
	s := &Store{items: make(map[string]closet.Item)}
	for _, it := range items {
		s.order = append(s.order, it.ID)
		s.items[it.ID] = it
	}
	return s
}

func (s *Store) FindByID(_ context.Context, id string) (closet.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Finds = append(s.Finds, id)
	if s.FindErr != nil {
		return closet.Item{}, s.FindErr
	}
	it, ok := s.items[id]
	if !ok {
		return closet.Item{}, closet.ErrNotFound
	}
	return it, nil
}

func (s *Store) DeleteByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Deletes = append(s.Deletes, id)
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	if _, ok := s.items[id]; !ok {
		return closet.ErrNotFound
	}
	delete(s.items, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) List(context.Context) ([]closet.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	out := make([]closet.Item, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out, nil
}

func (s *Store) Save(_ context.Context, item closet.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	if _, ok := s.items[item.ID]; !ok {
		s.order = append(s.order, item.ID)
	}
	s.items[item.ID] = item
	s.Saved = append(s.Saved, item)
	return nil
}

// Shirt returns a fully populated item.
func Shirt(id string, images ...string) closet.Item {
	return closet.Item{
		ID:          id,
		ProductName: "Oxford shirt",
		Brand:       "Uniqlo",
		Price:       closet.PriceOf(39000),
		Size:        "M",
		Purchase:    &closet.YearMonth{Year: 2024, Month: 3},
		Category:    "Tops",
		Materials:   []string{"cotton"},
		Colors:      []string{"white", "navy"},
		StyleTags:   []string{"casual"},
		Images:      images,
	}
}
