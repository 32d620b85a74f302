package cart

import (
	"context"
	"log/slog"
	"sync"

	"github.com/go-faster/errors"

	"github.com/ytget/storefront/internal/model"
	"github.com/ytget/storefront/internal/storage"
)

// StorageKey is the durable key holding the serialized cart
const StorageKey = "cart"

// ErrAlreadyHydrated is returned by a second Hydrate call
var ErrAlreadyHydrated = errors.New("cart already hydrated")

// Store is the single source of truth for cart contents
type Store struct {
	mu       sync.RWMutex
	items    []model.CartLineItem
	onChange func(count int)

	kv        storage.KV
	persister *persister
	hydrated  bool
	logger    *slog.Logger
}

// NewStore creates an empty store persisting to kv under StorageKey
func NewStore(kv storage.KV, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "cart")
	return &Store{
		items:     make([]model.CartLineItem, 0),
		kv:        kv,
		persister: newPersister(kv, StorageKey, logger),
		logger:    logger,
	}
}

// SetChangeCallback sets the function notified with the new count after
// every mutation. It runs synchronously on the mutating goroutine.
func (s *Store) SetChangeCallback(callback func(count int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = callback
}

// Add appends item to the end of the cart. Duplicates are kept.
func (s *Store) Add(item model.CartLineItem) {
	s.mutate(func(items []model.CartLineItem) []model.CartLineItem {
		return append(items, item)
	})
}

// Remove deletes the first item with a matching id; unknown ids are ignored
func (s *Store) Remove(id string) {
	s.mutate(func(items []model.CartLineItem) []model.CartLineItem {
		for i, item := range items {
			if item.ID == id {
				return append(items[:i:i], items[i+1:]...)
			}
		}
		return items
	})
}

// ReplaceAll swaps the whole collection. A nil slice empties the cart.
func (s *Store) ReplaceAll(items []model.CartLineItem) {
	replacement := make([]model.CartLineItem, len(items))
	copy(replacement, items)
	s.mutate(func([]model.CartLineItem) []model.CartLineItem {
		return replacement
	})
}

// Count returns the number of line items
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Items returns a copy of the current collection
func (s *Store) Items() []model.CartLineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]model.CartLineItem, len(s.items))
	copy(items, s.items)
	return items
}

// Hydrate loads the persisted cart once per store. A missing key leaves the
// cart untouched; a malformed payload hydrates an empty cart.
func (s *Store) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	if s.hydrated {
		s.mu.Unlock()
		return ErrAlreadyHydrated
	}
	s.hydrated = true
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	data, ok, err := s.kv.Load(StorageKey)
	if err != nil {
		s.logger.Warn("cart read failed, starting empty", "error", err)
		return nil
	}
	if !ok {
		s.logger.Debug("no stored cart")
		return nil
	}

	items, err := Decode(data)
	if err != nil {
		s.logger.Warn("stored cart ignored", "error", err)
		items = nil
	}
	s.ReplaceAll(items)
	s.logger.Info("cart hydrated", "count", len(items))
	return nil
}

// Flush waits for every scheduled write to finish
func (s *Store) Flush(ctx context.Context) error {
	return s.persister.wait(ctx)
}

// mutate applies fn under the lock, schedules persistence, then notifies
func (s *Store) mutate(fn func([]model.CartLineItem) []model.CartLineItem) {
	s.mu.Lock()
	s.items = fn(s.items)
	count := len(s.items)
	data, err := Encode(s.items)
	if err != nil {
		s.logger.Warn("cart snapshot skipped", "error", err)
	} else {
		s.persister.enqueue(data)
	}
	callback := s.onChange
	s.mu.Unlock()

	if callback != nil {
		callback(count)
	}
}
