// Package memory provides in-memory persistence for development runs
// without a reachable database. It backs the same capability interfaces as
// the postgres package and is selected explicitly at process start, never
// swapped in silently.
package memory

import (
	"context"
	"reflect"
	"sort"
	"sync"
	"time"

	"campus/internal/domain/repository"
)

// contentStore keeps one content type in a mutex-guarded map. Data does not
// survive a restart; that is the accepted trade-off of the dev store.
type contentStore[T any] struct {
	mu     sync.RWMutex
	items  map[int64]T
	nextID int64
}

// NewContentStore is the constructor for the in-memory content store.
func NewContentStore[T any]() repository.ContentStore[T] {
	return &contentStore[T]{
		items:  make(map[int64]T),
		nextID: 1,
	}
}

func (s *contentStore[T]) List(_ context.Context, opts repository.ContentListOptions) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	result := make([]T, 0, len(ids))
	for _, id := range ids {
		item := s.items[id]
		if opts.ActiveOnly && !isActive(item) {
			continue
		}
		result = append(result, item)
	}

	return result, nil
}

func (s *contentStore[T]) FindByID(_ context.Context, id int64) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, repository.ErrContentNotFound
	}

	return &item, nil
}

func (s *contentStore[T]) Create(_ context.Context, item *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	setField(item, "ID", id)
	setField(item, "CreatedAt", time.Now())
	setField(item, "UpdatedAt", time.Now())
	s.items[id] = *item

	return nil
}

func (s *contentStore[T]) Update(_ context.Context, id int64, item *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return repository.ErrContentNotFound
	}

	setField(item, "ID", id)
	setField(item, "UpdatedAt", time.Now())
	s.items[id] = *item

	return nil
}

func (s *contentStore[T]) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return repository.ErrContentNotFound
	}
	delete(s.items, id)

	return nil
}

// isActive reads the Active flag off a content struct; types without the
// flag are always listed.
func isActive(item any) bool {
	v := reflect.ValueOf(item)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	f := v.FieldByName("Active")
	if !f.IsValid() || f.Kind() != reflect.Bool {
		return true
	}

	return f.Bool()
}

func setField(item any, name string, value any) {
	v := reflect.ValueOf(item).Elem()
	f := v.FieldByName(name)
	if !f.IsValid() || !f.CanSet() {
		return
	}

	val := reflect.ValueOf(value)
	if val.Type().AssignableTo(f.Type()) {
		f.Set(val)
	}
}
