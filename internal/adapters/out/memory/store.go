// Package memory keeps the fleet store in process memory.
//
// Committed state is immutable: a unit of work clones it on Begin, changes the clone and
// swaps it in on Commit. Readers outside a unit of work always see one consistent
// committed state. Units of work that write are serialized, so two operators cannot
// both assign the same order or vehicle.
package memory

import (
	"context"
	"sync"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
)

// table keeps rows in insertion order.
type table[T any] struct {
	ids  []kernel.UUID
	rows map[kernel.UUID]T
}

func newTable[T any]() table[T] {
	return table[T]{rows: make(map[kernel.UUID]T)}
}

func (t table[T]) clone(cp func(T) T) table[T] {
	c := table[T]{
		ids:  append([]kernel.UUID(nil), t.ids...),
		rows: make(map[kernel.UUID]T, len(t.rows)),
	}
	for id, row := range t.rows {
		c.rows[id] = cp(row)
	}
	return c
}

func (t table[T]) get(id kernel.UUID) (T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) insert(id kernel.UUID, row T) bool {
	if _, ok := t.rows[id]; ok {
		return false
	}
	t.ids = append(t.ids, id)
	t.rows[id] = row
	return true
}

func (t *table[T]) replace(id kernel.UUID, row T) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	t.rows[id] = row
	return true
}

func (t table[T]) list(cp func(T) T, keep func(T) bool) []T {
	res := make([]T, 0, len(t.ids))
	for _, id := range t.ids {
		row := t.rows[id]
		if keep != nil && !keep(row) {
			continue
		}
		res = append(res, cp(row))
	}
	return res
}

type state struct {
	vehicles   table[*vehicle.Vehicle]
	orders     table[*order.Order]
	deliveries table[*delivery.Delivery]
}

func newState() *state {
	return &state{
		vehicles:   newTable[*vehicle.Vehicle](),
		orders:     newTable[*order.Order](),
		deliveries: newTable[*delivery.Delivery](),
	}
}

func (s *state) clone() *state {
	return &state{
		vehicles:   s.vehicles.clone((*vehicle.Vehicle).Clone),
		orders:     s.orders.clone((*order.Order).Clone),
		deliveries: s.deliveries.clone((*delivery.Delivery).Clone),
	}
}

// Store holds the committed fleet state.
type Store struct {
	mu      sync.RWMutex
	current *state
	version uint64

	// writer is a one-slot semaphore held by the active writing unit of work.
	writer chan struct{}
}

func NewStore() *Store {
	return &Store{
		current: newState(),
		writer:  make(chan struct{}, 1),
	}
}

// Version counts the commits since the store was created.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *Store) committed() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.writer <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release() {
	<-s.writer
}

func (s *Store) swap(next *state) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = next
	s.version++
}

// autoCommit applies fn to a private copy of the committed state and publishes it.
// Used by repositories obtained outside Begin.
func (s *Store) autoCommit(ctx context.Context, fn func(*state) error) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()

	next := s.committed().clone()
	if err := fn(next); err != nil {
		return err
	}
	s.swap(next)
	return nil
}
