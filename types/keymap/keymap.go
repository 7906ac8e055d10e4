// Package keymap provides an ordered map keyed by key.Key.
package keymap

import (
	"sync"

	"github.com/edup2p/primitives/types/key"
	"github.com/tidwall/btree"
)

type entry[V any] struct {
	Key   key.Key
	Value V
}

// Map is an ordered map from key.Key to V, iterated in ascending key order.
//
// A Map is safe for concurrent use. The zero value is not usable, use New.
type Map[V any] struct {
	mu sync.RWMutex
	bt *btree.BTree // entry[V]
}

func New[V any]() *Map[V] {
	return &Map[V]{
		bt: btree.NewNonConcurrent(before[V]),
	}
}

func before[V any](a, b interface{}) bool {
	return toKey[V](a).Less(toKey[V](b))
}

func toKey[V any](v interface{}) key.Key {
	switch vv := v.(type) {
	case key.Key:
		return vv
	case entry[V]:
		return vv.Key
	default:
		panic("keymap: unexpected item type")
	}
}

// Set stores v under k, and returns the previous value if there was one.
func (m *Map[V]) Set(k key.Key, v V) (prev V, replaced bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if old := m.bt.Set(entry[V]{k, v}); old != nil {
		return old.(entry[V]).Value, true
	}
	return prev, false
}

func (m *Map[V]) Get(k key.Key) (v V, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if item := m.bt.Get(k); item != nil {
		return item.(entry[V]).Value, true
	}
	return v, false
}

func (m *Map[V]) Has(k key.Key) bool {
	_, ok := m.Get(k)
	return ok
}

// Delete removes k, and returns the value it held.
func (m *Map[V]) Delete(k key.Key) (v V, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if item := m.bt.Delete(k); item != nil {
		return item.(entry[V]).Value, true
	}
	return v, false
}

func (m *Map[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.bt.Len()
}

// Ascend calls fn for every entry with a key >= pivot, in ascending order,
// until fn returns false. A nil pivot starts at the smallest key.
//
// fn must not modify the map.
func (m *Map[V]) Ascend(pivot *key.Key, fn func(k key.Key, v V) bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var p interface{}
	if pivot != nil {
		p = *pivot
	}

	m.bt.Ascend(p, func(item interface{}) bool {
		e := item.(entry[V])
		return fn(e.Key, e.Value)
	})
}

// Keys returns all keys in ascending order.
func (m *Map[V]) Keys() []key.Key {
	keys := make([]key.Key, 0, m.Len())
	m.Ascend(nil, func(k key.Key, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Min returns the entry with the smallest key.
func (m *Map[V]) Min() (k key.Key, v V, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if item := m.bt.Min(); item != nil {
		e := item.(entry[V])
		return e.Key, e.Value, true
	}
	return k, v, false
}

// Max returns the entry with the largest key.
func (m *Map[V]) Max() (k key.Key, v V, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if item := m.bt.Max(); item != nil {
		e := item.(entry[V])
		return e.Key, e.Value, true
	}
	return k, v, false
}
