package threadsafemap

import (
	"sync"
)

// ThreadSafeMap is a generic map that supports concurrent reads and writes.
// With a positive limit it holds at most limit entries, evicting an
// arbitrary entry to make room for a new key.
type ThreadSafeMap[K comparable, V any] struct {
	data  map[K]V
	limit int
	mu    sync.RWMutex
}

// NewThreadSafeMap returns an empty map. A limit of 0 or less means unbounded.
//
// Example usage:
//
//	paths := threadsafemap.NewThreadSafeMap[string, []uint16](256)
//	paths.Set("C:\\temp", wide)
func NewThreadSafeMap[K comparable, V any](limit int) *ThreadSafeMap[K, V] {
	return &ThreadSafeMap[K, V]{
		data:  make(map[K]V),
		limit: limit,
	}
}

// Clear removes all key-value pairs.
func (m *ThreadSafeMap[K, V]) Clear() {
	m.mu.Lock()
	m.data = make(map[K]V)
	m.mu.Unlock()
}

// Delete removes key if it exists.
func (m *ThreadSafeMap[K, V]) Delete(key K) {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
}

// Get retrieves the value for a key and whether it was found.
func (m *ThreadSafeMap[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	val, exists := m.data[key]
	m.mu.RUnlock()

	return val, exists
}

// GetOrSet returns the stored value for key, or stores value and returns it.
// The boolean reports whether the key was already present.
func (m *ThreadSafeMap[K, V]) GetOrSet(key K, value V) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, exists := m.data[key]; exists {
		return existing, true
	}

	m.store(key, value)

	return value, false
}

// Set sets or updates the value for key.
func (m *ThreadSafeMap[K, V]) Set(key K, value V) {
	m.mu.Lock()
	m.store(key, value)
	m.mu.Unlock()
}

// Length returns the number of key-value pairs.
func (m *ThreadSafeMap[K, V]) Length() int {
	m.mu.RLock()
	length := len(m.data)
	m.mu.RUnlock()

	return length
}

// Limit returns the capacity the map was created with.
func (m *ThreadSafeMap[K, V]) Limit() int {
	return m.limit
}
