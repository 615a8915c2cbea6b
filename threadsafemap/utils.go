package threadsafemap

// store writes key under the write lock, evicting one entry when the map
// is full and key is new.
func (m *ThreadSafeMap[K, V]) store(key K, value V) {
	if m.data == nil {
		m.data = make(map[K]V)
	}

	if _, exists := m.data[key]; !exists && m.limit > 0 && len(m.data) >= m.limit {
		for victim := range m.data {
			delete(m.data, victim)

			break
		}
	}

	m.data[key] = value
}
