package threadsafemap_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YaCodeDev/GoYaUnishim/threadsafemap"
)

func TestThreadSafeMap_SetGetDelete(t *testing.T) {
	m := threadsafemap.NewThreadSafeMap[string, int](0)

	m.Set("a", 1)

	val, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, val)

	m.Delete("a")

	_, ok = m.Get("a")
	assert.False(t, ok)
	assert.Zero(t, m.Length())
}

func TestThreadSafeMap_GetOrSet(t *testing.T) {
	m := threadsafemap.NewThreadSafeMap[string, int](0)

	val, existed := m.GetOrSet("k", 1)
	assert.False(t, existed)
	assert.Equal(t, 1, val)

	val, existed = m.GetOrSet("k", 2)
	assert.True(t, existed)
	assert.Equal(t, 1, val)
}

func TestThreadSafeMap_LimitEvicts(t *testing.T) {
	m := threadsafemap.NewThreadSafeMap[int, int](3)

	for i := range 10 {
		m.Set(i, i)
		assert.LessOrEqual(t, m.Length(), 3)
	}

	val, ok := m.Get(9)
	assert.True(t, ok)
	assert.Equal(t, 9, val)

	m.Set(9, 90)
	assert.Equal(t, 3, m.Length())

	m.Clear()
	assert.Zero(t, m.Length())
	assert.Equal(t, 3, m.Limit())
}

func TestThreadSafeMap_Concurrent(t *testing.T) {
	m := threadsafemap.NewThreadSafeMap[string, int](64)

	var wg sync.WaitGroup

	for i := range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := range 100 {
				key := strconv.Itoa(i*100 + j)
				m.Set(key, j)
				m.Get(key)
			}
		}()
	}

	wg.Wait()

	assert.LessOrEqual(t, m.Length(), 64)
}
