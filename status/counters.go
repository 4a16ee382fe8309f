package status

import (
	"maps"
	"slices"
	"sync"
	"sync/atomic"
)

// Counters holds named int64 counters
// Get creates on first use; callers keep the pointer and update it without the lock
type Counters struct {
	mu    sync.Mutex
	items map[string]*atomic.Int64
}

// Get returns the counter for key, creating it if absent
func (c *Counters) Get(key string) *atomic.Int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.items == nil {
		c.items = make(map[string]*atomic.Int64)
	}
	ptr, ok := c.items[key]
	if !ok {
		ptr = new(atomic.Int64)
		c.items[key] = ptr
	}
	return ptr
}

// Range visits counters in key order
func (c *Counters) Range(fn func(key string, value int64)) {
	c.mu.Lock()
	keys := slices.Sorted(maps.Keys(c.items))
	ptrs := make([]*atomic.Int64, len(keys))
	for i, k := range keys {
		ptrs[i] = c.items[k]
	}
	c.mu.Unlock()

	for i, k := range keys {
		fn(k, ptrs[i].Load())
	}
}
