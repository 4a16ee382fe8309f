package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// soundCache stores pre-rendered effect buffers
type soundCache struct {
	mu     sync.RWMutex
	format beep.Format
	store  [soundTypeCount]*beep.Buffer
}

func newSoundCache(rate beep.SampleRate) *soundCache {
	return &soundCache{format: beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}}
}

// get returns the cached buffer or renders it on demand
func (c *soundCache) get(st SoundType) *beep.Buffer {
	if st < 0 || st >= soundTypeCount {
		return nil
	}

	c.mu.RLock()
	if buf := c.store[st]; buf != nil {
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if buf := c.store[st]; buf != nil {
		return buf
	}

	buf := beep.NewBuffer(c.format)
	buf.Append(GetSoundEffect(st, c.format.SampleRate))
	c.store[st] = buf
	return buf
}

// preload renders every effect so the first play does not stall
func (c *soundCache) preload() {
	for st := range soundTypeCount {
		c.get(st)
	}
}
