package device

import "sync"

// Callbacks is a list of press callbacks safe for concurrent use.
// Embed it to implement keyer.InputSignal.
type Callbacks struct {
	lock sync.RWMutex
	fns  []func()
}

// OnPress implements keyer.InputSignal.
func (c *Callbacks) OnPress(fn func()) {
	c.lock.Lock()
	c.fns = append(c.fns, fn)
	c.lock.Unlock()
}

// Fire invokes every registered callback.
func (c *Callbacks) Fire() {
	c.lock.RLock()
	fns := c.fns
	c.lock.RUnlock()
	for _, fn := range fns {
		fn()
	}
}
