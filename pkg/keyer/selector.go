package keyer

import (
	"sync/atomic"

	"github.com/golang/glog"
)

// Selector holds the active one of two preset messages.
type Selector struct {
	presets [2]string
	active  uint32
}

// NewSelector creates a Selector with a active.
func NewSelector(a, b string) *Selector {
	return &Selector{presets: [2]string{a, b}}
}

// Active returns the message currently offered for transmission.
func (s *Selector) Active() string {
	return s.presets[atomic.LoadUint32(&s.active)&1]
}

// Presets returns both preset messages.
func (s *Selector) Presets() (a, b string) {
	return s.presets[0], s.presets[1]
}

// Toggle flips the active message. It never blocks.
func (s *Selector) Toggle() {
	n := atomic.AddUint32(&s.active, 1)
	glog.V(2).Infof("toggled message to %q", s.presets[n&1])
}

// Bind makes every press of the inputs toggle the selector.
func (s *Selector) Bind(inputs ...InputSignal) *Selector {
	for _, in := range inputs {
		in.OnPress(s.Toggle)
	}
	return s
}
