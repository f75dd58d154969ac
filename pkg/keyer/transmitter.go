package keyer

import (
	"context"
	"sync/atomic"

	"github.com/golang/glog"

	"github.com/robotalks/cwkeyer/pkg/morse"
)

// Display lines.
const (
	SendingLine = "Sending:"
)

// StopFlag asks a Transmitter to stop after its current unit.
type StopFlag struct {
	v int32
}

// Set raises the flag.
func (f *StopFlag) Set() {
	atomic.StoreInt32(&f.v, 1)
}

// IsSet reports whether the flag is raised.
func (f *StopFlag) IsSet() bool {
	return f != nil && atomic.LoadInt32(&f.v) != 0
}

// Transmitter repeatedly sends the active message of a Selector.
type Transmitter struct {
	Selector *Selector
	Encoder  *morse.Encoder
	Machine  *Machine
	Display  Display
	// Stop is owned by the caller, the transmitter only observes it.
	Stop *StopFlag

	passes uint64
}

// NewTransmitter creates a Transmitter with the International table.
func NewTransmitter(sel *Selector, m *Machine, disp Display) *Transmitter {
	return &Transmitter{
		Selector: sel,
		Encoder:  morse.NewEncoder(morse.International),
		Machine:  m,
		Display:  disp,
		Stop:     &StopFlag{},
	}
}

// Name implements framework.Named.
func (t *Transmitter) Name() string {
	return "transmitter"
}

// Passes returns the number of passes started so far.
func (t *Transmitter) Passes() uint64 {
	return atomic.LoadUint64(&t.passes)
}

// Run implements framework.Runnable. The active message is read once at
// the start of each pass; the stop flag and ctx are checked after every
// unit, never in the middle of one. On exit both actuators are forced off
// and the display is cleared exactly once.
func (t *Transmitter) Run(ctx context.Context) error {
	defer t.cleanup()
	for !t.stopping(ctx) {
		t.pass(ctx)
	}
	return ctx.Err()
}

func (t *Transmitter) pass(ctx context.Context) {
	text := t.Selector.Active()
	atomic.AddUint64(&t.passes, 1)
	t.display().Show(SendingLine, text)
	glog.V(2).Infof("pass %d: sending %q", t.Passes(), text)

	var units int
	t.Encoder.Walk(morse.Parse(text), func(u morse.Unit) bool {
		t.Machine.Request(u)
		units++
		return !t.stopping(ctx)
	})
	if units == 0 && !t.stopping(ctx) {
		// nothing encodable, dwell instead of spinning.
		t.Machine.Request(morse.UnitWordGap)
	}
}

func (t *Transmitter) stopping(ctx context.Context) bool {
	return t.Stop.IsSet() || ctx.Err() != nil
}

func (t *Transmitter) cleanup() {
	t.Machine.Reset()
	t.display().Show("", "")
	glog.Info("transmission stopped")
}

func (t *Transmitter) display() Display {
	if t.Display == nil {
		return nopDisplay{}
	}
	return t.Display
}
