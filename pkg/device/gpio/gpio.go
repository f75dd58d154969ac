// Package gpio drives keyer indicators and reads the toggle button on
// GPIO pins through periph.io.
package gpio

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang/glog"
	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/host"

	"github.com/robotalks/cwkeyer/pkg/device"
)

// DefaultDebounce ignores presses closer than this to the previous one.
const DefaultDebounce = 300 * time.Millisecond

// pollInterval bounds each edge wait so Run notices cancellation.
const pollInterval = 100 * time.Millisecond

// ErrPinNotFound indicates the pin name is unknown to the host.
var ErrPinNotFound = errors.New("pin not found")

var (
	initOnce sync.Once
	initErr  error
)

// Init loads the host drivers once.
func Init() error {
	initOnce.Do(func() {
		_, initErr = host.Init()
	})
	return initErr
}

func lookup(name string) (gpio.PinIO, error) {
	if err := Init(); err != nil {
		return nil, fmt.Errorf("host init: %v", err)
	}
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("%s: %v", name, ErrPinNotFound)
	}
	return pin, nil
}

// Actuator is an indicator on an output pin, active high.
type Actuator struct {
	Pin gpio.PinIO
}

// NewActuator drives the pin low and wraps it.
func NewActuator(pin gpio.PinIO) (*Actuator, error) {
	if err := pin.Out(gpio.Low); err != nil {
		return nil, err
	}
	return &Actuator{Pin: pin}, nil
}

// OpenActuator opens the named pin as an Actuator.
func OpenActuator(name string) (*Actuator, error) {
	pin, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return NewActuator(pin)
}

// SetOn implements keyer.Actuator.
func (a *Actuator) SetOn() {
	a.set(gpio.High)
}

// SetOff implements keyer.Actuator.
func (a *Actuator) SetOff() {
	a.set(gpio.Low)
}

func (a *Actuator) set(l gpio.Level) {
	if err := a.Pin.Out(l); err != nil {
		glog.Warningf("%s: set %v: %v", a.Pin, l, err)
	}
}

// Button is a momentary switch pulling an input pin low.
type Button struct {
	Pin      gpio.PinIO
	Debounce time.Duration

	device.Callbacks
}

// NewButton configures the pin with pull-up and falling edge detection.
func NewButton(pin gpio.PinIO) (*Button, error) {
	if err := pin.In(gpio.PullUp, gpio.FallingEdge); err != nil {
		return nil, err
	}
	return &Button{Pin: pin, Debounce: DefaultDebounce}, nil
}

// OpenButton opens the named pin as a Button.
func OpenButton(name string) (*Button, error) {
	pin, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return NewButton(pin)
}

// Name implements framework.Named.
func (b *Button) Name() string {
	return "button:" + b.Pin.Name()
}

// Run implements framework.Runnable.
func (b *Button) Run(ctx context.Context) error {
	var last time.Time
	for ctx.Err() == nil {
		if !b.Pin.WaitForEdge(pollInterval) {
			continue
		}
		if b.Pin.Read() != gpio.Low {
			continue
		}
		now := time.Now()
		if !last.IsZero() && now.Sub(last) < b.Debounce {
			glog.V(4).Infof("%s: bounce ignored", b.Pin)
			continue
		}
		last = now
		glog.V(2).Infof("%s: pressed", b.Pin)
		b.Fire()
	}
	return ctx.Err()
}
