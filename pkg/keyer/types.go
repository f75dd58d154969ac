package keyer

import "time"

// Actuator is a two-state indicator.
// Implementations swallow and log their own faults.
type Actuator interface {
	SetOn()
	SetOff()
}

// Display shows two short lines of text.
type Display interface {
	Show(line1, line2 string)
}

// InputSignal fires the registered callbacks on every debounced press.
type InputSignal interface {
	OnPress(func())
}

// Sleeper blocks for a duration.
type Sleeper interface {
	Sleep(time.Duration)
}

// SleepFunc is the func form of Sleeper.
type SleepFunc func(time.Duration)

// Sleep implements Sleeper.
func (f SleepFunc) Sleep(d time.Duration) {
	f(d)
}

// RealTime sleeps on the wall clock.
var RealTime Sleeper = SleepFunc(time.Sleep)

// Displays fans out to multiple displays.
type Displays []Display

// Show implements Display.
func (d Displays) Show(line1, line2 string) {
	for _, disp := range d {
		disp.Show(line1, line2)
	}
}

// Actuators drives multiple actuators together.
type Actuators []Actuator

// SetOn implements Actuator.
func (a Actuators) SetOn() {
	for _, act := range a {
		act.SetOn()
	}
}

// SetOff implements Actuator.
func (a Actuators) SetOff() {
	for _, act := range a {
		act.SetOff()
	}
}

type nopActuator struct{}

func (nopActuator) SetOn()  {}
func (nopActuator) SetOff() {}

type nopDisplay struct{}

func (nopDisplay) Show(string, string) {}
