package keyer

import (
	"sync/atomic"

	"github.com/golang/glog"

	"github.com/robotalks/cwkeyer/pkg/morse"
)

// Machine executes one unit at a time on two actuators.
type Machine struct {
	DotActuator  Actuator
	DashActuator Actuator
	Sleeper      Sleeper
	// Tracer, if set, is called on entering every state including Idle.
	Tracer func(State)

	state int32
}

// NewMachine creates a Machine in Idle.
func NewMachine(dot, dash Actuator, sleeper Sleeper) *Machine {
	return &Machine{DotActuator: dot, DashActuator: dash, Sleeper: sleeper}
}

// State returns the current state.
func (m *Machine) State() State {
	return State(atomic.LoadInt32(&m.state))
}

// Request runs u to completion and returns to Idle. The request is a
// no-op returning false unless the machine is Idle.
func (m *Machine) Request(u morse.Unit) bool {
	next, action, ok := Transition(m.State(), u)
	if ok {
		ok = atomic.CompareAndSwapInt32(&m.state, int32(Idle), int32(next))
	}
	if !ok {
		glog.V(2).Infof("unit %s rejected in state %s", u, m.State())
		return false
	}
	m.trace(next)
	act := m.actuatorFor(action)
	act.SetOn()
	m.sleeper().Sleep(next.Duration())
	act.SetOff()
	atomic.StoreInt32(&m.state, int32(Idle))
	m.trace(Idle)
	return true
}

// Reset forces both actuators off and the machine back to Idle.
func (m *Machine) Reset() {
	m.actuator(m.DotActuator).SetOff()
	m.actuator(m.DashActuator).SetOff()
	atomic.StoreInt32(&m.state, int32(Idle))
}

func (m *Machine) trace(s State) {
	if glog.V(4) && s != Idle {
		glog.Infof("entering %s (%v)", s, s.Duration())
	}
	if fn := m.Tracer; fn != nil {
		fn(s)
	}
}

func (m *Machine) actuatorFor(action Action) Actuator {
	switch action {
	case ActionPulseA:
		return m.actuator(m.DotActuator)
	case ActionPulseB:
		return m.actuator(m.DashActuator)
	}
	return nopActuator{}
}

func (m *Machine) actuator(a Actuator) Actuator {
	if a == nil {
		return nopActuator{}
	}
	return a
}

func (m *Machine) sleeper() Sleeper {
	if m.Sleeper == nil {
		return RealTime
	}
	return m.Sleeper
}
