package keyer

import (
	"fmt"
	"sync"
	"time"
)

type recorder struct {
	lock   sync.Mutex
	events []string
}

func (r *recorder) add(format string, args ...interface{}) {
	r.lock.Lock()
	r.events = append(r.events, fmt.Sprintf(format, args...))
	r.lock.Unlock()
}

func (r *recorder) snapshot() []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]string(nil), r.events...)
}

func (r *recorder) count(event string) int {
	n := 0
	for _, e := range r.snapshot() {
		if e == event {
			n++
		}
	}
	return n
}

type fakeActuator struct {
	name string
	rec  *recorder
}

func (a *fakeActuator) SetOn()  { a.rec.add("%s on", a.name) }
func (a *fakeActuator) SetOff() { a.rec.add("%s off", a.name) }

type fakeDisplay struct {
	rec    *recorder
	onShow func(line1, line2 string)
}

func (d *fakeDisplay) Show(line1, line2 string) {
	d.rec.add("show %q %q", line1, line2)
	if fn := d.onShow; fn != nil {
		fn(line1, line2)
	}
}

type fakeSleeper struct {
	rec     *recorder
	lock    sync.Mutex
	slept   []time.Duration
	onSleep func(time.Duration)
}

func (s *fakeSleeper) Sleep(d time.Duration) {
	s.lock.Lock()
	s.slept = append(s.slept, d)
	s.lock.Unlock()
	if s.rec != nil {
		s.rec.add("sleep %v", d)
	}
	if fn := s.onSleep; fn != nil {
		fn(d)
	}
}

func (s *fakeSleeper) durations() []time.Duration {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]time.Duration(nil), s.slept...)
}

type testRig struct {
	rec     *recorder
	dot     *fakeActuator
	dash    *fakeActuator
	display *fakeDisplay
	sleeper *fakeSleeper
	machine *Machine
}

func newTestRig() *testRig {
	rec := &recorder{}
	r := &testRig{
		rec:     rec,
		dot:     &fakeActuator{name: "A", rec: rec},
		dash:    &fakeActuator{name: "B", rec: rec},
		display: &fakeDisplay{rec: rec},
		sleeper: &fakeSleeper{},
	}
	r.machine = NewMachine(r.dot, r.dash, r.sleeper)
	r.machine.Tracer = func(s State) {
		if s != Idle {
			rec.add("unit %s", s)
		}
	}
	return r
}
