package joystick

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDevice struct {
	events chan Event
	closed chan struct{}
	once   sync.Once
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{events: make(chan Event), closed: make(chan struct{})}
}

func (d *fakeDevice) Close() error {
	d.once.Do(func() { close(d.closed) })
	return nil
}

func (d *fakeDevice) Index() int       { return 0 }
func (d *fakeDevice) Name() string     { return "fake" }
func (d *fakeDevice) ButtonCount() int { return 4 }

func (d *fakeDevice) ReadEvent() (Event, error) {
	select {
	case ev := <-d.events:
		return ev, nil
	case <-d.closed:
		return nil, io.EOF
	}
}

func press(index uint8, value int16) Event {
	return &buttonEvent{event: event{Type: evBTN, Number: index, Value: value}}
}

func TestDecodeEvent(t *testing.T) {
	ev, err := decodeEvent([]byte{1, 0, 0, 0, 1, 0, evBTN, 2})
	require.NoError(t, err)
	be, ok := ev.(ButtonEvent)
	require.True(t, ok)
	assert.Equal(t, 2, be.Index())
	assert.True(t, be.Pressed())
	assert.False(t, be.IsInit())

	ev, err = decodeEvent([]byte{0, 0, 0, 0, 0xff, 0x7f, evAXIS | evINIT, 1})
	require.NoError(t, err)
	ae, ok := ev.(AxisEvent)
	require.True(t, ok)
	assert.Equal(t, 32767, ae.Value())
	assert.True(t, ae.IsInit())

	_, err = decodeEvent([]byte{1, 2})
	assert.Error(t, err)
}

func TestButtonPresses(t *testing.T) {
	dev := newFakeDevice()
	b := NewButton(-1, 1)
	b.OpenFunc = func() (Device, error) { return dev, nil }
	var pressed int32
	b.OnPress(func() { atomic.AddInt32(&pressed, 1) })

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- b.Run(ctx) }()

	dev.events <- &buttonEvent{event: event{Type: evBTN | evINIT, Number: 1, Value: 1}}
	dev.events <- press(1, 1)
	dev.events <- press(1, 0)
	dev.events <- press(0, 1)
	dev.events <- &axisEvent{event: event{Type: evAXIS, Number: 1, Value: 100}}
	dev.events <- press(1, 1)
	// one more so the previous event is fully handled
	dev.events <- press(3, 0)
	assert.EqualValues(t, 2, atomic.LoadInt32(&pressed))

	cancel()
	select {
	case err := <-errCh:
		assert.Equal(t, context.Canceled, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop")
	}
	select {
	case <-dev.closed:
	default:
		t.Fatal("device not closed")
	}
}

func TestButtonReopen(t *testing.T) {
	devs := make(chan *fakeDevice, 2)
	b := NewButton(0, 0)
	b.Retry = 10 * time.Millisecond
	var opens int32
	b.OpenFunc = func() (Device, error) {
		if atomic.AddInt32(&opens, 1) == 1 {
			return nil, io.ErrUnexpectedEOF
		}
		d := newFakeDevice()
		devs <- d
		return d, nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go b.Run(ctx)

	first := <-devs
	first.Close()
	second := <-devs
	assert.NotSame(t, first, second)
	assert.GreaterOrEqual(t, atomic.LoadInt32(&opens), int32(3))
}
