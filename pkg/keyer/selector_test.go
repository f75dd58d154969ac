package keyer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeInput struct {
	callbacks []func()
}

func (i *fakeInput) OnPress(fn func()) { i.callbacks = append(i.callbacks, fn) }

func (i *fakeInput) press() {
	for _, fn := range i.callbacks {
		fn()
	}
}

func TestSelectorToggle(t *testing.T) {
	sel := NewSelector("SOS", "OK")
	require.Equal(t, "SOS", sel.Active())
	sel.Toggle()
	require.Equal(t, "OK", sel.Active())
	sel.Toggle()
	require.Equal(t, "SOS", sel.Active())
	a, b := sel.Presets()
	require.Equal(t, "SOS", a)
	require.Equal(t, "OK", b)
}

func TestSelectorConcurrentToggle(t *testing.T) {
	sel := NewSelector("SOS", "OK")
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 100; n++ {
				sel.Toggle()
				active := sel.Active()
				if active != "SOS" && active != "OK" {
					t.Errorf("torn value %q", active)
				}
			}
		}()
	}
	wg.Wait()
	require.Equal(t, "SOS", sel.Active())
}

func TestSelectorBind(t *testing.T) {
	in1, in2 := &fakeInput{}, &fakeInput{}
	sel := NewSelector("SOS", "OK").Bind(in1, in2)
	in1.press()
	require.Equal(t, "OK", sel.Active())
	in2.press()
	require.Equal(t, "SOS", sel.Active())
}
