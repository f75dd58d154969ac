package keyer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/cwkeyer/pkg/morse"
)

func TestMachinePulses(t *testing.T) {
	r := newTestRig()
	r.sleeper.rec = r.rec
	require.True(t, r.machine.Request(morse.UnitDot))
	require.True(t, r.machine.Request(morse.UnitLetterGap))
	require.True(t, r.machine.Request(morse.UnitDash))
	require.Equal(t, Idle, r.machine.State())
	require.Equal(t, []string{
		"unit EmittingDot", "A on", "sleep 500ms", "A off",
		"unit LetterGap", "sleep 750ms",
		"unit EmittingDash", "B on", "sleep 1.5s", "B off",
	}, r.rec.snapshot())
}

func TestMachineRejectsWhenBusy(t *testing.T) {
	r := newTestRig()
	entered, release := make(chan struct{}), make(chan struct{})
	r.sleeper.onSleep = func(time.Duration) {
		close(entered)
		<-release
	}
	done := make(chan bool)
	go func() {
		done <- r.machine.Request(morse.UnitDot)
	}()
	<-entered
	require.Equal(t, EmittingDot, r.machine.State())
	require.False(t, r.machine.Request(morse.UnitDash))
	require.Equal(t, EmittingDot, r.machine.State())
	close(release)
	require.True(t, <-done)
	require.Equal(t, Idle, r.machine.State())
	require.Zero(t, r.rec.count("B on"))
}

func TestMachineReset(t *testing.T) {
	r := newTestRig()
	r.machine.Reset()
	require.Equal(t, []string{"A off", "B off"}, r.rec.snapshot())
	require.Equal(t, Idle, r.machine.State())

	var m Machine
	m.Sleeper = r.sleeper
	require.True(t, m.Request(morse.UnitDot))
	m.Reset()
}
