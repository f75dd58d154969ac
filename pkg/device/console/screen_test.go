package console

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := NewWithScreen(sim)
	require.NoError(t, err)
	sim.SetSize(40, 10)
	return s, sim
}

func rowText(sim tcell.SimulationScreen, y int) string {
	cells, w, _ := sim.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		runes := cells[y*w+x].Runes
		if len(runes) == 0 {
			b.WriteRune(' ')
		} else {
			b.WriteRune(runes[0])
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func TestScreenShow(t *testing.T) {
	s, sim := newSimScreen(t)
	defer sim.Fini()
	s.Show("Sending:", "A MESSAGE LONGER THAN SIXTEEN")
	require.Equal(t, string(tcell.RuneVLine)+"Sending:        "+string(tcell.RuneVLine), rowText(sim, 1))
	require.Equal(t, string(tcell.RuneVLine)+"A MESSAGE LONGER"+string(tcell.RuneVLine), rowText(sim, 2))
	line1, line2 := s.Lines()
	require.Equal(t, "Sending:", line1)
	require.Equal(t, "A MESSAGE LONGER THAN SIXTEEN", line2)
}

func TestScreenIndicators(t *testing.T) {
	s, sim := newSimScreen(t)
	defer sim.Fini()
	s.Indicator(IndicatorA).SetOn()
	require.Equal(t, " A ●   B ○", rowText(sim, Rows+3))
	s.Indicator(IndicatorA).SetOff()
	s.Indicator(IndicatorB).SetOn()
	require.Equal(t, " A ○   B ●", rowText(sim, Rows+3))
}

func TestScreenKeys(t *testing.T) {
	s, sim := newSimScreen(t)
	pressed := make(chan struct{}, 4)
	s.OnPress(func() { pressed <- struct{}{} })
	ctx, cancel := context.WithCancel(context.Background())
	s.OnQuit = cancel
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Run(ctx)
	}()

	sim.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	for i := 0; i < 2; i++ {
		select {
		case <-pressed:
		case <-time.After(time.Second):
			t.Fatal("press not reported")
		}
	}
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-errCh:
		require.Equal(t, context.Canceled, err)
	case <-time.After(time.Second):
		t.Fatal("quit not handled")
	}
}
