// Package console renders the keyer on a terminal: a 16x2 display, the two
// indicators and the keyboard as toggle input.
package console

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/robotalks/cwkeyer/pkg/device"
	fx "github.com/robotalks/cwkeyer/pkg/framework"
)

// Geometry of the emulated display.
const (
	Columns = 16
	Rows    = 2
)

// Indicators
const (
	IndicatorA = 0
	IndicatorB = 1
)

var (
	frameStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorLightGreen)
	offStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	onStyles   = [2]tcell.Style{
		tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
		tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true),
	}
	labels = [2]string{"A", "B"}
)

// Screen implements keyer.Display and keyer.InputSignal on a tcell screen.
type Screen struct {
	Screen tcell.Screen
	// OnQuit is called when the operator asks to quit.
	OnQuit func()

	device.Callbacks

	lock  sync.Mutex
	lines [Rows]string
	on    [2]bool
}

// New opens the terminal.
func New() (*Screen, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(ts)
}

// NewWithScreen wraps an uninitialized tcell screen.
func NewWithScreen(ts tcell.Screen) (*Screen, error) {
	if err := ts.Init(); err != nil {
		return nil, err
	}
	s := &Screen{Screen: ts}
	s.draw()
	return s, nil
}

// Name implements framework.Named.
func (s *Screen) Name() string {
	return "console"
}

// Show implements keyer.Display.
func (s *Screen) Show(line1, line2 string) {
	s.lock.Lock()
	s.lines[0], s.lines[1] = line1, line2
	s.lock.Unlock()
	s.draw()
}

// Lines returns what is on the display.
func (s *Screen) Lines() (string, string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.lines[0], s.lines[1]
}

// Indicator returns the indicator as keyer.Actuator.
func (s *Screen) Indicator(n int) *Indicator {
	return &Indicator{screen: s, n: n}
}

// Run implements framework.Runnable and dispatches keyboard events.
// The terminal is restored when ctx is done.
func (s *Screen) Run(ctx context.Context) error {
	return fx.RunWithContextCancel(ctx, s.Screen.Fini, s.pollEvents)
}

func (s *Screen) pollEvents() error {
	for {
		switch ev := s.Screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			s.Screen.Sync()
			s.draw()
		case *tcell.EventKey:
			s.handleKey(ev)
		}
	}
}

func (s *Screen) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		s.Fire()
	case tcell.KeyEscape, tcell.KeyCtrlC:
		s.quit()
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			s.Fire()
		case 'q', 'Q':
			s.quit()
		}
	}
}

func (s *Screen) quit() {
	if fn := s.OnQuit; fn != nil {
		fn()
	}
}

func (s *Screen) setIndicator(n int, on bool) {
	s.lock.Lock()
	s.on[n] = on
	s.lock.Unlock()
	s.draw()
}

func (s *Screen) draw() {
	s.lock.Lock()
	defer s.lock.Unlock()
	scr := s.Screen
	scr.Clear()

	scr.SetContent(0, 0, tcell.RuneULCorner, nil, frameStyle)
	scr.SetContent(Columns+1, 0, tcell.RuneURCorner, nil, frameStyle)
	scr.SetContent(0, Rows+1, tcell.RuneLLCorner, nil, frameStyle)
	scr.SetContent(Columns+1, Rows+1, tcell.RuneLRCorner, nil, frameStyle)
	for x := 1; x <= Columns; x++ {
		scr.SetContent(x, 0, tcell.RuneHLine, nil, frameStyle)
		scr.SetContent(x, Rows+1, tcell.RuneHLine, nil, frameStyle)
	}
	for y := 1; y <= Rows; y++ {
		scr.SetContent(0, y, tcell.RuneVLine, nil, frameStyle)
		scr.SetContent(Columns+1, y, tcell.RuneVLine, nil, frameStyle)
		putText(scr, 1, y, Columns, s.lines[y-1], textStyle)
	}

	for n := range s.on {
		x := 1 + n*6
		putText(scr, x, Rows+3, 1, labels[n], frameStyle)
		if s.on[n] {
			scr.SetContent(x+2, Rows+3, '●', nil, onStyles[n])
		} else {
			scr.SetContent(x+2, Rows+3, '○', nil, offStyle)
		}
	}
	putText(scr, 0, Rows+5, 40, "space: toggle  q: quit", frameStyle)
	scr.Show()
}

func putText(scr tcell.Screen, x, y, width int, text string, style tcell.Style) {
	n := 0
	for _, r := range text {
		if n >= width {
			break
		}
		scr.SetContent(x+n, y, r, nil, style)
		n++
	}
}

// Indicator is one of the two lamps drawn under the display.
type Indicator struct {
	screen *Screen
	n      int
}

// SetOn implements keyer.Actuator.
func (i *Indicator) SetOn() {
	i.screen.setIndicator(i.n, true)
}

// SetOff implements keyer.Actuator.
func (i *Indicator) SetOff() {
	i.screen.setIndicator(i.n, false)
}
