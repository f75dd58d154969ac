package keyer

import (
	"time"

	"github.com/robotalks/cwkeyer/pkg/morse"
)

// State is the state of the transmission machine.
type State int32

// States
const (
	Idle State = iota
	EmittingDot
	EmittingDash
	SymbolGap
	LetterGap
	WordGap
)

// Durations of the states.
const (
	DotDuration       = 500 * time.Millisecond
	DashDuration      = 1500 * time.Millisecond
	SymbolGapDuration = 250 * time.Millisecond
	LetterGapDuration = 750 * time.Millisecond
	WordGapDuration   = 3000 * time.Millisecond
)

var stateNames = [...]string{
	Idle:         "Idle",
	EmittingDot:  "EmittingDot",
	EmittingDash: "EmittingDash",
	SymbolGap:    "SymbolGap",
	LetterGap:    "LetterGap",
	WordGap:      "WordGap",
}

// String implements fmt.Stringer.
func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "State(?)"
}

// Duration is how long the machine dwells in the state. Idle has none.
func (s State) Duration() time.Duration {
	switch s {
	case EmittingDot:
		return DotDuration
	case EmittingDash:
		return DashDuration
	case SymbolGap:
		return SymbolGapDuration
	case LetterGap:
		return LetterGapDuration
	case WordGap:
		return WordGapDuration
	}
	return 0
}

// Action is the side effect performed while dwelling in a state.
type Action int

// Actions
const (
	ActionNone Action = iota
	// ActionPulseA holds the dot actuator on.
	ActionPulseA
	// ActionPulseB holds the dash actuator on.
	ActionPulseB
)

// StateOf maps a unit to the state executing it.
func StateOf(u morse.Unit) State {
	switch u {
	case morse.UnitDot:
		return EmittingDot
	case morse.UnitDash:
		return EmittingDash
	case morse.UnitSymbolGap:
		return SymbolGap
	case morse.UnitLetterGap:
		return LetterGap
	case morse.UnitWordGap:
		return WordGap
	}
	return Idle
}

// Transition computes the state entered when u is requested in from.
// Only Idle accepts a unit, ok is false otherwise and the state is kept.
func Transition(from State, u morse.Unit) (next State, action Action, ok bool) {
	if from != Idle {
		return from, ActionNone, false
	}
	next = StateOf(u)
	if next == Idle {
		return Idle, ActionNone, false
	}
	switch next {
	case EmittingDot:
		action = ActionPulseA
	case EmittingDash:
		action = ActionPulseB
	}
	return next, action, true
}
