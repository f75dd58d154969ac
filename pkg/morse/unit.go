package morse

// Unit is one thing a keyer executes to completion: a pulse or a gap.
type Unit int

// Units
const (
	UnitDot Unit = iota
	UnitDash
	UnitSymbolGap
	UnitLetterGap
	UnitWordGap
)

var unitNames = [...]string{
	UnitDot:       "Dot",
	UnitDash:      "Dash",
	UnitSymbolGap: "SymGap",
	UnitLetterGap: "LetterGap",
	UnitWordGap:   "WordGap",
}

// String implements fmt.Stringer.
func (u Unit) String() string {
	if u >= 0 && int(u) < len(unitNames) {
		return unitNames[u]
	}
	return "Unit(?)"
}

// IsPulse indicates the unit drives an actuator.
func (u Unit) IsPulse() bool {
	return u == UnitDot || u == UnitDash
}

// IsGap indicates the unit only elapses time.
func (u Unit) IsGap() bool {
	return u == UnitSymbolGap || u == UnitLetterGap || u == UnitWordGap
}

// UnitOf converts a symbol to its pulse unit.
func UnitOf(s Symbol) Unit {
	if s == Dash {
		return UnitDash
	}
	return UnitDot
}
