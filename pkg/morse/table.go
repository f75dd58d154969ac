package morse

// Symbol is a single dot or dash.
type Symbol byte

// Symbols
const (
	Dot  Symbol = '.'
	Dash Symbol = '-'
)

// String implements fmt.Stringer.
func (s Symbol) String() string {
	switch s {
	case Dot:
		return "Dot"
	case Dash:
		return "Dash"
	}
	return "Symbol(" + string(rune(s)) + ")"
}

// Table maps an uppercase letter to its symbols.
type Table map[rune][]Symbol

// International is the ITU table for the letters A-Z.
var International = MustParseTable(map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..",
	'E': ".", 'F': "..-.", 'G': "--.", 'H': "....",
	'I': "..", 'J': ".---", 'K': "-.-", 'L': ".-..",
	'M': "--", 'N': "-.", 'O': "---", 'P': ".--.",
	'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-",
	'Y': "-.--", 'Z': "--..",
})

// ParseTable builds a Table from dot/dash strings.
func ParseTable(codes map[rune]string) (Table, error) {
	t := make(Table, len(codes))
	for r, code := range codes {
		if code == "" {
			return nil, &InvalidCodeError{Letter: r, Code: code}
		}
		symbols := make([]Symbol, len(code))
		for n, c := range []byte(code) {
			switch Symbol(c) {
			case Dot, Dash:
				symbols[n] = Symbol(c)
			default:
				return nil, &InvalidCodeError{Letter: r, Code: code}
			}
		}
		t[r] = symbols
	}
	return t, nil
}

// MustParseTable is ParseTable which panics on error.
func MustParseTable(codes map[rune]string) Table {
	t, err := ParseTable(codes)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the symbols of an uppercase letter.
// Anything not in the table reports false, callers skip it.
func (t Table) Lookup(letter rune) ([]Symbol, bool) {
	symbols, ok := t[letter]
	return symbols, ok
}
