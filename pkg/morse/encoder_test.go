package morse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func count(units []Unit, u Unit) int {
	n := 0
	for _, v := range units {
		if v == u {
			n++
		}
	}
	return n
}

func TestEncodeSOS(t *testing.T) {
	units := NewEncoder(nil).EncodeString("SOS")
	require.Equal(t, []Unit{
		UnitDot, UnitSymbolGap, UnitDot, UnitSymbolGap, UnitDot,
		UnitLetterGap,
		UnitDash, UnitSymbolGap, UnitDash, UnitSymbolGap, UnitDash,
		UnitLetterGap,
		UnitDot, UnitSymbolGap, UnitDot, UnitSymbolGap, UnitDot,
	}, units)
	require.Len(t, units, 17)
}

func TestEncodeSingleLetter(t *testing.T) {
	enc := NewEncoder(International)
	for r := 'A'; r <= 'Z'; r++ {
		symbols, _ := International.Lookup(r)
		units := enc.EncodeString(string(r))
		pulses := 0
		for _, u := range units {
			if u.IsPulse() {
				pulses++
			}
		}
		require.Equal(t, len(symbols), pulses, "letter %q", r)
		require.Equal(t, len(symbols)-1, count(units, UnitSymbolGap), "letter %q", r)
		require.Zero(t, count(units, UnitLetterGap), "letter %q", r)
		require.Zero(t, count(units, UnitWordGap), "letter %q", r)
		require.True(t, units[len(units)-1].IsPulse())
	}
}

func TestEncodeTwoLetters(t *testing.T) {
	enc := NewEncoder(nil)
	for a := 'A'; a <= 'Z'; a++ {
		for b := 'A'; b <= 'Z'; b++ {
			expected := append(enc.EncodeString(string(a)), UnitLetterGap)
			expected = append(expected, enc.EncodeString(string(b))...)
			require.Equal(t, expected, enc.EncodeString(string([]rune{a, b})))
		}
	}
}

func TestEncodeTwoWords(t *testing.T) {
	enc := NewEncoder(nil)
	for a := 'A'; a <= 'Z'; a++ {
		for _, b := range "ETSOQ" {
			first, second := enc.EncodeString(string(a)), enc.EncodeString(string(b))
			units := enc.EncodeString(string(a) + " " + string(b))
			require.Equal(t, 1, count(units, UnitWordGap))
			require.Zero(t, count(units, UnitLetterGap))
			require.Equal(t, UnitWordGap, units[len(first)])
			require.Equal(t, first, units[:len(first)])
			require.Equal(t, second, units[len(first)+1:])
		}
	}
}

func TestEncodeCases(t *testing.T) {
	enc := NewEncoder(nil)
	testCases := []struct {
		name   string
		text   string
		same   string
		expect []Unit
	}{
		{name: "unknown character inside word", text: "A1B", same: "AB"},
		{name: "lower case", text: "sos", same: "SOS"},
		{name: "repeated whitespace", text: "  E \t\n T ", same: "E T"},
		{name: "trailing unknown character", text: "AB1", same: "AB"},
		{name: "leading unknown character", text: "?E", same: "E"},
		{name: "word of unknown characters", text: "E 123 T", same: "E T"},
		{name: "empty", text: ""},
		{name: "only unknown", text: "12 ?!"},
		{
			name:   "two words",
			text:   "E TE",
			expect: []Unit{UnitDot, UnitWordGap, UnitDash, UnitLetterGap, UnitDot},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			units := enc.EncodeString(tc.text)
			switch {
			case tc.same != "":
				require.Equal(t, enc.EncodeString(tc.same), units)
			case tc.expect != nil:
				require.Equal(t, tc.expect, units)
			default:
				require.Empty(t, units)
			}
			if len(units) > 0 {
				require.False(t, units[len(units)-1].IsGap(), "trailing gap")
			}
		})
	}
}

func TestEncodeDeterministic(t *testing.T) {
	enc := NewEncoder(nil)
	msg := Parse("HELLO WORLD")
	require.Equal(t, enc.Encode(msg), enc.Encode(msg))
}

func TestWalkStops(t *testing.T) {
	var seen []Unit
	done := NewEncoder(nil).Walk(Parse("SOS"), func(u Unit) bool {
		seen = append(seen, u)
		return len(seen) < 3
	})
	require.False(t, done)
	require.Equal(t, []Unit{UnitDot, UnitSymbolGap, UnitDot}, seen)
}

func TestParse(t *testing.T) {
	msg := Parse(" CQ  DE\tK1ABC ")
	require.Equal(t, Message{Word("CQ"), Word("DE"), Word("K1ABC")}, msg)
	require.Equal(t, "CQ DE K1ABC", msg.String())
	require.Empty(t, Parse("   "))
}
