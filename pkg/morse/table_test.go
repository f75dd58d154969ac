package morse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInternationalTable(t *testing.T) {
	require.Len(t, International, 26)
	for r := 'A'; r <= 'Z'; r++ {
		symbols, ok := International.Lookup(r)
		require.True(t, ok, "letter %q", r)
		require.NotEmpty(t, symbols)
		require.True(t, len(symbols) <= 4)
	}
	s, _ := International.Lookup('S')
	require.Equal(t, []Symbol{Dot, Dot, Dot}, s)
	o, _ := International.Lookup('O')
	require.Equal(t, []Symbol{Dash, Dash, Dash}, o)
}

func TestLookupNotFound(t *testing.T) {
	for _, r := range "a1 .?\tÄ" {
		_, ok := International.Lookup(r)
		require.False(t, ok, "rune %q", r)
	}
}

func TestParseTable(t *testing.T) {
	table, err := ParseTable(map[rune]string{'E': ".", 'T': "-"})
	require.NoError(t, err)
	require.Equal(t, Table{'E': {Dot}, 'T': {Dash}}, table)

	_, err = ParseTable(map[rune]string{'E': ""})
	require.Error(t, err)
	_, err = ParseTable(map[rune]string{'E': ".x"})
	require.Error(t, err)
	require.IsType(t, &InvalidCodeError{}, err)
}
