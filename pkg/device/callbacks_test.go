package device

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCallbacks(t *testing.T) {
	var c Callbacks
	c.Fire()
	var calls []int
	c.OnPress(func() { calls = append(calls, 1) })
	c.OnPress(func() { calls = append(calls, 2) })
	c.Fire()
	require.Equal(t, []int{1, 2}, calls)
}
