package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robotalks/cwkeyer/pkg/remote/msgs"
)

func TestDescribe(t *testing.T) {
	assert.Equal(t, "k1/meta: gone", describe("k1/meta", nil))
	assert.Equal(t, `k1/meta: {"description":"shack"}`, describe("k1/meta", []byte(`{"description":"shack"}`)))

	typed, err := msgs.TypedFrom(&msgs.PanelStatus{Line1: "Sending:", Line2: "SOS"})
	require.NoError(t, err)
	pkt, err := typed.Encode()
	require.NoError(t, err)
	assert.Contains(t, describe("k1/msg", pkt), "k1/msg: [PanelStatus]")

	typed = &msgs.Typed{TypeId: 0x7fff}
	pkt, err = typed.Encode()
	require.NoError(t, err)
	assert.Contains(t, describe("k1/cmd", pkt), "decode error")
}
