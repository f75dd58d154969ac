package stream

import (
	"bytes"
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWritePackets(t *testing.T) {
	var buf bytes.Buffer
	rw := New(&buf)
	require.NoError(t, rw.WritePacket([]byte("hello")))
	require.NoError(t, rw.WritePacket(nil))
	assert.Equal(t, []byte{5, 0, 0, 0}, buf.Bytes()[:4])

	pkt, err := rw.ReadPacket()
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), pkt)
	pkt, err = rw.ReadPacket()
	require.NoError(t, err)
	assert.Empty(t, pkt)
	_, err = rw.ReadPacket()
	assert.Error(t, err)
	assert.NoError(t, rw.Close())
}

func TestPacketTooLarge(t *testing.T) {
	rw := New(bytes.NewBuffer([]byte{0xff, 0xff, 0xff, 0xff}))
	_, err := rw.ReadPacket()
	assert.Equal(t, ErrPacketTooLarge, err)
	assert.Equal(t, ErrPacketTooLarge, rw.WritePacket(make([]byte, MaxPacketSize+1)))
}

func TestServerEcho(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv := &Server{Serve: func(ctx context.Context, rw *ReadWriter) error {
		for {
			pkt, err := rw.ReadPacket()
			if err != nil {
				return err
			}
			if err = rw.WritePacket(pkt); err != nil {
				return err
			}
		}
	}}
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ServeListener(ctx, ln) }()

	client, err := Dial(ctx, ln.Addr().String())
	require.NoError(t, err)
	require.NoError(t, client.WritePacket([]byte("CQ")))
	pkt, err := client.ReadPacket()
	require.NoError(t, err)
	assert.Equal(t, []byte("CQ"), pkt)
	client.Close()

	cancel()
	select {
	case err := <-errCh:
		assert.Equal(t, context.Canceled, err)
	case <-time.After(time.Second):
		t.Fatal("server did not stop")
	}
}
