package panel

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/robotalks/cwkeyer/pkg/cli/sh"
	"github.com/robotalks/cwkeyer/pkg/remote/comm"
	"github.com/robotalks/cwkeyer/pkg/remote/msgs"
)

type eventConn struct {
	events chan msgs.Message
}

func (c *eventConn) Run(ctx context.Context) error { return nil }

func (c *eventConn) DoCommand(msgs.Message) comm.CommandFuture { return nil }

func (c *eventConn) Events() <-chan msgs.Message { return c.events }

func TestWatch(t *testing.T) {
	conn := &eventConn{events: make(chan msgs.Message, 2)}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	session := &sh.Session{Ctx: ctx, Cancel: cancel, Conn: conn}

	conn.events <- &msgs.PanelStatus{Line2: "SOS"}
	conn.events <- &msgs.PanelStatus{Line2: "OK"}
	var got []string
	start := time.Now()
	Watch(session, 50*time.Millisecond, func(msg msgs.Message) {
		got = append(got, msg.(*msgs.PanelStatus).Line2)
	})
	assert.Equal(t, []string{"SOS", "OK"}, got)
	assert.True(t, time.Since(start) >= 50*time.Millisecond)

	close(conn.events)
	got = nil
	Watch(session, time.Hour, func(msg msgs.Message) {
		got = append(got, "unexpected")
	})
	assert.Empty(t, got)
}
