package mqtt

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/golang/glog"

	"github.com/robotalks/cwkeyer/pkg/remote"
	"github.com/robotalks/cwkeyer/pkg/remote/comm"
)

// DefaultDiscoverTimeout defines the default timeout value of discovery.
const DefaultDiscoverTimeout = 500 * time.Millisecond

// Connector finds and connects keyers through the broker.
type Connector struct {
	DiscoverTimeout time.Duration

	options     *paho.ClientOptions
	topicPrefix string
}

// NewConnector creates a Connector.
func NewConnector(brokerURL string) (*Connector, error) {
	opts, topicPrefix, err := ClientOptionsFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	return &Connector{
		DiscoverTimeout: DefaultDiscoverTimeout,
		options:         opts,
		topicPrefix:     topicPrefix,
	}, nil
}

// Discover enumerates announced keyers.
func (c *Connector) Discover(ctx context.Context) ([]remote.Info, error) {
	q := NewQueue(c.options, c.topicPrefix)
	if err := q.ConnectWait(ctx); err != nil {
		return nil, err
	}
	defer q.Close()
	resCh := make(chan remote.Info, packetQueueSize)
	sub := q.Sub("+/meta", func(topic string, payload []byte) {
		if info, ok := parseMeta(topic, payload); ok {
			select {
			case resCh <- info:
			case <-time.After(time.Second):
			}
		}
	})
	defer sub.Close()

	dur := c.DiscoverTimeout
	if dur == 0 {
		dur = DefaultDiscoverTimeout
	}
	timeout := time.After(dur)
	var res []remote.Info
	seen := make(map[string]bool)
	for {
		select {
		case info := <-resCh:
			if !seen[info.ID] {
				seen[info.ID] = true
				res = append(res, info)
			}
		case <-timeout:
			return res, nil
		case <-ctx.Done():
			return res, ctx.Err()
		}
	}
}

// parseMeta extracts Info from a retained meta message.
// Empty payload means the keyer is gone.
func parseMeta(topic string, payload []byte) (info remote.Info, ok bool) {
	items := strings.Split(topic, "/")
	if len(items) != 2 || items[1] != "meta" || len(payload) == 0 {
		return
	}
	info.ID = items[0]
	if err := json.Unmarshal(payload, &info.Meta); err != nil {
		glog.Warningf("invalid meta from %s: %v", info.ID, err)
	}
	return info, true
}

// Connect connects to keyer id.
func (c *Connector) Connect(ctx context.Context, id string) (*Conn, error) {
	q := NewQueue(c.options, c.topicPrefix)
	if err := q.ConnectWait(ctx); err != nil {
		return nil, err
	}
	rw := NewPacketReadWriter(q).ForClient(id).Open()
	if err := Wait(ctx, rw.sub.Token); err != nil {
		q.Close()
		return nil, err
	}
	return &Conn{Conn: comm.NewConn(rw), Queue: q}, nil
}

// Conn is a comm.Conn which owns its MQTT client.
type Conn struct {
	*comm.Conn
	Queue *Queue
}

// Run implements Runnable.
func (c *Conn) Run(ctx context.Context) error {
	defer c.Queue.Close()
	return c.Conn.Run(ctx)
}
