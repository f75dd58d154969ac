package mqtt

import (
	"context"
	"encoding/json"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/cwkeyer/pkg/remote"
	"github.com/robotalks/cwkeyer/pkg/remote/comm"
)

const metaClearTimeout = time.Second

// ServeFunc serves the keyer side of the topics.
type ServeFunc func(context.Context, comm.PacketReadWriter) error

// Endpoint announces a keyer on the broker and serves its topics.
type Endpoint struct {
	Queue *Queue
	Info  remote.Info
	Serve ServeFunc

	metaJSON []byte
}

// NewEndpoint creates an Endpoint.
// The retained meta topic is cleared by the last will if the keyer vanishes.
func NewEndpoint(brokerURL string, info remote.Info, serve ServeFunc) (*Endpoint, error) {
	meta, err := json.Marshal(&info.Meta)
	if err != nil {
		return nil, err
	}
	opts, topicPrefix, err := ClientOptionsFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	opts.SetBinaryWill(topicPrefix+info.ID+"/meta", nil, 1, true)
	opts.SetConnectRetry(true)
	if opts.ClientID == "" {
		opts.SetClientID("cwkeyer:" + info.ID)
	}
	e := &Endpoint{
		Queue:    NewQueue(opts, topicPrefix),
		Info:     info,
		Serve:    serve,
		metaJSON: meta,
	}
	e.Queue.OnConnect = func(*Queue) { e.announce() }
	return e, nil
}

// Name implements framework.Named.
func (e *Endpoint) Name() string {
	return "mqtt:" + e.Info.ID
}

// Run implements framework.Runnable.
func (e *Endpoint) Run(ctx context.Context) error {
	rw := NewPacketReadWriter(e.Queue).ForKeyer(e.Info.ID).Open()
	e.Queue.Connect()
	defer e.Queue.Close()
	err := e.Serve(ctx, rw)
	if e.Queue.Client.IsConnected() {
		if !e.Queue.PubWith(e.Info.ID+"/meta", nil, 1, true).WaitTimeout(metaClearTimeout) {
			glog.Warning("clear meta timeout")
		}
	}
	return err
}

func (e *Endpoint) announce() {
	glog.Infof("announce %s", e.Info.ID)
	e.Queue.PubWith(e.Info.ID+"/meta", e.metaJSON, 1, true)
}
