package comm

import (
	"context"
	"sync"

	"github.com/golang/glog"

	"github.com/robotalks/cwkeyer/pkg/device"
	"github.com/robotalks/cwkeyer/pkg/remote/msgs"
)

// statusQueueSize bounds the events queued for one slow client.
const statusQueueSize = 8

// Panel exposes the keyer to remote clients.
// It is a keyer.Display broadcasting PanelStatus events to every
// attached client and a keyer.InputSignal fired by ToggleCommand.
type Panel struct {
	device.Callbacks

	lock    sync.Mutex
	status  msgs.PanelStatus
	clients map[*panelClient]struct{}
}

type panelClient struct {
	pipe   *Pipe
	events chan *msgs.PanelStatus
}

// NewPanel creates a Panel.
func NewPanel() *Panel {
	return &Panel{clients: make(map[*panelClient]struct{})}
}

// Show implements keyer.Display.
func (p *Panel) Show(line1, line2 string) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.status.Line1, p.status.Line2 = line1, line2
	p.broadcast()
}

// Status returns a snapshot of the current status.
func (p *Panel) Status() msgs.PanelStatus {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.status
}

// Clients returns the number of attached clients.
func (p *Panel) Clients() int {
	p.lock.Lock()
	defer p.lock.Unlock()
	return len(p.clients)
}

// Serve attaches a client over rw until ctx is done or the client goes away.
func (p *Panel) Serve(ctx context.Context, rw PacketReadWriter) error {
	client := &panelClient{
		pipe:   NewPipe(rw),
		events: make(chan *msgs.PanelStatus, statusQueueSize),
	}
	client.pipe.Handler = msgs.HandleTypedMsgFunc(func(ctx context.Context, msg msgs.Message, typed *msgs.Typed) error {
		return p.handleCommand(client.pipe, msg, typed)
	})

	p.lock.Lock()
	p.clients[client] = struct{}{}
	p.lock.Unlock()
	glog.V(1).Infof("panel client attached")

	sendDone := make(chan struct{})
	go func() {
		defer close(sendDone)
		for status := range client.events {
			if err := client.pipe.SendEventMsg(status); err != nil {
				glog.V(2).Infof("panel event dropped: %v", err)
			}
		}
	}()

	err := client.pipe.Run(ctx)

	p.lock.Lock()
	delete(p.clients, client)
	close(client.events)
	p.lock.Unlock()
	<-sendDone
	glog.V(1).Infof("panel client detached: %v", err)
	return err
}

// broadcast must be called with lock held.
func (p *Panel) broadcast() {
	for client := range p.clients {
		status := p.status
		select {
		case client.events <- &status:
		default:
			glog.Warning("panel client too slow, status dropped")
		}
	}
}

func (p *Panel) handleCommand(pipe *Pipe, msg msgs.Message, typed *msgs.Typed) error {
	if !typed.IsCommand() || typed.IsReply() {
		return nil
	}
	var reply msgs.Message
	switch msg.(type) {
	case *msgs.ToggleCommand:
		p.lock.Lock()
		p.status.Presses++
		p.broadcast()
		p.lock.Unlock()
		glog.V(1).Info("remote toggle")
		p.Fire()
		reply = msgs.NewCommandOK()
	case *msgs.StatusQuery:
		status := p.Status()
		reply = &msgs.StatusReply{Status: &status}
	default:
		reply = msgs.NewCommandErr(msgs.ErrUnsupportedCommand)
	}
	return pipe.SendCommandMsg(reply, typed.Sequence)
}
