package comm

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/cwkeyer/pkg/remote/msgs"
)

// DefaultCommandExpiration is the default expiration expecting a result.
const DefaultCommandExpiration = 1 * time.Second

const (
	purgeInterval   = 100 * time.Millisecond
	eventsQueueSize = 16
)

// Result represents result of a command.
type Result struct {
	Msg msgs.Message
	Err error
}

// CommandFuture is the future of sent command.
type CommandFuture interface {
	ResultChan() <-chan Result
}

// Conn is the client side of a panel connection.
type Conn struct {
	Expiration time.Duration

	pipe     Pipe
	seq      uint32
	commands list.List
	seqMap   map[uint32]*commandFuture
	events   chan msgs.Message
	closed   bool
	lock     sync.Mutex
}

// NewConn creates a Conn over rw. It must be Run to receive anything.
func NewConn(rw PacketReadWriter) *Conn {
	c := &Conn{
		Expiration: DefaultCommandExpiration,
		seqMap:     make(map[uint32]*commandFuture),
		events:     make(chan msgs.Message, eventsQueueSize),
	}
	c.pipe.ReadWriter = rw
	c.pipe.Handler = msgs.HandleTypedMsgFunc(c.handleTypedMsg)
	return c
}

// Events delivers the events from the panel. It is closed when Run returns.
func (c *Conn) Events() <-chan msgs.Message {
	return c.events
}

// DoCommand sends a command and returns the future of its reply.
func (c *Conn) DoCommand(msg msgs.Message) CommandFuture {
	f := &commandFuture{result: make(chan Result, 1)}
	c.lock.Lock()
	if c.closed {
		c.lock.Unlock()
		f.result <- Result{Err: ErrConnClosed}
		return f
	}
	c.seq++
	if c.seq == 0 {
		c.seq++
	}
	f.seq, f.expireAt = c.seq, time.Now().Add(c.Expiration)
	f.elem = c.commands.PushBack(f)
	c.seqMap[f.seq] = f
	c.lock.Unlock()
	// the reply may arrive before SendCommandMsg returns.
	if err := c.pipe.SendCommandMsg(msg, f.seq); err != nil {
		c.complete(f.seq, Result{Err: err})
	}
	return f
}

// Do sends a command and waits for its reply.
func (c *Conn) Do(ctx context.Context, msg msgs.Message) (msgs.Message, error) {
	select {
	case r := <-c.DoCommand(msg).ResultChan():
		return r.Msg, r.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Run implements Runnable.
func (c *Conn) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go c.purgeLoop(ctx)
	err := c.pipe.Run(ctx)
	c.lock.Lock()
	c.closed = true
	c.failAll(ErrConnClosed)
	c.lock.Unlock()
	close(c.events)
	return err
}

// Close implements io.Closer.
func (c *Conn) Close() error {
	return c.pipe.Close()
}

func (c *Conn) handleTypedMsg(ctx context.Context, msg msgs.Message, typed *msgs.Typed) error {
	if typed.IsEvent() {
		select {
		case c.events <- msg:
		default:
			glog.V(2).Infof("event dropped: %v", msg)
		}
		return nil
	}
	result := Result{Msg: msg}
	if cmdErr, ok := msg.(*msgs.CommandErr); ok {
		result.Err = cmdErr
	}
	c.complete(typed.Sequence, result)
	return nil
}

func (c *Conn) complete(seq uint32, result Result) {
	c.lock.Lock()
	defer c.lock.Unlock()
	f := c.seqMap[seq]
	if f == nil {
		return
	}
	c.commands.Remove(f.elem)
	delete(c.seqMap, seq)
	f.result <- result
	close(f.result)
}

func (c *Conn) purgeLoop(ctx context.Context) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			c.purgeExpired(now)
		}
	}
}

func (c *Conn) purgeExpired(now time.Time) {
	c.lock.Lock()
	defer c.lock.Unlock()
	for c.commands.Len() > 0 {
		elem := c.commands.Front()
		f := elem.Value.(*commandFuture)
		if f.expireAt.After(now) {
			break
		}
		c.commands.Remove(elem)
		delete(c.seqMap, f.seq)
		f.result <- Result{Err: context.DeadlineExceeded}
		close(f.result)
	}
}

// failAll must be called with lock held.
func (c *Conn) failAll(err error) {
	for elem := c.commands.Front(); elem != nil; elem = c.commands.Front() {
		f := elem.Value.(*commandFuture)
		c.commands.Remove(elem)
		delete(c.seqMap, f.seq)
		f.result <- Result{Err: err}
		close(f.result)
	}
}

type commandFuture struct {
	seq      uint32
	expireAt time.Time
	elem     *list.Element
	result   chan Result
}

func (c *commandFuture) ResultChan() <-chan Result {
	return c.result
}
