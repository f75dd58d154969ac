package stream

import (
	"context"
	"net"
	"sync"

	"github.com/golang/glog"

	fx "github.com/robotalks/cwkeyer/pkg/framework"
)

// ServeFunc serves one accepted client.
type ServeFunc func(context.Context, *ReadWriter) error

// Server accepts TCP clients and serves each as a packet stream.
type Server struct {
	Addr  string
	Serve ServeFunc
}

// Name implements framework.Named.
func (s *Server) Name() string {
	return "tcp:" + s.Addr
}

// Run implements framework.Runnable.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	glog.Infof("panel listening on tcp %s", ln.Addr())
	return s.ServeListener(ctx, ln)
}

// ServeListener serves clients accepted from ln until ctx is done.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	var wg sync.WaitGroup
	defer wg.Wait()
	return fx.RunWithContextCloser(ctx, ln, func() error {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return err
			}
			glog.V(1).Infof("tcp client %s connected", conn.RemoteAddr())
			wg.Add(1)
			go func(conn net.Conn) {
				defer wg.Done()
				rw := New(conn)
				defer rw.Close()
				err := s.Serve(ctx, rw)
				glog.V(1).Infof("tcp client %s disconnected: %v", conn.RemoteAddr(), err)
			}(conn)
		}
	})
}

// Dial connects to a Server.
func Dial(ctx context.Context, addr string) (*ReadWriter, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	return New(conn), nil
}
