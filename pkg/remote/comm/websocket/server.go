package websocket

import (
	"context"
	"net/http"
	"net/url"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	fx "github.com/robotalks/cwkeyer/pkg/framework"
)

// DefaultPath is where the panel is served.
const DefaultPath = "/panel"

// ServeFunc serves one websocket client.
type ServeFunc func(context.Context, *ReadWriter) error

// Handler creates an http.Handler serving each websocket client with fn.
func Handler(ctx context.Context, fn ServeFunc) http.Handler {
	return websocket.Handler(func(ws *websocket.Conn) {
		ws.PayloadType = websocket.BinaryFrame
		glog.V(1).Infof("websocket client %s connected", ws.Request().RemoteAddr)
		err := fn(ctx, New(ws))
		glog.V(1).Infof("websocket client %s disconnected: %v", ws.Request().RemoteAddr, err)
	})
}

// Server serves the panel over websocket.
type Server struct {
	Addr  string
	Path  string
	Serve ServeFunc
}

// Name implements framework.Named.
func (s *Server) Name() string {
	return "websocket:" + s.Addr
}

// Run implements framework.Runnable.
func (s *Server) Run(ctx context.Context) error {
	path := s.Path
	if path == "" {
		path = DefaultPath
	}
	mux := http.NewServeMux()
	mux.Handle(path, Handler(ctx, s.Serve))
	srv := &http.Server{Addr: s.Addr, Handler: mux}
	glog.Infof("panel listening on ws://%s%s", s.Addr, path)
	return fx.RunWithContextCancel(ctx, func() { srv.Close() }, srv.ListenAndServe)
}

// Dial connects to a websocket panel, e.g. ws://host:port/panel.
func Dial(rawURL string) (*ReadWriter, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	origin := "http://" + u.Host
	ws, err := websocket.Dial(rawURL, "", origin)
	if err != nil {
		return nil, err
	}
	ws.PayloadType = websocket.BinaryFrame
	return New(ws), nil
}
