package sh

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/golang/glog"

	"github.com/robotalks/cwkeyer/pkg/remote"
	"github.com/robotalks/cwkeyer/pkg/remote/comm"
	"github.com/robotalks/cwkeyer/pkg/remote/comm/mqtt"
	"github.com/robotalks/cwkeyer/pkg/remote/comm/stream"
	"github.com/robotalks/cwkeyer/pkg/remote/comm/websocket"
	"github.com/robotalks/cwkeyer/pkg/remote/msgs"
)

// Config provides options to reach keyers.
type Config struct {
	// Target is connected on start: a keyer ID on the broker,
	// tcp://host:port or ws://host:port/panel.
	Target string `env:"KEYER_CONNECT"`

	// MQTTBrokerURL is used for discovery and keyer IDs.
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL string `env:"KEYER_MQTT_URL"`
}

var defaultConfig = Config{
	MQTTBrokerURL: "mqtt://localhost:1883/cwkeyer/",
}

func init() {
	if err := env.Parse(&defaultConfig); err != nil {
		glog.Warningf("env: %v", err)
	}
}

// SetupFlags sets up command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Target, "connect", defaultConfig.Target, "Keyer ID, tcp://host:port or ws://host:port/panel to connect.")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL.")
}

// Default gets the default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Conn is a running connection to a keyer.
type Conn interface {
	Run(context.Context) error
	DoCommand(msgs.Message) comm.CommandFuture
	Events() <-chan msgs.Message
}

// Transports
const (
	TransportMQTT      = "mqtt"
	TransportTCP       = "tcp"
	TransportWebsocket = "websocket"
)

// TransportOf tells how target is reached.
func TransportOf(target string) string {
	switch {
	case strings.HasPrefix(target, "tcp://"):
		return TransportTCP
	case strings.HasPrefix(target, "ws://"), strings.HasPrefix(target, "wss://"):
		return TransportWebsocket
	}
	return TransportMQTT
}

// NewConnector creates an MQTT Connector.
func (c *Config) NewConnector() (*mqtt.Connector, error) {
	if c.MQTTBrokerURL == "" {
		return nil, fmt.Errorf("MQTT broker URL required")
	}
	return mqtt.NewConnector(c.MQTTBrokerURL)
}

// Discover enumerates keyers announced on the broker.
func (c *Config) Discover(ctx context.Context) ([]remote.Info, error) {
	connector, err := c.NewConnector()
	if err != nil {
		return nil, err
	}
	return connector.Discover(ctx)
}

// Dial connects to target.
func (c *Config) Dial(ctx context.Context, target string) (Conn, error) {
	switch TransportOf(target) {
	case TransportTCP:
		rw, err := stream.Dial(ctx, strings.TrimPrefix(target, "tcp://"))
		if err != nil {
			return nil, err
		}
		return comm.NewConn(rw), nil
	case TransportWebsocket:
		rw, err := websocket.Dial(target)
		if err != nil {
			return nil, err
		}
		return comm.NewConn(rw), nil
	}
	connector, err := c.NewConnector()
	if err != nil {
		return nil, err
	}
	return connector.Connect(ctx, target)
}
