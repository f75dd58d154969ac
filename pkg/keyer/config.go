package keyer

import (
	"flag"

	"github.com/caarlos0/env/v6"
	"github.com/golang/glog"

	"github.com/robotalks/cwkeyer/pkg/morse"
)

// Config defines the preset messages.
type Config struct {
	MessageA string `env:"KEYER_MESSAGE_A" yaml:"message_a"`
	MessageB string `env:"KEYER_MESSAGE_B" yaml:"message_b"`
}

var defaultConfig = Config{
	MessageA: "SOS",
	MessageB: "OK",
}

func init() {
	if err := env.Parse(&defaultConfig); err != nil {
		glog.Warningf("keyer env: %v", err)
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.MessageA, "message-a", defaultConfig.MessageA, "Preset message active at start.")
	flag.StringVar(&defaultConfig.MessageB, "message-b", defaultConfig.MessageB, "Preset message selected by toggling.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Validate checks both presets have something to send.
func (c *Config) Validate() error {
	enc := morse.NewEncoder(morse.International)
	for _, msg := range []string{c.MessageA, c.MessageB} {
		if len(enc.EncodeString(msg)) == 0 {
			return ErrEmptyMessage
		}
	}
	return nil
}

// NewTransmitter creates a Transmitter on real time using the config.
func (c *Config) NewTransmitter(dot, dash Actuator, disp Display) (*Transmitter, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	sel := NewSelector(c.MessageA, c.MessageB)
	return NewTransmitter(sel, NewMachine(dot, dash, RealTime), disp), nil
}
