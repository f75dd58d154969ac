// Package env assembles a keyer from configuration: devices, the
// transmitter and the remote panel endpoints.
package env

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/golang/glog"
	"gopkg.in/yaml.v3"

	"github.com/robotalks/cwkeyer/pkg/keyer"
)

// Display kinds
const (
	DisplayConsole = "console"
	DisplayLog     = "log"
)

// Actuator kinds
const (
	ActuatorsGPIO    = "gpio"
	ActuatorsConsole = "console"
	ActuatorsLog     = "log"
)

// Config provides options to assemble a keyer.
type Config struct {
	ID          string `env:"KEYER_ID" yaml:"id"`
	Description string `env:"KEYER_DESCRIPTION" yaml:"description"`

	// MQTTBrokerURL specifies the MQTT broker to announce on.
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL string `env:"KEYER_MQTT_URL" yaml:"mqtt"`
	TCPListen     string `env:"KEYER_TCP_LISTEN" yaml:"tcp_listen"`
	WSListen      string `env:"KEYER_WS_LISTEN" yaml:"ws_listen"`

	Display        string `env:"KEYER_DISPLAY" yaml:"display"`
	Actuators      string `env:"KEYER_ACTUATORS" yaml:"actuators"`
	DotPin         string `env:"KEYER_DOT_PIN" yaml:"dot_pin"`
	DashPin        string `env:"KEYER_DASH_PIN" yaml:"dash_pin"`
	ButtonPin      string `env:"KEYER_BUTTON_PIN" yaml:"button_pin"`
	Joystick       int    `env:"KEYER_JOYSTICK" yaml:"joystick"`
	JoystickButton int    `env:"KEYER_JOYSTICK_BUTTON" yaml:"joystick_button"`

	ShutdownGrace time.Duration `env:"KEYER_SHUTDOWN_GRACE" yaml:"shutdown_grace"`

	// ConfigFile is a YAML file loaded after flags, overriding them.
	ConfigFile string `env:"KEYER_CONFIG" yaml:"-"`

	Keyer keyer.Config `yaml:",inline"`
}

var defaultConfig = Config{
	MQTTBrokerURL:  "mqtt://localhost:1883/cwkeyer/",
	Display:        DisplayConsole,
	Actuators:      ActuatorsGPIO,
	DotPin:         "GPIO18",
	DashPin:        "GPIO23",
	ButtonPin:      "GPIO24",
	Joystick:       -1,
	ShutdownGrace:  keyer.WordGapDuration + 500*time.Millisecond,
}

func init() {
	defaultConfig.ID = MachineID()
	if err := env.Parse(&defaultConfig); err != nil {
		glog.Warningf("env: %v", err)
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	keyer.SetupFlags()
	flag.StringVar(&defaultConfig.ConfigFile, "config", defaultConfig.ConfigFile, "YAML config file, overrides flags.")
	flag.StringVar(&defaultConfig.ID, "id", defaultConfig.ID, "Keyer ID")
	flag.StringVar(&defaultConfig.Description, "description", defaultConfig.Description, "Keyer description for discovery")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL, empty disables")
	flag.StringVar(&defaultConfig.TCPListen, "tcp-listen", defaultConfig.TCPListen, "Serve the panel over TCP on this address")
	flag.StringVar(&defaultConfig.WSListen, "ws-listen", defaultConfig.WSListen, "Serve the panel over websocket on this address")
	flag.StringVar(&defaultConfig.Display, "display", defaultConfig.Display, "Display: console or log")
	flag.StringVar(&defaultConfig.Actuators, "actuators", defaultConfig.Actuators, "Actuators: gpio, console or log")
	flag.StringVar(&defaultConfig.DotPin, "dot-pin", defaultConfig.DotPin, "GPIO pin of actuator A (dot)")
	flag.StringVar(&defaultConfig.DashPin, "dash-pin", defaultConfig.DashPin, "GPIO pin of actuator B (dash)")
	flag.StringVar(&defaultConfig.ButtonPin, "button-pin", defaultConfig.ButtonPin, "GPIO pin of the toggle button, empty disables")
	flag.IntVar(&defaultConfig.Joystick, "joystick", defaultConfig.Joystick, "Joystick index as toggle input, -2 auto detect, -1 disables")
	flag.IntVar(&defaultConfig.JoystickButton, "joystick-button", defaultConfig.JoystickButton, "Joystick button index")
	flag.DurationVar(&defaultConfig.ShutdownGrace, "shutdown-grace", defaultConfig.ShutdownGrace, "Time to wait for cleanup on shutdown, at least the longest unit")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
// Keyer options are taken from keyer.Default so their flags apply.
func NewConfig() *Config {
	conf := defaultConfig
	conf.Keyer = *keyer.Default()
	return &conf
}

// Load creates a Config with defaults and flags, then applies ConfigFile.
func Load() (*Config, error) {
	conf := NewConfig()
	if conf.ConfigFile != "" {
		if err := conf.LoadFile(conf.ConfigFile); err != nil {
			return nil, err
		}
	}
	return conf, nil
}

// LoadFile overrides the config with values present in a YAML file.
func (c *Config) LoadFile(fn string) error {
	data, err := os.ReadFile(fn)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %v", fn, err)
	}
	return nil
}

// Validate checks the config.
func (c *Config) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("keyer id must be specified")
	}
	switch c.Display {
	case DisplayConsole, DisplayLog:
	default:
		return fmt.Errorf("unknown display: %q", c.Display)
	}
	switch c.Actuators {
	case ActuatorsGPIO, ActuatorsConsole, ActuatorsLog:
	default:
		return fmt.Errorf("unknown actuators: %q", c.Actuators)
	}
	return c.Keyer.Validate()
}
