package env

import (
	"context"
	"fmt"

	"github.com/golang/glog"

	"github.com/robotalks/cwkeyer/pkg/device/console"
	"github.com/robotalks/cwkeyer/pkg/device/gpio"
	"github.com/robotalks/cwkeyer/pkg/device/joystick"
	"github.com/robotalks/cwkeyer/pkg/device/logdev"
	fx "github.com/robotalks/cwkeyer/pkg/framework"
	"github.com/robotalks/cwkeyer/pkg/keyer"
	"github.com/robotalks/cwkeyer/pkg/remote"
	"github.com/robotalks/cwkeyer/pkg/remote/comm"
	"github.com/robotalks/cwkeyer/pkg/remote/comm/mqtt"
	"github.com/robotalks/cwkeyer/pkg/remote/comm/stream"
	"github.com/robotalks/cwkeyer/pkg/remote/comm/websocket"
)

// JoystickAutoDetect selects the first joystick found.
const JoystickAutoDetect = -2

var openScreen = console.New

// Env is an assembled keyer.
type Env struct {
	Config      *Config
	Transmitter *keyer.Transmitter
	Panel       *comm.Panel
	// Screen is nil unless the console is used.
	Screen    *console.Screen
	Runnables fx.Runnables

	inputs []keyer.InputSignal
}

// NewEnv creates Env from config.
func (c *Config) NewEnv() (*Env, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	e := &Env{Config: c, Panel: comm.NewPanel()}
	if c.Display == DisplayConsole || c.Actuators == ActuatorsConsole {
		screen, err := openScreen()
		if err != nil {
			return nil, fmt.Errorf("open console error: %v", err)
		}
		e.Screen = screen
		e.inputs = append(e.inputs, screen)
	}

	displays := keyer.Displays{e.Panel}
	if c.Display == DisplayConsole {
		displays = append(displays, e.Screen)
	} else {
		displays = append(displays, logdev.Display{})
	}

	dot, dash, err := c.newActuators(e.Screen)
	if err != nil {
		e.Close()
		return nil, err
	}
	if err := c.addInputs(e); err != nil {
		e.Close()
		return nil, err
	}
	if err := c.addRemotes(e); err != nil {
		e.Close()
		return nil, err
	}

	tx, err := c.Keyer.NewTransmitter(dot, dash, displays)
	if err != nil {
		e.Close()
		return nil, err
	}
	tx.Selector.Bind(e.inputs...)
	e.Transmitter = tx
	if e.Screen != nil {
		e.Runnables.Add(&consoleTransmitter{screen: e.Screen, tx: tx})
	} else {
		e.Runnables.Add(tx)
	}
	return e, nil
}

// consoleTransmitter keeps the console up until the transmitter has
// cleared the display and released the indicators.
type consoleTransmitter struct {
	screen *console.Screen
	tx     *keyer.Transmitter
}

func (c *consoleTransmitter) Name() string {
	return c.tx.Name()
}

func (c *consoleTransmitter) Run(ctx context.Context) error {
	screenCtx, cancel := context.WithCancel(context.Background())
	screenErr := make(chan error, 1)
	go func() {
		screenErr <- c.screen.Run(screenCtx)
	}()
	err := c.tx.Run(ctx)
	cancel()
	if serr := <-screenErr; serr != nil && serr != context.Canceled {
		glog.Warningf("console: %v", serr)
	}
	return err
}

func (c *Config) newActuators(screen *console.Screen) (dot, dash keyer.Actuator, err error) {
	switch c.Actuators {
	case ActuatorsConsole:
		return screen.Indicator(console.IndicatorA), screen.Indicator(console.IndicatorB), nil
	case ActuatorsLog:
		return &logdev.Actuator{Name: "A"}, &logdev.Actuator{Name: "B"}, nil
	}
	if err = gpio.Init(); err != nil {
		return nil, nil, fmt.Errorf("init gpio error: %v", err)
	}
	a, err := gpio.OpenActuator(c.DotPin)
	if err != nil {
		return nil, nil, err
	}
	b, err := gpio.OpenActuator(c.DashPin)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func (c *Config) addInputs(e *Env) error {
	e.inputs = append(e.inputs, e.Panel)
	if c.ButtonPin != "" {
		if err := gpio.Init(); err != nil {
			return fmt.Errorf("init gpio error: %v", err)
		}
		button, err := gpio.OpenButton(c.ButtonPin)
		if err != nil {
			return err
		}
		e.inputs = append(e.inputs, button)
		e.Runnables.Add(button)
	}
	if c.Joystick >= 0 || c.Joystick == JoystickAutoDetect {
		index := c.Joystick
		if index == JoystickAutoDetect {
			index = -1
		}
		js := joystick.NewButton(index, c.JoystickButton)
		e.inputs = append(e.inputs, js)
		e.Runnables.Add(js)
	}
	return nil
}

func (c *Config) addRemotes(e *Env) error {
	if c.MQTTBrokerURL != "" {
		info := remote.Info{
			ID: c.ID,
			Meta: remote.Meta{
				Description: c.Description,
				Presets:     []string{c.Keyer.MessageA, c.Keyer.MessageB},
			},
		}
		ep, err := mqtt.NewEndpoint(c.MQTTBrokerURL, info, e.Panel.Serve)
		if err != nil {
			return fmt.Errorf("create MQTT endpoint error: %v", err)
		}
		e.Runnables.Add(ep)
	}
	if c.TCPListen != "" {
		e.Runnables.Add(&stream.Server{
			Addr: c.TCPListen,
			Serve: func(ctx context.Context, rw *stream.ReadWriter) error {
				return e.Panel.Serve(ctx, rw)
			},
		})
	}
	if c.WSListen != "" {
		e.Runnables.Add(&websocket.Server{
			Addr: c.WSListen,
			Serve: func(ctx context.Context, rw *websocket.ReadWriter) error {
				return e.Panel.Serve(ctx, rw)
			},
		})
	}
	return nil
}

// OnQuit registers fn for quit requests from the console.
func (e *Env) OnQuit(fn func()) {
	if e.Screen != nil {
		e.Screen.OnQuit = fn
	}
}

// Close releases the terminal if it was taken before Run.
func (e *Env) Close() {
	if e.Screen != nil {
		e.Screen.Screen.Fini()
	}
}

// Run runs every part of the keyer until ctx is done or a stop signal
// arrives, then waits for cleanup at most ShutdownGrace.
func (e *Env) Run(ctx context.Context) error {
	glog.Infof("keyer %s: A=%q B=%q", e.Config.ID, e.Config.Keyer.MessageA, e.Config.Keyer.MessageB)
	return fx.NewRunnerWith(ctx).
		HandleSignals().
		WithGrace(e.Config.ShutdownGrace).
		Go(e.Runnables...).
		Wait()
}
