package joystick

import (
	"context"
	"fmt"
	"time"

	"github.com/golang/glog"

	dev "github.com/robotalks/cwkeyer/pkg/device"
	fx "github.com/robotalks/cwkeyer/pkg/framework"
)

// DefaultRetry is the delay before reopening a missing or lost device.
const DefaultRetry = time.Second

// Button reports presses of a single joystick button.
// The device is reopened whenever it disappears.
type Button struct {
	// DeviceIndex selects /dev/input/jsN, -1 for auto detection.
	DeviceIndex int
	// Button is the index of the watched button.
	Button int
	Retry  time.Duration
	// OpenFunc overrides how the device is opened.
	OpenFunc func() (Device, error)

	dev.Callbacks
}

// NewButton creates a Button.
func NewButton(deviceIndex, button int) *Button {
	return &Button{DeviceIndex: deviceIndex, Button: button, Retry: DefaultRetry}
}

// Name implements framework.Named.
func (b *Button) Name() string {
	return fmt.Sprintf("joystick:%d", b.Button)
}

// Run implements framework.Runnable.
func (b *Button) Run(ctx context.Context) error {
	retry := b.Retry
	if retry <= 0 {
		retry = DefaultRetry
	}
	timer := time.After(0)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer:
		}
		js, err := b.open()
		if err != nil || js == nil {
			timer = time.After(retry)
			continue
		}
		glog.Infof("joystick %d %q opened", js.Index(), js.Name())
		err = fx.RunWithContextCloser(ctx, js, func() error {
			return b.poll(js)
		})
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		glog.Warningf("joystick %d lost: %v", js.Index(), err)
		timer = time.After(retry)
	}
}

func (b *Button) open() (Device, error) {
	if b.OpenFunc != nil {
		return b.OpenFunc()
	}
	if b.DeviceIndex >= 0 {
		js, err := Open(b.DeviceIndex)
		if err != nil {
			glog.V(2).Infof("open joystick %d error: %v", b.DeviceIndex, err)
		}
		return js, err
	}
	js, err := DetectAndOpen(0)
	if err != nil {
		glog.V(2).Infof("detect joystick error: %v", err)
	} else if js == nil {
		glog.V(3).Info("no joystick detected")
	}
	return js, err
}

func (b *Button) poll(js Device) error {
	for {
		ev, err := js.ReadEvent()
		if err != nil {
			return err
		}
		if be, ok := ev.(ButtonEvent); ok && !be.IsInit() && be.Index() == b.Button && be.Pressed() {
			glog.V(2).Infof("joystick button %d pressed", b.Button)
			b.Fire()
		}
	}
}
