// Package logdev implements keyer devices on top of glog for headless runs.
package logdev

import "github.com/golang/glog"

// Actuator logs every state change.
type Actuator struct {
	Name string
}

// SetOn implements keyer.Actuator.
func (a *Actuator) SetOn() {
	glog.V(1).Infof("%s ON", a.Name)
}

// SetOff implements keyer.Actuator.
func (a *Actuator) SetOff() {
	glog.V(1).Infof("%s OFF", a.Name)
}

// Display logs the shown lines.
type Display struct{}

// Show implements keyer.Display.
func (Display) Show(line1, line2 string) {
	if line1 == "" && line2 == "" {
		glog.Info("display cleared")
		return
	}
	glog.Infof("display: %s %s", line1, line2)
}
