//go:build !linux
// +build !linux

package joystick

import "errors"

// ErrUnsupported is returned on systems without the Linux joystick API.
var ErrUnsupported = errors.New("joystick not supported on this system")

// Open opens the device with specified index.
func Open(index int) (Device, error) {
	return nil, ErrUnsupported
}

// DetectAndOpen detects a next available device from startIndex and opens it.
func DetectAndOpen(startIndex int) (Device, error) {
	return nil, ErrUnsupported
}
