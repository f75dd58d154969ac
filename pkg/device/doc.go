// Package device groups the hardware collaborators of the keyer:
// actuators, displays and input signals. Subpackages implement them on
// GPIO pins, joysticks, a terminal and the log.
package device
