// Package msgs defines the remote panel protocol and all message schemas.
//
// Every packet is a Typed envelope. Commands flow from a client to the
// keyer and are answered with a reply carrying the same sequence. Events
// flow from the keyer to every attached client.
package msgs
