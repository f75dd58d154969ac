// Package remote describes keyers announced for remote control.
package remote

import "strings"

// Meta provides metadata of a keyer.
type Meta struct {
	Description string            `json:"description,omitempty"`
	Presets     []string          `json:"presets,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
}

// Info identifies a discovered keyer.
type Info struct {
	ID   string
	Meta Meta
}

// String formats Info for display.
func (i Info) String() string {
	var sb strings.Builder
	sb.WriteString(i.ID)
	if i.Meta.Description != "" {
		sb.WriteString(": ")
		sb.WriteString(i.Meta.Description)
	}
	if len(i.Meta.Presets) > 0 {
		sb.WriteString(" [")
		sb.WriteString(strings.Join(i.Meta.Presets, " | "))
		sb.WriteString("]")
	}
	return sb.String()
}
