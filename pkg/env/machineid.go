package env

import (
	"os"

	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"
)

const (
	appID    = "cwkeyer"
	idLength = 12
)

// MachineID retrieves a stable ID identifying the keyer on this machine.
// The raw machine id is hashed with the application id so it is not leaked.
func MachineID() string {
	id, err := machineid.ProtectedID(appID)
	if err != nil {
		glog.Warningf("machine id: %v", err)
		host, _ := os.Hostname()
		return host
	}
	if len(id) > idLength {
		id = id[:idLength]
	}
	return id
}
