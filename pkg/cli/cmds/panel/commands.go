// Package panel adds the keyer panel commands to the shell.
package panel

import (
	"strconv"
	"time"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/cwkeyer/pkg/cli/sh"
	"github.com/robotalks/cwkeyer/pkg/remote/msgs"
)

// DefaultWatch is how long watch prints events without an argument.
const DefaultWatch = 10 * time.Second

var (
	// ToggleCmd exposes ToggleCommand.
	ToggleCmd = ishell.Cmd{
		Name:    "toggle",
		Aliases: []string{"t"},
		Help:    "switch the keyer to the other preset message",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.ToggleCommand{})
		}),
	}

	// StatusCmd exposes StatusQuery.
	StatusCmd = ishell.Cmd{
		Name:    "status",
		Aliases: []string{"s"},
		Help:    "show the keyer display",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.StatusQuery{})
		}),
	}

	// WatchCmd prints PanelStatus events.
	WatchCmd = ishell.Cmd{
		Name:    "watch",
		Aliases: []string{"w"},
		Help:    "[SECONDS] print display updates",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			dur := DefaultWatch
			if len(c.Args) > 0 {
				secs, err := strconv.Atoi(c.Args[0])
				if err != nil {
					c.Err(err)
					return
				}
				dur = time.Duration(secs) * time.Second
			}
			s := sh.ShellFrom(c)
			Watch(s.Session, dur, func(msg msgs.Message) {
				s.PrintMsg(c, msg)
			})
		}),
	}
)

// Watch passes events of session to fn until dur elapses or the session ends.
func Watch(session *sh.Session, dur time.Duration, fn func(msgs.Message)) {
	timeout := time.After(dur)
	events := session.Conn.Events()
	for {
		select {
		case msg, ok := <-events:
			if !ok {
				return
			}
			fn(msg)
		case <-session.Ctx.Done():
			return
		case <-timeout:
			return
		}
	}
}

func init() {
	sh.AddCmds(
		&ToggleCmd,
		&StatusCmd,
		&WatchCmd,
	)
}
