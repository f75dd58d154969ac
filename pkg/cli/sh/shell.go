// Package sh provides the interactive shell to operate keyers remotely.
package sh

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"reflect"
	"time"

	"github.com/abiosoft/ishell"
	"github.com/golang/glog"

	"github.com/robotalks/cwkeyer/pkg/remote"
	"github.com/robotalks/cwkeyer/pkg/remote/msgs"
)

// CommandTimeout bounds the wait for a reply.
const CommandTimeout = time.Second

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool
	AutoConnect bool

	Shell   *ishell.Shell
	Config  *Config
	Session *Session
}

// Session is a running connection to a keyer.
type Session struct {
	Ctx    context.Context
	Cancel func()
	Target string
	Conn   Conn
}

const (
	shellKey          = "$shell"
	unconnectedPrompt = "[none] > "
)

var (
	// flags

	evalOnly   bool
	outputJSON bool

	// commands
	commands = []*ishell.Cmd{
		&DiscoverCmd,
		&ConnectCmd,
		&DisconnectCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(conf *Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell:  ishell.New(),
		Config: conf,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(unconnectedPrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// MustBeConnected wraps command func requires a connection.
func MustBeConnected(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if ShellFrom(c).Session == nil {
			c.Err(fmt.Errorf("not connected"))
			return
		}
		fn(c)
	}
}

// Do sends a command on the current session and waits for the reply.
func (s *Shell) Do(msg msgs.Message) (msgs.Message, error) {
	if s.Session == nil {
		return nil, fmt.Errorf("not connected")
	}
	select {
	case res := <-s.Session.Conn.DoCommand(msg).ResultChan():
		return res.Msg, res.Err
	case <-time.After(CommandTimeout):
		return nil, context.DeadlineExceeded
	}
}

// FormatMsg prints a message into friendly string for display.
func FormatMsg(msg msgs.Message) string {
	switch m := msg.(type) {
	case *msgs.CommandOK:
		return "OK"
	case *msgs.StatusReply:
		if m.Status == nil {
			return "no status"
		}
		return FormatMsg(m.Status)
	case *msgs.PanelStatus:
		return fmt.Sprintf("%s %s (remote presses: %d)", m.Line1, m.Line2, m.Presses)
	}
	return fmt.Sprintf("%s %s", reflect.Indirect(reflect.ValueOf(msg)).Type().Name(), msg.String())
}

// PrintMsg prints msg in the selected output format.
func (s *Shell) PrintMsg(c *ishell.Context, msg msgs.Message) {
	if s.OutputJSON {
		out, err := json.Marshal(msg)
		if err != nil {
			c.Err(err)
			return
		}
		c.Println(string(out))
		return
	}
	c.Println(FormatMsg(msg))
}

// DoCommand runs a command and prints the result.
func DoCommand(c *ishell.Context, msg msgs.Message) error {
	s := ShellFrom(c)
	reply, err := s.Do(msg)
	if err != nil {
		c.Err(err)
		return err
	}
	s.PrintMsg(c, reply)
	return nil
}

// WithAutoConnect sets AutoConnect.
func (s *Shell) WithAutoConnect(en bool) *Shell {
	s.AutoConnect = en
	return s
}

// SelectKeyer discovers keyers and asks for a choice.
func (s *Shell) SelectKeyer() (*remote.Info, error) {
	infoList, err := s.Config.Discover(context.TODO())
	if err != nil {
		return nil, err
	}
	if len(infoList) == 0 {
		return nil, nil
	}
	var index int
	if len(infoList) > 1 {
		if !s.Interactive {
			return nil, fmt.Errorf("more than 1 keyers discovered in non-interactive mode")
		}
		items := make([]string, len(infoList))
		for n, info := range infoList {
			items[n] = info.String()
		}
		index = s.Shell.MultiChoice(items, "Which one to connect?")
	}
	return &infoList[index], nil
}

// Connect connects to target and replaces the current session.
func (s *Shell) Connect(target string) error {
	session := &Session{Target: target}
	session.Ctx, session.Cancel = context.WithCancel(context.Background())
	conn, err := s.Config.Dial(session.Ctx, target)
	if err != nil {
		session.Cancel()
		return err
	}
	session.Conn = conn
	s.Disconnect()
	s.Session = session
	go func() {
		err := conn.Run(session.Ctx)
		glog.V(1).Infof("session %s closed: %v", target, err)
	}()
	s.setPrompt(fmt.Sprintf("%s > ", target))
	return nil
}

// Disconnect disconnects current keyer.
func (s *Shell) Disconnect() {
	if s.Session != nil {
		s.Session.Cancel()
		s.Session = nil
		s.setPrompt(unconnectedPrompt)
	}
}

func (s *Shell) setPrompt(prompt string) {
	if s.Shell != nil {
		s.Shell.SetPrompt(prompt)
	}
}

// Run runs the shell.
func (s *Shell) Run(args ...string) error {
	if target := s.Config.Target; s.AutoConnect && target != "" {
		if s.Interactive {
			s.Shell.Printf("Connecting %s ...\n", target)
		}
		if err := s.Connect(target); err != nil {
			return fmt.Errorf("connect %q failed: %v", target, err)
		}
	}
	defer s.Disconnect()

	if len(args) > 0 {
		return s.Shell.Process(args...)
	}
	if s.Interactive {
		s.Shell.Run()
		return nil
	}
	return fmt.Errorf("command expected")
}

var (
	// DiscoverCmd discovers keyers.
	DiscoverCmd = ishell.Cmd{
		Name:    "discover",
		Aliases: []string{"list", "l"},
		Help:    "list keyers announced on the broker",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			infoList, err := s.Config.Discover(context.TODO())
			if err != nil {
				c.Err(err)
				return
			}
			if s.OutputJSON {
				if len(infoList) == 0 {
					// in case infoList is nil, make it empty slice.
					infoList = []remote.Info{}
				}
				out, err := json.Marshal(infoList)
				if err != nil {
					c.Err(err)
					return
				}
				c.Println(string(out))
				return
			}
			if len(infoList) == 0 {
				c.Println("No keyers found")
				return
			}
			for _, info := range infoList {
				c.Println(info.String())
			}
		},
	}

	// ConnectCmd connects a keyer.
	ConnectCmd = ishell.Cmd{
		Name:    "connect",
		Aliases: []string{"c"},
		Help:    "[ID | tcp://host:port | ws://host:port/panel]",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			var target string
			if len(c.Args) >= 1 {
				target = c.Args[0]
			} else {
				info, err := s.SelectKeyer()
				if err != nil {
					c.Err(err)
					return
				}
				if info == nil {
					c.Err(fmt.Errorf("no keyer discovered"))
					return
				}
				target = info.ID
			}
			if err := s.Connect(target); err != nil {
				c.Err(err)
			}
		},
	}

	// DisconnectCmd disconnects current keyer.
	DisconnectCmd = ishell.Cmd{
		Name:    "disconnect",
		Aliases: []string{"d"},
		Help:    "",
		Func: func(c *ishell.Context) {
			ShellFrom(c).Disconnect()
		},
	}
)

// Main is a helper to provide a single call in main.
func Main() error {
	flag.Parse()
	return New(NewConfig()).WithAutoConnect(true).Run(flag.Args()...)
}
