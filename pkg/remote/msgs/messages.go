package msgs

import "github.com/golang/protobuf/proto"

// CommandOK is the generic reply indicating success for commands.
type CommandOK struct {
}

// NewCommandOK creates a CommandOK.
func NewCommandOK() *CommandOK {
	return &CommandOK{}
}

// NewMessage implements Message.
func (m *CommandOK) NewMessage() Message { return &CommandOK{} }

// TypeID implements Message.
func (m *CommandOK) TypeID() uint32 { return CommandOKTypeID }

// ProtoMessage implements proto.Message.
func (m *CommandOK) ProtoMessage() {}

// Reset implements proto.Message.
func (m *CommandOK) Reset() { *m = CommandOK{} }

// String implements proto.Message.
func (m *CommandOK) String() string { return proto.CompactTextString(m) }

// CommandErr is the generic message representing command error.
type CommandErr struct {
	Message string `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
}

// NewCommandErr creates a CommandErr from an error.
func NewCommandErr(err error) *CommandErr {
	return &CommandErr{Message: err.Error()}
}

// NewMessage implements Message.
func (m *CommandErr) NewMessage() Message { return &CommandErr{} }

// TypeID implements Message.
func (m *CommandErr) TypeID() uint32 { return CommandErrTypeID }

// ProtoMessage implements proto.Message.
func (m *CommandErr) ProtoMessage() {}

// Reset implements proto.Message.
func (m *CommandErr) Reset() { *m = CommandErr{} }

// String implements proto.Message.
func (m *CommandErr) String() string { return proto.CompactTextString(m) }

// Error implements error.
func (m *CommandErr) Error() string { return m.Message }

// ToggleCommand presses the toggle input remotely.
type ToggleCommand struct {
}

// NewMessage implements Message.
func (m *ToggleCommand) NewMessage() Message { return &ToggleCommand{} }

// TypeID implements Message.
func (m *ToggleCommand) TypeID() uint32 { return ToggleCommandTypeID }

// ProtoMessage implements proto.Message.
func (m *ToggleCommand) ProtoMessage() {}

// Reset implements proto.Message.
func (m *ToggleCommand) Reset() { *m = ToggleCommand{} }

// String implements proto.Message.
func (m *ToggleCommand) String() string { return proto.CompactTextString(m) }

// StatusQuery asks for the current PanelStatus.
type StatusQuery struct {
}

// NewMessage implements Message.
func (m *StatusQuery) NewMessage() Message { return &StatusQuery{} }

// TypeID implements Message.
func (m *StatusQuery) TypeID() uint32 { return StatusQueryTypeID }

// ProtoMessage implements proto.Message.
func (m *StatusQuery) ProtoMessage() {}

// Reset implements proto.Message.
func (m *StatusQuery) Reset() { *m = StatusQuery{} }

// String implements proto.Message.
func (m *StatusQuery) String() string { return proto.CompactTextString(m) }

// StatusReply is the response for StatusQuery.
type StatusReply struct {
	Status *PanelStatus `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
}

// NewMessage implements Message.
func (m *StatusReply) NewMessage() Message { return &StatusReply{} }

// TypeID implements Message.
func (m *StatusReply) TypeID() uint32 { return StatusReplyTypeID }

// ProtoMessage implements proto.Message.
func (m *StatusReply) ProtoMessage() {}

// Reset implements proto.Message.
func (m *StatusReply) Reset() { *m = StatusReply{} }

// String implements proto.Message.
func (m *StatusReply) String() string { return proto.CompactTextString(m) }

// PanelStatus is an Event message reflecting the display and
// the number of remote presses.
type PanelStatus struct {
	Line1   string `protobuf:"bytes,1,opt,name=line1,proto3" json:"line1"`
	Line2   string `protobuf:"bytes,2,opt,name=line2,proto3" json:"line2"`
	Presses uint64 `protobuf:"varint,3,opt,name=presses,proto3" json:"presses"`
}

// NewMessage implements Message.
func (m *PanelStatus) NewMessage() Message { return &PanelStatus{} }

// TypeID implements Message.
func (m *PanelStatus) TypeID() uint32 { return PanelStatusTypeID }

// ProtoMessage implements proto.Message.
func (m *PanelStatus) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PanelStatus) Reset() { *m = PanelStatus{} }

// String implements proto.Message.
func (m *PanelStatus) String() string { return proto.CompactTextString(m) }

// TypeID Groups
const (
	GroupCommand uint32 = 0x00000000
	GroupPanel   uint32 = 0x00010000
)

// TypeIDs
const (
	CommandOKTypeID     uint32 = GroupCommand | TypeIDMaskReply | 0x0000
	CommandErrTypeID    uint32 = GroupCommand | TypeIDMaskReply | 0x0001
	ToggleCommandTypeID uint32 = GroupPanel | 0x0000
	StatusQueryTypeID   uint32 = GroupPanel | 0x0001
	StatusReplyTypeID   uint32 = StatusQueryTypeID | TypeIDMaskReply
	PanelStatusTypeID   uint32 = TypeIDKindEvent | GroupPanel | 0x0001
)
