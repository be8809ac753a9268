package tetris

// Command is a discrete player action on a Field.
type Command uint8

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdRotateLeft
	CmdRotateRight
	CmdSoftDrop
	CmdHardDrop
	CmdTogglePause
	CmdToggleGhost
)

func (c Command) String() string {
	switch c {
	case CmdMoveLeft:
		return "move-left"
	case CmdMoveRight:
		return "move-right"
	case CmdRotateLeft:
		return "rotate-left"
	case CmdRotateRight:
		return "rotate-right"
	case CmdSoftDrop:
		return "soft-drop"
	case CmdHardDrop:
		return "hard-drop"
	case CmdTogglePause:
		return "toggle-pause"
	case CmdToggleGhost:
		return "toggle-ghost"
	}
	return "none"
}

// IsDrop reports whether c moves the piece down on player request.
func (c Command) IsDrop() bool {
	return c == CmdSoftDrop || c == CmdHardDrop
}

// Apply dispatches c to the matching Field method.
func (f *Field) Apply(c Command) {
	switch c {
	case CmdMoveLeft:
		f.MoveLeft()
	case CmdMoveRight:
		f.MoveRight()
	case CmdRotateLeft:
		f.RotateLeft()
	case CmdRotateRight:
		f.RotateRight()
	case CmdSoftDrop:
		f.SoftDrop()
	case CmdHardDrop:
		f.HardDrop()
	case CmdTogglePause:
		f.TogglePause()
	case CmdToggleGhost:
		f.ToggleGhost()
	}
}
