package editor

import tea "github.com/charmbracelet/bubbletea"

// ScrollPolicy says whether the viewport may scroll away from the cursor.
type ScrollPolicy int

const (
	// ScrollAllowManual lets the mouse wheel scroll the viewport on its own.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCursorOnly moves the viewport only to keep the cursor visible.
	ScrollFollowCursorOnly
)

func (p ScrollPolicy) String() string {
	switch p {
	case ScrollAllowManual:
		return "manual"
	case ScrollFollowCursorOnly:
		return "follow-cursor"
	default:
		return "unknown"
	}
}

func isWheel(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}
