package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lined/buffer"
	"github.com/iw2rmb/lined/command"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.cfg.ScrollPolicy == ScrollAllowManual || !isWheel(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
	}

	if !m.focused || m.err != nil {
		return m, cmd
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, cmd
	}
	if !m.mouseInBounds(msg.X, msg.Y) {
		return m, cmd
	}

	m.moveTo(m.ScreenToDoc(msg.X, msg.Y))
	m.sync()
	if m.err != nil {
		return m, tea.Batch(cmd, tea.Quit)
	}
	return m, cmd
}

// moveTo walks the cursor to p with motion opcodes only: Home, then Up or
// Down to the row, then Right to the column.
func (m *Model) moveTo(p buffer.Pos) {
	cur := m.sess.Document().Pos(m.sess.Cursor())
	if cur == p {
		return
	}

	m.exec(command.Command{Op: command.OpHome})
	for row := cur.Row; row < p.Row && m.err == nil; row++ {
		m.exec(command.Command{Op: command.OpDown})
	}
	for row := cur.Row; row > p.Row && m.err == nil; row-- {
		m.exec(command.Command{Op: command.OpUp})
	}
	for col := 0; col < p.Col && m.err == nil; col++ {
		m.exec(command.Command{Op: command.OpRight})
	}
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}
