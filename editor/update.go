package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lined/command"
)

func (m Model) updateKey(msg tea.KeyMsg) Model {
	if !m.focused {
		return m
	}

	km := m.cfg.KeyMap

	switch {
	case key.Matches(msg, km.Left):
		m.exec(command.Command{Op: command.OpLeft})
	case key.Matches(msg, km.Right):
		m.exec(command.Command{Op: command.OpRight})
	case key.Matches(msg, km.Up):
		m.exec(command.Command{Op: command.OpUp})
	case key.Matches(msg, km.Down):
		m.exec(command.Command{Op: command.OpDown})
	case key.Matches(msg, km.Home):
		m.exec(command.Command{Op: command.OpHome})
	case key.Matches(msg, km.End):
		m.exec(command.Command{Op: command.OpEnd})

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.deleteBackward()
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.exec(command.Command{Op: command.OpDelete})
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly {
			m.exec(command.Command{Op: command.OpEnter})
		}

	default:
		if m.cfg.ReadOnly {
			return m
		}
		switch msg.Type {
		case tea.KeyTab:
			m.exec(command.Command{Op: command.OpInsert, Arg: '\t'})
		case tea.KeySpace:
			m.exec(command.Command{Op: command.OpInsert, Arg: ' '})
		case tea.KeyRunes:
			if msg.Alt {
				return m
			}
			m.exec(textCommands(msg.Runes)...)
		}
	}
	return m
}

// exec runs cmds in order and stops at the first error.
func (m *Model) exec(cmds ...command.Command) {
	for _, cmd := range cmds {
		if m.cfg.OnCommand != nil && !m.cfg.OnCommand(cmd) {
			continue
		}
		if _, err := m.sess.Exec(cmd); err != nil {
			m.err = err
			return
		}
	}
}

// deleteBackward is Left followed by Delete, unless Left hits the document start.
func (m *Model) deleteBackward() {
	before := m.sess.Cursor()
	m.exec(command.Command{Op: command.OpLeft})
	if m.err != nil || m.sess.Cursor() == before {
		return
	}
	m.exec(command.Command{Op: command.OpDelete})
}

// textCommands translates typed or pasted runes to insert and enter opcodes.
// Runes that do not fit in a byte are dropped; "\r\n" and "\r" become a
// single line break.
func textCommands(rs []rune) []command.Command {
	b := make([]byte, 0, len(rs))
	for _, r := range rs {
		if r < 0 || r > 0xff {
			continue
		}
		b = append(b, byte(r))
	}
	s := strings.ReplaceAll(string(b), "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	cmds := make([]command.Command, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			cmds = append(cmds, command.Command{Op: command.OpEnter})
			continue
		}
		cmds = append(cmds, command.Command{Op: command.OpInsert, Arg: s[i]})
	}
	return cmds
}
