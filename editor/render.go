package editor

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

func (m *Model) renderContent() string {
	doc := m.sess.Document()
	lines := doc.Lines()
	pos := doc.Pos(m.sess.Cursor())
	digitCount := 0
	if m.cfg.ShowLineNums {
		digitCount = gutterDigits(len(lines))
	}
	width := m.contentWidth()

	out := make([]string, 0, len(lines))
	for row, line := range lines {
		var sb strings.Builder

		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == pos.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digitCount, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		cursorCol := -1
		if m.focused && row == pos.Row {
			cursorCol = pos.Col
		}
		sb.WriteString(m.renderLine(line, cursorCol, width))

		out = append(out, sb.String())
	}

	return strings.Join(out, "\n")
}

// renderLine renders the cells of line that fall in [xOffset, xOffset+width).
// The sentinel is drawn only as the cursor cell. width <= 0 means unbounded.
func (m *Model) renderLine(line string, cursorCol, width int) string {
	left := m.xOffset
	right := int(^uint(0) >> 1)
	if width > 0 {
		right = left + width
	}

	var sb strings.Builder
	x := 0
	for col := 0; col <= len(line); col++ {
		var cell string
		control := false
		if col == len(line) {
			if col != cursorCol {
				break
			}
			cell = " "
		} else {
			cell, control = byteCell(line[col])
		}

		start := x
		x += runewidth.StringWidth(cell)
		if start < left {
			continue
		}
		if x > right {
			break
		}

		style := m.cfg.Style.Text
		if control {
			style = m.cfg.Style.Control
		}
		if col == cursorCol {
			style = m.cfg.Style.Cursor
		}
		sb.WriteString(style.Render(cell))
	}
	return sb.String()
}

// byteCell returns the visible form of b: caret notation for control bytes,
// \xNN for bytes outside ASCII.
func byteCell(b byte) (cell string, control bool) {
	switch {
	case b < 32:
		return "^" + string(rune(b+64)), true
	case b == 127:
		return "^?", true
	case b >= 128:
		return fmt.Sprintf(`\x%02x`, b), true
	default:
		return string(rune(b)), false
	}
}

// cellOffset returns the cell column where byte col of line starts.
func cellOffset(line string, col int) int {
	x := 0
	for i := 0; i < col && i < len(line); i++ {
		x += cellWidth(line[i])
	}
	return x
}

func cellWidth(b byte) int {
	cell, _ := byteCell(b)
	return runewidth.StringWidth(cell)
}

func (m *Model) contentWidth() int {
	return m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize() - m.gutterWidth()
}

func gutterDigits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
