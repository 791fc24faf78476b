package editor

import "github.com/iw2rmb/lined/buffer"

// ViewportState is a host-facing snapshot of the editor camera.
type ViewportState struct {
	// TopRow is the document row rendered at screen row 0.
	TopRow int
	// VisibleRows is the number of content rows available for rendering.
	VisibleRows int
	// LeftCellOffset is the horizontal scroll in terminal cells.
	LeftCellOffset int
}

func (m Model) ViewportState() ViewportState {
	top := m.viewport.YOffset
	if top < 0 {
		top = 0
	}
	return ViewportState{
		TopRow:         top,
		VisibleRows:    m.visibleRowCount(),
		LeftCellOffset: m.xOffset,
	}
}

// ScreenToDoc maps viewport-local cell coordinates to the nearest document
// position. Points left of the text, including the gutter, land on column 0.
func (m Model) ScreenToDoc(x, y int) buffer.Pos {
	doc := m.sess.Document()
	lines := doc.Lines()

	row := clampInt(m.ViewportState().TopRow+y, 0, len(lines)-1)
	line := lines[row]

	cx := x - m.gutterWidth() + m.xOffset
	if cx <= 0 {
		return buffer.Pos{Row: row, Col: 0}
	}
	start := 0
	for col := 0; col < len(line); col++ {
		w := cellWidth(line[col])
		if cx < start+w {
			return buffer.Pos{Row: row, Col: col}
		}
		start += w
	}
	return buffer.Pos{Row: row, Col: len(line)}
}

// DocToScreen maps a document position to viewport-local cell coordinates.
//
// ok is false when the position is scrolled out of view.
func (m Model) DocToScreen(pos buffer.Pos) (x int, y int, ok bool) {
	doc := m.sess.Document()
	lines := doc.Lines()
	pos = buffer.ClampPos(pos, len(lines), func(row int) int { return len(lines[row]) })

	vs := m.ViewportState()
	y = pos.Row - vs.TopRow
	if y < 0 || (vs.VisibleRows > 0 && y >= vs.VisibleRows) {
		return 0, 0, false
	}

	cx := cellOffset(lines[pos.Row], pos.Col) - m.xOffset
	if cx < 0 {
		return 0, 0, false
	}
	if w := m.contentWidth(); w > 0 && cx >= w {
		return 0, 0, false
	}
	return m.gutterWidth() + cx, y, true
}

func (m Model) visibleRowCount() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h < 0 {
		return 0
	}
	return h
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(m.sess.Document().LineCount()) + 1
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
