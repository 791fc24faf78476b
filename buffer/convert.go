package buffer

// Pos returns the (row, col) of the character under c.
//
// This walks the document from the first line, so it costs O(rows + col).
func (d *Document) Pos(c Cursor) Pos {
	at := d.mustChar(c)

	col := 0
	for id := d.chars[at].prev; id != nilID; id = d.chars[id].prev {
		col++
	}
	row := 0
	for l := d.lines[d.chars[at].line].prev; l != nilID; l = d.lines[l].prev {
		row++
	}
	return Pos{Row: row, Col: col}
}

// CursorAt returns a cursor on the character at p.
// ok is false when p is outside the document.
func (d *Document) CursorAt(p Pos) (c Cursor, ok bool) {
	if p.Row < 0 || p.Col < 0 {
		return Cursor{}, false
	}
	l := d.lineAt(p.Row)
	if l == nilID {
		return Cursor{}, false
	}
	id := d.lines[l].begin
	for i := 0; i < p.Col; i++ {
		id = d.chars[id].next
		if id == nilID {
			return Cursor{}, false
		}
	}
	return d.cursorOf(id), true
}

// ClampPos clamps p into the document bounds.
func (d *Document) ClampPos(p Pos) Pos {
	return ClampPos(p, d.lineCount, d.LineLen)
}

// LineLen returns the content length of row, sentinel excluded.
// Rows outside the document have length 0.
func (d *Document) LineLen(row int) int {
	l := d.lineAt(row)
	if l == nilID {
		return 0
	}
	n := 0
	for id := d.lines[l].begin; d.chars[id].next != nilID; id = d.chars[id].next {
		n++
	}
	return n
}

func (d *Document) lineAt(row int) lineID {
	if row < 0 || row >= d.lineCount {
		return nilID
	}
	l := d.first
	for i := 0; i < row; i++ {
		l = d.lines[l].next
	}
	return l
}
