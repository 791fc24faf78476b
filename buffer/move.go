package buffer

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp   // first character of the line above
	DirDown // first character of the line below
	DirHome // line start
	DirEnd  // line sentinel
)

func (d MoveDir) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirHome:
		return "home"
	case DirEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Move returns the cursor one step from c in direction dir.
// At a document boundary the same cursor is returned.
func (d *Document) Move(c Cursor, dir MoveDir) Cursor {
	at := d.mustChar(c)
	next := d.move(at, dir)
	if next == at {
		return c
	}
	return d.cursorOf(next)
}

func (d *Document) Left(c Cursor) Cursor  { return d.Move(c, DirLeft) }
func (d *Document) Right(c Cursor) Cursor { return d.Move(c, DirRight) }
func (d *Document) Up(c Cursor) Cursor    { return d.Move(c, DirUp) }
func (d *Document) Down(c Cursor) Cursor  { return d.Move(c, DirDown) }
func (d *Document) Home(c Cursor) Cursor  { return d.Move(c, DirHome) }
func (d *Document) End(c Cursor) Cursor   { return d.Move(c, DirEnd) }

func (d *Document) move(at charID, dir MoveDir) charID {
	ch := d.chars[at]
	ln := d.lines[ch.line]

	switch dir {
	case DirLeft:
		if ch.prev != nilID {
			return ch.prev
		}
		if ln.prev == nilID {
			return at
		}
		return d.lineEnd(ln.prev)
	case DirRight:
		if ch.next != nilID {
			return ch.next
		}
		if ln.next == nilID {
			return at
		}
		return d.lines[ln.next].begin
	case DirUp:
		if ln.prev == nilID {
			return at
		}
		return d.lines[ln.prev].begin
	case DirDown:
		if ln.next == nilID {
			return at
		}
		return d.lines[ln.next].begin
	case DirHome:
		return ln.begin
	case DirEnd:
		// Walk from the line head, not from at.
		return d.lineEnd(ch.line)
	default:
		return at
	}
}
