package buffer

// InsertChar inserts ch immediately before the character under c.
//
// The returned cursor is c itself: the insertion point stays just after the
// new character. Any byte is accepted, control bytes included.
func (d *Document) InsertChar(c Cursor, ch byte) Cursor {
	at := d.mustChar(c)
	change := d.beginChange(OpInsert, c)

	line := d.chars[at].line
	prev := d.chars[at].prev
	id := d.newChar(ch, line)
	d.chars[id].prev = prev
	d.chars[id].next = at
	if prev != nilID {
		d.chars[prev].next = id
	} else {
		d.lines[line].begin = id
	}
	d.chars[at].prev = id

	d.version++
	d.commitChange(change, c)
	return c
}

// Enter breaks the line at c and returns a cursor on the first character of
// the new line.
//
// On a sentinel a new empty line is added below. Otherwise the characters
// from c through the end of the line move to a new line below, and the
// original line gets a fresh sentinel; the returned cursor is c.
func (d *Document) Enter(c Cursor) Cursor {
	at := d.mustChar(c)
	change := d.beginChange(OpEnter, c)

	head := d.chars[at].line
	nl := d.newLine()

	var begin charID
	if d.isEOL(at) {
		begin = d.newChar(Newline, nl)
	} else {
		prev := d.chars[at].prev
		s := d.newChar(Newline, head)
		d.chars[s].prev = prev
		if prev != nilID {
			d.chars[prev].next = s
		} else {
			d.lines[head].begin = s
		}
		d.chars[at].prev = nilID
		d.reparent(at, nl)
		begin = at
	}
	d.lines[nl].begin = begin
	d.linkLineAfter(head, nl)

	next := d.cursorOf(begin)
	d.version++
	d.commitChange(change, next)
	return next
}

// Delete removes the character under c and returns a cursor on the character
// that followed it.
//
// On a sentinel the next line is joined onto the current one and the cursor
// lands on the join point. On the last line's sentinel Delete is a no-op.
func (d *Document) Delete(c Cursor) Cursor {
	at := d.mustChar(c)
	head := d.chars[at].line

	var next charID
	op := OpDelete
	if d.isEOL(at) {
		below := d.lines[head].next
		if below == nilID {
			return c
		}
		op = OpJoin
		next = d.lines[below].begin
	} else {
		next = d.chars[at].next
	}
	change := d.beginChange(op, c)

	if op == OpJoin {
		below := d.lines[head].next
		d.reparent(next, head)
		d.unlinkLine(below)
		d.freeLine(below)
	}

	prev := d.chars[at].prev
	if prev != nilID {
		d.chars[prev].next = next
	} else {
		d.lines[head].begin = next
	}
	d.chars[next].prev = prev
	d.freeChar(at)

	cur := d.cursorOf(next)
	d.version++
	d.commitChange(change, cur)
	return cur
}

// reparent points every character from id to the end of its chain at line l.
func (d *Document) reparent(id charID, l lineID) {
	for ; id != nilID; id = d.chars[id].next {
		d.chars[id].line = l
	}
}

// InsertText types s before c: bytes are inserted with InsertChar and each
// '\n' breaks the line with Enter. It returns the cursor after the typed text.
func (d *Document) InsertText(c Cursor, s string) Cursor {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			c = d.Enter(c)
			continue
		}
		c = d.InsertChar(c, s[i])
	}
	return c
}
