package buffer

import "strings"

type charSlot struct {
	ch   byte
	prev charID
	next charID
	line lineID
	gen  uint32
	live bool
}

type lineSlot struct {
	begin charID
	prev  lineID
	next  lineID
	live  bool
}

// Document is the whole text: lines of characters held in slot arenas.
type Document struct {
	chars     []charSlot
	lines     []lineSlot
	freeChars []charID
	freeLines []lineID

	first     lineID
	lineCount int
	charCount int

	version uint64

	lastChange    Change
	hasLastChange bool
}

// New returns a document with one empty line and a cursor on its sentinel.
func New() (*Document, Cursor) {
	d := &Document{first: nilID}
	l := d.newLine()
	s := d.newChar(Newline, l)
	d.lines[l].begin = s
	d.first = l
	return d, d.cursorOf(s)
}

func (d *Document) Version() uint64 { return d.version }

// LineCount returns the number of lines; it is always at least 1.
func (d *Document) LineCount() int { return d.lineCount }

// Len returns the number of stored characters, sentinels included.
func (d *Document) Len() int { return d.charCount }

// First returns a cursor on the first character of the document.
func (d *Document) First() Cursor {
	return d.cursorOf(d.lines[d.first].begin)
}

// Valid reports whether c names a live character of d.
func (d *Document) Valid(c Cursor) bool {
	if c.id < 0 || int(c.id) >= len(d.chars) {
		return false
	}
	s := &d.chars[c.id]
	return s.live && s.gen == c.gen
}

// Byte returns the value of the character under c.
func (d *Document) Byte(c Cursor) byte {
	return d.chars[d.mustChar(c)].ch
}

// IsEOL reports whether c is on the sentinel of its line.
func (d *Document) IsEOL(c Cursor) bool {
	return d.isEOL(d.mustChar(c))
}

// Text returns every stored byte in document order, sentinels included.
func (d *Document) Text() string {
	var sb strings.Builder
	sb.Grow(d.charCount)
	for l := d.first; l != nilID; l = d.lines[l].next {
		for id := d.lines[l].begin; id != nilID; id = d.chars[id].next {
			sb.WriteByte(d.chars[id].ch)
		}
	}
	return sb.String()
}

// Lines returns the stored content of every line without its sentinel.
func (d *Document) Lines() []string {
	out := make([]string, 0, d.lineCount)
	for l := d.first; l != nilID; l = d.lines[l].next {
		out = append(out, d.lineContent(l))
	}
	return out
}

func (d *Document) lineContent(l lineID) string {
	var sb strings.Builder
	for id := d.lines[l].begin; d.chars[id].next != nilID; id = d.chars[id].next {
		sb.WriteByte(d.chars[id].ch)
	}
	return sb.String()
}

func (d *Document) isEOL(id charID) bool {
	return d.chars[id].next == nilID
}

func (d *Document) lineEnd(l lineID) charID {
	id := d.lines[l].begin
	for d.chars[id].next != nilID {
		id = d.chars[id].next
	}
	return id
}

func (d *Document) cursorOf(id charID) Cursor {
	return Cursor{id: id, gen: d.chars[id].gen}
}

func (d *Document) mustChar(c Cursor) charID {
	if !d.Valid(c) {
		panic("buffer: stale or foreign cursor")
	}
	return c.id
}

func (d *Document) newChar(ch byte, line lineID) charID {
	s := charSlot{ch: ch, prev: nilID, next: nilID, line: line, live: true}
	d.charCount++
	if n := len(d.freeChars); n > 0 {
		id := d.freeChars[n-1]
		d.freeChars = d.freeChars[:n-1]
		s.gen = d.chars[id].gen
		d.chars[id] = s
		return id
	}
	s.gen = 1
	d.chars = append(d.chars, s)
	return charID(len(d.chars) - 1)
}

func (d *Document) freeChar(id charID) {
	s := &d.chars[id]
	*s = charSlot{prev: nilID, next: nilID, line: nilID, gen: s.gen + 1}
	d.freeChars = append(d.freeChars, id)
	d.charCount--
}

func (d *Document) newLine() lineID {
	s := lineSlot{begin: nilID, prev: nilID, next: nilID, live: true}
	d.lineCount++
	if n := len(d.freeLines); n > 0 {
		id := d.freeLines[n-1]
		d.freeLines = d.freeLines[:n-1]
		d.lines[id] = s
		return id
	}
	d.lines = append(d.lines, s)
	return lineID(len(d.lines) - 1)
}

func (d *Document) freeLine(id lineID) {
	d.lines[id] = lineSlot{begin: nilID, prev: nilID, next: nilID}
	d.freeLines = append(d.freeLines, id)
	d.lineCount--
}

// linkLineAfter links the detached line nl right after at.
func (d *Document) linkLineAfter(at, nl lineID) {
	next := d.lines[at].next
	d.lines[nl].prev = at
	d.lines[nl].next = next
	if next != nilID {
		d.lines[next].prev = nl
	}
	d.lines[at].next = nl
}

func (d *Document) unlinkLine(l lineID) {
	prev, next := d.lines[l].prev, d.lines[l].next
	if prev != nilID {
		d.lines[prev].next = next
	} else {
		d.first = next
	}
	if next != nilID {
		d.lines[next].prev = prev
	}
	d.lines[l].prev = nilID
	d.lines[l].next = nilID
}
