package buffer

import (
	"errors"
	"fmt"
)

// ErrCorrupt marks every invariant violation reported by Check.
var ErrCorrupt = errors.New("buffer: corrupt document")

// Check walks the whole document and reports every broken invariant:
// line and character links, back-references, sentinels, and reachability of
// every live slot. It returns nil for a consistent document.
func (d *Document) Check() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrCorrupt}, args...)...))
	}

	if d.first < 0 || int(d.first) >= len(d.lines) || !d.lines[d.first].live {
		fail("no first line")
		return errors.Join(errs...)
	}
	if d.lines[d.first].prev != nilID {
		fail("first line has a previous line")
	}

	liveLines := 0
	for i := range d.lines {
		if d.lines[i].live {
			liveLines++
		}
	}
	liveChars := 0
	for i := range d.chars {
		if d.chars[i].live {
			liveChars++
		}
	}

	rows, chars := 0, 0
	prevLine := lineID(nilID)
	for l := d.first; l != nilID; l = d.lines[l].next {
		if rows > liveLines {
			fail("line chain does not terminate")
			break
		}
		if !d.lines[l].live {
			fail("row %d: line slot %d is free", rows, l)
			break
		}
		if d.lines[l].prev != prevLine {
			fail("row %d: prev link %d, want %d", rows, d.lines[l].prev, prevLine)
		}
		chars += d.checkLine(rows, l, liveChars, fail)
		prevLine = l
		rows++
	}

	if rows != liveLines {
		fail("%d lines reachable, %d live", rows, liveLines)
	}
	if rows != d.lineCount {
		fail("line count %d, want %d", d.lineCount, rows)
	}
	if chars != liveChars {
		fail("%d characters reachable, %d live", chars, liveChars)
	}
	if chars != d.charCount {
		fail("character count %d, want %d", d.charCount, chars)
	}
	return errors.Join(errs...)
}

func (d *Document) checkLine(row int, l lineID, limit int, fail func(string, ...any)) int {
	begin := d.lines[l].begin
	if begin < 0 || int(begin) >= len(d.chars) || !d.chars[begin].live {
		fail("row %d: empty line", row)
		return 0
	}
	if d.chars[begin].prev != nilID {
		fail("row %d: line head has a previous character", row)
	}

	n := 0
	prev := charID(nilID)
	last := begin
	for id := begin; id != nilID; id = d.chars[id].next {
		if n > limit {
			fail("row %d: character chain does not terminate", row)
			return n
		}
		s := d.chars[id]
		if !s.live {
			fail("row %d col %d: character slot %d is free", row, n, id)
			return n
		}
		if s.prev != prev {
			fail("row %d col %d: prev link %d, want %d", row, n, s.prev, prev)
		}
		if s.line != l {
			fail("row %d col %d: back-reference to line %d, want %d", row, n, s.line, l)
		}
		prev = id
		last = id
		n++
	}
	if d.chars[last].ch != Newline {
		fail("row %d: last character is %q, not the newline sentinel", row, d.chars[last].ch)
	}
	return n
}
