package buffer

import "io"

// printable reports whether ch is written by PrintLine.
func printable(ch byte) bool {
	return ch == Newline || ch >= 32
}

// PrintLine writes the line under c to w, sentinel included.
// Control bytes other than the newline stay stored but are not written.
func (d *Document) PrintLine(w io.Writer, c Cursor) error {
	at := d.mustChar(c)
	_, err := w.Write(d.appendPrintable(nil, d.chars[at].line))
	return err
}

// PrintDocument writes every line, first to last, as PrintLine does.
func (d *Document) PrintDocument(w io.Writer) error {
	out := make([]byte, 0, d.charCount)
	for l := d.first; l != nilID; l = d.lines[l].next {
		out = d.appendPrintable(out, l)
	}
	_, err := w.Write(out)
	return err
}

func (d *Document) appendPrintable(dst []byte, l lineID) []byte {
	for id := d.lines[l].begin; id != nilID; id = d.chars[id].next {
		if ch := d.chars[id].ch; printable(ch) {
			dst = append(dst, ch)
		}
	}
	return dst
}
