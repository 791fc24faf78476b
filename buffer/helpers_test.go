package buffer

import (
	"bytes"
	"testing"
)

// build types lines into a fresh document and returns the cursor on the last
// line's sentinel.
func build(t *testing.T, lines ...string) (*Document, Cursor) {
	t.Helper()
	d, c := New()
	for i, line := range lines {
		if i > 0 {
			c = d.Enter(c)
		}
		for j := 0; j < len(line); j++ {
			c = d.InsertChar(c, line[j])
		}
	}
	mustCheck(t, d)
	return d, c
}

func mustCheck(t *testing.T, d *Document) {
	t.Helper()
	if err := d.Check(); err != nil {
		t.Fatalf("check: %v", err)
	}
}

func printDoc(t *testing.T, d *Document) string {
	t.Helper()
	var buf bytes.Buffer
	if err := d.PrintDocument(&buf); err != nil {
		t.Fatalf("PrintDocument: %v", err)
	}
	return buf.String()
}

func printLine(t *testing.T, d *Document, c Cursor) string {
	t.Helper()
	var buf bytes.Buffer
	if err := d.PrintLine(&buf, c); err != nil {
		t.Fatalf("PrintLine: %v", err)
	}
	return buf.String()
}

func at(t *testing.T, d *Document, row, col int) Cursor {
	t.Helper()
	c, ok := d.CursorAt(Pos{Row: row, Col: col})
	if !ok {
		t.Fatalf("CursorAt(%d,%d): out of bounds", row, col)
	}
	return c
}
