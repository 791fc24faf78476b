package buffer

import "testing"

func TestLastChange_RecordsEachMutation(t *testing.T) {
	d, c := New()

	c = d.InsertChar(c, 'a')
	ch, ok := d.LastChange()
	if !ok {
		t.Fatalf("expected a change after insert")
	}
	if ch.Op != OpInsert || ch.VersionBefore != 0 || ch.VersionAfter != 1 {
		t.Fatalf("change=%+v, want insert 0->1", ch)
	}
	if ch.CursorBefore != c || ch.CursorAfter != c {
		t.Fatalf("insert cursors=%v/%v, want %v", ch.CursorBefore, ch.CursorAfter, c)
	}

	c = d.Enter(c)
	ch, _ = d.LastChange()
	if ch.Op != OpEnter || ch.LinesBefore != 1 || ch.LinesAfter != 2 {
		t.Fatalf("change=%+v, want enter 1->2 lines", ch)
	}
	if ch.CursorAfter != c {
		t.Fatalf("enter cursor after=%v, want %v", ch.CursorAfter, c)
	}

	c = d.Delete(d.Left(c))
	ch, _ = d.LastChange()
	if ch.Op != OpJoin || ch.LinesAfter != 1 || ch.VersionAfter != 3 {
		t.Fatalf("change=%+v, want join to 1 line at version 3", ch)
	}
	if d.Valid(ch.CursorBefore) {
		t.Fatalf("join cursor before must be stale")
	}

	d.Delete(d.Home(c))
	ch, _ = d.LastChange()
	if ch.Op != OpDelete || ch.VersionAfter != 4 {
		t.Fatalf("change=%+v, want delete at version 4", ch)
	}
}

func TestLastChange_SkipsNoOps(t *testing.T) {
	d, c := build(t, "ab")
	before, _ := d.LastChange()

	d.Delete(c)
	d.Left(d.First())
	d.Right(c)
	d.End(c)

	after, _ := d.LastChange()
	if after != before {
		t.Fatalf("last change=%+v, want %+v", after, before)
	}
}

func TestOp_String(t *testing.T) {
	cases := map[Op]string{
		OpInsert: "insert",
		OpEnter:  "enter",
		OpDelete: "delete",
		OpJoin:   "join",
		Op(0):    "unknown",
	}
	for op, want := range cases {
		if got := op.String(); got != want {
			t.Fatalf("Op(%d)=%q, want %q", op, got, want)
		}
	}
}
