package buffer

// Op identifies the structural mutation recorded in a Change.
type Op uint8

const (
	OpInsert Op = iota + 1
	OpEnter
	OpDelete
	OpJoin // delete on a sentinel: the next line merged into the current one
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpEnter:
		return "enter"
	case OpDelete:
		return "delete"
	case OpJoin:
		return "join"
	default:
		return "unknown"
	}
}

// Change describes the most recent effective mutation.
//
// CursorBefore is stale after OpDelete and OpJoin: the character it named is gone.
type Change struct {
	Op            Op
	VersionBefore uint64
	VersionAfter  uint64
	CursorBefore  Cursor
	CursorAfter   Cursor
	LinesBefore   int
	LinesAfter    int
}

type changeBuilder struct {
	op            Op
	versionBefore uint64
	cursorBefore  Cursor
	linesBefore   int
}

// LastChange returns the most recent effective change.
func (d *Document) LastChange() (Change, bool) {
	if !d.hasLastChange {
		return Change{}, false
	}
	return d.lastChange, true
}

func (d *Document) beginChange(op Op, c Cursor) changeBuilder {
	return changeBuilder{
		op:            op,
		versionBefore: d.version,
		cursorBefore:  c,
		linesBefore:   d.lineCount,
	}
}

func (d *Document) commitChange(cb changeBuilder, after Cursor) {
	if d.version == cb.versionBefore {
		return
	}
	d.lastChange = Change{
		Op:            cb.op,
		VersionBefore: cb.versionBefore,
		VersionAfter:  d.version,
		CursorBefore:  cb.cursorBefore,
		CursorAfter:   after,
		LinesBefore:   cb.linesBefore,
		LinesAfter:    d.lineCount,
	}
	d.hasLastChange = true
}
