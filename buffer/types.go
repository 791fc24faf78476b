package buffer

// Newline is the sentinel byte that terminates every line.
const Newline byte = '\n'

type charID int32

type lineID int32

const nilID = -1

// Cursor references exactly one character of a Document.
//
// The zero Cursor is never valid. A cursor goes stale once the character it
// names is deleted; Document.Valid reports this.
type Cursor struct {
	id  charID
	gen uint32
}

// Pos points into the document by (row, col) in bytes.
// Row and Col are 0-based. The sentinel of a row sits at Col == content length.
type Pos struct {
	Row int
	Col int
}

func ComparePos(a, b Pos) int {
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPos clamps p into document bounds described by rowCount and lineLen.
//
// - rowCount is the number of lines (rows).
// - lineLen(row) returns the content length of the given row, sentinel excluded.
//
// The returned Pos always satisfies:
// - 0 <= Row < rowCount (with rowCount treated as at least 1)
// - 0 <= Col <= lineLen(Row)
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	if rowCount <= 0 {
		rowCount = 1
	}

	row := clampInt(p.Row, 0, rowCount-1)

	maxCol := 0
	if lineLen != nil {
		maxCol = lineLen(row)
		if maxCol < 0 {
			maxCol = 0
		}
	}
	col := clampInt(p.Col, 0, maxCol)

	return Pos{Row: row, Col: col}
}
