package editor

import "github.com/iw2rmb/lined/buffer"

type ChangeEvent struct {
	Version uint64
	Cursor  buffer.Pos

	// Change is the document mutation behind this event. Mutation is false
	// for pure cursor motion and Change is then zero.
	Change   buffer.Change
	Mutation bool

	Lines []string
}

func buildChangeEvent(d *buffer.Document, cur buffer.Cursor, mutated bool) ChangeEvent {
	ev := ChangeEvent{
		Version:  d.Version(),
		Cursor:   d.Pos(cur),
		Mutation: mutated,
		Lines:    d.Lines(),
	}
	if mutated {
		ev.Change, _ = d.LastChange()
	}
	return ev
}
