package editor

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/lined/command"
)

// Config configures the editor Model.
type Config struct {
	// Initial text, typed into a fresh document. The cursor starts on the
	// first character.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	ScrollPolicy ScrollPolicy

	KeyMap KeyMap

	// ReadOnly keeps navigation but ignores every mutating key.
	ReadOnly bool

	// Strict checks document invariants after every command.
	Strict bool
	Logger *zap.Logger

	// OnChange is called after a key changes the document or moves the cursor.
	OnChange func(ChangeEvent)

	// OnCommand is called with every opcode a key or click translates to,
	// before it runs. Returning false drops the command.
	OnCommand func(command.Command) bool
}
