package command

import (
	"errors"
	"fmt"
	"strings"
)

// Op is a single-letter command opcode.
type Op byte

const (
	OpInsert    Op = 'I'
	OpEnter     Op = 'N'
	OpDelete    Op = 'D'
	OpLeft      Op = 'h'
	OpDown      Op = 'j'
	OpUp        Op = 'k'
	OpRight     Op = 'l'
	OpHome      Op = 'H'
	OpEnd       Op = 'E'
	OpPrintLine Op = 'P'
	OpPrintText Op = 'T'
	OpQuit      Op = 'Q'
)

var (
	ErrEmpty           = errors.New("empty command")
	ErrUnknownOp       = errors.New("unknown opcode")
	ErrMissingArgument = errors.New("missing argument")
)

// Command is one parsed token.
type Command struct {
	Op  Op
	Arg byte // OpInsert only
}

func (c Command) String() string {
	if c.Op == OpInsert {
		return fmt.Sprintf("%c %q", c.Op, c.Arg)
	}
	return string(rune(c.Op))
}

// Parse parses one token. Leading blanks are skipped; anything after the
// opcode (or after the insert argument) is ignored.
func Parse(token string) (Command, error) {
	s := strings.TrimLeft(token, " \t\r\n\v\f")
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	if s == "" {
		return Command{}, ErrEmpty
	}

	op := Op(s[0])
	switch op {
	case OpInsert:
		if len(s) < 3 {
			return Command{}, fmt.Errorf("%w for %c: %q", ErrMissingArgument, op, token)
		}
		return Command{Op: op, Arg: s[2]}, nil
	case OpEnter, OpDelete, OpLeft, OpDown, OpUp, OpRight,
		OpHome, OpEnd, OpPrintLine, OpPrintText, OpQuit:
		return Command{Op: op}, nil
	default:
		return Command{}, fmt.Errorf("%w %q", ErrUnknownOp, s[0])
	}
}
