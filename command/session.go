package command

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/iw2rmb/lined/buffer"
)

type Options struct {
	// Strict runs buffer.Document.Check after every command and stops on the
	// first violation.
	Strict bool

	Logger *zap.Logger
}

// Session owns a document and its cursor and applies commands to them.
type Session struct {
	doc *buffer.Document
	cur buffer.Cursor
	out io.Writer

	opt Options
	log *zap.Logger

	executed int
}

// NewSession starts a session on an empty document. Print commands write to
// out, and flush it when it has a Flush method.
func NewSession(out io.Writer, opt Options) *Session {
	doc, cur := buffer.New()
	return NewSessionFor(doc, cur, out, opt)
}

// NewSessionFor starts a session on an existing document with cur as the
// current cursor. The session takes over the cursor: callers read it back
// with Cursor.
func NewSessionFor(doc *buffer.Document, cur buffer.Cursor, out io.Writer, opt Options) *Session {
	log := opt.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if out == nil {
		out = io.Discard
	}
	return &Session{
		doc: doc,
		cur: cur,
		out: out,
		opt: opt,
		log: log,
	}
}

func (s *Session) Document() *buffer.Document { return s.doc }

func (s *Session) Cursor() buffer.Cursor { return s.cur }

// Executed returns the number of commands applied so far.
func (s *Session) Executed() int { return s.executed }

// flusher is implemented by buffered outputs such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// flush pushes printed output through a buffered writer so it shows up as
// each print command runs.
func (s *Session) flush() error {
	if f, ok := s.out.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// Exec applies one command. quit is true for OpQuit.
func (s *Session) Exec(cmd Command) (quit bool, err error) {
	d := s.doc
	switch cmd.Op {
	case OpInsert:
		s.cur = d.InsertChar(s.cur, cmd.Arg)
	case OpEnter:
		s.cur = d.Enter(s.cur)
	case OpDelete:
		s.cur = d.Delete(s.cur)
	case OpLeft:
		s.cur = d.Left(s.cur)
	case OpDown:
		s.cur = d.Down(s.cur)
	case OpUp:
		s.cur = d.Up(s.cur)
	case OpRight:
		s.cur = d.Right(s.cur)
	case OpHome:
		s.cur = d.Home(s.cur)
	case OpEnd:
		s.cur = d.End(s.cur)
	case OpPrintLine:
		if err := d.PrintLine(s.out, s.cur); err != nil {
			return false, fmt.Errorf("print line: %w", err)
		}
		if err := s.flush(); err != nil {
			return false, fmt.Errorf("print line: %w", err)
		}
	case OpPrintText:
		if err := d.PrintDocument(s.out); err != nil {
			return false, fmt.Errorf("print text: %w", err)
		}
		if err := s.flush(); err != nil {
			return false, fmt.Errorf("print text: %w", err)
		}
	case OpQuit:
		quit = true
	default:
		return false, fmt.Errorf("%w %q", ErrUnknownOp, byte(cmd.Op))
	}
	s.executed++

	if ce := s.log.Check(zap.DebugLevel, "command"); ce != nil {
		ce.Write(
			zap.Stringer("cmd", cmd),
			zap.Uint64("version", d.Version()),
			zap.Int("lines", d.LineCount()),
		)
	}

	if s.opt.Strict {
		if err := d.Check(); err != nil {
			return false, fmt.Errorf("after %v: %w", cmd, err)
		}
	}
	return quit, nil
}

// Run reads one token per line from r and executes it until a quit command,
// end of input, or ctx is done. Blank lines are skipped; malformed tokens are
// logged and skipped.
//
// Cancellation does not wait for the next line: Run returns ctx.Err() as soon
// as ctx is done, leaving the reader goroutine blocked in r until r is closed.
func (s *Session) Run(ctx context.Context, r io.Reader) error {
	lines := make(chan string)
	errCh := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
		errCh <- sc.Err()
	}()

	lineNo := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var (
			text string
			ok   bool
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case text, ok = <-lines:
		}
		if !ok {
			break
		}
		lineNo++

		cmd, err := Parse(text)
		if errors.Is(err, ErrEmpty) {
			continue
		}
		if err != nil {
			s.log.Warn("skipping command", zap.Int("line", lineNo), zap.Error(err))
			continue
		}

		quit, err := s.Exec(cmd)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if quit {
			s.log.Debug("quit", zap.Int("line", lineNo), zap.Int("executed", s.executed))
			return nil
		}
	}
	if err := <-errCh; err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	s.log.Debug("end of input", zap.Int("executed", s.executed))
	return nil
}
