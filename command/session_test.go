package command

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/iw2rmb/lined/buffer"
)

func runScript(t *testing.T, script string, opt Options) (*Session, string) {
	t.Helper()
	var out bytes.Buffer
	s := NewSession(&out, opt)
	require.NoError(t, s.Run(context.Background(), strings.NewReader(script)))
	return s, out.String()
}

func TestSession_Scripts(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{
			name:   "type and print line",
			script: "I a\nI b\nI c\nP\nQ\n",
			want:   "abc\n",
		},
		{
			name:   "split before last char",
			script: "I a\nI b\nI c\nh\nN\nT\nQ\n",
			want:   "ab\nc\n",
		},
		{
			name:   "join lines",
			script: "I a\nI b\nN\nI c\nk\nE\nD\nT\nQ\n",
			want:   "abc\n",
		},
		{
			name:   "delete on empty document",
			script: "D\nT\nQ\n",
			want:   "\n",
		},
		{
			name:   "print line prints only the cursor line",
			script: "I a\nN\nI b\nN\nI c\nk\nP\nQ\n",
			want:   "b\n",
		},
		{
			name:   "control bytes are stored but not printed",
			script: "I \x01\nI a\nI \x1b\nP\nH\nD\nT\nQ\n",
			want:   "a\na\n",
		},
		{
			name:   "blank lines and leading blanks",
			script: "\n   I z\n\n\t T\nQ\n",
			want:   "z\n",
		},
		{
			name:   "insert space",
			script: "I a\nI  \nI b\nT\nQ\n",
			want:   "a b\n",
		},
		{
			name:   "movement at boundaries is a no-op",
			script: "h\nk\nj\nl\nI x\nT\nQ\n",
			want:   "x\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, got := runScript(t, tt.script, Options{Strict: true})
			assert.Equal(t, tt.want, got)
			require.NoError(t, s.Document().Check())
		})
	}
}

func TestSession_StopsAtQuit(t *testing.T) {
	s, got := runScript(t, "I a\nQ\nT\nI b\n", Options{})

	assert.Equal(t, "", got)
	assert.Equal(t, 2, s.Executed())
	assert.Equal(t, []string{"a"}, s.Document().Lines())
}

func TestSession_EndOfInputWithoutQuit(t *testing.T) {
	s, got := runScript(t, "I a\nT", Options{})

	assert.Equal(t, "a\n", got)
	assert.Equal(t, 2, s.Executed())
}

func TestSession_SkipsMalformedCommands(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	s, got := runScript(t, "x\nI\nI a\nT\nQ\n", Options{Logger: zap.New(core)})

	assert.Equal(t, "a\n", got)
	assert.Equal(t, 3, s.Executed())

	entries := logs.FilterMessage("skipping command").All()
	require.Len(t, entries, 2)
	assert.Equal(t, int64(1), entries[0].ContextMap()["line"])
	assert.Equal(t, int64(2), entries[1].ContextMap()["line"])
}

func TestSession_DebugLogsEachCommand(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	runScript(t, "I a\nN\nQ\n", Options{Logger: zap.New(core)})

	entries := logs.FilterMessage("command").All()
	require.Len(t, entries, 3)
	assert.Equal(t, int64(2), entries[1].ContextMap()["lines"])
}

func TestSession_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewSession(&bytes.Buffer{}, Options{})
	err := s.Run(ctx, strings.NewReader("I a\nQ\n"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, s.Executed())
}

var errBoom = errors.New("boom")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errBoom }

func TestSession_OutputErrorStopsRun(t *testing.T) {
	s := NewSession(failingWriter{}, Options{})
	err := s.Run(context.Background(), strings.NewReader("I a\nP\nT\n"))

	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "line 2")
}

func TestSession_ExecUnknownOp(t *testing.T) {
	s := NewSession(&bytes.Buffer{}, Options{})
	_, err := s.Exec(Command{Op: Op('z')})
	assert.ErrorIs(t, err, ErrUnknownOp)
	assert.Equal(t, 0, s.Executed())
}

func TestSession_ExecThreadsCursor(t *testing.T) {
	s := NewSession(&bytes.Buffer{}, Options{})
	for _, cmd := range []Command{{Op: OpInsert, Arg: 'a'}, {Op: OpInsert, Arg: 'b'}, {Op: OpHome}} {
		quit, err := s.Exec(cmd)
		require.NoError(t, err)
		require.False(t, quit)
	}
	assert.Equal(t, byte('a'), s.Document().Byte(s.Cursor()))
}

func TestNewSessionFor_ContinuesExistingDocument(t *testing.T) {
	doc, cur := buffer.New()
	cur = doc.InsertText(cur, "ab\ncd")

	var out bytes.Buffer
	s := NewSessionFor(doc, cur, &out, Options{})
	require.NoError(t, s.Run(context.Background(), strings.NewReader("I e\nP\nk\nP\nQ\n")))
	assert.Equal(t, "cde\nab\n", out.String())
}

func TestNewSessionFor_NilWriterDiscards(t *testing.T) {
	doc, cur := buffer.New()
	s := NewSessionFor(doc, cur, nil, Options{})
	_, err := s.Exec(Command{Op: OpPrintText})
	assert.NoError(t, err)
}

func TestSession_CancelWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewSession(&bytes.Buffer{}, Options{})
	errc := make(chan error, 1)
	go func() { errc <- s.Run(ctx, pr) }()

	_, err := io.WriteString(pw, "I a\n")
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, []string{"a"}, s.Document().Lines())
}

type countingFlusher struct {
	bytes.Buffer
	flushes int
}

func (f *countingFlusher) Flush() error {
	f.flushes++
	return nil
}

func TestSession_FlushesAfterEachPrint(t *testing.T) {
	out := &countingFlusher{}
	s := NewSession(out, Options{})
	require.NoError(t, s.Run(context.Background(), strings.NewReader("I a\nP\nI b\nT\nh\nQ\n")))

	assert.Equal(t, 2, out.flushes)
	assert.Equal(t, "a\nab\n", out.String())
}

func TestSession_OutputArrivesBeforeQuit(t *testing.T) {
	inR, inW := io.Pipe()
	defer inW.Close()
	outR, outW := io.Pipe()
	defer outR.Close()

	s := NewSession(bufio.NewWriter(outW), Options{})
	errc := make(chan error, 1)
	go func() { errc <- s.Run(context.Background(), inR) }()

	_, err := io.WriteString(inW, "I a\nP\n")
	require.NoError(t, err)

	got := make(chan string, 1)
	go func() {
		buf := make([]byte, 2)
		_, _ = io.ReadFull(outR, buf)
		got <- string(buf)
	}()
	select {
	case line := <-got:
		assert.Equal(t, "a\n", line)
	case <-time.After(time.Second):
		t.Fatal("printed line still buffered before quit")
	}

	_, err = io.WriteString(inW, "Q\n")
	require.NoError(t, err)
	select {
	case err := <-errc:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after quit")
	}
}
