package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lined/buffer"
	"github.com/iw2rmb/lined/command"
)

// Model is a Bubble Tea component that renders and edits a buffer.Document.
type Model struct {
	cfg  Config
	sess *command.Session
	err  error

	focused bool

	viewport viewport.Model
	xOffset  int

	lastVersion uint64
	lastCursor  buffer.Cursor
}

func New(cfg Config) Model {
	if len(cfg.KeyMap.Enter.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	doc, cur := buffer.New()
	if cfg.Text != "" {
		doc.InsertText(cur, cfg.Text)
		cur = doc.First()
	}

	m := Model{
		cfg:      cfg,
		sess:     command.NewSessionFor(doc, cur, nil, command.Options{Strict: cfg.Strict, Logger: cfg.Logger}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastVersion = doc.Version()
	m.lastCursor = cur
	m.rebuildContent()
	return m
}

func (m Model) Document() *buffer.Document { return m.sess.Document() }

func (m Model) Cursor() buffer.Cursor { return m.sess.Cursor() }

// Err returns the first command error; the model stops editing after it.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.refresh()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		if m.err != nil {
			return m, nil
		}
		m = m.updateKey(msg)
		m.sync()
		if m.err != nil {
			return m, tea.Quit
		}
		return m, nil
	case tea.MouseMsg:
		return m.updateMouse(msg)
	default:
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

// sync re-renders after a key and reports the change to the host.
func (m *Model) sync() {
	doc, cur := m.sess.Document(), m.sess.Cursor()
	ver := doc.Version()
	if ver == m.lastVersion && cur == m.lastCursor {
		return
	}
	mutated := ver != m.lastVersion
	m.lastVersion = ver
	m.lastCursor = cur

	m.refresh()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(doc, cur, mutated))
	}
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// refresh re-renders and scrolls so the cursor cell is visible. The
// horizontal offset feeds rendering; the vertical one needs the new content,
// since the viewport clamps it to the current line count.
func (m *Model) refresh() {
	doc := m.sess.Document()
	pos := doc.Pos(m.sess.Cursor())

	if w := m.contentWidth(); w > 0 {
		x := cellOffset(doc.Lines()[pos.Row], pos.Col)
		if x < m.xOffset {
			m.xOffset = x
		} else if x >= m.xOffset+w {
			m.xOffset = x - w + 1
		}
	}

	m.rebuildContent()

	h := m.visibleRowCount()
	if h <= 0 {
		return
	}
	y := m.viewport.YOffset
	if pos.Row < y {
		m.viewport.SetYOffset(pos.Row)
		return
	}
	if pos.Row >= y+h {
		m.viewport.SetYOffset(pos.Row - h + 1)
	}
}
