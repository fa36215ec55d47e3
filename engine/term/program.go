package term

import (
	"fmt"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hubastard/microgrove/engine/ui"
)

// FrameFunc declares one frame of UI between Begin and End.
type FrameFunc func(ctx *ui.Context)

// Model is the bubbletea model driving the engine. Every message that
// carries input runs the frame, plus one settling frame so hover and
// focus reflect the new state.
type Model struct {
	ctx    *ui.Context
	canvas *Canvas
	frame  FrameFunc
	quit   bool
}

// NewModel wires ctx to a canvas of w by h cells.
func NewModel(ctx *ui.Context, frame FrameFunc, w, h int) *Model {
	m := &Model{ctx: ctx, canvas: NewCanvas(w, h, ui.RGBA(0, 0, 0, 255)), frame: frame}
	m.run()
	return m
}

func (m *Model) Canvas() *Canvas      { return m.canvas }
func (m *Model) Context() *ui.Context { return m.ctx }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.canvas.Resize(msg.Width, msg.Height)
		m.run()
	case tea.MouseMsg:
		m.mouse(msg)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quit = true
			return m, tea.Quit
		}
		m.key(msg)
	}
	return m, nil
}

func (m *Model) View() string {
	if m.quit {
		return ""
	}
	return m.canvas.Render()
}

func (m *Model) run() {
	m.ctx.Begin()
	m.frame(m.ctx)
	m.ctx.End()
	m.canvas.Draw(m.ctx)
}

func (m *Model) settle() {
	m.run()
	m.run()
}

func (m *Model) mouse(msg tea.MouseMsg) {
	if msg.Shift {
		m.ctx.InputKeyDown(ui.KeyShift)
		defer m.ctx.InputKeyUp(ui.KeyShift)
	}
	x, y := msg.X, msg.Y
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.ctx.InputScroll(0, -1)
	case tea.MouseButtonWheelDown:
		m.ctx.InputScroll(0, 1)
	case tea.MouseButtonWheelLeft:
		m.ctx.InputScroll(-1, 0)
	case tea.MouseButtonWheelRight:
		m.ctx.InputScroll(1, 0)
	default:
		btn := mouseButton(msg.Button)
		switch msg.Action {
		case tea.MouseActionPress:
			m.ctx.InputMouseDown(x, y, btn)
		case tea.MouseActionRelease:
			m.ctx.InputMouseUp(x, y, btn)
		default:
			m.ctx.InputMouseMove(x, y)
		}
	}
	m.settle()
}

// mouseButton maps terminal buttons; releases often arrive without one.
func mouseButton(b tea.MouseButton) ui.MouseButton {
	switch b {
	case tea.MouseButtonRight:
		return ui.MouseRight
	case tea.MouseButtonMiddle:
		return ui.MouseMiddle
	}
	return ui.MouseLeft
}

func (m *Model) key(msg tea.KeyMsg) {
	var k ui.Key
	switch msg.Type {
	case tea.KeyBackspace:
		k = ui.KeyBackspace
	case tea.KeyEnter:
		k = ui.KeyReturn
	case tea.KeySpace:
		m.typeText(" ")
	case tea.KeyRunes:
		m.typeText(string(msg.Runes))
	default:
		return
	}
	if k != 0 {
		m.ctx.InputKeyDown(k)
		defer m.ctx.InputKeyUp(k)
	}
	m.settle()
}

// typeText queues s, dropping what does not fit this frame.
func (m *Model) typeText(s string) {
	var buf [utf8.UTFMax]byte
	for _, r := range s {
		n := utf8.EncodeRune(buf[:], r)
		if n > m.ctx.TextRoom() {
			return
		}
		m.ctx.InputText(string(buf[:n]))
	}
}

// Run starts a full-screen terminal program around ctx. ctx should use
// Host and Style from this package.
func Run(ctx *ui.Context, frame FrameFunc) error {
	m := NewModel(ctx, frame, 80, 24)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal program: %w", err)
	}
	return nil
}
