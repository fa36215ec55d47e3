package ui

import (
	"slices"

	"github.com/hubastard/microgrove/engine/scratch"
)

// Config holds the fixed capacities of a context. Everything is allocated
// once in New; exceeding a capacity during a frame is fatal.
type Config struct {
	CommandListSize    int // bytes
	RootListSize       int
	ContainerStackSize int
	ClipStackSize      int
	IDStackSize        int
	LayoutStackSize    int
	ContainerPoolSize  int
	TreeNodePoolSize   int
	FontSlots          int // distinct fonts usable within one frame
}

func DefaultConfig() Config {
	return Config{
		CommandListSize:    256 * 1024,
		RootListSize:       32,
		ContainerStackSize: 32,
		ClipStackSize:      32,
		IDStackSize:        32,
		LayoutStackSize:    16,
		ContainerPoolSize:  48,
		TreeNodePoolSize:   48,
		FontSlots:          16,
	}
}

// Option configures a context in New.
type Option func(*options)

type options struct {
	cfg   Config
	style *Style
}

// WithConfig replaces the default capacities. Zero fields keep their
// defaults.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		d := &o.cfg
		setIf(&d.CommandListSize, cfg.CommandListSize)
		setIf(&d.RootListSize, cfg.RootListSize)
		setIf(&d.ContainerStackSize, cfg.ContainerStackSize)
		setIf(&d.ClipStackSize, cfg.ClipStackSize)
		setIf(&d.IDStackSize, cfg.IDStackSize)
		setIf(&d.LayoutStackSize, cfg.LayoutStackSize)
		setIf(&d.ContainerPoolSize, cfg.ContainerPoolSize)
		setIf(&d.TreeNodePoolSize, cfg.TreeNodePoolSize)
		setIf(&d.FontSlots, cfg.FontSlots)
	}
}

func setIf(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}

// WithStyle makes the context read its style through s. The caller may
// edit s at any time, including mid-frame.
func WithStyle(s *Style) Option {
	return func(o *options) { o.style = s }
}

const numberEditSize = 127

// formatBufSize holds a frame's worth of formatted widget values.
const formatBufSize = 1024

// Context owns all UI state. It is not safe for concurrent use; one
// goroutine drives Begin, the declarations, End and command iteration.
type Context struct {
	host  Host
	style *Style

	hover        ID
	focus        ID
	lastID       ID
	lastRect     Rect
	lastZIndex   int
	updatedFocus bool
	frame        uint32

	hoverRoot     *Container
	nextHoverRoot *Container
	scrollTarget  *Container

	numberEdit    ID
	numberEditBuf *TextBuffer
	format        *scratch.Buffer

	commands       CommandList
	fonts          fontTable
	rootList       Stack[*Container]
	containerStack Stack[*Container]
	clipStack      Stack[Rect]
	idStack        Stack[ID]
	layoutStack    Stack[layout]

	containerPool Pool
	containers    []Container
	treeNodePool  Pool

	mousePos     Vec2
	lastMousePos Vec2
	mouseDelta   Vec2
	scrollDelta  Vec2
	mouseDown    MouseButton
	mousePressed MouseButton
	keyDown      Key
	keyPressed   Key
	inputText    [InputTextSize]byte
	inputLen     int
}

// New returns a context measuring text with host. host may be nil here
// but must be set with SetHost before the first Begin.
func New(host Host, opts ...Option) *Context {
	o := options{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.style == nil {
		s := DefaultStyle()
		o.style = &s
	}
	cfg := o.cfg
	ctx := &Context{
		host:           host,
		style:          o.style,
		numberEditBuf:  NewTextBuffer(numberEditSize),
		format:         scratch.New(formatBufSize),
		commands:       newCommandList(cfg.CommandListSize),
		fonts:          newFontTable(cfg.FontSlots),
		rootList:       NewStack[*Container]("root list", cfg.RootListSize),
		containerStack: NewStack[*Container]("container stack", cfg.ContainerStackSize),
		clipStack:      NewStack[Rect]("clip stack", cfg.ClipStackSize),
		idStack:        NewStack[ID]("id stack", cfg.IDStackSize),
		layoutStack:    NewStack[layout]("layout stack", cfg.LayoutStackSize),
		containerPool:  NewPool("container pool", cfg.ContainerPoolSize),
		containers:     make([]Container, cfg.ContainerPoolSize),
		treeNodePool:   NewPool("tree node pool", cfg.TreeNodePoolSize),
	}
	return ctx
}

func (ctx *Context) SetHost(h Host) { ctx.host = h }
func (ctx *Context) Host() Host     { return ctx.host }

// Style returns the live style. Edits take effect immediately.
func (ctx *Context) Style() *Style { return ctx.style }

// SetStyle points the context at another style.
func (ctx *Context) SetStyle(s *Style) { ctx.style = s }

// Frame returns the number of frames begun so far.
func (ctx *Context) Frame() uint32 { return ctx.frame }

func (ctx *Context) Hover() ID { return ctx.hover }
func (ctx *Context) Focus() ID { return ctx.focus }

// Begin opens a frame.
func (ctx *Context) Begin() {
	expect(hostReady(ctx.host), ErrMissingSetup, "begin", "text measurement not set")
	ctx.commands.reset()
	ctx.fonts.n = 0
	ctx.format.Reset()
	ctx.rootList.Reset()
	ctx.pushJump(-1)
	ctx.scrollTarget = nil
	ctx.hoverRoot = ctx.nextHoverRoot
	ctx.nextHoverRoot = nil
	ctx.mouseDelta = ctx.mousePos.Sub(ctx.lastMousePos)
	ctx.frame++
}

// End closes the frame: it checks that every scope was closed, applies
// wheel scrolling, settles focus and z-order, and links the root
// containers' command runs in draw order.
func (ctx *Context) End() {
	expect(ctx.containerStack.Empty(), ErrUnbalanced, "end", "container stack not empty")
	expect(ctx.clipStack.Empty(), ErrUnbalanced, "end", "clip stack not empty")
	expect(ctx.idStack.Empty(), ErrUnbalanced, "end", "id stack not empty")
	expect(ctx.layoutStack.Empty(), ErrUnbalanced, "end", "layout stack not empty")

	if ctx.scrollTarget != nil {
		ctx.scrollTarget.Scroll = ctx.scrollTarget.Scroll.Add(ctx.scrollDelta)
	}

	if !ctx.updatedFocus {
		ctx.focus = 0
	}
	ctx.updatedFocus = false

	if r := ctx.nextHoverRoot; ctx.mousePressed != 0 && r != nil &&
		r.ZIndex < ctx.lastZIndex && r.ZIndex >= 0 {
		ctx.BringToFront(r)
		Logger().Debug("container raised", "zindex", r.ZIndex)
	}

	ctx.resetInput()

	roots := ctx.rootList.Items()
	slices.SortStableFunc(roots, func(a, b *Container) int { return a.ZIndex - b.ZIndex })

	if len(roots) == 0 {
		ctx.commands.setJump(0, jumpSize)
		return
	}
	for i, cnt := range roots {
		if i == 0 {
			ctx.commands.setJump(0, cnt.head+jumpSize)
		} else {
			ctx.commands.setJump(roots[i-1].tail, cnt.head+jumpSize)
		}
	}
	ctx.commands.setJump(roots[len(roots)-1].tail, ctx.commands.Len())
}

// SetFocus gives id keyboard and drag focus and marks it as touched this
// frame. Zero clears focus.
func (ctx *Context) SetFocus(id ID) {
	ctx.focus = id
	ctx.updatedFocus = true
}

// BringToFront gives cnt a z-index above every other container.
func (ctx *Context) BringToFront(cnt *Container) {
	ctx.lastZIndex++
	cnt.ZIndex = ctx.lastZIndex
}
