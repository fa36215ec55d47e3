package ui

import (
	"encoding/binary"
	"iter"
	"unsafe"
)

// CommandKind tags a record in the command list.
type CommandKind uint8

const (
	CommandJump CommandKind = iota + 1
	CommandClip
	CommandRect
	CommandText
	CommandIcon
)

func (k CommandKind) String() string {
	switch k {
	case CommandJump:
		return "jump"
	case CommandClip:
		return "clip"
	case CommandRect:
		return "rect"
	case CommandText:
		return "text"
	case CommandIcon:
		return "icon"
	default:
		return "unknown"
	}
}

// Record layout, little endian. Every record starts with an 8 byte header:
// kind (1), reserved (3), size (4). size is the full footprint of the
// record including the header, so a cursor reaches the next record by
// adding it.
//
//	jump: header, dst int32
//	clip: header, rect (4 x int32)
//	rect: header, rect (4 x int32), color (4)
//	text: header, pos (2 x int32), color (4), font slot uint32, bytes...
//	icon: header, icon int32, rect (4 x int32), color (4)
const (
	headerSize   = 8
	jumpSize     = headerSize + 4
	clipSize     = headerSize + 16
	rectSize     = headerSize + 16 + 4
	textBaseSize = headerSize + 8 + 4 + 4
	iconSize     = headerSize + 4 + 16 + 4
)

// CommandList is the append-only byte arena holding a frame's draw
// commands. Its capacity is fixed when the context is created.
type CommandList struct {
	buf []byte
	idx int
}

func newCommandList(size int) CommandList {
	return CommandList{buf: make([]byte, size)}
}

// Len returns the number of bytes written this frame.
func (l *CommandList) Len() int { return l.idx }

// Cap returns the arena size in bytes.
func (l *CommandList) Cap() int { return len(l.buf) }

func (l *CommandList) reset() { l.idx = 0 }

func (l *CommandList) push(kind CommandKind, size int) int {
	expect(l.idx+size < len(l.buf), ErrCapacity, "push command", "command list full")
	off := l.idx
	l.buf[off] = byte(kind)
	l.buf[off+1], l.buf[off+2], l.buf[off+3] = 0, 0, 0
	binary.LittleEndian.PutUint32(l.buf[off+4:], uint32(size))
	l.idx += size
	return off
}

func (l *CommandList) kind(off int) CommandKind { return CommandKind(l.buf[off]) }

func (l *CommandList) size(off int) int {
	return int(binary.LittleEndian.Uint32(l.buf[off+4:]))
}

func (l *CommandList) putInt(off, v int) {
	binary.LittleEndian.PutUint32(l.buf[off:], uint32(int32(v)))
}

func (l *CommandList) readInt(off int) int {
	return int(int32(binary.LittleEndian.Uint32(l.buf[off:])))
}

func (l *CommandList) putRect(off int, r Rect) {
	l.putInt(off, r.X)
	l.putInt(off+4, r.Y)
	l.putInt(off+8, r.W)
	l.putInt(off+12, r.H)
}

func (l *CommandList) readRect(off int) Rect {
	return Rect{l.readInt(off), l.readInt(off + 4), l.readInt(off + 8), l.readInt(off + 12)}
}

func (l *CommandList) putColor(off int, c Color) {
	l.buf[off], l.buf[off+1], l.buf[off+2], l.buf[off+3] = c.R, c.G, c.B, c.A
}

func (l *CommandList) readColor(off int) Color {
	return Color{l.buf[off], l.buf[off+1], l.buf[off+2], l.buf[off+3]}
}

// setJump points the jump record at off to dst. A negative dst means
// "end of stream".
func (l *CommandList) setJump(off, dst int) { l.putInt(off+headerSize, dst) }

func (l *CommandList) jumpDst(off int) int { return l.readInt(off + headerSize) }

// Command is a decoded view of one record. Only the fields relevant to Kind
// are set. Text aliases the command arena and is valid until the next
// call to Begin.
type Command struct {
	Kind   CommandKind
	Offset int // byte offset of the record in the command list
	Size   int // record footprint in bytes, header included

	Rect  Rect   // clip, rect, icon
	Color Color  // rect, text, icon
	Pos   Vec2   // text
	Font  Font   // text
	Text  string // text
	Icon  Icon   // icon
	Dst   int    // jump
}

func (ctx *Context) decode(off int, cmd *Command) {
	l := &ctx.commands
	*cmd = Command{Kind: l.kind(off), Offset: off, Size: l.size(off)}
	p := off + headerSize
	switch cmd.Kind {
	case CommandJump:
		cmd.Dst = l.readInt(p)
	case CommandClip:
		cmd.Rect = l.readRect(p)
	case CommandRect:
		cmd.Rect = l.readRect(p)
		cmd.Color = l.readColor(p + 16)
	case CommandText:
		cmd.Pos = Vec2{l.readInt(p), l.readInt(p + 4)}
		cmd.Color = l.readColor(p + 8)
		cmd.Font = ctx.fonts.lookup(l.readInt(p + 12))
		if n := cmd.Size - textBaseSize; n > 0 {
			cmd.Text = unsafe.String(&l.buf[off+textBaseSize], n)
		}
	case CommandIcon:
		cmd.Icon = Icon(l.readInt(p))
		cmd.Rect = l.readRect(p + 4)
		cmd.Color = l.readColor(p + 20)
	}
}

// PushCommand reserves size bytes at the tail of the command list for a
// record of the given kind and returns its offset. The caller fills the
// payload. Running out of arena is fatal.
func (ctx *Context) PushCommand(kind CommandKind, size int) int {
	return ctx.commands.push(kind, size)
}

// NextCommand advances cmd to the next drawable command, following jump
// records transparently. Pass a zero Command to start; it returns false at
// the end of the stream.
//
//	var cmd ui.Command
//	for ctx.NextCommand(&cmd) {
//		switch cmd.Kind { ... }
//	}
func (ctx *Context) NextCommand(cmd *Command) bool {
	l := &ctx.commands
	off := 0
	if cmd.Size != 0 {
		off = cmd.Offset + cmd.Size
	}
	for off >= 0 && off < l.idx {
		if l.kind(off) != CommandJump {
			ctx.decode(off, cmd)
			return true
		}
		off = l.jumpDst(off)
	}
	return false
}

// Commands iterates the finished frame's commands in draw order.
func (ctx *Context) Commands() iter.Seq[Command] {
	return func(yield func(Command) bool) {
		var cmd Command
		for ctx.NextCommand(&cmd) {
			if !yield(cmd) {
				return
			}
		}
	}
}

// CommandList exposes the raw arena, mainly for tests and diagnostics.
func (ctx *Context) CommandList() *CommandList { return &ctx.commands }

func (ctx *Context) pushJump(dst int) int {
	off := ctx.commands.push(CommandJump, jumpSize)
	ctx.commands.setJump(off, dst)
	return off
}

// SetClip emits a clip command. Renderers apply it as their scissor until
// the next clip command.
func (ctx *Context) SetClip(r Rect) {
	off := ctx.commands.push(CommandClip, clipSize)
	ctx.commands.putRect(off+headerSize, r)
}

func (ctx *Context) pushRect(r Rect, c Color) {
	off := ctx.commands.push(CommandRect, rectSize)
	ctx.commands.putRect(off+headerSize, r)
	ctx.commands.putColor(off+headerSize+16, c)
}

func (ctx *Context) pushText(font Font, s string, pos Vec2, c Color) {
	l := &ctx.commands
	off := l.push(CommandText, textBaseSize+len(s))
	p := off + headerSize
	l.putInt(p, pos.X)
	l.putInt(p+4, pos.Y)
	l.putColor(p+8, c)
	l.putInt(p+12, ctx.fonts.slot(font))
	copy(l.buf[off+textBaseSize:], s)
}

func (ctx *Context) pushIcon(icon Icon, r Rect, c Color) {
	l := &ctx.commands
	off := l.push(CommandIcon, iconSize)
	p := off + headerSize
	l.putInt(p, int(icon))
	l.putRect(p+4, r)
	l.putColor(p+20, c)
}

// fontTable maps font handles to small slots so text records stay plain
// bytes. Handles must be comparable.
type fontTable struct {
	fonts []Font
	n     int
}

func newFontTable(n int) fontTable { return fontTable{fonts: make([]Font, n)} }

func (t *fontTable) slot(f Font) int {
	for i := 0; i < t.n; i++ {
		if t.fonts[i] == f {
			return i
		}
	}
	expect(t.n < len(t.fonts), ErrCapacity, "register font", "font table full")
	t.fonts[t.n] = f
	t.n++
	return t.n - 1
}

func (t *fontTable) lookup(i int) Font {
	if i < 0 || i >= t.n {
		return nil
	}
	return t.fonts[i]
}
