package ui

import (
	"errors"
	"testing"
)

// fixedHost measures every byte as 8px wide and every line as 10px tall.
type fixedHost struct{ DefaultFrame }

func (fixedHost) TextWidth(_ Font, s string) int { return 8 * len(s) }
func (fixedHost) TextHeight(Font) int            { return 10 }

func newTestContext(opts ...Option) *Context {
	return New(fixedHost{}, opts...)
}

func frame(ctx *Context, fn func()) {
	ctx.Begin()
	if fn != nil {
		fn()
	}
	ctx.End()
}

// withLayout runs fn with body as both the layout body and the clip
// rectangle, outside of any container.
func withLayout(ctx *Context, body Rect, fn func()) {
	ctx.clipStack.Push(body)
	ctx.pushLayout(body, Vec2{})
	fn()
	ctx.layoutStack.Pop()
	ctx.clipStack.Pop()
}

func mustPanicKind(t *testing.T, kind error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v, got none", kind)
		}
		err, ok := r.(*Error)
		if !ok {
			t.Fatalf("panic value %T (%v), want *ui.Error", r, r)
		}
		if !errors.Is(err, kind) {
			t.Fatalf("panic %v, want kind %v", err, kind)
		}
	}()
	fn()
}

// commands collects the frame's commands in iteration order.
func commands(ctx *Context) []Command {
	var out []Command
	for cmd := range ctx.Commands() {
		out = append(out, cmd)
	}
	return out
}

func texts(ctx *Context) []string {
	var out []string
	for cmd := range ctx.Commands() {
		if cmd.Kind == CommandText {
			out = append(out, cmd.Text)
		}
	}
	return out
}

// rawOffsets walks the arena linearly, ignoring jumps' destinations, and
// returns the offsets of every non-jump record.
func rawOffsets(ctx *Context) []int {
	var out []int
	l := &ctx.commands
	for off := 0; off < l.Len(); off += l.size(off) {
		if l.kind(off) != CommandJump {
			out = append(out, off)
		}
	}
	return out
}
