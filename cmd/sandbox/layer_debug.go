package main

import (
	"github.com/hubastard/microgrove/engine/core"
	"github.com/hubastard/microgrove/engine/gfx/renderer2d"
	"github.com/hubastard/microgrove/engine/profiler"
	"github.com/hubastard/microgrove/engine/scratch"
	"github.com/hubastard/microgrove/engine/ui"
)

const statsWindow = "Stats"

// LayerDebug shows frame timings and renderer counters in a UI window.
// The UI layer calls Frame while it declares its frame.
type LayerDebug struct {
	r2d    *renderer2d.Renderer2D
	buf    *scratch.Buffer
	stats  []profiler.Stat
	ticks  int
	toggle bool
	uptime float64
}

func (l *LayerDebug) OnAttach(e *core.Engine) {
	l.buf = scratch.New(1024)
}

func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {
	l.ticks++
	l.uptime = e.Uptime().Seconds()
}

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyF1 {
		l.toggle = true
		return true
	}
	return false
}

func (l *LayerDebug) Frame(ctx *ui.Context) {
	if l.toggle {
		cnt := ctx.Container(statsWindow)
		cnt.Open = !cnt.Open
		l.toggle = false
	}
	if ctx.BeginWindow(statsWindow, ui.NewRect(680, 40, 280, 320)) == 0 {
		return
	}
	b := l.buf
	b.Reset()
	rs := l.r2d.Stats()

	ctx.LayoutRow([]int{110, -1}, 0)
	row := func(label, value string) {
		ctx.Label(label)
		ctx.Label(value)
	}
	row("Ticks", b.Sprintf("%d", l.ticks))
	row("Uptime", b.Sprintf("%.1f s", l.uptime))

	if ctx.HeaderEx("Timings", ui.OptExpanded) != 0 {
		ctx.LayoutRow([]int{110, -1}, 0)
		l.stats = profiler.Default().Stats(l.stats[:0])
		for _, s := range l.stats {
			row(s.Name, b.Sprintf("%.2f ms (max %.2f)", ms(s.Avg.Seconds()), ms(s.Max.Seconds())))
		}
	}
	if ctx.HeaderEx("Renderer", ui.OptExpanded) != 0 {
		ctx.LayoutRow([]int{110, -1}, 0)
		row("Draw calls", b.Sprintf("%d", rs.DrawCalls))
		row("Quads", b.Sprintf("%d", rs.QuadCount))
		row("Vertices", b.Sprintf("%d", rs.TotalVertexCount()))
		row("Textures", b.Sprintf("%d", rs.TextureCount))
		row("Clip changes", b.Sprintf("%d", rs.ClipChanges))
	}
	if ctx.Header("Memory") != 0 {
		ctx.LayoutRow([]int{110, -1}, 0)
		row("Heap", b.Sprintf("%.3f MB", float64(profiler.MemoryUsage())/(1<<20)))
		row("Goroutines", b.Sprintf("%d", profiler.NumGoroutine()))
		row("Commands", b.Sprintf("%d bytes", ctx.CommandList().Len()))
	}
	ctx.EndWindow()
}

func ms(s float64) float64 { return s * 1000 }
