package main

import (
	"os"

	"github.com/hubastard/microgrove/cmd/internal/showcase"
	"github.com/hubastard/microgrove/engine/colors"
	"github.com/hubastard/microgrove/engine/core"
	"github.com/hubastard/microgrove/engine/gfx/renderer2d"
	"github.com/hubastard/microgrove/engine/profiler"
	"github.com/hubastard/microgrove/engine/scene"
	"github.com/hubastard/microgrove/engine/text"
	"github.com/hubastard/microgrove/engine/ui"
)

const stylePath = "style.yaml"

var zoomSteps = [...]float32{1, 1.5, 2}

// LayerUI owns the ui.Context: it feeds it window input, declares the
// frame and replays the commands through the 2D renderer.
type LayerUI struct {
	ctx    *ui.Context
	input  *core.Input
	cam    *scene.ScreenCamera
	r2d    *renderer2d.Renderer2D
	atlas  *text.Atlas
	style  core.StyleConfig
	demo   *showcase.Showcase
	panels []func(*ui.Context)
	zoom   int
}

func NewLayerUI(r2d *renderer2d.Renderer2D, atlas *text.Atlas, style core.StyleConfig, panels ...func(*ui.Context)) *LayerUI {
	return &LayerUI{r2d: r2d, atlas: atlas, style: style, panels: panels}
}

func (l *LayerUI) OnAttach(e *core.Engine) {
	w, h := e.Window.Size()
	fw, fh := e.Window.FramebufferSize()
	l.cam = scene.NewScreenCamera(w, h, fw, fh)

	l.ctx = ui.New(text.NewHost(l.atlas))
	st := l.ctx.Style()
	st.Size.Y = l.atlas.LineHeight
	st.TitleHeight = l.atlas.LineHeight + 8
	l.style.Apply(st)

	l.input = core.NewInput(l.ctx)
	l.demo = showcase.New(showcase.Pixels)
	l.demo.Log("F1 stats window, F2 save style, F3 zoom")
}

func (l *LayerUI) OnDetach(e *core.Engine) {}

func (l *LayerUI) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerUI) OnRender(e *core.Engine, alpha float64) {
	end := profiler.Start("ui")
	defer end()

	bg := colors.FromUI(l.demo.Background())
	e.Renderer.Clear(bg[0], bg[1], bg[2], 1)

	l.ctx.Begin()
	l.demo.Frame(l.ctx)
	for _, p := range l.panels {
		p(l.ctx)
	}
	l.ctx.End()

	sx, sy := l.cam.PixelScale()
	l.r2d.DrawUI(l.ctx, l.atlas, renderer2d.UIView{VP: l.cam.VP(), ScaleX: sx, ScaleY: sy})
}

func (l *LayerUI) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventResize:
		fw, fh := e.Window.FramebufferSize()
		l.cam.SetViewport(v.W, v.H, fw, fh)
		return false
	case core.EventKey:
		if v.Down && v.Key == core.KeyF3 {
			l.zoom = (l.zoom + 1) % len(zoomSteps)
			l.cam.SetZoom(zoomSteps[l.zoom])
			l.input.SetScale(float64(l.cam.Zoom))
			return true
		}
		if v.Down && v.Key == core.KeyF2 {
			l.saveStyle()
			return true
		}
	}
	return l.input.Handle(ev)
}

func (l *LayerUI) saveStyle() {
	data, err := core.MarshalStyle(l.ctx.Style())
	if err == nil {
		err = os.WriteFile(stylePath, data, 0o644)
	}
	if err != nil {
		core.Logger().Error("save style", "err", err)
		l.demo.Log("save style failed: " + err.Error())
		return
	}
	core.Logger().Info("style saved", "path", stylePath)
	l.demo.Log("style saved to " + stylePath)
}
