package core

import (
	"runtime"
	"time"

	"github.com/hubastard/microgrove/engine/profiler"
)

// Run wires the platform window + renderer and executes the main loop.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := &Engine{Window: win, Renderer: rend, Config: cfg, start: time.Now()}
	win.SetEventCallback(func(ev Event) { eng.dispatch(app, ev) })

	app.OnStart(eng)
	Logger().Info("engine start", "title", cfg.Title, "width", w, "height", h)

	loop(eng, app, cfg.ClearColor, time.Now)

	app.OnShutdown(eng)
	for {
		l, ok := eng.Layers.Pop()
		if !ok {
			break
		}
		l.OnDetach(eng)
	}
	Logger().Info("engine exit", "uptime", eng.Uptime().Round(time.Millisecond))
	return nil
}

// PushLayer attaches l on top of the stack.
func (e *Engine) PushLayer(l Layer) {
	e.Layers.Push(l)
	l.OnAttach(e)
}

func (e *Engine) dispatch(app App, ev Event) {
	if _, ok := ev.(EventResize); ok {
		if fw, fh := e.Window.FramebufferSize(); fw > 0 && fh > 0 {
			e.Renderer.Resize(fw, fh)
		}
	}
	if e.Layers.Dispatch(e, ev) {
		return
	}
	app.OnEvent(e, ev)
}

// Fixed-timestep (60 Hz) with interpolation.
const tick = time.Second / 60

const maxStep = 10 // prevent spiral of death

func loop(eng *Engine, app App, clear [4]float32, now func() time.Time) {
	var (
		accum time.Duration
		prev  = now()
	)
	for !eng.Window.ShouldClose() {
		endFrame := profiler.Start("frame")
		t := now()
		accum += t.Sub(prev)
		prev = t

		// Poll OS events (platform will emit via callbacks)
		eng.Window.PollEvents()

		endUpdate := profiler.Start("update")
		steps := 0
		for accum >= tick && steps < maxStep {
			dt := float64(tick) / float64(time.Second)
			app.OnUpdate(eng, dt)
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })
			accum -= tick
			steps++
		}
		if steps == maxStep {
			accum = 0
		}
		endUpdate()

		alpha := float64(accum) / float64(tick)

		endRender := profiler.Start("render")
		eng.Renderer.Clear(clear[0], clear[1], clear[2], clear[3])
		app.OnRender(eng, alpha)
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })
		endRender()

		eng.Window.SwapBuffers()
		endFrame()
	}
}
