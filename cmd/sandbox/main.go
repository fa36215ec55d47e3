package main

import (
	"flag"
	"log"

	"github.com/hubastard/microgrove/engine/assets"
	"github.com/hubastard/microgrove/engine/core"
	glbackend "github.com/hubastard/microgrove/engine/gfx/gl"
	"github.com/hubastard/microgrove/engine/gfx/renderer2d"
	"github.com/hubastard/microgrove/engine/platform"
	"github.com/hubastard/microgrove/engine/profiler"
	"github.com/hubastard/microgrove/engine/text"
	"github.com/hubastard/microgrove/engine/ui"
)

type App struct {
	r2d        *renderer2d.Renderer2D
	atlas      *text.Atlas
	uiLayer    *LayerUI
	debugLayer *LayerDebug
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(profiler.DefaultHistory)

	// Load 2D shader
	vs, err := assets.LoadShader("renderer2d.vert")
	if err != nil {
		panic(err)
	}
	fs, err := assets.LoadShader("renderer2d.frag")
	if err != nil {
		panic(err)
	}

	a.r2d, err = renderer2d.New(e.Renderer, vs, fs, 10000)
	if err != nil {
		panic(err)
	}

	ttf, fallback, err := assets.LoadFont(e.Config.FontPath)
	if err != nil {
		panic(err)
	}
	if fallback && e.Config.FontPath != "" {
		core.Logger().Warn("font not found, using built-in face", "path", e.Config.FontPath)
	}
	a.atlas, err = text.NewAtlas(ttf, e.Config.FontSize)
	if err != nil {
		panic(err)
	}
	if err := a.atlas.Upload(e.Renderer); err != nil {
		panic(err)
	}

	a.debugLayer = &LayerDebug{r2d: a.r2d}
	a.uiLayer = NewLayerUI(a.r2d, a.atlas, e.Config.Style, a.debugLayer.Frame)
	e.PushLayer(a.uiLayer)
	e.PushLayer(a.debugLayer)
}

func (a *App) OnUpdate(e *core.Engine, dt float64)    {}
func (a *App) OnRender(e *core.Engine, alpha float64) {}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyEscape {
		if w, ok := e.Window.(interface{ Close() }); ok {
			w.Close()
		}
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	a.atlas.Close()
	a.r2d.Shutdown()
}

func main() {
	cfgPath := flag.String("config", "sandbox.yaml", "optional YAML config file")
	flag.Parse()

	cfg, err := core.LoadConfig(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	logger := core.NewLogger(cfg.LogLevel)
	core.SetLogger(logger)
	ui.SetLogger(logger)

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(&App{}, cfg, newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
}
