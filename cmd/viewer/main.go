package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"sceneview/config"
	"sceneview/core"
	"sceneview/editor"
	"sceneview/internal/opengl"
	"sceneview/renderer"
	"sceneview/scene"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := f.loadConfig()
	if err != nil {
		return err
	}
	level, _ := cfg.Log.SlogLevel()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	window, err := core.NewWindow(cfg.CoreWindowConfig())
	if err != nil {
		return err
	}
	defer window.Destroy()

	backend, err := opengl.NewBackend()
	if err != nil {
		return err
	}
	defer backend.Destroy()

	engine := renderer.NewRenderEngine(backend, renderer.Options{
		ClearColor:     core.Color{R: cfg.Render.ClearColor[0], G: cfg.Render.ClearColor[1], B: cfg.Render.ClearColor[2], A: 1},
		FrustumCulling: cfg.Render.FrustumCulling,
	})
	if err := engine.Resize(window.Size()); err != nil {
		return err
	}
	window.OnResize(func(w, h int) {
		if err := engine.Resize(w, h); err != nil {
			slog.Error("resize failed", "err", err)
		}
	})

	v := &viewer{cfg: cfg, backend: backend}
	s, err := v.loadScene(ctx)
	if err != nil {
		return err
	}
	defer v.release()

	camera := newCamera(cfg.Camera)
	input := editor.NewInputManager(window)
	window.SetScrollCallback(func(_, yoff float64) { input.AddScroll(yoff) })

	pipeline, _ := renderer.ParsePipeline(cfg.Render.Pipeline)
	opts := editor.Options{
		Steps: editor.Steps{
			Translate: cfg.Editor.TranslateStep,
			Rotate:    cfg.Editor.RotateStep,
			Scale:     cfg.Editor.ScaleStep,
		},
		HistoryDepth: cfg.Editor.HistoryDepth,
		Pipeline:     pipeline,
		RaiseStep:    editor.DefaultOptions().RaiseStep,
	}
	ed := editor.NewEditor(s, camera, input, nil, opts)
	ed.Picker = newPicker(cfg.Editor.Picking, ed, backend, window)
	ed.OnSave = v.save(ed)
	ed.OnReload = func() error { return v.reload(ctx, ed) }
	ed.OnQuit = func() { window.SetShouldClose(true) }

	changes, err := v.watch(ctx)
	if err != nil {
		slog.Warn("layout watch disabled", "err", err)
	}

	slog.Info("viewer ready", "entities", len(s.Entities), "pipeline", pipeline, "picking", cfg.Editor.Picking)

	status := newStatusLine()
	for !window.ShouldClose() && ctx.Err() == nil {
		window.PollEvents()
		ed.Update()

		select {
		case path, ok := <-changes:
			if !ok {
				changes = nil
				break
			}
			if v.suppressed(time.Now()) {
				break
			}
			slog.Info("layout changed", "path", path)
			if err := v.reload(ctx, ed); err != nil {
				slog.Error("reload failed", "err", err)
				ed.StatusText = "Error: " + err.Error()
			}
		default:
		}

		if err := engine.Render(ed.Scene, camera, ed.Pipeline, ed.Selection.ID); err != nil {
			return err
		}
		window.SwapBuffers()

		if status.tick(time.Now()) {
			window.SetTitle(status.text(cfg.Window.Title, ed, engine.Stats()))
		}
	}
	return nil
}

func newCamera(c config.CameraConfig) *scene.OrbitCamera {
	camera := scene.NewOrbitCamera()
	camera.FOV = c.FOV
	camera.Near = c.Near
	camera.Far = c.Far
	camera.RotateSpeed = c.RotateSpeed
	camera.ZoomSpeed = c.ZoomSpeed
	camera.PanSpeed = c.PanSpeed
	return camera
}

func newPicker(method string, ed *editor.Editor, backend *opengl.Backend, window *core.Window) editor.Picker {
	if method == "raycast" {
		return editor.RaycastPicker{
			Scene:    func() *scene.Scene { return ed.Scene },
			Camera:   ed.Camera,
			Viewport: window,
		}
	}
	return editor.FramebufferPicker{Buffer: backend}
}
