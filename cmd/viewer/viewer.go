package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sceneview/config"
	"sceneview/editor"
	"sceneview/internal/opengl"
	"sceneview/scene"
)

// defaultLayoutPath is where F5 saves when no layout file was given.
const defaultLayoutPath = "layout.toml"

// viewer owns the loaded scene assets and the layout file they came from.
type viewer struct {
	cfg     config.Config
	backend *opengl.Backend
	assets  *scene.Assets

	suppressUntil time.Time
}

func (v *viewer) source() scene.AssetSource {
	return scene.AssetSource{
		Dir:      v.cfg.Resources.Dir,
		Models:   v.cfg.Resources.Models,
		Textures: v.cfg.Resources.Textures,
		TextureOptions: scene.TextureOptions{
			FlipVertical: v.cfg.Resources.FlipTextures,
			MaxSize:      v.cfg.Resources.MaxTextureSize,
		},
		AllowMissing: true,
	}
}

// loadScene builds the configured layout, or the built-in room, and uploads
// its assets.
func (v *viewer) loadScene(ctx context.Context) (*scene.Scene, error) {
	src := v.source()
	var s *scene.Scene
	if path := v.cfg.Scene.Layout; path != "" {
		layout, err := scene.LoadLayout(path)
		if err != nil {
			return nil, err
		}
		if s, err = layout.Build(); err != nil {
			return nil, fmt.Errorf("layout %s: %w", path, err)
		}
		src = layout.Source(src)
	} else {
		s = scene.DefaultLayout()
	}

	start := time.Now()
	assets, err := scene.LoadAssets(ctx, src, s.MeshNames(), s.TextureNames())
	if err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}
	if err := assets.Bind(s); err != nil {
		return nil, err
	}
	if err := v.backend.Upload(assets); err != nil {
		v.backend.Release(assets)
		return nil, fmt.Errorf("upload assets: %w", err)
	}
	slog.Info("scene loaded", "entities", len(s.Entities), "elapsed", time.Since(start))

	v.release()
	v.assets = assets
	return s, nil
}

func (v *viewer) reload(ctx context.Context, ed *editor.Editor) error {
	s, err := v.loadScene(ctx)
	if err != nil {
		return err
	}
	s.CursorHidden = ed.Scene.CursorHidden
	ed.SetScene(s)
	return nil
}

func (v *viewer) release() {
	if v.assets != nil {
		v.backend.Release(v.assets)
		v.assets = nil
	}
}

func (v *viewer) layoutPath() string {
	if v.cfg.Scene.Layout != "" {
		return v.cfg.Scene.Layout
	}
	return defaultLayoutPath
}

func (v *viewer) save(ed *editor.Editor) func() error {
	return func() error {
		path := v.layoutPath()
		v.suppressUntil = time.Now().Add(time.Second)
		if err := scene.SaveLayout(path, scene.LayoutFromScene(ed.Scene)); err != nil {
			return err
		}
		slog.Info("layout saved", "path", path)
		return nil
	}
}

// suppressed reports whether a change event is most likely our own save.
func (v *viewer) suppressed(now time.Time) bool {
	return now.Before(v.suppressUntil)
}

// watch starts the layout watcher when a layout file is in use. The returned
// channel is nil when nothing is watched.
func (v *viewer) watch(ctx context.Context) (<-chan string, error) {
	if !v.cfg.Scene.Watch || v.cfg.Scene.Layout == "" {
		return nil, nil
	}
	w, err := scene.WatchLayout(ctx, v.cfg.Scene.Layout)
	if err != nil {
		return nil, err
	}
	return w.Changes(), nil
}
