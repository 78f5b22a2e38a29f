// Package config loads viewer settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"sceneview/core"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window    WindowConfig    `toml:"window"`
	Resources ResourcesConfig `toml:"resources"`
	Scene     SceneConfig     `toml:"scene"`
	Camera    CameraConfig    `toml:"camera"`
	Render    RenderConfig    `toml:"render"`
	Editor    EditorConfig    `toml:"editor"`
	Log       LogConfig       `toml:"log"`
}

type WindowConfig struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Title      string `toml:"title"`
	Resizable  bool   `toml:"resizable"`
	VSync      bool   `toml:"vsync"`
	Fullscreen bool   `toml:"fullscreen"`
}

type ResourcesConfig struct {
	Dir            string `toml:"dir"`
	Models         string `toml:"models"`
	Textures       string `toml:"textures"`
	FlipTextures   bool   `toml:"flip_textures"`
	MaxTextureSize int    `toml:"max_texture_size"`
}

type SceneConfig struct {
	// Layout is a .toml/.yaml layout file; empty uses the built-in room.
	Layout string `toml:"layout"`
	Watch  bool   `toml:"watch"`
}

type CameraConfig struct {
	FOV         float32 `toml:"fov"`
	Near        float32 `toml:"near"`
	Far         float32 `toml:"far"`
	RotateSpeed float32 `toml:"rotate_speed"`
	ZoomSpeed   float32 `toml:"zoom_speed"`
	PanSpeed    float32 `toml:"pan_speed"`
}

type RenderConfig struct {
	Pipeline       string     `toml:"pipeline"`
	ClearColor     [3]float32 `toml:"clear_color"`
	FrustumCulling bool       `toml:"frustum_culling"`
}

type EditorConfig struct {
	Picking       string  `toml:"picking"`
	TranslateStep float32 `toml:"translate_step"`
	RotateStep    float32 `toml:"rotate_step"`
	ScaleStep     float32 `toml:"scale_step"`
	HistoryDepth  int     `toml:"history_depth"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the settings the viewer uses without a config file.
func Default() Config {
	win := core.DefaultWindowConfig()
	return Config{
		Window: WindowConfig{
			Width:      win.Width,
			Height:     win.Height,
			Title:      win.Title,
			Resizable:  win.Resizable,
			VSync:      win.VSync,
			Fullscreen: win.Fullscreen,
		},
		Resources: ResourcesConfig{
			Dir:      "resources",
			Models:   "models",
			Textures: "textures",
		},
		Scene: SceneConfig{
			Watch: true,
		},
		Camera: CameraConfig{
			FOV:         60,
			Near:        0.01,
			Far:         100,
			RotateSpeed: 4,
			ZoomSpeed:   0.2,
			PanSpeed:    0.2,
		},
		Render: RenderConfig{
			Pipeline:       "forward",
			ClearColor:     [3]float32{0.1, 0.1, 0.2},
			FrustumCulling: true,
		},
		Editor: EditorConfig{
			Picking:       "framebuffer",
			TranslateStep: 0.1,
			RotateStep:    2,
			ScaleStep:     0.1,
			HistoryDepth:  100,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path on top of Default. Keys missing from the file keep their
// default values; unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	expanded, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("expand config path %q: %w", path, err)
	}
	f, err := os.Open(expanded)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return cfg, fmt.Errorf("%w: %s", ErrInvalid, strict.String())
		}
		return cfg, fmt.Errorf("decode config %q: %w", expanded, err)
	}

	if err := cfg.ExpandPaths(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Save writes cfg as TOML.
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ExpandPaths resolves a leading ~ in the resource and layout paths.
func (c *Config) ExpandPaths() error {
	for _, p := range []*string{&c.Resources.Dir, &c.Scene.Layout} {
		if *p == "" {
			continue
		}
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("expand %q: %w", *p, err)
		}
		*p = expanded
	}
	return nil
}

// Validate reports the first setting the viewer cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: camera clip planes near=%g far=%g", ErrInvalid, c.Camera.Near, c.Camera.Far)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: camera fov %g", ErrInvalid, c.Camera.FOV)
	case c.Resources.MaxTextureSize < 0:
		return fmt.Errorf("%w: max_texture_size %d", ErrInvalid, c.Resources.MaxTextureSize)
	case c.Editor.HistoryDepth <= 0:
		return fmt.Errorf("%w: history_depth %d", ErrInvalid, c.Editor.HistoryDepth)
	}
	switch c.Editor.Picking {
	case "framebuffer", "raycast":
	default:
		return fmt.Errorf("%w: picking %q (want framebuffer or raycast)", ErrInvalid, c.Editor.Picking)
	}
	switch strings.ToLower(c.Render.Pipeline) {
	case "forward", "gbuffer", "deferred":
	default:
		return fmt.Errorf("%w: pipeline %q (want forward, gbuffer or deferred)", ErrInvalid, c.Render.Pipeline)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses the configured level name.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log level %q", ErrInvalid, l.Level)
	}
	return level, nil
}

// CoreWindowConfig converts the window section for core.NewWindow.
func (c Config) CoreWindowConfig() core.WindowConfig {
	return core.WindowConfig{
		Width:      c.Window.Width,
		Height:     c.Window.Height,
		Title:      c.Window.Title,
		Resizable:  c.Window.Resizable,
		VSync:      c.Window.VSync,
		Fullscreen: c.Window.Fullscreen,
	}
}
