package main

import (
	"flag"
	"fmt"
	"path/filepath"

	"sceneview/config"
	"sceneview/renderer"
)

type flags struct {
	config    string
	layout    string
	resources string
	pipeline  string
	width     int
	height    int
	picking   string
	verbose   bool

	set map[string]bool
}

func parseFlags(args []string) (*flags, error) {
	fs := flag.NewFlagSet("sceneview", flag.ContinueOnError)
	f := &flags{set: map[string]bool{}}

	fs.StringVar(&f.config, "config", "", "Path to a TOML config file")
	fs.StringVar(&f.layout, "layout", "", "Scene layout file (.toml, .yaml or .yml); the built-in room when empty")
	fs.StringVar(&f.resources, "resources", "", "Resource directory holding models/ and textures/")
	fs.StringVar(&f.pipeline, "pipeline", "", "Initial pipeline: forward, gbuffer or deferred")
	fs.IntVar(&f.width, "width", 0, "Window width in pixels")
	fs.IntVar(&f.height, "height", 0, "Window height in pixels")
	fs.StringVar(&f.picking, "picking", "", "Picking method: framebuffer or raycast")
	fs.BoolVar(&f.verbose, "v", false, "Log at debug level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	if f.set["pipeline"] {
		if _, err := renderer.ParsePipeline(f.pipeline); err != nil {
			return nil, fmt.Errorf("error: -pipeline: %w", err)
		}
	}
	if f.set["layout"] {
		switch filepath.Ext(f.layout) {
		case ".toml", ".yaml", ".yml":
		default:
			return nil, fmt.Errorf("error: Layout file must have a .toml, .yaml or .yml extension")
		}
	}
	if (f.set["width"] && f.width <= 0) || (f.set["height"] && f.height <= 0) {
		return nil, fmt.Errorf("error: Window size must be greater than 0")
	}
	return f, nil
}

// loadConfig reads the config file, if any, and applies the flags that were
// given on the command line on top of it.
func (f *flags) loadConfig() (config.Config, error) {
	cfg := config.Default()
	if f.config != "" {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return cfg, err
		}
	}

	if f.set["layout"] {
		cfg.Scene.Layout = f.layout
	}
	if f.set["resources"] {
		cfg.Resources.Dir = f.resources
	}
	if f.set["pipeline"] {
		cfg.Render.Pipeline = f.pipeline
	}
	if f.set["width"] {
		cfg.Window.Width = f.width
	}
	if f.set["height"] {
		cfg.Window.Height = f.height
	}
	if f.set["picking"] {
		cfg.Editor.Picking = f.picking
	}
	if f.verbose {
		cfg.Log.Level = "debug"
	}

	if err := cfg.ExpandPaths(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}
