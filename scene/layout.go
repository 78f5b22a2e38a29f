package scene

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"sceneview/core"
	"sceneview/math"
)

// LayoutVersion is written into saved layouts.
const LayoutVersion = "1.0.0"

// supportedLayouts accepts every 1.x layout.
var supportedLayouts = func() *semver.Constraints {
	c, err := semver.NewConstraint("^1")
	if err != nil {
		panic(err)
	}
	return c
}()

var ErrUnsupportedLayoutVersion = errors.New("unsupported layout version")

// Layout is the on-disk form of a scene. Vectors are stored as plain arrays
// so TOML and YAML files stay readable.
type Layout struct {
	Version  string            `toml:"version" yaml:"version"`
	Ambient  [3]float32        `toml:"ambient" yaml:"ambient"`
	Lights   []LayoutLight     `toml:"lights" yaml:"lights"`
	Cursor   LayoutCursor      `toml:"cursor" yaml:"cursor"`
	Entities []LayoutEntity    `toml:"entities" yaml:"entities"`
	Meshes   map[string]string `toml:"meshes,omitempty" yaml:"meshes,omitempty"`
	Textures map[string]string `toml:"textures,omitempty" yaml:"textures,omitempty"`
}

type LayoutLight struct {
	Position [4]float32 `toml:"position" yaml:"position"`
	Color    [3]float32 `toml:"color" yaml:"color"`
}

type LayoutCursor struct {
	Hidden  bool   `toml:"hidden" yaml:"hidden"`
	Mesh    string `toml:"mesh,omitempty" yaml:"mesh,omitempty"`
	Texture string `toml:"texture,omitempty" yaml:"texture,omitempty"`
}

type LayoutEntity struct {
	Name        string        `toml:"name" yaml:"name"`
	ID          uint32        `toml:"id" yaml:"id"`
	Mesh        string        `toml:"mesh" yaml:"mesh"`
	Texture     string        `toml:"texture,omitempty" yaml:"texture,omitempty"`
	Translation [3]float32    `toml:"translation" yaml:"translation"`
	Rotation    [3]float32    `toml:"rotation" yaml:"rotation"`
	Scale       [3]float32    `toml:"scale" yaml:"scale"`
	Diffuse     [3]float32    `toml:"diffuse" yaml:"diffuse"`
	Specular    [3]float32    `toml:"specular" yaml:"specular"`
	Shininess   float32       `toml:"shininess" yaml:"shininess"`
	Cull        core.CullMode `toml:"cull" yaml:"cull"`
}

type layoutFormat int

const (
	formatTOML layoutFormat = iota
	formatYAML
)

func formatFor(path string) (layoutFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return formatTOML, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	}
	return 0, fmt.Errorf("layout %q: unknown format (want .toml, .yaml or .yml)", path)
}

// LoadLayout reads a TOML or YAML layout, chosen by file extension.
func LoadLayout(path string) (*Layout, error) {
	format, err := formatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	l, err := ParseLayout(data, format == formatYAML)
	if err != nil {
		return nil, fmt.Errorf("layout %q: %w", path, err)
	}
	return l, nil
}

// ParseLayout decodes layout bytes and checks the version.
func ParseLayout(data []byte, isYAML bool) (*Layout, error) {
	var l Layout
	if isYAML {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&l); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	} else {
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&l); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	}
	if err := l.checkVersion(); err != nil {
		return nil, err
	}
	return &l, nil
}

// checkVersion rejects layouts from another major version. A missing
// version is read as the current one.
func (l *Layout) checkVersion() error {
	if l.Version == "" {
		l.Version = LayoutVersion
		return nil
	}
	v, err := semver.NewVersion(l.Version)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrUnsupportedLayoutVersion, l.Version, err)
	}
	if !supportedLayouts.Check(v) {
		return fmt.Errorf("%w: %s (want %s)", ErrUnsupportedLayoutVersion, v, supportedLayouts)
	}
	return nil
}

// SaveLayout writes l as TOML or YAML according to the file extension.
func SaveLayout(path string, l *Layout) error {
	format, err := formatFor(path)
	if err != nil {
		return err
	}
	var data []byte
	if format == formatYAML {
		data, err = yaml.Marshal(l)
	} else {
		data, err = toml.Marshal(l)
	}
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	return nil
}

// LayoutFromScene captures the scene for saving. Asset path overrides are
// not part of the scene and stay empty.
func LayoutFromScene(s *Scene) *Layout {
	l := &Layout{
		Version: LayoutVersion,
		Ambient: s.Ambient,
	}
	for _, light := range s.Lights {
		l.Lights = append(l.Lights, LayoutLight{Position: light.Position, Color: light.Color})
	}
	l.Cursor.Hidden = s.CursorHidden
	if s.Cursor != nil {
		l.Cursor.Mesh = s.Cursor.MeshName
		l.Cursor.Texture = s.Cursor.TextureName
	}
	for _, e := range s.Entities {
		l.Entities = append(l.Entities, LayoutEntity{
			Name:        e.Name,
			ID:          e.ObjectID,
			Mesh:        e.MeshName,
			Texture:     e.TextureName,
			Translation: e.Translation,
			Rotation:    e.Rotation,
			Scale:       e.Scale,
			Diffuse:     e.DiffuseColor,
			Specular:    e.SpecularColor,
			Shininess:   e.Shininess,
			Cull:        e.Cull,
		})
	}
	return l
}

// Build turns the layout into a scene with unbound assets. Entities without
// an id get fresh ones; duplicate ids are an error.
func (l *Layout) Build() (*Scene, error) {
	s := NewScene()
	s.Ambient = l.Ambient
	if len(l.Lights) > MaxLights {
		return nil, fmt.Errorf("layout has %d lights, at most %d are supported", len(l.Lights), MaxLights)
	}
	s.Lights = make([]Light, 0, len(l.Lights))
	for _, light := range l.Lights {
		s.Lights = append(s.Lights, Light{Position: light.Position, Color: light.Color})
	}
	s.CursorHidden = l.Cursor.Hidden
	if l.Cursor.Mesh != "" {
		s.Cursor.MeshName = l.Cursor.Mesh
	}
	if l.Cursor.Texture != "" {
		s.Cursor.TextureName = l.Cursor.Texture
	}

	seen := map[uint32]string{}
	var pending []*Entity
	for i, le := range l.Entities {
		if le.Mesh == "" {
			return nil, fmt.Errorf("entity %d (%q): no mesh", i, le.Name)
		}
		if le.ID == CursorID {
			return nil, fmt.Errorf("entity %q: id %#x is reserved for the cursor", le.Name, CursorID)
		}
		if prev, dup := seen[le.ID]; dup && le.ID != 0 {
			return nil, fmt.Errorf("entity %q: id %d already used by %q", le.Name, le.ID, prev)
		}
		seen[le.ID] = le.Name

		e := NewEntity(le.Mesh, le.Texture, le.ID)
		if le.Name != "" {
			e.Name = le.Name
		}
		e.Translation = le.Translation
		e.Rotation = le.Rotation
		e.Scale = le.Scale
		if e.Scale == (math.Vector3{}) {
			e.Scale = math.Vector3{1, 1, 1}
		}
		e.DiffuseColor = le.Diffuse
		e.SpecularColor = le.Specular
		e.Shininess = le.Shininess
		e.Cull = le.Cull
		s.Add(e)
		if e.ObjectID == 0 {
			pending = append(pending, e)
		}
	}
	for _, e := range pending {
		e.ObjectID = s.NextObjectID()
	}
	return s, nil
}

// Source returns src with the layout's path overrides applied.
func (l *Layout) Source(src AssetSource) AssetSource {
	if len(l.Meshes) > 0 {
		src.MeshPaths = l.Meshes
	}
	if len(l.Textures) > 0 {
		src.TexturePaths = l.Textures
	}
	return src
}
