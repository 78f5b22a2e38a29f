package scene

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

var (
	ErrUnknownMesh    = errors.New("unknown mesh")
	ErrUnknownTexture = errors.New("unknown texture")
)

var (
	modelExtensions   = []string{".obj", ".glb", ".gltf"}
	textureExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff", ".webp"}
)

// AssetSource says where named assets live on disk.
type AssetSource struct {
	Dir      string
	Models   string
	Textures string

	// MeshPaths and TexturePaths override the name-based lookup.
	MeshPaths    map[string]string
	TexturePaths map[string]string

	TextureOptions TextureOptions

	// AllowMissing substitutes a unit cube for missing meshes and a white
	// texel for missing textures instead of failing.
	AllowMissing bool
}

// Assets is the set of decoded meshes and textures, keyed by name.
type Assets struct {
	mu       sync.RWMutex
	meshes   map[string]*Mesh
	textures map[string]*Texture
}

func NewAssets() *Assets {
	return &Assets{
		meshes:   make(map[string]*Mesh),
		textures: make(map[string]*Texture),
	}
}

// LoadAssets resolves and decodes the named assets concurrently.
func LoadAssets(ctx context.Context, src AssetSource, meshNames, textureNames []string) (*Assets, error) {
	a := NewAssets()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, name := range meshNames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			mesh, err := src.loadMesh(name)
			if err != nil {
				return err
			}
			a.AddMesh(name, mesh)
			return nil
		})
	}
	for _, name := range textureNames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tex, err := src.loadTexture(name)
			if err != nil {
				return err
			}
			a.AddTexture(name, tex)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return a, nil
}

func (src AssetSource) loadMesh(name string) (*Mesh, error) {
	path, err := src.resolve(name, src.MeshPaths, src.Models, modelExtensions)
	if err != nil {
		if src.AllowMissing && errors.Is(err, fs.ErrNotExist) {
			slog.Warn("mesh not found, using placeholder", "mesh", name)
			return placeholderMesh(name), nil
		}
		return nil, fmt.Errorf("mesh %q: %w", name, err)
	}
	mesh, err := LoadMesh(path)
	if err != nil {
		return nil, err
	}
	mesh.Name = name
	slog.Info("loaded mesh", "name", name, "path", path, "vertices", len(mesh.Vertices))
	return mesh, nil
}

func (src AssetSource) loadTexture(name string) (*Texture, error) {
	path, err := src.resolve(name, src.TexturePaths, src.Textures, textureExtensions)
	if err != nil {
		if src.AllowMissing && errors.Is(err, fs.ErrNotExist) {
			slog.Warn("texture not found, using white", "texture", name)
			return NewSolidTexture(name, 255, 255, 255, 255), nil
		}
		return nil, fmt.Errorf("texture %q: %w", name, err)
	}
	tex, err := LoadTexture(path, src.TextureOptions)
	if err != nil {
		return nil, err
	}
	tex.Name = name
	slog.Info("loaded texture", "name", name, "path", path, "width", tex.Width, "height", tex.Height)
	return tex, nil
}

// resolve finds the file for name: an explicit override (relative to Dir),
// else <Dir>/<sub>/<name><ext> for the first extension that exists.
func (src AssetSource) resolve(name string, overrides map[string]string, sub string, exts []string) (string, error) {
	if p, ok := overrides[name]; ok {
		if !filepath.IsAbs(p) {
			p = filepath.Join(src.Dir, p)
		}
		if _, err := os.Stat(p); err != nil {
			return "", err
		}
		return p, nil
	}
	base := filepath.Join(src.Dir, sub, name)
	for _, ext := range exts {
		p := base + ext
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("no file for %s.*: %w", base, fs.ErrNotExist)
}

func (a *Assets) AddMesh(name string, m *Mesh) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.meshes[name] = m
}

func (a *Assets) AddTexture(name string, t *Texture) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.textures[name] = t
}

func (a *Assets) Mesh(name string) (*Mesh, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	m, ok := a.meshes[name]
	return m, ok
}

func (a *Assets) Texture(name string) (*Texture, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	t, ok := a.textures[name]
	return t, ok
}

// Missing returns the names from the two lists that are not loaded yet.
func (a *Assets) Missing(meshNames, textureNames []string) (meshes, textures []string) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, n := range meshNames {
		if _, ok := a.meshes[n]; !ok {
			meshes = append(meshes, n)
		}
	}
	for _, n := range textureNames {
		if _, ok := a.textures[n]; !ok {
			textures = append(textures, n)
		}
	}
	return meshes, textures
}

// Merge copies every asset of other into a, replacing same-named entries.
func (a *Assets) Merge(other *Assets) {
	other.mu.RLock()
	defer other.mu.RUnlock()
	a.mu.Lock()
	defer a.mu.Unlock()
	for n, m := range other.meshes {
		a.meshes[n] = m
	}
	for n, t := range other.textures {
		a.textures[n] = t
	}
}

// Each calls fn for every mesh and texture. Used for GPU upload.
func (a *Assets) Each(meshFn func(*Mesh), texFn func(*Texture)) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, m := range a.meshes {
		meshFn(m)
	}
	for _, t := range a.textures {
		texFn(t)
	}
}

// Bind points every entity (and the cursor) at its mesh and texture. An
// empty texture name leaves Texture nil.
func (a *Assets) Bind(s *Scene) error {
	all := append(s.Entities[:len(s.Entities):len(s.Entities)], s.Cursor)
	for _, e := range all {
		if e == nil {
			continue
		}
		if err := a.BindEntity(e); err != nil {
			return err
		}
	}
	return nil
}

func (a *Assets) BindEntity(e *Entity) error {
	m, ok := a.Mesh(e.MeshName)
	if !ok {
		return fmt.Errorf("entity %q: %w %q", e.Name, ErrUnknownMesh, e.MeshName)
	}
	e.Mesh = m

	e.Texture = nil
	if e.TextureName == "" {
		return nil
	}
	t, ok := a.Texture(e.TextureName)
	if !ok {
		return fmt.Errorf("entity %q: %w %q", e.Name, ErrUnknownTexture, e.TextureName)
	}
	e.Texture = t
	return nil
}
