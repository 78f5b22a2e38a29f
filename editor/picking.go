package editor

import (
	"fmt"
	"log/slog"

	"sceneview/scene"
)

// Picker returns the object id under a pixel (origin top-left), 0 for
// background.
type Picker interface {
	Pick(x, y int) (uint32, error)
}

// IDReader reads one texel of an id buffer whose origin is bottom-left.
type IDReader interface {
	ReadID(x, y int) (uint32, error)
	Size() (width, height int)
}

// FramebufferPicker reads ids written by the pick pass.
type FramebufferPicker struct {
	Buffer IDReader
}

func (p FramebufferPicker) Pick(x, y int) (uint32, error) {
	w, h := p.Buffer.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return 0, nil
	}
	id, err := p.Buffer.ReadID(x, h-y)
	if err != nil {
		return 0, fmt.Errorf("read pick buffer: %w", err)
	}
	return id, nil
}

// Viewport reports the drawable size in pixels.
type Viewport interface {
	Size() (width, height int)
}

// RaycastPicker intersects a camera ray with entity meshes on the CPU.
type RaycastPicker struct {
	Scene    func() *scene.Scene
	Camera   *scene.OrbitCamera
	Viewport Viewport
}

func (p RaycastPicker) Pick(x, y int) (uint32, error) {
	w, h := p.Viewport.Size()
	cam := *p.Camera
	cam.UpdateAspectRatio(float32(w), float32(h))

	ray, ok := ScreenToRay(float32(x), float32(y), w, h, cam.ViewMatrix(), cam.ProjectionMatrix())
	if !ok {
		return 0, nil
	}
	hit := RaycastScene(ray, p.Scene().Drawables())
	if !hit.Hit {
		return 0, nil
	}
	slog.Debug("raycast hit", "id", hit.Entity.ObjectID, "distance", hit.Distance, "face", hit.FaceIdx)
	return hit.Entity.ObjectID, nil
}
