package scene

import (
	"github.com/df07/go-pathtracer/pkg/camera"
)

// Preset is a ready-made scene with the camera and render settings it was composed for
type Preset struct {
	Scene            *Scene
	Camera           camera.Config
	SamplesPerBounce int
	MaxDepth         int
}
