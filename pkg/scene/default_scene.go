package scene

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-pathtracer/pkg/camera"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewDefaultScene creates the axis scene: a grey sphere at the origin with a
// colored sphere along each axis, a large rounded slab underneath and two
// big spherical lights overhead.
func NewDefaultScene() *Preset {
	unitBall := geometry.NewSphere(1)

	b := NewBuilder(core.Black)

	// Lights
	b.AddObject(geometry.NewSphere(10), core.Translation(10, 0, 40),
		material.NewEmissive(core.NewColor(20, 30, 30)))
	b.AddObject(geometry.NewSphere(12), core.Translation(0, 40, -30),
		material.NewEmissive(core.NewColor(30, 24, 20)))

	// Axis markers
	b.AddObject(unitBall, core.Translation(0, 0, 0), material.NewDiffuse(core.NewColor(0.8, 0.8, 0.8)))
	b.AddObject(unitBall, core.Translation(4, 0, 0), material.NewDiffuse(core.NewColor(1, 0, 0)))
	b.AddObject(unitBall, core.Translation(0, 4, 0), material.NewDiffuse(core.NewColor(0, 1, 0)))
	b.AddObject(unitBall, core.Translation(0, 0, 4), material.NewDiffuse(core.NewColor(0, 0, 1)))
	b.AddObject(unitBall, core.Translation(0, 0, 8), material.NewDiffuse(core.NewColor(0.5, 0.8, 0.2)))

	// Floor
	b.AddObject(geometry.NewRoundedBox(core.NewVec3(6, 6, 6), 0.75), core.Translation(0, 0, -8),
		material.NewDiffuse(core.NewColor(0.8, 0.8, 0.8)))

	return &Preset{
		Scene: b.MustBuild(),
		Camera: camera.Config{
			Eye:    core.NewVec3(20, 20, 20),
			Target: core.NewVec3(0, 0, 0),
			Up:     core.UnitZ,
			FOV:    2 * math32.Pi / 8,
			Width:  400,
			Height: 400,
		},
		SamplesPerBounce: 64,
		MaxDepth:         3,
	}
}

// NewSpheresScene creates four large diffuse spheres lit from above, viewed
// through a tall portrait camera
func NewSpheresScene() *Preset {
	ball := geometry.NewSphere(3)

	b := NewBuilder(core.Black).
		AddObject(geometry.NewSphere(10), core.Translation(10, 0, 40),
			material.NewEmissive(core.NewColor(25, 25, 25))).
		AddObject(geometry.NewSphere(12), core.Translation(0, 40, -30),
			material.NewEmissive(core.NewColor(30, 24, 15))).
		AddObject(ball, core.Translation(0, 0, 0), material.NewDiffuse(core.NewColor(0.9, 0.9, 0.9))).
		AddObject(ball, core.Translation(10, 0, 0), material.NewDiffuse(core.NewColor(0.1, 0.8, 0.9))).
		AddObject(ball, core.Translation(5, 3, 11), material.NewDiffuse(core.NewColor(0.8, 0.1, 0.8))).
		AddObject(ball, core.Translation(5, 3, -8), material.NewDiffuse(core.NewColor(0.8, 0.2, 0.8)))

	return &Preset{
		Scene: b.MustBuild(),
		Camera: camera.Config{
			Eye:    core.NewVec3(20, 20, 20),
			Target: core.NewVec3(4, 0, 3),
			Up:     core.UnitZ,
			FOV:    2 * math32.Pi / 8,
			Width:  400,
			Height: 600,
		},
		SamplesPerBounce: 64,
		MaxDepth:         4,
	}
}

// NewEmptyScene creates a scene with no objects; every pixel is the background
func NewEmptyScene() *Preset {
	return &Preset{
		Scene:            NewBuilder(core.NewColor(0.5, 0.7, 1.0)).MustBuild(),
		Camera:           camera.DefaultConfig(),
		SamplesPerBounce: 1,
		MaxDepth:         1,
	}
}
