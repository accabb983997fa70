package scene

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-pathtracer/pkg/camera"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewRoomScene creates a corner of a room built from three thick wall slabs,
// with a ball and a box on the floor and a thin tube light along one wall
func NewRoomScene() *Preset {
	b := NewBuilder(core.Black)

	// Walls
	b.AddObject(geometry.NewBox(core.NewVec3(2, 10, 10)), core.Translation(-2, 10, 10),
		material.NewDiffuse(core.NewColor(0.3, 0.9, 0.9)))
	b.AddObject(geometry.NewBox(core.NewVec3(10, 2, 10)), core.Translation(10, -2, 10),
		material.NewDiffuse(core.NewColor(0.9, 0.3, 0.9)))
	b.AddObject(geometry.NewBox(core.NewVec3(10, 10, 2)), core.Translation(10, 10, -2),
		material.NewDiffuse(core.NewColor(0.9, 0.9, 0.3)))

	// Furniture
	b.AddObject(geometry.NewSphere(1), core.Translation(3.5, 6, 1),
		material.NewDiffuse(core.NewColor(0.9, 0.8, 0.2)))
	b.AddObject(geometry.NewBox(core.NewVec3(3, 2, 3.5)), core.Translation(7, 4, 0),
		material.NewDiffuse(core.NewColor(0.9, 0.2, 0.3)))

	// Tube light
	b.AddObject(geometry.NewCapsule(core.NewVec3(4, 0.2, 10), core.NewVec3(11, 0.2, 10), 0.2),
		core.Identity(), material.NewEmissive(core.NewColor(1, 1, 0.5).Scale(100)))

	return &Preset{
		Scene: b.MustBuild(),
		Camera: camera.Config{
			Eye:    core.NewVec3(13, 20, 5),
			Target: core.NewVec3(4, 0, 8),
			Up:     core.UnitZ,
			FOV:    2 * math32.Pi / 5,
			Width:  400,
			Height: 400,
		},
		SamplesPerBounce: 128,
		MaxDepth:         4,
	}
}
