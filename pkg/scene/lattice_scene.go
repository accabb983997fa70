package scene

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-pathtracer/pkg/camera"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Crystal lattice dimensions, in ångström
const (
	latticeHalfCells = 3
	latticeSpacing   = 10.0003 // metal to metal
	cobaltCarbon     = 1.89
	cobaltNitrogen   = 3.03
)

type atom struct {
	radius float32
	color  core.Color
}

var (
	manganese = atom{radius: 1.2, color: core.NewColor(0.37, 0.4, 0.82)}
	cobalt    = atom{radius: 1.05, color: core.NewColor(0.75, 0.08, 0.77)}
	carbon    = atom{radius: 0.76 * 0.9, color: core.NewColor(0.6, 0.06, 0.06)}
	nitrogen  = atom{radius: 0.71 * 0.9, color: core.NewColor(0.17, 0.67, 0.24)}
)

// NewLatticeScene creates a ball model of a Prussian blue analog crystal:
// manganese ions alternating with hexacyanocobaltate groups on a cubic
// grid, in front of a white background
func NewLatticeScene() *Preset {
	b := NewBuilder(core.NewColor(1, 1, 1))

	for x := range latticeHalfCells {
		for y := range latticeHalfCells {
			for z := range latticeHalfCells {
				position := core.NewVec3(float32(x), float32(y), float32(z)).Mul(latticeSpacing / 2)
				if (x+y+z)%2 == 0 {
					addAtom(b, manganese, position)
				} else {
					addCyanocobaltate(b, position)
				}
			}
		}
	}

	light := material.NewEmissive(core.NewColor(15, 15, 15))
	b.AddObject(geometry.NewSphere(10), core.Translation(30, 30, 20), light)
	b.AddObject(geometry.NewSphere(10), core.Translation(40, 0, 35), light)

	center := float32(latticeHalfCells-1) * latticeSpacing / 4
	return &Preset{
		Scene: b.MustBuild(),
		Camera: camera.Config{
			Eye:    core.NewVec3(30, 18, 21),
			Target: core.NewVec3(center, center, center),
			Up:     core.UnitZ,
			FOV:    2 * math32.Pi / 10,
			Width:  600,
			Height: 600,
		},
		SamplesPerBounce: 256,
		MaxDepth:         4,
	}
}

// addCyanocobaltate places a cobalt ion with a carbon then a nitrogen atom
// on both sides along each axis
func addCyanocobaltate(b *Builder, position core.Point3) {
	addAtom(b, cobalt, position)
	for _, axis := range []core.Vec3{core.UnitX, core.UnitY, core.UnitZ} {
		carbonOffset := axis.Mul(cobaltCarbon)
		addAtom(b, carbon, position.Add(carbonOffset))
		addAtom(b, carbon, position.Sub(carbonOffset))
		nitrogenOffset := axis.Mul(cobaltNitrogen)
		addAtom(b, nitrogen, position.Add(nitrogenOffset))
		addAtom(b, nitrogen, position.Sub(nitrogenOffset))
	}
}

func addAtom(b *Builder, a atom, position core.Point3) {
	b.AddObject(geometry.NewSphere(a.radius), core.Translation(position.X(), position.Y(), position.Z()),
		material.NewDiffuse(a.color))
}
