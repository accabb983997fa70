package scene

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Scene is an ordered, immutable collection of objects plus the color seen
// when a ray escapes. It is safe for concurrent reads.
type Scene struct {
	objects    []Object
	background core.Color
}

// Len returns the number of objects
func (s *Scene) Len() int { return len(s.objects) }

// Object returns the object at index i in insertion order
func (s *Scene) Object(i int) Object { return s.objects[i] }

// Objects returns a copy of the objects in insertion order
func (s *Scene) Objects() []Object {
	return append([]Object(nil), s.objects...)
}

// Background returns the radiance of rays that hit nothing
func (s *Scene) Background() core.Color { return s.background }

// ClosestIntersection finds the nearest hit along the ray by scanning every
// object in insertion order. Hits closer than geometry.HitEpsilon are ignored
// so rays leaving a surface don't hit it again. On an exact tie the object
// inserted first wins.
func (s *Scene) ClosestIntersection(ray core.Ray) (int, geometry.HitRecord, bool) {
	closestIndex := -1
	var closest geometry.HitRecord
	closestSoFar := math32.Inf(1)

	for i := range s.objects {
		hit, ok := s.objects[i].Hit(ray, geometry.HitEpsilon, closestSoFar)
		if !ok || !(hit.T < closestSoFar) {
			continue
		}
		closestIndex = i
		closest = hit
		closestSoFar = hit.T
	}

	if closestIndex < 0 {
		return -1, geometry.HitRecord{}, false
	}
	return closestIndex, closest, true
}

// Builder accumulates objects for a scene. Objects are only ever appended.
type Builder struct {
	background core.Color
	objects    []Object
}

// NewBuilder starts an empty scene with the given background
func NewBuilder(background core.Color) *Builder {
	return &Builder{background: background}
}

// Add appends objects in order
func (b *Builder) Add(objects ...Object) *Builder {
	b.objects = append(b.objects, objects...)
	return b
}

// AddObject appends a single object built from its parts
func (b *Builder) AddObject(shape geometry.Shape, transform core.Isometry, mat material.Material) *Builder {
	return b.Add(NewObject(shape, transform, mat))
}

// Len returns the number of objects added so far
func (b *Builder) Len() int { return len(b.objects) }

// Build validates every object and returns the finished scene.
// The builder may keep being used; the scene does not share its storage.
func (b *Builder) Build() (*Scene, error) {
	if !b.background.IsFinite() || !b.background.IsNonNegative() {
		return nil, fmt.Errorf("invalid background color %v", b.background)
	}
	for i, obj := range b.objects {
		if err := obj.Validate(); err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
	}
	return &Scene{
		objects:    append([]Object(nil), b.objects...),
		background: b.background,
	}, nil
}

// MustBuild is like Build but panics on error. Used by the built-in scenes.
func (b *Builder) MustBuild() *Scene {
	s, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("scene: %v", err))
	}
	return s
}
