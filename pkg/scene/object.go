package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Object places a shape in the world and gives it a material
type Object struct {
	Shape     geometry.Shape
	Transform core.Isometry // shape-local to world
	Material  material.Material
}

// NewObject creates a new object
func NewObject(shape geometry.Shape, transform core.Isometry, mat material.Material) Object {
	return Object{Shape: shape, Transform: transform, Material: mat}
}

// Hit tests the ray against the object's shape in world space
func (o Object) Hit(ray core.Ray, tMin, tMax float32) (geometry.HitRecord, bool) {
	return o.Shape.Hit(o.Transform, ray, tMin, tMax)
}

// Validate reports whether the object can be rendered
func (o Object) Validate() error {
	if !o.Shape.Valid() {
		return fmt.Errorf("invalid %s shape", o.Shape.Kind())
	}
	if !o.Transform.IsFinite() {
		return fmt.Errorf("non-finite transform for %s", o.Shape.Kind())
	}
	if err := o.Material.Validate(); err != nil {
		return fmt.Errorf("%s material: %w", o.Material.Kind(), err)
	}
	return nil
}
