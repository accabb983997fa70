package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along a camera ray.
	// Implementations are safe for concurrent use as long as each goroutine
	// passes its own sampler.
	RayColor(ray core.Ray, sampler core.Sampler) core.Color
}
