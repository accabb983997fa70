package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// PathTracingIntegrator implements recursive unidirectional path tracing
// with uniform hemisphere sampling
type PathTracingIntegrator struct {
	scene            *scene.Scene
	samplesPerBounce int
	maxDepth         int
}

// NewPathTracingIntegrator creates a new path tracing integrator.
// samplesPerBounce below 1 is treated as 1; maxDepth below 0 as 0.
func NewPathTracingIntegrator(s *scene.Scene, samplesPerBounce, maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		scene:            s,
		samplesPerBounce: max(samplesPerBounce, 1),
		maxDepth:         max(maxDepth, 0),
	}
}

// SamplesPerBounce returns the number of scattered rays at the first surface
func (pt *PathTracingIntegrator) SamplesPerBounce() int { return pt.samplesPerBounce }

// MaxDepth returns the maximum number of surface interactions per path
func (pt *PathTracingIntegrator) MaxDepth() int { return pt.maxDepth }

// RayColor computes the color for a single camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, sampler core.Sampler) core.Color {
	return pt.scene.EstimateRadiance(ray, pt.samplesPerBounce, pt.maxDepth, sampler)
}
