package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// EstimateRadiance returns a Monte-Carlo estimate of the light arriving along the ray.
//
// maxDepth bounds the number of surface interactions: at zero the background
// is returned without tracing. Emissive surfaces return their emission and end
// the path. Diffuse surfaces take samplesPerBounce uniform hemisphere samples
// around the normal facing the ray; each sample recurses with a single sample
// and one less depth. The result is the albedo times the mean of
// weight·incoming, where weight is the BRDF value times the cosine to the normal.
func (s *Scene) EstimateRadiance(ray core.Ray, samplesPerBounce, maxDepth int, sampler core.Sampler) core.Color {
	if maxDepth <= 0 {
		return s.background
	}

	index, hit, ok := s.ClosestIntersection(ray)
	if !ok {
		return s.background
	}

	mat := s.objects[index].Material
	if emission, isLight := mat.Emission(); isLight {
		return emission
	}

	samplesPerBounce = max(samplesPerBounce, 1)
	frame := core.HemisphereFrame(hit.Normal)

	var sum core.Color
	for range samplesPerBounce {
		direction := frame.Rotate(core.SampleUniformHemisphere(sampler.Get2D()))

		weight := mat.ScatterWeight(ray.Direction, direction, hit.Normal) *
			max(0, hit.Normal.Dot(direction))
		if weight == 0 {
			continue
		}

		incoming := s.EstimateRadiance(core.NewRay(hit.Point, direction), 1, maxDepth-1, sampler)
		sum = sum.Add(incoming.Scale(weight))
	}

	return sum.Mul(mat.Albedo()).Scale(1 / float32(samplesPerBounce))
}
