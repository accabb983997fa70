package core

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float32
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float32 in [0, 1)
func (r *RandomSampler) Get1D() float32 {
	return r.random.Float32()
}

// Get2D returns two random float32 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return Vec2{r.random.Float32(), r.random.Float32()}
}

// StreamSampler is a sampler over a PCG stream that can be reseeded in place.
// Renderers reseed it once per pixel so a pixel's samples depend only on
// (seed, pixel index) and never on scheduling.
type StreamSampler struct {
	source *rand.PCG
	RandomSampler
}

// NewStreamSampler creates a sampler positioned at stream (seed, stream)
func NewStreamSampler(seed, stream uint64) *StreamSampler {
	source := rand.NewPCG(seed, stream)
	return &StreamSampler{
		source:        source,
		RandomSampler: RandomSampler{random: rand.New(source)},
	}
}

// Reseed restarts the sampler at stream (seed, stream)
func (s *StreamSampler) Reseed(seed, stream uint64) {
	s.source.Seed(seed, stream)
}

// SampleUniformHemisphere maps two uniform numbers to a direction on the unit
// hemisphere around local +Z. The azimuth is 2π·u.X and the polar angle is
// acos(u.Y), so the returned z component is u.Y (never negative).
// This is uniform in z rather than cosine-weighted.
func SampleUniformHemisphere(u Vec2) Vec3 {
	azimuth := 2 * math32.Pi * u.X()
	polar := math32.Acos(u.Y())
	sinPolar := math32.Sin(polar)
	return NewVec3(
		math32.Cos(azimuth)*sinPolar,
		math32.Sin(azimuth)*sinPolar,
		math32.Cos(polar),
	)
}

// HemisphereFrame returns a rotation carrying local +Z onto normal.
// Directions sampled around +Z are moved into world space with its Rotate method.
//
// The rotation is a half turn about the bisector of +Z and normal. The
// bisector's z component 1+n.z is rewritten as (x²+y²)/(1-n.z) on the lower
// hemisphere so normals arbitrarily close to -Z keep their tilt. Exactly -Z
// turns about +X.
func HemisphereFrame(normal Vec3) mgl32.Quat {
	n, ok := SafeNormalize(normal)
	if !ok {
		return mgl32.QuatIdent()
	}

	x, y, z := n[0], n[1], n[2]
	lift := 1 + z
	if z < 0 {
		lift = (x*x + y*y) / (1 - z)
	}

	axis, ok := SafeNormalize(NewVec3(x, y, lift))
	if !ok {
		axis = UnitX
	}
	return mgl32.Quat{W: 0, V: axis}
}
