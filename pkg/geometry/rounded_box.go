package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// roundedBox is every point within radius of the inner box [-halfExtents, halfExtents]
type roundedBox struct {
	halfExtents core.Vec3
	radius      float32
}

// interval decomposes the solid into three face slabs, twelve edge cylinders
// and eight corner spheres. The solid is convex, so the hull of the part
// intervals is exactly its interval.
func (rb roundedBox) interval(r core.Ray) (float32, float32, bool) {
	h := rb.halfExtents
	var acc intervalUnion

	for axis := 0; axis < 3; axis++ {
		grown := h
		grown[axis] += rb.radius
		acc.add(slabInterval(r, grown.Mul(-1), grown))
	}

	corners := rb.corners()
	for _, c := range corners {
		acc.add(sphereInterval(r, c, rb.radius))
	}

	// Corners are indexed by sign bits (x=1, y=2, z=4); edges join corners
	// differing in exactly one bit.
	for i := range corners {
		for bit := 1; bit < 8; bit <<= 1 {
			if j := i | bit; j != i {
				acc.add(cylinderInterval(r, corners[i], corners[j], rb.radius))
			}
		}
	}

	return acc.result()
}

func (rb roundedBox) corners() [8]core.Point3 {
	var corners [8]core.Point3
	for i := range corners {
		for axis := 0; axis < 3; axis++ {
			if i&(1<<axis) != 0 {
				corners[i][axis] = rb.halfExtents[axis]
			} else {
				corners[i][axis] = -rb.halfExtents[axis]
			}
		}
	}
	return corners
}

// outwardNormal points from the nearest inner-box point to p
func (rb roundedBox) outwardNormal(p core.Point3) core.Vec3 {
	h := rb.halfExtents
	var clamped core.Point3
	for i := 0; i < 3; i++ {
		clamped[i] = max(-h[i], min(h[i], p[i]))
	}
	if n, ok := core.SafeNormalize(p.Sub(clamped)); ok {
		return n
	}
	// p landed inside the inner box through rounding; fall back to the
	// face normal of the outer box
	return box{halfExtents: h.Add(core.NewVec3(rb.radius, rb.radius, rb.radius))}.outwardNormal(p)
}
