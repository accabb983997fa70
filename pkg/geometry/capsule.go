package geometry

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-pathtracer/pkg/core"
)

// parallelEpsilon is the squared perpendicular speed below which a ray counts
// as parallel to a cylinder axis
const parallelEpsilon = 1e-12

// capsule is every point within radius of the segment a-b
type capsule struct {
	a, b   core.Point3
	radius float32
}

func (c capsule) interval(r core.Ray) (float32, float32, bool) {
	return capsuleInterval(r, c.a, c.b, c.radius)
}

func (c capsule) outwardNormal(p core.Point3) core.Vec3 {
	return p.Sub(closestOnSegment(p, c.a, c.b)).Normalize()
}

// capsuleInterval is the hull of the two end spheres and the connecting cylinder.
// The capsule is convex, so the union of the part intervals is one interval.
func capsuleInterval(r core.Ray, a, b core.Point3, radius float32) (float32, float32, bool) {
	var acc intervalUnion
	acc.add(sphereInterval(r, a, radius))
	acc.add(sphereInterval(r, b, radius))
	acc.add(cylinderInterval(r, a, b, radius))
	return acc.result()
}

// cylinderInterval intersects the line with the finite cylinder of the given
// radius around segment a-b, flat-capped at both ends
func cylinderInterval(r core.Ray, a, b core.Point3, radius float32) (float32, float32, bool) {
	axis := b.Sub(a)
	length := axis.Len()
	if length == 0 {
		return 0, 0, false
	}
	u := axis.Mul(1 / length)

	oa := r.Origin.Sub(a)
	ou := oa.Dot(u)
	du := r.Direction.Dot(u)

	// Components perpendicular to the axis
	op := oa.Sub(u.Mul(ou))
	dp := r.Direction.Sub(u.Mul(du))

	tNear := math32.Inf(-1)
	tFar := math32.Inf(1)

	qa := dp.Dot(dp)
	qb := op.Dot(dp)
	qc := op.Dot(op) - radius*radius
	if qa < parallelEpsilon {
		if qc > 0 {
			return 0, 0, false
		}
	} else {
		discriminant := qb*qb - qa*qc
		if discriminant < 0 {
			return 0, 0, false
		}
		sq := math32.Sqrt(discriminant)
		tNear = (-qb - sq) / qa
		tFar = (-qb + sq) / qa
	}

	// Clip to the slab between the end caps
	if du == 0 {
		if ou < 0 || ou > length {
			return 0, 0, false
		}
	} else {
		ta := -ou / du
		tb := (length - ou) / du
		if ta > tb {
			ta, tb = tb, ta
		}
		tNear = max(tNear, ta)
		tFar = min(tFar, tb)
	}

	if tNear > tFar {
		return 0, 0, false
	}
	return tNear, tFar, true
}

// closestOnSegment returns the point of segment a-b nearest to p
func closestOnSegment(p, a, b core.Point3) core.Point3 {
	ab := b.Sub(a)
	lengthSq := ab.Dot(ab)
	if lengthSq == 0 {
		return a
	}
	t := p.Sub(a).Dot(ab) / lengthSq
	t = max(0, min(1, t))
	return a.Add(ab.Mul(t))
}

// intervalUnion accumulates the hull of several line intervals
type intervalUnion struct {
	t0, t1 float32
	ok     bool
}

func (u *intervalUnion) add(t0, t1 float32, ok bool) {
	if !ok {
		return
	}
	if !u.ok {
		u.t0, u.t1, u.ok = t0, t1, true
		return
	}
	u.t0 = min(u.t0, t0)
	u.t1 = max(u.t1, t1)
}

func (u *intervalUnion) result() (float32, float32, bool) {
	return u.t0, u.t1, u.ok
}
