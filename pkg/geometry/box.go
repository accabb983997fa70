package geometry

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-pathtracer/pkg/core"
)

// box is an axis-aligned cuboid centered at the local origin
type box struct {
	halfExtents core.Vec3
}

func (b box) interval(r core.Ray) (float32, float32, bool) {
	return slabInterval(r, b.halfExtents.Mul(-1), b.halfExtents)
}

// outwardNormal picks the face whose plane the point is relatively closest to
func (b box) outwardNormal(p core.Point3) core.Vec3 {
	axis := 0
	best := float32(-1)
	for i := 0; i < 3; i++ {
		if d := math32.Abs(p[i]) / b.halfExtents[i]; d > best {
			best = d
			axis = i
		}
	}
	var n core.Vec3
	n[axis] = math32.Copysign(1, p[axis])
	return n
}

// slabInterval intersects the line with the axis-aligned box [lo, hi]
func slabInterval(r core.Ray, lo, hi core.Point3) (float32, float32, bool) {
	tNear := math32.Inf(-1)
	tFar := math32.Inf(1)

	for i := 0; i < 3; i++ {
		o, d := r.Origin[i], r.Direction[i]
		if d == 0 {
			// Parallel to this slab: inside it everywhere or nowhere
			if o < lo[i] || o > hi[i] {
				return 0, 0, false
			}
			continue
		}
		ta := (lo[i] - o) / d
		tb := (hi[i] - o) / d
		if ta > tb {
			ta, tb = tb, ta
		}
		tNear = max(tNear, ta)
		tFar = min(tFar, tb)
		if tNear > tFar {
			return 0, 0, false
		}
	}

	return tNear, tFar, true
}
