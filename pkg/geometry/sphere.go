package geometry

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-pathtracer/pkg/core"
)

// sphere is a ball of the given radius centered at the local origin
type sphere struct {
	radius float32
}

func (s sphere) interval(r core.Ray) (float32, float32, bool) {
	return sphereInterval(r, core.Point3{}, s.radius)
}

func (s sphere) outwardNormal(p core.Point3) core.Vec3 {
	return p.Normalize()
}

// sphereInterval solves |o + t·d - center| = radius. The closest approach of the
// line to the center is computed first, which keeps float32 precision when the
// ray starts far away compared to the radius.
func sphereInterval(r core.Ray, center core.Point3, radius float32) (float32, float32, bool) {
	oc := r.Origin.Sub(center)
	a := r.Direction.Dot(r.Direction)
	if a == 0 {
		return 0, 0, false
	}

	tClosest := -oc.Dot(r.Direction) / a
	closest := oc.Add(r.Direction.Mul(tClosest))
	discriminant := radius*radius - closest.Dot(closest)
	if discriminant < 0 {
		return 0, 0, false
	}

	half := math32.Sqrt(discriminant / a)
	return tClosest - half, tClosest + half, true
}
