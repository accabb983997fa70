package geometry

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-pathtracer/pkg/core"
)

// halfSpace is the solid {p : p·normal <= 0}
type halfSpace struct {
	normal core.Vec3
}

func (h halfSpace) interval(r core.Ray) (float32, float32, bool) {
	on := r.Origin.Dot(h.normal)
	dn := r.Direction.Dot(h.normal)

	if dn == 0 {
		// Parallel to the boundary plane
		if on > 0 {
			return 0, 0, false
		}
		return math32.Inf(-1), math32.Inf(1), true
	}

	t := -on / dn
	if dn < 0 {
		return t, math32.Inf(1), true
	}
	return math32.Inf(-1), t, true
}

func (h halfSpace) outwardNormal(core.Point3) core.Vec3 {
	return h.normal
}
