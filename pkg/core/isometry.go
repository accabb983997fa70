package core

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Isometry is a rigid transform: a rotation followed by a translation, no scaling.
// The rotation quaternion is kept normalized so its matrix is orthonormal.
type Isometry struct {
	Rotation    mgl32.Quat
	Translation Vec3
}

// Identity returns the isometry that leaves every point in place
func Identity() Isometry {
	return Isometry{Rotation: mgl32.QuatIdent()}
}

// Translation returns a pure translation
func Translation(x, y, z float32) Isometry {
	return Isometry{Rotation: mgl32.QuatIdent(), Translation: NewVec3(x, y, z)}
}

// NewIsometry builds an isometry from a rotation and a translation.
// The rotation is normalized; a zero quaternion is treated as the identity.
func NewIsometry(rotation mgl32.Quat, translation Vec3) Isometry {
	if rotation.Len() == 0 {
		rotation = mgl32.QuatIdent()
	}
	return Isometry{Rotation: rotation.Normalize(), Translation: translation}
}

// Rotation returns a rotation of angle radians about axis, without translation
func Rotation(angle float32, axis Vec3) Isometry {
	return NewIsometry(mgl32.QuatRotate(angle, axis.Normalize()), Vec3{})
}

// FaceTowards returns the frame of an observer at eye looking at target.
// Local +Z maps onto target-eye, local X onto up×Z and local Y onto Z×X;
// the origin maps onto eye. ok is false when the frame is degenerate
// (eye equals target, or up is parallel to the view direction).
func FaceTowards(eye, target Point3, up Vec3) (Isometry, bool) {
	zAxis, ok := SafeNormalize(target.Sub(eye))
	if !ok {
		return Identity(), false
	}
	xAxis, ok := SafeNormalize(up.Cross(zAxis))
	if !ok {
		return Identity(), false
	}
	yAxis := zAxis.Cross(xAxis)

	basis := mgl32.Mat3FromCols(xAxis, yAxis, zAxis)
	rotation := mgl32.Mat4ToQuat(basis.Mat4()).Normalize()
	return Isometry{Rotation: rotation, Translation: eye}, true
}

// TransformPoint maps a local point into world space
func (iso Isometry) TransformPoint(p Point3) Point3 {
	return iso.Rotation.Rotate(p).Add(iso.Translation)
}

// TransformVector rotates a local direction into world space
func (iso Isometry) TransformVector(v Vec3) Vec3 {
	return iso.Rotation.Rotate(v)
}

// InverseTransformPoint maps a world point into local space
func (iso Isometry) InverseTransformPoint(p Point3) Point3 {
	return iso.Rotation.Conjugate().Rotate(p.Sub(iso.Translation))
}

// InverseTransformVector rotates a world direction into local space
func (iso Isometry) InverseTransformVector(v Vec3) Vec3 {
	return iso.Rotation.Conjugate().Rotate(v)
}

// InverseTransformRay expresses a world-space ray in local space. Distances along
// the ray are preserved because the transform has no scale.
func (iso Isometry) InverseTransformRay(r Ray) Ray {
	return Ray{
		Origin:    iso.InverseTransformPoint(r.Origin),
		Direction: iso.InverseTransformVector(r.Direction),
	}
}

// Inverse returns the isometry undoing iso
func (iso Isometry) Inverse() Isometry {
	inv := iso.Rotation.Conjugate()
	return Isometry{Rotation: inv, Translation: inv.Rotate(iso.Translation).Mul(-1)}
}

// Mul composes two isometries: the result applies other first, then iso
func (iso Isometry) Mul(other Isometry) Isometry {
	return Isometry{
		Rotation:    iso.Rotation.Mul(other.Rotation).Normalize(),
		Translation: iso.TransformPoint(other.Translation),
	}
}

// IsFinite reports whether the transform contains only finite values and a usable rotation
func (iso Isometry) IsFinite() bool {
	if !IsFinite(iso.Translation) || !IsFinite(iso.Rotation.V) {
		return false
	}
	w := iso.Rotation.W
	if math32.IsNaN(w) || math32.IsInf(w, 0) {
		return false
	}
	return iso.Rotation.Len() > 0
}
