package material

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Kind identifies a material variant
type Kind int

const (
	KindDiffuse Kind = iota
	KindEmissive
)

func (k Kind) String() string {
	switch k {
	case KindDiffuse:
		return "diffuse"
	case KindEmissive:
		return "emissive"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Material describes how a surface responds to light. Emissive surfaces end a
// path and return their color; diffuse surfaces scatter light according to
// their BRDF and tint it with their color.
type Material struct {
	kind  Kind
	color core.Color
	brdf  BRDF
}

// NewEmissive creates a light-emitting material. Channels may exceed 1.
func NewEmissive(emission core.Color) Material {
	return Material{kind: KindEmissive, color: emission}
}

// NewDiffuse creates a scattering material with the uniform BRDF
func NewDiffuse(albedo core.Color) Material {
	return NewDiffuseBRDF(albedo, BRDFUniform)
}

// NewDiffuseBRDF creates a scattering material with an explicit scattering model
func NewDiffuseBRDF(albedo core.Color, brdf BRDF) Material {
	return Material{kind: KindDiffuse, color: albedo, brdf: brdf}
}

// Kind returns the material variant
func (m Material) Kind() Kind {
	return m.kind
}

// BRDF returns the scattering model. It is meaningless for emissive materials.
func (m Material) BRDF() BRDF {
	return m.brdf
}

// Emission returns the emitted color and true for emissive materials
func (m Material) Emission() (core.Color, bool) {
	if m.kind == KindEmissive {
		return m.color, true
	}
	return core.Black, false
}

// Albedo returns the color that tints scattered light
func (m Material) Albedo() core.Color {
	if m.kind == KindEmissive {
		return core.Black
	}
	return m.color
}

// ScatterWeight returns the reflectance component of the scattering weight.
// Emitters do not scatter and weigh 0.
func (m Material) ScatterWeight(incident, outgoing, normal core.Vec3) float32 {
	switch m.kind {
	case KindEmissive:
		return 0
	case KindDiffuse:
		return m.brdf.Weight(incident, outgoing, normal)
	default:
		panic(fmt.Sprintf("material: unknown %s", m.kind))
	}
}

// Validate checks that the material can be rendered: a known kind, a finite
// non-negative color and, for diffuse materials, an implemented BRDF
func (m Material) Validate() error {
	if !m.color.IsFinite() || !m.color.IsNonNegative() {
		return fmt.Errorf("%s material has invalid color %v", m.kind, m.color)
	}
	switch m.kind {
	case KindEmissive:
		return nil
	case KindDiffuse:
		return m.brdf.Validate()
	default:
		return fmt.Errorf("unknown material %s", m.kind)
	}
}
