package material

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrUnimplementedBRDF is returned when a material selects a scattering model
// that has no implementation
var ErrUnimplementedBRDF = errors.New("BRDF is not implemented")

// BRDF selects the scattering model of a diffuse material
type BRDF int

const (
	// BRDFUniform reflects with unit weight in every direction of the hemisphere
	BRDFUniform BRDF = iota
	BRDFLambertian
	BRDFMirror
	BRDFGlossy
)

func (b BRDF) String() string {
	switch b {
	case BRDFUniform:
		return "uniform"
	case BRDFLambertian:
		return "lambertian"
	case BRDFMirror:
		return "mirror"
	case BRDFGlossy:
		return "glossy"
	default:
		return fmt.Sprintf("BRDF(%d)", int(b))
	}
}

// Validate returns an error wrapping ErrUnimplementedBRDF for every model
// except the uniform one
func (b BRDF) Validate() error {
	if b == BRDFUniform {
		return nil
	}
	return fmt.Errorf("%s %w", b, ErrUnimplementedBRDF)
}

// Weight returns the reflectance factor for light arriving along incident and
// leaving along outgoing. The cosine term is applied by the caller.
// Selecting a model without an implementation is a programming error and panics.
func (b BRDF) Weight(incident, outgoing, normal core.Vec3) float32 {
	switch b {
	case BRDFUniform:
		return 1
	case BRDFLambertian, BRDFMirror, BRDFGlossy:
		panic(fmt.Sprintf("material: %s BRDF is not implemented", b))
	default:
		panic(fmt.Sprintf("material: unknown %s", b))
	}
}
