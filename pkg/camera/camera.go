package camera

import (
	"errors"
	"fmt"
	"iter"

	"github.com/chewxy/math32"
	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrInvalidConfig is returned for camera parameters that cannot produce rays
var ErrInvalidConfig = errors.New("invalid camera configuration")

// Config contains the camera parameters. It is consumed once by New.
type Config struct {
	Eye    core.Point3 // Eye position in world space
	Target core.Point3 // Point the camera looks at
	Up     core.Vec3   // World up direction (zero means +Z)
	FOV    float32     // Horizontal field of view in radians
	Width  int         // Image width in pixels
	Height int         // Image height in pixels
}

// DefaultConfig returns a small camera looking at the origin from (10, 5, 8)
func DefaultConfig() Config {
	return Config{
		Eye:    core.NewVec3(10, 5, 8),
		Target: core.NewVec3(0, 0, 0),
		Up:     core.UnitZ,
		FOV:    math32.Pi / 3,
		Width:  100,
		Height: 100,
	}
}

// Camera generates one primary ray per pixel and owns the film those pixels live in
type Camera struct {
	transform core.Isometry
	fov       float32
	film      *Film

	// Derived world-space basis
	eye       core.Point3
	forward   core.Vec3
	right     core.Vec3
	up        core.Vec3
	increment float32 // world-space size of one pixel at unit distance
}

// New creates a camera from its configuration
func New(cfg Config) (*Camera, error) {
	if cfg.Width < 0 || cfg.Height < 0 {
		return nil, fmt.Errorf("%w: negative resolution %dx%d", ErrInvalidConfig, cfg.Width, cfg.Height)
	}
	if !(cfg.FOV > 0 && cfg.FOV < math32.Pi) {
		return nil, fmt.Errorf("%w: field of view %f outside (0, π)", ErrInvalidConfig, cfg.FOV)
	}

	up := cfg.Up
	if up.Len() == 0 {
		up = core.UnitZ
	}
	transform, ok := core.FaceTowards(cfg.Eye, cfg.Target, up)
	if !ok || !core.IsFinite(cfg.Eye) {
		return nil, fmt.Errorf("%w: cannot face from %v towards %v with up %v", ErrInvalidConfig, cfg.Eye, cfg.Target, up)
	}

	c := &Camera{
		transform: transform,
		fov:       cfg.FOV,
		film:      NewFilm(cfg.Width, cfg.Height),
		eye:       transform.TransformPoint(core.Point3{}),
		forward:   transform.TransformVector(core.UnitZ),
		right:     transform.TransformVector(core.UnitX.Mul(-1)),
		up:        transform.TransformVector(core.UnitY),
	}
	if cfg.Width > 0 {
		c.increment = 2 * math32.Tan(cfg.FOV/2) / float32(cfg.Width)
	}
	return c, nil
}

// Film returns the camera's pixel buffer
func (c *Camera) Film() *Film { return c.film }

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.film.Width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.film.Height }

// Transform returns the camera-to-world isometry
func (c *Camera) Transform() core.Isometry { return c.transform }

// FOV returns the horizontal field of view in radians
func (c *Camera) FOV() float32 { return c.fov }

// Eye returns the shared origin of every primary ray
func (c *Camera) Eye() core.Point3 { return c.eye }

// Forward returns the world-space viewing direction
func (c *Camera) Forward() core.Vec3 { return c.forward }

// Right returns the world-space direction of increasing image column
func (c *Camera) Right() core.Vec3 { return c.right }

// Up returns the world-space direction of decreasing image row
func (c *Camera) Up() core.Vec3 { return c.up }

// RayAt returns the primary ray through pixel (x, y), row 0 at the top.
// The offset from the optical axis is (x - width/2) pixels to the right
// and (height/2 - y) pixels up.
func (c *Camera) RayAt(x, y int) core.Ray {
	dx := float32(x) - float32(c.film.Width)/2
	dy := float32(c.film.Height)/2 - float32(y)

	direction := c.forward.
		Add(c.right.Mul(dx * c.increment)).
		Add(c.up.Mul(dy * c.increment))

	return core.NewRay(c.eye, direction.Normalize())
}

// PixelRay is a primary ray together with the pixel it belongs to
type PixelRay struct {
	Index int // Row-major pixel index
	X, Y  int
	Ray   core.Ray
}

// Rays yields every pixel's ray with a pointer to that pixel's cell, lazily and
// in row-major order. Cells are distinct, so entries may be handed to
// different goroutines.
func (c *Camera) Rays() iter.Seq2[PixelRay, *core.Color] {
	return c.pixelRange(0, len(c.film.Pixels))
}

// Chunks partitions the film into contiguous, non-overlapping pixel ranges of
// at most size pixels. Each chunk may be rendered by a separate task with no
// synchronization between them.
func (c *Camera) Chunks(size int) []Chunk {
	total := len(c.film.Pixels)
	if total == 0 {
		return nil
	}
	if size <= 0 {
		size = total
	}

	chunks := make([]Chunk, 0, (total+size-1)/size)
	for start := 0; start < total; start += size {
		end := min(start+size, total)
		chunks = append(chunks, Chunk{
			Index:  len(chunks),
			Start:  start,
			End:    end,
			camera: c,
		})
	}
	return chunks
}

func (c *Camera) pixelRange(start, end int) iter.Seq2[PixelRay, *core.Color] {
	return func(yield func(PixelRay, *core.Color) bool) {
		width := c.film.Width
		for i := start; i < end; i++ {
			x, y := i%width, i/width
			pr := PixelRay{Index: i, X: x, Y: y, Ray: c.RayAt(x, y)}
			if !yield(pr, &c.film.Pixels[i]) {
				return
			}
		}
	}
}

// Chunk is a contiguous range [Start, End) of row-major pixel indices
type Chunk struct {
	Index      int
	Start, End int
	camera     *Camera
}

// Len returns the number of pixels in the chunk
func (ch Chunk) Len() int {
	return ch.End - ch.Start
}

// Rays yields the chunk's pixels like Camera.Rays
func (ch Chunk) Rays() iter.Seq2[PixelRay, *core.Color] {
	return ch.camera.pixelRange(ch.Start, ch.End)
}
