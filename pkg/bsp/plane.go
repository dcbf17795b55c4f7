package bsp

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// PlaneType tags a plane's orientation so axial planes can skip the full
// dot product during side tests.
type PlaneType int32

// Plane type constants. The first three mark planes perpendicular to an
// axis; the Any variants carry an arbitrary normal whose dominant axis is
// the named one.
const (
	PlaneX    PlaneType = 0
	PlaneY    PlaneType = 1
	PlaneZ    PlaneType = 2
	PlaneAnyX PlaneType = 3
	PlaneAnyY PlaneType = 4
	PlaneAnyZ PlaneType = 5
)

// String returns a human-readable plane type name.
func (t PlaneType) String() string {
	switch t {
	case PlaneX:
		return "X"
	case PlaneY:
		return "Y"
	case PlaneZ:
		return "Z"
	case PlaneAnyX:
		return "AnyX"
	case PlaneAnyY:
		return "AnyY"
	case PlaneAnyZ:
		return "AnyZ"
	default:
		return fmt.Sprintf("Unknown(%d)", int32(t))
	}
}

// Plane is a splitting plane in the form dot(Normal, p) == Dist. Both trees
// reference planes by index into the level's shared plane list.
type Plane struct {
	Normal mgl32.Vec3
	Dist   float32
	Type   PlaneType
}

// Diff returns the signed distance from p to the plane, positive on the
// front side. Axial planes read one coordinate instead of taking the full
// dot product.
func (pl Plane) Diff(p mgl32.Vec3) float32 {
	switch pl.Type {
	case PlaneX, PlaneY, PlaneZ:
		return p[pl.Type] - pl.Dist
	default:
		return pl.Normal.Dot(p) - pl.Dist
	}
}

// Flip returns the plane with its orientation reversed. Trace results
// report the impact plane facing the start of the segment, so hits from the
// back side are recorded flipped.
func (pl Plane) Flip() Plane {
	return Plane{
		Normal: pl.Normal.Mul(-1),
		Dist:   -pl.Dist,
		Type:   pl.Type,
	}
}
