package bsp

import "fmt"

// Content classifies a region of space. Compiled maps store these as small
// negative codes; clip trees embed them directly in negative child indices.
type Content int32

// Content codes.
const (
	ContentsEmpty       Content = -1 // open space
	ContentsSolid       Content = -2 // impassable
	ContentsWater       Content = -3
	ContentsSlime       Content = -4
	ContentsLava        Content = -5
	ContentsSky         Content = -6
	ContentsOrigin      Content = -7 // compiler marker, removed during csg
	ContentsClip        Content = -8 // blocks movement but not sight
	ContentsCurrent0    Content = -9 // water pushing along an axis
	ContentsCurrent90   Content = -10
	ContentsCurrent180  Content = -11
	ContentsCurrent270  Content = -12
	ContentsCurrentUp   Content = -13
	ContentsCurrentDown Content = -14
	ContentsTranslucent Content = -15
)

// String returns a human-readable content name.
func (c Content) String() string {
	switch c {
	case ContentsEmpty:
		return "Empty"
	case ContentsSolid:
		return "Solid"
	case ContentsWater:
		return "Water"
	case ContentsSlime:
		return "Slime"
	case ContentsLava:
		return "Lava"
	case ContentsSky:
		return "Sky"
	case ContentsOrigin:
		return "Origin"
	case ContentsClip:
		return "Clip"
	case ContentsCurrent0:
		return "Current0"
	case ContentsCurrent90:
		return "Current90"
	case ContentsCurrent180:
		return "Current180"
	case ContentsCurrent270:
		return "Current270"
	case ContentsCurrentUp:
		return "CurrentUp"
	case ContentsCurrentDown:
		return "CurrentDown"
	case ContentsTranslucent:
		return "Translucent"
	default:
		return fmt.Sprintf("Unknown(%d)", int32(c))
	}
}

// Known returns true if the code is one of the defined content values.
func (c Content) Known() bool {
	return c >= ContentsTranslucent && c <= ContentsEmpty
}

// IsSolid returns true if the content blocks traces.
func (c Content) IsSolid() bool {
	return c == ContentsSolid
}

// IsEmpty returns true if the content is open space.
func (c Content) IsEmpty() bool {
	return c == ContentsEmpty
}

// IsLiquid returns true if the content is a liquid volume: water, slime,
// lava, or water with a push current.
func (c Content) IsLiquid() bool {
	if c <= ContentsWater && c >= ContentsLava {
		return true
	}
	return c <= ContentsCurrent0 && c >= ContentsCurrentDown
}
