package bsp

import "github.com/go-gl/mathgl/mgl32"

// distEpsilon nudges plane crossings toward the side the segment came from,
// so the split point never lands exactly on the plane.
const distEpsilon = 1.0 / 32

// TraceResult reports how far a swept point got before hitting solid.
type TraceResult struct {
	// AllSolid is true when the trace never saw anything but solid; no
	// impact geometry is recorded in that case.
	AllSolid bool
	// StartSolid is true when the segment started inside solid.
	StartSolid bool
	// InOpen and InWater record the kinds of non-solid space the trace
	// passed through.
	InOpen  bool
	InWater bool
	// Fraction is how much of the segment was covered before the impact,
	// 1 when nothing was hit.
	Fraction float32
	// EndPos is where the sweep stopped, p2 on a clean miss.
	EndPos mgl32.Vec3
	// Plane is the surface that stopped the sweep, facing the start of
	// the segment.
	Plane Plane
}

// PointContents classifies the point p against the chosen hull, starting
// the descent at node num. Callers normally start at one of the head nodes
// of a model.
func (l *Level) PointContents(hull HullType, num int32, p mgl32.Vec3) Content {
	return l.hullPointContents(l.hullTree(hull), num, p)
}

// TraceLine sweeps a point from p1 to p2 through the chosen hull of the
// level's first model. The result is always usable: Fraction 1 with EndPos
// p2 means the segment never touched solid. The level must hold at least
// one model; corrupt trees panic.
func (l *Level) TraceLine(hull HullType, p1, p2 mgl32.Vec3) TraceResult {
	tr := TraceResult{
		AllSolid: true,
		Fraction: 1,
		EndPos:   p2,
	}

	head := l.Models[0].HeadNodes[hull]

	// Solidity rechecks during impact correction rescan the whole tree:
	// from node 0 for the point hull, from the selected head for clip
	// hulls.
	top := head
	if hull == HullPoint {
		top = 0
	}

	l.recursiveHullCheck(l.hullTree(hull), top, head, 0, 1, p1, p2, &tr)

	return tr
}

// hullPointContents walks one tree from node num down to the terminal
// holding p and returns its content.
func (l *Level) hullPointContents(t tree, num int32, p mgl32.Vec3) Content {
	for num >= 0 {
		plane, children := t.node(num)
		if l.Planes[plane].Diff(p) < 0 {
			num = int32(children[1])
		} else {
			num = int32(children[0])
		}
	}
	return t.contents(num)
}

// recursiveHullCheck is the segment descent shared by the point and clip
// hulls. p1 and p2 bound the sub-segment under examination; p1f and p2f are
// their fractions along the original query segment. It returns false once
// an impact has been recorded or the trace died inside solid, so callers
// unwind without touching the result further.
func (l *Level) recursiveHullCheck(t tree, top, num int32, p1f, p2f float32, p1, p2 mgl32.Vec3, tr *TraceResult) bool {
	// Terminal regions carry content in the negative index.
	if num < 0 {
		if c := t.contents(num); c != ContentsSolid {
			tr.AllSolid = false
			if c == ContentsEmpty {
				tr.InOpen = true
			} else if c != ContentsTranslucent {
				tr.InWater = true
			}
		} else {
			tr.StartSolid = true
		}
		return true
	}

	if int(num) >= t.len() {
		return false
	}

	plane, children := t.node(num)
	pl := l.Planes[plane]

	d1 := pl.Diff(p1)
	d2 := pl.Diff(p2)

	// Segment entirely on one side: descend without splitting.
	if d1 >= 0 && d2 >= 0 {
		return l.recursiveHullCheck(t, top, int32(children[0]), p1f, p2f, p1, p2, tr)
	}
	if d1 < 0 && d2 < 0 {
		return l.recursiveHullCheck(t, top, int32(children[1]), p1f, p2f, p1, p2, tr)
	}

	// The segment crosses the plane. side is the child holding p1; the
	// epsilon pulls the split point back toward that side.
	var side int
	var frac float32
	if d1 < 0 {
		side = 1
		frac = (d1 + distEpsilon) / (d1 - d2)
	} else {
		side = 0
		frac = (d1 - distEpsilon) / (d1 - d2)
	}
	frac = mgl32.Clamp(frac, 0, 1)

	midf := lerp(p1f, p2f, frac)
	mid := lerpVec3(p1, p2, frac)

	// Near half first.
	if !l.recursiveHullCheck(t, top, int32(children[side]), p1f, midf, p1, mid, tr) {
		return false
	}

	// If the crossing point sits in open space on the far side, the sweep
	// continues into the far half.
	if l.hullPointContents(t, int32(children[side^1]), mid) != ContentsSolid {
		return l.recursiveHullCheck(t, top, int32(children[side^1]), midf, p2f, mid, p2, tr)
	}

	// The far side is solid, so the impact lies on this plane.
	if tr.AllSolid {
		return false // never left solid, nothing to record
	}

	if side == 0 {
		tr.Plane = pl
	} else {
		tr.Plane = pl.Flip()
	}

	// The split point may itself sit a hair inside solid. Back the
	// fraction off along this sub-segment until the whole tree, checked
	// from the top, agrees the point is out.
	for l.hullPointContents(t, top, mid) == ContentsSolid {
		frac -= 0.1
		if frac < 0 {
			tr.Fraction = midf
			tr.EndPos = mid
			return false
		}
		midf = lerp(p1f, p2f, frac)
		mid = lerpVec3(p1, p2, frac)
	}

	tr.Fraction = midf
	tr.EndPos = mid

	return false
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

func lerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
