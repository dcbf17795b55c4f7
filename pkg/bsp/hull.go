package bsp

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownHull is returned when a hull name does not match any HullType.
var ErrUnknownHull = errors.New("unknown hull name")

// HullType selects which collision tree a query runs against.
type HullType int32

// Hull constants. Point walks the precise tree; the other three walk clip
// trees pre-expanded for a standing player, a large monster, and a
// crouching player.
const (
	HullPoint   HullType = 0
	HullStand   HullType = 1
	HullMonster HullType = 2
	HullDuck    HullType = 3
)

// String returns a human-readable hull name.
func (h HullType) String() string {
	switch h {
	case HullPoint:
		return "Point"
	case HullStand:
		return "Stand"
	case HullMonster:
		return "Monster"
	case HullDuck:
		return "Duck"
	default:
		return fmt.Sprintf("Unknown(%d)", int32(h))
	}
}

// ParseHullType maps a hull name to its HullType. Names match
// case-insensitively: point, stand, monster, duck.
func ParseHullType(name string) (HullType, error) {
	switch strings.ToLower(name) {
	case "point":
		return HullPoint, nil
	case "stand":
		return HullStand, nil
	case "monster":
		return HullMonster, nil
	case "duck":
		return HullDuck, nil
	default:
		return HullPoint, fmt.Errorf("%w: %q", ErrUnknownHull, name)
	}
}

// tree is the view the shared descent routines take of one hull's
// structure. The point hull resolves terminals through the leaf array;
// clip hulls decode content straight out of the negative index.
type tree interface {
	len() int
	node(n int32) (plane int32, children [2]int16)
	contents(n int32) Content
}

// hullTree returns the tree view for a hull type.
func (l *Level) hullTree(h HullType) tree {
	if h == HullPoint {
		return pointTree{l}
	}
	return clipTree{l}
}

type pointTree struct {
	l *Level
}

func (t pointTree) len() int {
	return len(t.l.Nodes)
}

func (t pointTree) node(n int32) (int32, [2]int16) {
	nd := t.l.Nodes[n]
	return int32(nd.Plane), nd.Children
}

func (t pointTree) contents(n int32) Content {
	return t.l.Leafs[^n].Contents
}

type clipTree struct {
	l *Level
}

func (t clipTree) len() int {
	return len(t.l.ClipNodes)
}

func (t clipTree) node(n int32) (int32, [2]int16) {
	nd := t.l.ClipNodes[n]
	return nd.Plane, nd.Children
}

func (t clipTree) contents(n int32) Content {
	c := Content(n)
	if !c.Known() {
		panic(fmt.Sprintf("bsp: clip node content code %d is not a known content", n))
	}
	return c
}
