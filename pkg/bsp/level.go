// Package bsp implements collision queries over compiled GoldSrc-style BSP
// trees: point classification and swept line traces against the precise
// point hull and the three pre-expanded clipping hulls.
package bsp

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Level validation errors.
var (
	ErrNoModels           = errors.New("level has no models")
	ErrPlaneOutOfRange    = errors.New("plane index out of range")
	ErrChildOutOfRange    = errors.New("child node index out of range")
	ErrLeafOutOfRange     = errors.New("leaf index out of range")
	ErrUnknownContents    = errors.New("unknown content code")
	ErrHeadNodeOutOfRange = errors.New("model head node out of range")
)

// Node is a branch of the precise tree. A non-negative child indexes
// another node; a negative child c names leaf ^c.
type Node struct {
	Plane    uint32
	Children [2]int16
}

// Leaf is a terminal region of the precise tree.
type Leaf struct {
	Contents Content
}

// ClipNode is a branch of a clipping-hull tree. A non-negative child
// indexes another clip node; a negative child is a Content code directly,
// with no leaf array behind it.
type ClipNode struct {
	Plane    int32
	Children [2]int16
}

// Model is one rigid piece of the level. HeadNodes holds the tree root per
// hull: index 0 into Nodes, indices 1 through 3 into ClipNodes. Model 0 is
// the whole-level geometry.
type Model struct {
	Mins      mgl32.Vec3
	Maxs      mgl32.Vec3
	Origin    mgl32.Vec3
	HeadNodes [4]int32
}

// Level is a compiled map ready for collision queries. A loader fills it
// once; queries never mutate it, so a single Level can serve any number of
// goroutines concurrently.
type Level struct {
	Planes    []Plane
	Nodes     []Node
	Leafs     []Leaf
	ClipNodes []ClipNode
	Models    []Model
}

// Validate checks that every cross-array reference in the level resolves:
// plane indices, child links, leaf links, clip content codes, and model
// head nodes. Queries assume a valid level and panic on corrupt trees, so
// callers building a Level from untrusted input should validate first.
func (l *Level) Validate() error {
	if len(l.Models) == 0 {
		return ErrNoModels
	}

	for i, n := range l.Nodes {
		if int(n.Plane) >= len(l.Planes) {
			return fmt.Errorf("node %d: %w: plane %d", i, ErrPlaneOutOfRange, n.Plane)
		}
		for _, c := range n.Children {
			if c >= 0 {
				if int(c) >= len(l.Nodes) {
					return fmt.Errorf("node %d: %w: node %d", i, ErrChildOutOfRange, c)
				}
			} else if int(^c) >= len(l.Leafs) {
				return fmt.Errorf("node %d: %w: leaf %d", i, ErrLeafOutOfRange, ^c)
			}
		}
	}

	for i, n := range l.ClipNodes {
		if n.Plane < 0 || int(n.Plane) >= len(l.Planes) {
			return fmt.Errorf("clip node %d: %w: plane %d", i, ErrPlaneOutOfRange, n.Plane)
		}
		for _, c := range n.Children {
			if c >= 0 {
				if int(c) >= len(l.ClipNodes) {
					return fmt.Errorf("clip node %d: %w: clip node %d", i, ErrChildOutOfRange, c)
				}
			} else if !Content(c).Known() {
				return fmt.Errorf("clip node %d: %w: %d", i, ErrUnknownContents, c)
			}
		}
	}

	for i, m := range l.Models {
		if err := l.validateHead(pointTree{l}, m.HeadNodes[0]); err != nil {
			return fmt.Errorf("model %d hull 0: %w", i, err)
		}
		for h := 1; h < len(m.HeadNodes); h++ {
			if err := l.validateHead(clipTree{l}, m.HeadNodes[h]); err != nil {
				return fmt.Errorf("model %d hull %d: %w", i, h, err)
			}
		}
	}

	return nil
}

// validateHead checks a single model head node against its tree. Negative
// heads are allowed when they resolve to a content the same way a negative
// child would; they mean the whole hull is one region.
func (l *Level) validateHead(t tree, head int32) error {
	if head >= 0 {
		if int(head) >= t.len() {
			return fmt.Errorf("%w: %d", ErrHeadNodeOutOfRange, head)
		}
		return nil
	}
	switch t.(type) {
	case pointTree:
		if int(^head) >= len(l.Leafs) {
			return fmt.Errorf("%w: leaf %d", ErrLeafOutOfRange, ^head)
		}
	default:
		if !Content(head).Known() {
			return fmt.Errorf("%w: %d", ErrUnknownContents, head)
		}
	}
	return nil
}

// CountByContents returns the number of precise-tree leafs per content code.
func (l *Level) CountByContents() map[Content]int {
	counts := make(map[Content]int)
	for _, leaf := range l.Leafs {
		counts[leaf.Contents]++
	}
	return counts
}
