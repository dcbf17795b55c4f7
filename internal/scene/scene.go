// Package scene loads hand-written collision fixtures from YAML: the level
// arrays a map loader would normally supply, plus named trace queries to run
// against them. Scenes let traces be replayed from the command line and in
// tests without touching the binary map format.
package scene

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/khanghugo/bsptrace/pkg/bsp"
)

// Query resolution errors.
var (
	ErrNoTarget   = errors.New("trace has neither to nor dir")
	ErrTwoTargets = errors.New("trace has both to and dir")
	ErrZeroDir    = errors.New("trace dir has zero length")
)

// Scene mirrors the collision arrays of a bsp.Level one to one, plus the
// trace queries to run against it.
type Scene struct {
	Name      string        `yaml:"name"`
	Planes    []PlaneDef    `yaml:"planes"`
	Nodes     []NodeDef     `yaml:"nodes"`
	Leafs     []LeafDef     `yaml:"leafs"`
	ClipNodes []ClipNodeDef `yaml:"clipnodes"`
	Models    []ModelDef    `yaml:"models"`
	Traces    []TraceDef    `yaml:"traces"`
}

// PlaneDef is a splitting plane entry.
type PlaneDef struct {
	Normal [3]float32 `yaml:"normal"`
	Dist   float32    `yaml:"dist"`
	Type   int32      `yaml:"type"`
}

// NodeDef is a precise-tree node entry.
type NodeDef struct {
	Plane    uint32   `yaml:"plane"`
	Children [2]int16 `yaml:"children"`
}

// LeafDef is a precise-tree leaf entry holding a raw content code.
type LeafDef struct {
	Contents int32 `yaml:"contents"`
}

// ClipNodeDef is a clip-tree node entry.
type ClipNodeDef struct {
	Plane    int32    `yaml:"plane"`
	Children [2]int16 `yaml:"children"`
}

// ModelDef is a model entry with its per-hull head nodes.
type ModelDef struct {
	Mins      [3]float32 `yaml:"mins"`
	Maxs      [3]float32 `yaml:"maxs"`
	Origin    [3]float32 `yaml:"origin"`
	HeadNodes [4]int32   `yaml:"head_nodes"`
}

// TraceDef is a single trace query. The hull is named, not numbered.
// Exactly one of To and Dir must be set: To sweeps to a fixed point, Dir
// sweeps along a direction for the caller's maximum distance.
type TraceDef struct {
	Name string      `yaml:"name"`
	Hull string      `yaml:"hull"`
	From [3]float32  `yaml:"from"`
	To   *[3]float32 `yaml:"to"`
	Dir  *[3]float32 `yaml:"dir"`
}

// Query is a resolved trace request ready to run against a level.
type Query struct {
	Name string
	Hull bsp.HullType
	From mgl32.Vec3
	To   mgl32.Vec3
}

// Parse decodes a YAML scene document.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	return &s, nil
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading scene from %s: %w", path, err)
	}
	return s, nil
}

// Build assembles the scene's arrays into a validated bsp.Level.
func (s *Scene) Build() (*bsp.Level, error) {
	level := &bsp.Level{
		Planes:    make([]bsp.Plane, len(s.Planes)),
		Nodes:     make([]bsp.Node, len(s.Nodes)),
		Leafs:     make([]bsp.Leaf, len(s.Leafs)),
		ClipNodes: make([]bsp.ClipNode, len(s.ClipNodes)),
		Models:    make([]bsp.Model, len(s.Models)),
	}

	for i, p := range s.Planes {
		level.Planes[i] = bsp.Plane{
			Normal: mgl32.Vec3(p.Normal),
			Dist:   p.Dist,
			Type:   bsp.PlaneType(p.Type),
		}
	}
	for i, n := range s.Nodes {
		level.Nodes[i] = bsp.Node{Plane: n.Plane, Children: n.Children}
	}
	for i, l := range s.Leafs {
		level.Leafs[i] = bsp.Leaf{Contents: bsp.Content(l.Contents)}
	}
	for i, n := range s.ClipNodes {
		level.ClipNodes[i] = bsp.ClipNode{Plane: n.Plane, Children: n.Children}
	}
	for i, m := range s.Models {
		level.Models[i] = bsp.Model{
			Mins:      mgl32.Vec3(m.Mins),
			Maxs:      mgl32.Vec3(m.Maxs),
			Origin:    mgl32.Vec3(m.Origin),
			HeadNodes: m.HeadNodes,
		}
	}

	if err := level.Validate(); err != nil {
		return nil, fmt.Errorf("scene %q: %w", s.Name, err)
	}
	return level, nil
}

// Queries resolves the scene's trace list: hull names become hull types and
// Dir-style traces become endpoints maxDist units out along the direction.
// Traces without a name are labeled by position.
func (s *Scene) Queries(maxDist float32) ([]Query, error) {
	queries := make([]Query, 0, len(s.Traces))

	for i, t := range s.Traces {
		name := t.Name
		if name == "" {
			name = fmt.Sprintf("trace-%d", i)
		}

		hull, err := bsp.ParseHullType(t.Hull)
		if err != nil {
			return nil, fmt.Errorf("trace %q: %w", name, err)
		}

		from := mgl32.Vec3(t.From)
		var to mgl32.Vec3
		switch {
		case t.To != nil && t.Dir != nil:
			return nil, fmt.Errorf("trace %q: %w", name, ErrTwoTargets)
		case t.To != nil:
			to = mgl32.Vec3(*t.To)
		case t.Dir != nil:
			dir := mgl32.Vec3(*t.Dir)
			if dir.LenSqr() == 0 {
				return nil, fmt.Errorf("trace %q: %w", name, ErrZeroDir)
			}
			to = from.Add(dir.Normalize().Mul(maxDist))
		default:
			return nil, fmt.Errorf("trace %q: %w", name, ErrNoTarget)
		}

		queries = append(queries, Query{Name: name, Hull: hull, From: from, To: to})
	}

	return queries, nil
}
