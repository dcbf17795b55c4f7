// tracetool runs collision queries against BSP levels described by YAML
// scene files.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/khanghugo/bsptrace/internal/config"
	"github.com/khanghugo/bsptrace/internal/logger"
	"github.com/khanghugo/bsptrace/internal/scene"
	"github.com/khanghugo/bsptrace/pkg/bsp"
)

func main() {
	// Parse global flags first; the command and its arguments follow them.
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	command := flag.Arg(0)
	args := flag.Args()[1:]

	switch command {
	case "info":
		cmdInfo(args)
	case "trace":
		cmdTrace(cfg, args)
	case "point":
		cmdPoint(cfg, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`tracetool - collision queries over YAML scene files

Usage:
  tracetool [flags] <command> [options]

Commands:
  info <scene.yaml>                           Show level structure and contents
  trace <scene.yaml>                          Run every trace query in the scene
  point [-hull name] <scene.yaml> <x> <y> <z> Classify a single point

Flags:
  -config path   Use a specific config file
  -debug         Enable debug logging
  -hull name     Default hull for queries
  -log path      Write logs to a file

Examples:
  tracetool info corridor.yaml
  tracetool -debug trace corridor.yaml
  tracetool point -hull stand corridor.yaml 10 0 24`)
}

// loadLevel reads a scene file and builds its level, exiting on any error.
func loadLevel(path string) (*scene.Scene, *bsp.Level) {
	sc, err := scene.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level, err := sc.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Debug("scene loaded",
		zap.String("path", path),
		zap.String("name", sc.Name),
		zap.Int("nodes", len(level.Nodes)),
		zap.Int("clipnodes", len(level.ClipNodes)),
	)

	return sc, level
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: tracetool info <scene.yaml>")
		os.Exit(1)
	}

	sc, level := loadLevel(args[0])

	fmt.Printf("Scene:     %s\n", sc.Name)
	fmt.Printf("Planes:    %d\n", len(level.Planes))
	fmt.Printf("Nodes:     %d\n", len(level.Nodes))
	fmt.Printf("Leafs:     %d\n", len(level.Leafs))
	fmt.Printf("ClipNodes: %d\n", len(level.ClipNodes))
	fmt.Printf("Models:    %d\n", len(level.Models))
	fmt.Printf("Traces:    %d\n", len(sc.Traces))
	fmt.Println()
	fmt.Println("Leafs by content:")

	// Sort by count
	type contentStat struct {
		content bsp.Content
		count   int
	}
	var stats []contentStat
	for content, count := range level.CountByContents() {
		stats = append(stats, contentStat{content, count})
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].count > stats[j].count
	})

	for _, s := range stats {
		fmt.Printf("  %-12s %d\n", s.content, s.count)
	}

	fmt.Println()
	for i, m := range level.Models {
		fmt.Printf("Model %d: mins=%s maxs=%s heads=%v\n", i, fmtVec(m.Mins), fmtVec(m.Maxs), m.HeadNodes)
	}
}

func cmdTrace(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: tracetool trace <scene.yaml>")
		os.Exit(1)
	}

	sc, level := loadLevel(args[0])

	queries, err := sc.Queries(cfg.Trace.MaxDistance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(queries) == 0 {
		fmt.Fprintln(os.Stderr, "Scene has no trace queries")
		os.Exit(1)
	}

	for _, q := range queries {
		tr := level.TraceLine(q.Hull, q.From, q.To)

		logger.Debug("trace",
			zap.String("name", q.Name),
			zap.Stringer("hull", q.Hull),
			zap.Float32("fraction", tr.Fraction),
			zap.Bool("all_solid", tr.AllSolid),
			zap.Bool("start_solid", tr.StartSolid),
			zap.Bool("in_open", tr.InOpen),
			zap.Bool("in_water", tr.InWater),
		)

		fmt.Printf("%s (%s): fraction=%.4f end=%s", q.Name, q.Hull, tr.Fraction, fmtVec(tr.EndPos))
		if tr.StartSolid {
			fmt.Print(" start-solid")
		}
		if tr.AllSolid {
			fmt.Print(" all-solid")
		}
		if tr.InWater {
			fmt.Print(" in-water")
		}
		if tr.Fraction < 1 {
			fmt.Printf(" plane=%s dist=%.2f", fmtVec(tr.Plane.Normal), tr.Plane.Dist)
		}
		fmt.Println()
	}
}

func cmdPoint(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("point", flag.ExitOnError)
	hullName := fs.String("hull", "", "Hull to classify against")
	fs.Parse(args)

	if fs.NArg() < 4 {
		fmt.Fprintln(os.Stderr, "Usage: tracetool point [-hull name] <scene.yaml> <x> <y> <z>")
		os.Exit(1)
	}

	name := *hullName
	if name == "" {
		name = cfg.Trace.DefaultHull
	}
	hull, err := bsp.ParseHullType(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var p mgl32.Vec3
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fs.Arg(1+i), 32)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid coordinate %q\n", fs.Arg(1+i))
			os.Exit(1)
		}
		p[i] = float32(v)
	}

	_, level := loadLevel(fs.Arg(0))

	head := level.Models[0].HeadNodes[hull]
	contents := level.PointContents(hull, head, p)

	fmt.Printf("%s (%s): %s\n", fmtVec(p), hull, contents)
}

func fmtVec(v mgl32.Vec3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X(), v.Y(), v.Z())
}
