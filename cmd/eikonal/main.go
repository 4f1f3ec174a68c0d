// Command eikonal runs a path-planning scenario end to end: build the
// velocity field, solve the arrival-time field, extract a path, and write
// the three visualizations as PNG files.
//
// Usage:
//
//	eikonal [-scenario file.yaml] [-out dir] [-cell px]
//
// Without -scenario a built-in demo world is used.
package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/eikonal/obstacle"
	"github.com/katalvlaran/eikonal/planner"
	"github.com/katalvlaran/eikonal/render"
	"github.com/katalvlaran/eikonal/scenario"
)

func main() {
	scenarioPath := flag.String("scenario", "", "YAML scenario file (empty: built-in demo)")
	outDir := flag.String("out", ".", "output directory for PNG files")
	cellPx := flag.Int("cell", render.DefaultCellSize, "pixels per grid cell in output images")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(log, *scenarioPath, *outDir, *cellPx); err != nil {
		log.Error("planning failed", "err", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, scenarioPath, outDir string, cellPx int) error {
	p, start, goal, err := setup(scenarioPath)
	if err != nil {
		return err
	}

	g := p.Grid()
	log.Info("solving",
		"nx", g.NX(), "ny", g.NY(),
		"resolution", g.Resolution(),
		"obstacles", p.Catalog().Len())

	if _, err = p.Solve(start, goal); err != nil {
		return err
	}

	path, err := p.ExtractPath(start, goal)
	if err != nil {
		return err
	}
	log.Info("path extracted", "points", len(path), "length", planar.Length(path))

	r := render.New(g, render.WithCellSize(cellPx))
	images := []struct {
		name string
		img  image.Image
	}{
		{"velocity.png", r.Velocity(p.VelocityField())},
		{"distance.png", r.Distance(p.DistanceField())},
		{"path.png", r.Scene(p.VelocityField(), p.Catalog(), path, start, goal)},
	}
	for _, im := range images {
		out := filepath.Join(outDir, im.name)
		if err := render.SavePNG(out, im.img); err != nil {
			return fmt.Errorf("writing %s: %w", im.name, err)
		}
		log.Info("wrote image", "file", out)
	}

	return nil
}

// setup builds the planner and endpoints from a scenario file, or from
// the built-in demo world when path is empty.
func setup(path string) (*planner.Planner, orb.Point, orb.Point, error) {
	if path != "" {
		s, err := scenario.LoadFile(path)
		if err != nil {
			return nil, orb.Point{}, orb.Point{}, err
		}
		p, err := s.Planner()
		if err != nil {
			return nil, orb.Point{}, orb.Point{}, err
		}

		return p, s.StartPoint(), s.GoalPoint(), nil
	}

	return demo()
}

// demo recreates the default showcase: a 10×8 world with two rectangles
// and two circles between opposite corners.
func demo() (*planner.Planner, orb.Point, orb.Point, error) {
	p, err := planner.New(10, 8, 0.1)
	if err != nil {
		return nil, orb.Point{}, orb.Point{}, err
	}
	shapes := []obstacle.Shape{
		obstacle.Rect{X: 3, Y: 2, Width: 2, Height: 1.5},
		obstacle.Rect{X: 6, Y: 4, Width: 1.5, Height: 2},
		obstacle.Circle{CX: 2, CY: 6, Radius: 0.8},
		obstacle.Circle{CX: 7, CY: 1.5, Radius: 0.6},
	}
	for _, s := range shapes {
		if err := p.AddObstacle(s); err != nil {
			return nil, orb.Point{}, orb.Point{}, err
		}
	}

	return p, orb.Point{0.5, 0.5}, orb.Point{9.5, 7.5}, nil
}
