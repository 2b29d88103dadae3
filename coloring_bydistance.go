package msdfgen

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/katalvlaran/lvlath/graph"
)

// splinePair records the sampled minimum distance between two splines of
// one contour, used to order edge insertion in ColorEdgesByDistance.
type splinePair struct {
	i, j     int
	distance float64
}

// edgeColoringSamplePoints is the sampling precision used to estimate
// inter-spline distance, per spec.md §4.5: sampleSpline takes
// edgeColoringSamplePoints+1 evenly spaced points along each spline.
const edgeColoringSamplePoints = 16

// numericalZero is the tolerance below which a sampled inter-spline
// distance short-circuits to exactly zero, per spec.md §4.5.
const numericalZero = 1e-9

// ColorEdgesByDistance implements spec.md §4.5's optimal-but-expensive
// algorithm: segment each contour into splines, estimate the distance
// between every pair, seed a 3-coloring from the zero-distance
// ("must-conflict") pairs, then add the remaining pairs in ascending
// distance order, repairing the coloring with a bounded graph search
// whenever an insertion would force a shared color across an edge.
func ColorEdgesByDistance(shape *Shape, cfg ColoringConfig) {
	seed := cfg.Seed
	for _, contour := range shape.Contours {
		colorContourByDistance(contour, cfg, &seed)
	}
}

func colorContourByDistance(contour *Contour, cfg ColoringConfig, seed *uint64) {
	n := len(contour.Edges)
	if n == 0 {
		return
	}
	corners := cornerIndices(contour.Edges, cfg.AngleThreshold)
	if len(corners) == 0 {
		colorSmoothContour(contour, seed)
		return
	}
	splines := splitIntoSplines(n, corners)
	if len(splines) == 1 {
		colorSmoothContour(contour, seed)
		return
	}
	Logger().Debug("coloring contour by distance", slog.Int("edges", n), slog.Int("splines", len(splines)))

	samples := make([][]Vector2, len(splines))
	for i, sp := range splines {
		samples[i] = sampleSpline(contour.Edges, n, sp, edgeColoringSamplePoints)
	}

	pairs := make([]splinePair, 0, len(splines)*(len(splines)-1)/2)
	for i := 0; i < len(splines); i++ {
		for j := i + 1; j < len(splines); j++ {
			d := minPointDistance(samples[i], samples[j])
			if d < numericalZero {
				d = 0
			}
			pairs = append(pairs, splinePair{i: i, j: j, distance: d})
		}
	}
	sort.Slice(pairs, func(a, b int) bool { return pairs[a].distance < pairs[b].distance })

	g := graph.NewGraph(false, false)
	for i := range splines {
		g.AddVertex(&graph.Vertex{ID: splineVertexID(i)})
	}

	colors := make(map[string]EdgeColor, len(splines))
	for i := range splines {
		colors[splineVertexID(i)] = nextColor(initColor(seed), seed)
	}

	for _, p := range pairs {
		va, vb := splineVertexID(p.i), splineVertexID(p.j)
		if p.distance == 0 {
			g.AddEdge(va, vb, 0)
			if colors[va] == colors[vb] {
				repairConflict(g, colors, va, vb, seed)
			}
			continue
		}
		if colors[va] != colors[vb] {
			g.AddEdge(va, vb, 0)
			continue
		}
		if repairConflict(g, colors, va, vb, seed) {
			g.AddEdge(va, vb, 0)
		}
		// Otherwise the edge is discarded: these two splines are allowed
		// to keep sharing a color.
	}

	for i, sp := range splines {
		c := colors[splineVertexID(i)]
		for j := sp.Start; j != sp.End; j = (j + 1) % n {
			contour.Edges[j] = contour.Edges[j].WithColor(c)
		}
	}
}

func splineVertexID(i int) string { return fmt.Sprintf("s%d", i) }

// sampleSpline returns count+1 points evenly spaced (by edge then by t)
// along the spline's arc, used to estimate inter-spline distance.
func sampleSpline(edges []EdgeSegment, n int, sp spline, count int) []Vector2 {
	var edgeList []EdgeSegment
	for i := sp.Start; i != sp.End; i = (i + 1) % n {
		edgeList = append(edgeList, edges[i])
	}
	if len(edgeList) == 0 {
		return nil
	}
	points := make([]Vector2, 0, count+1)
	for k := 0; k <= count; k++ {
		frac := float64(k) / float64(count)
		pos := frac * float64(len(edgeList))
		idx := int(pos)
		if idx >= len(edgeList) {
			idx = len(edgeList) - 1
		}
		t := pos - float64(idx)
		points = append(points, edgeList[idx].Point(t))
	}
	return points
}

func minPointDistance(a, b []Vector2) float64 {
	best := math.Inf(1)
	for _, p := range a {
		for _, q := range b {
			if d := p.Sub(q).Length(); d < best {
				best = d
			}
		}
	}
	return best
}

// repairConflict attempts a bounded BFS-style recoloring: starting from
// va, walk the conflict graph and assign each visited vertex the first
// color not forbidden by its already-colored neighbors, breaking ties
// with the seed. Returns false (leaving colors unmodified) if any visited
// vertex has no free color or the walk reaches its 16-step budget.
func repairConflict(g *graph.Graph, colors map[string]EdgeColor, va, vb string, seed *uint64) bool {
	const maxSteps = 16
	trial := make(map[string]EdgeColor, len(colors))
	for k, v := range colors {
		trial[k] = v
	}

	trial[va] = firstFreeColor(g, trial, va, seed)
	if trial[va] == ColorBlack {
		return false
	}
	steps := 1
	ok := true
	_, err := g.BFS(va, &graph.BFSOptions{
		OnVisit: func(v *graph.Vertex, depth int) error {
			if steps >= maxSteps {
				return fmt.Errorf("step budget exhausted")
			}
			if v.ID != va {
				c := firstFreeColor(g, trial, v.ID, seed)
				if c == ColorBlack {
					ok = false
					return fmt.Errorf("no free color for %s", v.ID)
				}
				trial[v.ID] = c
			}
			steps++
			return nil
		},
	})
	if err != nil || !ok {
		return false
	}
	if trial[va] == trial[vb] {
		return false
	}
	for k, v := range trial {
		colors[k] = v
	}
	return true
}

// firstFreeColor returns a palette color not used by any already-colored
// neighbor of v, preferring the seed-selected choice when more than one
// is free, or ColorBlack if none is.
func firstFreeColor(g *graph.Graph, colors map[string]EdgeColor, v string, seed *uint64) EdgeColor {
	forbidden := make(map[EdgeColor]bool)
	for _, nbr := range g.Neighbors(v) {
		forbidden[colors[nbr.ID]] = true
	}
	var free []EdgeColor
	for _, c := range colorPalette {
		if !forbidden[c] {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return ColorBlack
	}
	if len(free) == 1 {
		return free[0]
	}
	return free[seedTrit(seed)%len(free)]
}
