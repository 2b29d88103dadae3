package msdfgen

import "math"

// ColoringConfig parameterizes the edge-coloring algorithms, per
// spec.md §4.5/§6.
type ColoringConfig struct {
	// AngleThreshold is the corner-detection threshold in radians. A
	// corner is detected at an edge boundary when the unit tangents
	// either have cos <= 0 or |sin| > sin(AngleThreshold).
	AngleThreshold float64
	// Seed drives the deterministic pseudo-random color choices.
	Seed uint64
	// InkTrapFactor is the minimum ratio of a bordering spline's length
	// to the bridging spline's length for the bridging corner to be
	// classified as an ink trap by ColorEdgesInkTrap.
	InkTrapFactor float64
}

// DefaultColoringConfig returns {AngleThreshold: 3 radians (~172 degrees,
// detects only sharp corners), Seed: 0, InkTrapFactor: 3.0}, per
// spec.md §6.
func DefaultColoringConfig() ColoringConfig {
	return ColoringConfig{AngleThreshold: 3.0, Seed: 0, InkTrapFactor: 3.0}
}

// Validate reports a ConfigError if AngleThreshold or InkTrapFactor is
// non-positive.
func (c ColoringConfig) Validate() error {
	if c.AngleThreshold <= 0 {
		return &ConfigError{Field: "AngleThreshold", Reason: "must be positive"}
	}
	if c.InkTrapFactor <= 0 {
		return &ConfigError{Field: "InkTrapFactor", Reason: "must be positive"}
	}
	return nil
}

// isCorner reports whether the tangent leaving the previous edge and the
// tangent entering the next edge, both unit vectors, form a corner under
// threshold: a corner is detected when cos(angle) <= 0 (the turn is at
// least 90 degrees) or |sin(angle)| exceeds sin(threshold) (any sharper
// turn than the configured threshold), per spec.md §4.5.
func isCorner(aDir, bDir Vector2, threshold float64) bool {
	a := aDir.Normalize()
	b := bDir.Normalize()
	cos := a.Dot(b)
	if cos <= 0 {
		return true
	}
	sin := a.Cross(b)
	return math.Abs(sin) > math.Sin(threshold)
}

// cornerIndices returns, in ascending order, every index i for which a
// corner is detected between edge i and edge (i+1)%n, using each edge's
// outgoing/incoming tangent.
func cornerIndices(edges []EdgeSegment, threshold float64) []int {
	n := len(edges)
	var corners []int
	for i := 0; i < n; i++ {
		prev := edges[i]
		next := edges[(i+1)%n]
		if isCorner(prev.Direction(1), next.Direction(0), threshold) {
			corners = append(corners, i)
		}
	}
	return corners
}

// spline is a maximal corner-free run of edges within a contour, named by
// the half-open edge index range [Start, End) (wrapping modulo the
// contour's edge count).
type spline struct {
	Start, End int
}

// length approximates the spline's arclength by summing each edge's chord
// length, used by the ink-trap detector's "longer than" comparison.
func (s spline) length(edges []EdgeSegment, n int) float64 {
	total := 0.0
	for i := s.Start; i != s.End; i = (i + 1) % n {
		e := edges[i]
		total += e.Point(1).Sub(e.Point(0)).Length()
	}
	return total
}

// splitIntoSplines partitions a contour's edges into maximal corner-free
// runs, given the corner indices (boundaries) already computed. If no
// corners were detected, the whole contour is a single spline spanning
// [0, n).
func splitIntoSplines(n int, corners []int) []spline {
	if len(corners) == 0 {
		return []spline{{Start: 0, End: n}}
	}
	splines := make([]spline, 0, len(corners))
	for i, c := range corners {
		start := (c + 1) % n
		var end int
		if i+1 < len(corners) {
			end = (corners[i+1] + 1) % n
		} else {
			end = (corners[0] + 1) % n
		}
		splines = append(splines, spline{Start: start, End: end})
	}
	return splines
}

// seedBit extracts the lowest bit of *seed, shifting it out, per
// spec.md §9's bit-stream PRNG contract (deliberately not a named PRNG).
func seedBit(seed *uint64) bool {
	bit := *seed&1 != 0
	*seed >>= 1
	return bit
}

// seedTrit extracts *seed mod 3, dividing it out, per the same contract.
func seedTrit(seed *uint64) int {
	trit := int(*seed % 3)
	*seed /= 3
	return trit
}

var colorPalette = [3]EdgeColor{ColorCyan, ColorMagenta, ColorYellow}

// initColor picks the first non-white color from the seed's trit stream.
func initColor(seed *uint64) EdgeColor {
	return colorPalette[seedTrit(seed)]
}

// nextColor advances current to a different palette entry, using one trit
// of the seed stream to pick which of the other two it becomes.
func nextColor(current EdgeColor, seed *uint64) EdgeColor {
	idx := 0
	for i, c := range colorPalette {
		if c == current {
			idx = i
			break
		}
	}
	choice := seedTrit(seed) % 2
	return colorPalette[(idx+1+choice)%3]
}

// balancedTrichotomy computes spec.md §4.5's formula
// floor(3 + 2.875*i/(m-1) - 1.4375 + 0.5) - 3, mapping edge position i in
// a contour of m edges into {-1, 0, +1} with zero mean across the
// contour, used as an offset into the three-color palette for the
// teardrop (one-corner) case.
func balancedTrichotomy(i, m int) int {
	if m <= 1 {
		return 0
	}
	v := 3.0 + 2.875*float64(i)/float64(m-1) - 1.4375 + 0.5
	return int(math.Floor(v)) - 3
}

// colorFromOffset maps a balancedTrichotomy offset plus a base color pair
// (A, bridge=WHITE, B) onto one of the three, per spec.md §4.5's teardrop
// distribution.
func colorFromOffset(offset int, a, bridge, b EdgeColor) EdgeColor {
	switch offset {
	case -1:
		return a
	case 1:
		return b
	default:
		return bridge
	}
}

// teardropColors picks two colors A and B whose intersection is exactly
// one channel, so that A | B == WHITE, for the one-corner teardrop case.
func teardropColors(seed *uint64) (a, b EdgeColor) {
	a = initColor(seed)
	b = nextColor(a, seed)
	return a, b
}
