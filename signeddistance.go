package msdfgen

import "math"

// SignedDistance is a scalar signed distance with a tie-breaking term, per
// spec.md §3. Negative means the sample is on the filled side of the
// nearest edge. Dot is the absolute cosine between the edge tangent at the
// winning parameter and the vector from that point to the sample; it is
// used only to break ties between candidates of equal absolute distance
// (this happens at endpoints shared by two edges).
type SignedDistance struct {
	Distance float64
	Dot      float64
}

// InitialSignedDistance returns the empty/initial SignedDistance value
// used to seed accumulators: distance = -Inf, dot = 0, per spec.md §3.
// Less below compares by |Distance|, so -Inf sorts as "infinitely far" the
// same as +Inf would — any real candidate replaces it.
func InitialSignedDistance() SignedDistance {
	return SignedDistance{Distance: math.Inf(-1), Dot: 0}
}

// Less reports whether d is a strictly better (closer) candidate than
// other: compare by |Distance| first, ascending Dot breaks ties.
func (d SignedDistance) Less(other SignedDistance) bool {
	ad, ao := math.Abs(d.Distance), math.Abs(other.Distance)
	if ad != ao {
		return ad < ao
	}
	return d.Dot < other.Dot
}

// Resolve returns d if it is at least as close as other, else other. Used
// by selectors accumulating a running minimum.
func (d SignedDistance) Resolve(other SignedDistance) SignedDistance {
	if other.Less(d) {
		return other
	}
	return d
}

// MultiDistance holds three independently-tracked signed distances, one
// per color channel, per spec.md §3. Median returns the representative
// scalar value used to reconstruct the outline.
type MultiDistance struct {
	R, G, B float64
}

// Median returns the median of the three channel values.
func (m MultiDistance) Median() float64 {
	return median3(m.R, m.G, m.B)
}

// MultiAndTrueDistance is a MultiDistance plus a fourth channel A carrying
// the true, color-agnostic distance, per spec.md §3.
type MultiAndTrueDistance struct {
	R, G, B, A float64
}

// Median returns the median of the R, G, B channels (A is excluded, as it
// is not part of the coloring scheme).
func (m MultiAndTrueDistance) Median() float64 {
	return median3(m.R, m.G, m.B)
}

func median3(a, b, c float64) float64 {
	return math.Max(math.Min(a, b), math.Min(math.Max(a, b), c))
}
