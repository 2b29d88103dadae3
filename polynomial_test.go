package msdfgen

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func containsRoot(roots []float64, want, tol float64) bool {
	for _, r := range roots {
		if almostEqual(r, want, tol) {
			return true
		}
	}
	return false
}

func TestSolveQuadraticTwoRoots(t *testing.T) {
	// x^2 - 3x + 2 = 0 -> roots 1, 2
	roots := SolveQuadratic(1, -3, 2)
	if len(roots) != 2 {
		t.Fatalf("len(roots) = %d, want 2", len(roots))
	}
	if !containsRoot(roots, 1, 1e-9) || !containsRoot(roots, 2, 1e-9) {
		t.Errorf("roots = %v, want {1, 2}", roots)
	}
}

func TestSolveQuadraticNoRoots(t *testing.T) {
	// x^2 + 1 = 0 has no real roots.
	roots := SolveQuadratic(1, 0, 1)
	if len(roots) != 0 {
		t.Errorf("roots = %v, want none", roots)
	}
}

func TestSolveQuadraticDegenerateToLinear(t *testing.T) {
	// a negligible compared to b: 2x - 4 = 0 -> x = 2
	roots := SolveQuadratic(1e-20, 2, -4)
	if len(roots) != 1 || !almostEqual(roots[0], 2, 1e-6) {
		t.Errorf("roots = %v, want {2}", roots)
	}
}

func TestSolveCubicThreeRoots(t *testing.T) {
	// (x-1)(x-2)(x-3) = x^3 - 6x^2 + 11x - 6
	roots := SolveCubic(1, -6, 11, -6)
	if len(roots) != 3 {
		t.Fatalf("len(roots) = %d, want 3", len(roots))
	}
	for _, want := range []float64{1, 2, 3} {
		if !containsRoot(roots, want, 1e-6) {
			t.Errorf("roots %v missing %v", roots, want)
		}
	}
}

func TestSolveCubicOneRoot(t *testing.T) {
	// x^3 - 1 = 0 has one real root, x = 1.
	roots := SolveCubic(1, 0, 0, -1)
	if len(roots) == 0 || !containsRoot(roots, 1, 1e-9) {
		t.Errorf("roots = %v, want to contain 1", roots)
	}
}

func TestSolveCubicDegenerateToQuadratic(t *testing.T) {
	roots := SolveCubic(1e-20, 1, -3, 2)
	if len(roots) != 2 {
		t.Fatalf("roots = %v, want 2", roots)
	}
}
