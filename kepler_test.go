package ppp

import (
	"math"
	"testing"
)

func TestKeplerSolverResidual(t *testing.T) {
	for e := 0.0; e <= 0.901; e += 0.05 {
		for M := 0.0; M < 2*math.Pi; M += 0.1 {
			E, err := DefaultKeplerSolver.Solve(M, e)
			if err != nil {
				t.Fatalf("no convergence for M=%f e=%f: %s", M, e, err)
			}
			if resid := math.Abs(E - e*math.Sin(E) - M); resid > 1e-12 {
				t.Fatalf("residual %e too large for M=%f e=%f", resid, M, e)
			}
		}
	}
}

func TestKeplerSolverCircular(t *testing.T) {
	for _, M := range []float64{-2.94191, 0, 0.5, math.Pi, 5.9, 42.0} {
		E, err := DefaultKeplerSolver.Solve(M, 0)
		if err != nil {
			t.Fatalf("M=%f: %s", M, err)
		}
		if E != M {
			t.Fatalf("expected E == M for a circular orbit, got E=%v M=%v", E, M)
		}
	}
}

func TestKeplerSolverNonConvergence(t *testing.T) {
	// A hyperbolic eccentricity has no attracting fixed point: the
	// iteration wanders forever.
	if _, err := DefaultKeplerSolver.Solve(1.3, 10); err != ErrNonConvergence {
		t.Fatalf("expected ErrNonConvergence, got %v", err)
	}
}

func TestKeplerSolverIterationCap(t *testing.T) {
	s := KeplerSolver{Tolerance: 1e-14, MaxIterations: 2}
	if _, err := s.Solve(2.0, 0.9); err != ErrNonConvergence {
		t.Fatalf("expected ErrNonConvergence with a 2 iteration cap, got %v", err)
	}
}
