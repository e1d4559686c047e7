package ppp

import (
	"errors"
	"math"
)

// ErrNonConvergence is returned when the Kepler solver does not reach its
// tolerance within the iteration cap.
var ErrNonConvergence = errors.New("kepler equation solver did not converge")

// KeplerSolver solves Kepler's equation M = E - e·sin(E) for the eccentric
// anomaly by fixed-point iteration seeded at M.
type KeplerSolver struct {
	Tolerance     float64 // radians, between successive iterates
	MaxIterations int
}

// DefaultKeplerSolver matches the broadcast ephemeris user algorithms.
var DefaultKeplerSolver = KeplerSolver{Tolerance: 1e-14, MaxIterations: 1000}

// Solve returns the eccentric anomaly E for mean anomaly M (radians) and
// eccentricity e. Eccentricities outside [0, 1) are not rejected: the
// iteration simply runs until the cap and returns ErrNonConvergence if the
// tolerance was never met. On error the returned value is undefined and must
// not be used.
func (s KeplerSolver) Solve(M, e float64) (float64, error) {
	E := M
	for i := 0; i < s.MaxIterations; i++ {
		next := M + e*math.Sin(E)
		if math.Abs(next-E) <= s.Tolerance {
			return next, nil
		}
		E = next
	}
	return E, ErrNonConvergence
}
