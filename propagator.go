package ppp

import "fmt"

// State is the satellite state computed from a broadcast record.
type State struct {
	// Position is the ECEF position in meters: WGS84 for the Keplerian
	// family, PZ90 for GLONASS.
	Position []float64
	// Velocity is the ECEF velocity in m/s, only produced by the
	// state-vector family; nil otherwise.
	Velocity []float64
	// EccentricAnomaly is the solved eccentric anomaly (rad), for reuse by
	// the clock correction. NaN for the state-vector family.
	EccentricAnomaly float64
}

// Propagator computes satellite state from a broadcast navigation record.
// Implementations are pure over the immutable record and safe for
// unsynchronized concurrent use. The evaluation epoch must be expressed in
// the record constellation's native time scale; this is not validated.
type Propagator interface {
	// ComputePosition returns the ECEF position of the satellite antenna
	// phase center at the given epoch.
	ComputePosition(rec *NavigationRecord, epoch Epoch) (State, error)
	// ComputeClockBias returns the satellite clock offset from the
	// constellation's system time (seconds) at the given epoch, without
	// group delay terms.
	ComputeClockBias(rec *NavigationRecord, epoch Epoch) (float64, error)
}

// PropagatorFor returns the propagator implementing the constellation's
// broadcast model.
func PropagatorFor(sys System) (Propagator, error) {
	switch sys {
	case GPS, Galileo, BeiDou, QZSS, IRNSS:
		return KeplerianPropagator{Solver: DefaultKeplerSolver}, nil
	case Glonass:
		return GlonassPropagator{}, nil
	case SBAS:
		return SBASPropagator{}, nil
	}
	return nil, fmt.Errorf("no propagator for %s", sys)
}

// ComputeStateAndClock computes position and clock bias for a record at one
// epoch, reusing the eccentric anomaly of the position solution for the
// relativistic clock term when the record is of the Keplerian family.
func ComputeStateAndClock(rec *NavigationRecord, epoch Epoch) (State, float64, error) {
	prop, err := PropagatorFor(rec.System())
	if err != nil {
		return State{}, 0, err
	}
	state, err := prop.ComputePosition(rec, epoch)
	if err != nil {
		return State{}, 0, err
	}
	if kp, ok := prop.(KeplerianPropagator); ok {
		dt := wrapHalfWeek(epoch.Sub(rec.TimeOfClock()))
		bias, err := kp.clockBias(rec, dt, &state.EccentricAnomaly)
		return state, bias, err
	}
	bias, err := prop.ComputeClockBias(rec, epoch)
	return state, bias, err
}
