package ppp

import "math"

// SBASPropagator computes satellite state for SBAS satellites, whose
// broadcast is an ECEF position/velocity/acceleration state extrapolated
// quadratically (RTCA/DO-229) plus a linear clock model.
type SBASPropagator struct{}

// ComputePosition extrapolates the broadcast state to the given epoch.
func (p SBASPropagator) ComputePosition(rec *NavigationRecord, epoch Epoch) (State, error) {
	t := epoch.Sub(rec.ReferenceEpoch())
	pos, vel, acc := rec.StateVector()
	r := make([]float64, 3)
	v := make([]float64, 3)
	for i := 0; i < 3; i++ {
		r[i] = pos[i] + vel[i]*t + acc[i]*t*t/2
		v[i] = vel[i] + acc[i]*t
	}
	return State{Position: r, Velocity: v, EccentricAnomaly: math.NaN()}, nil
}

// ComputeClockBias returns the broadcast linear clock model aGf0 + aGf1·dt.
func (p SBASPropagator) ComputeClockBias(rec *NavigationRecord, epoch Epoch) (float64, error) {
	dt := epoch.Sub(rec.TimeOfClock())
	a0, a1, _ := rec.ClockCoefficients()
	return a0 + a1*dt, nil
}
