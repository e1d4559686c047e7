package ppp

import (
	"math"

	"github.com/ChristopherRabotin/ode"
)

// DefaultIntegrationStep is the GLONASS state integration step in seconds.
const DefaultIntegrationStep = 60.0

// GlonassPropagator computes satellite state for GLONASS by numerically
// integrating the broadcast PZ90 position/velocity/acceleration state with
// the simplified equations of motion of the GLONASS ICD (central gravity,
// second zonal harmonic and Earth rotation, with the broadcast lunisolar
// acceleration held constant). Positions are PZ90 ECEF meters.
type GlonassPropagator struct {
	// Step is the integration step in seconds; DefaultIntegrationStep if zero.
	Step float64
}

// ComputePosition integrates the broadcast state to the given epoch. The
// epoch must be in the GLONASS (UTC-based) scale of the record; differences
// are not wrapped since a GLONASS message is only valid for minutes around
// its reference epoch.
func (p GlonassPropagator) ComputePosition(rec *NavigationRecord, epoch Epoch) (State, error) {
	tk := epoch.Sub(rec.ReferenceEpoch())
	pos, vel, acc := rec.StateVector()
	x := []float64{pos[0], pos[1], pos[2], vel[0], vel[1], vel[2]}
	x = p.integrate(x, acc, tk)
	return State{
		Position:         x[:3],
		Velocity:         x[3:],
		EccentricAnomaly: math.NaN(),
	}, nil
}

// ComputeClockBias returns the broadcast linear clock model -τn + γn·dt.
// The record stores -τn directly, as transmitted.
func (p GlonassPropagator) ComputeClockBias(rec *NavigationRecord, epoch Epoch) (float64, error) {
	dt := epoch.Sub(rec.TimeOfClock())
	a0, a1, _ := rec.ClockCoefficients()
	return a0 + a1*dt, nil
}

// integrate advances the state by tk seconds with fixed RK4 steps plus one
// final partial step. The integrator only steps forward in time; evaluation
// before the reference epoch runs the time-reversed dynamics instead, with
// the velocities and the Coriolis terms negated.
func (p GlonassPropagator) integrate(x, acc []float64, tk float64) []float64 {
	step := p.Step
	if step == 0 {
		step = DefaultIntegrationStep
	}
	dir := 1.0
	if tk < 0 {
		dir = -1
		tk = -tk
		for i := 3; i < 6; i++ {
			x[i] = -x[i]
		}
	}
	full := math.Floor(tk / step)
	if full > 0 {
		m := &pz90Motion{state: x, acc: acc, dir: dir, steps: uint64(full)}
		ode.NewRK4(0, step, m).Solve()
		x = m.state
	}
	if rem := tk - full*step; rem > 1e-9 {
		m := &pz90Motion{state: x, acc: acc, dir: dir, steps: 1}
		ode.NewRK4(0, rem, m).Solve()
		x = m.state
	}
	if dir < 0 {
		for i := 3; i < 6; i++ {
			x[i] = -x[i]
		}
	}
	return x
}

// pz90Motion integrates the GLONASS equations of motion for a fixed number
// of steps. With dir = -1 the state velocities are understood as negated and
// the equations describe the motion backwards in time.
type pz90Motion struct {
	state []float64 // x, y, z, vx, vy, vz (m, m/s)
	acc   []float64 // broadcast lunisolar acceleration (m/s^2)
	dir   float64   // +1 forward, -1 time-reversed
	steps uint64
	calls uint64
}

// GetState implements ode.Integrable.
func (m *pz90Motion) GetState() []float64 {
	s := make([]float64, 6)
	copy(s, m.state)
	return s
}

// SetState implements ode.Integrable.
func (m *pz90Motion) SetState(t float64, s []float64) {
	copy(m.state, s)
}

// Stop implements ode.Integrable.
func (m *pz90Motion) Stop(t float64) bool {
	m.calls++
	return m.calls > m.steps
}

// Func implements ode.Integrable: the PZ90 two-body acceleration with the
// J2 oblateness term, expressed in the rotating frame.
func (m *pz90Motion) Func(t float64, s []float64) []float64 {
	const ω2 = OmegaPZ90 * OmegaPZ90
	f := make([]float64, 6)
	r2 := dot(s[:3], s[:3])
	if r2 <= 0 {
		return f
	}
	r3 := r2 * math.Sqrt(r2)
	a := 1.5 * J2Glonass * MuGlonass * RadiusGlonass * RadiusGlonass / (r2 * r3)
	b := 5.0 * s[2] * s[2] / r2
	c := -MuGlonass/r3 - a*(1-b)
	f[0] = s[3]
	f[1] = s[4]
	f[2] = s[5]
	f[3] = (c+ω2)*s[0] + m.dir*2*OmegaPZ90*s[4] + m.acc[0]
	f[4] = (c+ω2)*s[1] - m.dir*2*OmegaPZ90*s[3] + m.acc[1]
	f[5] = (c-2*a)*s[2] + m.acc[2]
	return f
}
