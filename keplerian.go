package ppp

import "math"

// KeplerianPropagator computes satellite state for the constellations that
// broadcast Keplerian elements (GPS, Galileo, BeiDou, QZSS, IRNSS),
// following the user algorithm for ephemeris determination of IS-GPS-200
// and the corresponding sections of the other interface control documents.
// Positions are WGS84 ECEF meters (CGCS2000 for BeiDou, indistinguishable
// at broadcast accuracy).
type KeplerianPropagator struct {
	Solver KeplerSolver
}

// ComputePosition returns the ECEF position at the given epoch, along with
// the solved eccentric anomaly. Malformed parameters are not validated and
// propagate as NaN coordinates; the only signaled failure is
// ErrNonConvergence from the Kepler solver.
func (p KeplerianPropagator) ComputePosition(rec *NavigationRecord, epoch Epoch) (State, error) {
	tk := wrapHalfWeek(epoch.Sub(rec.ReferenceEpoch()))
	return p.position(rec, tk)
}

func (p KeplerianPropagator) position(rec *NavigationRecord, tk float64) (State, error) {
	sqrtA := rec.SqrtA()
	A := sqrtA * sqrtA
	n0 := math.Sqrt(rec.System().Mu() / (A * A * A))
	n := n0 + rec.DeltaN()
	Mk := rec.M0() + n*tk
	e := rec.Eccentricity()

	Ek, err := p.Solver.Solve(Mk, e)
	if err != nil {
		return State{}, err
	}
	sinE, cosE := math.Sincos(Ek)
	νk := math.Atan2(math.Sqrt(1-e*e)*sinE, cosE-e)

	// Second harmonic perturbations.
	Fk := νk + rec.ArgPerigee()
	sin2F, cos2F := math.Sincos(2 * Fk)
	cus, cuc, crs, crc, cis, cic := rec.Harmonics()
	uk := Fk + cus*sin2F + cuc*cos2F
	rk := A*(1-e*cosE) + crs*sin2F + crc*cos2F
	ik := rec.I0() + cis*sin2F + cic*cos2F + rec.IDot()*tk

	// Position in the orbital plane.
	sinU, cosU := math.Sincos(uk)
	plane := []float64{rk * cosU, rk * sinU, 0}

	ωe := rec.System().RotationRate()
	toe := rec.ToeSeconds()
	if rec.System() == BeiDou && beidouGeo(rec.PRN()) {
		// BeiDou GEO satellites: rotate in an inertial-like frame inclined
		// at -5 degrees, then back to ECEF (BeiDou ICD table 5-11).
		Ωk := rec.Omega0() + rec.OmegaDot()*tk - ωe*toe
		g := MxV33(R3(-Ωk), MxV33(R1(-ik), plane))
		ecef := MxV33(R3(ωe*tk), MxV33(R1(Deg2rad(-5)), g))
		return State{Position: ecef, EccentricAnomaly: Ek}, nil
	}
	// Corrected longitude of ascending node, including Earth rotation
	// during the week (ωe·Toe uses the native broadcast seconds of week).
	Ωk := rec.Omega0() + (rec.OmegaDot()-ωe)*tk - ωe*toe
	ecef := MxV33(R3(-Ωk), MxV33(R1(-ik), plane))
	return State{Position: ecef, EccentricAnomaly: Ek}, nil
}

// ComputeClockBias returns the satellite clock offset (seconds) at the
// given epoch: the broadcast polynomial plus the relativistic eccentricity
// correction. Group delay (TGD/BGD) is not applied.
func (p KeplerianPropagator) ComputeClockBias(rec *NavigationRecord, epoch Epoch) (float64, error) {
	dt := wrapHalfWeek(epoch.Sub(rec.TimeOfClock()))
	return p.clockBias(rec, dt, nil)
}

// ComputeClockBiasWithAnomaly is ComputeClockBias reusing an eccentric
// anomaly already solved during a position computation. Accuracy degrades if
// the anomaly was solved for a different epoch than the one given.
func (p KeplerianPropagator) ComputeClockBiasWithAnomaly(rec *NavigationRecord, epoch Epoch, Ek float64) (float64, error) {
	dt := wrapHalfWeek(epoch.Sub(rec.TimeOfClock()))
	return p.clockBias(rec, dt, &Ek)
}

func (p KeplerianPropagator) clockBias(rec *NavigationRecord, dt float64, anomaly *float64) (float64, error) {
	var Ek float64
	if anomaly != nil {
		Ek = *anomaly
	} else {
		sqrtA := rec.SqrtA()
		A := sqrtA * sqrtA
		n := math.Sqrt(rec.System().Mu()/(A*A*A)) + rec.DeltaN()
		var err error
		Ek, err = p.Solver.Solve(rec.M0()+n*dt, rec.Eccentricity())
		if err != nil {
			return 0, err
		}
	}
	Δtr := ClockRelativityF * rec.Eccentricity() * rec.SqrtA() * math.Sin(Ek)
	a0, a1, a2 := rec.ClockCoefficients()
	return a0 + a1*dt + a2*dt*dt + Δtr, nil
}
