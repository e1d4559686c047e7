package ppp

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func newSBASRecord() *NavigationRecord {
	d := make([]float64, recordSlots)
	d[fldClockBias] = 1.33179128170e-07
	d[fldClockDrift] = 1.09139364213e-11
	d[fldPosX] = 24802.0e3
	d[fldVelX] = 0.05
	d[fldAccX] = 1.25e-7
	d[fldPosY] = 34100.0e3
	d[fldVelY] = -0.03
	d[fldAccY] = -2.5e-7
	d[fldPosZ] = 12.0e3
	d[fldVelZ] = 0.12
	d[fldAccZ] = 5.0e-8
	toc := Epoch{Scale: GPST, Week: 2086, Sow: 260100}
	return NewNavigationRecord(SBAS, 36, toc, d)
}

func TestSBASQuadraticExtrapolation(t *testing.T) {
	rec := newSBASRecord()
	prop := SBASPropagator{}
	pos, vel, acc := rec.StateVector()
	for _, tk := range []float64{0, 240, -120} {
		state, err := prop.ComputePosition(rec, rec.ReferenceEpoch().Add(tk))
		if err != nil {
			t.Fatalf("tk=%f: %s", tk, err)
		}
		for i := 0; i < 3; i++ {
			p := pos[i] + vel[i]*tk + acc[i]*tk*tk/2
			if !floats.EqualWithinAbs(state.Position[i], p, 1e-9) {
				t.Fatalf("tk=%f axis %d: got %f, expected %f", tk, i, state.Position[i], p)
			}
			v := vel[i] + acc[i]*tk
			if !floats.EqualWithinAbs(state.Velocity[i], v, 1e-12) {
				t.Fatalf("tk=%f axis %d: got velocity %f, expected %f", tk, i, state.Velocity[i], v)
			}
		}
		if !math.IsNaN(state.EccentricAnomaly) {
			t.Fatal("state-vector family carries no eccentric anomaly")
		}
	}
}

func TestSBASClockBias(t *testing.T) {
	rec := newSBASRecord()
	prop := SBASPropagator{}
	a0, a1, _ := rec.ClockCoefficients()
	const dt = 240.0
	bias, err := prop.ComputeClockBias(rec, rec.TimeOfClock().Add(dt))
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(bias, a0+a1*dt, 1e-18) {
		t.Fatalf("got %e, expected %e", bias, a0+a1*dt)
	}
}
