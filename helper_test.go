package ppp

import "github.com/gonum/floats"

// vectorsEqualWithin reports whether two vectors match component-wise
// within the given absolute tolerance.
func vectorsEqualWithin(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !floats.EqualWithinAbs(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

// newKeplerianRecord builds a Keplerian-family record with toc equal to the
// reference epoch (continuous week 2086, sow 259200) and the given slots.
func newKeplerianRecord(sys System, prn int, set func(d []float64)) *NavigationRecord {
	d := make([]float64, recordSlots)
	d[fldWeek] = 2086
	if sys == BeiDou {
		d[fldWeek] = 730 // BDT week count
	}
	d[fldToe] = 259200
	set(d)
	toc := Epoch{Scale: sys.TimeScale(), Week: 2086, Sow: 259200}
	return NewNavigationRecord(sys, prn, toc, d)
}

// realisticGPSRecord returns a plausible GPS broadcast ephemeris for a
// near-circular MEO orbit.
func realisticGPSRecord() *NavigationRecord {
	return newKeplerianRecord(GPS, 7, func(d []float64) {
		d[fldClockBias] = 2.45962478481e-05
		d[fldClockDrift] = 2.27373675443e-12
		d[fldIODE] = 53
		d[fldCrs] = -5.28125
		d[fldDeltaN] = 4.46482587887e-09
		d[fldM0] = -2.94191
		d[fldCuc] = -3.05473804474e-07
		d[fldEccentricity] = 0.0074953539879
		d[fldCus] = 8.69855284691e-06
		d[fldSqrtA] = 5153.65643501
		d[fldCic] = -2.42143869400e-08
		d[fldOmega0] = -0.0890122
		d[fldCis] = 1.08033418655e-07
		d[fldI0] = 0.9606
		d[fldCrc] = 206.53125
		d[fldArgPerigee] = 0.8140
		d[fldOmegaDot] = -8.16033991645e-09
		d[fldIDot] = -4.89306297634e-10
		d[fldAccuracy] = 2.0
		d[fldTGD] = -1.11758708954e-08
		d[fldIODC] = 53
		d[fldTransmission] = 252018
		d[fldFitInterval] = 4
	})
}

// newGlonassRecord returns a plausible GLONASS broadcast state.
func newGlonassRecord() *NavigationRecord {
	d := make([]float64, recordSlots)
	d[fldClockBias] = 6.48368149996e-05
	d[fldClockDrift] = 9.09494701773e-13
	d[fldPosX] = 10.5e6
	d[fldVelX] = -2500
	d[fldAccX] = 0
	d[fldPosY] = 16.0e6
	d[fldVelY] = 2800
	d[fldAccY] = 9.31322574616e-07
	d[fldFrequency] = -4
	d[fldPosZ] = 16.5e6
	d[fldVelZ] = -1200
	d[fldAccZ] = -1.86264514923e-06
	toc := Epoch{Scale: GLONASST, Week: 2086, Sow: 270900}
	return NewNavigationRecord(Glonass, 3, toc, d)
}
