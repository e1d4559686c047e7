package ppp

import "fmt"

// Slot indices into the 31-entry parameter block of a navigation record.
// The meaning of a slot is fixed per constellation family and must never be
// reinterpreted across families.
//
// Keplerian family (GPS slot layout; Galileo, BeiDou, QZSS and IRNSS reuse
// the same slots with their own issue-of-data and flag semantics):
const (
	fldClockBias      = 0  // af0 (s)
	fldClockDrift     = 1  // af1 (s/s)
	fldClockDriftRate = 2  // af2 (s/s^2)
	fldIODE           = 3  // issue of data, ephemeris
	fldCrs            = 4  // m
	fldDeltaN         = 5  // rad/s
	fldM0             = 6  // rad
	fldCuc            = 7  // rad
	fldEccentricity   = 8  // dimensionless
	fldCus            = 9  // rad
	fldSqrtA          = 10 // sqrt(m)
	fldToe            = 11 // s of week, constellation native
	fldCic            = 12 // rad
	fldOmega0         = 13 // rad
	fldCis            = 14 // rad
	fldI0             = 15 // rad
	fldCrc            = 16 // m
	fldArgPerigee     = 17 // rad
	fldOmegaDot       = 18 // rad/s
	fldIDot           = 19 // rad/s
	fldCodesOnL2      = 20
	fldWeek           = 21 // constellation native week number
	fldL2PFlag        = 22
	fldAccuracy       = 23 // m (SISA for Galileo)
	fldHealth         = 24
	fldTGD            = 25 // s
	fldIODC           = 26
	fldTransmission   = 27 // s of week
	fldFitInterval    = 28 // hours
)

// State-vector family (GLONASS and SBAS). Slot 0 holds the clock bias
// (-τn for GLONASS, aGf0 for SBAS), slot 1 the frequency bias (γn or aGf1)
// and slot 2 the message frame time (GLONASS) or transmission time (SBAS).
// Positions, velocities and accelerations are stored in meters.
const (
	fldFrameTime = 2
	fldPosX      = 3
	fldVelX      = 4
	fldAccX      = 5
	fldHealthSV  = 6
	fldPosY      = 7
	fldVelY      = 8
	fldAccY      = 9
	fldFrequency = 10 // GLONASS frequency channel; URA for SBAS
	fldPosZ      = 11
	fldVelZ      = 12
	fldAccZ      = 13
	fldAgeOfData = 14 // age of operation for GLONASS, IODN for SBAS
)

// recordSlots is the size of the parameter block of a RINEX 3.x navigation
// message (7 broadcast orbit lines of 4 values plus the 3 clock terms).
const recordSlots = 31

// SatelliteID identifies a satellite by constellation and PRN.
type SatelliteID struct {
	System System
	PRN    int
}

// ParseSatelliteID parses a RINEX satellite designator such as "G12" or "R 3".
func ParseSatelliteID(s string) (SatelliteID, error) {
	if len(s) != 3 {
		return SatelliteID{}, fmt.Errorf("invalid satellite designator %q", s)
	}
	sys, err := SystemFromRINEX(s[0])
	if err != nil {
		return SatelliteID{}, err
	}
	prn := 0
	for _, c := range s[1:] {
		if c == ' ' {
			continue
		}
		if c < '0' || c > '9' {
			return SatelliteID{}, fmt.Errorf("invalid satellite designator %q", s)
		}
		prn = prn*10 + int(c-'0')
	}
	return SatelliteID{System: sys, PRN: prn}, nil
}

// String implements the Stringer interface.
func (id SatelliteID) String() string {
	return fmt.Sprintf("%c%02d", id.System.RINEX(), id.PRN)
}

// NavigationRecord is one broadcast navigation message: the constellation
// tag, the satellite PRN, the time of clock and the position-indexed
// parameter block. A record is immutable once built; every computation over
// it is read-only, so records are safe for unsynchronized concurrent use.
type NavigationRecord struct {
	system System
	prn    int
	toc    Epoch
	toe    Epoch
	data   [recordSlots]float64
}

// NewNavigationRecord builds a record from a parameter block laid out as
// documented by the slot constants. The slice is copied; at most 31 entries
// are used. The reference (ephemeris) epoch is derived from the week and
// time-of-ephemeris slots for the Keplerian family, with the BeiDou week
// count aligned to the continuous count (BDT week zero began in continuous
// week 1356); for GLONASS and SBAS the time of clock is the reference state
// epoch.
func NewNavigationRecord(system System, prn int, toc Epoch, params []float64) *NavigationRecord {
	r := &NavigationRecord{system: system, prn: prn, toc: toc}
	copy(r.data[:], params)
	if system.Keplerian() {
		week := int(r.data[fldWeek])
		if system == BeiDou {
			week += 1356
		}
		r.toe = Epoch{Scale: toc.Scale, Week: week, Sow: r.data[fldToe]}
	} else {
		r.toe = toc
	}
	return r
}

// System returns the constellation the record belongs to.
func (r *NavigationRecord) System() System { return r.system }

// PRN returns the constellation-scoped satellite identifier.
func (r *NavigationRecord) PRN() int { return r.prn }

// ID returns the satellite identifier of the record.
func (r *NavigationRecord) ID() SatelliteID {
	return SatelliteID{System: r.system, PRN: r.prn}
}

// TimeOfClock returns the reference epoch of the clock polynomial, in the
// constellation's native time scale.
func (r *NavigationRecord) TimeOfClock() Epoch { return r.toc }

// ReferenceEpoch returns the reference epoch of the orbit parameters (Toe
// for the Keplerian family, the state epoch tb/t0 otherwise).
func (r *NavigationRecord) ReferenceEpoch() Epoch { return r.toe }

// Data returns the raw value of a parameter slot.
func (r *NavigationRecord) Data(i int) float64 { return r.data[i] }

// ClockCoefficients returns the clock polynomial coefficients. For GLONASS
// and SBAS a0, a1 are the broadcast bias and frequency bias (-τn, γn and
// aGf0, aGf1 respectively) and a2 is zero: their slot 2 holds a time stamp,
// not a drift rate.
func (r *NavigationRecord) ClockCoefficients() (a0, a1, a2 float64) {
	if !r.system.Keplerian() {
		return r.data[fldClockBias], r.data[fldClockDrift], 0
	}
	return r.data[fldClockBias], r.data[fldClockDrift], r.data[fldClockDriftRate]
}

// Keplerian element accessors. Meaningful only for the Keplerian family.

// Eccentricity returns the orbit eccentricity.
func (r *NavigationRecord) Eccentricity() float64 { return r.data[fldEccentricity] }

// SqrtA returns the square root of the semi-major axis (sqrt(m)).
func (r *NavigationRecord) SqrtA() float64 { return r.data[fldSqrtA] }

// M0 returns the mean anomaly at the reference epoch (rad).
func (r *NavigationRecord) M0() float64 { return r.data[fldM0] }

// DeltaN returns the mean motion correction (rad/s).
func (r *NavigationRecord) DeltaN() float64 { return r.data[fldDeltaN] }

// I0 returns the inclination at the reference epoch (rad).
func (r *NavigationRecord) I0() float64 { return r.data[fldI0] }

// IDot returns the inclination rate (rad/s).
func (r *NavigationRecord) IDot() float64 { return r.data[fldIDot] }

// Omega0 returns the longitude of ascending node at the weekly epoch (rad).
func (r *NavigationRecord) Omega0() float64 { return r.data[fldOmega0] }

// OmegaDot returns the rate of right ascension (rad/s).
func (r *NavigationRecord) OmegaDot() float64 { return r.data[fldOmegaDot] }

// ArgPerigee returns the argument of perigee (rad).
func (r *NavigationRecord) ArgPerigee() float64 { return r.data[fldArgPerigee] }

// Harmonics returns the six second-harmonic correction coefficients.
func (r *NavigationRecord) Harmonics() (cus, cuc, crs, crc, cis, cic float64) {
	return r.data[fldCus], r.data[fldCuc], r.data[fldCrs], r.data[fldCrc], r.data[fldCis], r.data[fldCic]
}

// ToeSeconds returns the broadcast time of ephemeris in native seconds of
// the constellation's week, exactly as transmitted.
func (r *NavigationRecord) ToeSeconds() float64 { return r.data[fldToe] }

// IODE returns the issue of data, ephemeris.
func (r *NavigationRecord) IODE() int { return int(r.data[fldIODE]) }

// IODC returns the issue of data, clock.
func (r *NavigationRecord) IODC() int { return int(r.data[fldIODC]) }

// Health returns the broadcast SV health word.
func (r *NavigationRecord) Health() int {
	if r.system.Keplerian() {
		return int(r.data[fldHealth])
	}
	return int(r.data[fldHealthSV])
}

// TGD returns the broadcast group delay (s). Never applied by the clock
// model here; single-frequency callers subtract it themselves.
func (r *NavigationRecord) TGD() float64 { return r.data[fldTGD] }

// FitInterval returns the fit interval of the message (hours).
func (r *NavigationRecord) FitInterval() float64 { return r.data[fldFitInterval] }

// StateVector returns the broadcast position, velocity and acceleration for
// the state-vector family (m, m/s, m/s^2).
func (r *NavigationRecord) StateVector() (pos, vel, acc []float64) {
	pos = []float64{r.data[fldPosX], r.data[fldPosY], r.data[fldPosZ]}
	vel = []float64{r.data[fldVelX], r.data[fldVelY], r.data[fldVelZ]}
	acc = []float64{r.data[fldAccX], r.data[fldAccY], r.data[fldAccZ]}
	return
}

// FrequencyChannel returns the GLONASS frequency channel number.
func (r *NavigationRecord) FrequencyChannel() int {
	return int(r.data[fldFrequency])
}

// MessageFrameTime returns the broadcast time stamp of a state-vector
// message (seconds of week): the message frame time for GLONASS, the
// transmission time for SBAS.
func (r *NavigationRecord) MessageFrameTime() float64 {
	return r.data[fldFrameTime]
}

// uraValues are the GPS URA index upper bounds in meters (IS-GPS-200 20.3.3.3.1.1).
var uraValues = []float64{
	2.4, 3.4, 4.85, 6.85, 9.65, 13.65, 24.0, 48.0, 96.0, 192.0,
	384.0, 768.0, 1536.0, 3072.0, 6144.0,
}

// URAIndex returns the user range accuracy index matching the broadcast
// accuracy field.
func (r *NavigationRecord) URAIndex() int {
	v := r.data[fldAccuracy]
	for i, bound := range uraValues {
		if v <= bound {
			return i
		}
	}
	return len(uraValues)
}

// AccuracyVariance returns the a-priori ephemeris variance (m^2) derived
// from the broadcast accuracy field. Galileo broadcasts SISA in meters
// directly; the other Keplerian constellations broadcast a URA bound.
func (r *NavigationRecord) AccuracyVariance() float64 {
	v := r.data[fldAccuracy]
	if r.system == Galileo {
		if v < 0 {
			return 500.0 * 500.0 // no accuracy prediction available
		}
		return v * v
	}
	i := r.URAIndex()
	if i >= len(uraValues) {
		return 6144.0 * 6144.0
	}
	return uraValues[i] * uraValues[i]
}

// String implements the Stringer interface.
func (r *NavigationRecord) String() string {
	return fmt.Sprintf("%s toc %s iode %d", r.ID(), r.toc, r.IODE())
}

// beidouGeo reports whether a BeiDou PRN is a geostationary satellite, which
// uses the inclined-frame rotation in the position algorithm.
func beidouGeo(prn int) bool {
	return prn <= 5 || prn >= 59
}
