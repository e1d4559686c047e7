package ppp

import "fmt"

// System identifies a satellite constellation.
type System uint8

// The constellations of RINEX 3.x navigation files.
const (
	GPS System = iota
	Glonass
	Galileo
	BeiDou
	QZSS
	SBAS
	IRNSS
)

// SystemFromRINEX returns the constellation for a RINEX satellite system character.
func SystemFromRINEX(c byte) (System, error) {
	switch c {
	case 'G':
		return GPS, nil
	case 'R':
		return Glonass, nil
	case 'E':
		return Galileo, nil
	case 'C':
		return BeiDou, nil
	case 'J':
		return QZSS, nil
	case 'S':
		return SBAS, nil
	case 'I':
		return IRNSS, nil
	}
	return GPS, fmt.Errorf("unknown satellite system identifier %q", c)
}

// RINEX returns the RINEX 3.x satellite system character.
func (s System) RINEX() byte {
	return [...]byte{'G', 'R', 'E', 'C', 'J', 'S', 'I'}[s]
}

// String implements the Stringer interface.
func (s System) String() string {
	switch s {
	case GPS:
		return "GPS"
	case Glonass:
		return "GLONASS"
	case Galileo:
		return "Galileo"
	case BeiDou:
		return "BeiDou"
	case QZSS:
		return "QZSS"
	case SBAS:
		return "SBAS"
	case IRNSS:
		return "IRNSS"
	}
	return fmt.Sprintf("System(%d)", uint8(s))
}

// Keplerian reports whether the constellation broadcasts Keplerian elements.
// GLONASS and SBAS broadcast a position/velocity/acceleration state instead.
func (s System) Keplerian() bool {
	switch s {
	case Glonass, SBAS:
		return false
	}
	return true
}

// Mu returns the Earth gravitational parameter of the constellation's
// reference frame (m^3/s^2).
func (s System) Mu() float64 {
	switch s {
	case Glonass:
		return MuGlonass
	case Galileo:
		return MuGalileo
	case BeiDou:
		return MuBeiDou
	}
	return MuGPS
}

// RotationRate returns the Earth rotation rate of the constellation's
// reference frame (rad/s).
func (s System) RotationRate() float64 {
	switch s {
	case Glonass:
		return OmegaPZ90
	case BeiDou:
		return OmegaBeiDou
	}
	return OmegaEarth
}

// TimeScale returns the constellation's native time scale.
func (s System) TimeScale() TimeScale {
	switch s {
	case Glonass:
		return GLONASST
	case Galileo:
		return GST
	case BeiDou:
		return BDT
	case QZSS:
		return QZSST
	case IRNSS:
		return IRNSST
	}
	return GPST
}
