package ppp

const (
	// MuGPS is the WGS84 gravitational parameter for GPS users (m^3/s^2),
	// as defined in IS-GPS-200. QZSS and IRNSS use the same value.
	MuGPS = 3.986005e14
	// MuGalileo is the Earth gravitational parameter of the Galileo OS SIS ICD (m^3/s^2).
	MuGalileo = 3.986004418e14
	// MuBeiDou is the CGCS2000 gravitational parameter of the BeiDou ICD (m^3/s^2).
	MuBeiDou = 3.986004418e14
	// MuGlonass is the PZ90 gravitational parameter of the GLONASS ICD (m^3/s^2).
	MuGlonass = 3.9860044e14

	// OmegaEarth is the WGS84 Earth rotation rate (rad/s).
	OmegaEarth = 7.2921151467e-5
	// OmegaBeiDou is the CGCS2000 Earth rotation rate (rad/s).
	OmegaBeiDou = 7.292115e-5
	// OmegaPZ90 is the PZ90 Earth rotation rate used by the GLONASS motion model (rad/s).
	OmegaPZ90 = 7.292115e-5

	// J2Glonass is the second zonal harmonic of the PZ90 geopotential.
	J2Glonass = 1.0826257e-3
	// RadiusGlonass is the PZ90 Earth equatorial radius (m).
	RadiusGlonass = 6378136.0

	// ClockRelativityF is the constant F of the relativistic clock
	// correction Δtr = F·e·√A·sin(Ek), in s/√m.
	ClockRelativityF = -4.442807633e-10

	// SecondsPerWeek is the number of seconds in a GPS week.
	SecondsPerWeek = 604800.0
	halfWeek       = SecondsPerWeek / 2

	// CLight is the speed of light in vacuum (m/s).
	CLight = 2.99792458e8
)
