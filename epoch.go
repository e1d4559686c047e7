package ppp

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/julian"
)

// TimeScale names the system clock a time value refers to.
type TimeScale uint8

// The native time scales of the supported constellations. GLONASST is
// UTC(SU) based; the others are continuous atomic scales.
const (
	GPST TimeScale = iota
	GLONASST
	GST
	BDT
	QZSST
	IRNSST
)

// String implements the Stringer interface.
func (ts TimeScale) String() string {
	switch ts {
	case GPST:
		return "GPST"
	case GLONASST:
		return "GLONASST"
	case GST:
		return "GST"
	case BDT:
		return "BDT"
	case QZSST:
		return "QZSST"
	case IRNSST:
		return "IRNSST"
	}
	return fmt.Sprintf("TimeScale(%d)", uint8(ts))
}

// weekOrigin is 1980-01-06T00:00:00, the origin of the continuous week count.
var weekOrigin = time.Date(1980, 1, 6, 0, 0, 0, 0, time.UTC)

// Epoch is an instant expressed as a continuous week count since 1980-01-06
// and seconds of week. The scale tag records which system's clock the
// calendar reading belongs to; no conversion between scales is performed
// here, and arithmetic between epochs of different scales is the caller's
// responsibility.
type Epoch struct {
	Scale TimeScale
	Week  int
	Sow   float64
}

// NewEpoch builds an Epoch from a calendar reading of the given scale.
// The wall-clock fields of t are taken at face value.
func NewEpoch(t time.Time, scale TimeScale) Epoch {
	d := t.Sub(weekOrigin).Seconds()
	week := math.Floor(d / SecondsPerWeek)
	return Epoch{Scale: scale, Week: int(week), Sow: d - week*SecondsPerWeek}
}

// Sub returns the signed elapsed seconds e minus o. Both epochs must be
// expressed in the same time scale; this is not validated.
func (e Epoch) Sub(o Epoch) float64 {
	return float64(e.Week-o.Week)*SecondsPerWeek + e.Sow - o.Sow
}

// Add returns the epoch shifted by the given number of seconds, with the
// week count normalized.
func (e Epoch) Add(seconds float64) Epoch {
	sow := e.Sow + seconds
	weeks := math.Floor(sow / SecondsPerWeek)
	return Epoch{Scale: e.Scale, Week: e.Week + int(weeks), Sow: sow - weeks*SecondsPerWeek}
}

// SecondsOfDay returns the seconds elapsed since the start of the epoch's day.
func (e Epoch) SecondsOfDay() float64 {
	return math.Mod(e.Sow, 86400)
}

// Time returns the calendar reading of the epoch. The scale tag is lost.
func (e Epoch) Time() time.Time {
	sec, frac := math.Modf(float64(e.Week)*SecondsPerWeek + e.Sow)
	return weekOrigin.Add(time.Duration(sec)*time.Second + time.Duration(frac*1e9)*time.Nanosecond)
}

// JD returns the Julian date of the epoch's calendar reading.
func (e Epoch) JD() float64 {
	return julian.TimeToJD(e.Time())
}

// MJD returns the modified Julian date of the epoch's calendar reading.
func (e Epoch) MJD() float64 {
	return e.JD() - 2400000.5
}

// String implements the Stringer interface.
func (e Epoch) String() string {
	return fmt.Sprintf("%s (%s week %d sow %.3f)", e.Time().Format("2006-01-02 15:04:05.000"), e.Scale, e.Week, e.Sow)
}

// wrapHalfWeek folds a time difference into (-302400, 302400] seconds by
// whole-week steps. Broadcast reference times are given as seconds of week,
// so an evaluation epoch close to a week boundary legitimately produces
// differences off by one week.
func wrapHalfWeek(dt float64) float64 {
	for dt > halfWeek {
		dt -= SecondsPerWeek
	}
	for dt <= -halfWeek {
		dt += SecondsPerWeek
	}
	return dt
}
