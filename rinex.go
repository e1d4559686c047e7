package ppp

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Validity windows for ephemeris selection, seconds from the reference
// epoch (RTKLIB MAXDTOE values, with a one second buffer against rounding).
const (
	maxToeAge        = 7201.0
	maxToeAgeGalileo = 14400.0
	maxToeAgeBeiDou  = 21601.0
	maxToeAgeGlonass = 1801.0
	maxToeAgeSBAS    = 361.0
)

// orbitLines is the number of broadcast-orbit continuation lines of one
// navigation message.
func orbitLines(sys System) int {
	if sys.Keplerian() {
		return 7
	}
	return 3
}

// NavigationReader reads navigation messages from a RINEX 3.x navigation
// file, one NavigationRecord per broadcast message. The reader owns no
// state beyond its stream position and is not safe for concurrent use.
type NavigationReader struct {
	src        io.ReadSeeker
	buf        *bufio.Reader
	version    string
	offset     int64 // bytes consumed from src
	dataStart  int64 // offset of the first line after the header
	pending    string
	hasPending bool
}

// NewNavigationReader opens a RINEX navigation stream and consumes its
// header, leaving the reader positioned at the first record.
func NewNavigationReader(src io.ReadSeeker) (*NavigationReader, error) {
	r := &NavigationReader{src: src, buf: bufio.NewReader(src)}
	if err := r.readHeader(); err != nil {
		return nil, err
	}
	return r, nil
}

// Version returns the RINEX version string of the header.
func (r *NavigationReader) Version() string { return r.version }

func (r *NavigationReader) readHeader() error {
	for {
		line, err := r.readLine()
		if err != nil {
			return errors.Wrap(err, "reading RINEX header")
		}
		switch headerLabel(line) {
		case "RINEX VERSION / TYPE":
			r.version = strings.TrimSpace(line[:9])
			if !strings.HasPrefix(r.version, "3") {
				return errors.Errorf("unsupported RINEX version %q", r.version)
			}
			if len(line) < 21 || line[20] != 'N' {
				return errors.New("not a navigation message file")
			}
		case "END OF HEADER":
			r.dataStart = r.offset
			return nil
		}
	}
}

// headerLabel returns the label of a RINEX header line (columns 61-80).
func headerLabel(line string) string {
	if len(line) < 61 {
		return ""
	}
	return strings.TrimSpace(line[60:])
}

// readLine returns the next line without its terminator, tracking the byte
// offset into the stream.
func (r *NavigationReader) readLine() (string, error) {
	line, err := r.buf.ReadString('\n')
	r.offset += int64(len(line))
	if err != nil {
		if err == io.EOF && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// peekRecordLine returns the first line of the next message, holding it
// back for the next ReadNext or SkipNext.
func (r *NavigationReader) peekRecordLine() (string, error) {
	for !r.hasPending {
		line, err := r.readLine()
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		r.pending = line
		r.hasPending = true
	}
	return r.pending, nil
}

// PeekSystem returns the constellation of the next message without
// consuming it. Returns io.EOF at end of data.
func (r *NavigationReader) PeekSystem() (System, error) {
	line, err := r.peekRecordLine()
	if err != nil {
		return GPS, err
	}
	return SystemFromRINEX(line[0])
}

// ReadNext reads, resolves and returns the next navigation message.
// Returns io.EOF at end of data.
func (r *NavigationReader) ReadNext() (*NavigationRecord, error) {
	line, err := r.peekRecordLine()
	if err != nil {
		return nil, err
	}
	r.hasPending = false
	sys, err := SystemFromRINEX(line[0])
	if err != nil {
		return nil, errors.Wrap(err, "reading navigation message")
	}
	line = padLine(line)
	prn, err := strconv.Atoi(strings.TrimSpace(line[1:3]))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid PRN in %q", line[:23])
	}
	toc, err := parseEpochFields(line, sys.TimeScale())
	if err != nil {
		return nil, errors.Wrapf(err, "invalid time of clock in %q", line[:23])
	}

	var data [recordSlots]float64
	data[fldClockBias] = parseField(line, 23)
	data[fldClockDrift] = parseField(line, 42)
	data[fldClockDriftRate] = parseField(line, 61)
	for i := 0; i < orbitLines(sys); i++ {
		line, err = r.readLine()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, errors.Wrap(err, "truncated navigation message")
		}
		line = padLine(line)
		for j := 0; j < 4; j++ {
			data[3+4*i+j] = parseField(line, 4+19*j)
		}
	}
	if !sys.Keplerian() {
		// RINEX stores the state vector in km, km/s and km/s^2.
		for _, i := range []int{fldPosX, fldVelX, fldAccX, fldPosY, fldVelY, fldAccY, fldPosZ, fldVelZ, fldAccZ} {
			data[i] *= 1000
		}
	}
	return NewNavigationRecord(sys, prn, toc, data[:]), nil
}

// SkipNext reads and discards the next navigation message.
func (r *NavigationReader) SkipNext() error {
	line, err := r.peekRecordLine()
	if err != nil {
		return err
	}
	r.hasPending = false
	sys, err := SystemFromRINEX(line[0])
	if err != nil {
		return errors.Wrap(err, "skipping navigation message")
	}
	for i := 0; i < orbitLines(sys); i++ {
		if _, err = r.readLine(); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return errors.Wrap(err, "truncated navigation message")
		}
	}
	return nil
}

// Rewind sets the reader back to the first record after the header.
func (r *NavigationReader) Rewind() error {
	if _, err := r.src.Seek(r.dataStart, io.SeekStart); err != nil {
		return errors.Wrap(err, "rewinding navigation stream")
	}
	r.buf.Reset(r.src)
	r.offset = r.dataStart
	r.hasPending = false
	return nil
}

// parseEpochFields parses the calendar time of clock of a record line.
func parseEpochFields(line string, scale TimeScale) (Epoch, error) {
	var v [6]int
	for i, span := range [6][2]int{{4, 8}, {9, 11}, {12, 14}, {15, 17}, {18, 20}, {21, 23}} {
		n, err := strconv.Atoi(strings.TrimSpace(line[span[0]:span[1]]))
		if err != nil {
			return Epoch{}, err
		}
		v[i] = n
	}
	t := time.Date(v[0], time.Month(v[1]), v[2], v[3], v[4], v[5], 0, time.UTC)
	return NewEpoch(t, scale), nil
}

// parseField parses one 19-column floating point field. RINEX writers emit
// Fortran D exponents and leave unused fields blank; blank or malformed
// fields read as zero, matching the permissive original reader.
func parseField(line string, start int) float64 {
	s := strings.TrimSpace(line[start : start+19])
	if s == "" {
		return 0
	}
	s = strings.NewReplacer("D", "E", "d", "E").Replace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// padLine pads a line with spaces to the full RINEX record width.
func padLine(line string) string {
	if len(line) >= 80 {
		return line
	}
	return line + strings.Repeat(" ", 80-len(line))
}

// EphemerisSet indexes navigation records by satellite, ordered as read.
type EphemerisSet map[SatelliteID][]*NavigationRecord

// ReadAll reads every navigation message of a RINEX stream into a set.
func ReadAll(src io.ReadSeeker) (EphemerisSet, error) {
	r, err := NewNavigationReader(src)
	if err != nil {
		return nil, err
	}
	set := EphemerisSet{}
	for {
		rec, err := r.ReadNext()
		if err == io.EOF {
			return set, nil
		}
		if err != nil {
			return nil, err
		}
		set[rec.ID()] = append(set[rec.ID()], rec)
	}
}

// Select returns the record of the given satellite whose reference epoch is
// nearest the evaluation epoch, within the constellation's validity window.
func (s EphemerisSet) Select(id SatelliteID, epoch Epoch) (*NavigationRecord, error) {
	recs, ok := s[id]
	if !ok {
		return nil, errors.Errorf("no ephemerides for %s", id)
	}
	best := -1
	bestAge := maxAge(id.System)
	for i, rec := range recs {
		age := epoch.Sub(rec.ReferenceEpoch())
		if age < 0 {
			age = -age
		}
		if age < bestAge {
			bestAge = age
			best = i
		}
	}
	if best < 0 {
		return nil, errors.Errorf("no valid ephemeris for %s at %s", id, epoch)
	}
	return recs[best], nil
}

func maxAge(sys System) float64 {
	switch sys {
	case Galileo:
		return maxToeAgeGalileo
	case BeiDou:
		return maxToeAgeBeiDou
	case Glonass:
		return maxToeAgeGlonass
	case SBAS:
		return maxToeAgeSBAS
	}
	return maxToeAge
}
