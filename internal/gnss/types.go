// Package gnss implements the protocol engine for a combined NMEA-0183 /
// u-blox-style binary GNSS receiver: byte framing, sentence and message
// decoding, multi-frame fix correlation, satellite tracking and the
// receiver configuration driver.
package gnss

import "time"

// Mode selects which wire protocol(s) the framing layer accepts and which
// command table the configuration driver walks on Init.
type Mode int

const (
	ModeNMEA Mode = iota
	ModeMediaTek
	ModeUBlox
)

// Rate is the requested fix output rate in Hz.
type Rate int

const (
	Rate1Hz  Rate = 1
	Rate5Hz  Rate = 5
	Rate10Hz Rate = 10
)

// FixType mirrors the receiver's reported fix dimensionality.
type FixType int

const (
	FixNone FixType = iota
	FixTime
	Fix2D
	Fix3D
)

// FixQuality mirrors the receiver's reported solution quality.
type FixQuality int

const (
	QualityNone FixQuality = iota
	QualityEstimated
	QualityAutonomous
	QualityDifferential
	QualityPrecise
	QualityRTKFloat
	QualityRTKFixed
)

// SatelliteState is the tracking state of a single space vehicle.
type SatelliteState int

const (
	StateSearching SatelliteState = iota
	StateTracking
	StateNavigating
	StateCorrection
)

// DOPSentinel is published in place of a DOP value whose bit is clear.
const DOPSentinel = 9999

// Location mask bits identify which fields of a Location are meaningful on
// a given publish. A clear bit means the corresponding field reads zero (or
// DOPSentinel for the three DOP fields).
const (
	LocTime uint32 = 1 << iota
	LocPosition
	LocAltitude
	LocSpeed
	LocCourse
	LocEHPE
	LocEVPE
	LocPDOP
	LocHDOP
	LocVDOP
	LocNumSV
	LocFixType
	LocFixQuality
	LocGeoidSeparation
	LocCorrection
)

// Location is the single published fix record. The reset state (see Reset)
// has all numeric fields zero except the three DOP fields, which read
// DOPSentinel, and Mask zero; the Go zero value differs from it in the DOPs.
type Location struct {
	YearOffset int // years since 1980
	Month      int
	Day        int
	Hour       int
	Minute     int
	Second     int
	Millis     int

	LatitudeE7  int32 // 1e-7 degrees, signed
	LongitudeE7 int32

	AltitudeMM        int32 // signed millimetres
	GeoidSeparationMM int32

	SpeedMMPerSec int32 // unsigned, mm/s
	CourseE5      int32 // 1e-5 degrees
	ClimbMMPerSec int32 // signed, mm/s

	EHPEMM int32 // millimetres, 1 sigma
	EVPEMM int32

	PDOPHundredths int32
	HDOPHundredths int32
	VDOPHundredths int32

	FixType    FixType
	FixQuality FixQuality
	NumSV      int

	LeapSeconds int

	Mask uint32
}

// Reset returns the Location to its empty/init state.
func (l *Location) Reset() {
	*l = Location{
		PDOPHundredths: DOPSentinel,
		HDOPHundredths: DOPSentinel,
		VDOPHundredths: DOPSentinel,
	}
}

// AsTime reconstructs the fix timestamp as a UTC time.Time, valid only when
// LocTime is set in Mask.
func (l *Location) AsTime() time.Time {
	return time.Date(1980+l.YearOffset, time.Month(l.Month), l.Day,
		l.Hour, l.Minute, l.Second, l.Millis*int(time.Millisecond), time.UTC)
}

// Satellite is a single entry in the in-view table.
type Satellite struct {
	PRN       int
	Elevation int // degrees
	Azimuth   int // degrees
	SNR       int // dB-Hz, 0 if absent
	State     SatelliteState
}

// MaxSatellites bounds the in-view table per cycle (spec: cap 32).
const MaxSatellites = 32

// Seen/expected contribution mask bits — which sentences or binary messages
// feed the current fix cycle.
const (
	SeenGGA uint32 = 1 << iota
	SeenGSAGPS
	SeenGSAGLONASS
	SeenGSVGPS
	SeenGSVGLONASS
	SeenRMC
	SeenGST
	SeenNavDOP
	SeenNavPVT
	SeenNavTimeGPS
	SeenNavSVInfo
	SeenSolution // interlock: location published, satellites not yet
)

// expectedLocationNMEA requires GGA and RMC for a location publish.
const expectedLocationNMEA = SeenGGA | SeenRMC

// expectedLocationUBX requires DOP, PVT and TIMEGPS for a location publish.
const expectedLocationUBX = SeenNavDOP | SeenNavPVT | SeenNavTimeGPS

const expectedSatellitesUBX = SeenNavSVInfo
