package gnss

import "time"

// Logger is the diagnostic sink of the core. Every error taxonomy in this
// package is handled locally; Logger is purely observational and never
// changes control flow. The core writes one Debugf line per published
// location; frame discards, nacks and retransmit timeouts are not logged.
// Nil is a valid Logger — all calls become no-ops.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Sender is the host's transmit collaborator (component boundary: the core
// never owns a transport).
type Sender interface {
	Send(b []byte)
}

// Scheduler arms the configuration driver's single retransmit timer.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Timer
}

// Timer is a handle returned by Scheduler.Schedule.
type Timer interface {
	Stop()
}

// LocationFunc is invoked synchronously from Receive when a fix cycle
// completes.
type LocationFunc func(Location)

// SatellitesFunc is invoked synchronously from Receive when a satellite
// table completes, always after the corresponding LocationFunc call.
type SatellitesFunc func([]Satellite)

// Receiver is the public façade (component H) and the shared working state
// for every other component. It is single-threaded and cooperative: all
// mutation happens inside Receive or the Scheduler's timer callback, which
// the host must serialize against each other.
type Receiver struct {
	mode Mode
	rate Rate

	sender    Sender
	scheduler Scheduler
	logger    Logger

	onLocation   LocationFunc
	onSatellites SatellitesFunc

	frame *frameMachine
	nmea  *nmeaProcessor
	ubx   *ubxProcessor
	cfg   *configDriver

	loc      Location
	sats     []Satellite
	seen     uint32
	expected uint32
	gsaUsed  [3]uint32

	haveLat, haveLon bool

	haveTime                     bool
	timeHour, timeMinute, timeSecond int

	haveItow    bool
	lastItow    uint32
	gpsWeek     int
	leapSeconds int

	correctionActive bool
}

// NewReceiver constructs an idle Receiver. logger may be nil.
func NewReceiver(logger Logger) *Receiver {
	r := &Receiver{logger: logger}
	r.nmea = newNMEAProcessor(r)
	r.ubx = newUBXProcessor(r)
	r.cfg = newConfigDriver(r)
	r.loc.Reset()
	return r
}

// Init resets all state and primes the configuration driver for the
// requested mode and output rate, emitting the baud-rate-change command
// through sender.
func (r *Receiver) Init(mode Mode, rate Rate, baud int, sender Sender, scheduler Scheduler, onLocation LocationFunc, onSatellites SatellitesFunc) {
	r.mode = mode
	r.rate = rate
	r.sender = sender
	r.scheduler = scheduler
	r.onLocation = onLocation
	r.onSatellites = onSatellites

	r.loc.Reset()
	r.sats = r.sats[:0]
	r.seen = 0
	r.expected = steadyStateExpected(mode)
	r.gsaUsed = [3]uint32{}
	r.haveLat, r.haveLon = false, false
	r.haveTime = false
	r.haveItow = false

	binaryAllowed := mode == ModeUBlox
	r.frame = newFrameMachine(r.nmea, r.ubx, binaryAllowed)

	r.cfg.start(mode, rate, baud)
}

// Receive feeds raw bytes from the transport into the framing state
// machine. Callbacks may fire synchronously before this call returns.
func (r *Receiver) Receive(data []byte) {
	for _, b := range data {
		r.frame.feed(b)
	}
}

// Done reports whether the configuration driver is idle with no command
// outstanding.
func (r *Receiver) Done() bool {
	return r.cfg.done()
}

// SetExternal enables or disables the external (e.g. assisted) input path.
// Rejected unless Done().
func (r *Receiver) SetExternal(enabled bool) bool {
	return r.cfg.runTable(externalTable(enabled))
}

// SetConstellation selects which constellations the receiver tracks.
// Rejected unless Done().
func (r *Receiver) SetConstellation(gps, glonass bool) bool {
	return r.cfg.runTable(constellationTable(gps, glonass))
}

// SetSBAS enables or disables SBAS augmentation. Rejected unless Done().
func (r *Receiver) SetSBAS(enabled bool) bool {
	return r.cfg.runTable(sbasTable(enabled))
}

// SetQZSS enables or disables QZSS tracking. Rejected unless Done().
func (r *Receiver) SetQZSS(enabled bool) bool {
	return r.cfg.runTable(qzssTable(enabled))
}

// SetPeriodic configures periodic (duty-cycled) power management.
// Rejected unless Done().
func (r *Receiver) SetPeriodic(onTime, updatePeriod, searchPeriod time.Duration) bool {
	return r.cfg.runTable(periodicTable(onTime, updatePeriod, searchPeriod))
}

// SetCorrectionActive records whether a live external correction stream
// (e.g. RTCM over NTRIP) is currently feeding the receiver. The next
// published Location carries the LocCorrection bit accordingly. This is
// purely a host-supplied annotation: the core has no way to observe a
// correction stream on the GNSS/UBX serial line itself.
func (r *Receiver) SetCorrectionActive(active bool) {
	r.correctionActive = active
}

// Sleep requests the receiver enter low-power mode. A no-op (but still
// successful) for NMEA and MediaTek, which have no sleep command. Rejected
// unless Done().
func (r *Receiver) Sleep() bool {
	return r.cfg.runTable(sleepTable(r.mode))
}

// Wake requests the receiver resume from low-power mode. A no-op (but still
// successful) for NMEA and MediaTek. Rejected unless Done().
func (r *Receiver) Wake() bool {
	return r.cfg.runTable(wakeTable(r.mode))
}
