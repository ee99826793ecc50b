package gnss

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent [][]byte
}

func (f *fakeSender) Send(b []byte) {
	cp := make([]byte, len(b))
	copy(cp, b)
	f.sent = append(f.sent, cp)
}

type fakeTimer struct{ stopped bool }

func (t *fakeTimer) Stop() { t.stopped = true }

type fakeScheduler struct {
	scheduled []func()
	timers    []*fakeTimer
}

func (s *fakeScheduler) Schedule(d time.Duration, fn func()) Timer {
	s.scheduled = append(s.scheduled, fn)
	t := &fakeTimer{}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) fireLast() {
	if len(s.scheduled) == 0 {
		return
	}
	s.scheduled[len(s.scheduled)-1]()
}

func nmeaChecksum(payload string) byte {
	var x byte
	for i := 0; i < len(payload); i++ {
		x ^= payload[i]
	}
	return x
}

func nmeaLine(payload string) []byte {
	cs := nmeaChecksum(payload)
	return []byte("$" + payload + "*" + hexByte(cs) + "\r\n")
}

func hexByte(b byte) string {
	const digits = "0123456789ABCDEF"
	return string([]byte{digits[b>>4], digits[b&0xF]})
}

func ubxFrame(class, id byte, payload []byte) []byte {
	raw := []byte{0xB5, 0x62, class, id, byte(len(payload)), byte(len(payload) >> 8)}
	raw = append(raw, payload...)
	var ckA, ckB byte
	for i := 2; i < len(raw); i++ {
		ckA += raw[i]
		ckB += ckA
	}
	raw = append(raw, ckA, ckB)
	return raw
}

// Scenario 1: a lone well-formed RMC sentence updates the working fix but
// fires no callback (GGA has not been seen).
func TestScenario_RMCAloneNoCallback(t *testing.T) {
	r := NewReceiver(nil)
	var fired bool
	r.Init(ModeNMEA, Rate1Hz, 9600, &fakeSender{}, nil, func(Location) { fired = true }, nil)

	r.Receive(nmeaLine("GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W"))

	assert.False(t, fired)
	assert.NotZero(t, r.seen&SeenRMC)
	assert.Equal(t, 12, r.loc.Hour)
	assert.Equal(t, 35, r.loc.Minute)
	assert.Equal(t, 19, r.loc.Second)
	assert.EqualValues(t, 481173000, r.loc.LatitudeE7)
	assert.EqualValues(t, 115166667, r.loc.LongitudeE7)
	assert.EqualValues(t, 1152, r.loc.SpeedMMPerSec)
	assert.EqualValues(t, 8440000, r.loc.CourseE5)
	assert.Equal(t, 14, r.loc.YearOffset)
	assert.Equal(t, 3, r.loc.Month)
	assert.Equal(t, 23, r.loc.Day)
}

// Scenario 2: GGA + GSA + RMC sharing one timestamp produce a single
// location callback with a 3D fix.
func TestScenario_FullCycleProducesLocation(t *testing.T) {
	r := NewReceiver(nil)
	var got *Location
	r.Init(ModeNMEA, Rate1Hz, 9600, &fakeSender{}, nil, func(l Location) { got = &l }, nil)

	r.Receive(nmeaLine("GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,"))
	r.Receive(nmeaLine("GPGSA,A,3,04,05,,09,12,,,24,,,,,2.5,1.3,2.1"))
	r.Receive(nmeaLine("GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W"))

	require.NotNil(t, got)
	assert.Equal(t, Fix3D, got.FixType)
	assert.Equal(t, 5, got.NumSV)
	assert.NotZero(t, got.Mask&LocTime)
	assert.NotZero(t, got.Mask&LocPosition)
	assert.NotZero(t, got.Mask&LocHDOP)
	assert.NotZero(t, got.Mask&LocPDOP)
	assert.NotZero(t, got.Mask&LocVDOP)
}

// Scenario 3: a corrupted XOR checksum yields no callback and leaves seen
// unchanged.
func TestScenario_BadChecksumNoCallback(t *testing.T) {
	r := NewReceiver(nil)
	var fired bool
	r.Init(ModeNMEA, Rate1Hz, 9600, &fakeSender{}, nil, func(Location) { fired = true }, nil)

	before := r.seen
	r.Receive([]byte("$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*00\r\n"))

	assert.False(t, fired)
	assert.Equal(t, before, r.seen)
}

// Scenario 4: NAV-DOP + NAV-PVT + NAV-TIMEGPS sharing one itow produce a
// single location callback carrying the DOP values.
func TestScenario_BinaryCycleProducesLocation(t *testing.T) {
	r := NewReceiver(nil)
	var got *Location
	r.Init(ModeUBlox, Rate1Hz, 38400, &fakeSender{}, nil, func(l Location) { got = &l }, nil)
	r.cfg.phase = phaseDone // skip init-table bookkeeping for this unit test

	dop := make([]byte, 18)
	putLE32(dop, 0, 1000) // itow
	dop[6], dop[7] = byte(250), 0
	dop[10], dop[11] = byte(200), 0
	dop[12], dop[13] = byte(150), 0
	r.Receive(ubxFrame(0x01, 0x04, dop))

	pvt := make([]byte, 92)
	putLE32(pvt, 0, 1000) // itow
	pvt[11] = 0x03        // valid date+time
	pvt[20] = 3           // 3D fix
	pvt[21] = 0x01        // autonomous
	r.Receive(ubxFrame(0x01, 0x07, pvt))

	timeMsg := make([]byte, 16)
	putLE32(timeMsg, 0, 1000) // itow
	timeMsg[11] = 0x03
	r.Receive(ubxFrame(0x01, 0x20, timeMsg))

	require.NotNil(t, got)
	assert.EqualValues(t, 250, got.PDOPHundredths)
	assert.EqualValues(t, 150, got.HDOPHundredths)
	assert.EqualValues(t, 200, got.VDOPHundredths)
	assert.Equal(t, Fix3D, got.FixType)
}

// Scenario 5: during UBX init, the first valid binary frame advances the
// phase from baud-rate to init-table and Done() reports false.
func TestScenario_UBXInitAdvancesOnFirstFrame(t *testing.T) {
	r := NewReceiver(nil)
	sender := &fakeSender{}
	r.Init(ModeUBlox, Rate1Hz, 38400, sender, &fakeScheduler{}, nil, nil)

	require.Equal(t, phaseUBXBaud, r.cfg.phase)
	assert.False(t, r.Done())

	ack := ubxFrame(0x05, 0x01, []byte{0x06, 0x08})
	r.Receive(ack)

	assert.Equal(t, phaseUBXInit, r.cfg.phase)
	assert.False(t, r.Done())
}

// Scenario 6: a matching ACK-ACK advances the command table and stops the
// retransmit timer; a fired timer instead retransmits the same command.
func TestScenario_AckAdvancesAndTimerRetransmits(t *testing.T) {
	r := NewReceiver(nil)
	sender := &fakeSender{}
	sched := &fakeScheduler{}
	r.Init(ModeUBlox, Rate1Hz, 38400, sender, sched, nil, nil)

	// first valid frame advances baud -> init-table, sending command 0.
	r.Receive(ubxFrame(0x05, 0x01, []byte{0x06, 0x08}))
	require.Equal(t, phaseUBXInit, r.cfg.phase)
	sentBefore := len(sender.sent)

	pending := r.cfg.pendingID
	class, id := byte(pending>>8), byte(pending)

	// matching ack advances the table.
	r.Receive(ubxFrame(0x05, 0x01, []byte{class, id}))
	assert.Greater(t, len(sender.sent), sentBefore)

	// a timer firing on the new pending command retransmits it verbatim.
	beforeRetransmit := len(sender.sent)
	sched.fireLast()
	assert.Equal(t, beforeRetransmit+1, len(sender.sent))
	assert.Equal(t, sender.sent[beforeRetransmit-1], sender.sent[beforeRetransmit])
}
