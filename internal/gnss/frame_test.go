package gnss

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Payload of exactly 96 bytes is accepted; 97 overflows and aborts to Start
// (spec boundary behavior).
func TestFramePayloadOverflowAbortsToStart(t *testing.T) {
	r := NewReceiver(nil)
	r.Init(ModeNMEA, Rate1Hz, 9600, &fakeSender{}, nil, nil, nil)

	field := strings.Repeat("1", 96)
	r.Receive([]byte("$GPGGA," + field))
	assert.Equal(t, stateNMEAPayload, r.frame.state)

	r2 := NewReceiver(nil)
	r2.Init(ModeNMEA, Rate1Hz, 9600, &fakeSender{}, nil, nil, nil)
	field97 := strings.Repeat("1", 97)
	r2.Receive([]byte("$GPGGA," + field97))
	assert.Equal(t, stateStart, r2.frame.state)
}

// Feeding random bytes without '$' or a binary sync keeps the machine in
// Start.
func TestFrameRandomBytesStayInStart(t *testing.T) {
	r := NewReceiver(nil)
	r.Init(ModeNMEA, Rate1Hz, 9600, &fakeSender{}, nil, nil, nil)

	r.Receive([]byte{0x01, 0x02, 0xFF, 'x', 'y', 'z'})
	assert.Equal(t, stateStart, r.frame.state)
}

// Concatenating a GGA and an RMC sentence into one Receive call yields
// exactly one location callback: GGA alone completes nothing, and the RMC
// that follows it completes the fix.
func TestFrameConcatenatedSentencesInOrder(t *testing.T) {
	r := NewReceiver(nil)
	var order []string
	r.Init(ModeNMEA, Rate1Hz, 9600, &fakeSender{}, nil, func(l Location) {
		order = append(order, "loc")
	}, nil)

	gga := nmeaLine("GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,")
	rmc := nmeaLine("GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W")
	combined := append(append([]byte{}, gga...), rmc...)

	r.Receive(combined)
	require.Len(t, order, 1)
}

// UBX frames are rejected in plain NMEA mode (binary not admitted).
func TestFrameBinaryRejectedInNMEAMode(t *testing.T) {
	r := NewReceiver(nil)
	r.Init(ModeNMEA, Rate1Hz, 9600, &fakeSender{}, nil, nil, nil)

	r.Receive(ubxFrame(0x01, 0x04, make([]byte, 18)))
	assert.Equal(t, stateStart, r.frame.state)
	assert.Zero(t, r.seen)
}
