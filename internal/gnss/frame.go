package gnss

// frameState is the byte-level classifier state (spec §4.B).
type frameState int

const (
	stateStart frameState = iota
	stateNMEAPayload
	stateNMEAChecksumHi
	stateNMEAChecksumLo
	stateNMEAEndCR
	stateUBXSync2
	stateUBXClass
	stateUBXID
	stateUBXLengthLo
	stateUBXLengthHi
	stateUBXPayload
	stateUBXCKA
	stateUBXCKB
)

// maxPayload bounds the staging buffer shared by NMEA field accumulation
// and UBX payload capture (spec: 96 bytes).
const maxPayload = 96

// frameMachine is the single-threaded byte classifier. It owns no
// knowledge of sentence/message semantics; it only frames and checksums,
// delegating completed fields/frames to the attached processors.
type frameMachine struct {
	state frameState

	nmeaXOR      byte
	nmeaCkHi     byte
	field        [maxPayload]byte
	fieldLen     int
	nmea         *nmeaProcessor

	ubxClass  byte
	ubxID     byte
	ubxLenLo  byte
	ubxLen    int
	ubxGot    int
	ubxCkA    byte
	ubxCkB    byte
	ubxPay    [maxPayload]byte
	ubxPayLen int
	ubx       *ubxProcessor

	binaryAllowed bool
}

func newFrameMachine(nmea *nmeaProcessor, ubx *ubxProcessor, binaryAllowed bool) *frameMachine {
	return &frameMachine{state: stateStart, nmea: nmea, ubx: ubx, binaryAllowed: binaryAllowed}
}

// feed processes a single incoming byte.
func (m *frameMachine) feed(b byte) {
	// Universal restart: '$' in any NMEA state, or Start, begins a new
	// sentence.
	if b == '$' {
		m.startNMEA()
		return
	}

	switch m.state {
	case stateStart:
		if b == 0xB5 && m.binaryAllowed {
			m.state = stateUBXSync2
			return
		}
		// any other byte in Start is ignored

	case stateNMEAPayload:
		switch {
		case b == '*':
			m.state = stateNMEAChecksumHi
		case b == ',':
			m.nmeaXOR ^= b
			m.nmea.field(m.fieldAsString())
			m.fieldLen = 0
		case b >= 0x20 && b <= 0x7F:
			m.nmeaXOR ^= b
			if !m.appendField(b) {
				m.state = stateStart
			}
		default:
			m.state = stateStart
		}

	case stateNMEAChecksumHi:
		hv, ok := hexVal(b)
		if !ok {
			m.state = stateStart
			return
		}
		m.nmeaCkHi = hv
		m.state = stateNMEAChecksumLo

	case stateNMEAChecksumLo:
		lv, ok := hexVal(b)
		if !ok {
			m.state = stateStart
			return
		}
		// final field, if any bytes pending since last comma
		m.nmea.field(m.fieldAsString())
		computed := m.nmeaCkHi<<4 | lv
		if computed != m.nmeaXOR {
			m.state = stateStart
			return
		}
		m.state = stateNMEAEndCR

	case stateNMEAEndCR:
		if b == '\r' {
			// wait for LF below via fallthrough state; accept CR then LF
			m.state = stateNMEAEndCR
			return
		}
		if b == '\n' {
			m.nmea.sentenceComplete()
			m.state = stateStart
			return
		}
		m.state = stateStart

	case stateUBXSync2:
		if b == 0x62 {
			m.state = stateUBXClass
			m.ubxCkA, m.ubxCkB = 0, 0
		} else {
			m.state = stateStart
		}

	case stateUBXClass:
		m.ubxClass = b
		m.ubxAccumulate(b)
		m.state = stateUBXID

	case stateUBXID:
		m.ubxID = b
		m.ubxAccumulate(b)
		m.state = stateUBXLengthLo

	case stateUBXLengthLo:
		m.ubxLenLo = b
		m.ubxAccumulate(b)
		m.state = stateUBXLengthHi

	case stateUBXLengthHi:
		m.ubxLen = int(m.ubxLenLo) | int(b)<<8
		m.ubxAccumulate(b)
		m.ubxGot = 0
		m.ubxPayLen = 0
		if m.ubxLen == 0 {
			m.state = stateUBXCKA
		} else {
			m.state = stateUBXPayload
		}

	case stateUBXPayload:
		m.ubxAccumulate(b)
		if m.ubxPayLen < maxPayload {
			m.ubxPay[m.ubxPayLen] = b
			m.ubxPayLen++
		}
		m.ubxGot++
		if m.ubxGot >= m.ubxLen {
			m.state = stateUBXCKA
		}

	case stateUBXCKA:
		if b != m.ubxCkA {
			m.state = stateStart
			return
		}
		m.state = stateUBXCKB

	case stateUBXCKB:
		if b == m.ubxCkB {
			n := m.ubxPayLen
			if m.ubxLen < n {
				n = m.ubxLen
			}
			m.ubx.message(m.ubxClass, m.ubxID, m.ubxLen, m.ubxPay[:n])
		}
		m.state = stateStart
	}
}

func (m *frameMachine) startNMEA() {
	m.state = stateNMEAPayload
	m.nmeaXOR = 0
	m.fieldLen = 0
	m.nmea.reset()
}

func (m *frameMachine) appendField(b byte) bool {
	if m.fieldLen >= maxPayload {
		return false
	}
	m.field[m.fieldLen] = b
	m.fieldLen++
	return true
}

func (m *frameMachine) fieldAsString() string {
	s := string(m.field[:m.fieldLen])
	m.fieldLen = 0
	return s
}

func (m *frameMachine) ubxAccumulate(b byte) {
	m.ubxCkA += b
	m.ubxCkB += m.ubxCkA
}

func hexVal(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}
