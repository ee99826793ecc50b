package gnss

import (
	"fmt"
	"time"
)

// Configuration driver (component G): walks a table of canned commands
// after reset, routes acknowledgements, retransmits binary commands on
// timeout, and performs the baud-rate handshake ahead of the main table.

type configPhase int

const (
	phaseDone configPhase = iota
	phaseMTKBaud
	phaseMTKInit
	phaseUBXBaud
	phaseUBXInit
)

const retransmitInterval = 250 * time.Millisecond

// command is one entry of a canned command table: the literal bytes to
// send and the identifier expected back in the matching acknowledgement.
// For binary commands pendingID is (class<<8)|id; for MTK commands it is
// the three-digit PMTK command number. Binary commands alone arm the
// retransmit timer (awaitsTimer).
type command struct {
	raw        []byte
	pendingID  int
	awaitsTimer bool
}

type configDriver struct {
	rx    *Receiver
	phase configPhase
	mode  Mode
	rate  Rate

	table []command
	idx   int

	pendingID int
	busy      bool
	timer     Timer
}

func newConfigDriver(rx *Receiver) *configDriver {
	return &configDriver{rx: rx, phase: phaseDone}
}

// start begins initialization: it sends the baud-rate-change string
// immediately (outside the table walk) and arms the driver to wait for the
// first valid frame in the new mode before installing the init table.
func (c *configDriver) start(mode Mode, rate Rate, baud int) {
	c.mode = mode
	c.rate = rate
	c.idx = 0
	c.table = nil
	c.busy = false

	switch mode {
	case ModeMediaTek:
		c.phase = phaseMTKBaud
		c.send(mtkBaudChangeCommand(baud))
	case ModeUBlox:
		c.phase = phaseUBXBaud
		c.send(ubxBaudChangeFrame(baud))
	default:
		c.phase = phaseDone
		c.rx.seen = 0
		c.rx.expected = steadyStateExpected(mode)
	}
}

func (c *configDriver) send(b []byte) {
	if c.rx.sender != nil {
		c.rx.sender.Send(b)
	}
}

// onValidFrame advances the baud-rate phase into the init-table phase the
// first time a well-formed frame is observed in the target protocol.
func (c *configDriver) onValidFrame(isNMEA bool) {
	switch {
	case c.phase == phaseMTKBaud && isNMEA:
		c.phase = phaseMTKInit
		c.installTable(mtkInitTable(c.rate))
	case c.phase == phaseUBXBaud && !isNMEA:
		c.phase = phaseUBXInit
		c.installTable(ubxInitTable(c.rate))
	}
}

func (c *configDriver) installTable(tbl []command) {
	c.table = tbl
	c.idx = 0
	c.sendNext()
}

func (c *configDriver) sendNext() {
	if c.idx >= len(c.table) {
		c.finish()
		return
	}
	cmd := c.table[c.idx]
	c.pendingID = cmd.pendingID
	c.busy = true
	c.send(cmd.raw)
	if cmd.awaitsTimer && c.rx.scheduler != nil {
		c.armTimer()
	}
}

func (c *configDriver) armTimer() {
	c.timer = c.rx.scheduler.Schedule(retransmitInterval, c.onTimeout)
}

func (c *configDriver) onTimeout() {
	if !c.busy || c.idx >= len(c.table) {
		return
	}
	c.send(c.table[c.idx].raw)
	c.armTimer()
}

func (c *configDriver) ackMTK(cmdID int, ok bool) {
	if !c.busy || cmdID != c.pendingID {
		return
	}
	c.advance()
}

func (c *configDriver) ackUBX(class, id byte, ok bool) {
	key := int(class)<<8 | int(id)
	if !c.busy || key != c.pendingID {
		return
	}
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.advance()
}

func (c *configDriver) advance() {
	c.busy = false
	c.idx++
	c.sendNext()
}

func (c *configDriver) finish() {
	wasInit := c.phase == phaseMTKInit || c.phase == phaseUBXInit
	c.phase = phaseDone
	c.table = nil
	c.idx = 0
	c.busy = false
	if wasInit {
		c.rx.seen = 0
		c.rx.loc.Reset()
		c.rx.expected = steadyStateExpected(c.mode)
	}
}

func (c *configDriver) done() bool {
	return c.phase == phaseDone && !c.busy
}

// runTable accepts a short runtime-reconfiguration table; rejected unless
// the driver is idle.
func (c *configDriver) runTable(tbl []command) bool {
	if !c.done() {
		return false
	}
	c.installTable(tbl)
	return true
}

// steadyStateExpected returns the mode-dependent mask of sentences/messages
// the fix correlator should expect once initialization completes.
func steadyStateExpected(mode Mode) uint32 {
	if mode == ModeUBlox {
		return expectedLocationUBX
	}
	return expectedLocationNMEA
}

// --- command table construction -------------------------------------------------

func mtkChecksum(payload string) byte {
	var x byte
	for i := 0; i < len(payload); i++ {
		x ^= payload[i]
	}
	return x
}

// buildMTK formats a "$PMTKnnn,params*CS\r\n" command and records its
// pending acknowledgement id (PMTK001 echoes this number back).
func buildMTK(number int, params string) command {
	body := fmt.Sprintf("PMTK%03d", number)
	if params != "" {
		body += "," + params
	}
	cs := mtkChecksum(body)
	raw := []byte(fmt.Sprintf("$%s*%02X\r\n", body, cs))
	return command{raw: raw, pendingID: number}
}

func mtkBaudChangeCommand(baud int) []byte {
	return buildMTK(251, fmt.Sprintf("%d", baud)).raw
}

// buildUBX assembles a UBX frame with its Fletcher-8 checksum and records
// the (class,id) pending acknowledgement key.
func buildUBX(class, id byte, payload []byte) command {
	raw := make([]byte, 0, 8+len(payload))
	raw = append(raw, 0xB5, 0x62, class, id, byte(len(payload)), byte(len(payload)>>8))
	raw = append(raw, payload...)
	var ckA, ckB byte
	for i := 2; i < len(raw); i++ {
		ckA += raw[i]
		ckB += ckA
	}
	raw = append(raw, ckA, ckB)
	return command{raw: raw, pendingID: int(class)<<8 | int(id), awaitsTimer: true}
}

func ubxBaudChangeFrame(baud int) []byte {
	payload := make([]byte, 20)
	payload[0] = 1 // port id 1 (UART)
	payload[8] = byte(baud)
	payload[9] = byte(baud >> 8)
	payload[10] = byte(baud >> 16)
	payload[11] = byte(baud >> 24)
	return buildUBX(0x06, 0x00, payload).raw // CFG-PRT
}

func mtkInitTable(rate Rate) []command {
	interval := 1000 / int(rate)
	return []command{
		buildMTK(314, "0,1,0,1,1,0,0,0,0,0,0,0,0,0,0,0,0,0,0"), // CFG-NMEA output set: GGA+RMC(+GSA+GSV)
		buildMTK(220, fmt.Sprintf("%d", interval)),              // CFG-FIX-CTL / update rate
		buildMTK(101, ""),                                       // hot start
	}
}

func ubxInitTable(rate Rate) []command {
	measRate := uint16(1000 / int(rate))
	navRatePayload := make([]byte, 6)
	navRatePayload[0] = byte(measRate)
	navRatePayload[1] = byte(measRate >> 8)
	navRatePayload[2] = 1
	navRatePayload[3] = 0
	navRatePayload[4] = 1
	navRatePayload[5] = 0
	return []command{
		buildUBX(0x06, 0x08, navRatePayload), // CFG-RATE
		buildUBX(0x06, 0x01, []byte{0x01, 0x07, 0x01}), // CFG-MSG: enable NAV-PVT
		buildUBX(0x06, 0x01, []byte{0x01, 0x04, 0x01}), // CFG-MSG: enable NAV-DOP
		buildUBX(0x06, 0x01, []byte{0x01, 0x20, 0x01}), // CFG-MSG: enable NAV-TIMEGPS
		buildUBX(0x06, 0x01, []byte{0x01, 0x30, 0x01}), // CFG-MSG: enable NAV-SVINFO
	}
}

func externalTable(enabled bool) []command {
	v := byte(0)
	if enabled {
		v = 1
	}
	return []command{buildUBX(0x06, 0x39, []byte{0x00, v, 0, 0, 0, 0, 0, 0})} // CFG-GNSS-ish toggle
}

func constellationTable(gps, glonass bool) []command {
	g, r := byte(0), byte(0)
	if gps {
		g = 1
	}
	if glonass {
		r = 1
	}
	return []command{buildUBX(0x06, 0x3E, []byte{0, 0, 0, 0, g, r, 0, 0})} // CFG-GNSS
}

func sbasTable(enabled bool) []command {
	v := byte(0)
	if enabled {
		v = 1
	}
	return []command{buildUBX(0x06, 0x16, []byte{v, 0, 0, 0, 0, 0, 0, 0})} // CFG-SBAS
}

func qzssTable(enabled bool) []command {
	v := byte(0)
	if enabled {
		v = 1
	}
	return []command{buildUBX(0x06, 0x3D, []byte{v, 0, 0, 0})} // CFG-QZSS-ish toggle
}

// sleepTable and wakeTable are no-ops for NMEA and MediaTek: those modes
// have no sleep/wake command, and the original driver returns success
// without sending anything for them (gnss_sleep/gnss_wakeup).
func sleepTable(mode Mode) []command {
	if mode != ModeUBlox {
		return nil
	}
	return []command{buildUBX(0x02, 0x41, []byte{0, 0, 0, 0, 0x02, 0, 0, 0})} // RXM-PMREQ: backup mode
}

func wakeTable(mode Mode) []command {
	if mode != ModeUBlox {
		return nil
	}
	return []command{buildUBX(0x06, 0x11, []byte{0x00, 0x00})} // CFG-RXM: continuous mode
}

// periodicTable composes the runtime periodic-power-management command:
// a 44-byte payload, fully cleared before use (resolving the buffer-clear
// ambiguity noted in the design notes), with on-time and update/search
// periods encoded little-endian at fixed offsets.
func periodicTable(onTime, updatePeriod, searchPeriod time.Duration) []command {
	payload := make([]byte, 44)
	putLE32(payload, 0, uint32(onTime/time.Millisecond))
	putLE32(payload, 4, uint32(updatePeriod/time.Millisecond))
	putLE32(payload, 8, uint32(searchPeriod/time.Millisecond))
	return []command{buildUBX(0x06, 0x86, payload)} // CFG-PMS-ish
}

func putLE32(b []byte, off int, v uint32) {
	b[off] = byte(v)
	b[off+1] = byte(v >> 8)
	b[off+2] = byte(v >> 16)
	b[off+3] = byte(v >> 24)
}
