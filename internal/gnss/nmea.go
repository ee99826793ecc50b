package gnss

import "strings"

// nmeaProcessor implements component C: it accumulates the comma-delimited
// fields of one sentence (delivered by the framing layer field-by-field)
// and, on the terminating CRLF, dispatches by sentence id into the shared
// Receiver state.
type nmeaProcessor struct {
	rx     *Receiver
	fields []string

	gsvDeclared int
	gsvTotalMsg int
	gsvStored   int
	gsvActive   bool
	gsvTalker   byte // 'P' GPS, 'L' GLONASS
}

func newNMEAProcessor(rx *Receiver) *nmeaProcessor {
	return &nmeaProcessor{rx: rx}
}

func (p *nmeaProcessor) reset() {
	p.fields = p.fields[:0]
}

func (p *nmeaProcessor) field(s string) {
	p.fields = append(p.fields, s)
}

// sentenceComplete is called by the framing layer only once the trailing
// XOR checksum has verified; it is therefore the "valid frame observed"
// hook the configuration driver's MTK baud-rate handshake waits on.
func (p *nmeaProcessor) sentenceComplete() {
	if len(p.fields) == 0 {
		return
	}
	head := p.fields[0]
	rest := p.fields[1:]

	p.rx.cfg.onValidFrame(true)

	if head == "PMTK001" {
		p.handlePMTK(rest)
		return
	}
	if len(head) < 5 {
		return // unrecognized leading field: Skip sink, no side effects
	}
	talker := head[:2]
	sentenceID := head[2:5]

	switch sentenceID {
	case "GGA":
		p.handleGGA(talker, rest)
	case "GSA":
		p.handleGSA(talker, rest)
	case "GST":
		p.handleGST(rest)
	case "GSV":
		p.handleGSV(talker, rest)
	case "RMC":
		p.handleRMC(rest)
	}
	// any other sentence id: Skip sink, no mutation
}

func (p *nmeaProcessor) handleGGA(talker string, f []string) {
	_ = talker
	p.rx.resetSatelliteGroup()
	p.rx.seen |= SeenGGA

	if len(f) > 0 {
		if h, m, s, ms, ok := parseTime(f[0]); ok {
			p.rx.noteTime(h, m, s)
			p.rx.loc.Hour, p.rx.loc.Minute, p.rx.loc.Second, p.rx.loc.Millis = h, m, s, ms
			p.rx.loc.Mask |= LocTime
		} else {
			p.rx.correlate()
			return
		}
	}
	if len(f) > 2 {
		if lat, ok := parseLatitude(f[1]); ok {
			if f[2] == "S" {
				lat = -lat
			}
			p.rx.loc.LatitudeE7 = lat
			p.rx.haveLat = true
		}
	}
	if len(f) > 4 {
		if lon, ok := parseLongitude(f[3]); ok {
			if f[4] == "W" {
				lon = -lon
			}
			p.rx.loc.LongitudeE7 = lon
			p.rx.haveLon = true
		}
	}
	if p.rx.haveLat && p.rx.haveLon {
		p.rx.loc.Mask |= LocPosition
	}
	if len(f) > 5 {
		if q, ok := parseUnsigned(f[5]); ok {
			p.rx.loc.FixQuality = ggaQualityToFixQuality(int(q))
			p.rx.loc.Mask |= LocFixQuality
		}
	}
	// f[6] number-of-SVs intentionally skipped: see design notes.
	if len(f) > 7 {
		if hdop, ok := parseFixed(f[7], 2); ok {
			p.rx.loc.HDOPHundredths = int32(hdop)
			p.rx.loc.Mask |= LocHDOP
		}
	}
	if len(f) > 8 {
		if alt, ok := parseFixed(f[8], 3); ok {
			p.rx.loc.AltitudeMM = int32(alt)
			p.rx.loc.Mask |= LocAltitude
		}
	}
	if len(f) > 10 {
		if gs, ok := parseFixed(f[10], 3); ok {
			p.rx.loc.GeoidSeparationMM = int32(gs)
			p.rx.loc.Mask |= LocGeoidSeparation
		}
	}
	p.rx.correlate()
}

func ggaQualityToFixQuality(q int) FixQuality {
	switch q {
	case 1:
		return QualityAutonomous
	case 2:
		return QualityDifferential
	case 3:
		return QualityPrecise
	case 4:
		return QualityRTKFixed
	case 5:
		return QualityRTKFloat
	case 6:
		return QualityEstimated
	default:
		return QualityNone
	}
}

func (p *nmeaProcessor) handleGSA(talker string, f []string) {
	if len(talker) < 2 {
		return
	}
	var tag uint32
	switch talker[1] {
	case 'L':
		tag = SeenGSAGLONASS
	default:
		tag = SeenGSAGPS
	}
	p.rx.seen |= tag

	if len(f) < 2 {
		p.rx.correlate()
		return
	}
	if fixMode, ok := parseUnsigned(f[1]); ok {
		switch fixMode {
		case 1:
			p.rx.loc.FixType = FixNone
		case 2:
			p.rx.loc.FixType = Fix2D
		case 3:
			p.rx.loc.FixType = Fix3D
		}
		p.rx.loc.Mask |= LocFixType
	}

	used := 0
	for i := 2; i < 14 && i < len(f); i++ {
		prn, ok := parseUnsigned(f[i])
		if !ok || prn < 1 || prn > 96 {
			continue
		}
		idx := int(prn) - 1
		p.rx.gsaUsed[idx/32] |= 1 << uint(idx%32)
		used++
	}
	p.rx.loc.NumSV = used
	p.rx.loc.Mask |= LocNumSV

	if len(f) > 14 {
		if v, ok := parseFixed(f[14], 2); ok {
			p.rx.loc.PDOPHundredths = int32(v)
			p.rx.loc.Mask |= LocPDOP
		}
	}
	if len(f) > 15 {
		if v, ok := parseFixed(f[15], 2); ok {
			p.rx.loc.HDOPHundredths = int32(v)
			p.rx.loc.Mask |= LocHDOP
		}
	}
	if len(f) > 16 {
		if v, ok := parseFixed(f[16], 2); ok {
			p.rx.loc.VDOPHundredths = int32(v)
			p.rx.loc.Mask |= LocVDOP
		}
	}
	p.rx.correlate()
}

func (p *nmeaProcessor) handleGST(f []string) {
	p.rx.seen |= SeenGST
	if len(f) > 0 {
		if h, m, s, _, ok := parseTime(f[0]); ok {
			p.rx.noteTime(h, m, s)
		}
	}
	var sigLat, sigLon int64
	var haveLat, haveLon bool
	if len(f) > 4 {
		if v, ok := parseFixed(f[4], 3); ok {
			sigLat, haveLat = v, true
		}
	}
	if len(f) > 5 {
		if v, ok := parseFixed(f[5], 3); ok {
			sigLon, haveLon = v, true
		}
	}
	if haveLat && haveLon {
		ehpe := isqrt32(uint32(sigLat*sigLat + sigLon*sigLon))
		p.rx.loc.EHPEMM = int32(ehpe)
		p.rx.loc.Mask |= LocEHPE
	}
	if len(f) > 6 {
		if v, ok := parseFixed(f[6], 3); ok {
			p.rx.loc.EVPEMM = int32(v)
			p.rx.loc.Mask |= LocEVPE
		}
	}
	p.rx.correlate()
}

func (p *nmeaProcessor) handleGSV(talker string, f []string) {
	if len(talker) < 2 {
		return
	}
	var tag uint32
	constellation := byte('P')
	if talker[1] == 'L' {
		tag = SeenGSVGLONASS
		constellation = 'L'
	} else {
		tag = SeenGSVGPS
	}

	if len(f) < 3 {
		return
	}
	totalMsg, ok1 := parseUnsigned(f[0])
	current, ok2 := parseUnsigned(f[1])
	declared, ok3 := parseUnsigned(f[2])
	if !ok1 || !ok2 || !ok3 {
		return
	}

	if current == 1 || !p.gsvActive || p.gsvTalker != constellation {
		p.rx.resetSatelliteGroup()
		p.gsvStored = 0
		p.gsvDeclared = int(declared)
		p.gsvTotalMsg = int(totalMsg)
		p.gsvTalker = constellation
		p.gsvActive = true
	}

	if int(totalMsg) != p.gsvTotalMsg || int(declared) != p.gsvDeclared || int(current) != p.gsvStored/4+1 {
		p.gsvActive = false
		p.rx.resetSatelliteGroup()
		return
	}

	rest := f[3:]
	for i := 0; i+4 <= len(rest); i += 4 {
		prn, ok := parseUnsigned(rest[i])
		if !ok {
			continue
		}
		elev, _ := parseUnsigned(rest[i+1])
		azim, _ := parseUnsigned(rest[i+2])
		snrField := rest[i+3]
		state := StateSearching
		snr := 0
		if snrField != "" {
			if v, ok := parseUnsigned(snrField); ok {
				snr = int(v)
				state = StateTracking
			}
		}
		p.rx.addSatellite(Satellite{
			PRN:       int(prn),
			Elevation: int(elev),
			Azimuth:   int(azim),
			SNR:       snr,
			State:     state,
		})
		p.gsvStored++
	}

	if declared == 0 {
		p.rx.seen |= tag
		p.rx.correlate()
		return
	}

	if p.gsvStored >= p.gsvDeclared {
		p.rx.seen |= tag
		p.gsvActive = false
		p.rx.correlate()
	}
}

func (p *nmeaProcessor) handleRMC(f []string) {
	p.rx.seen |= SeenRMC
	if len(f) > 0 {
		if h, m, s, _, ok := parseTime(f[0]); ok {
			p.rx.noteTime(h, m, s)
		}
	}
	status := ""
	if len(f) > 1 {
		status = f[1]
	}
	if len(f) > 2 {
		if lat, ok := parseLatitude(f[2]); ok {
			if len(f) > 3 && f[3] == "S" {
				lat = -lat
			}
			p.rx.loc.LatitudeE7 = lat
			p.rx.haveLat = true
		}
	}
	if len(f) > 4 {
		if lon, ok := parseLongitude(f[4]); ok {
			if len(f) > 5 && f[5] == "W" {
				lon = -lon
			}
			p.rx.loc.LongitudeE7 = lon
			p.rx.haveLon = true
		}
	}
	if p.rx.haveLat && p.rx.haveLon {
		p.rx.loc.Mask |= LocPosition
	}
	if len(f) > 6 {
		if v, ok := parseFixed(f[6], 2); ok {
			speed := (v*1852 + 1800) / 3600
			p.rx.loc.SpeedMMPerSec = int32(speed)
			p.rx.loc.Mask |= LocSpeed
		}
	}
	if len(f) > 7 {
		if v, ok := parseFixed(f[7], 5); ok {
			p.rx.loc.CourseE5 = int32(v)
			p.rx.loc.Mask |= LocCourse
		}
	}
	if len(f) > 8 && len(f[8]) == 6 {
		d := f[8]
		day := int(d[0]-'0')*10 + int(d[1]-'0')
		month := int(d[2]-'0')*10 + int(d[3]-'0')
		yy := int(d[4]-'0')*10 + int(d[5]-'0')
		year := 1900 + yy
		switch {
		case yy <= 79:
			year = 2000 + yy
		default:
			year = 1900 + yy
		}
		p.rx.loc.Day = day
		p.rx.loc.Month = month
		p.rx.loc.YearOffset = year - 1980
		p.rx.loc.Mask |= LocTime
	}
	if status == "V" {
		p.rx.loc.FixType = FixNone
		p.rx.loc.FixQuality = QualityNone
		p.rx.loc.Mask |= LocFixType | LocFixQuality
	} else if status == "A" && p.rx.loc.FixQuality == QualityNone {
		p.rx.loc.FixQuality = QualityAutonomous
		p.rx.loc.Mask |= LocFixQuality
	}
	p.rx.correlate()
}

func (p *nmeaProcessor) handlePMTK(f []string) {
	if len(f) < 2 {
		return
	}
	cmdID, ok1 := parseUnsigned(f[0])
	status, ok2 := parseUnsigned(f[1])
	if !ok1 || !ok2 {
		return
	}
	p.rx.cfg.ackMTK(int(cmdID), status == 3)
}

// pmtkCommandNumber extracts the 3-digit command number embedded in a
// "$PMTKnnn,..." string. The command tables do not call it: buildMTK is
// given the number directly.
func pmtkCommandNumber(s string) (int, bool) {
	s = strings.TrimPrefix(s, "$PMTK")
	comma := strings.IndexByte(s, ',')
	if comma == -1 {
		comma = strings.IndexByte(s, '*')
	}
	if comma == -1 {
		return 0, false
	}
	return int(mustUnsigned(s[:comma])), true
}

func mustUnsigned(s string) int64 {
	v, _ := parseUnsigned(s)
	return v
}
