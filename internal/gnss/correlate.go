package gnss

// Fix correlator (component E): tracks the seen/expected contribution
// masks and decides when a complete location, and subsequently a complete
// satellite table, is ready to publish.

// noteTime applies the "new time resets the cycle" rule: once any sentence
// has recorded a time, a later sentence in the same cycle reporting a
// different time discards the working fix and starts a new cycle.
func (r *Receiver) noteTime(hour, minute, second int) {
	if r.haveTime && (hour != r.timeHour || minute != r.timeMinute || second != r.timeSecond) {
		r.startNewCycle()
	}
	r.haveTime = true
	r.timeHour, r.timeMinute, r.timeSecond = hour, minute, second
}

// checkItow applies the binary-mode equivalent: a mismatched navigation
// time-of-week discards the working fix.
func (r *Receiver) checkItow(itow uint32) {
	if r.haveItow && itow != r.lastItow {
		r.startNewCycle()
	}
	r.haveItow = true
	r.lastItow = itow
}

func (r *Receiver) startNewCycle() {
	r.seen = 0
	r.loc.Reset()
	r.haveLat, r.haveLon = false, false
	r.resetSatelliteGroup()
}

// correlate is invoked after every sentence/message that may complete a
// publishable group.
func (r *Receiver) correlate() {
	if r.seen&SeenSolution == 0 {
		expectedLoc := r.expectedLocation()
		if (r.seen&expectedLoc) == expectedLoc && r.haveLat && r.haveLon {
			r.publishLocation()
			r.seen &^= expectedLoc
			r.seen |= SeenSolution
		}
	}

	if r.seen&SeenSolution != 0 {
		expectedSat := r.expectedSatellites()
		if expectedSat != 0 && (r.seen&expectedSat) == expectedSat {
			r.crossReferenceUsedMask()
			r.publishSatellites()
			r.seen &^= expectedSat | SeenSolution
		}
	}
}

func (r *Receiver) expectedLocation() uint32 {
	if r.expected != 0 {
		return r.expected
	}
	if r.mode == ModeUBlox {
		return expectedLocationUBX
	}
	return expectedLocationNMEA
}

// expectedSatellites is adjusted dynamically: a GSA talker observation adds
// the matching GSV group to what's required before the satellite table is
// considered complete.
func (r *Receiver) expectedSatellites() uint32 {
	if r.mode == ModeUBlox {
		return expectedSatellitesUBX
	}
	var want uint32
	if r.seen&SeenGSAGPS != 0 {
		want |= SeenGSVGPS
	}
	if r.seen&SeenGSAGLONASS != 0 {
		want |= SeenGSVGLONASS
	}
	return want
}

// publishLocation applies the fix-type downgrade rules, snapshots the
// Location, invokes the host callback and resets the working record.
func (r *Receiver) publishLocation() {
	if r.correctionActive {
		r.loc.Mask |= LocCorrection
	} else {
		r.loc.Mask &^= LocCorrection
	}

	switch r.loc.FixType {
	case FixNone, FixTime:
		r.loc.Mask &= LocTime | LocCorrection
	case Fix2D:
		r.loc.Mask &^= LocAltitude | LocEVPE | LocVDOP
	case Fix3D:
		// everything retained
	}
	r.loc.Mask |= LocFixType

	snapshot := r.loc
	zeroUnsetFields(&snapshot)

	if r.onLocation != nil {
		r.onLocation(snapshot)
	}
	if r.logger != nil {
		r.logger.Debugf("gnss: published location type=%d quality=%d numsv=%d", snapshot.FixType, snapshot.FixQuality, snapshot.NumSV)
	}

	r.loc.Reset()
	r.haveLat, r.haveLon = false, false
}

// zeroUnsetFields enforces the invariant that a clear mask bit reads zero
// (or DOPSentinel for the three DOP fields) on the published snapshot.
func zeroUnsetFields(l *Location) {
	if l.Mask&LocTime == 0 {
		l.YearOffset, l.Month, l.Day, l.Hour, l.Minute, l.Second, l.Millis = 0, 0, 0, 0, 0, 0, 0
	}
	if l.Mask&LocPosition == 0 {
		l.LatitudeE7, l.LongitudeE7 = 0, 0
	}
	if l.Mask&LocAltitude == 0 {
		l.AltitudeMM = 0
	}
	if l.Mask&LocGeoidSeparation == 0 {
		l.GeoidSeparationMM = 0
	}
	if l.Mask&LocSpeed == 0 {
		l.SpeedMMPerSec, l.ClimbMMPerSec = 0, 0
	}
	if l.Mask&LocCourse == 0 {
		l.CourseE5 = 0
	}
	if l.Mask&LocEHPE == 0 {
		l.EHPEMM = 0
	}
	if l.Mask&LocEVPE == 0 {
		l.EVPEMM = 0
	}
	if l.Mask&LocPDOP == 0 {
		l.PDOPHundredths = DOPSentinel
	}
	if l.Mask&LocHDOP == 0 {
		l.HDOPHundredths = DOPSentinel
	}
	if l.Mask&LocVDOP == 0 {
		l.VDOPHundredths = DOPSentinel
	}
	if l.Mask&LocNumSV == 0 {
		l.NumSV = 0
	}
	if l.Mask&LocFixQuality == 0 {
		l.FixQuality = QualityNone
	}
}

func (r *Receiver) publishSatellites() {
	snapshot := make([]Satellite, len(r.sats))
	copy(snapshot, r.sats)
	if r.onSatellites != nil {
		r.onSatellites(snapshot)
	}
	r.resetSatelliteGroup()
}
