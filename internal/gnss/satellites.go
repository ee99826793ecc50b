package gnss

// Satellite tracker (component F): accumulates the in-view table for the
// current cycle and cross-references the GSA/SVINFO used-mask to flag
// satellites actually contributing to the navigation solution.

// canonicalPRN maps a raw satellite id into the disjoint PRN ranges
// documented in the component design: GPS 1-32, SBAS 120-158, BeiDou
// 159-163 -> 201-205 and 33-64 -> 206-237, QZSS 193-200, GLONASS 65-96 (or
// the "unknown slot" sentinel 255). Inputs already reported in a native
// target range pass through unchanged; only the ambiguous BeiDou ranges
// need remapping to avoid colliding with GPS/GLONASS PRNs.
func canonicalPRN(raw int) int {
	switch {
	case raw >= 159 && raw <= 163:
		return raw + 42 // 159..163 -> 201..205
	case raw >= 33 && raw <= 64:
		return raw + 173 // 33..64 -> 206..237
	default:
		return raw
	}
}

// resetSatelliteGroup clears the in-view table at the start of a new
// GSV (NMEA) or SVINFO (binary) group.
func (r *Receiver) resetSatelliteGroup() {
	r.sats = r.sats[:0]
}

// addSatellite appends an entry to the in-view table, silently dropping
// entries beyond MaxSatellites.
func (r *Receiver) addSatellite(s Satellite) {
	if len(r.sats) >= MaxSatellites {
		return
	}
	r.sats = append(r.sats, s)
}

// crossReferenceUsedMask marks table entries whose PRN is set in the
// running GSA used-mask (or, in binary mode, whose flags already carried
// the Navigating bit) as StateNavigating.
func (r *Receiver) crossReferenceUsedMask() {
	for i := range r.sats {
		prn := r.sats[i].PRN
		if prn < 1 || prn > 96 {
			continue
		}
		idx := prn - 1
		word := idx / 32
		bit := uint32(1) << uint(idx%32)
		if r.gsaUsed[word]&bit != 0 {
			r.sats[i].State = StateNavigating
		}
	}
}
