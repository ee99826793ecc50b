package gnss

// Numeric field parsers for NMEA payload fields. Every field arrives as a
// comma-delimited string slice with no terminator of its own; an empty
// string means "field absent" and is rejected by every parser below except
// where the caller explicitly treats absence as a distinct case.

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// parseUnsigned parses a run of decimal digits with no sign and no
// fractional part. Trailing garbage fails the whole field.
func parseUnsigned(field string) (int64, bool) {
	if field == "" {
		return 0, false
	}
	var v int64
	for i := 0; i < len(field); i++ {
		if !isDigit(field[i]) {
			return 0, false
		}
		v = v*10 + int64(field[i]-'0')
	}
	return v, true
}

// parseFixed parses an optionally-fractional decimal field and returns
// integer·10^scale + fraction, the fraction padded or truncated to exactly
// scale digits (excess fractional digits are truncated, not rounded).
func parseFixed(field string, scale int) (int64, bool) {
	if field == "" {
		return 0, false
	}
	dot := -1
	for i := 0; i < len(field); i++ {
		c := field[i]
		if c == '.' {
			if dot != -1 {
				return 0, false
			}
			dot = i
			continue
		}
		if !isDigit(c) {
			return 0, false
		}
	}
	intPart := field
	fracPart := ""
	if dot != -1 {
		intPart = field[:dot]
		fracPart = field[dot+1:]
	}
	var v int64
	for i := 0; i < len(intPart); i++ {
		v = v*10 + int64(intPart[i]-'0')
	}
	for i := 0; i < scale; i++ {
		v *= 10
		if i < len(fracPart) {
			v += int64(fracPart[i] - '0')
		}
	}
	return v, true
}

// parseTime parses an HHMMSS[.sss] field into hour, minute, second and
// milliseconds. Seconds in 0..60 inclusive (60 accepted for a leap second).
func parseTime(field string) (hour, minute, second, millis int, ok bool) {
	if len(field) < 6 {
		return 0, 0, 0, 0, false
	}
	for i := 0; i < 6; i++ {
		if !isDigit(field[i]) {
			return 0, 0, 0, 0, false
		}
	}
	hour = int(field[0]-'0')*10 + int(field[1]-'0')
	minute = int(field[2]-'0')*10 + int(field[3]-'0')
	second = int(field[4]-'0')*10 + int(field[5]-'0')
	if hour > 23 || minute > 59 || second > 60 {
		return 0, 0, 0, 0, false
	}
	millis = 0
	if len(field) > 6 {
		if field[6] != '.' {
			return 0, 0, 0, 0, false
		}
		frac := field[7:]
		for i := 0; i < len(frac); i++ {
			if !isDigit(frac[i]) {
				return 0, 0, 0, 0, false
			}
		}
		for i := 0; i < 3; i++ {
			millis *= 10
			if i < len(frac) {
				millis += int(frac[i] - '0')
			}
		}
	}
	return hour, minute, second, millis, true
}

// parseLatitude parses a DDMM.MMMM… field (degree part in 0..89) into
// signed 1e7-degree units, unsigned (hemisphere sign applied by caller).
func parseLatitude(field string) (int32, bool) {
	return parseDegMin(field, 2, 89)
}

// parseLongitude parses a DDDMM.MMMM… field (degree part in 0..179) into
// signed 1e7-degree units, unsigned (hemisphere sign applied by caller).
func parseLongitude(field string) (int32, bool) {
	return parseDegMin(field, 3, 179)
}

// parseDegMin implements the shared DDMM.MMMM / DDDMM.MMMM conversion:
// degrees·1e7 + round(minutes·1e7 / 60), rounding performed by adding 30
// before the integer division by 60 against the 1e7-scaled minutes value.
func parseDegMin(field string, degDigits int, maxDeg int) (int32, bool) {
	if len(field) < degDigits+2 {
		return 0, false
	}
	degStr := field[:degDigits]
	for i := 0; i < degDigits; i++ {
		if !isDigit(degStr[i]) {
			return 0, false
		}
	}
	deg := 0
	for i := 0; i < degDigits; i++ {
		deg = deg*10 + int(degStr[i]-'0')
	}
	if deg > maxDeg {
		return 0, false
	}
	minutesE7, ok := parseFixed(field[degDigits:], 7)
	if !ok {
		return 0, false
	}
	rounded := (minutesE7 + 30) / 60
	return int32(int64(deg)*1e7 + rounded), true
}

// isqrt32 is an integer square root on a 32-bit unsigned input, used to
// combine latitude/longitude sigma into EHPE.
func isqrt32(x uint32) uint32 {
	if x == 0 {
		return 0
	}
	var r uint32 = x
	var last uint32
	for {
		last = r
		r = (r + x/r) / 2
		if r >= last {
			return last
		}
	}
}
