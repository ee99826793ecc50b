package gnss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnsigned(t *testing.T) {
	v, ok := parseUnsigned("123")
	require.True(t, ok)
	assert.EqualValues(t, 123, v)

	_, ok = parseUnsigned("12a")
	assert.False(t, ok)

	_, ok = parseUnsigned("")
	assert.False(t, ok)
}

func TestParseFixed(t *testing.T) {
	v, ok := parseFixed("022.4", 2)
	require.True(t, ok)
	assert.EqualValues(t, 2240, v)

	v, ok = parseFixed("084.4", 5)
	require.True(t, ok)
	assert.EqualValues(t, 8440000, v)

	v, ok = parseFixed("545.4", 3)
	require.True(t, ok)
	assert.EqualValues(t, 545400, v)

	_, ok = parseFixed("1.2.3", 2)
	assert.False(t, ok)
}

func TestParseTime(t *testing.T) {
	h, m, s, ms, ok := parseTime("123519")
	require.True(t, ok)
	assert.Equal(t, 12, h)
	assert.Equal(t, 35, m)
	assert.Equal(t, 19, s)
	assert.Equal(t, 0, ms)

	_, _, _, _, ok = parseTime("245959")
	assert.False(t, ok) // hour out of range

	_, _, _, _, ok = parseTime("125960.500")
	require.True(t, ok)
}

func TestParseLatitudeLongitude(t *testing.T) {
	lat, ok := parseLatitude("4807.038")
	require.True(t, ok)
	assert.EqualValues(t, 481173000, lat) // 48e7 + round(07.038e7/60) = 48e7 + 1173000

	lon, ok := parseLongitude("01131.000")
	require.True(t, ok)
	assert.EqualValues(t, 115166667, lon)

	_, ok = parseLatitude("9000.000")
	assert.False(t, ok) // degree out of range
}

func TestISqrt32(t *testing.T) {
	assert.EqualValues(t, 0, isqrt32(0))
	assert.EqualValues(t, 3, isqrt32(9))
	assert.EqualValues(t, 4, isqrt32(20))
}
