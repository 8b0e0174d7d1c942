package basemap_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/twpayne/go-basemap"
)

func TestToSexagesimal(t *testing.T) {
	for _, tc := range []struct {
		value           float64
		expectedDegrees int
		expectedMinutes int
		expectedSeconds int
	}{
		{value: 0},
		{value: 68.75, expectedDegrees: 68, expectedMinutes: 45},
		{value: -0.5, expectedMinutes: 30},
		{value: -70.3, expectedDegrees: 70, expectedMinutes: 18},
		{value: 68.1, expectedDegrees: 68, expectedMinutes: 6},
		{value: 0.1 + 0.2, expectedMinutes: 18},
		{value: 10.9999, expectedDegrees: 10, expectedMinutes: 59, expectedSeconds: 59},
		{value: 10.9999999999, expectedDegrees: 10, expectedMinutes: 59, expectedSeconds: 59},
		{value: 359.9999999997, expectedDegrees: 359, expectedMinutes: 59, expectedSeconds: 59},
		{value: 1e9, expectedDegrees: 1000000000},
		{value: -179.99, expectedDegrees: 179, expectedMinutes: 59, expectedSeconds: 24},
		{value: 45.0 + 1.0/60 + 1.6/3600, expectedDegrees: 45, expectedMinutes: 1, expectedSeconds: 1},
	} {
		t.Run(strconv.FormatFloat(tc.value, 'f', -1, 64), func(t *testing.T) {
			degrees, minutes, seconds, err := basemap.ToSexagesimal(tc.value)
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedDegrees, degrees)
			assert.Equal(t, tc.expectedMinutes, minutes)
			assert.Equal(t, tc.expectedSeconds, seconds)
		})
	}
}

func TestToSexagesimalRoundSeconds(t *testing.T) {
	degrees, minutes, seconds, err := basemap.ToSexagesimalPolicy(10.9999, basemap.RoundSeconds)
	assert.NoError(t, err)
	assert.Equal(t, [3]int{11, 0, 0}, [3]int{degrees, minutes, seconds})

	degrees, minutes, seconds, err = basemap.ToSexagesimalPolicy(45.0+1.0/60+1.6/3600, basemap.RoundSeconds)
	assert.NoError(t, err)
	assert.Equal(t, [3]int{45, 1, 2}, [3]int{degrees, minutes, seconds})

	_, _, _, err = basemap.ToSexagesimalPolicy(1, basemap.SecondsPolicy(7))
	assert.IsError(t, err, basemap.ErrInvalidInput)
}

func TestToSexagesimalNonFinite(t *testing.T) {
	for _, value := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, _, _, err := basemap.ToSexagesimal(value)
		assert.IsError(t, err, basemap.ErrInvalidInput)
		_, err = basemap.ToSexagesimalWithHemisphere(value, basemap.Latitude)
		assert.IsError(t, err, basemap.ErrInvalidInput)
	}
}

func TestToSexagesimalOutOfRange(t *testing.T) {
	for _, value := range []float64{3e15, -3e15, 1e300, -math.MaxFloat64} {
		_, _, _, err := basemap.ToSexagesimal(value)
		assert.IsError(t, err, basemap.ErrInvalidInput)
		_, _, _, err = basemap.ToSexagesimalPolicy(value, basemap.RoundSeconds)
		assert.IsError(t, err, basemap.ErrInvalidInput)
		_, err = basemap.ToSexagesimalWithHemisphere(value, basemap.Latitude)
		assert.IsError(t, err, basemap.ErrInvalidInput)
	}

	degrees, minutes, seconds, err := basemap.ToSexagesimal(2e12)
	assert.NoError(t, err)
	assert.Equal(t, [3]int{2000000000000, 0, 0}, [3]int{degrees, minutes, seconds})
}

func TestToSexagesimalWithHemisphere(t *testing.T) {
	for _, tc := range []struct {
		name     string
		value    float64
		axis     basemap.Axis
		expected basemap.DMS
	}{
		{
			name:     "zero_latitude",
			value:    0,
			axis:     basemap.Latitude,
			expected: basemap.DMS{Hemisphere: 'N'},
		},
		{
			name:     "zero_longitude",
			value:    0,
			axis:     basemap.Longitude,
			expected: basemap.DMS{Hemisphere: 'E'},
		},
		{
			name:     "negative_zero_longitude",
			value:    math.Copysign(0, -1),
			axis:     basemap.Longitude,
			expected: basemap.DMS{Hemisphere: 'E'},
		},
		{
			name:     "south",
			value:    -0.5,
			axis:     basemap.Latitude,
			expected: basemap.DMS{Minutes: 30, Hemisphere: 'S'},
		},
		{
			name:     "west",
			value:    -70.5,
			axis:     basemap.Longitude,
			expected: basemap.DMS{Degrees: 70, Minutes: 30, Hemisphere: 'W'},
		},
		{
			name:     "north",
			value:    68.75,
			axis:     basemap.Latitude,
			expected: basemap.DMS{Degrees: 68, Minutes: 45, Hemisphere: 'N'},
		},
		{
			name:     "east",
			value:    123.5125,
			axis:     basemap.Longitude,
			expected: basemap.DMS{Degrees: 123, Minutes: 30, Seconds: 45, Hemisphere: 'E'},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := basemap.ToSexagesimalWithHemisphere(tc.value, tc.axis)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestToSexagesimalWithHemisphereInvalidAxis(t *testing.T) {
	for _, axis := range []basemap.Axis{0, 3, -1} {
		_, err := basemap.ToSexagesimalWithHemisphere(1, axis)
		assert.IsError(t, err, basemap.ErrInvalidAxis)
	}
}

func TestDMSString(t *testing.T) {
	dms, err := basemap.ToSexagesimalWithHemisphere(-70.5125, basemap.Longitude)
	assert.NoError(t, err)
	assert.Equal(t, "70°30'45\"W", dms.String())
}

func TestParseSecondsPolicy(t *testing.T) {
	for _, tc := range []struct {
		s        string
		expected basemap.SecondsPolicy
	}{
		{s: "", expected: basemap.TruncateSeconds},
		{s: "truncate", expected: basemap.TruncateSeconds},
		{s: "round", expected: basemap.RoundSeconds},
	} {
		actual, err := basemap.ParseSecondsPolicy(tc.s)
		assert.NoError(t, err)
		assert.Equal(t, tc.expected, actual)
	}
	_, err := basemap.ParseSecondsPolicy("ceil")
	assert.IsError(t, err, basemap.ErrInvalidInput)
}
