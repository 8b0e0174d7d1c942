package basemap

import (
	"fmt"
	"math"
)

const (
	// maxSeconds bounds the whole numbers of seconds that float64 represents
	// exactly.
	maxSeconds = 1 << 53

	// secondsEpsilon and relativeSecondsEpsilon absorb floating point error in
	// values that are a whole number of seconds, such as tile anchors computed
	// as multiples of a step.
	secondsEpsilon         = 1e-9
	relativeSecondsEpsilon = 1e-14
)

// An Axis selects the hemisphere letters used for a coordinate.
type Axis int

const (
	Latitude Axis = iota + 1
	Longitude
)

func (a Axis) String() string {
	switch a {
	case Latitude:
		return "latitude"
	case Longitude:
		return "longitude"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// A SecondsPolicy controls how fractional seconds are discarded.
type SecondsPolicy int

const (
	TruncateSeconds SecondsPolicy = iota
	RoundSeconds
)

func (p SecondsPolicy) String() string {
	switch p {
	case TruncateSeconds:
		return "truncate"
	case RoundSeconds:
		return "round"
	default:
		return fmt.Sprintf("SecondsPolicy(%d)", int(p))
	}
}

// ParseSecondsPolicy parses "truncate" or "round".
func ParseSecondsPolicy(s string) (SecondsPolicy, error) {
	switch s {
	case "truncate", "":
		return TruncateSeconds, nil
	case "round":
		return RoundSeconds, nil
	default:
		return 0, fmt.Errorf("%w: seconds policy %q", ErrInvalidInput, s)
	}
}

// A DMS is an unsigned degrees, minutes, seconds value with its hemisphere.
type DMS struct {
	Degrees    uint
	Minutes    uint
	Seconds    uint
	Hemisphere byte
}

func (d DMS) String() string {
	return fmt.Sprintf("%d°%02d'%02d\"%c", d.Degrees, d.Minutes, d.Seconds, d.Hemisphere)
}

// ToSexagesimal converts the magnitude of value to degrees, minutes, and
// seconds, truncating fractional seconds. The sign of value is discarded.
// Values of more than 2^53 seconds are rejected.
func ToSexagesimal(value float64) (degrees, minutes, seconds int, err error) {
	return ToSexagesimalPolicy(value, TruncateSeconds)
}

// ToSexagesimalPolicy is like ToSexagesimal but discards fractional seconds
// according to policy. Rounding carries into minutes and degrees.
func ToSexagesimalPolicy(value float64, policy SecondsPolicy) (degrees, minutes, seconds int, err error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, 0, 0, fmt.Errorf("%w: %g", ErrInvalidInput, value)
	}
	exactSeconds := math.Abs(value) * 3600
	if exactSeconds > maxSeconds {
		return 0, 0, 0, fmt.Errorf("%w: %g out of range", ErrInvalidInput, value)
	}
	var totalSeconds float64
	switch policy {
	case TruncateSeconds:
		totalSeconds = truncateSeconds(exactSeconds)
	case RoundSeconds:
		totalSeconds = math.Round(exactSeconds)
	default:
		return 0, 0, 0, fmt.Errorf("%w: %s", ErrInvalidInput, policy)
	}
	total := int64(totalSeconds)
	totalMinutes, s := total/60, total%60
	d, m := totalMinutes/60, totalMinutes%60
	return int(d), int(m), int(s), nil
}

// truncateSeconds returns seconds rounded down, or rounded up when it is
// within floating point error below a whole number.
func truncateSeconds(seconds float64) float64 {
	whole := math.Floor(seconds)
	epsilon := min(max(secondsEpsilon, relativeSecondsEpsilon*seconds), 0.5)
	if seconds-whole >= 1-epsilon {
		whole++
	}
	return whole
}

// ToSexagesimalWithHemisphere converts value to a DMS on axis. Zero is in the
// northern or eastern hemisphere.
func ToSexagesimalWithHemisphere(value float64, axis Axis) (DMS, error) {
	return toDMS(value, axis, TruncateSeconds)
}

func toDMS(value float64, axis Axis, policy SecondsPolicy) (DMS, error) {
	var hemisphere byte
	switch axis {
	case Latitude:
		hemisphere = 'N'
		if value < 0 {
			hemisphere = 'S'
		}
	case Longitude:
		hemisphere = 'E'
		if value < 0 {
			hemisphere = 'W'
		}
	default:
		return DMS{}, fmt.Errorf("%w: %s", ErrInvalidAxis, axis)
	}
	degrees, minutes, seconds, err := ToSexagesimalPolicy(value, policy)
	if err != nil {
		return DMS{}, err
	}
	return DMS{
		Degrees:    uint(degrees),
		Minutes:    uint(minutes),
		Seconds:    uint(seconds),
		Hemisphere: hemisphere,
	}, nil
}
