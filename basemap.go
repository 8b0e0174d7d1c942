// Package basemap plans fixed-size basemap tiles over a geographic bounding
// box and names them after their north-west corner.
package basemap

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

var (
	ErrInvalidBoundingBox = errors.New("invalid bounding box")
	ErrInvalidTileSize    = errors.New("invalid tile size")
	ErrGridMisalignment   = errors.New("grid misalignment")
	ErrInvalidAxis        = errors.New("invalid axis")
	ErrInvalidInput       = errors.New("invalid input")
	ErrFractionalStep     = errors.New("fractional tile step")
	ErrInvalidRegion      = errors.New("invalid region")
)

// A BoundingBox is a geographic extent in degrees.
type BoundingBox struct {
	West  float64
	East  float64
	South float64
	North float64
}

// ParseRegion parses a region in GMT's W/E/S/N form.
func ParseRegion(region string) (BoundingBox, error) {
	fields := strings.Split(region, "/")
	if len(fields) != 4 {
		return BoundingBox{}, fmt.Errorf("%w: %q: expected W/E/S/N", ErrInvalidRegion, region)
	}
	values := make([]float64, len(fields))
	for i, field := range fields {
		value, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return BoundingBox{}, fmt.Errorf("%w: %q: %w", ErrInvalidRegion, region, err)
		}
		values[i] = value
	}
	box := BoundingBox{
		West:  values[0],
		East:  values[1],
		South: values[2],
		North: values[3],
	}
	if err := box.Validate(); err != nil {
		return BoundingBox{}, err
	}
	return box, nil
}

// Validate returns an error if b is empty, inverted, or not finite.
func (b BoundingBox) Validate() error {
	for _, value := range []float64{b.West, b.East, b.South, b.North} {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return fmt.Errorf("%w: non-finite bound in %s", ErrInvalidBoundingBox, b.Region())
		}
	}
	if b.West >= b.East {
		return fmt.Errorf("%w: west %g >= east %g", ErrInvalidBoundingBox, b.West, b.East)
	}
	if b.South >= b.North {
		return fmt.Errorf("%w: south %g >= north %g", ErrInvalidBoundingBox, b.South, b.North)
	}
	return nil
}

// Contains returns whether b fully contains other.
func (b BoundingBox) Contains(other BoundingBox) bool {
	return b.West <= other.West && other.East <= b.East &&
		b.South <= other.South && other.North <= b.North
}

func (b BoundingBox) Width() float64 {
	return b.East - b.West
}

func (b BoundingBox) Height() float64 {
	return b.North - b.South
}

// Region returns b in GMT's W/E/S/N form.
func (b BoundingBox) Region() string {
	return strings.Join([]string{
		formatDegrees(b.West),
		formatDegrees(b.East),
		formatDegrees(b.South),
		formatDegrees(b.North),
	}, "/")
}

// Bound returns b as an orb.Bound with longitudes as X and latitudes as Y.
func (b BoundingBox) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.West, b.South},
		Max: orb.Point{b.East, b.North},
	}
}

func (b BoundingBox) String() string {
	return b.Region()
}

// A TileSize is the width and height of a tile in degrees.
type TileSize struct {
	LonStep float64
	LatStep float64
}

// Validate returns an error unless both steps are finite and positive.
func (s TileSize) Validate() error {
	for _, step := range []float64{s.LonStep, s.LatStep} {
		if math.IsNaN(step) || math.IsInf(step, 0) || step <= 0 {
			return fmt.Errorf("%w: %g x %g", ErrInvalidTileSize, s.LonStep, s.LatStep)
		}
	}
	return nil
}

// CheckWholeMinutes returns an error unless both steps are whole numbers of
// minutes. Identifiers truncated to the minute are only unique when this
// holds.
func (s TileSize) CheckWholeMinutes() error {
	return s.checkWhole(60, "minutes")
}

// CheckWholeSeconds is like CheckWholeMinutes for identifiers that include
// seconds.
func (s TileSize) CheckWholeSeconds() error {
	return s.checkWhole(3600, "seconds")
}

func (s TileSize) checkWhole(unitsPerDegree float64, units string) error {
	if err := s.Validate(); err != nil {
		return err
	}
	for _, step := range []float64{s.LonStep, s.LatStep} {
		if !isIntegral(step * unitsPerDegree) {
			return fmt.Errorf("%w: %g degrees is not a whole number of %s", ErrFractionalStep, step, units)
		}
	}
	return nil
}

func formatDegrees(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
