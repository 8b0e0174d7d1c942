package basemap

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// gridTolerance is the relative tolerance used when testing whether a
// quotient of degrees is a whole number.
const gridTolerance = 1e-9

// A Tile is one cell of a tiling lattice.
type Tile struct {
	Index  int // Position in scan order, from zero.
	Row    int // From the north.
	Column int // From the west.
	ID     string
	Bounds BoundingBox
	Lat    DMS // North edge.
	Lon    DMS // West edge.
}

// AlignBounds expands box outwards to the nearest multiples of size.
func AlignBounds(box BoundingBox, size TileSize) (BoundingBox, error) {
	if err := box.Validate(); err != nil {
		return BoundingBox{}, err
	}
	if err := size.Validate(); err != nil {
		return BoundingBox{}, err
	}
	return BoundingBox{
		West:  roundDown(box.West, size.LonStep),
		East:  roundUp(box.East, size.LonStep),
		South: roundDown(box.South, size.LatStep),
		North: roundUp(box.North, size.LatStep),
	}, nil
}

// EnumerateTiles returns the tiles of alignedBox in raster scan order, rows
// from north to south and columns from west to east, with identifiers
// truncated to the minute and separated by underscores.
func EnumerateTiles(alignedBox BoundingBox, size TileSize) ([]Tile, error) {
	return defaultNaming.enumerate(alignedBox, size)
}

// GridShape returns the number of rows and columns of alignedBox.
func GridShape(alignedBox BoundingBox, size TileSize) (rows, columns int, err error) {
	if err := alignedBox.Validate(); err != nil {
		return 0, 0, err
	}
	if err := size.Validate(); err != nil {
		return 0, 0, err
	}
	if rows, err = gridCount(alignedBox.Height(), size.LatStep); err != nil {
		return 0, 0, fmt.Errorf("rows: %w", err)
	}
	if columns, err = gridCount(alignedBox.Width(), size.LonStep); err != nil {
		return 0, 0, fmt.Errorf("columns: %w", err)
	}
	return rows, columns, nil
}

// A naming formats tile identifiers.
type naming struct {
	includeSeconds bool
	secondsPolicy  SecondsPolicy
	separator      string
}

var defaultNaming = naming{
	secondsPolicy: TruncateSeconds,
	separator:     "_",
}

func (n naming) enumerate(alignedBox BoundingBox, size TileSize) ([]Tile, error) {
	rows, columns, err := GridShape(alignedBox, size)
	if err != nil {
		return nil, err
	}
	tiles := make([]Tile, 0, rows*columns)
	for r := range rows {
		north := snapZero(alignedBox.North-float64(r)*size.LatStep, size.LatStep)
		south := snapZero(alignedBox.North-float64(r+1)*size.LatStep, size.LatStep)
		for c := range columns {
			west := snapZero(alignedBox.West+float64(c)*size.LonStep, size.LonStep)
			east := snapZero(alignedBox.West+float64(c+1)*size.LonStep, size.LonStep)
			lat, lon, id, err := n.anchor(north, west)
			if err != nil {
				return nil, err
			}
			tiles = append(tiles, Tile{
				Index:  len(tiles),
				Row:    r,
				Column: c,
				ID:     id,
				Bounds: BoundingBox{
					West:  west,
					East:  east,
					South: south,
					North: north,
				},
				Lat: lat,
				Lon: lon,
			})
		}
	}
	return tiles, nil
}

func (n naming) anchor(lat, lon float64) (DMS, DMS, string, error) {
	latDMS, err := toDMS(lat, Latitude, n.secondsPolicy)
	if err != nil {
		return DMS{}, DMS{}, "", err
	}
	lonDMS, err := toDMS(lon, Longitude, n.secondsPolicy)
	if err != nil {
		return DMS{}, DMS{}, "", err
	}
	fields := make([]string, 0, 8)
	fields = n.appendFields(fields, latDMS)
	fields = n.appendFields(fields, lonDMS)
	return latDMS, lonDMS, strings.Join(fields, n.separator), nil
}

func (n naming) appendFields(fields []string, dms DMS) []string {
	fields = append(fields, twoDigits(dms.Degrees), twoDigits(dms.Minutes))
	if n.includeSeconds {
		fields = append(fields, twoDigits(dms.Seconds))
	}
	return append(fields, string(dms.Hemisphere))
}

func twoDigits(u uint) string {
	if u < 10 {
		return "0" + strconv.FormatUint(uint64(u), 10)
	}
	return strconv.FormatUint(uint64(u), 10)
}

// gridCount returns extent/step, which must be a positive whole number.
func gridCount(extent, step float64) (int, error) {
	quotient := extent / step
	if !isIntegral(quotient) || math.Round(quotient) < 1 {
		return 0, fmt.Errorf("%w: %g is not a multiple of %g", ErrGridMisalignment, extent, step)
	}
	return int(math.Round(quotient)), nil
}

func isIntegral(x float64) bool {
	return math.Abs(x-math.Round(x)) <= gridTolerance*max(1, math.Abs(x))
}

// snapZero returns zero for values within rounding error of the equator or
// prime meridian, so that they are named in the positive hemisphere.
func snapZero(x, step float64) float64 {
	if math.Abs(x) <= gridTolerance*step {
		return 0
	}
	return x
}

// roundDown returns the greatest lattice point not greater than x. The
// quotient x/step may be off by one in either direction, so the neighbouring
// lattice points are compared with x directly.
func roundDown(x, step float64) float64 {
	k := math.Floor(x / step)
	if latticePoint(k+1, step) <= x {
		k++
	} else if latticePoint(k, step) > x {
		k--
	}
	return latticePoint(k, step)
}

// roundUp returns the least lattice point not less than x.
func roundUp(x, step float64) float64 {
	k := math.Ceil(x / step)
	if latticePoint(k-1, step) >= x {
		k--
	} else if latticePoint(k, step) < x {
		k++
	}
	return latticePoint(k, step)
}

// latticePoint returns k*step. Steps that are a whole number of seconds are
// multiplied out in seconds, so that the result is the float64 nearest to the
// exact lattice point, as parsed from its decimal form.
func latticePoint(k, step float64) float64 {
	if stepSeconds := step * 3600; isIntegral(stepSeconds) {
		return k * math.Round(stepSeconds) / 3600
	}
	return k * step
}
