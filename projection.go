package basemap

import (
	"fmt"
	"io"
	"strconv"

	"github.com/twpayne/go-proj/v10"
)

// A Projector projects geographic coordinates to a projected CRS.
type Projector struct {
	target string
	pj     *proj.PJ
}

// NewProjector returns a Projector from EPSG:4326 to target, which may be any
// CRS definition that PROJ accepts.
func NewProjector(target string) (*Projector, error) {
	pj, err := proj.NewCRSToCRS("epsg:4326", target, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", target, err)
	}
	return &Projector{
		target: target,
		pj:     pj,
	}, nil
}

// Target returns p's target CRS definition.
func (p *Projector) Target() string {
	return p.target
}

// Forward projects coords, each a longitude and latitude, and returns the
// projected x, y pairs. coords is not modified.
func (p *Projector) Forward(coords [][]float64) ([][]float64, error) {
	projected := cloneCoords(coords)
	flipCoords(projected)
	if err := p.pj.ForwardFloat64Slices(projected); err != nil {
		return nil, err
	}
	return projected, nil
}

// Corners returns the closed ring of box's upper left, upper right, lower
// right, and lower left corners in p's target CRS.
func (p *Projector) Corners(box BoundingBox) ([][]float64, error) {
	return p.Forward([][]float64{
		{box.West, box.North},
		{box.East, box.North},
		{box.East, box.South},
		{box.West, box.South},
		{box.West, box.North},
	})
}

// WritePolygon writes ring to w as one "x y" pair per line, the polygon format
// read by grdmask.
func WritePolygon(w io.Writer, ring [][]float64) error {
	for i, coord := range ring {
		line := strconv.FormatFloat(coord[0], 'f', -1, 64) + " " + strconv.FormatFloat(coord[1], 'f', -1, 64)
		if i < len(ring)-1 {
			line += "\n"
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

func cloneCoords(coords [][]float64) [][]float64 {
	clonedCoordsFlat := make([]float64, 2*len(coords))
	clonedCoords := make([][]float64, len(coords))
	for i, coord := range coords {
		copy(clonedCoordsFlat[2*i:2*i+2], coord)
		clonedCoords[i] = clonedCoordsFlat[2*i : 2*i+2]
	}
	return clonedCoords
}

// flipCoords swaps longitude, latitude pairs to EPSG:4326's latitude,
// longitude axis order.
func flipCoords(coords [][]float64) {
	for i, coord := range coords {
		coords[i][0], coords[i][1] = coord[1], coord[0]
	}
}
