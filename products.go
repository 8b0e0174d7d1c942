package basemap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnknownDataType = errors.New("unknown data type")

// A DataType is the kind of survey data rendered into a tile.
type DataType int

const (
	Bathymetry DataType = iota + 1
	Amplitude
	Sidescan
)

var dataTypeNames = map[DataType]string{
	Bathymetry: "bathymetry",
	Amplitude:  "amplitude",
	Sidescan:   "sidescan",
}

var dataTypeSuffixes = map[DataType]string{
	Bathymetry: "_Ztopo",
	Amplitude:  "_Zamp",
	Sidescan:   "_Zss",
}

// ParseDataType parses a data type name.
func ParseDataType(s string) (DataType, error) {
	for dataType, name := range dataTypeNames {
		if strings.EqualFold(s, name) {
			return dataType, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDataType, s)
}

func (t DataType) String() string {
	if name, ok := dataTypeNames[t]; ok {
		return name
	}
	return "DataType(" + strconv.Itoa(int(t)) + ")"
}

// ProductNames are the file names of the products of a single tile, as read
// and written by the external gridding and plotting tools.
type ProductNames struct {
	Grid       string `json:"grid"`       // Raw NetCDF grid.
	Datalist   string `json:"datalist"`   // Per-tile datalist written by the gridder.
	Mask       string `json:"mask"`       // NetCDF mask grid.
	TileGrid   string `json:"tileGrid"`   // Masked NetCDF grid.
	ESRIGrid   string `json:"esriGrid"`   // EHdr float grid.
	Polygon    string `json:"polygon"`    // Projected corner polygon.
	PostScript string `json:"postScript"` // Geographic PostScript map.
	Projected  string `json:"projected"`  // Projected PostScript map.
	Palette    string `json:"palette"`    // Color palette of the projected map.
	GIF        string `json:"gif"`        // Image of the projected map.
}

// NewProductNames returns the product file names for tileID.
func NewProductNames(tileID string, dataType DataType) (ProductNames, error) {
	suffix, ok := dataTypeSuffixes[dataType]
	if !ok {
		return ProductNames{}, fmt.Errorf("%w: %s", ErrUnknownDataType, dataType)
	}
	grid := tileID + suffix + "_lcc"
	psMap := tileID + suffix + "Sun"
	psMapLCC := psMap + "_lcc"
	return ProductNames{
		Grid:       grid + ".grd",
		Datalist:   grid + ".mb-1",
		Mask:       grid + "_mask.grd",
		TileGrid:   grid + "_tile.grd",
		ESRIGrid:   grid + "_tile.flt",
		Polygon:    PolygonName(tileID),
		PostScript: psMap + ".ps",
		Projected:  psMapLCC + ".ps",
		Palette:    psMapLCC + ".cpt",
		GIF:        psMapLCC + ".gif",
	}, nil
}

// PolygonName returns the name of the projected corner polygon of tileID.
func PolygonName(tileID string) string {
	return tileID + "_lcc_coord.txt"
}

// DatalistName returns the name of the sub-datalist holding the survey files
// that intersect box, for example
// mbdatalist_70d18mW_to_69d48mW_and_68d6mN_to_68d36mN.mb-1.
func DatalistName(box BoundingBox) (string, error) {
	if err := box.Validate(); err != nil {
		return "", err
	}
	var parts [4]string
	for i, c := range []struct {
		value float64
		axis  Axis
	}{
		{box.West, Longitude},
		{box.East, Longitude},
		{box.South, Latitude},
		{box.North, Latitude},
	} {
		dms, err := ToSexagesimalWithHemisphere(c.value, c.axis)
		if err != nil {
			return "", err
		}
		parts[i] = fmt.Sprintf("%dd%dm%c", dms.Degrees, dms.Minutes, dms.Hemisphere)
	}
	return "mbdatalist_" + parts[0] + "_to_" + parts[1] + "_and_" + parts[2] + "_to_" + parts[3] + ".mb-1", nil
}
