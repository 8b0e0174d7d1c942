package basemap_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/twpayne/go-basemap"
)

func TestNewProductNames(t *testing.T) {
	actual, err := basemap.NewProductNames("68_45_N_70_30_W", basemap.Bathymetry)
	assert.NoError(t, err)
	assert.Equal(t, basemap.ProductNames{
		Grid:       "68_45_N_70_30_W_Ztopo_lcc.grd",
		Datalist:   "68_45_N_70_30_W_Ztopo_lcc.mb-1",
		Mask:       "68_45_N_70_30_W_Ztopo_lcc_mask.grd",
		TileGrid:   "68_45_N_70_30_W_Ztopo_lcc_tile.grd",
		ESRIGrid:   "68_45_N_70_30_W_Ztopo_lcc_tile.flt",
		Polygon:    "68_45_N_70_30_W_lcc_coord.txt",
		PostScript: "68_45_N_70_30_W_ZtopoSun.ps",
		Projected:  "68_45_N_70_30_W_ZtopoSun_lcc.ps",
		Palette:    "68_45_N_70_30_W_ZtopoSun_lcc.cpt",
		GIF:        "68_45_N_70_30_W_ZtopoSun_lcc.gif",
	}, actual)

	sidescan, err := basemap.NewProductNames("68_45_N_70_30_W", basemap.Sidescan)
	assert.NoError(t, err)
	assert.Equal(t, "68_45_N_70_30_W_Zss_lcc_tile.grd", sidescan.TileGrid)
	assert.Equal(t, actual.Polygon, sidescan.Polygon)

	_, err = basemap.NewProductNames("68_45_N_70_30_W", basemap.DataType(0))
	assert.IsError(t, err, basemap.ErrUnknownDataType)
}

func TestParseDataType(t *testing.T) {
	for _, dataType := range []basemap.DataType{basemap.Bathymetry, basemap.Amplitude, basemap.Sidescan} {
		actual, err := basemap.ParseDataType(dataType.String())
		assert.NoError(t, err)
		assert.Equal(t, dataType, actual)
	}
	actual, err := basemap.ParseDataType("Amplitude")
	assert.NoError(t, err)
	assert.Equal(t, basemap.Amplitude, actual)

	_, err = basemap.ParseDataType("lidar")
	assert.IsError(t, err, basemap.ErrUnknownDataType)
	assert.Equal(t, "DataType(9)", basemap.DataType(9).String())
}

func TestDatalistName(t *testing.T) {
	actual, err := basemap.DatalistName(basemap.BoundingBox{West: -70.3, East: -69.8, South: 68.1, North: 68.6})
	assert.NoError(t, err)
	assert.Equal(t, "mbdatalist_70d18mW_to_69d48mW_and_68d6mN_to_68d36mN.mb-1", actual)

	_, err = basemap.DatalistName(basemap.BoundingBox{West: 1, East: 0, South: 0, North: 1})
	assert.IsError(t, err, basemap.ErrInvalidBoundingBox)
}
