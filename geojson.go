package basemap

import (
	"github.com/paulmach/orb/geojson"
)

// FeatureCollection returns p's tiles as polygon features with their
// identifier, index, row, and column as properties.
func (p *Plan) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	fc.BBox = geojson.NewBBox(p.Aligned.Bound())
	for _, tile := range p.Tiles {
		feature := geojson.NewFeature(tile.Bounds.Bound().ToPolygon())
		feature.ID = tile.ID
		feature.Properties["id"] = tile.ID
		feature.Properties["index"] = tile.Index
		feature.Properties["row"] = tile.Row
		feature.Properties["column"] = tile.Column
		feature.Properties["region"] = tile.Bounds.Region()
		fc.Append(feature)
	}
	return fc
}
