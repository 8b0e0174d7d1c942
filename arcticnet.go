package basemap

import "slices"

// ArcticNetTileSize is the 30' x 15' tile of the ArcticNet basemap series.
var ArcticNetTileSize = TileSize{
	LonStep: 0.5,
	LatStep: 0.25,
}

// ArcticNetLCC is the Lambert Conformal Conic projection of the ArcticNet
// basemap series.
const ArcticNetLCC = "+proj=lcc +lat_1=70 +lat_2=73 +lat_0=70 +lon_0=-105 +x_0=2000000 +y_0=2000000 +datum=WGS84 +units=m +no_defs"

// NewArcticNetPlanner returns a Planner for ArcticNet basemap tiles.
func NewArcticNetPlanner(options ...PlannerOption) (*Planner, error) {
	return NewPlanner(slices.Concat(
		[]PlannerOption{
			WithTileSize(ArcticNetTileSize),
			WithSeparator("_"),
			WithSecondsPolicy(TruncateSeconds),
		},
		options,
	)...)
}

// NewArcticNetProjector returns a Projector to ArcticNetLCC.
func NewArcticNetProjector() (*Projector, error) {
	return NewProjector(ArcticNetLCC)
}
