package basemap

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	planCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "basemap_plan_cache_hits_total",
		Help: "The total number of hits on the plan cache",
	})
	planCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "basemap_plan_cache_misses_total",
		Help: "The total number of misses on the plan cache",
	})
	planCacheEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "basemap_plan_cache_evictions_total",
		Help: "The total number of evictions from the plan cache",
	})
	tilesPlanned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "basemap_tiles_planned_total",
		Help: "The total number of tiles enumerated by planners",
	})
)

// A Plan is the tiling of a requested bounding box.
type Plan struct {
	Requested BoundingBox
	Aligned   BoundingBox
	TileSize  TileSize
	Rows      int
	Columns   int
	Tiles     []Tile
}

// All returns an iterator over p's tiles in scan order. It may be ranged over
// any number of times.
func (p *Plan) All() iter.Seq2[int, Tile] {
	return func(yield func(int, Tile) bool) {
		for i, tile := range p.Tiles {
			if !yield(i, tile) {
				return
			}
		}
	}
}

func (p *Plan) clone() *Plan {
	clone := *p
	clone.Tiles = slices.Clone(p.Tiles)
	return &clone
}

// A Planner plans tiles of a fixed size.
type Planner struct {
	mutex     sync.Mutex
	tileSize  TileSize
	naming    naming
	cacheSize int
	planCache *lru.Cache[BoundingBox, *Plan]
}

// A PlannerOption sets an option on a Planner.
type PlannerOption func(*Planner)

// NewPlanner returns a new Planner with the given options. Without
// WithTileSize it plans ArcticNetTileSize tiles.
func NewPlanner(options ...PlannerOption) (*Planner, error) {
	p := &Planner{
		tileSize:  ArcticNetTileSize,
		naming:    defaultNaming,
		cacheSize: 16,
	}
	for _, option := range options {
		option(p)
	}

	if err := p.tileSize.Validate(); err != nil {
		return nil, err
	}
	if p.naming.separator == "" || strings.ContainsAny(p.naming.separator, "/:\\ \t\n") {
		return nil, fmt.Errorf("%w: separator %q", ErrInvalidInput, p.naming.separator)
	}

	var err error
	p.planCache, err = lru.NewWithEvict(p.cacheSize, func(key BoundingBox, value *Plan) {
		planCacheEvictions.Inc()
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func WithCacheSize(cacheSize int) PlannerOption {
	return func(p *Planner) {
		p.cacheSize = cacheSize
	}
}

// WithSeconds includes seconds in tile identifiers.
func WithSeconds(includeSeconds bool) PlannerOption {
	return func(p *Planner) {
		p.naming.includeSeconds = includeSeconds
	}
}

func WithSecondsPolicy(secondsPolicy SecondsPolicy) PlannerOption {
	return func(p *Planner) {
		p.naming.secondsPolicy = secondsPolicy
	}
}

func WithSeparator(separator string) PlannerOption {
	return func(p *Planner) {
		p.naming.separator = separator
	}
}

func WithTileSize(tileSize TileSize) PlannerOption {
	return func(p *Planner) {
		p.tileSize = tileSize
	}
}

// TileSize returns p's tile size.
func (p *Planner) TileSize() TileSize {
	return p.tileSize
}

// AlignBounds expands box to p's tile lattice.
func (p *Planner) AlignBounds(box BoundingBox) (BoundingBox, error) {
	return AlignBounds(box, p.tileSize)
}

// EnumerateTiles returns the tiles of alignedBox in scan order, named with p's
// naming options.
func (p *Planner) EnumerateTiles(alignedBox BoundingBox) ([]Tile, error) {
	tiles, err := p.naming.enumerate(alignedBox, p.tileSize)
	if err != nil {
		return nil, err
	}
	tilesPlanned.Add(float64(len(tiles)))
	return tiles, nil
}

// TileID returns the identifier of the tile whose north-west corner is at lat,
// lon.
func (p *Planner) TileID(lat, lon float64) (string, error) {
	_, _, id, err := p.naming.anchor(lat, lon)
	return id, err
}

// Plan returns the tiles covering box. The returned Plan is owned by the
// caller.
func (p *Planner) Plan(box BoundingBox) (*Plan, error) {
	if plan, ok := p.planCache.Get(box); ok {
		planCacheHits.Inc()
		return plan.clone(), nil
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()

	if plan, ok := p.planCache.Get(box); ok {
		planCacheHits.Inc()
		return plan.clone(), nil
	}

	planCacheMisses.Inc()

	plan, err := p.plan(box)
	if err != nil {
		return nil, err
	}
	p.planCache.Add(box, plan)
	return plan.clone(), nil
}

func (p *Planner) plan(box BoundingBox) (*Plan, error) {
	aligned, err := p.AlignBounds(box)
	if err != nil {
		return nil, err
	}
	rows, columns, err := GridShape(aligned, p.tileSize)
	if err != nil {
		return nil, err
	}
	tiles, err := p.EnumerateTiles(aligned)
	if err != nil {
		return nil, err
	}
	return &Plan{
		Requested: box,
		Aligned:   aligned,
		TileSize:  p.tileSize,
		Rows:      rows,
		Columns:   columns,
		Tiles:     tiles,
	}, nil
}
