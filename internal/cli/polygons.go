package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/twpayne/go-basemap"
)

func newPolygonsCmd(a *app) *cobra.Command {
	var outDir string
	var quiet bool
	polygonsCmd := &cobra.Command{
		Use:   "polygons REGION",
		Short: "Write the projected outline of each tile",
		Long: `Write one polygon file per tile covering REGION into the output directory.
Each file holds the tile's corners in the configured projection, upper left
first, one "x y" pair per line, closed on the first corner.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir == "" {
				return errors.New("--outdir is required")
			}
			plan, err := a.plan(args[0])
			if err != nil {
				return err
			}
			projector, err := basemap.NewProjector(a.cfg.Projection.Target)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o777); err != nil {
				return err
			}

			var bar *progressbar.ProgressBar
			if !quiet {
				bar = progressbar.NewOptions(len(plan.Tiles),
					progressbar.OptionSetWriter(cmd.ErrOrStderr()),
					progressbar.OptionSetDescription("polygons"),
					progressbar.OptionShowCount(),
				)
			}
			for i, tile := range plan.All() {
				filename := filepath.Join(outDir, basemap.PolygonName(tile.ID))
				if err := writePolygonFile(projector, tile, filename); err != nil {
					return err
				}
				a.logger.Debug("wrote polygon", "index", i, "id", tile.ID, "filename", filename)
				if bar != nil {
					if err := bar.Add(1); err != nil {
						return err
					}
				}
			}
			if bar != nil {
				return bar.Finish()
			}
			return nil
		},
	}
	polygonsCmd.Flags().StringVarP(&outDir, "outdir", "D", "", "output directory")
	polygonsCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not show progress")
	return polygonsCmd
}

func writePolygonFile(projector *basemap.Projector, tile basemap.Tile, filename string) (err error) {
	ring, err := projector.Corners(tile.Bounds)
	if err != nil {
		return fmt.Errorf("%s: %w", tile.ID, err)
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()
	return basemap.WritePolygon(file, ring)
}
