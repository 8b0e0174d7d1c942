package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type jsonTile struct {
	Index  int     `json:"index"`
	Row    int     `json:"row"`
	Column int     `json:"column"`
	ID     string  `json:"id"`
	Region string  `json:"region"`
	West   float64 `json:"west"`
	East   float64 `json:"east"`
	South  float64 `json:"south"`
	North  float64 `json:"north"`
}

func newPlanCmd(a *app) *cobra.Command {
	var output string
	planCmd := &cobra.Command{
		Use:   "plan REGION",
		Short: "List the tiles covering a region",
		Long: `List the tiles covering REGION in scan order, rows from north to south and
columns from west to east. Each line holds the tile's index, identifier, and
W/E/S/N region.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := a.plan(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch output {
			case "text":
				for i, tile := range plan.All() {
					a.logger.Debug("tile", "index", i, "id", tile.ID)
					if _, err := fmt.Fprintf(out, "%d\t%s\t%s\n", i, tile.ID, tile.Bounds.Region()); err != nil {
						return err
					}
				}
				return nil
			case "json":
				tiles := make([]jsonTile, 0, len(plan.Tiles))
				for _, tile := range plan.All() {
					tiles = append(tiles, jsonTile{
						Index:  tile.Index,
						Row:    tile.Row,
						Column: tile.Column,
						ID:     tile.ID,
						Region: tile.Bounds.Region(),
						West:   tile.Bounds.West,
						East:   tile.Bounds.East,
						South:  tile.Bounds.South,
						North:  tile.Bounds.North,
					})
				}
				return writeJSON(out, tiles)
			case "geojson":
				return writeJSON(out, plan.FeatureCollection())
			default:
				return fmt.Errorf("%s: unknown output format", output)
			}
		},
	}
	planCmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, json, geojson)")
	return planCmd
}
