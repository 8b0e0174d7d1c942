package cli

import (
	"github.com/spf13/cobra"

	"github.com/twpayne/go-basemap"
)

type namesResult struct {
	Datalist string      `json:"datalist"`
	DataType string      `json:"dataType"`
	Tiles    []tileNames `json:"tiles"`
}

type tileNames struct {
	Index    int                  `json:"index"`
	ID       string               `json:"id"`
	Region   string               `json:"region"`
	Products basemap.ProductNames `json:"products"`
}

func newNamesCmd(a *app) *cobra.Command {
	var dataTypeName string
	namesCmd := &cobra.Command{
		Use:   "names REGION",
		Short: "Print the datalist and product file names for a region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataType, err := basemap.ParseDataType(dataTypeName)
			if err != nil {
				return err
			}
			plan, err := a.plan(args[0])
			if err != nil {
				return err
			}
			datalist, err := basemap.DatalistName(plan.Requested)
			if err != nil {
				return err
			}

			result := namesResult{
				Datalist: datalist,
				DataType: dataType.String(),
				Tiles:    make([]tileNames, 0, len(plan.Tiles)),
			}
			for i, tile := range plan.All() {
				products, err := basemap.NewProductNames(tile.ID, dataType)
				if err != nil {
					return err
				}
				result.Tiles = append(result.Tiles, tileNames{
					Index:    i,
					ID:       tile.ID,
					Region:   tile.Bounds.Region(),
					Products: products,
				})
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}
	namesCmd.Flags().StringVarP(&dataTypeName, "type", "t", basemap.Bathymetry.String(), "data type (bathymetry, amplitude, sidescan)")
	return namesCmd
}
