package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/twpayne/go-basemap"
)

func newDMSCmd(a *app) *cobra.Command {
	var axisName string
	dmsCmd := &cobra.Command{
		Use:   "dms VALUE...",
		Short: "Convert decimal degrees to degrees, minutes, and seconds",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var axis basemap.Axis
			switch axisName {
			case "lat", "latitude":
				axis = basemap.Latitude
			case "lon", "longitude":
				axis = basemap.Longitude
			default:
				return fmt.Errorf("%s: unknown axis", axisName)
			}
			secondsPolicy, err := basemap.ParseSecondsPolicy(a.cfg.Tiling.SecondsPolicy)
			if err != nil {
				return err
			}

			for _, arg := range args {
				value, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return err
				}
				degrees, minutes, seconds, err := basemap.ToSexagesimalPolicy(value, secondsPolicy)
				if err != nil {
					return err
				}
				hemisphere, err := basemap.ToSexagesimalWithHemisphere(value, axis)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d %d %d %c\n", arg, degrees, minutes, seconds, hemisphere.Hemisphere); err != nil {
					return err
				}
			}
			return nil
		},
	}
	dmsCmd.Flags().StringVarP(&axisName, "axis", "a", "lat", "coordinate axis (lat, lon)")
	return dmsCmd
}
