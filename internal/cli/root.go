// Package cli implements the basemap-tiles command.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/twpayne/go-basemap"
	"github.com/twpayne/go-basemap/internal/config"
	"github.com/twpayne/go-basemap/internal/logging"
)

var version = "dev"

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
}

// Execute executes the root command.
func Execute() error {
	return newRootCmd().Execute()
}

// An app holds the state shared by all subcommands of one invocation.
type app struct {
	v            *viper.Viper
	configFile   string
	roundSeconds bool
	cfg          *config.Config
	logger       *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{
		v: config.New(),
	}

	rootCmd := &cobra.Command{
		Use:     "basemap-tiles",
		Version: version,
		Short:   "Plan fixed-size basemap tiles over a survey region",
		Long: `basemap-tiles partitions a geographic region into a lattice of fixed-size
basemap tiles, names each tile after its north-west corner, and derives the file
names and projected outlines used by the gridding and plotting toolchain.

Regions are given in W/E/S/N form, for example -70.3/-69.8/68.1/68.6.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: a.load,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default ./basemap.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")
	flags.Float64("lon-step", basemap.ArcticNetTileSize.LonStep, "tile width in degrees")
	flags.Float64("lat-step", basemap.ArcticNetTileSize.LatStep, "tile height in degrees")
	flags.Bool("seconds", false, "include seconds in tile identifiers")
	flags.BoolVar(&a.roundSeconds, "round-seconds", false, "round instead of truncating seconds")
	for key, flag := range map[string]string{
		"log.level":              "log-level",
		"log.format":             "log-format",
		"tiling.lon_step":        "lon-step",
		"tiling.lat_step":        "lat-step",
		"tiling.include_seconds": "seconds",
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(
		newPlanCmd(a),
		newDMSCmd(a),
		newNamesCmd(a),
		newPolygonsCmd(a),
	)

	return rootCmd
}

func (a *app) load(cmd *cobra.Command, args []string) error {
	if a.roundSeconds {
		a.v.Set("tiling.seconds_policy", basemap.RoundSeconds.String())
	}
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.Setup(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	return nil
}

// plan returns the configured plan of region, in W/E/S/N form.
func (a *app) plan(region string) (*basemap.Plan, error) {
	box, err := basemap.ParseRegion(region)
	if err != nil {
		return nil, err
	}
	planner, err := a.cfg.NewPlanner()
	if err != nil {
		return nil, err
	}
	plan, err := planner.Plan(box)
	if err != nil {
		return nil, err
	}
	a.logger.Info("planned tiles",
		"region", plan.Requested.Region(),
		"aligned", plan.Aligned.Region(),
		"rows", plan.Rows,
		"columns", plan.Columns,
		"tiles", len(plan.Tiles),
	)
	return plan, nil
}
