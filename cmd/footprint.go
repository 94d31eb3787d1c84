package cmd

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"composite-tools/rasterds"
	"composite-tools/statsio"
)

var footprintLevel int
var footprintEPSG int

// footprintCmd represents the footprint command
var footprintCmd = &cobra.Command{
	Use:   "footprint [tif_file] [output_path]",
	Short: "Cover a raster's extent with S2 cells",
	Long: `Reproject a raster's extent to WGS84 and cover it with S2
	cells at a chosen level, writing cell IDs, tokens and WKT polygon
	geometries. The output format is chosen by extension: .parquet for
	parquet, anything else CSV.

	Options:
		--s2Lvl: S2 cell level for the covering. Essentially output resolution.
		--epsg:  EPSG code of the raster's reference system.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevels()

		ds, err := loadInputs(args[:1], "", "", 1)
		if err != nil {
			panic(err)
		}

		cells, err := rasterds.Footprint(ds, footprintEPSG, footprintLevel)
		if err != nil {
			panic(err)
		}

		sink := statsio.WriteFootprintCSV
		if filepath.Ext(args[1]) == ".parquet" {
			sink = statsio.WriteFootprintParquet
		}
		if err := sink(cells, args[1]); err != nil {
			panic(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(footprintCmd)

	footprintCmd.Flags().IntVarP(&footprintLevel, "s2Lvl", "l", 11, "S2 cell level for the covering. Essentially output resolution")
	err := viper.BindPFlag("s2Lvl", footprintCmd.Flags().Lookup("s2Lvl"))
	if err != nil {
		logrus.Exit(1)
	}

	footprintCmd.Flags().IntVar(&footprintEPSG, "epsg", 4326, "EPSG code of the raster's reference system")
	err = viper.BindPFlag("epsg", footprintCmd.Flags().Lookup("epsg"))
	if err != nil {
		logrus.Exit(1)
	}
}
