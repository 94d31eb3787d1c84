package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"composite-tools/composite"
	"composite-tools/statsio"
)

var statsBandNames string
var statsLabels string
var statsWorkers int

// bandstatsCmd represents the bandstats command
var bandstatsCmd = &cobra.Command{
	Use:   "bandstats [tif_file ...] [output_path]",
	Short: "Export per-band, per-slice statistics of a raster dataset",
	Long: `Compute min, max, mean, standard deviation and valid/nodata
	pixel counts for every band and time slice of a raster dataset.
	The output format is chosen by extension: .parquet for parquet,
	anything else CSV.`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevels()

		ds, err := loadInputs(args[:len(args)-1], statsBandNames, statsLabels, statsWorkers)
		if err != nil {
			panic(err)
		}

		stats, err := composite.AllStats(ds)
		if err != nil {
			panic(err)
		}

		sink := statsio.WriteStatsCSV
		if filepath.Ext(args[len(args)-1]) == ".parquet" {
			sink = statsio.WriteStatsParquet
		}
		if err := sink(stats, args[len(args)-1]); err != nil {
			panic(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(bandstatsCmd)

	bandstatsCmd.Flags().StringVar(&statsBandNames, "bandNames", "", "Names for the raster's bands, in file order")
	bandstatsCmd.Flags().StringVar(&statsLabels, "labels", "", "Time labels, one per input file")
	bandstatsCmd.Flags().IntVarP(&statsWorkers, "numWorkers", "n", 4, "Number of workers for parallel raster reads")
}
