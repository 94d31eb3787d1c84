package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"composite-tools/plotting"
)

var gridBands string
var gridBandNames string
var gridLabels string
var gridCols int
var gridFigSize string
var gridEnhance bool
var gridProjection string
var gridWorkers int

// plotgridCmd represents the plotgrid command
var plotgridCmd = &cobra.Command{
	Use:   "plotgrid [tif_file ...] [output_png]",
	Short: "Plot every time slice of a raster dataset as a grid of composites",
	Long: `Plot an RGB composite for every time slice of a raster dataset,
	arranged into a grid with --cols columns. Each input GeoTIFF is one
	time slice; panels are titled by slice label. Grid cells past the
	last slice are left empty.`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevels()

		ds, err := loadInputs(args[:len(args)-1], gridBandNames, gridLabels, gridWorkers)
		if err != nil {
			panic(err)
		}

		opts := plotting.GridOptions{
			NumCols:    viper.GetInt("cols"),
			FigSize:    parseFigSize(gridFigSize),
			Enhance:    gridEnhance,
			Projection: gridProjection,
		}

		fig, err := plotting.ThreeBandGrid(ds, splitList(gridBands), opts)
		if err != nil {
			panic(err)
		}
		if err := fig.Save(args[len(args)-1]); err != nil {
			panic(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(plotgridCmd)

	plotgridCmd.Flags().StringVarP(&gridBands, "bands", "b", "band_1,band_2,band_3", "Three bands to plot on red, green and blue")
	plotgridCmd.Flags().StringVar(&gridBandNames, "bandNames", "", "Names for the raster's bands, in file order")
	plotgridCmd.Flags().StringVar(&gridLabels, "labels", "", "Time labels, one per input file")
	plotgridCmd.Flags().IntVarP(&gridCols, "cols", "c", 2, "Number of grid columns")
	err := viper.BindPFlag("cols", plotgridCmd.Flags().Lookup("cols"))
	if err != nil {
		logrus.Exit(1)
	}

	plotgridCmd.Flags().StringVar(&gridFigSize, "figsize", "10,10", "Figure size in inches, width,height")
	plotgridCmd.Flags().BoolVarP(&gridEnhance, "enhance", "e", false, "Histogram-equalize instead of scaling by reflectance")
	plotgridCmd.Flags().StringVarP(&gridProjection, "projection", "p", "projected", "Axis label mode: projected or geographic")
	plotgridCmd.Flags().IntVarP(&gridWorkers, "numWorkers", "n", 4, "Number of workers for parallel raster reads")
}
