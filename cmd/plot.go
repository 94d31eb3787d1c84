// Package cmd /*
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"composite-tools/plotting"
)

var plotBands string
var plotBandNames string
var plotLabels string
var plotTime int
var plotFigSize string
var plotEnhance bool
var plotTitle string
var plotProjection string
var plotWorkers int

// plotCmd represents the plot command
var plotCmd = &cobra.Command{
	Use:   "plot [tif_file ...] [output_png]",
	Short: "Plot three bands of a raster onto the RGB channels of an image",
	Long: `Plot one time slice of a raster dataset as an RGB composite
	image. Each input GeoTIFF is one time slice; the slice to plot is
	chosen with --time.

	Options:
		--bands:      Three band names to place on red, green and blue, in
									order. Bands are named band_1..band_N in file order
									unless renamed with --bandNames.
		--enhance:    Histogram-equalize the composite instead of scaling
									by reflectance 5000.
		--projection: 'projected' labels the axes Eastings/Northings,
									'geographic' Longitude/Latitude.`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevels()

		ds, err := loadInputs(args[:len(args)-1], plotBandNames, plotLabels, plotWorkers)
		if err != nil {
			panic(err)
		}

		opts := plotting.ImageOptions{
			Time:       plotTime,
			FigSize:    parseFigSize(plotFigSize),
			Enhance:    plotEnhance,
			Title:      plotTitle,
			Projection: plotProjection,
		}

		_, fig, err := plotting.ThreeBandImage(ds, splitList(plotBands), opts)
		if err != nil {
			panic(err)
		}
		if err := fig.Save(args[len(args)-1]); err != nil {
			panic(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(plotCmd)

	plotCmd.Flags().StringVarP(&plotBands, "bands", "b", "band_1,band_2,band_3", "Three bands to plot on red, green and blue")
	plotCmd.Flags().StringVar(&plotBandNames, "bandNames", "", "Names for the raster's bands, in file order")
	plotCmd.Flags().StringVar(&plotLabels, "labels", "", "Time labels, one per input file")
	plotCmd.Flags().IntVarP(&plotTime, "time", "t", 0, "Time index to plot")
	err := viper.BindPFlag("time", plotCmd.Flags().Lookup("time"))
	if err != nil {
		logrus.Exit(1)
	}

	plotCmd.Flags().StringVar(&plotFigSize, "figsize", "10,10", "Figure size in inches, width,height")
	plotCmd.Flags().BoolVarP(&plotEnhance, "enhance", "e", false, "Histogram-equalize instead of scaling by reflectance")
	plotCmd.Flags().StringVar(&plotTitle, "title", "My Plot", "Plot title when the dataset has no time axis")
	plotCmd.Flags().StringVarP(&plotProjection, "projection", "p", "projected", "Axis label mode: projected or geographic")
	plotCmd.Flags().IntVarP(&plotWorkers, "numWorkers", "n", 4, "Number of workers for parallel raster reads")
}
