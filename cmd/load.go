package cmd

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"composite-tools/rasterds"
)

// splitList parses a comma-separated flag value.
func splitList(flag string) []string {
	if flag == "" {
		return nil
	}
	parts := strings.Split(flag, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// parseFigSize parses a "width,height" inches pair, falling back to the
// default square figure on bad input.
func parseFigSize(flag string) [2]float64 {
	parts := splitList(flag)
	if len(parts) != 2 {
		logrus.Warnf("Figure size %q not recognized, using default", flag)
		return [2]float64{}
	}
	w, errW := strconv.ParseFloat(parts[0], 64)
	h, errH := strconv.ParseFloat(parts[1], 64)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		logrus.Warnf("Figure size %q not recognized, using default", flag)
		return [2]float64{}
	}
	return [2]float64{w, h}
}

func loadInputs(paths []string, bandNames string, labels string, workers int) (*rasterds.Dataset, error) {
	return rasterds.LoadGeoTIFFs(paths, rasterds.LoadOpts{
		BandNames:  splitList(bandNames),
		Labels:     splitList(labels),
		NumWorkers: workers,
	})
}
