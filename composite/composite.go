package composite

import (
	"fmt"
	"math"

	"composite-tools/rasterds"
)

// MaxReflectance is the scaling constant for un-enhanced display: raw
// surface reflectance values are standardised relative to 5000.
const MaxReflectance = 5000

// RGB is a height*width*3 composite, channel-interleaved and row-major.
// Pixels that were nodata in a source band hold NaN in that channel.
type RGB struct {
	Width  int
	Height int
	Pix    []float64
}

func newRGB(width int, height int) *RGB {
	return &RGB{Width: width, Height: height, Pix: make([]float64, width*height*3)}
}

// At returns the value of channel ch at pixel (row, col).
func (im *RGB) At(row int, col int, ch int) float64 {
	return im.Pix[(row*im.Width+col)*3+ch]
}

// Options configures composite construction.
type Options struct {
	// Time is the time index to composite. Ignored for datasets without
	// a time axis.
	Time int
	// Enhance selects histogram equalization instead of reflectance
	// scaling.
	Enhance bool
}

// Build stacks three named bands of a dataset into an RGB composite.
// Nodata pixels become NaN, then the composite is either histogram
// equalized over its finite pixels or divided by MaxReflectance.
func Build(ds *rasterds.Dataset, bands []string, opts Options) (*RGB, error) {
	if len(bands) != 3 {
		return nil, fmt.Errorf("need exactly 3 bands, got %d", len(bands))
	}

	im := newRGB(ds.Width, ds.Height)
	for ch, name := range bands {
		slice, err := ds.Slice(name, opts.Time)
		if err != nil {
			return nil, err
		}
		for pix, value := range slice {
			if value == ds.NoData {
				value = math.NaN()
			}
			im.Pix[pix*3+ch] = value
		}
	}

	if opts.Enhance {
		EqualizeHist(im)
	} else {
		rescale(im, MaxReflectance)
	}
	return im, nil
}

func rescale(im *RGB, denom float64) {
	for i, value := range im.Pix {
		im.Pix[i] = value / denom
	}
}
