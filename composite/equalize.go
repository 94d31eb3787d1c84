package composite

import (
	"math"
)

const equalizeBins = 256

// EqualizeHist applies histogram equalization to the composite in place.
// The histogram is built from finite pixels only, across all three channels
// jointly, then every finite pixel is mapped through the cumulative
// distribution to [0, 1]. NaN pixels stay NaN.
func EqualizeHist(im *RGB) {
	lo := math.Inf(1)
	hi := math.Inf(-1)
	finite := 0
	for _, value := range im.Pix {
		if math.IsNaN(value) {
			continue
		}
		finite++
		if value < lo {
			lo = value
		}
		if value > hi {
			hi = value
		}
	}
	if finite == 0 {
		return
	}
	if lo == hi {
		for i, value := range im.Pix {
			if !math.IsNaN(value) {
				im.Pix[i] = 1
			}
		}
		return
	}

	binWidth := (hi - lo) / equalizeBins
	hist := make([]float64, equalizeBins)
	for _, value := range im.Pix {
		if math.IsNaN(value) {
			continue
		}
		bin := int((value - lo) / binWidth)
		if bin >= equalizeBins {
			bin = equalizeBins - 1
		}
		hist[bin]++
	}

	cdf := make([]float64, equalizeBins)
	centers := make([]float64, equalizeBins)
	sum := 0.0
	for i, count := range hist {
		sum += count
		cdf[i] = sum / float64(finite)
		centers[i] = lo + (float64(i)+0.5)*binWidth
	}

	for i, value := range im.Pix {
		if math.IsNaN(value) {
			continue
		}
		im.Pix[i] = interp(value, centers, cdf)
	}
}

// interp linearly interpolates y(x) on the piecewise-linear curve defined by
// xs and ys, clamping outside the range.
func interp(x float64, xs []float64, ys []float64) float64 {
	if x <= xs[0] {
		return ys[0]
	}
	last := len(xs) - 1
	if x >= xs[last] {
		return ys[last]
	}
	// Bins are uniform, so the segment can be found directly.
	i := int((x - xs[0]) / (xs[1] - xs[0]))
	if i >= last {
		i = last - 1
	}
	frac := (x - xs[i]) / (xs[i+1] - xs[i])
	return ys[i] + frac*(ys[i+1]-ys[i])
}
