// Package plotting renders three-band RGB composites of raster datasets as
// figures, either one time slice at a time or as a grid over all slices.
package plotting

import (
	"image"
	"image/color"
	"math"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"composite-tools/composite"
	"composite-tools/rasterds"
)

// Axis-label modes.
const (
	ProjectionProjected  = "projected"
	ProjectionGeographic = "geographic"
)

const defaultTitle = "My Plot"

// ImageOptions configures a single-slice figure.
type ImageOptions struct {
	// Time is the time index to plot.
	Time int
	// FigSize is the figure width and height in inches. Zero means 10.
	FigSize [2]float64
	// Enhance selects histogram equalization over reflectance scaling.
	Enhance bool
	// Title is used when the dataset has no time axis. Empty means
	// "My Plot".
	Title string
	// Projection selects axis labels: "geographic" gives
	// Longitude/Latitude, anything else Eastings/Northings.
	Projection string
}

// panelStyle fixes the text sizing of one rendered panel. The grid variant
// uses smaller text than a standalone figure.
type panelStyle struct {
	enhance    bool
	projection string
	titleSize  vg.Length
	labelSize  vg.Length
	tickSize   vg.Length
	tickRot    float64
}

// ThreeBandImage plots three spectral bands of a dataset on the RGB
// channels of an image. The panel is titled with the time coordinate label
// when the dataset has one, else with opts.Title. The returned figure
// renders the plot at the requested size.
func ThreeBandImage(ds *rasterds.Dataset, bands []string, opts ImageOptions) (*plot.Plot, *Figure, error) {
	style := panelStyle{
		enhance:    opts.Enhance,
		projection: opts.Projection,
		titleSize:  vg.Points(16),
		labelSize:  vg.Points(12),
	}
	title, ok := ds.TimeLabel(opts.Time)
	if !ok {
		title = opts.Title
		if title == "" {
			title = defaultTitle
		}
	}

	p, err := panelPlot(ds, bands, opts.Time, title, style)
	if err != nil {
		return nil, nil, err
	}

	w, h := figSize(opts.FigSize)
	fig := &Figure{
		plots:  [][]*plot.Plot{{p}},
		tiles:  draw.Tiles{Rows: 1, Cols: 1},
		width:  w,
		height: h,
	}
	return p, fig, nil
}

// panelPlot builds one plot: composite the bands, draw the image in data
// coordinates, and label the axes for the projection.
func panelPlot(ds *rasterds.Dataset, bands []string, t int, title string, style panelStyle) (*plot.Plot, error) {
	im, err := composite.Build(ds, bands, composite.Options{Time: t, Enhance: style.enhance})
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = style.titleSize
	p.Title.TextStyle.Font.Weight = xfont.WeightBold

	if style.projection == ProjectionGeographic {
		p.X.Label.Text = "Longitude"
		p.Y.Label.Text = "Latitude"
	} else {
		p.X.Label.Text = "Eastings"
		p.Y.Label.Text = "Northings"
	}
	p.X.Label.TextStyle.Font.Weight = xfont.WeightBold
	p.Y.Label.TextStyle.Font.Weight = xfont.WeightBold
	if style.labelSize > 0 {
		p.X.Label.TextStyle.Font.Size = style.labelSize
		p.Y.Label.TextStyle.Font.Size = style.labelSize
	}
	if style.tickSize > 0 {
		p.X.Tick.Label.Font.Size = style.tickSize
		p.Y.Tick.Label.Font.Size = style.tickSize
	}
	if style.tickRot != 0 {
		p.X.Tick.Label.Rotation = style.tickRot
	}

	xMin, yMin, xMax, yMax := ds.Extent()
	p.Add(plotter.NewImage(toImage(im), xMin, yMin, xMax, yMax))
	return p, nil
}

// toImage converts a composite to a drawable image. Values clamp to [0, 1];
// a pixel that is NaN in every channel renders transparent.
func toImage(im *composite.RGB) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, im.Width, im.Height))
	for row := 0; row < im.Height; row++ {
		for col := 0; col < im.Width; col++ {
			r := im.At(row, col, 0)
			g := im.At(row, col, 1)
			b := im.At(row, col, 2)
			if math.IsNaN(r) && math.IsNaN(g) && math.IsNaN(b) {
				continue
			}
			out.SetNRGBA(col, row, color.NRGBA{
				R: clamp8(r),
				G: clamp8(g),
				B: clamp8(b),
				A: 255,
			})
		}
	}
	return out
}

func clamp8(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
