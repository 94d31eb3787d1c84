package plotting

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"composite-tools/rasterds"
)

// GridOptions configures a multi-panel figure.
type GridOptions struct {
	// NumCols is the number of grid columns. Rows are the time-step
	// count divided by NumCols, at least one.
	NumCols int
	// FigSize is the figure width and height in inches. Zero means 10.
	FigSize [2]float64
	// Enhance selects histogram equalization over reflectance scaling.
	Enhance bool
	// Projection selects axis labels, as for ImageOptions.
	Projection string
	// PadX and PadY space the panels. Zero means 5mm.
	PadX vg.Length
	PadY vg.Length
}

// ThreeBandGrid plots a three-band composite for every time step of a
// dataset, arranged into a grid. Grid cells past the last time step are
// left empty.
func ThreeBandGrid(ds *rasterds.Dataset, bands []string, opts GridOptions) (*Figure, error) {
	if opts.NumCols < 1 {
		return nil, fmt.Errorf("need a positive column count, got %d", opts.NumCols)
	}
	timesteps := ds.NumTimes()
	if timesteps == 0 {
		return nil, fmt.Errorf("dataset has no time slices")
	}

	rows := timesteps / opts.NumCols
	if rows < 1 {
		rows = 1
	}

	style := panelStyle{
		enhance:    opts.Enhance,
		projection: opts.Projection,
		titleSize:  vg.Points(12),
		labelSize:  vg.Points(10),
		tickSize:   vg.Points(8),
		tickRot:    20 * math.Pi / 180,
	}

	plots := make([][]*plot.Plot, rows)
	for row := range plots {
		plots[row] = make([]*plot.Plot, opts.NumCols)
		for col := range plots[row] {
			t := row*opts.NumCols + col
			if t >= timesteps {
				continue
			}
			title, ok := ds.TimeLabel(t)
			if !ok {
				title = fmt.Sprintf("t=%d", t)
			}
			p, err := panelPlot(ds, bands, t, title, style)
			if err != nil {
				return nil, err
			}
			plots[row][col] = p
		}
	}

	padX, padY := opts.PadX, opts.PadY
	if padX == 0 {
		padX = 5 * vg.Millimeter
	}
	if padY == 0 {
		padY = 5 * vg.Millimeter
	}
	w, h := figSize(opts.FigSize)
	return &Figure{
		plots: plots,
		tiles: draw.Tiles{
			Rows: rows,
			Cols: opts.NumCols,
			PadX: padX,
			PadY: padY,
		},
		width:  w,
		height: h,
	}, nil
}
