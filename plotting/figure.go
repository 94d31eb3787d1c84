package plotting

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Figure is an arrangement of plots on a single canvas. Grid cells past the
// last time slice hold no plot and render empty.
type Figure struct {
	plots  [][]*plot.Plot
	tiles  draw.Tiles
	width  vg.Length
	height vg.Length
}

func (f *Figure) Rows() int { return f.tiles.Rows }
func (f *Figure) Cols() int { return f.tiles.Cols }

// Plot returns the plot at a grid cell, nil for an empty cell.
func (f *Figure) Plot(row int, col int) *plot.Plot {
	return f.plots[row][col]
}

// WriteTo renders the figure to w as PNG.
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	canvas := vgimg.New(f.width, f.height)
	cells := plot.Align(f.plots, f.tiles, draw.New(canvas))
	for row := range f.plots {
		for col := range f.plots[row] {
			if f.plots[row][col] == nil {
				continue
			}
			f.plots[row][col].Draw(cells[row][col])
		}
	}
	png := vgimg.PngCanvas{Canvas: canvas}
	return png.WriteTo(w)
}

// Save renders the figure to a PNG file.
func (f *Figure) Save(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if err := out.Close(); err != nil {
			logrus.Error(err)
		}
	}()

	if _, err := f.WriteTo(out); err != nil {
		return err
	}
	return out.Sync()
}

// figSize converts a width/height pair in inches to canvas lengths,
// defaulting to 10x10.
func figSize(size [2]float64) (vg.Length, vg.Length) {
	w, h := size[0], size[1]
	if w <= 0 {
		w = 10
	}
	if h <= 0 {
		h = 10
	}
	return vg.Length(w) * vg.Inch, vg.Length(h) * vg.Inch
}
