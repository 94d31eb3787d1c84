package rasterds

import (
	"fmt"
)

// DefaultNoData is the sentinel used when a raster does not declare its own.
const DefaultNoData = -999

// Point is a location in the dataset's native coordinate reference system.
type Point struct {
	Y float64
	X float64
}

// Band is one named spectral variable, with a row-major Height*Width buffer
// per time slice.
type Band struct {
	Name string
	Data [][]float64
}

// Dataset is an in-memory labeled raster: named bands over time/y/x axes.
// Times is empty when the dataset has no time axis, in which case every band
// holds a single slice.
type Dataset struct {
	Times  []string
	Origin Point
	XRes   float64
	YRes   float64
	Width  int
	Height int
	NoData float64

	bands   map[string]*Band
	order   []string
	nSlices int
}

func New(width int, height int) *Dataset {
	return &Dataset{
		Width:  width,
		Height: height,
		XRes:   1,
		YRes:   -1,
		NoData: DefaultNoData,
		bands:  make(map[string]*Band),
	}
}

// AddBand registers a named band. Every slice must be a row-major
// Height*Width buffer, and all bands must carry the same number of slices.
func (ds *Dataset) AddBand(name string, slices ...[]float64) error {
	if _, ok := ds.bands[name]; ok {
		return fmt.Errorf("band %q already present", name)
	}
	if len(slices) == 0 {
		return fmt.Errorf("band %q has no data", name)
	}
	if ds.nSlices != 0 && len(slices) != ds.nSlices {
		return fmt.Errorf("band %q has %d slices, dataset has %d", name, len(slices), ds.nSlices)
	}
	for _, slice := range slices {
		if len(slice) != ds.Width*ds.Height {
			return fmt.Errorf("band %q slice has %d pixels, want %d", name, len(slice), ds.Width*ds.Height)
		}
	}
	ds.nSlices = len(slices)
	ds.bands[name] = &Band{Name: name, Data: slices}
	ds.order = append(ds.order, name)
	return nil
}

func (ds *Dataset) Band(name string) (*Band, bool) {
	band, ok := ds.bands[name]
	return band, ok
}

// BandNames returns band names in registration order.
func (ds *Dataset) BandNames() []string {
	names := make([]string, len(ds.order))
	copy(names, ds.order)
	return names
}

func (ds *Dataset) HasTime() bool {
	return len(ds.Times) > 0
}

func (ds *Dataset) NumTimes() int {
	if ds.nSlices == 0 {
		return 0
	}
	return ds.nSlices
}

// TimeLabel returns the time coordinate label at index t, if the dataset has
// a time axis.
func (ds *Dataset) TimeLabel(t int) (string, bool) {
	if t < 0 || t >= len(ds.Times) {
		return "", false
	}
	return ds.Times[t], true
}

// Slice returns the pixel buffer for a band at time index t. Datasets
// without a time axis have a single slice, returned whatever t is given.
func (ds *Dataset) Slice(name string, t int) ([]float64, error) {
	band, ok := ds.bands[name]
	if !ok {
		return nil, fmt.Errorf("no band %q in dataset", name)
	}
	if !ds.HasTime() {
		return band.Data[0], nil
	}
	if t < 0 || t >= len(band.Data) {
		return nil, fmt.Errorf("time index %d out of range for band %q (%d slices)", t, name, len(band.Data))
	}
	return band.Data[t], nil
}

// XCoords returns pixel-center x coordinates, west to east.
func (ds *Dataset) XCoords() []float64 {
	coords := make([]float64, ds.Width)
	for i := range coords {
		coords[i] = ds.Origin.X + (float64(i)+0.5)*ds.XRes
	}
	return coords
}

// YCoords returns pixel-center y coordinates in storage order, so north to
// south for a north-up raster.
func (ds *Dataset) YCoords() []float64 {
	coords := make([]float64, ds.Height)
	for i := range coords {
		coords[i] = ds.Origin.Y + (float64(i)+0.5)*ds.YRes
	}
	return coords
}

// Extent returns the outer pixel-edge bounds of the raster in native
// coordinates.
func (ds *Dataset) Extent() (xMin, yMin, xMax, yMax float64) {
	x0 := ds.Origin.X
	x1 := ds.Origin.X + float64(ds.Width)*ds.XRes
	y0 := ds.Origin.Y
	y1 := ds.Origin.Y + float64(ds.Height)*ds.YRes
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return x0, y0, x1, y1
}
