package composite

import (
	"math"
	"testing"

	"composite-tools/rasterds"
)

func setUpDataset(t *testing.T) *rasterds.Dataset {
	t.Helper()
	ds := rasterds.New(2, 2)
	ds.Times = []string{"2018-01-01", "2018-02-01"}

	bands := []struct {
		name   string
		slices [][]float64
	}{
		{"red", [][]float64{{1000, 2000, 3000, 4000}, {5000, 5000, 5000, 5000}}},
		{"green", [][]float64{{500, 1500, 2500, -999}, {0, 1000, 2000, 3000}}},
		{"blue", [][]float64{{100, 200, 300, 400}, {400, 300, 200, 100}}},
	}
	for _, band := range bands {
		if err := ds.AddBand(band.name, band.slices...); err != nil {
			t.Fatal(err)
		}
	}
	return ds
}

func TestBuildShape(t *testing.T) {
	ds := setUpDataset(t)
	im, err := Build(ds, []string{"red", "green", "blue"}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if im.Width != 2 || im.Height != 2 {
		t.Errorf("got %dx%d, want 2x2", im.Width, im.Height)
	}
	if len(im.Pix) != 2*2*3 {
		t.Errorf("got %d values, want %d", len(im.Pix), 2*2*3)
	}
}

func TestBuildNoDataBecomesNaN(t *testing.T) {
	ds := setUpDataset(t)
	im, err := Build(ds, []string{"red", "green", "blue"}, Options{})
	if err != nil {
		t.Fatal(err)
	}

	// green at pixel (1,1) is the -999 sentinel in the first slice
	if !math.IsNaN(im.At(1, 1, 1)) {
		t.Errorf("got %v, want NaN", im.At(1, 1, 1))
	}
	// the other channels of that pixel stay finite
	if math.IsNaN(im.At(1, 1, 0)) || math.IsNaN(im.At(1, 1, 2)) {
		t.Error("finite channels became NaN")
	}
}

func TestBuildReflectanceScaling(t *testing.T) {
	ds := setUpDataset(t)
	im, err := Build(ds, []string{"red", "green", "blue"}, Options{Time: 1})
	if err != nil {
		t.Fatal(err)
	}

	// red is uniformly 5000 in the second slice, so it maps to 1.0
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			if got := im.At(row, col, 0); got != 1.0 {
				t.Errorf("red at (%d,%d): got %v, want 1.0", row, col, got)
			}
		}
	}
	if got := im.At(0, 0, 1); got != 0 {
		t.Errorf("green at (0,0): got %v, want 0", got)
	}
	if got := im.At(0, 1, 1); got != 0.2 {
		t.Errorf("green at (0,1): got %v, want 0.2", got)
	}
}

func TestBuildBandCount(t *testing.T) {
	ds := setUpDataset(t)
	if _, err := Build(ds, []string{"red", "green"}, Options{}); err == nil {
		t.Error("expected error for band list of length 2")
	}
}

func TestBuildMissingBand(t *testing.T) {
	ds := setUpDataset(t)
	if _, err := Build(ds, []string{"red", "green", "nir"}, Options{}); err == nil {
		t.Error("expected error for unknown band")
	}
}

func TestBuildNoTimeAxis(t *testing.T) {
	ds := rasterds.New(1, 1)
	for _, name := range []string{"red", "green", "blue"} {
		if err := ds.AddBand(name, []float64{2500}); err != nil {
			t.Fatal(err)
		}
	}

	// the sole slice is used whatever time index is asked for
	im, err := Build(ds, []string{"red", "green", "blue"}, Options{Time: 7})
	if err != nil {
		t.Fatal(err)
	}
	if got := im.At(0, 0, 0); got != 0.5 {
		t.Errorf("got %v, want 0.5", got)
	}
}
