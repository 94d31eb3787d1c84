package rasterds

import (
	"reflect"
	"testing"
)

func TestAddBandValidation(t *testing.T) {
	ds := New(2, 2)
	if err := ds.AddBand("red", []float64{1, 2, 3}); err == nil {
		t.Error("expected error for wrong pixel count")
	}
	if err := ds.AddBand("red", []float64{1, 2, 3, 4}); err != nil {
		t.Fatal(err)
	}
	if err := ds.AddBand("red", []float64{4, 3, 2, 1}); err == nil {
		t.Error("expected error for duplicate band")
	}
	if err := ds.AddBand("green", []float64{1, 2, 3, 4}, []float64{4, 3, 2, 1}); err == nil {
		t.Error("expected error for mismatched slice count")
	}
}

func TestSliceWithTimeAxis(t *testing.T) {
	ds := New(2, 1)
	ds.Times = []string{"a", "b"}
	if err := ds.AddBand("red", []float64{1, 2}, []float64{3, 4}); err != nil {
		t.Fatal(err)
	}

	slice, err := ds.Slice("red", 1)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(slice, []float64{3, 4}) {
		t.Errorf("got %v, want [3 4]", slice)
	}

	if _, err := ds.Slice("red", 2); err == nil {
		t.Error("expected error for time index out of range")
	}
	if _, err := ds.Slice("nir", 0); err == nil {
		t.Error("expected error for unknown band")
	}
}

func TestSliceNoTimeAxis(t *testing.T) {
	ds := New(2, 1)
	if err := ds.AddBand("red", []float64{1, 2}); err != nil {
		t.Fatal(err)
	}

	// datasets without a time axis serve their sole slice for any index
	slice, err := ds.Slice("red", 5)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(slice, []float64{1, 2}) {
		t.Errorf("got %v, want [1 2]", slice)
	}
}

func TestTimeLabel(t *testing.T) {
	ds := New(1, 1)
	if _, ok := ds.TimeLabel(0); ok {
		t.Error("expected no label without a time axis")
	}
	ds.Times = []string{"2018-01-01"}
	label, ok := ds.TimeLabel(0)
	if !ok || label != "2018-01-01" {
		t.Errorf("got %q, want 2018-01-01", label)
	}
}

func TestCoords(t *testing.T) {
	ds := New(2, 2)
	ds.Origin = Point{Y: 10, X: 100}
	ds.XRes = 2
	ds.YRes = -1

	if got := ds.XCoords(); !reflect.DeepEqual(got, []float64{101, 103}) {
		t.Errorf("x coords: got %v, want [101 103]", got)
	}
	if got := ds.YCoords(); !reflect.DeepEqual(got, []float64{9.5, 8.5}) {
		t.Errorf("y coords: got %v, want [9.5 8.5]", got)
	}
}

func TestExtent(t *testing.T) {
	ds := New(4, 2)
	ds.Origin = Point{Y: 10, X: 100}
	ds.XRes = 1
	ds.YRes = -1

	xMin, yMin, xMax, yMax := ds.Extent()
	if xMin != 100 || xMax != 104 || yMin != 8 || yMax != 10 {
		t.Errorf("got (%v, %v, %v, %v), want (100, 8, 104, 10)", xMin, yMin, xMax, yMax)
	}
}
