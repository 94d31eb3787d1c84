package composite

import (
	"math"
	"testing"
)

func rampImage(n int) *RGB {
	im := newRGB(n, 1)
	for i := range im.Pix {
		im.Pix[i] = float64(i)
	}
	return im
}

func TestEqualizeRange(t *testing.T) {
	im := rampImage(512)
	EqualizeHist(im)
	for i, value := range im.Pix {
		if value < 0 || value > 1 {
			t.Fatalf("value %d out of range: %v", i, value)
		}
	}
	last := im.Pix[len(im.Pix)-1]
	if last != 1 {
		t.Errorf("max pixel: got %v, want 1", last)
	}
}

func TestEqualizeMonotonic(t *testing.T) {
	im := rampImage(512)
	EqualizeHist(im)
	for i := 1; i < len(im.Pix); i++ {
		if im.Pix[i] < im.Pix[i-1] {
			t.Fatalf("equalization not monotonic at %d: %v < %v", i, im.Pix[i], im.Pix[i-1])
		}
	}
}

func TestEqualizeUniformRamp(t *testing.T) {
	// A uniform distribution should be close to unchanged after
	// normalization: the CDF of a ramp is a straight line.
	im := rampImage(1024)
	EqualizeHist(im)
	n := len(im.Pix)
	for i, value := range im.Pix {
		want := float64(i+1) / float64(n)
		if math.Abs(value-want) > 0.01 {
			t.Fatalf("value %d: got %v, want about %v", i, value, want)
		}
	}
}

func TestEqualizeNaNPreserved(t *testing.T) {
	im := newRGB(2, 1)
	copy(im.Pix, []float64{1, 2, math.NaN(), 4, 5, 6})
	EqualizeHist(im)
	if !math.IsNaN(im.Pix[2]) {
		t.Errorf("got %v, want NaN", im.Pix[2])
	}
	for i, value := range im.Pix {
		if i != 2 && math.IsNaN(value) {
			t.Errorf("value %d became NaN", i)
		}
	}
}

func TestEqualizeConstant(t *testing.T) {
	im := newRGB(2, 2)
	for i := range im.Pix {
		im.Pix[i] = 42
	}
	EqualizeHist(im)
	for i, value := range im.Pix {
		if value != 1 {
			t.Errorf("value %d: got %v, want 1", i, value)
		}
	}
}
