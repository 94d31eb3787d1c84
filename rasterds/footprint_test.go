package rasterds

import (
	"strings"
	"testing"

	"github.com/golang/geo/s2"
)

func TestExtentWKT(t *testing.T) {
	ds := New(2, 2)
	ds.Origin = Point{Y: 0, X: 0}
	ds.XRes = 1
	ds.YRes = -1

	want := "POLYGON((0 -2, 2 -2, 2 0, 0 0, 0 -2))"
	if got := ds.ExtentWKT(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestCellToWKT(t *testing.T) {
	cell := s2.CellFromCellID(s2.CellID(uint64(1152921779484753920)))
	wkt := cellToWKT(cell)

	if !strings.HasPrefix(wkt, "POLYGON((") || !strings.HasSuffix(wkt, "))") {
		t.Fatalf("malformed WKT: %s", wkt)
	}
	points := strings.Split(strings.TrimSuffix(strings.TrimPrefix(wkt, "POLYGON(("), "))"), ", ")
	if len(points) != 5 {
		t.Fatalf("got %d ring points, want 5", len(points))
	}
	if points[0] != points[4] {
		t.Errorf("ring not closed: %s vs %s", points[0], points[4])
	}
}

func TestCellGeomString(t *testing.T) {
	cell := s2.CellID(uint64(1152921779484753920))
	cg := CellGeom{Cell: cell, Geom: "POLYGON((0 0, 1 0, 1 1, 0 1, 0 0))"}
	want := "1152921779484753920;POLYGON((0 0, 1 0, 1 1, 0 1, 0 0))"
	if got := cg.String(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
