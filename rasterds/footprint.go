package rasterds

import (
	"fmt"

	"github.com/airbusgeo/godal"
	"github.com/golang/geo/s2"
	"github.com/sirupsen/logrus"
)

const wgs84EPSG = 4326

// CellGeom is one S2 cell of a dataset footprint, with its WKT polygon.
type CellGeom struct {
	Cell s2.CellID
	Geom string
}

func (c CellGeom) String() string {
	return fmt.Sprintf("%v;%s", int64(c.Cell), c.Geom)
}

// ExtentWKT returns the dataset's outer bounds as a WKT polygon in native
// coordinates, ring closed, x before y.
func (ds *Dataset) ExtentWKT() string {
	xMin, yMin, xMax, yMax := ds.Extent()
	return fmt.Sprintf("POLYGON((%v %v, %v %v, %v %v, %v %v, %v %v))",
		xMin, yMin, xMax, yMin, xMax, yMax, xMin, yMax, xMin, yMin)
}

// Footprint covers the dataset extent with S2 cells at the given level. The
// epsg code names the dataset's native reference system; the extent is
// reprojected to WGS84 before covering.
func Footprint(ds *Dataset, epsg int, level int) ([]CellGeom, error) {
	godal.RegisterAll()

	geom, err := geomFromEPSG(ds.ExtentWKT(), epsg)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}

	if epsg != wgs84EPSG {
		wgs84, err := godal.NewSpatialRefFromEPSG(wgs84EPSG)
		if err != nil {
			return nil, err
		}
		if err := geom.Reproject(wgs84); err != nil {
			return nil, err
		}
	}
	bounds, err := geom.Bounds()
	if err != nil {
		return nil, err
	}

	rect := s2.RectFromLatLng(s2.LatLngFromDegrees(bounds[1], bounds[0]))
	rect = rect.AddPoint(s2.LatLngFromDegrees(bounds[3], bounds[2]))

	coverer := s2.RegionCoverer{MinLevel: level, MaxLevel: level, MaxCells: 1 << 16}
	cells := coverer.Covering(rect)

	cellGeoms := make([]CellGeom, len(cells))
	for i, cell := range cells {
		cellGeoms[i] = CellGeom{Cell: cell, Geom: cellToWKT(s2.CellFromCellID(cell))}
	}
	logrus.Infof("Footprint covered by %d level %d cells", len(cellGeoms), level)
	return cellGeoms, nil
}

func geomFromEPSG(wkt string, epsg int) (*godal.Geometry, error) {
	srs, err := godal.NewSpatialRefFromEPSG(epsg)
	if err != nil {
		return nil, err
	}
	return godal.NewGeometryFromWKT(wkt, srs)
}

func cellToWKT(cell s2.Cell) string {
	wkt := "POLYGON(("
	for k := 0; k < 4; k++ {
		latlng := s2.LatLngFromPoint(cell.Vertex(k))
		wkt += fmt.Sprintf("%v %v, ", latlng.Lng.Degrees(), latlng.Lat.Degrees())
	}
	closingPoint := s2.LatLngFromPoint(cell.Vertex(0))
	wkt += fmt.Sprintf("%v %v))", closingPoint.Lng.Degrees(), closingPoint.Lat.Degrees())

	return wkt
}
