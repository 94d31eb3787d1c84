package statsio

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"composite-tools/composite"
	"composite-tools/rasterds"
)

func WriteStatsCSV(stats []composite.BandStats, path string) error {
	lines := make([]string, len(stats))
	for i, s := range stats {
		lines[i] = fmt.Sprintf("%s,%s,%v,%v,%v,%v,%d,%d",
			s.Band, s.Time, s.Min, s.Max, s.Mean, s.StdDev, s.Valid, s.NoData)
	}
	return writeCSV("band,time,min,max,mean,std_dev,valid,nodata", lines, path)
}

func WriteFootprintCSV(cells []rasterds.CellGeom, path string) error {
	lines := make([]string, len(cells))
	for i, cell := range cells {
		lines[i] = fmt.Sprintf("%v,%s,\"%s\"", int64(cell.Cell), cell.Cell.ToToken(), cell.Geom)
	}
	return writeCSV("s2_id,token,geom", lines, path)
}

func writeCSV(header string, lines []string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil {
			logrus.Error(err)
		}
	}()

	if _, err := f.WriteString(header + "\n"); err != nil {
		return err
	}
	for i, line := range lines {
		if i%10000 == 0 {
			logrus.Infof("Writing row %d", i)
		}
		if _, err := f.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	if err = f.Sync(); err != nil {
		return err
	}
	return nil
}
