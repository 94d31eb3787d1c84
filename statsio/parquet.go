package statsio

import (
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/sirupsen/logrus"

	"composite-tools/composite"
	"composite-tools/rasterds"
)

type StatsRow struct {
	Band   string  `parquet:"band, type=UTF8"`
	Time   string  `parquet:"time, type=UTF8"`
	Min    float64 `parquet:"min, type=DOUBLE"`
	Max    float64 `parquet:"max, type=DOUBLE"`
	Mean   float64 `parquet:"mean, type=DOUBLE"`
	StdDev float64 `parquet:"std_dev, type=DOUBLE"`
	Valid  int64   `parquet:"valid, type=INT64"`
	NoData int64   `parquet:"nodata, type=INT64"`
}

type FootprintRow struct {
	S2id  int64  `parquet:"s2_id, type=INT64"`
	Token string `parquet:"token, type=UTF8"`
	Geom  string `parquet:"geom, type=UTF8"`
}

func WriteStatsParquet(stats []composite.BandStats, path string) error {
	rows := make([]StatsRow, len(stats))
	for i, s := range stats {
		rows[i] = StatsRow{
			Band:   s.Band,
			Time:   s.Time,
			Min:    s.Min,
			Max:    s.Max,
			Mean:   s.Mean,
			StdDev: s.StdDev,
			Valid:  int64(s.Valid),
			NoData: int64(s.NoData),
		}
	}
	return writeParquet(rows, path)
}

func WriteFootprintParquet(cells []rasterds.CellGeom, path string) error {
	rows := make([]FootprintRow, len(cells))
	for i, cell := range cells {
		rows[i] = FootprintRow{
			S2id:  int64(cell.Cell),
			Token: cell.Cell.ToToken(),
			Geom:  cell.Geom,
		}
	}
	return writeParquet(rows, path)
}

func writeParquet[Row any](rows []Row, path string) error {
	output, err := os.Create(path)
	if err != nil {
		return err
	}

	schema := parquet.SchemaOf(new(Row))
	writer := parquet.NewGenericWriter[Row](output, schema, parquet.Compression(&parquet.Snappy))
	defer func() {
		if err := writer.Close(); err != nil {
			logrus.Error(err)
		}
		if err := output.Close(); err != nil {
			logrus.Error(err)
		}
	}()

	logrus.Infof("Writing %d rows to %s", len(rows), path)
	if _, err := writer.Write(rows); err != nil {
		return err
	}
	return writer.Flush()
}
