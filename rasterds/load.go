package rasterds

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/airbusgeo/godal"
	"github.com/sirupsen/logrus"
)

// LoadOpts controls how GeoTIFF files are assembled into a Dataset.
type LoadOpts struct {
	// BandNames names the raster's bands in file order. Defaults to
	// band_1..band_N.
	BandNames []string
	// Labels names the time slices, one per input file. Defaults to the
	// file base name without extension.
	Labels []string
	// NumWorkers bounds the number of files read in parallel.
	NumWorkers int
}

type fileJob struct {
	index int
	path  string
}

// LoadGeoTIFFs reads one or more GeoTIFF files into a labeled Dataset, one
// time slice per file. All files must share the same pixel dimensions and
// band count. A single file with no label produces a dataset without a time
// axis.
func LoadGeoTIFFs(paths []string, opts LoadOpts) (*Dataset, error) {
	godal.RegisterAll()

	if len(paths) == 0 {
		return nil, errors.New("no input rasters given")
	}
	if len(opts.Labels) != 0 && len(opts.Labels) != len(paths) {
		return nil, fmt.Errorf("%d labels given for %d rasters", len(opts.Labels), len(paths))
	}

	ds, bandNames, err := prepareDataset(paths[0], opts)
	if err != nil {
		return nil, err
	}
	if len(paths) > 1 || len(opts.Labels) != 0 {
		ds.Times = make([]string, len(paths))
		for i, path := range paths {
			if len(opts.Labels) != 0 {
				ds.Times[i] = opts.Labels[i]
			} else {
				ds.Times[i] = sliceLabel(path)
			}
		}
	}

	// One buffer per band, one slot per file. Workers write disjoint
	// slots, so no locking is needed on the slices themselves.
	slices := make([][][]float64, len(bandNames))
	for b := range slices {
		slices[b] = make([][]float64, len(paths))
	}

	numWorkers := opts.NumWorkers
	if numWorkers < 1 {
		numWorkers = 1
	}
	jobs := make(chan fileJob)
	errCh := make(chan error, len(paths))
	var wg sync.WaitGroup

	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for job := range jobs {
				logrus.Infof("Reading raster %s", job.path)
				if err := readSlices(job, ds, slices); err != nil {
					errCh <- fmt.Errorf("%s: %w", job.path, err)
				}
			}
		}()
	}
	for i, path := range paths {
		jobs <- fileJob{index: i, path: path}
	}
	close(jobs)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		return nil, err
	}

	for b, name := range bandNames {
		if err := ds.AddBand(name, slices[b]...); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

// prepareDataset opens the first raster to fix the dataset's structure:
// dimensions, georeferencing, nodata and band naming.
func prepareDataset(path string, opts LoadOpts) (*Dataset, []string, error) {
	src, err := godal.Open(path)
	if err != nil {
		logrus.Error(err)
		return nil, nil, err
	}
	defer func() {
		err = errors.Join(err, src.Close())
	}()

	bands := src.Bands()
	if len(bands) == 0 {
		return nil, nil, fmt.Errorf("%s has no bands", path)
	}
	if len(opts.BandNames) != 0 && len(opts.BandNames) != len(bands) {
		return nil, nil, fmt.Errorf("%d band names given for %d bands", len(opts.BandNames), len(bands))
	}

	struc := bands[0].Structure()
	ds := New(struc.SizeX, struc.SizeY)

	origin, xRes, yRes, err := getOriginAndResolution(src)
	if err != nil {
		return nil, nil, err
	}
	ds.Origin = origin
	ds.XRes = xRes
	ds.YRes = yRes

	if noData, ok := bands[0].NoData(); ok {
		ds.NoData = noData
	} else {
		logrus.Warnf("NoData not set on %s, assuming %v", path, DefaultNoData)
	}

	names := opts.BandNames
	if len(names) == 0 {
		names = make([]string, len(bands))
		for i := range bands {
			names[i] = fmt.Sprintf("band_%d", i+1)
		}
	}
	return ds, names, nil
}

func readSlices(job fileJob, ds *Dataset, slices [][][]float64) error {
	src, err := godal.Open(job.path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, src.Close())
	}()

	bands := src.Bands()
	if len(bands) != len(slices) {
		return fmt.Errorf("has %d bands, want %d", len(bands), len(slices))
	}
	for b := range bands {
		struc := bands[b].Structure()
		if struc.SizeX != ds.Width || struc.SizeY != ds.Height {
			return fmt.Errorf("band %d is %dx%d, want %dx%d", b+1, struc.SizeX, struc.SizeY, ds.Width, ds.Height)
		}
		buf := make([]float64, ds.Width*ds.Height)
		if err := bands[b].Read(0, 0, buf, ds.Width, ds.Height); err != nil {
			return err
		}
		slices[b][job.index] = buf
	}
	return nil
}

func getOriginAndResolution(src *godal.Dataset) (Point, float64, float64, error) {
	gt, err := src.GeoTransform()
	if err != nil {
		logrus.Error(err)
		return Point{}, 0, 0, err
	}
	origin := Point{Y: gt[3], X: gt[0]}
	return origin, gt[1], gt[5], nil
}

func sliceLabel(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
