package composite

import (
	"math"

	"composite-tools/rasterds"
)

func Mean(inData ...float64) float64 {
	sum := Sum(inData...)
	return sum / float64(len(inData))
}

func Sum(inData ...float64) float64 {
	var sum float64
	for _, val := range inData {
		sum += val
	}
	return sum
}

func Max(inData ...float64) float64 {
	max := inData[0]
	for _, val := range inData[1:] {
		if val > max {
			max = val
		}
	}
	return max
}

func Min(inData ...float64) float64 {
	min := inData[0]
	for _, val := range inData[1:] {
		if val < min {
			min = val
		}
	}
	return min
}

// BandStats summarises one band at one time slice.
type BandStats struct {
	Band   string
	Time   string
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	Valid  int
	NoData int
}

// SliceStats computes statistics for a band slice, counting nodata pixels
// separately from the valid population.
func SliceStats(ds *rasterds.Dataset, band string, t int) (BandStats, error) {
	slice, err := ds.Slice(band, t)
	if err != nil {
		return BandStats{}, err
	}

	stats := BandStats{Band: band}
	if label, ok := ds.TimeLabel(t); ok {
		stats.Time = label
	}

	valid := make([]float64, 0, len(slice))
	for _, value := range slice {
		if value == ds.NoData || math.IsNaN(value) {
			stats.NoData++
			continue
		}
		valid = append(valid, value)
	}
	stats.Valid = len(valid)
	if stats.Valid == 0 {
		return stats, nil
	}

	stats.Min = Min(valid...)
	stats.Max = Max(valid...)
	stats.Mean = Mean(valid...)

	var sqSum float64
	for _, value := range valid {
		dev := value - stats.Mean
		sqSum += dev * dev
	}
	stats.StdDev = math.Sqrt(sqSum / float64(stats.Valid))
	return stats, nil
}

// AllStats computes SliceStats for every band and time slice of a dataset,
// bands in registration order.
func AllStats(ds *rasterds.Dataset) ([]BandStats, error) {
	var all []BandStats
	for _, band := range ds.BandNames() {
		for t := 0; t < ds.NumTimes(); t++ {
			stats, err := SliceStats(ds, band, t)
			if err != nil {
				return nil, err
			}
			all = append(all, stats)
		}
	}
	return all, nil
}
