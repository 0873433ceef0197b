package overlap

import (
	"gonum.org/v1/gonum/stat"

	"meetgrid/core/model"
)

// Stats carries aggregate coverage figures for the analysis dashboard.
type Stats struct {
	// MeanRatio is the coverage ratio averaged over all 77 grid cells,
	// zero-count cells included.
	MeanRatio float64
	// Peak is the highest participation count on the grid.
	Peak int
	// PeakSlot is the first slot, in (day, hour) order, reaching Peak. Only
	// meaningful when Peak > 0.
	PeakSlot model.Slot
}

// ComputeStats derives coverage statistics from a tally. With no
// participants every figure is zero.
func ComputeStats(t Tally) Stats {
	var s Stats
	if t.Total == 0 {
		return s
	}
	ratios := make([]float64, 0, model.NumDays*model.SlotsPerDay)
	for day := 0; day < model.NumDays; day++ {
		for hour := model.StartHour; hour < model.EndHour; hour++ {
			sl := model.Slot{Day: day, Hour: hour}
			c := t.Counts[sl]
			ratios = append(ratios, float64(c)/float64(t.Total))
			if c > s.Peak {
				s.Peak = c
				s.PeakSlot = sl
			}
		}
	}
	s.MeanRatio = stat.Mean(ratios, nil)
	return s
}
