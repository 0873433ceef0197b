package overlap

import (
	"sort"

	"meetgrid/core/model"
	"meetgrid/core/roster"
	"meetgrid/core/schedule"
)

// Tally holds per-slot participation counts for one roster snapshot. Total is
// the number of participants, not a slot count. A Tally is always recomputed
// in full; the grid is small enough that incremental updates buy nothing.
type Tally struct {
	Counts map[model.Slot]int
	Total  int
}

// Compute counts, for every grid slot, how many participants selected it.
// An empty roster yields an empty tally with Total 0.
func Compute(r *roster.Roster) Tally {
	t := Tally{Counts: make(map[model.Slot]int), Total: r.Len()}
	r.Each(func(_ string, sched *schedule.Schedule) {
		for _, sl := range sched.Slots() {
			t.Counts[sl]++
		}
	})
	return t
}

// FullMatches returns every slot where all participants are available, in
// ascending (day, hour) order. An empty roster has no full matches.
func FullMatches(t Tally) []model.Slot {
	if t.Total == 0 {
		return nil
	}
	var out []model.Slot
	for sl, c := range t.Counts {
		if c == t.Total {
			out = append(out, sl)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Summary aggregates the headline numbers shown on the dashboard.
type Summary struct {
	Participants int
	FullMatches  int
}

// Summarize returns the participant count and the number of slots with full
// coverage.
func Summarize(t Tally) Summary {
	return Summary{Participants: t.Total, FullMatches: len(FullMatches(t))}
}
