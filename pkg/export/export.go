package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"meetgrid/core/model"
	"meetgrid/core/overlap"
	"meetgrid/core/schedule"
)

// ErrEmptyInput is returned when there is nothing to export.
var ErrEmptyInput = errors.New("nothing to export")

// DelimiterFor returns the field delimiter for the given file path: tab for
// .tsv, comma for everything else.
func DelimiterFor(path string) rune {
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		return '\t'
	}
	return ','
}

// WriteSchedule writes one participant's availability to w, one row per
// selected slot in (day, hour) order. An empty schedule is rejected so
// callers never produce a header-only file by accident.
func WriteSchedule(w io.Writer, delimiter rune, username string, s *schedule.Schedule) error {
	if s.Len() == 0 {
		return fmt.Errorf("%w: schedule for %q is empty", ErrEmptyInput, username)
	}
	cw := csv.NewWriter(w)
	cw.Comma = delimiter
	if err := cw.Write([]string{"username", "day", "day_name", "hour"}); err != nil {
		return err
	}
	for _, sl := range s.Slots() {
		rec := []string{
			username,
			strconv.Itoa(sl.Day),
			sl.DayName(),
			strconv.Itoa(sl.Hour),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteAnalysis writes the overlap analysis to w: one row for every cell of
// the grid in day-major order, 77 rows total, zero-count cells included.
// The percentage column is formatted to one decimal place; with no
// participants every row reads 0.0%.
func WriteAnalysis(w io.Writer, delimiter rune, t overlap.Tally) error {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter
	header := []string{"day", "day_name", "hour", "available_count", "total_participants", "percentage"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for day := 0; day < model.NumDays; day++ {
		for hour := model.StartHour; hour < model.EndHour; hour++ {
			sl := model.Slot{Day: day, Hour: hour}
			count := t.Counts[sl]
			pct := 0.0
			if t.Total > 0 {
				pct = float64(count) / float64(t.Total) * 100
			}
			rec := []string{
				strconv.Itoa(day),
				sl.DayName(),
				strconv.Itoa(hour),
				strconv.Itoa(count),
				strconv.Itoa(t.Total),
				fmt.Sprintf("%.1f%%", pct),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
