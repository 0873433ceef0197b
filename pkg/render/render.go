package render

import (
	"fmt"
	"strings"

	"meetgrid/core/model"
	"meetgrid/core/overlap"
	"meetgrid/core/schedule"
)

// bandGlyphs maps a coverage band to the character filling its grid cell.
var bandGlyphs = map[overlap.Band]rune{
	overlap.BandNone:    '.',
	overlap.BandMinimal: '-',
	overlap.BandLow:     '+',
	overlap.BandMedium:  '*',
	overlap.BandHigh:    '#',
	overlap.BandFull:    '@',
}

const cellWidth = 5

func writeHeader(b *strings.Builder) {
	b.WriteString("     ")
	for d := 0; d < model.NumDays; d++ {
		fmt.Fprintf(b, "%*s", cellWidth, model.DayNames[d][:3])
	}
	b.WriteByte('\n')
}

// Week renders one participant's availability as a text grid, hours as rows
// and days as columns, matching the familiar calendar orientation.
func Week(s *schedule.Schedule) string {
	var b strings.Builder
	writeHeader(&b)
	for hour := model.StartHour; hour < model.EndHour; hour++ {
		fmt.Fprintf(&b, "%02d:00", hour)
		for day := 0; day < model.NumDays; day++ {
			cell := "."
			if s.Contains(model.Slot{Day: day, Hour: hour}) {
				cell = "#"
			}
			fmt.Fprintf(&b, "%*s", cellWidth, cell)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Heat renders the overlap tally as a text grid. Each cell shows the
// participation count followed by its band glyph, so 3@ means three of three
// participants.
func Heat(t overlap.Tally) string {
	var b strings.Builder
	writeHeader(&b)
	for hour := model.StartHour; hour < model.EndHour; hour++ {
		fmt.Fprintf(&b, "%02d:00", hour)
		for day := 0; day < model.NumDays; day++ {
			count := t.Counts[model.Slot{Day: day, Hour: hour}]
			glyph := bandGlyphs[overlap.Classify(count, t.Total)]
			cell := string(glyph)
			if count > 0 {
				cell = fmt.Sprintf("%d%c", count, glyph)
			}
			fmt.Fprintf(&b, "%*s", cellWidth, cell)
		}
		b.WriteByte('\n')
	}
	b.WriteString("\nlegend: . none  - <25%  + 25%+  * 50%+  # 75%+  @ all\n")
	return b.String()
}

// Matches renders the full-overlap slots as a two-column table.
func Matches(slots []model.Slot) string {
	if len(slots) == 0 {
		return "no slot works for everyone\n"
	}
	var b strings.Builder
	b.WriteString("Day        Time\n")
	for _, sl := range slots {
		fmt.Fprintf(&b, "%-10s %s\n", sl.DayName(), sl.TimeLabel())
	}
	return b.String()
}

// Summary renders the headline numbers and coverage statistics.
func Summary(sum overlap.Summary, stats overlap.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "participants:    %d\n", sum.Participants)
	fmt.Fprintf(&b, "perfect matches: %d\n", sum.FullMatches)
	fmt.Fprintf(&b, "mean coverage:   %.1f%%\n", stats.MeanRatio*100)
	if stats.Peak > 0 {
		fmt.Fprintf(&b, "busiest slot:    %s (%d available)\n", stats.PeakSlot, stats.Peak)
	}
	return b.String()
}
