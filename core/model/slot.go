package model

import "fmt"

// Grid dimensions. The week runs Monday through Sunday and each day holds
// eleven one-hour slots. The first slot starts at 09:00 and the last covers
// 19:00-20:00.
const (
	NumDays     = 7
	StartHour   = 9
	EndHour     = 20
	SlotsPerDay = EndHour - StartHour
)

// DayNames maps a day index to its English name. Monday is 0.
var DayNames = [NumDays]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Slot identifies one cell of the weekly grid. Day is the weekday index and
// Hour the starting hour of the one-hour slot.
type Slot struct {
	Day  int
	Hour int
}

// Valid reports whether the slot lies on the grid.
func (s Slot) Valid() bool {
	return s.Day >= 0 && s.Day < NumDays && s.Hour >= StartHour && s.Hour < EndHour
}

// DayName returns the English weekday name, or an empty string for an
// off-grid day index.
func (s Slot) DayName() string {
	if s.Day < 0 || s.Day >= NumDays {
		return ""
	}
	return DayNames[s.Day]
}

// TimeLabel formats the slot start time as HH:00.
func (s Slot) TimeLabel() string {
	return fmt.Sprintf("%02d:00", s.Hour)
}

func (s Slot) String() string {
	return fmt.Sprintf("%s %s", s.DayName(), s.TimeLabel())
}

// Less orders slots day-major, hour-minor. This is the canonical listing and
// export order.
func (s Slot) Less(o Slot) bool {
	if s.Day != o.Day {
		return s.Day < o.Day
	}
	return s.Hour < o.Hour
}

// ClampHour pins h to the hour range of the grid.
func ClampHour(h int) int {
	if h < StartHour {
		return StartHour
	}
	if h >= EndHour {
		return EndHour - 1
	}
	return h
}
