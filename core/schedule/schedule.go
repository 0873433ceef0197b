package schedule

import (
	"errors"
	"fmt"
	"sort"

	"meetgrid/core/model"
)

// ErrSlotOutOfRange is returned when a slot does not lie on the weekly grid.
var ErrSlotOutOfRange = errors.New("slot outside the weekly grid")

// Schedule holds one participant's selected slots. The zero value is not
// usable; construct with New or FromSlots.
type Schedule struct {
	slots map[model.Slot]struct{}
}

// New returns an empty schedule.
func New() *Schedule {
	return &Schedule{slots: make(map[model.Slot]struct{})}
}

// FromSlots builds a schedule containing the given slots. Duplicates are
// collapsed. Any off-grid slot fails the whole construction.
func FromSlots(slots []model.Slot) (*Schedule, error) {
	s := New()
	for _, sl := range slots {
		if !sl.Valid() {
			return nil, fmt.Errorf("%w: day=%d hour=%d", ErrSlotOutOfRange, sl.Day, sl.Hour)
		}
		s.slots[sl] = struct{}{}
	}
	return s, nil
}

// Toggle flips the presence of sl: selected becomes deselected and vice
// versa. Off-grid slots are rejected rather than silently dropped.
func (s *Schedule) Toggle(sl model.Slot) error {
	if !sl.Valid() {
		return fmt.Errorf("%w: day=%d hour=%d", ErrSlotOutOfRange, sl.Day, sl.Hour)
	}
	if _, ok := s.slots[sl]; ok {
		delete(s.slots, sl)
	} else {
		s.slots[sl] = struct{}{}
	}
	return nil
}

// SetRange selects or deselects every hour in [hourStart, hourEnd] on one
// day. Reversed bounds are swapped and hours outside the grid are clamped to
// its edge, matching the drag-selection behaviour the range models. The day
// itself must be on the grid.
func (s *Schedule) SetRange(day, hourStart, hourEnd int, selected bool) error {
	if day < 0 || day >= model.NumDays {
		return fmt.Errorf("%w: day=%d", ErrSlotOutOfRange, day)
	}
	if hourStart > hourEnd {
		hourStart, hourEnd = hourEnd, hourStart
	}
	hourStart = model.ClampHour(hourStart)
	hourEnd = model.ClampHour(hourEnd)
	for h := hourStart; h <= hourEnd; h++ {
		sl := model.Slot{Day: day, Hour: h}
		if selected {
			s.slots[sl] = struct{}{}
		} else {
			delete(s.slots, sl)
		}
	}
	return nil
}

// Contains reports whether sl is selected.
func (s *Schedule) Contains(sl model.Slot) bool {
	_, ok := s.slots[sl]
	return ok
}

// Len returns the number of selected slots.
func (s *Schedule) Len() int { return len(s.slots) }

// Clear removes every selection. Safe to call repeatedly.
func (s *Schedule) Clear() {
	s.slots = make(map[model.Slot]struct{})
}

// Slots returns the selected slots in ascending (day, hour) order. The
// ordering is what makes exports byte-stable across runs.
func (s *Schedule) Slots() []model.Slot {
	out := make([]model.Slot, 0, len(s.slots))
	for sl := range s.slots {
		out = append(out, sl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
