package schedule

import (
	"errors"
	"testing"

	"meetgrid/core/model"
)

func TestToggleDoubleIsIdentity(t *testing.T) {
	s := New()
	if err := s.SetRange(2, 10, 14, true); err != nil {
		t.Fatalf("seed: %v", err)
	}
	before := s.Slots()
	for _, sl := range []model.Slot{{Day: 0, Hour: 9}, {Day: 2, Hour: 12}, {Day: 6, Hour: 19}} {
		if err := s.Toggle(sl); err != nil {
			t.Fatalf("toggle %v: %v", sl, err)
		}
		if err := s.Toggle(sl); err != nil {
			t.Fatalf("toggle %v: %v", sl, err)
		}
	}
	after := s.Slots()
	if len(before) != len(after) {
		t.Fatalf("double toggle changed size: %d != %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("double toggle changed contents at %d: %v != %v", i, before[i], after[i])
		}
	}
}

func TestToggleOutOfRange(t *testing.T) {
	s := New()
	for _, sl := range []model.Slot{{Day: -1, Hour: 9}, {Day: 7, Hour: 9}, {Day: 0, Hour: 8}, {Day: 0, Hour: 20}} {
		err := s.Toggle(sl)
		if !errors.Is(err, ErrSlotOutOfRange) {
			t.Fatalf("toggle %v: expected ErrSlotOutOfRange got %v", sl, err)
		}
	}
	if s.Len() != 0 {
		t.Fatalf("rejected toggles must not mutate the schedule")
	}
}

func TestSetRangeClampsAndSwaps(t *testing.T) {
	s := New()
	// Reversed bounds spanning past both grid edges.
	if err := s.SetRange(1, 23, 5, true); err != nil {
		t.Fatalf("range: %v", err)
	}
	if s.Len() != model.SlotsPerDay {
		t.Fatalf("expected whole day (%d) got %d", model.SlotsPerDay, s.Len())
	}
	if err := s.SetRange(1, 9, 19, false); err != nil {
		t.Fatalf("deselect: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("deselect left %d slots", s.Len())
	}
}

func TestSetRangeBadDay(t *testing.T) {
	s := New()
	if err := s.SetRange(7, 9, 10, true); !errors.Is(err, ErrSlotOutOfRange) {
		t.Fatalf("expected ErrSlotOutOfRange got %v", err)
	}
}

func TestSlotsSortedUnique(t *testing.T) {
	s := New()
	for _, sl := range []model.Slot{{Day: 4, Hour: 11}, {Day: 0, Hour: 19}, {Day: 0, Hour: 9}, {Day: 4, Hour: 10}} {
		if err := s.Toggle(sl); err != nil {
			t.Fatalf("toggle: %v", err)
		}
	}
	// Re-select part of the same region through a range.
	if err := s.SetRange(4, 10, 11, true); err != nil {
		t.Fatalf("range: %v", err)
	}
	got := s.Slots()
	if len(got) != 4 {
		t.Fatalf("expected 4 slots got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if !got[i-1].Less(got[i]) {
			t.Fatalf("not strictly ascending at %d: %v >= %v", i, got[i-1], got[i])
		}
	}
}

func TestClearIdempotent(t *testing.T) {
	s := New()
	if err := s.SetRange(3, 9, 12, true); err != nil {
		t.Fatalf("range: %v", err)
	}
	s.Clear()
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("expected empty got %d", s.Len())
	}
	// Cleared schedule stays usable.
	if err := s.Toggle(model.Slot{Day: 0, Hour: 9}); err != nil {
		t.Fatalf("toggle after clear: %v", err)
	}
}

func TestFromSlots(t *testing.T) {
	s, err := FromSlots([]model.Slot{{Day: 0, Hour: 9}, {Day: 0, Hour: 9}, {Day: 1, Hour: 10}})
	if err != nil {
		t.Fatalf("from slots: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("duplicates must collapse, got %d", s.Len())
	}
	if _, err := FromSlots([]model.Slot{{Day: 0, Hour: 21}}); !errors.Is(err, ErrSlotOutOfRange) {
		t.Fatalf("expected ErrSlotOutOfRange got %v", err)
	}
}
