package roster

import (
	"fmt"

	"meetgrid/core/schedule"
)

// Roster maps participant names to their schedules. Insertion order is
// preserved so that batch imports stay deterministic.
type Roster struct {
	names     []string
	schedules map[string]*schedule.Schedule
}

// New returns an empty roster.
func New() *Roster {
	return &Roster{schedules: make(map[string]*schedule.Schedule)}
}

// Add registers sched under name. If the name is already taken it is
// disambiguated by appending _1, _2, ... until unique; the first loaded
// participant keeps the base name. The final name is returned.
func (r *Roster) Add(name string, sched *schedule.Schedule) string {
	final := name
	for i := 1; ; i++ {
		if _, taken := r.schedules[final]; !taken {
			break
		}
		final = fmt.Sprintf("%s_%d", name, i)
	}
	r.schedules[final] = sched
	r.names = append(r.names, final)
	return final
}

// Get returns the schedule registered under name.
func (r *Roster) Get(name string) (*schedule.Schedule, bool) {
	s, ok := r.schedules[name]
	return s, ok
}

// Names returns the participant names in load order.
func (r *Roster) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of participants.
func (r *Roster) Len() int { return len(r.names) }

// Clear removes every participant. There is no per-participant removal;
// clearing is all or nothing.
func (r *Roster) Clear() {
	r.names = nil
	r.schedules = make(map[string]*schedule.Schedule)
}

// Each calls fn for every participant in load order.
func (r *Roster) Each(fn func(name string, sched *schedule.Schedule)) {
	for _, n := range r.names {
		fn(n, r.schedules[n])
	}
}
