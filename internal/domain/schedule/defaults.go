package schedule

import "github.com/strandtrack/attendance-backend-go/internal/pkg/clock"

// Built-in arrival windows per strand. Overrides stored by the
// schedule manager replace these wholesale for their strand.
var strandDefaults = map[string]Schedule{
	"STEM":  {Start: clock.Label("08:00 AM"), End: clock.Label("03:45 PM"), GraceMinutes: 5},
	"ICT":   {Start: clock.Label("07:30 AM"), End: clock.Label("03:30 PM"), GraceMinutes: 10},
	"HUMSS": {Start: clock.Label("09:00 AM"), End: clock.Label("04:30 PM"), GraceMinutes: 5},
	"ABM":   {Start: clock.Label("08:30 AM"), End: clock.Label("04:00 PM"), GraceMinutes: 5},
	"GAS":   {Start: clock.Label("07:45 AM"), End: clock.Label("03:50 PM"), GraceMinutes: 7},
}

// fallbackSchedule covers strands that have neither a built-in default
// nor an override.
var fallbackSchedule = Schedule{
	Start:        clock.Label("08:00 AM"),
	End:          clock.Label("04:00 PM"),
	GraceMinutes: 5,
}

var strandOrder = []string{"STEM", "ICT", "HUMSS", "ABM", "GAS"}

// Strands returns the known strand names in display order.
func Strands() []string {
	out := make([]string, len(strandOrder))
	copy(out, strandOrder)
	return out
}

// IsKnownStrand reports whether strand has a built-in default.
func IsKnownStrand(strand string) bool {
	_, ok := strandDefaults[strand]
	return ok
}

// Default returns the built-in schedule for a strand, or the global
// fallback for unknown strands.
func Default(strand string) Schedule {
	if s, ok := strandDefaults[strand]; ok {
		return s
	}
	return fallbackSchedule
}

// DefaultMap returns a fresh copy of every built-in schedule.
func DefaultMap() Map {
	m := make(Map, len(strandDefaults))
	for strand, s := range strandDefaults {
		m[strand] = s
	}
	return m
}

// Resolve picks the effective schedule for a strand: an override wins
// verbatim, then the built-in default, then the global fallback. The
// map is never mutated.
func Resolve(m Map, strand string) Schedule {
	if s, ok := m[strand]; ok {
		return s
	}
	return Default(strand)
}
