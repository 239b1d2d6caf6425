package schedule

import "github.com/strandtrack/attendance-backend-go/internal/pkg/clock"

// Schedule is one strand's expected arrival window. Start and end are
// kept in their caller-supplied representation; all comparisons happen
// after normalization. Start before end is not enforced.
type Schedule struct {
	Start        clock.TimeValue
	End          clock.TimeValue
	GraceMinutes int
}

// Map holds the effective schedule overrides keyed by strand. It is
// owned by the caller; resolution never mutates it.
type Map map[string]Schedule
