package attendance

import (
	"time"

	"github.com/strandtrack/attendance-backend-go/internal/pkg/clock"
)

// Record is one student's attendance for one calendar day. TimeIn and
// TimeOut are each set at most once, on the first scan of that kind.
type Record struct {
	ID        string
	StudentID string
	FirstName string
	LastName  string
	Strand    string
	Date      string // YYYY-MM-DD
	TimeIn    clock.TimeValue
	TimeOut   clock.TimeValue
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Tone string

const (
	ToneNeutral Tone = "neutral"
	ToneOnTime  Tone = "ontime"
	ToneLate    Tone = "late"
)

// Classification is the derived arrival status for one record. It is
// computed fresh per query and never stored.
type Classification struct {
	HasCheckedIn     bool
	HasCheckedOut    bool
	IsLate           bool
	ArrivalMinutes   clock.Minutes
	ThresholdMinutes clock.Minutes
	StatusLabel      string
	Tone             Tone
}
