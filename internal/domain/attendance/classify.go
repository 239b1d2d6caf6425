package attendance

import (
	"github.com/strandtrack/attendance-backend-go/internal/domain/schedule"
	"github.com/strandtrack/attendance-backend-go/internal/pkg/clock"
)

// Classify decides whether a record's arrival was on time or late
// against the strand's effective schedule. The late threshold is the
// normalized start plus the grace window, without midnight wraparound:
// a start near midnight with a grace pushing past 1440 simply compares
// as on time for every same-day arrival. An arrival exactly equal to
// the threshold is on time; only a strictly later arrival is late.
// When the schedule start itself does not parse, the threshold is
// NoTime and no arrival is marked late.
func Classify(rec Record, schedules schedule.Map) Classification {
	sched := schedule.Resolve(schedules, rec.Strand)

	startMinutes := clock.Normalize(sched.Start)
	thresholdMinutes := clock.AddMinutes(startMinutes, sched.GraceMinutes)

	arrivalMinutes := clock.Normalize(rec.TimeIn)
	departureMinutes := clock.Normalize(rec.TimeOut)

	hasCheckedIn := !arrivalMinutes.IsNone()
	hasCheckedOut := !departureMinutes.IsNone()

	if !hasCheckedIn {
		return Classification{
			HasCheckedIn:     false,
			HasCheckedOut:    hasCheckedOut,
			ArrivalMinutes:   arrivalMinutes,
			ThresholdMinutes: thresholdMinutes,
			StatusLabel:      "Awaiting " + clock.FormatMinutes(startMinutes) + " check-in",
			Tone:             ToneNeutral,
		}
	}

	isLate := !thresholdMinutes.IsNone() && arrivalMinutes > thresholdMinutes

	tone := ToneOnTime
	label := "On time"
	if isLate {
		tone = ToneLate
		label = "Late"
	}
	if hasCheckedOut {
		label += " - Checked out"
	} else {
		label += " - On campus"
	}

	return Classification{
		HasCheckedIn:     true,
		HasCheckedOut:    hasCheckedOut,
		IsLate:           isLate,
		ArrivalMinutes:   arrivalMinutes,
		ThresholdMinutes: thresholdMinutes,
		StatusLabel:      label,
		Tone:             tone,
	}
}
