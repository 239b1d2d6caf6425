package report

import (
	"math"

	"github.com/strandtrack/attendance-backend-go/internal/domain/attendance"
	"github.com/strandtrack/attendance-backend-go/internal/domain/schedule"
	"github.com/strandtrack/attendance-backend-go/internal/pkg/clock"
)

// StrandBreakdown is one bar-chart row: on-time versus late arrivals
// for a single strand.
type StrandBreakdown struct {
	Strand string
	OnTime int
	Late   int
}

// DailySummary is the aggregate view of one day's records.
type DailySummary struct {
	Date            string
	Total           int
	OnTime          int
	Late            int
	NotCheckedIn    int
	PendingCheckout int
	AverageTimeIn   clock.Minutes
	AverageTimeOut  clock.Minutes
	Strands         []StrandBreakdown
}

// Summarize folds a day's records into the dashboard summary. Records
// whose date differs are ignored. Averages cover only records with the
// respective scan present and are NoTime when none has it. An empty
// day yields zero counts, never a division failure.
func Summarize(records []attendance.Record, date string, schedules schedule.Map, strands []string) DailySummary {
	summary := DailySummary{
		Date:           date,
		AverageTimeIn:  clock.NoTime,
		AverageTimeOut: clock.NoTime,
	}

	summary.Strands = make([]StrandBreakdown, len(strands))
	perStrand := make(map[string]int, len(strands))
	for i, strand := range strands {
		summary.Strands[i] = StrandBreakdown{Strand: strand}
		perStrand[strand] = i
	}

	var inSum, outSum int
	var inCount, outCount int

	for _, rec := range records {
		if rec.Date != date {
			continue
		}
		summary.Total++

		if departure := clock.Normalize(rec.TimeOut); !departure.IsNone() {
			outSum += int(departure)
			outCount++
		}

		result := attendance.Classify(rec, schedules)
		if !result.HasCheckedIn {
			summary.NotCheckedIn++
			continue
		}

		inSum += int(result.ArrivalMinutes)
		inCount++

		if result.Tone == attendance.ToneLate {
			summary.Late++
		} else {
			summary.OnTime++
		}
		if !result.HasCheckedOut {
			summary.PendingCheckout++
		}

		if i, ok := perStrand[rec.Strand]; ok {
			if result.Tone == attendance.ToneLate {
				summary.Strands[i].Late++
			} else {
				summary.Strands[i].OnTime++
			}
		}
	}

	if inCount > 0 {
		summary.AverageTimeIn = clock.Minutes(math.Round(float64(inSum) / float64(inCount)))
	}
	if outCount > 0 {
		summary.AverageTimeOut = clock.Minutes(math.Round(float64(outSum) / float64(outCount)))
	}

	return summary
}
