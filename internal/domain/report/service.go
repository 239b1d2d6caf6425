package report

import "context"

type ReportService interface {
	// Daily returns the summary for one date. An empty date defaults
	// to today.
	Daily(ctx context.Context, date string) (DailySummaryResponse, error)
}
