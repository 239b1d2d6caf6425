package report

import (
	"context"
	"fmt"
	"time"

	"github.com/strandtrack/attendance-backend-go/internal/domain/attendance"
	"github.com/strandtrack/attendance-backend-go/internal/domain/report"
	"github.com/strandtrack/attendance-backend-go/internal/domain/schedule"
	"github.com/strandtrack/attendance-backend-go/internal/pkg/clock"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	attendance.AttendanceRepository
	schedule.ScheduleRepository
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	scheduleRepo schedule.ScheduleRepository,
) report.ReportService {
	return &ReportServiceImpl{
		AttendanceRepository: attendanceRepo,
		ScheduleRepository:   scheduleRepo,
	}
}

// Daily implements report.ReportService.
func (r *ReportServiceImpl) Daily(ctx context.Context, date string) (report.DailySummaryResponse, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	var records []attendance.Record
	var overrides schedule.Map

	// The record list and the override map are independent reads.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = r.AttendanceRepository.ListByDate(gctx, date)
		return err
	})
	g.Go(func() error {
		var err error
		overrides, err = r.ScheduleRepository.GetOverrides(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return report.DailySummaryResponse{}, fmt.Errorf("failed to load daily report data: %w", err)
	}

	summary := report.Summarize(records, date, overrides, schedule.Strands())

	resp := report.DailySummaryResponse{
		Date:            summary.Date,
		Total:           summary.Total,
		OnTime:          summary.OnTime,
		Late:            summary.Late,
		NotCheckedIn:    summary.NotCheckedIn,
		PendingCheckout: summary.PendingCheckout,
		AverageTimeIn:   clock.FormatMinutes(summary.AverageTimeIn),
		AverageTimeOut:  clock.FormatMinutes(summary.AverageTimeOut),
	}
	for _, row := range summary.Strands {
		resp.Strands = append(resp.Strands, report.StrandBreakdownItem{
			Strand: row.Strand,
			OnTime: row.OnTime,
			Late:   row.Late,
		})
	}

	return resp, nil
}
