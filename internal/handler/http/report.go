package http

import (
	"log/slog"
	"net/http"

	"github.com/strandtrack/attendance-backend-go/internal/domain/report"
	"github.com/strandtrack/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Daily(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Daily implements ReportHandler.
func (h *ReportHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	resp, err := h.reportService.Daily(r.Context(), date)
	if err != nil {
		slog.Error("Daily report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
