package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/strandtrack/attendance-backend-go/internal/domain/schedule"
	"github.com/strandtrack/attendance-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// List implements ScheduleHandler.
func (s *ScheduleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := s.scheduleService.List(r.Context())
	if err != nil {
		slog.Error("List schedules service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements ScheduleHandler.
func (s *ScheduleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq schedule.UpdateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update schedule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.Strand = chi.URLParam(r, "strand")

	resp, err := s.scheduleService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule updated", resp)
}

// Reset implements ScheduleHandler.
func (s *ScheduleHandlerImpl) Reset(w http.ResponseWriter, r *http.Request) {
	strand := chi.URLParam(r, "strand")

	resp, err := s.scheduleService.Reset(r.Context(), strand)
	if err != nil {
		slog.Error("Reset schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule reset to default", resp)
}
