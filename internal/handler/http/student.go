package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/strandtrack/attendance-backend-go/internal/domain/student"
	"github.com/strandtrack/attendance-backend-go/internal/handler/http/response"
)

type StudentHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type StudentHandlerImpl struct {
	studentService student.StudentService
}

func NewStudentHandler(studentService student.StudentService) StudentHandler {
	return &StudentHandlerImpl{studentService: studentService}
}

// Register implements StudentHandler.
func (s *StudentHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq student.RegisterStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("Register student decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := s.studentService.Register(r.Context(), registerReq)
	if err != nil {
		slog.Error("Register student service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Student registered", resp)
}

// Get implements StudentHandler.
func (s *StudentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := s.studentService.Get(r.Context(), id)
	if err != nil {
		slog.Error("Get student service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements StudentHandler.
func (s *StudentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter student.StudentFilter
	if strand := query.Get("strand"); strand != "" {
		filter.Strand = &strand
	}
	if search := query.Get("search"); search != "" {
		filter.Search = &search
	}

	resp, err := s.studentService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List students service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Delete implements StudentHandler.
func (s *StudentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.studentService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete student service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Student deleted", nil)
}
