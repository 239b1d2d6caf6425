package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/strandtrack/attendance-backend-go/internal/config"
	"github.com/strandtrack/attendance-backend-go/internal/domain/attendance"
	"github.com/strandtrack/attendance-backend-go/internal/domain/auth"
	"github.com/strandtrack/attendance-backend-go/internal/domain/schedule"
	"github.com/strandtrack/attendance-backend-go/internal/domain/student"
	"github.com/strandtrack/attendance-backend-go/internal/pkg/jwt"
	attendanceService "github.com/strandtrack/attendance-backend-go/internal/service/attendance"
	authService "github.com/strandtrack/attendance-backend-go/internal/service/auth"
	reportService "github.com/strandtrack/attendance-backend-go/internal/service/report"
	scheduleService "github.com/strandtrack/attendance-backend-go/internal/service/schedule"
	studentService "github.com/strandtrack/attendance-backend-go/internal/service/student"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

type fakeUserRepo struct {
	users map[string]auth.User
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return auth.User{}, auth.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (auth.User, error) {
	u, ok := f.users[id]
	if !ok {
		return auth.User{}, auth.ErrUserNotFound
	}
	return u, nil
}

type fakeStudentRepo struct {
	students map[string]student.Student
}

func (f *fakeStudentRepo) Create(ctx context.Context, s student.Student) (student.Student, error) {
	f.students[s.ID] = s
	return s, nil
}

func (f *fakeStudentRepo) GetByID(ctx context.Context, id string) (student.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return student.Student{}, student.ErrStudentNotFound
	}
	return s, nil
}

func (f *fakeStudentRepo) List(ctx context.Context, filter student.StudentFilter) ([]student.Student, error) {
	var out []student.Student
	for _, s := range f.students {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStudentRepo) Delete(ctx context.Context, id string) error {
	delete(f.students, id)
	return nil
}

type fakeAttendanceRepo struct {
	records map[string]attendance.Record
}

func (f *fakeAttendanceRepo) GetByStudentAndDate(ctx context.Context, studentID, date string) (attendance.Record, error) {
	rec, ok := f.records[studentID+"|"+date]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	f.records[rec.StudentID+"|"+rec.Date] = rec
	return rec, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, rec attendance.Record) error {
	f.records[rec.StudentID+"|"+rec.Date] = rec
	return nil
}

func (f *fakeAttendanceRepo) ListByDate(ctx context.Context, date string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.Date == date {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeScheduleRepo struct {
	overrides schedule.Map
}

func (f *fakeScheduleRepo) GetOverrides(ctx context.Context) (schedule.Map, error) {
	return f.overrides, nil
}

func (f *fakeScheduleRepo) Upsert(ctx context.Context, strand string, s schedule.Schedule) error {
	f.overrides[strand] = s
	return nil
}

func (f *fakeScheduleRepo) Delete(ctx context.Context, strand string) error {
	delete(f.overrides, strand)
	return nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	userRepo := &fakeUserRepo{users: map[string]auth.User{
		"u1": {ID: "u1", Email: "admin@school.edu", Name: "Admin", PasswordHash: string(hash), IsAdmin: true},
		"u2": {ID: "u2", Email: "teacher@school.edu", Name: "Teacher", PasswordHash: string(hash), IsAdmin: false},
	}}
	studentRepo := &fakeStudentRepo{students: map[string]student.Student{
		"2025-0001": {ID: "2025-0001", FirstName: "Maria", LastName: "Reyes", Strand: "STEM"},
	}}
	attendanceRepo := &fakeAttendanceRepo{records: make(map[string]attendance.Record)}
	scheduleRepo := &fakeScheduleRepo{overrides: make(schedule.Map)}

	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)

	cfg := &config.Config{
		App: config.AppConfig{
			Env:            "test",
			FrontendOrigin: "http://localhost:3000",
		},
	}

	return NewRouter(
		cfg,
		jwtService,
		NewAuthHandler(authService.NewAuthService(userRepo, jwtService)),
		NewAttendanceHandler(attendanceService.NewAttendanceService(attendanceRepo, studentRepo, scheduleRepo)),
		NewScheduleHandler(scheduleService.NewScheduleService(scheduleRepo)),
		NewReportHandler(reportService.NewReportService(attendanceRepo, scheduleRepo)),
		NewStudentHandler(studentService.NewStudentService(studentRepo)),
	)
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func loginToken(t *testing.T, router http.Handler, email string) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.AccessToken)
	return body.Data.AccessToken
}

func TestRouter_Heartbeat(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Login_WrongPassword(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "admin@school.edu",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_KioskScansAreOpen(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/attendance/check-in", "", map[string]string{
		"student_id": "2025-0001",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/attendance/check-out", "", map[string]string{
		"student_id": "2025-0001",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	// Second check-in of the day is rejected.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/attendance/check-in", "", map[string]string{
		"student_id": "2025-0001",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRouter_DashboardRequiresAuth(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/attendance?date=2026-03-02", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := loginToken(t, router, "teacher@school.edu")
	rec = doJSON(t, router, http.MethodGet, "/api/v1/attendance?date=2026-03-02", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_DailyReport(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router, "teacher@school.edu")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/reports/daily?date=2026-03-02", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Date          string `json:"date"`
			AverageTimeIn string `json:"average_time_in"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-03-02", body.Data.Date)
	assert.Equal(t, "-", body.Data.AverageTimeIn)
}

func TestRouter_ScheduleUpdateIsAdminOnly(t *testing.T) {
	router := newTestRouter(t)

	teacherToken := loginToken(t, router, "teacher@school.edu")
	rec := doJSON(t, router, http.MethodPut, "/api/v1/schedules/STEM", teacherToken, map[string]interface{}{
		"grace_minutes": 15,
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken := loginToken(t, router, "admin@school.edu")
	rec = doJSON(t, router, http.MethodPut, "/api/v1/schedules/STEM", adminToken, map[string]interface{}{
		"grace_minutes": 15,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/schedules/STEM", adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_StudentRegistrationIsAdminOnly(t *testing.T) {
	router := newTestRouter(t)

	body := map[string]string{
		"id":         "2025-0002",
		"first_name": "Juan",
		"last_name":  "Cruz",
		"strand":     "ICT",
	}

	teacherToken := loginToken(t, router, "teacher@school.edu")
	rec := doJSON(t, router, http.MethodPost, "/api/v1/students", teacherToken, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken := loginToken(t, router, "admin@school.edu")
	rec = doJSON(t, router, http.MethodPost, "/api/v1/students", adminToken, body)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/students", teacherToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_RefreshTokenRejectedAsAccessToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "teacher@school.edu",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			RefreshToken string `json:"refresh_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	rec = doJSON(t, router, http.MethodGet, "/api/v1/attendance?date=2026-03-02", body.Data.RefreshToken, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
