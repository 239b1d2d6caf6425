package main

import (
	"fmt"
	"net/http"

	"github.com/strandtrack/attendance-backend-go/internal/config"
	appHTTP "github.com/strandtrack/attendance-backend-go/internal/handler/http"
	"github.com/strandtrack/attendance-backend-go/internal/pkg/database"
	"github.com/strandtrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/strandtrack/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/strandtrack/attendance-backend-go/internal/service/attendance"
	authService "github.com/strandtrack/attendance-backend-go/internal/service/auth"
	reportService "github.com/strandtrack/attendance-backend-go/internal/service/report"
	scheduleService "github.com/strandtrack/attendance-backend-go/internal/service/schedule"
	studentService "github.com/strandtrack/attendance-backend-go/internal/service/student"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	studentRepo := postgresql.NewStudentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	studentSvc := studentService.NewStudentService(studentRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, studentRepo, scheduleRepo)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, scheduleRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	studentHandler := appHTTP.NewStudentHandler(studentSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		attendanceHandler,
		scheduleHandler,
		reportHandler,
		studentHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
