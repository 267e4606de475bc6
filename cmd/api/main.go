package main

import (
	"fmt"
	"net/http"

	"github.com/worklens/attendance-backend-go/internal/config"
	appHTTP "github.com/worklens/attendance-backend-go/internal/handler/http"
	"github.com/worklens/attendance-backend-go/internal/interpreter"
	"github.com/worklens/attendance-backend-go/internal/pkg/database"
	"github.com/worklens/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/worklens/attendance-backend-go/internal/service/attendance"
	employeeService "github.com/worklens/attendance-backend-go/internal/service/employee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	interpreterOpts := []interpreter.Option{
		interpreter.WithLeaveLimit(cfg.Attendance.LeaveLimit),
	}
	if cfg.Attendance.MonthFirstDates {
		interpreterOpts = append(interpreterOpts, interpreter.WithDateOrder(interpreter.MonthFirst))
	}
	itp := interpreter.New(interpreterOpts...)

	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, itp)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(attendanceHandler, employeeHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
