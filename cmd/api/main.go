package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/config"
	appHTTP "github.com/oleeahmmed/hrmabsiddik-sub001/internal/handler/http"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/pkg/cron"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/pkg/database"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/repository/postgresql"
	attendanceService "github.com/oleeahmmed/hrmabsiddik-sub001/internal/service/attendance"
	"github.com/oleeahmmed/hrmabsiddik-sub001/internal/service/master"
	payrollService "github.com/oleeahmmed/hrmabsiddik-sub001/internal/service/payroll"
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

	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	configRepo := postgresql.NewAttendanceConfigRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	resultRepo := postgresql.NewAttendanceResultRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		configRepo,
		punchRepo,
		resultRepo,
		employeeRepo,
		shiftRepo,
		holidayRepo,
		leaveRepo,
	)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, attendanceSvc)
	masterSvc := master.NewMasterService(companyRepo, employeeRepo, shiftRepo, holidayRepo, leaveRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		cfg.App.AllowedOrigins,
		attendanceHandler,
		payrollHandler,
		masterHandler,
	)

	if cfg.Cron.Enabled {
		loc, err := time.LoadLocation(cfg.Cron.Timezone)
		if err != nil {
			log.Fatal("Invalid CRON_TIMEZONE: ", err)
		}
		scheduler := cron.NewScheduler()
		cron.NewAttendanceJobs(attendanceSvc, companyRepo, loc).RegisterJobs(scheduler)
		scheduler.Start()
		defer scheduler.Stop()
	}

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	fmt.Println("Shutting down...")
	_ = server.Close()
}
