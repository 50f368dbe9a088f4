package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/stafflane/backoffice-backend-go/internal/config"
	appHTTP "github.com/stafflane/backoffice-backend-go/internal/handler/http"
	"github.com/stafflane/backoffice-backend-go/internal/pkg/cache"
	"github.com/stafflane/backoffice-backend-go/internal/pkg/cron"
	"github.com/stafflane/backoffice-backend-go/internal/pkg/database"
	"github.com/stafflane/backoffice-backend-go/internal/pkg/email"
	"github.com/stafflane/backoffice-backend-go/internal/pkg/storage"
	"github.com/stafflane/backoffice-backend-go/internal/repository/postgresql"
	attendanceService "github.com/stafflane/backoffice-backend-go/internal/service/attendance"
	deductionService "github.com/stafflane/backoffice-backend-go/internal/service/deduction"
	paymentService "github.com/stafflane/backoffice-backend-go/internal/service/payment"
	payrollService "github.com/stafflane/backoffice-backend-go/internal/service/payroll"
	reportService "github.com/stafflane/backoffice-backend-go/internal/service/report"
	siteService "github.com/stafflane/backoffice-backend-go/internal/service/site"
	slipService "github.com/stafflane/backoffice-backend-go/internal/service/slip"
	structureService "github.com/stafflane/backoffice-backend-go/internal/service/structure"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	structureRepo := postgresql.NewStructureRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	slipRepo := postgresql.NewSlipRepository(db)
	deductionRepo := postgresql.NewDeductionRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(db)
	siteRepo := postgresql.NewSiteRepository(db)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	statsCache := cache.NewTTLCache(cfg.Payroll.StatsCacheTTL)

	structureSvc := structureService.NewStructureService(db, structureRepo, employeeRepo, logger)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, cfg.Payroll.DefaultWorkingDays, logger)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, structureRepo, employeeRepo, attendanceSvc, logger)
	slipSvc := slipService.NewSlipService(slipRepo, payrollRepo, employeeRepo, fileStorage, emailService, logger)
	deductionSvc := deductionService.NewDeductionService(deductionRepo, employeeRepo, statsCache, logger)
	paymentSvc := paymentService.NewPaymentService(paymentRepo, logger)
	siteSvc := siteService.NewSiteService(siteRepo, logger)
	reportSvc := reportService.NewReportService(attendanceRepo, payrollRepo, logger)

	structureHandler := appHTTP.NewStructureHandler(structureSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	slipHandler := appHTTP.NewSlipHandler(slipSvc)
	deductionHandler := appHTTP.NewDeductionHandler(deductionSvc)
	paymentHandler := appHTTP.NewPaymentHandler(paymentSvc)
	siteHandler := appHTTP.NewSiteHandler(siteSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	if cfg.Payroll.AutoProcess {
		scheduler := cron.NewScheduler()
		cron.NewPayrollJobs(payrollSvc).RegisterJobs(scheduler)
		scheduler.Start()
		defer scheduler.Stop()
	}

	router := appHTTP.NewRouter(
		structureHandler,
		attendanceHandler,
		payrollHandler,
		slipHandler,
		deductionHandler,
		paymentHandler,
		siteHandler,
		reportHandler,
		cfg.App.CORSOrigin,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
