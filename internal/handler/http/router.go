package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	structureHandler StructureHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	slipHandler SlipHandler,
	deductionHandler DeductionHandler,
	paymentHandler PaymentHandler,
	siteHandler SiteHandler,
	reportHandler ReportHandler,
	corsOrigin string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "stafflane-backoffice"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api", func(r chi.Router) {

		r.Route("/salary-structures", func(r chi.Router) {
			r.Post("/", structureHandler.Create)
			r.Get("/", structureHandler.List)
			r.Get("/employee/{employeeId}", structureHandler.GetActiveByEmployee)
			r.Get("/{id}", structureHandler.Get)
			r.Put("/{id}", structureHandler.Update)
			r.Delete("/{id}", structureHandler.Deactivate)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/", attendanceHandler.Ingest)
			r.Get("/", attendanceHandler.List)
			r.Get("/summary", attendanceHandler.Summary)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Post("/process", payrollHandler.Process)
			r.Post("/process-all", payrollHandler.ProcessAll)
			r.Get("/", payrollHandler.List)
			r.Get("/summary", payrollHandler.Summary)
			r.Get("/{id}", payrollHandler.Get)
			r.Patch("/{id}/payment-status", payrollHandler.UpdatePaymentStatus)
			r.Put("/{id}/payment-status", payrollHandler.UpdatePaymentStatus)
		})

		r.Route("/salary-slips", func(r chi.Router) {
			r.Post("/generate", slipHandler.Generate)
			r.Get("/", slipHandler.List)
			r.Get("/{id}", slipHandler.Get)
			r.Get("/{id}/pdf", slipHandler.DownloadPDF)
			r.Post("/{id}/email", slipHandler.SendEmail)
		})

		r.Route("/deductions", func(r chi.Router) {
			// The doubled segment mirrors the dashboard client paths.
			r.Post("/deductions", deductionHandler.Create)
			r.Get("/deductions", deductionHandler.List)
			r.Get("/deductions/{id}", deductionHandler.Get)
			r.Put("/deductions/{id}", deductionHandler.Update)
			r.Delete("/deductions/{id}", deductionHandler.Delete)
			r.Get("/stats", deductionHandler.Stats)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Post("/", paymentHandler.Create)
			r.Get("/", paymentHandler.List)
			r.Get("/methods/distribution", paymentHandler.MethodDistribution)
			r.Get("/stats", paymentHandler.Stats)
			r.Get("/{id}", paymentHandler.Get)
		})

		r.Route("/sites", func(r chi.Router) {
			r.Post("/", siteHandler.Create)
			r.Get("/", siteHandler.List)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/attendance/sites", reportHandler.SiteAttendance)
			r.Get("/attendance/departments", reportHandler.DepartmentAttendance)
			r.Get("/attendance/export", reportHandler.ExportAttendanceCSV)
			r.Get("/shortage-trend", reportHandler.ShortageTrend)
			r.Get("/payroll/export", reportHandler.ExportPayrollCSV)
		})
	})

	return r
}
