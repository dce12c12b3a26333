package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	appEnv string,
	allowedOrigins []string,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	masterHandler MasterHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
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

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/companies", func(r chi.Router) {
			r.Get("/", masterHandler.ListCompanies)
			r.Post("/", masterHandler.CreateCompany)

			r.Route("/{companyID}", func(r chi.Router) {
				r.Get("/", masterHandler.GetCompany)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", masterHandler.ListEmployees)
					r.Post("/", masterHandler.CreateEmployee)
					r.Get("/{employeeID}", masterHandler.GetEmployee)
				})

				r.Route("/shifts", func(r chi.Router) {
					r.Get("/", masterHandler.ListShifts)
					r.Post("/", masterHandler.CreateShift)
					r.Delete("/{shiftID}", masterHandler.DeleteShift)
				})

				r.Route("/holidays", func(r chi.Router) {
					r.Post("/", masterHandler.CreateHoliday)
					r.Delete("/{holidayID}", masterHandler.DeleteHoliday)
				})

				r.Route("/leaves", func(r chi.Router) {
					r.Post("/", masterHandler.CreateLeave)
					r.Patch("/{leaveID}/status", masterHandler.SetLeaveStatus)
				})

				r.Route("/attendance", func(r chi.Router) {
					r.Post("/punches/import", attendanceHandler.ImportPunches)
					r.Get("/results", attendanceHandler.ListResults)
					r.Get("/summary", attendanceHandler.Summary)
					r.Get("/config", attendanceHandler.GetConfig)
					r.Put("/config", attendanceHandler.UpdateConfig)
				})

				r.Route("/payroll", func(r chi.Router) {
					r.Get("/records", payrollHandler.ListRecords)
					r.Post("/mark-paid", payrollHandler.MarkPaid)
				})
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/generate", attendanceHandler.Generate)
			r.Post("/preview", attendanceHandler.Preview)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Post("/generate", payrollHandler.Generate)
			r.Post("/preview", payrollHandler.Preview)
		})
	})

	return r
}
