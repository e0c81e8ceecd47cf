package router

import (
	"net/http"

	_ "dental-lab/docs"
	"dental-lab/internal/domain/doctors"
	"dental-lab/internal/domain/patients"
	"dental-lab/internal/domain/practices"
	"dental-lab/internal/middleware"
	"dental-lab/internal/platform/logger"
	"dental-lab/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Doctors   *doctors.Service
	Practices *practices.Service
	Patients  *patients.Service

	// Opcionales: sin Metrics no se expone /metrics.
	Metrics *metrics.Metrics
	Logger  logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestIDHeader)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	if opts.Doctors != nil {
		doctors.RegisterRoutes(r, opts.Doctors, log)
	}
	if opts.Practices != nil {
		practices.RegisterRoutes(r, opts.Practices, log)
	}
	if opts.Patients != nil {
		patients.RegisterRoutes(r, opts.Patients, log)
	}

	return r
}
