// Package app arma stores, fuentes y servicios según la config.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dental-lab/internal/adapters/source/filesource"
	"dental-lab/internal/adapters/source/httpsource"
	"dental-lab/internal/adapters/source/sqlsource"
	"dental-lab/internal/adapters/source/static"
	"dental-lab/internal/config"
	"dental-lab/internal/domain/doctors"
	"dental-lab/internal/domain/patients"
	"dental-lab/internal/domain/practices"
	"dental-lab/internal/platform/httpclient"
	"dental-lab/internal/platform/logger"
	"dental-lab/internal/platform/metrics"
	"dental-lab/internal/remotesync"
	"dental-lab/internal/store"

	"golang.org/x/sync/errgroup"
)

type App struct {
	Doctors   *doctors.Service
	Practices *practices.Service
	Patients  *patients.Service
	Metrics   *metrics.Metrics

	cfg  *config.Config
	log  logger.Logger
	db   *sql.DB
	http *httpclient.Client

	doctorsSrc   remotesync.Source[doctors.Doctor]
	practicesSrc remotesync.Source[practices.Practice]
	patientsSrc  remotesync.Source[patients.Patient]

	subs []*store.Subscription
}

type Options struct {
	Config  *config.Config
	Logger  logger.Logger
	Metrics *metrics.Metrics
}

// New crea los tres stores vacíos y resuelve sus fuentes. No hace fetch:
// eso es Start o Sync.
func New(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, errors.New("app: nil config")
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	a := &App{cfg: cfg, log: log, Metrics: m}

	switch cfg.Source() {
	case config.SourceHTTP:
		c, err := httpclient.New(cfg.APIBaseURL, cfg.HTTPTimeout)
		if err != nil {
			return nil, err
		}
		a.http = c
	case config.SourceSQL:
		db, err := sqlsource.Open(cfg.DBDriver, cfg.DBDSN)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
		}
		a.db = db
	}

	var err error
	if a.doctorsSrc, err = sourceFor(a, sqlsource.TableDoctors, httpsource.PathDoctors, doctors.Seed()); err != nil {
		return nil, a.closeWith(err)
	}
	if a.practicesSrc, err = sourceFor(a, sqlsource.TablePractices, httpsource.PathPractices, practices.Seed()); err != nil {
		return nil, a.closeWith(err)
	}
	if a.patientsSrc, err = sourceFor(a, sqlsource.TablePatients, httpsource.PathPatients, patients.Seed()); err != nil {
		return nil, a.closeWith(err)
	}

	doctorsStore := store.New[doctors.Doctor]("doctors")
	practicesStore := store.New[practices.Practice]("practices")
	patientsStore := store.New[patients.Patient]("patients")

	a.subs = append(a.subs,
		metrics.Observe(m, doctorsStore),
		metrics.Observe(m, practicesStore),
		metrics.Observe(m, patientsStore),
	)

	a.Doctors = doctors.NewService(doctorsStore, doctors.Options{CreateDelay: cfg.CreateDelay, Logger: log})
	a.Practices = practices.NewService(practicesStore, practices.Options{CreateDelay: cfg.CreateDelay, Logger: log})
	a.Patients = patients.NewService(patientsStore, patients.Options{CreateDelay: cfg.CreateDelay, Logger: log})

	log.Info("stores ready", map[string]any{"source": string(cfg.Source())})
	return a, nil
}

// sourceFor elige la fuente de una colección. name es también el nombre
// del archivo de seed y de la tabla.
func sourceFor[T any](a *App, name, path string, seed []T) (remotesync.Source[T], error) {
	switch a.cfg.Source() {
	case config.SourceHTTP:
		return httpsource.New[T](a.http, path), nil
	case config.SourceSQL:
		return sqlsource.New[T](a.db, name)
	case config.SourceFiles:
		src, err := filesource.Locate[T](a.cfg.SeedDir, name)
		if err != nil {
			// sin archivo la colección queda vacía, igual que un fetch fallido
			return remotesync.SourceFunc[T]{
				Label: "file:" + name,
				Fn:    func(context.Context) ([]T, error) { return nil, err },
			}, nil
		}
		return src, nil
	default:
		return static.New(name, seed), nil
	}
}

// Start lanza los tres fetch en background. El canal se cierra cuando
// terminaron todos; recibe el primer error, si hubo.
func (a *App) Start(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- a.Sync(ctx)
	}()
	return done
}

// Sync carga las tres colecciones en paralelo y espera. Una fuente que falla
// deja su colección vacía sin afectar a las otras.
func (a *App) Sync(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error {
		return remotesync.Sync(ctx, a.Doctors.Store(), a.doctorsSrc, a.log, a.Metrics)
	})
	g.Go(func() error {
		return remotesync.Sync(ctx, a.Practices.Store(), a.practicesSrc, a.log, a.Metrics)
	})
	g.Go(func() error {
		return remotesync.Sync(ctx, a.Patients.Store(), a.patientsSrc, a.log, a.Metrics)
	})
	return g.Wait()
}

func (a *App) Close() error {
	for _, s := range a.subs {
		s.Unsubscribe()
	}
	a.subs = nil
	return a.closeWith(nil)
}

func (a *App) closeWith(err error) error {
	if a.db != nil {
		if cerr := a.db.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
		a.db = nil
	}
	return err
}
