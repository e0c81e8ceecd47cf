package patients

import (
	"context"
	"errors"
	"strings"
	"time"

	"dental-lab/internal/platform/civil"
	"dental-lab/internal/platform/delay"
	"dental-lab/internal/platform/logger"
	"dental-lab/internal/platform/validate"
	"dental-lab/internal/query"
	"dental-lab/internal/store"
)

var (
	ErrInvalidInput = validate.ErrInvalidInput
	ErrNotFound     = errors.New("patient not found")
)

type Options struct {
	CreateDelay time.Duration
	Logger      logger.Logger
}

type Service struct {
	store *store.Store[Patient]
	delay time.Duration
	log   logger.Logger
}

func NewService(st *store.Store[Patient], opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		store: st,
		delay: opts.CreateDelay,
		log:   log.With(map[string]any{"collection": st.Name()}),
	}
}

func (s *Service) Store() *store.Store[Patient] { return s.store }

type CreateInput struct {
	Name                  string
	BirthDate             string
	Phone                 string
	Email                 string
	ShadeID               string
	HealthInsuranceNumber string
}

// validate devuelve la fecha de nacimiento ya parseada (nil si no vino).
func (in CreateInput) validate() (*civil.Date, error) {
	if err := validate.First(
		validate.Required("name", in.Name),
		validate.MaxLen("shadeID", strings.TrimSpace(in.ShadeID), 10),
		validate.MaxLen("healthInsuranceNumber", strings.TrimSpace(in.HealthInsuranceNumber), 20),
	); err != nil {
		return nil, err
	}

	if email := strings.TrimSpace(in.Email); email != "" && !validate.Email(email) {
		return nil, validate.Invalid("email", "must be a valid email address")
	}

	if strings.TrimSpace(in.BirthDate) == "" {
		return nil, nil
	}
	d, err := civil.Parse(in.BirthDate)
	if err != nil {
		return nil, validate.Invalid("birthDate", "must be a date (YYYY-MM-DD)")
	}
	return &d, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Patient, error) {
	birth, err := in.validate()
	if err != nil {
		return Patient{}, err
	}
	if err := ctx.Err(); err != nil {
		return Patient{}, err
	}
	return s.insert(in, birth), nil
}

// CreateAsync: ver doctors.Service.CreateAsync.
func (s *Service) CreateAsync(ctx context.Context, in CreateInput, done func(Patient, error)) error {
	birth, err := in.validate()
	if err != nil {
		return err
	}
	delay.Run(ctx, s.delay, func() (Patient, error) {
		return s.insert(in, birth), nil
	}, done)
	return nil
}

func (s *Service) CreateAndWait(ctx context.Context, in CreateInput) (Patient, error) {
	birth, err := in.validate()
	if err != nil {
		return Patient{}, err
	}
	return delay.Wait(ctx, s.delay, func() (Patient, error) {
		return s.insert(in, birth), nil
	})
}

func (s *Service) insert(in CreateInput, birth *civil.Date) Patient {
	phone := ""
	if strings.TrimSpace(in.Phone) != "" {
		phone = validate.FormatPhone(in.Phone)
	}
	p := s.store.Insert(func(id int) Patient {
		return Patient{
			PatientID:             id,
			Name:                  strings.TrimSpace(in.Name),
			BirthDate:             birth,
			Phone:                 phone,
			Email:                 strings.TrimSpace(in.Email),
			ShadeID:               Shade(strings.TrimSpace(in.ShadeID)),
			HealthInsuranceNumber: strings.TrimSpace(in.HealthInsuranceNumber),
			Cases:                 []Case{},
		}
	})
	s.log.Info("patient registered", map[string]any{"patient_id": p.PatientID})
	return p
}

func (s *Service) List(f Filter) []Patient {
	return Apply(s.store.Snapshot(), f)
}

func (s *Service) GetByID(id int) (Patient, error) {
	p, ok := query.Find(s.store.Snapshot(), id)
	if !ok {
		return Patient{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) Stats() Stats {
	return ComputeStats(s.store.Snapshot())
}
