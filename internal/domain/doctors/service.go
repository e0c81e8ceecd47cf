package doctors

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
	ErrNotFound     = errors.New("doctor not found")
)

type Options struct {
	// CreateDelay simula la latencia de red antes de confirmar un alta.
	CreateDelay time.Duration
	Logger      logger.Logger
}

type Service struct {
	store *store.Store[Doctor]
	delay time.Duration
	log   logger.Logger
	now   func() time.Time
}

func NewService(st *store.Store[Doctor], opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		store: st,
		delay: opts.CreateDelay,
		log:   log.With(map[string]any{"collection": st.Name()}),
		now:   time.Now,
	}
}

func (s *Service) Store() *store.Store[Doctor] { return s.store }

// CreateInput son los campos del formulario de alta.
type CreateInput struct {
	FullName string
	Username string
	Email    string
	Phone    string
}

func (in CreateInput) validate() error {
	if err := validate.First(
		validate.Required("fullName", in.FullName),
		validate.Required("username", in.Username),
		validate.Required("email", in.Email),
		validate.Required("phone", in.Phone),
	); err != nil {
		return err
	}
	if !validate.Email(strings.TrimSpace(in.Email)) {
		return validate.Invalid("email", "must be a valid email address")
	}
	if !validate.Username(strings.TrimSpace(in.Username)) {
		return validate.Invalid("username", "can only contain letters, numbers, dots, hyphens, and underscores")
	}
	return nil
}

// Create valida y agrega el doctor de inmediato. El id lo asigna el store.
func (s *Service) Create(ctx context.Context, in CreateInput) (Doctor, error) {
	if err := in.validate(); err != nil {
		return Doctor{}, err
	}
	if err := ctx.Err(); err != nil {
		return Doctor{}, err
	}
	return s.insert(in), nil
}

// CreateAsync valida de forma síncrona y, si es válido, agrega el doctor
// después de la latencia simulada sin bloquear al caller. done recibe el
// doctor creado o el error de ctx. Con error de validación done no se invoca.
func (s *Service) CreateAsync(ctx context.Context, in CreateInput, done func(Doctor, error)) error {
	if err := in.validate(); err != nil {
		return err
	}
	delay.Run(ctx, s.delay, func() (Doctor, error) {
		return s.insert(in), nil
	}, done)
	return nil
}

// CreateAndWait es CreateAsync esperando el resultado.
func (s *Service) CreateAndWait(ctx context.Context, in CreateInput) (Doctor, error) {
	if err := in.validate(); err != nil {
		return Doctor{}, err
	}
	return delay.Wait(ctx, s.delay, func() (Doctor, error) {
		return s.insert(in), nil
	})
}

func (s *Service) insert(in CreateInput) Doctor {
	today := civil.DateOf(s.now())
	d := s.store.Insert(func(id int) Doctor {
		return Doctor{
			DoctorID:  id,
			Name:      strings.TrimSpace(in.FullName),
			NickName:  strings.TrimSpace(in.Username),
			Email:     strings.TrimSpace(in.Email),
			Phone:     validate.FormatPhone(in.Phone),
			Practice:  DefaultPractice,
			Specialty: DefaultSpecialty,
			JoinDate:  today,
			Patients:  []PatientSummary{},
		}
	})
	s.log.Info("doctor created", map[string]any{"doctor_id": d.DoctorID})
	return d
}

func (s *Service) List(f Filter) []Doctor {
	return Apply(s.store.Snapshot(), f)
}

func (s *Service) GetByID(id int) (Doctor, error) {
	d, ok := query.Find(s.store.Snapshot(), id)
	if !ok {
		return Doctor{}, ErrNotFound
	}
	return d, nil
}

func (s *Service) Stats() Stats {
	return ComputeStats(s.store.Snapshot(), s.now())
}
