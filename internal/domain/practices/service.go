package practices

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
	ErrNotFound     = errors.New("practice not found")
)

type Options struct {
	CreateDelay time.Duration
	Logger      logger.Logger
}

type Service struct {
	store *store.Store[Practice]
	delay time.Duration
	log   logger.Logger
	now   func() time.Time
}

func NewService(st *store.Store[Practice], opts Options) *Service {
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

func (s *Service) Store() *store.Store[Practice] { return s.store }

type CreateInput struct {
	Name           string
	CompanyName    string
	Address        string
	Phone          string
	Email          string
	TaxID          string
	OpeningHours   string
	DeliveryMethod string
}

func (in CreateInput) validate() error {
	if err := validate.First(
		validate.Required("name", in.Name),
		validate.MaxLen("name", in.Name, 1024),
		validate.Required("companyName", in.CompanyName),
		validate.MaxLen("companyName", in.CompanyName, 1024),
		validate.Required("address", in.Address),
		validate.MaxLen("address", in.Address, 200),
		validate.Required("phone", in.Phone),
		validate.MaxLen("phone", in.Phone, 100),
		validate.MaxLen("email", in.Email, 1024),
		validate.MaxLen("taxID", in.TaxID, 1024),
		validate.MaxLen("openingHours", in.OpeningHours, 100),
		validate.MaxLen("deliveryMethod", in.DeliveryMethod, 200),
	); err != nil {
		return err
	}

	// email es opcional, pero si viene debe ser válido
	if email := strings.TrimSpace(in.Email); email != "" && !validate.Email(email) {
		return validate.Invalid("email", "must be a valid email address")
	}
	if !validate.Phone(in.Phone) {
		return validate.Invalid("phone", "must be a valid phone number")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Practice, error) {
	if err := in.validate(); err != nil {
		return Practice{}, err
	}
	if err := ctx.Err(); err != nil {
		return Practice{}, err
	}
	return s.insert(in), nil
}

// CreateAsync: ver doctors.Service.CreateAsync.
func (s *Service) CreateAsync(ctx context.Context, in CreateInput, done func(Practice, error)) error {
	if err := in.validate(); err != nil {
		return err
	}
	delay.Run(ctx, s.delay, func() (Practice, error) {
		return s.insert(in), nil
	}, done)
	return nil
}

func (s *Service) CreateAndWait(ctx context.Context, in CreateInput) (Practice, error) {
	if err := in.validate(); err != nil {
		return Practice{}, err
	}
	return delay.Wait(ctx, s.delay, func() (Practice, error) {
		return s.insert(in), nil
	})
}

func (s *Service) insert(in CreateInput) Practice {
	today := civil.DateOf(s.now())
	p := s.store.Insert(func(id int) Practice {
		return Practice{
			PracticeID:     id,
			Name:           strings.TrimSpace(in.Name),
			CompanyName:    strings.TrimSpace(in.CompanyName),
			Address:        strings.TrimSpace(in.Address),
			Phone:          validate.FormatPhone(in.Phone),
			Email:          strings.TrimSpace(in.Email),
			TaxID:          strings.TrimSpace(in.TaxID),
			OpeningHours:   strings.TrimSpace(in.OpeningHours),
			DeliveryMethod: strings.TrimSpace(in.DeliveryMethod),
			PartnerSince:   today,
			Status:         StatusActive,
		}
	})
	s.log.Info("practice registered", map[string]any{"practice_id": p.PracticeID})
	return p
}

func (s *Service) List(f Filter) []Practice {
	return Apply(s.store.Snapshot(), f)
}

func (s *Service) GetByID(id int) (Practice, error) {
	p, ok := query.Find(s.store.Snapshot(), id)
	if !ok {
		return Practice{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) Stats() Stats {
	return ComputeStats(s.store.Snapshot())
}
