package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/adoptionsystem/adoption-api/internal/core/domain"
	"github.com/adoptionsystem/adoption-api/internal/core/ports"
)

// AppointmentService implements booking with the one-appointment-per-day
// rule and owner/ADMIN mutation permissions.
type AppointmentService struct {
	appointments ports.AppointmentRepository
	animals      ports.AnimalRepository
	users        ports.UserRepository
	logger       zerolog.Logger
}

func NewAppointmentService(
	appointments ports.AppointmentRepository,
	animals ports.AnimalRepository,
	users ports.UserRepository,
	logger zerolog.Logger,
) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		animals:      animals,
		users:        users,
		logger:       logger,
	}
}

func (s *AppointmentService) List(ctx context.Context) ([]*domain.Appointment, error) {
	return s.appointments.List(ctx)
}

func (s *AppointmentService) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	return s.appointments.FindByID(ctx, id)
}

// Create books an appointment:
//  1. normalize the date to day granularity,
//  2. resolve the animal and client references,
//  3. reject when the day is already booked,
//  4. validate the status when provided,
//  5. persist.
//
// The unique index on the date column backs up step 3, so two
// concurrent bookings for the same day cannot both commit.
func (s *AppointmentService) Create(ctx context.Context, input ports.CreateAppointmentInput) (*domain.Appointment, error) {
	date := domain.NormalizeDate(input.Date)

	if err := s.animalExists(ctx, input.Animal); err != nil {
		return nil, err
	}
	if err := s.clientExists(ctx, input.Client); err != nil {
		return nil, err
	}

	if err := s.dateAvailable(ctx, date, ""); err != nil {
		return nil, err
	}

	status := domain.StatusPending
	if input.Status != "" {
		status = domain.AppointmentStatus(input.Status)
		if !domain.ValidAppointmentStatus(status) {
			return nil, domain.ErrInvalidStatus
		}
	}

	now := time.Now().UTC()
	appointment := &domain.Appointment{
		Date:      date,
		Status:    status,
		Animal:    input.Animal,
		Client:    input.Client,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.appointments.Create(ctx, appointment)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("appointment_id", created.ID).
		Time("date", created.Date).
		Str("client", created.Client).
		Msg("appointment booked")

	return created, nil
}

// Update mutates an appointment. Existence is checked before
// permissions, so a non-owner probing a nonexistent id sees 404, not 403.
func (s *AppointmentService) Update(ctx context.Context, id string, actor ports.Actor, input ports.UpdateAppointmentInput) (*domain.Appointment, error) {
	existing, err := s.appointments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && existing.Client != actor.UserID {
		return nil, domain.ErrForbidden
	}

	patch := ports.AppointmentPatch{}

	if input.Animal != nil {
		if err := s.animalExists(ctx, *input.Animal); err != nil {
			return nil, err
		}
		patch.Animal = input.Animal
	}
	if input.Client != nil {
		if err := s.clientExists(ctx, *input.Client); err != nil {
			return nil, err
		}
		patch.Client = input.Client
	}
	if input.Date != nil {
		date := domain.NormalizeDate(*input.Date)
		if err := s.dateAvailable(ctx, date, id); err != nil {
			return nil, err
		}
		patch.Date = &date
	}
	if input.Status != nil {
		status := domain.AppointmentStatus(*input.Status)
		if !domain.ValidAppointmentStatus(status) {
			return nil, domain.ErrInvalidStatus
		}
		patch.Status = &status
	}

	if patch.Empty() {
		return nil, domain.ErrEmptyUpdate
	}

	updated, err := s.appointments.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("appointment_id", id).Msg("appointment updated")
	return updated, nil
}

// Delete removes an appointment, subject to the same permission rule as
// Update.
func (s *AppointmentService) Delete(ctx context.Context, id string, actor ports.Actor) error {
	existing, err := s.appointments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && existing.Client != actor.UserID {
		return domain.ErrForbidden
	}

	if err := s.appointments.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("appointment_id", id).Msg("appointment deleted")
	return nil
}

// dateAvailable fails with ErrDateTaken when another appointment holds
// the given normalized date. excludeID skips the appointment being
// edited so a no-op date update is not a conflict with itself.
func (s *AppointmentService) dateAvailable(ctx context.Context, date time.Time, excludeID string) error {
	existing, err := s.appointments.FindByDate(ctx, date)
	if err != nil {
		if errors.Is(err, domain.ErrAppointmentNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != excludeID {
		return domain.ErrDateTaken
	}
	return nil
}

func (s *AppointmentService) animalExists(ctx context.Context, id string) error {
	if _, err := s.animals.FindByID(ctx, id); err != nil {
		return err
	}
	return nil
}

func (s *AppointmentService) clientExists(ctx context.Context, id string) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrClientNotFound
		}
		return err
	}
	return nil
}
