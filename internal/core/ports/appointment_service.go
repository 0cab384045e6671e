package ports

import (
	"context"
	"time"

	"github.com/adoptionsystem/adoption-api/internal/core/domain"
)

// Actor identifies the authenticated caller for permission checks on
// appointment mutations.
type Actor struct {
	UserID string
	Role   string
}

// IsAdmin reports whether the actor holds the ADMIN role.
func (a Actor) IsAdmin() bool { return a.Role == domain.RoleAdmin }

// CreateAppointmentInput carries all data needed to book an appointment.
// Status is optional; empty means pending.
type CreateAppointmentInput struct {
	Date   time.Time
	Animal string
	Client string
	Status string
}

// UpdateAppointmentInput is the whitelist of mutable appointment fields.
type UpdateAppointmentInput struct {
	Date   *time.Time
	Status *string
	Animal *string
	Client *string
}

// AppointmentService defines use-case operations for appointments.
// Update and Delete are restricted to the appointment's client or an
// ADMIN; the existence check runs before the permission check.
type AppointmentService interface {
	List(ctx context.Context) ([]*domain.Appointment, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	Create(ctx context.Context, input CreateAppointmentInput) (*domain.Appointment, error)
	Update(ctx context.Context, id string, actor Actor, input UpdateAppointmentInput) (*domain.Appointment, error)
	Delete(ctx context.Context, id string, actor Actor) error
}
