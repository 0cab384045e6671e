package ports

import (
	"context"
	"time"

	"github.com/adoptionsystem/adoption-api/internal/core/domain"
)

// AppointmentPatch carries the mutable appointment fields for a partial
// update. Date is expected to be normalized by the service.
type AppointmentPatch struct {
	Date   *time.Time
	Status *domain.AppointmentStatus
	Animal *string
	Client *string
}

// Empty reports whether the patch would change nothing.
func (p AppointmentPatch) Empty() bool {
	return p.Date == nil && p.Status == nil && p.Animal == nil && p.Client == nil
}

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	List(ctx context.Context) ([]*domain.Appointment, error)
	FindByID(ctx context.Context, id string) (*domain.Appointment, error)
	// FindByDate looks up the appointment booked on the given normalized
	// date, returning domain.ErrAppointmentNotFound when the day is free.
	FindByDate(ctx context.Context, date time.Time) (*domain.Appointment, error)
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	Update(ctx context.Context, id string, patch AppointmentPatch) (*domain.Appointment, error)
	Delete(ctx context.Context, id string) error
}
