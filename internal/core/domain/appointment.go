package domain

import (
	"errors"
	"time"
)

// AppointmentStatus is the lifecycle state of an adoption appointment.
// Statuses are set directly by authorized callers; there are no
// automatic transitions.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCanceled  AppointmentStatus = "canceled"
)

var ErrAppointmentNotFound = errors.New("appointment not found")
var ErrDateTaken = errors.New("an appointment already exists for this date")
var ErrInvalidStatus = errors.New("invalid status value")
var ErrClientNotFound = errors.New("client not found")
var ErrForbidden = errors.New("access forbidden")
var ErrEmptyUpdate = errors.New("no valid fields provided for update")

// ValidAppointmentStatus reports whether s is one of the known statuses.
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// NormalizeDate truncates t to UTC midnight. The normalized date is the
// uniqueness key for appointments: at most one per calendar day.
func NormalizeDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Appointment books a visit for a client to meet an animal.
type Appointment struct {
	ID        string            `json:"id"`
	Date      time.Time         `json:"date"`
	Status    AppointmentStatus `json:"status"`
	Animal    string            `json:"animal"`
	Client    string            `json:"client"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
