package handler

import "time"

type createAppointmentRequest struct {
	Date   time.Time `json:"date"   validate:"required"`
	Animal string    `json:"animal" validate:"required"`
	Client string    `json:"client" validate:"required"`
	Status string    `json:"status" validate:"omitempty,oneof=pending confirmed completed canceled"`
}

type updateAppointmentRequest struct {
	Date   *time.Time `json:"date"`
	Status *string    `json:"status" validate:"omitempty,oneof=pending confirmed completed canceled"`
	Animal *string    `json:"animal"`
	Client *string    `json:"client"`
}
