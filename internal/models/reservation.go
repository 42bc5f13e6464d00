package models

import (
	"github.com/google/uuid"
)

// ReservationStatus represents the approval state of a reservation
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "Pending"
	ReservationStatusConfirmed ReservationStatus = "Confirmed"
	ReservationStatusDeclined  ReservationStatus = "Declined"
)

// CanTransitionTo reports whether the approval step is legal. Only
// consulted in strict mode; the reference behaviour does not reject
// re-deciding an already decided reservation.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	return s == ReservationStatusPending &&
		(next == ReservationStatusConfirmed || next == ReservationStatusDeclined)
}

// Reservation represents a table booking request
type Reservation struct {
	ID     uuid.UUID         `json:"id"`
	Name   string            `json:"name"`
	Phone  string            `json:"phone"`
	Date   string            `json:"date"` // YYYY-MM-DD
	Time   string            `json:"time"` // HH:MM
	Guests int               `json:"guests"`
	Status ReservationStatus `json:"status"`
}

// ReservationRequest is used for reservation submission
type ReservationRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=100"`
	Phone  string `json:"phone" validate:"required"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Time   string `json:"time" validate:"required"`
	Guests int    `json:"guests" validate:"required,min=1,max=12"`
}

// ReservationStatusRequest is used for the approval decision
type ReservationStatusRequest struct {
	Status ReservationStatus `json:"status" validate:"required,oneof=Confirmed Declined"`
}
