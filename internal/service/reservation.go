package service

import (
	"github.com/google/uuid"

	"github.com/gourmet-grove/ordering-service/internal/models"
	"github.com/gourmet-grove/ordering-service/internal/store"
)

// ReservationService owns the table booking workflow
type ReservationService struct {
	store  *store.Store
	strict bool
}

// NewReservationService creates a new reservation service
func NewReservationService(st *store.Store, strictTransitions bool) *ReservationService {
	return &ReservationService{
		store:  st,
		strict: strictTransitions,
	}
}

// Submit creates a reservation in the Pending state. Guest count
// bounds are enforced at the boundary before this is called.
func (s *ReservationService) Submit(req models.ReservationRequest) models.Reservation {
	return s.store.CreateReservation(models.Reservation{
		Name:   req.Name,
		Phone:  req.Phone,
		Date:   req.Date,
		Time:   req.Time,
		Guests: req.Guests,
	})
}

// List returns all reservations ordered by date, newest first
func (s *ReservationService) List() []models.Reservation {
	return s.store.ListReservations()
}

// SetStatus records the approval decision
func (s *ReservationService) SetStatus(id uuid.UUID, status models.ReservationStatus) (models.Reservation, error) {
	return s.store.SetReservationStatus(id, status, s.strict)
}
