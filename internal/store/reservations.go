package store

import (
	"sort"

	"github.com/google/uuid"

	"github.com/gourmet-grove/ordering-service/internal/models"
)

// CreateReservation assigns a fresh ID, forces the status to Pending
// and appends the reservation
func (s *Store) CreateReservation(res models.Reservation) models.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	res.ID = uuid.New()
	res.Status = models.ReservationStatusPending
	s.reservations = append(s.reservations, res)
	return res
}

// ListReservations returns all reservations ordered by date,
// newest first
func (s *Store) ListReservations() []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reservations := make([]models.Reservation, len(s.reservations))
	copy(reservations, s.reservations)

	// Dates are YYYY-MM-DD, so the lexicographic order is the
	// chronological order
	sort.SliceStable(reservations, func(i, j int) bool {
		return reservations[i].Date > reservations[j].Date
	})
	return reservations
}

// SetReservationStatus records the approval decision. With strict
// enabled only a Pending reservation may be decided; otherwise the
// status is overwritten unconditionally.
func (s *Store) SetReservationStatus(id uuid.UUID, status models.ReservationStatus, strict bool) (models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reservations {
		if s.reservations[i].ID != id {
			continue
		}
		if strict && !s.reservations[i].Status.CanTransitionTo(status) {
			return models.Reservation{}, ErrInvalidTransition
		}
		s.reservations[i].Status = status
		return s.reservations[i], nil
	}
	return models.Reservation{}, ErrNotFound
}
