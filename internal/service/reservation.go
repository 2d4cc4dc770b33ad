package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/lodgings-api/internal/domain"
	"github.com/pkordes/lodgings-api/internal/repo"
)

// ReservationService implements business logic for Reservation operations.
// It holds the lodgings repo because a reservation must reference an
// existing lodging.
type ReservationService struct {
	reservations repo.ReservationRepo
	lodgings     repo.LodgingRepo
}

// NewReservationService constructs a ReservationService backed by the provided repos.
func NewReservationService(reservations repo.ReservationRepo, lodgings repo.LodgingRepo) *ReservationService {
	return &ReservationService{reservations: reservations, lodgings: lodgings}
}

// Create validates the reservation, verifies the lodging exists, then persists.
// Returns domain.ErrValidation for bad dates and domain.ErrNotFound when the
// lodging does not exist.
func (s *ReservationService) Create(ctx context.Context, res domain.Reservation) (domain.Reservation, error) {
	res.Start = dateOnly(res.Start)
	res.End = dateOnly(res.End)
	if err := validateReservation(res); err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.Create: %w", err)
	}
	if _, err := s.lodgings.GetByID(ctx, res.LodgingID); err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.Create: lodging: %w", err)
	}
	created, err := s.reservations.Create(ctx, res)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single reservation.
func (s *ReservationService) GetByID(ctx context.Context, id uuid.UUID) (domain.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.GetByID: %w", err)
	}
	return res, nil
}

// Delete cancels a reservation made by userID. A reservation belonging to
// someone else is reported as domain.ErrNotFound.
func (s *ReservationService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service.ReservationService.Delete: %w", err)
	}
	if res.UserID != userID {
		return fmt.Errorf("service.ReservationService.Delete: %w", domain.ErrNotFound)
	}
	if err := s.reservations.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ReservationService.Delete: %w", err)
	}
	return nil
}

// validateReservation enforces:
//   - LodgingID and UserID are set.
//   - Start and End are set and End is not before Start.
func validateReservation(res domain.Reservation) error {
	if res.LodgingID == uuid.Nil {
		return fmt.Errorf("%w: lodgingId is required", domain.ErrValidation)
	}
	if res.UserID == uuid.Nil {
		return fmt.Errorf("%w: userId is required", domain.ErrValidation)
	}
	if res.Start.IsZero() || res.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", domain.ErrValidation)
	}
	if res.End.Before(res.Start) {
		return fmt.Errorf("%w: end must not be before start", domain.ErrValidation)
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
