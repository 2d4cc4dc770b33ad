package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/lodgings-api/internal/domain"
	"github.com/pkordes/lodgings-api/internal/repo"
)

// LodgingService implements business logic for Lodging operations.
type LodgingService struct {
	lodgings     repo.LodgingRepo
	reservations repo.ReservationRepo
	pageSize     int
}

// NewLodgingService constructs a LodgingService. pageSize is the fixed number
// of lodgings per listing page; values below 1 use domain.DefaultPageSize.
func NewLodgingService(lodgings repo.LodgingRepo, reservations repo.ReservationRepo, pageSize int) *LodgingService {
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}
	return &LodgingService{lodgings: lodgings, reservations: reservations, pageSize: pageSize}
}

// Create validates and persists a new lodging.
func (s *LodgingService) Create(ctx context.Context, l domain.Lodging) (domain.Lodging, error) {
	l = normalizeLodging(l)
	if err := validateStruct(l); err != nil {
		return domain.Lodging{}, fmt.Errorf("service.LodgingService.Create: %w", err)
	}
	created, err := s.lodgings.Create(ctx, l)
	if err != nil {
		return domain.Lodging{}, fmt.Errorf("service.LodgingService.Create: %w", err)
	}
	return created, nil
}

// Seed inserts lodgings loaded at startup. Every entry is validated before
// any is stored, so an invalid entry leaves the store untouched. The error
// names the zero-based index of the first invalid entry.
func (s *LodgingService) Seed(ctx context.Context, lodgings []domain.Lodging) (int, error) {
	normalized := make([]domain.Lodging, len(lodgings))
	for i, l := range lodgings {
		normalized[i] = normalizeLodging(l)
		if err := validateStruct(normalized[i]); err != nil {
			return 0, fmt.Errorf("service.LodgingService.Seed: entry %d: %w", i, err)
		}
	}
	for i, l := range normalized {
		if _, err := s.lodgings.Create(ctx, l); err != nil {
			return i, fmt.Errorf("service.LodgingService.Seed: entry %d: %w", i, err)
		}
	}
	return len(normalized), nil
}

// GetByID returns a lodging with its reservations attached.
// Reservations is always non-nil.
func (s *LodgingService) GetByID(ctx context.Context, id uuid.UUID) (domain.Lodging, error) {
	l, err := s.lodgings.GetByID(ctx, id)
	if err != nil {
		return domain.Lodging{}, fmt.Errorf("service.LodgingService.GetByID: %w", err)
	}
	res, err := s.reservations.ListByLodgingID(ctx, id)
	if err != nil {
		return domain.Lodging{}, fmt.Errorf("service.LodgingService.GetByID: reservations: %w", err)
	}
	if res == nil {
		res = []domain.Reservation{}
	}
	l.Reservations = res
	return l, nil
}

// ListPaged returns one page of lodgings and the page descriptor for it.
// requestedPage may be nil or out of range; it is clamped by domain.ComputePage.
// The returned slice is never nil.
func (s *LodgingService) ListPaged(ctx context.Context, requestedPage *int, baseURI string) (domain.PageResult, []domain.Lodging, error) {
	total, err := s.lodgings.Count(ctx)
	if err != nil {
		return domain.PageResult{}, nil, fmt.Errorf("service.LodgingService.ListPaged: %w", err)
	}

	page := domain.ComputePage(requestedPage, total, s.pageSize, baseURI)

	items, err := s.lodgings.List(ctx, page.Offset, page.Limit)
	if err != nil {
		return domain.PageResult{}, nil, fmt.Errorf("service.LodgingService.ListPaged: %w", err)
	}
	if items == nil {
		items = []domain.Lodging{}
	}
	return page, items, nil
}

// Update replaces every mutable field of an existing lodging.
func (s *LodgingService) Update(ctx context.Context, l domain.Lodging) (domain.Lodging, error) {
	l = normalizeLodging(l)
	if err := validateStruct(l); err != nil {
		return domain.Lodging{}, fmt.Errorf("service.LodgingService.Update: %w", err)
	}
	updated, err := s.lodgings.Update(ctx, l)
	if err != nil {
		return domain.Lodging{}, fmt.Errorf("service.LodgingService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a lodging and its reservations.
func (s *LodgingService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.lodgings.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.LodgingService.Delete: %w", err)
	}
	return nil
}

// normalizeLodging trims surrounding whitespace so that whitespace-only
// values fail the required check, and uppercases the state code.
func normalizeLodging(l domain.Lodging) domain.Lodging {
	l.Name = strings.TrimSpace(l.Name)
	l.Description = strings.TrimSpace(l.Description)
	l.Street = strings.TrimSpace(l.Street)
	l.City = strings.TrimSpace(l.City)
	l.State = strings.ToUpper(strings.TrimSpace(l.State))
	l.Zip = strings.TrimSpace(l.Zip)
	return l
}
