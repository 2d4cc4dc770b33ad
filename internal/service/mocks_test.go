package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/lodgings-api/internal/domain"
	"github.com/pkordes/lodgings-api/internal/repo"
)

// mockLodgingRepo is a hand-written test double for repo.LodgingRepo.
// Each method is a function field; set only the ones your test needs.
type mockLodgingRepo struct {
	create  func(ctx context.Context, l domain.Lodging) (domain.Lodging, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Lodging, error)
	count   func(ctx context.Context) (int, error)
	list    func(ctx context.Context, offset, limit int) ([]domain.Lodging, error)
	update  func(ctx context.Context, l domain.Lodging) (domain.Lodging, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockLodgingRepo) Create(ctx context.Context, l domain.Lodging) (domain.Lodging, error) {
	return m.create(ctx, l)
}
func (m *mockLodgingRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Lodging, error) {
	return m.getByID(ctx, id)
}
func (m *mockLodgingRepo) Count(ctx context.Context) (int, error) { return m.count(ctx) }
func (m *mockLodgingRepo) List(ctx context.Context, offset, limit int) ([]domain.Lodging, error) {
	return m.list(ctx, offset, limit)
}
func (m *mockLodgingRepo) Update(ctx context.Context, l domain.Lodging) (domain.Lodging, error) {
	return m.update(ctx, l)
}
func (m *mockLodgingRepo) Delete(ctx context.Context, id uuid.UUID) error { return m.delete(ctx, id) }

var _ repo.LodgingRepo = (*mockLodgingRepo)(nil)

type mockReservationRepo struct {
	create          func(ctx context.Context, r domain.Reservation) (domain.Reservation, error)
	getByID         func(ctx context.Context, id uuid.UUID) (domain.Reservation, error)
	listByLodgingID func(ctx context.Context, lodgingID uuid.UUID) ([]domain.Reservation, error)
	delete          func(ctx context.Context, id uuid.UUID) error
}

func (m *mockReservationRepo) Create(ctx context.Context, r domain.Reservation) (domain.Reservation, error) {
	return m.create(ctx, r)
}
func (m *mockReservationRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Reservation, error) {
	return m.getByID(ctx, id)
}
func (m *mockReservationRepo) ListByLodgingID(ctx context.Context, lodgingID uuid.UUID) ([]domain.Reservation, error) {
	return m.listByLodgingID(ctx, lodgingID)
}
func (m *mockReservationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.ReservationRepo = (*mockReservationRepo)(nil)

type mockUserRepo struct {
	create     func(ctx context.Context, u domain.User) (domain.User, error)
	getByID    func(ctx context.Context, id uuid.UUID) (domain.User, error)
	getByEmail func(ctx context.Context, email string) (domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	return m.create(ctx, u)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return m.getByID(ctx, id)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return m.getByEmail(ctx, email)
}

var _ repo.UserRepo = (*mockUserRepo)(nil)
