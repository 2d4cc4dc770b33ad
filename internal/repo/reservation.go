package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/lodgings-api/internal/domain"
)

// Postgres SQLSTATE codes the repos translate into domain errors.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// ReservationRepo defines the persistence operations for Reservations.
type ReservationRepo interface {
	// Create inserts a reservation. Returns domain.ErrNotFound if the
	// referenced lodging or user does not exist.
	Create(ctx context.Context, res domain.Reservation) (domain.Reservation, error)

	// GetByID returns domain.ErrNotFound if no reservation has that ID.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Reservation, error)

	// ListByLodgingID returns a lodging's reservations ordered by start date.
	ListByLodgingID(ctx context.Context, lodgingID uuid.UUID) ([]domain.Reservation, error)

	// Delete removes a reservation. Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error
}

type pgReservationRepo struct {
	db db
}

// NewReservationRepo constructs a ReservationRepo backed by the provided db connection.
func NewReservationRepo(db db) ReservationRepo {
	return &pgReservationRepo{db: db}
}

const reservationColumns = `id, lodging_id, user_id, start_date, end_date, created_at`

func (r *pgReservationRepo) Create(ctx context.Context, res domain.Reservation) (domain.Reservation, error) {
	const q = `
		INSERT INTO reservations (lodging_id, user_id, start_date, end_date)
		VALUES (@lodging_id, @user_id, @start_date, @end_date)
		RETURNING ` + reservationColumns

	args := pgx.NamedArgs{
		"lodging_id": res.LodgingID,
		"user_id":    res.UserID,
		"start_date": pgtype.Date{Time: res.Start, Valid: true},
		"end_date":   pgtype.Date{Time: res.End, Valid: true},
	}

	result, err := scanReservation(r.db.QueryRow(ctx, q, args))
	if err != nil {
		if hasPgCode(err, pgForeignKeyViolation) {
			return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.Create: %w", domain.ErrNotFound)
		}
		return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgReservationRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = @id`

	result, err := scanReservation(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgReservationRepo) ListByLodgingID(ctx context.Context, lodgingID uuid.UUID) ([]domain.Reservation, error) {
	const q = `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE lodging_id = @lodging_id
		ORDER BY start_date, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"lodging_id": lodgingID})
	if err != nil {
		return nil, fmt.Errorf("repo.ReservationRepo.ListByLodgingID: %w", err)
	}
	defer rows.Close()

	var out []domain.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ReservationRepo.ListByLodgingID: scan: %w", err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ReservationRepo.ListByLodgingID: rows: %w", err)
	}
	return out, nil
}

func (r *pgReservationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ReservationRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ReservationRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanReservation(s scanner) (domain.Reservation, error) {
	var (
		res                 domain.Reservation
		id, lodgingID, user pgtype.UUID
		start, end          pgtype.Date
	)
	if err := s.Scan(&id, &lodgingID, &user, &start, &end, &res.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Reservation{}, domain.ErrNotFound
		}
		return domain.Reservation{}, err
	}
	res.ID = uuid.UUID(id.Bytes)
	res.LodgingID = uuid.UUID(lodgingID.Bytes)
	res.UserID = uuid.UUID(user.Bytes)
	res.Start = start.Time
	res.End = end.Time
	return res, nil
}

// hasPgCode reports whether err wraps a Postgres error with the given SQLSTATE.
func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
