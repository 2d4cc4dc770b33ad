// Package repo contains all data access logic for the Lodgings API.
// Each resource has its own file with an interface and a Postgres implementation;
// MemoryStore provides in-process implementations of the same interfaces.
// No business logic lives here, only SQL and type mapping.
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

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// LodgingRepo defines the persistence operations for Lodgings.
//
// Count and List together form the paging capability: List must return rows
// in the same stable order on every call so that a page window computed from
// Count selects a consistent slice.
type LodgingRepo interface {
	// Create inserts a new lodging and returns the persisted record.
	Create(ctx context.Context, lodging domain.Lodging) (domain.Lodging, error)

	// GetByID retrieves a single lodging. Returns domain.ErrNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Lodging, error)

	// Count returns the total number of lodgings.
	Count(ctx context.Context) (int, error)

	// List returns up to limit lodgings starting at offset, ordered by
	// created_at then id.
	List(ctx context.Context, offset, limit int) ([]domain.Lodging, error)

	// Update replaces the mutable fields of an existing lodging.
	// Returns domain.ErrNotFound if no lodging with that ID exists.
	Update(ctx context.Context, lodging domain.Lodging) (domain.Lodging, error)

	// Delete removes a lodging and its reservations.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

type pgLodgingRepo struct {
	db db
}

// NewLodgingRepo constructs a LodgingRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewLodgingRepo(db db) LodgingRepo {
	return &pgLodgingRepo{db: db}
}

const lodgingColumns = `id, name, description, street, city, state, zip, price, created_at, updated_at`

func (r *pgLodgingRepo) Create(ctx context.Context, l domain.Lodging) (domain.Lodging, error) {
	const q = `
		INSERT INTO lodgings (name, description, street, city, state, zip, price)
		VALUES (@name, @description, @street, @city, @state, @zip, @price)
		RETURNING ` + lodgingColumns

	row := r.db.QueryRow(ctx, q, lodgingArgs(l))
	result, err := scanLodging(row)
	if err != nil {
		return domain.Lodging{}, fmt.Errorf("repo.LodgingRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgLodgingRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Lodging, error) {
	const q = `SELECT ` + lodgingColumns + ` FROM lodgings WHERE id = @id`

	result, err := scanLodging(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Lodging{}, fmt.Errorf("repo.LodgingRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgLodgingRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM lodgings`).Scan(&n); err != nil {
		return 0, fmt.Errorf("repo.LodgingRepo.Count: %w", err)
	}
	return n, nil
}

func (r *pgLodgingRepo) List(ctx context.Context, offset, limit int) ([]domain.Lodging, error) {
	const q = `
		SELECT ` + lodgingColumns + `
		FROM lodgings
		ORDER BY created_at, id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": limit, "offset": offset})
	if err != nil {
		return nil, fmt.Errorf("repo.LodgingRepo.List: %w", err)
	}
	defer rows.Close()

	var lodgings []domain.Lodging
	for rows.Next() {
		l, err := scanLodging(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.LodgingRepo.List: scan: %w", err)
		}
		lodgings = append(lodgings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.LodgingRepo.List: rows: %w", err)
	}
	return lodgings, nil
}

func (r *pgLodgingRepo) Update(ctx context.Context, l domain.Lodging) (domain.Lodging, error) {
	const q = `
		UPDATE lodgings
		SET name        = @name,
		    description = @description,
		    street      = @street,
		    city        = @city,
		    state       = @state,
		    zip         = @zip,
		    price       = @price,
		    updated_at  = now()
		WHERE id = @id
		RETURNING ` + lodgingColumns

	args := lodgingArgs(l)
	args["id"] = l.ID

	result, err := scanLodging(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Lodging{}, fmt.Errorf("repo.LodgingRepo.Update: %w", err)
	}
	return result, nil
}

// Delete relies on ON DELETE CASCADE to remove the lodging's reservations.
func (r *pgLodgingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM lodgings WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.LodgingRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.LodgingRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func lodgingArgs(l domain.Lodging) pgx.NamedArgs {
	return pgx.NamedArgs{
		"name":        l.Name,
		"description": l.Description,
		"street":      l.Street,
		"city":        l.City,
		"state":       l.State,
		"zip":         l.Zip,
		"price":       l.Price,
	}
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scan helpers to
// be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

func scanLodging(s scanner) (domain.Lodging, error) {
	var (
		l  domain.Lodging
		id pgtype.UUID
	)
	err := s.Scan(&id, &l.Name, &l.Description, &l.Street, &l.City, &l.State, &l.Zip,
		&l.Price, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Lodging{}, domain.ErrNotFound
		}
		return domain.Lodging{}, err
	}
	l.ID = uuid.UUID(id.Bytes)
	return l, nil
}
