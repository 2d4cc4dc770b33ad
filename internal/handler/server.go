// Package handler implements the HTTP handlers for the Lodgings API.
// All handlers are methods on Server. Methods are split into resource-specific
// files (health.go, lodging.go, etc.) but share the same Server struct so they
// can access its dependencies.
package handler

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pkordes/lodgings-api/internal/domain"
)

// LodgingServicer defines the business operations the lodging handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type LodgingServicer interface {
	Create(ctx context.Context, lodging domain.Lodging) (domain.Lodging, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Lodging, error)
	ListPaged(ctx context.Context, requestedPage *int, baseURI string) (domain.PageResult, []domain.Lodging, error)
	Update(ctx context.Context, lodging domain.Lodging) (domain.Lodging, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReservationServicer defines the business operations the reservation handlers depend on.
type ReservationServicer interface {
	Create(ctx context.Context, res domain.Reservation) (domain.Reservation, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Reservation, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// UserServicer defines the account operations the user handlers depend on.
type UserServicer interface {
	Register(ctx context.Context, name, email, password string) (domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// Server holds the dependencies shared by every handler.
// Build the router with Routes.
type Server struct {
	lodgings     LodgingServicer
	reservations ReservationServicer
	users        UserServicer
	log          *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(lodgings LodgingServicer, reservations ReservationServicer, users UserServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		lodgings:     lodgings,
		reservations: reservations,
		users:        users,
		log:          log,
	}
}
