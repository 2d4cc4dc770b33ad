// Package domain contains the core data types for the Lodgings API.
// This package has no dependencies beyond google/uuid and is imported by every
// other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Lodging is a rentable property. It is the top-level aggregate; reservations
// belong to a lodging and are removed with it.
//
// The validate tags are enforced by the service layer.
type Lodging struct {
	ID          uuid.UUID
	Name        string    `validate:"required,max=255"`
	Description string    `validate:"required"`
	Street      string    `validate:"required,max=255"`
	City        string    `validate:"required,max=255"`
	State       string    `validate:"required,len=2,alpha"`
	Zip         string    `validate:"required,len=5,numeric"`
	Price       float64   `validate:"gt=0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Reservations is only populated on single-lodging reads.
	Reservations []Reservation `validate:"-"`
}
