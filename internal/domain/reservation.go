package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reservation books a lodging for a date range. Start and End are calendar
// dates (time of day is ignored); a one-night stay has End one day after
// Start, and End equal to Start is allowed for same-day bookings.
type Reservation struct {
	ID        uuid.UUID
	LodgingID uuid.UUID
	UserID    uuid.UUID
	Start     time.Time
	End       time.Time
	CreatedAt time.Time
}
