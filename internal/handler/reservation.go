package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/lodgings-api/internal/auth"
	"github.com/pkordes/lodgings-api/internal/domain"
)

const reservationsPath = "/reservations"

// reservationRequest is the body of POST /reservations. Dates are YYYY-MM-DD.
// The reserving user comes from the bearer token, never from the body.
type reservationRequest struct {
	LodgingID openapi_types.UUID `json:"lodgingId"`
	Start     openapi_types.Date `json:"start"`
	End       openapi_types.Date `json:"end"`
}

type reservationResponse struct {
	ID        uuid.UUID          `json:"id"`
	LodgingID uuid.UUID          `json:"lodgingId"`
	UserID    uuid.UUID          `json:"userId"`
	Start     openapi_types.Date `json:"start"`
	End       openapi_types.Date `json:"end"`
	CreatedAt time.Time          `json:"createdAt"`
}

// CreateReservation handles POST /reservations.
func (s *Server) CreateReservation(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}
	var body reservationRequest
	if err := decodeJSON(w, r, &body); err != nil {
		return
	}

	created, err := s.reservations.Create(r.Context(), domain.Reservation{
		LodgingID: body.LodgingID,
		UserID:    userID,
		Start:     body.Start.Time,
		End:       body.End.Time,
	})
	if err != nil {
		s.writeServiceError(w, r, err, "lodging")
		return
	}

	self := reservationURI(created.ID)
	w.Header().Set("Location", self)
	writeJSON(w, http.StatusCreated, createdResponse{
		ID: created.ID,
		Links: map[string]string{
			"reservation": self,
			"lodging":     lodgingURI(created.LodgingID),
		},
	})
}

// GetReservation handles GET /reservations/{id}.
func (s *Server) GetReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "reservation")
	if !ok {
		return
	}

	res, err := s.reservations.GetByID(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, "reservation")
		return
	}
	writeJSON(w, http.StatusOK, reservationToResponse(res))
}

// DeleteReservation handles DELETE /reservations/{id}.
// Only the user who made the reservation may cancel it.
func (s *Server) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}
	id, ok := pathID(w, r, "id", "reservation")
	if !ok {
		return
	}

	if err := s.reservations.Delete(r.Context(), userID, id); err != nil {
		s.writeServiceError(w, r, err, "reservation")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func reservationToResponse(res domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:        res.ID,
		LodgingID: res.LodgingID,
		UserID:    res.UserID,
		Start:     openapi_types.Date{Time: res.Start},
		End:       openapi_types.Date{Time: res.End},
		CreatedAt: res.CreatedAt,
	}
}

func reservationURI(id uuid.UUID) string {
	return reservationsPath + "/" + id.String()
}

// isDateError reports whether a decode failure came from an
// openapi_types.Date field that was not YYYY-MM-DD.
func isDateError(err error) bool {
	var pe *time.ParseError
	return errors.As(err, &pe)
}
