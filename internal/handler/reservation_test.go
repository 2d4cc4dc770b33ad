package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/lodgings-api/internal/domain"
)

func reservationBody(lodgingID uuid.UUID) map[string]any {
	return map[string]any{
		"lodgingId": lodgingID.String(),
		"start":     "2025-07-01",
		"end":       "2025-07-04",
	}
}

func TestCreateReservation_usesTokenUser(t *testing.T) {
	lodgingID := uuid.New()
	resID := uuid.New()
	mock := &mockReservationServicer{
		create: func(_ context.Context, res domain.Reservation) (domain.Reservation, error) {
			assert.Equal(t, testUserID, res.UserID)
			assert.Equal(t, lodgingID, res.LodgingID)
			assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), res.Start)
			assert.Equal(t, time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC), res.End)
			res.ID = resID
			return res, nil
		},
	}
	h := newHTTPHandler(deps{reservations: mock})

	body := reservationBody(lodgingID)
	body["userId"] = uuid.NewString() // ignored
	rec := do(t, h, http.MethodPost, "/reservations", body, testToken)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/reservations/"+resID.String(), rec.Header().Get("Location"))

	var got struct {
		ID    uuid.UUID         `json:"id"`
		Links map[string]string `json:"links"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, resID, got.ID)
	assert.Equal(t, "/reservations/"+resID.String(), got.Links["reservation"])
	assert.Equal(t, "/lodgings/"+lodgingID.String(), got.Links["lodging"])
}

func TestCreateReservation_requiresAuth(t *testing.T) {
	h := newHTTPHandler(deps{})

	rec := do(t, h, http.MethodPost, "/reservations", reservationBody(uuid.New()), "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateReservation_badDateIs422(t *testing.T) {
	h := newHTTPHandler(deps{})
	body := reservationBody(uuid.New())
	body["start"] = "07/01/2025"

	rec := do(t, h, http.MethodPost, "/reservations", body, testToken)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", decodeError(t, rec).Error.Code)
}

func TestCreateReservation_unknownLodgingIs404(t *testing.T) {
	mock := &mockReservationServicer{
		create: func(context.Context, domain.Reservation) (domain.Reservation, error) {
			return domain.Reservation{}, fmt.Errorf("service.ReservationService.Create: lodging: %w", domain.ErrNotFound)
		},
	}
	h := newHTTPHandler(deps{reservations: mock})

	rec := do(t, h, http.MethodPost, "/reservations", reservationBody(uuid.New()), testToken)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "lodging not found", decodeError(t, rec).Error.Message)
}

func TestGetReservation(t *testing.T) {
	res := domain.Reservation{
		ID:        uuid.New(),
		LodgingID: uuid.New(),
		UserID:    testUserID,
		Start:     time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		End:       time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC),
	}
	mock := &mockReservationServicer{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Reservation, error) {
			if id != res.ID {
				return domain.Reservation{}, domain.ErrNotFound
			}
			return res, nil
		},
	}
	h := newHTTPHandler(deps{reservations: mock})

	rec := do(t, h, http.MethodGet, "/reservations/"+res.ID.String(), nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, res.LodgingID.String(), got["lodgingId"])
	assert.Equal(t, "2025-07-01", got["start"])
	assert.Equal(t, "2025-07-04", got["end"])

	rec = do(t, h, http.MethodGet, "/reservations/"+uuid.NewString(), nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "reservation not found", decodeError(t, rec).Error.Message)
}

func TestDeleteReservation_passesCaller(t *testing.T) {
	id := uuid.New()
	var gotUser uuid.UUID
	mock := &mockReservationServicer{
		delete: func(_ context.Context, userID, got uuid.UUID) error {
			gotUser = userID
			assert.Equal(t, id, got)
			return nil
		},
	}
	h := newHTTPHandler(deps{reservations: mock})

	rec := do(t, h, http.MethodDelete, "/reservations/"+id.String(), nil, testToken)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, testUserID, gotUser)
}

func TestDeleteReservation_notOwnerIs404(t *testing.T) {
	mock := &mockReservationServicer{
		delete: func(context.Context, uuid.UUID, uuid.UUID) error {
			return fmt.Errorf("service.ReservationService.Delete: %w", domain.ErrNotFound)
		},
	}
	h := newHTTPHandler(deps{reservations: mock})

	rec := do(t, h, http.MethodDelete, "/reservations/"+uuid.NewString(), nil, testToken)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
