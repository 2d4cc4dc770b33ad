package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/lodgings-api/internal/domain"
	"github.com/pkordes/lodgings-api/internal/handler"
)

// mockLodgingServicer is a test double for handler.LodgingServicer.
// Set only the method fields your test needs.
type mockLodgingServicer struct {
	create    func(ctx context.Context, l domain.Lodging) (domain.Lodging, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Lodging, error)
	listPaged func(ctx context.Context, requestedPage *int, baseURI string) (domain.PageResult, []domain.Lodging, error)
	update    func(ctx context.Context, l domain.Lodging) (domain.Lodging, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockLodgingServicer) Create(ctx context.Context, l domain.Lodging) (domain.Lodging, error) {
	return m.create(ctx, l)
}
func (m *mockLodgingServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Lodging, error) {
	return m.getByID(ctx, id)
}
func (m *mockLodgingServicer) ListPaged(ctx context.Context, requestedPage *int, baseURI string) (domain.PageResult, []domain.Lodging, error) {
	return m.listPaged(ctx, requestedPage, baseURI)
}
func (m *mockLodgingServicer) Update(ctx context.Context, l domain.Lodging) (domain.Lodging, error) {
	return m.update(ctx, l)
}
func (m *mockLodgingServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// mockReservationServicer is a test double for handler.ReservationServicer.
type mockReservationServicer struct {
	create  func(ctx context.Context, res domain.Reservation) (domain.Reservation, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Reservation, error)
	delete  func(ctx context.Context, userID, id uuid.UUID) error
}

func (m *mockReservationServicer) Create(ctx context.Context, res domain.Reservation) (domain.Reservation, error) {
	return m.create(ctx, res)
}
func (m *mockReservationServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Reservation, error) {
	return m.getByID(ctx, id)
}
func (m *mockReservationServicer) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.delete(ctx, userID, id)
}

// mockUserServicer is a test double for handler.UserServicer.
type mockUserServicer struct {
	register func(ctx context.Context, name, email, password string) (domain.User, error)
	login    func(ctx context.Context, email, password string) (string, error)
}

func (m *mockUserServicer) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	return m.register(ctx, name, email, password)
}
func (m *mockUserServicer) Login(ctx context.Context, email, password string) (string, error) {
	return m.login(ctx, email, password)
}

// compile-time checks: the mocks must satisfy the handler interfaces.
var (
	_ handler.LodgingServicer     = (*mockLodgingServicer)(nil)
	_ handler.ReservationServicer = (*mockReservationServicer)(nil)
	_ handler.UserServicer        = (*mockUserServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

const testToken = "test-token"

// testUserID is the user every request bearing testToken is authenticated as.
var testUserID = uuid.MustParse("6f1c1d8e-4c1e-4d5a-9d8e-2b7a3c4d5e6f")

type stubVerifier struct{}

func (stubVerifier) Verify(token string) (uuid.UUID, error) {
	if token != testToken {
		return uuid.Nil, errors.New("invalid token")
	}
	return testUserID, nil
}

// deps collects the mocks for one test; nil fields are never reached.
type deps struct {
	lodgings     *mockLodgingServicer
	reservations *mockReservationServicer
	users        *mockUserServicer
}

// newHTTPHandler wires a Server with the given mocks into the real router.
// This mirrors how main.go wires it in production.
func newHTTPHandler(d deps) http.Handler {
	if d.lodgings == nil {
		d.lodgings = &mockLodgingServicer{}
	}
	if d.reservations == nil {
		d.reservations = &mockReservationServicer{}
	}
	if d.users == nil {
		d.users = &mockUserServicer{}
	}
	srv := handler.NewServer(d.lodgings, d.reservations, d.users, nil)
	return srv.Routes(stubVerifier{})
}

// do sends a request through h. A non-nil body is JSON-encoded; a non-empty
// token is sent as the bearer credential.
func do(t *testing.T, h http.Handler, method, target string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func lodgingFixture() domain.Lodging {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return domain.Lodging{
		ID:          uuid.New(),
		Name:        "Cabin in the Woods",
		Description: "Rustic and quiet",
		Street:      "1 Forest Rd",
		City:        "Asheville",
		State:       "NC",
		Zip:         "28801",
		Price:       129.5,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func lodgingBody() map[string]any {
	return map[string]any{
		"name":        "Cabin in the Woods",
		"description": "Rustic and quiet",
		"street":      "1 Forest Rd",
		"city":        "Asheville",
		"state":       "NC",
		"zip":         "28801",
		"price":       129.5,
	}
}
