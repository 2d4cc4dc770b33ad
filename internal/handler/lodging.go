package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/lodgings-api/internal/domain"
)

const lodgingsPath = "/lodgings"

// lodgingRequest is the body of POST /lodgings and PUT /lodgings/{id}.
type lodgingRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Street      string  `json:"street"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Zip         string  `json:"zip"`
	Price       float64 `json:"price"`
}

type lodgingResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Street      string    `json:"street"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Zip         string    `json:"zip"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// lodgingDetailResponse is GET /lodgings/{id}: the lodging plus its reservations.
type lodgingDetailResponse struct {
	lodgingResponse
	Reservations []reservationResponse `json:"reservations"`
	Links        map[string]string     `json:"links"`
}

// lodgingPageResponse is GET /lodgings. The page descriptor fields and its
// navigation links are promoted from domain.PageResult.
type lodgingPageResponse struct {
	domain.PageResult
	Lodgings []lodgingResponse `json:"lodgings"`
}

// createdResponse answers a successful POST with the new ID and where to find it.
type createdResponse struct {
	ID    uuid.UUID         `json:"id"`
	Links map[string]string `json:"links"`
}

type linksResponse struct {
	Links map[string]string `json:"links"`
}

// ListLodgings handles GET /lodgings?page=n.
// A missing or non-numeric page serves page 1; a page past the end serves
// the last page.
func (s *Server) ListLodgings(w http.ResponseWriter, r *http.Request) {
	requested := domain.ParsePageParam(r.URL.Query().Get("page"))

	page, lodgings, err := s.lodgings.ListPaged(r.Context(), requested, lodgingsPath)
	if err != nil {
		s.writeServiceError(w, r, err, "lodging")
		return
	}

	data := make([]lodgingResponse, len(lodgings))
	for i, l := range lodgings {
		data[i] = lodgingToResponse(l)
	}
	if page.Links == nil {
		page.Links = map[string]string{}
	}
	writeJSON(w, http.StatusOK, lodgingPageResponse{PageResult: page, Lodgings: data})
}

// CreateLodging handles POST /lodgings.
func (s *Server) CreateLodging(w http.ResponseWriter, r *http.Request) {
	var body lodgingRequest
	if err := decodeJSON(w, r, &body); err != nil {
		return
	}

	created, err := s.lodgings.Create(r.Context(), body.toDomain(uuid.Nil))
	if err != nil {
		s.writeServiceError(w, r, err, "lodging")
		return
	}

	self := lodgingURI(created.ID)
	w.Header().Set("Location", self)
	writeJSON(w, http.StatusCreated, createdResponse{
		ID:    created.ID,
		Links: map[string]string{"lodging": self},
	})
}

// GetLodging handles GET /lodgings/{id}.
func (s *Server) GetLodging(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "lodging")
	if !ok {
		return
	}

	lodging, err := s.lodgings.GetByID(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, "lodging")
		return
	}

	reservations := make([]reservationResponse, len(lodging.Reservations))
	for i, res := range lodging.Reservations {
		reservations[i] = reservationToResponse(res)
	}
	writeJSON(w, http.StatusOK, lodgingDetailResponse{
		lodgingResponse: lodgingToResponse(lodging),
		Reservations:    reservations,
		Links: map[string]string{
			"self":     lodgingURI(lodging.ID),
			"lodgings": lodgingsPath,
		},
	})
}

// UpdateLodging handles PUT /lodgings/{id}. Every field is replaced.
func (s *Server) UpdateLodging(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "lodging")
	if !ok {
		return
	}
	var body lodgingRequest
	if err := decodeJSON(w, r, &body); err != nil {
		return
	}

	updated, err := s.lodgings.Update(r.Context(), body.toDomain(id))
	if err != nil {
		s.writeServiceError(w, r, err, "lodging")
		return
	}

	writeJSON(w, http.StatusOK, linksResponse{
		Links: map[string]string{"lodging": lodgingURI(updated.ID)},
	})
}

// DeleteLodging handles DELETE /lodgings/{id}.
func (s *Server) DeleteLodging(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "lodging")
	if !ok {
		return
	}

	if err := s.lodgings.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err, "lodging")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

func (b lodgingRequest) toDomain(id uuid.UUID) domain.Lodging {
	return domain.Lodging{
		ID:          id,
		Name:        b.Name,
		Description: b.Description,
		Street:      b.Street,
		City:        b.City,
		State:       b.State,
		Zip:         b.Zip,
		Price:       b.Price,
	}
}

func lodgingToResponse(l domain.Lodging) lodgingResponse {
	return lodgingResponse{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		Street:      l.Street,
		City:        l.City,
		State:       l.State,
		Zip:         l.Zip,
		Price:       l.Price,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func lodgingURI(id uuid.UUID) string {
	return lodgingsPath + "/" + id.String()
}
