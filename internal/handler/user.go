package handler

import (
	"net/http"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// registerRequest is the body of POST /users.
type registerRequest struct {
	Name     string              `json:"name"`
	Email    openapi_types.Email `json:"email"`
	Password string              `json:"password"`
}

// loginRequest is the body of POST /users/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	ID uuid.UUID `json:"id"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// RegisterUser handles POST /users.
func (s *Server) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if err := decodeJSON(w, r, &body); err != nil {
		return
	}

	user, err := s.users.Register(r.Context(), body.Name, string(body.Email), body.Password)
	if err != nil {
		s.writeServiceError(w, r, err, "user")
		return
	}
	writeJSON(w, http.StatusCreated, registerResponse{ID: user.ID})
}

// Login handles POST /users/login and returns a bearer token.
// Unknown emails and wrong passwords get the same 401.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := decodeJSON(w, r, &body); err != nil {
		return
	}

	token, err := s.users.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		s.writeServiceError(w, r, err, "user")
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}
