package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/lodgings-api/internal/domain"
)

// errorResponse is the envelope for every non-2xx JSON response.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errBadRequest marks request-decoding failures that were already answered.
var errBadRequest = errors.New("bad request")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

// decodeJSON decodes the request body into dst. On failure it has already
// written the response and returns errBadRequest:
//
//	415 when the Content-Type is not application/json
//	413 when the body exceeds the MaxBodySize limit
//	422 when a typed field (email, date) fails its format check
//	400 for anything else that is not a single JSON object
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		writeError(w, http.StatusUnsupportedMediaType, "unsupported_media_type", "Content-Type must be application/json")
		return errBadRequest
	}

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		writeDecodeError(w, err)
		return errBadRequest
	}
	if dec.More() {
		writeError(w, http.StatusBadRequest, "bad_request", "request body must contain a single JSON object")
		return errBadRequest
	}
	return nil
}

func writeDecodeError(w http.ResponseWriter, err error) {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytes):
		writeError(w, http.StatusRequestEntityTooLarge, "request_too_large", "request body too large")
	case errors.Is(err, openapi_types.ErrValidationEmail):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "email must be a valid email address")
	case isDateError(err):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "dates must be formatted YYYY-MM-DD")
	case errors.Is(err, io.EOF):
		writeError(w, http.StatusBadRequest, "bad_request", "request body is required")
	default:
		writeError(w, http.StatusBadRequest, "bad_request", "request body must be valid JSON")
	}
}

// pathID binds the named chi URL parameter as a UUID. A malformed ID
// names a resource that cannot exist, so it is answered with 404.
func pathID(w http.ResponseWriter, r *http.Request, name, resource string) (uuid.UUID, bool) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", resource+" not found")
		return uuid.Nil, false
	}
	return id, true
}

// writeServiceError maps a service error onto an HTTP response.
// resource names the thing being looked up, e.g. "lodging".
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error, resource string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", resource+" not found")
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", validationMessage(err))
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict", "email is already registered")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized", "invalid email or password")
	default:
		s.log.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", chimiddleware.GetReqID(r.Context()),
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// validationMessage extracts the human-readable part from a wrapped
// domain.ErrValidation, e.g.
// "service.LodgingService.Create: validation error: name is required" → "name is required".
func validationMessage(err error) string {
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
