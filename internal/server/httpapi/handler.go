// Package httpapi exposes the user management service as a REST/JSON API
// and serves the embedded browser client.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/userdesk/internal/logging"
	"github.com/dmitrijs2005/userdesk/internal/server/users"
	"github.com/dmitrijs2005/userdesk/internal/shared"
)

// External error messages. Storage details never reach the client; anything
// the handler cannot classify degrades to msgInternalError.
const (
	msgRequiredFields = "name and email are required"
	msgInvalidEmail   = "invalid email"
	msgEmailExists    = "email already exists"
	msgUserNotFound   = "user not found"
	msgInternalError  = "internal server error"
	msgUserDeleted    = "user deleted successfully"
)

type UserHandler struct {
	service *users.Service
	logger  logging.Logger
}

func NewUserHandler(service *users.Service, logger logging.Logger) *UserHandler {
	return &UserHandler{service: service, logger: logger.With("module", "httpapi")}
}

// userRequest is the body of create and update calls.
type userRequest struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// respondError translates service errors into the external taxonomy:
// validation and conflict → 400, not-found → 404, everything else → 500
// with the underlying cause logged, never exposed.
func (h *UserHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, users.ErrNameEmailRequired):
		writeError(w, http.StatusBadRequest, msgRequiredFields)
	case errors.Is(err, users.ErrInvalidEmail):
		writeError(w, http.StatusBadRequest, msgInvalidEmail)
	case errors.Is(err, shared.ErrorAlreadyExists):
		writeError(w, http.StatusBadRequest, msgEmailExists)
	case errors.Is(err, shared.ErrorNotFound):
		writeError(w, http.StatusNotFound, msgUserNotFound)
	default:
		h.logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err.Error())
		writeError(w, http.StatusInternalServerError, msgInternalError)
	}
}

// idParam parses the {id} path segment. A non-numeric id cannot match any
// row, so it is reported as not found.
func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, shared.ErrorNotFound
	}
	return id, nil
}

func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	user, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgRequiredFields)
		return
	}

	user, err := h.service.Create(r.Context(), req.Name, req.Email, req.Phone)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgRequiredFields)
		return
	}

	user, err := h.service.Update(r.Context(), id, req.Name, req.Email, req.Phone)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: msgUserDeleted})
}
