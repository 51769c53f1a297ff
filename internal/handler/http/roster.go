package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-stream-panel/internal/app"
	"github.com/MKhiriev/go-stream-panel/internal/logger"
	"github.com/MKhiriev/go-stream-panel/internal/service"
	"github.com/MKhiriev/go-stream-panel/internal/store"
	"github.com/MKhiriev/go-stream-panel/internal/utils"
	"github.com/MKhiriev/go-stream-panel/internal/validators"
	"github.com/MKhiriev/go-stream-panel/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listRoster(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	roster, err := h.services.RosterService.List(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during roster listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if roster == nil {
		roster = []models.User{}
	}
	utils.WriteJSON(w, roster, http.StatusOK)
}

func (h *Handler) createMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var draft models.UserDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	saved, err := h.services.RosterService.Create(ctx, draft)
	if err != nil {
		h.writeRosterError(w, r, err, "member creation failed")
		return
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) updateMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	var draft models.UserDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	updated, err := h.services.RosterService.Update(ctx, id, draft)
	if err != nil {
		h.writeRosterError(w, r, err, "member update failed")
		return
	}

	utils.WriteJSON(w, models.UpdateResponse{Updated: updated}, http.StatusOK)
}

func (h *Handler) deleteMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	deleted, err := h.services.RosterService.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAdminUndeletable):
			log.Warn().Str("id", id).Msg("attempt to delete reserved administrator record")
			utils.WriteJSON(w, models.ErrorResponse{Error: service.ErrAdminUndeletable.Error()}, http.StatusForbidden)
			return
		default:
			h.writeRosterError(w, r, err, "member deletion failed")
			return
		}
	}

	utils.WriteJSON(w, models.DeleteResponse{Deleted: deleted}, http.StatusOK)
}

func (h *Handler) revision(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	revision, err := h.services.RosterService.Revision(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred reading roster revision")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.RevisionResponse{Revision: revision}, http.StatusOK)
}

// writeRosterError maps service and store failures onto the API's status
// codes: validation problems are 400, duplicate emails 409, everything else
// a plain 500.
func (h *Handler) writeRosterError(w http.ResponseWriter, r *http.Request, err error, message string) {
	log := logger.FromRequest(r)

	switch {
	case isValidationError(err):
		log.Err(err).Msg("invalid draft provided")
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusBadRequest)
	case errors.Is(err, store.ErrEmailAlreadyExists):
		log.Err(err).Msg("email already exists")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgEmailAlreadyExists}, http.StatusConflict)
	default:
		log.Err(err).Msg(message)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, validators.ErrEmptyEmail) ||
		errors.Is(err, validators.ErrEmptyPassword) ||
		errors.Is(err, validators.ErrEmptyExpiry) ||
		errors.Is(err, validators.ErrInvalidExpiry) ||
		errors.Is(err, validators.ErrInvalidStatus) ||
		errors.Is(err, service.ErrInvalidDataProvided)
}
