package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-stream-panel/internal/app"
	"github.com/MKhiriev/go-stream-panel/internal/logger"
	"github.com/MKhiriev/go-stream-panel/internal/service"
	"github.com/MKhiriev/go-stream-panel/internal/utils"
	"github.com/MKhiriev/go-stream-panel/models"
)

// verifyAccessCode is the admin gate. A correct shared code yields a signed
// gate token in the Authorization response header; every admin-surface
// request must present it back.
func (h *Handler) verifyAccessCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.VerifyAccessCode(ctx, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongAccessCode):
			log.Warn().Msg("wrong access code")
			utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgWrongAccessCode}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during access code verification")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}
