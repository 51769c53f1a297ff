package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-stream-panel/internal/app"
	"github.com/MKhiriev/go-stream-panel/internal/logger"
	"github.com/MKhiriev/go-stream-panel/internal/service"
	"github.com/MKhiriev/go-stream-panel/internal/utils"
	"github.com/MKhiriev/go-stream-panel/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	outcome, err := h.services.AuthService.Login(ctx, models.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgWrongCredentials}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during sign-in")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if !outcome.Accepted {
		message := app.MsgWrongCredentials
		if outcome.Reason == models.AccountExpired {
			message = app.MsgAccountExpired
		}
		utils.WriteJSON(w, models.ErrorResponse{Error: message}, http.StatusUnauthorized)
		return
	}

	log.Debug().Str("id", outcome.User.ID).Bool("admin", outcome.Admin).Msg("member signed in")

	utils.WriteJSON(w, models.LoginResponse{
		Message: app.MsgSignedIn,
		User:    outcome.User,
		Admin:   outcome.Admin,
	}, http.StatusOK)
}
