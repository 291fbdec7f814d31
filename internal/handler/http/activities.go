package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-cadence-keys/internal/app"
	"github.com/MKhiriev/go-cadence-keys/internal/logger"
	"github.com/MKhiriev/go-cadence-keys/internal/service"
	"github.com/MKhiriev/go-cadence-keys/internal/utils"
	"github.com/MKhiriev/go-cadence-keys/models"
)

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeError(w, r, "*Handler.listActivities", service.ErrNoUserID)
		return
	}

	activities, err := h.services.ActivityService.List(ctx, userID)
	if err != nil {
		writeError(w, r, "*Handler.listActivities", err)
		return
	}

	if activities == nil {
		activities = []models.Activity{}
	}
	utils.WriteJSON(w, activities, http.StatusOK)
}

func (h *Handler) createActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeError(w, r, "*Handler.createActivity", service.ErrNoUserID)
		return
	}

	var activity models.Activity
	if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
		log.Err(err).Str("func", "*Handler.createActivity").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	activity.UserID = userID

	created, err := h.services.ActivityService.Create(ctx, activity)
	if err != nil {
		writeError(w, r, "*Handler.createActivity", err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeError(w, r, "*Handler.updateActivities", service.ErrNoUserID)
		return
	}

	var activities []models.Activity
	if err := json.NewDecoder(r.Body).Decode(&activities); err != nil {
		log.Err(err).Str("func", "*Handler.updateActivities").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.ActivityService.Update(ctx, userID, activities); err != nil {
		writeError(w, r, "*Handler.updateActivities", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
