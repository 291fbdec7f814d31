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

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeError(w, r, "*Handler.listNotes", service.ErrNoUserID)
		return
	}

	notes, err := h.services.NoteService.List(ctx, userID)
	if err != nil {
		writeError(w, r, "*Handler.listNotes", err)
		return
	}

	if notes == nil {
		notes = []models.Note{}
	}
	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeError(w, r, "*Handler.createNote", service.ErrNoUserID)
		return
	}

	var note models.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	note.UserID = userID

	created, err := h.services.NoteService.Create(ctx, note)
	if err != nil {
		writeError(w, r, "*Handler.createNote", err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeError(w, r, "*Handler.updateNotes", service.ErrNoUserID)
		return
	}

	var notes []models.Note
	if err := json.NewDecoder(r.Body).Decode(&notes); err != nil {
		log.Err(err).Str("func", "*Handler.updateNotes").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.NoteService.Update(ctx, userID, notes); err != nil {
		writeError(w, r, "*Handler.updateNotes", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
