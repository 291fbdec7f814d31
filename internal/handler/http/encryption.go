package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-cadence-keys/internal/app"
	"github.com/MKhiriev/go-cadence-keys/internal/logger"
	"github.com/MKhiriev/go-cadence-keys/internal/service"
	"github.com/MKhiriev/go-cadence-keys/internal/store"
	"github.com/MKhiriev/go-cadence-keys/internal/utils"
	"github.com/MKhiriev/go-cadence-keys/models"
)

// probeEncryptedData answers whether any of the caller's records carries an
// encrypted value. Only booleans leave the server.
func (h *Handler) probeEncryptedData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeError(w, r, "*Handler.probeEncryptedData", service.ErrNoUserID)
		return
	}

	probe, err := h.services.EncryptionService.Probe(ctx, userID)
	if err != nil {
		writeError(w, r, "*Handler.probeEncryptedData", err)
		return
	}

	h.metrics.probes.WithLabelValues(strconv.FormatBool(probe.Any())).Inc()
	utils.WriteJSON(w, probe, http.StatusOK)
}

func (h *Handler) listLegacyKeys(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeError(w, r, "*Handler.listLegacyKeys", service.ErrNoUserID)
		return
	}

	legacyKeys, err := h.services.EncryptionService.ListLegacyKeys(ctx, userID)
	if err != nil {
		writeError(w, r, "*Handler.listLegacyKeys", err)
		return
	}

	if legacyKeys == nil {
		legacyKeys = []models.LegacyKey{}
	}
	utils.WriteJSON(w, legacyKeys, http.StatusOK)
}

// registerLegacyKey stores the caller's legacy key once. A second attempt
// gets 409 and leaves the first record untouched.
func (h *Handler) registerLegacyKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeError(w, r, "*Handler.registerLegacyKey", service.ErrNoUserID)
		return
	}

	var legacyKey models.LegacyKey
	if err := json.NewDecoder(r.Body).Decode(&legacyKey); err != nil {
		log.Err(err).Str("func", "*Handler.registerLegacyKey").Msg("Invalid JSON was passed")
		h.metrics.legacyRegistrations.WithLabelValues(legacyResultRejected).Inc()
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	legacyKey.UserID = userID

	created, err := h.services.EncryptionService.RegisterLegacyKey(ctx, legacyKey)
	if err != nil {
		h.metrics.legacyRegistrations.WithLabelValues(legacyResult(err)).Inc()
		writeError(w, r, "*Handler.registerLegacyKey", err)
		return
	}

	h.metrics.legacyRegistrations.WithLabelValues(legacyResultCreated).Inc()
	utils.WriteJSON(w, created, http.StatusCreated)
}

func legacyResult(err error) string {
	switch {
	case errors.Is(err, store.ErrLegacyKeyExists):
		return legacyResultConflict
	case errors.Is(err, service.ErrInvalidLegacyKey), errors.Is(err, service.ErrInvalidDataProvided):
		return legacyResultRejected
	default:
		return legacyResultFailed
	}
}
