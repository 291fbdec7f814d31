package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-cadence-keys/internal/app"
	"github.com/MKhiriev/go-cadence-keys/internal/logger"
	"github.com/MKhiriev/go-cadence-keys/internal/service"
	"github.com/MKhiriev/go-cadence-keys/internal/store"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order; the first match wins. The message is
// written as the plain-text body so the client adapter can map it back.
var errorResponses = []errorResponse{
	{service.ErrNoUserID, http.StatusUnauthorized, app.MsgNoUserID},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrNothingToUpdate, http.StatusBadRequest, app.MsgNothingToUpdate},
	{service.ErrMissingRecordID, http.StatusBadRequest, app.MsgMissingRecordID},
	{service.ErrInvalidLegacyKey, http.StatusBadRequest, app.MsgInvalidLegacyKey},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{store.ErrActivityNotFound, http.StatusNotFound, app.MsgActivityNotFound},
	{store.ErrNoteNotFound, http.StatusNotFound, app.MsgNoteNotFound},
	{store.ErrAlreadyExists, http.StatusConflict, app.MsgRecordAlreadyExists},
	{store.ErrLegacyKeyExists, http.StatusConflict, app.MsgLegacyKeyExists},
}

func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status, message := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Msg(message)
	} else {
		log.Warn().Err(err).Str("func", funcName).Int("status", status).Msg(message)
	}

	http.Error(w, message, status)
}
