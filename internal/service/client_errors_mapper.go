// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-cadence-keys/internal/adapter"
	"github.com/MKhiriev/go-cadence-keys/internal/app"
	"github.com/MKhiriev/go-cadence-keys/internal/store"
)

// mapAdapterError translates a transport error into the service or store
// error the backend reported. Unknown errors are returned unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgNothingToUpdate:
			return ErrNothingToUpdate
		case app.MsgMissingRecordID:
			return ErrMissingRecordID
		case app.MsgInvalidLegacyKey:
			return ErrInvalidLegacyKey
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgActivityNotFound:
			return store.ErrActivityNotFound
		case app.MsgNoteNotFound:
			return store.ErrNoteNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgRecordAlreadyExists:
			return store.ErrAlreadyExists
		case app.MsgLegacyKeyExists:
			return store.ErrLegacyKeyExists
		}
	}

	return err
}

// extractBody returns the part after the first ": " of a message such as
// "bad request: <body>".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
