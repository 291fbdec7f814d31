// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the cadence backend.
//
// [BackendAdapter] decouples the service layer from HTTP. Values passed
// through it are already in their stored form: encrypted fields carry the
// "enc:" envelope and the adapter never looks inside them.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cadence-keys/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter is the client's view of the backend resource API. Every call
// is scoped to the user identified by the bearer token.
type BackendAdapter interface {
	// Token returns the bearer token attached to requests.
	Token() string

	// ListActivities returns all activities of the current user.
	ListActivities(ctx context.Context) ([]models.Activity, error)
	// CreateActivity stores a new activity and returns the server copy.
	CreateActivity(ctx context.Context, activity models.Activity) (models.Activity, error)
	// UpdateActivities replaces the given activities in one transaction.
	UpdateActivities(ctx context.Context, activities []models.Activity) error

	// ListNotes returns all notes of the current user.
	ListNotes(ctx context.Context) ([]models.Note, error)
	// CreateNote stores a new note and returns the server copy.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	// UpdateNotes replaces the given notes in one transaction.
	UpdateNotes(ctx context.Context, notes []models.Note) error

	// ProbeEncryptedData asks whether any stored value carries the envelope.
	ProbeEncryptedData(ctx context.Context) (models.EncryptedDataProbe, error)

	// ListLegacyKeys returns the legacy-key records of the current user.
	ListLegacyKeys(ctx context.Context) ([]models.LegacyKey, error)
	// CreateLegacyKey registers a legacy key. A record that already exists
	// yields [ErrConflict].
	CreateLegacyKey(ctx context.Context, legacyKey models.LegacyKey) error
}
