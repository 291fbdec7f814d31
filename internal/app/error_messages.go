// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the message strings the backend writes into error
// responses. The client matches on the same strings to restore typed errors,
// so both sides must import them from here.
package app

const (
	MsgInvalidDataProvided     = "invalid data provided"
	MsgInternalServerError     = "internal server error"
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserID is returned when an authenticated route runs without a
	// user in the request context.
	MsgNoUserID = "no user ID given"

	MsgNothingToUpdate = "no records to update"
	MsgMissingRecordID = "record ID is required"

	MsgActivityNotFound    = "activity was not found"
	MsgNoteNotFound        = "note was not found"
	MsgRecordAlreadyExists = "record already exists"

	// MsgLegacyKeyExists is returned with 409 when the user already has a
	// legacy key record.
	MsgLegacyKeyExists  = "legacy key already registered"
	MsgInvalidLegacyKey = "legacy key and email are required"
)
