package service

import "errors"

var (
	// ErrNoUserID is returned by server services when the request carries no
	// authenticated user.
	ErrNoUserID = errors.New("no user ID given")
	// ErrNothingToUpdate is returned for an empty batch update.
	ErrNothingToUpdate = errors.New("no records to update")
	// ErrMissingRecordID is returned when an update omits the record ID.
	ErrMissingRecordID = errors.New("record ID is required")
	// ErrInvalidLegacyKey is returned when a legacy-key registration lacks
	// the key or the email.
	ErrInvalidLegacyKey = errors.New("legacy key and email are required")

	// ErrRotationAborted reports that a rotation failed and the previous
	// ciphertexts were restored.
	ErrRotationAborted = errors.New("key rotation aborted")
)

var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

// ErrTokenCreationFailed is returned when a token cannot be signed.
var ErrTokenCreationFailed = errors.New("token creation failed")
