package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrEmptyID           = errors.New("record ID is required")
	ErrInvalidStatus     = errors.New("invalid activity status")
	ErrInvalidWeight     = errors.New("activity weight must not be negative")
	ErrEmptyBatch        = errors.New("records list cannot be empty")
	ErrDuplicateID       = errors.New("duplicate record ID in batch")
	ErrEmptyLegacyKey    = errors.New("legacy encryption key is required")
	ErrEmptyLegacyEmail  = errors.New("legacy email is required")
	ErrSelfParentedEntry = errors.New("activity cannot be its own parent")
)
