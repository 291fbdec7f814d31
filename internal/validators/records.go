package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-cadence-keys/models"
)

// Field names accepted by [RecordValidator.Validate] to narrow validation.
const (
	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldStatus    = "status"
	FieldWeight    = "weight"
	FieldParent    = "parent_activity_id"
	FieldKey       = "encryption_key"
	FieldEmail     = "legacy_email"
	FieldBatchSize = "batch_size"
)

var allowedStatuses = []models.ActivityStatus{
	models.ActivityEnabled,
	models.ActivityDisabled,
	models.ActivityDeleted,
}

// RecordValidator checks activities, notes and legacy-key records received
// by the backend. Encrypted fields are opaque and never inspected.
type RecordValidator struct{}

// NewRecordValidator returns a [RecordValidator] as a [Validator].
func NewRecordValidator() Validator {
	return &RecordValidator{}
}

// Validate dispatches on the dynamic type of obj. Without fields a default
// set is checked for each type.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Activity:
		return v.validateActivity(value, fields...)
	case *models.Activity:
		return v.validateActivity(*value, fields...)
	case []models.Activity:
		return validateBatch(value, func(a models.Activity) string { return a.ID }, func(a models.Activity) error {
			return v.validateActivity(a, fields...)
		})

	case models.Note:
		return v.validateNote(value, fields...)
	case *models.Note:
		return v.validateNote(*value, fields...)
	case []models.Note:
		return validateBatch(value, func(n models.Note) string { return n.ID }, func(n models.Note) error {
			return v.validateNote(n, fields...)
		})

	case models.LegacyKey:
		return v.validateLegacyKey(value, fields...)
	case *models.LegacyKey:
		return v.validateLegacyKey(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateActivity(a models.Activity, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID, FieldStatus, FieldWeight, FieldParent}
	}

	for _, field := range fields {
		switch field {
		case FieldID:
			if strings.TrimSpace(a.ID) == "" {
				return ErrEmptyID
			}
		case FieldUserID:
			if a.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldStatus:
			if !slices.Contains(allowedStatuses, a.Status) {
				return fmt.Errorf("%w: %q", ErrInvalidStatus, a.Status)
			}
		case FieldWeight:
			if a.Weight < 0 {
				return ErrInvalidWeight
			}
		case FieldParent:
			if a.ParentActivityID != nil && *a.ParentActivityID == a.ID {
				return ErrSelfParentedEntry
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *RecordValidator) validateNote(n models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID}
	}

	for _, field := range fields {
		switch field {
		case FieldID:
			if strings.TrimSpace(n.ID) == "" {
				return ErrEmptyID
			}
		case FieldUserID:
			if n.UserID <= 0 {
				return ErrInvalidUserID
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *RecordValidator) validateLegacyKey(k models.LegacyKey, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldKey, FieldEmail}
	}

	for _, field := range fields {
		switch field {
		case FieldUserID:
			if k.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldKey:
			if strings.TrimSpace(k.EncryptionKey) == "" {
				return ErrEmptyLegacyKey
			}
		case FieldEmail:
			if strings.TrimSpace(k.LegacyEmail) == "" {
				return ErrEmptyLegacyEmail
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

// validateBatch rejects empty batches and repeated IDs, then checks each
// element. The error names the failing index.
func validateBatch[T any](batch []T, id func(T) string, check func(T) error) error {
	if len(batch) == 0 {
		return ErrEmptyBatch
	}

	seen := make(map[string]struct{}, len(batch))
	for i, item := range batch {
		if err := check(item); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if _, dup := seen[id(item)]; dup {
			return fmt.Errorf("record %d: %w", i, ErrDuplicateID)
		}
		seen[id(item)] = struct{}{}
	}
	return nil
}
