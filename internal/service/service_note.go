package service

import (
	"context"

	"github.com/MKhiriev/go-cadence-keys/internal/logger"
	"github.com/MKhiriev/go-cadence-keys/internal/store"
	"github.com/MKhiriev/go-cadence-keys/internal/validators"
	"github.com/MKhiriev/go-cadence-keys/models"
)

type noteService struct {
	repository store.NoteRepository
	validator  validators.Validator

	logger *logger.Logger
}

// NewNoteService returns the backend [NoteService].
func NewNoteService(repository store.NoteRepository, validator validators.Validator, logger *logger.Logger) NoteService {
	return &noteService{
		repository: repository,
		validator:  validator,
		logger:     logger,
	}
}

func (s *noteService) List(ctx context.Context, userID int64) ([]models.Note, error) {
	if userID <= 0 {
		return nil, ErrNoUserID
	}
	return s.repository.ListNotes(ctx, userID)
}

func (s *noteService) Create(ctx context.Context, note models.Note) (models.Note, error) {
	if err := s.validator.Validate(ctx, note); err != nil {
		return models.Note{}, mapValidationError(err)
	}
	return s.repository.CreateNote(ctx, note)
}

func (s *noteService) Update(ctx context.Context, userID int64, notes []models.Note) error {
	if userID <= 0 {
		return ErrNoUserID
	}

	scoped := make([]models.Note, len(notes))
	for i, n := range notes {
		n.UserID = userID
		scoped[i] = n
	}

	if err := s.validator.Validate(ctx, scoped); err != nil {
		return mapValidationError(err)
	}

	if err := s.repository.UpdateNotes(ctx, userID, scoped); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Int("count", len(scoped)).Msg("note batch update failed")
		return err
	}
	return nil
}
