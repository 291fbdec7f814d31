package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cadence-keys/internal/adapter"
	"github.com/MKhiriev/go-cadence-keys/internal/logger"
	"github.com/MKhiriev/go-cadence-keys/internal/store"
	"github.com/MKhiriev/go-cadence-keys/internal/utils"
	"github.com/MKhiriev/go-cadence-keys/models"
)

type clientNoteService struct {
	backend adapter.BackendAdapter
	cache   store.LocalCacheRepository
	codec   *NoteCodec

	logger *logger.Logger
}

func NewClientNoteService(backend adapter.BackendAdapter, cache store.LocalCacheRepository, codec *NoteCodec, logger *logger.Logger) ClientNoteService {
	return &clientNoteService{
		backend: backend,
		cache:   cache,
		codec:   codec,
		logger:  logger,
	}
}

func (s *clientNoteService) List(ctx context.Context, userID int64) ([]models.Note, error) {
	stored, err := s.backend.ListNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", mapAdapterError(err))
	}

	if err = s.cache.ReplaceNotes(ctx, userID, stored); err != nil {
		s.logger.Warn().Err(err).Int64("user_id", userID).Msg("failed to cache notes")
	}

	return s.codec.DecryptFields(ctx, stored)
}

func (s *clientNoteService) ListCached(ctx context.Context, userID int64) ([]models.Note, error) {
	stored, err := s.cache.ListNotes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cached notes: %w", err)
	}
	return s.codec.DecryptFields(ctx, stored)
}

func (s *clientNoteService) Create(ctx context.Context, userID int64, note models.Note) (models.Note, error) {
	if note.ID == "" {
		note.ID = utils.NewID()
	}
	note.UserID = userID

	encoded, err := s.codec.EncryptField(ctx, note)
	if err != nil {
		return models.Note{}, err
	}

	created, err := s.backend.CreateNote(ctx, encoded)
	if err != nil {
		return models.Note{}, fmt.Errorf("create note: %w", mapAdapterError(err))
	}

	if err = s.cache.UpsertNotes(ctx, userID, created); err != nil {
		s.logger.Warn().Err(err).Int64("user_id", userID).Str("note_id", created.ID).Msg("failed to cache created note")
	}

	return s.codec.DecryptField(ctx, created)
}

func (s *clientNoteService) Update(ctx context.Context, userID int64, notes []models.Note) error {
	encoded, err := s.codec.EncryptFields(ctx, notes)
	if err != nil {
		return err
	}

	if err = s.backend.UpdateNotes(ctx, encoded); err != nil {
		return fmt.Errorf("update notes: %w", mapAdapterError(err))
	}

	if err = s.cache.UpsertNotes(ctx, userID, encoded...); err != nil {
		s.logger.Warn().Err(err).Int64("user_id", userID).Msg("failed to cache updated notes")
	}
	return nil
}
