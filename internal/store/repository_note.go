package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-cadence-keys/internal/logger"
	"github.com/MKhiriev/go-cadence-keys/models"
)

type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a PostgreSQL-backed [NoteRepository].
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

func (n *noteRepository) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := n.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListNotes").
			Int64("user_id", userID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Note, 0, 32)
	for rows.Next() {
		var item models.Note
		if err = scanNote(rows, &item); err != nil {
			log.Err(err).
				Str("func", "noteRepository.ListNotes").
				Int64("user_id", userID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

func (n *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	query, args, err := buildCreateNoteQuery(note)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = n.DB.QueryRowContext(ctx, query, args...).Scan(&note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Note{}, ErrAlreadyExists
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "noteRepository.CreateNote").
			Int64("user_id", note.UserID).
			Str("note_id", note.ID).
			Msg("failed to insert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

func (n *noteRepository) UpdateNotes(ctx context.Context, userID int64, notes []models.Note) error {
	log := logger.FromContext(ctx)

	return n.withTx(ctx, func(tx *sql.Tx) error {
		for i, note := range notes {
			query, args, err := buildUpdateNoteQuery(userID, note)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}

			res, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				log.Err(err).
					Str("func", "noteRepository.UpdateNotes").
					Int64("user_id", userID).
					Int("iteration", i).
					Msg("failed to update note")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}

			affected, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			if affected == 0 {
				return fmt.Errorf("%w: %s", ErrNoteNotFound, note.ID)
			}
		}
		return nil
	})
}

func (n *noteRepository) HasEncryptedNotes(ctx context.Context, userID int64) (bool, error) {
	return n.hasEncrypted(ctx, models.Note{}.TableName(), "message", userID)
}

func scanNote(row rowScanner, item *models.Note) error {
	return row.Scan(
		&item.ID,
		&item.UserID,
		&item.TimesliceID,
		&item.Message,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
}
