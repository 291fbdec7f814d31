package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-cadence-keys/internal/crypto"
	"github.com/MKhiriev/go-cadence-keys/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var envelopeLikePattern = crypto.EnvelopePrefix + "%"

var activityColumns = []string{
	"id", "user_id", "name", "color", "parent_activity_id", "activity_category_id",
	"status", "weight", "created_at", "updated_at",
}

var noteColumns = []string{
	"id", "user_id", "timeslice_id", "message", "created_at", "updated_at",
}

var legacyKeyColumns = []string{
	"user_id", "encryption_key", "legacy_email", "created_at",
}

func buildListActivitiesQuery(userID int64) (string, []any, error) {
	return psql.Select(activityColumns...).
		From(models.Activity{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
		ToSql()
}

func buildCreateActivityQuery(a models.Activity) (string, []any, error) {
	return psql.Insert(a.TableName()).
		Columns("id", "user_id", "name", "color", "parent_activity_id", "activity_category_id", "status", "weight").
		Values(a.ID, a.UserID, a.Name, a.Color, a.ParentActivityID, a.ActivityCategoryID, a.Status, a.Weight).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
}

func buildUpdateActivityQuery(userID int64, a models.Activity) (string, []any, error) {
	return psql.Update(a.TableName()).
		Set("name", a.Name).
		Set("color", a.Color).
		Set("parent_activity_id", a.ParentActivityID).
		Set("activity_category_id", a.ActivityCategoryID).
		Set("status", a.Status).
		Set("weight", a.Weight).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": a.ID, "user_id": userID}).
		ToSql()
}

func buildHasEncryptedQuery(table, column string, userID int64) (string, []any, error) {
	return psql.Select("1").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Like{column: envelopeLikePattern}).
		Limit(1).
		ToSql()
}

func buildListNotesQuery(userID int64) (string, []any, error) {
	return psql.Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
		ToSql()
}

func buildCreateNoteQuery(n models.Note) (string, []any, error) {
	return psql.Insert(n.TableName()).
		Columns("id", "user_id", "timeslice_id", "message").
		Values(n.ID, n.UserID, n.TimesliceID, n.Message).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
}

func buildUpdateNoteQuery(userID int64, n models.Note) (string, []any, error) {
	return psql.Update(n.TableName()).
		Set("timeslice_id", n.TimesliceID).
		Set("message", n.Message).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": n.ID, "user_id": userID}).
		ToSql()
}

func buildListLegacyKeysQuery(userID int64) (string, []any, error) {
	return psql.Select(legacyKeyColumns...).
		From(models.LegacyKey{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildCreateLegacyKeyQuery(k models.LegacyKey) (string, []any, error) {
	return psql.Insert(k.TableName()).
		Columns("user_id", "encryption_key", "legacy_email").
		Values(k.UserID, k.EncryptionKey, k.LegacyEmail).
		Suffix("RETURNING created_at").
		ToSql()
}
