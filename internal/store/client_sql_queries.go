package store

const (
	deleteCachedActivities = `DELETE FROM cached_activities WHERE user_id = ?;`

	upsertCachedActivity = `INSERT INTO cached_activities (
			id, user_id, name, color, parent_activity_id, activity_category_id,
			status, weight, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, id) DO UPDATE SET
			name = excluded.name,
			color = excluded.color,
			parent_activity_id = excluded.parent_activity_id,
			activity_category_id = excluded.activity_category_id,
			status = excluded.status,
			weight = excluded.weight,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at;`

	listCachedActivities = `SELECT id, user_id, name, color, parent_activity_id, activity_category_id,
			status, weight, created_at, updated_at
		FROM cached_activities
		WHERE user_id = ?
		ORDER BY created_at, id;`

	deleteCachedNotes = `DELETE FROM cached_notes WHERE user_id = ?;`

	upsertCachedNote = `INSERT INTO cached_notes (
			id, user_id, timeslice_id, message, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, id) DO UPDATE SET
			timeslice_id = excluded.timeslice_id,
			message = excluded.message,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at;`

	listCachedNotes = `SELECT id, user_id, timeslice_id, message, created_at, updated_at
		FROM cached_notes
		WHERE user_id = ?
		ORDER BY created_at, id;`

	hasCachedRecords = `SELECT
			EXISTS (SELECT 1 FROM cached_activities WHERE user_id = ?)
			OR EXISTS (SELECT 1 FROM cached_notes WHERE user_id = ?);`

	getLocalValue = `SELECT value FROM local_kv WHERE key = ?;`

	setLocalValue = `INSERT INTO local_kv (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at;`

	deleteLocalValue = `DELETE FROM local_kv WHERE key = ?;`
)
