package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrActivityNotFound is returned when an update targets an activity that
	// does not exist for the user.
	ErrActivityNotFound = errors.New("activity was not found")

	// ErrNoteNotFound is returned when an update targets a note that does not
	// exist for the user.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrAlreadyExists is returned when an insert collides with an existing
	// primary key.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrLegacyKeyExists is returned when the user already has a legacy key
	// record.
	ErrLegacyKeyExists = errors.New("legacy key already registered")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
