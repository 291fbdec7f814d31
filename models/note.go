package models

import "time"

// Note is a free-text annotation attached to a timeslice.
// Message is encrypted on the device; a nil Message is left untouched.
type Note struct {
	ID          string    `json:"id"`
	UserID      int64     `json:"user_id"`
	TimesliceID *string   `json:"timeslice_id,omitempty"`
	Message     *string   `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
