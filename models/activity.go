// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ActivityStatus is the lifecycle state of an activity.
type ActivityStatus string

const (
	ActivityEnabled  ActivityStatus = "ENABLED"
	ActivityDisabled ActivityStatus = "DISABLED"
	ActivityDeleted  ActivityStatus = "DELETED"
)

// Activity is a user-defined thing time is tracked against.
//
// Name is the only field that is encrypted on the device before it is sent
// to the backend. A nil Name means "no value" and is never encrypted.
type Activity struct {
	ID                 string         `json:"id"`
	UserID             int64          `json:"user_id"`
	Name               *string        `json:"name"`
	Color              string         `json:"color,omitempty"`
	ParentActivityID   *string        `json:"parent_activity_id,omitempty"`
	ActivityCategoryID *string        `json:"activity_category_id,omitempty"`
	Status             ActivityStatus `json:"status"`
	Weight             float64        `json:"weight"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Activity model.
func (a Activity) TableName() string {
	return "activities"
}
