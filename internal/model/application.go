package model

import (
	"time"
)

// Application statuses accepted by the API.
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
	StatusWithdrawn = "withdrawn"
)

// ValidStatus reports whether s is one of the accepted application statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// Application is a tracked internship/job application. AppliedAt is stamped
// at creation and never mutated; updates intentionally skip UpdatedAt-style
// bookkeeping because the record carries none.
type Application struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Company   string    `json:"company" gorm:"type:varchar(255);not null"`
	Position  string    `json:"position" gorm:"type:varchar(255);not null"`
	Status    string    `json:"status" gorm:"type:varchar(32);not null;default:pending"`
	AppliedAt time.Time `json:"applied_at"`
	Notes     *string   `json:"notes,omitempty" gorm:"type:text"`
}

// ApplicationInput carries the caller-supplied fields for creating an
// application. Status defaults to pending when empty.
type ApplicationInput struct {
	UserID   uint    `json:"user_id"`
	Company  string  `json:"company"`
	Position string  `json:"position"`
	Status   string  `json:"status,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// ApplicationUpdate is a partial update; nil fields are left untouched.
type ApplicationUpdate struct {
	Company  *string `json:"company,omitempty"`
	Position *string `json:"position,omitempty"`
	Status   *string `json:"status,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}
