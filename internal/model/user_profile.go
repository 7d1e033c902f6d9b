package model

import (
	"time"

	"gorm.io/datatypes"
)

// UserProfile holds the at-most-one career profile per user. Skills is the
// client's {technical: [], soft: [], languages: []} document and Preferences
// its search preferences; both are stored opaquely. The unique index on
// UserID is what makes the Postgres upsert atomic.
type UserProfile struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	UserID      uint            `json:"user_id" gorm:"uniqueIndex;not null"`
	Skills      datatypes.JSON  `json:"skills,omitempty" gorm:"type:jsonb"`
	Preferences datatypes.JSON  `json:"preferences,omitempty" gorm:"type:jsonb"`
	LinkedIn    *string         `json:"linkedin,omitempty" gorm:"column:linkedin;type:varchar(255)"`
	GitHub      *string         `json:"github,omitempty" gorm:"column:github;type:varchar(255)"`
	Phone       *string         `json:"phone,omitempty" gorm:"type:varchar(64)"`
	Location    *string         `json:"location,omitempty" gorm:"type:varchar(255)"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProfileInput carries the caller-supplied fields for the profile upsert.
// Absent fields stay absent on create and untouched on update.
type ProfileInput struct {
	UserID      uint            `json:"user_id"`
	Skills      datatypes.JSON  `json:"skills,omitempty"`
	Preferences datatypes.JSON  `json:"preferences,omitempty"`
	LinkedIn    *string         `json:"linkedin,omitempty"`
	GitHub      *string         `json:"github,omitempty"`
	Phone       *string         `json:"phone,omitempty"`
	Location    *string         `json:"location,omitempty"`
}
