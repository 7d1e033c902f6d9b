package model

import (
	"time"

	"gorm.io/datatypes"
)

// Resume is a stored resume document. Content is an opaque structured
// document owned by the client; the server validates presence only.
// ATSScore is the 0-100 applicant-tracking score computed elsewhere and
// stored as given, not clamped here.
type Resume struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	UserID    uint            `json:"user_id" gorm:"index;not null"`
	Title     string          `json:"title" gorm:"type:varchar(255);not null"`
	Content   datatypes.JSON  `json:"content" gorm:"type:jsonb;not null"`
	ATSScore  int             `json:"ats_score" gorm:"default:0"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ResumeInput carries the caller-supplied fields for creating a resume.
type ResumeInput struct {
	UserID   uint            `json:"user_id"`
	Title    string          `json:"title"`
	Content  datatypes.JSON  `json:"content"`
	ATSScore *int            `json:"ats_score,omitempty"`
}

// ResumeUpdate is a partial update; nil fields are left untouched.
type ResumeUpdate struct {
	Title    *string         `json:"title,omitempty"`
	Content  datatypes.JSON  `json:"content,omitempty"`
	ATSScore *int            `json:"ats_score,omitempty"`
}
