package model

import (
	"time"
)

// User represents a registered student account. Authentication happens in
// Supabase on the client; supabase_id links the two identities.
type User struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Email      string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName   string    `json:"full_name" gorm:"type:varchar(255);not null"`
	SupabaseID *string   `json:"supabase_id,omitempty" gorm:"type:varchar(64);uniqueIndex"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UserInput carries the caller-supplied fields for creating a user.
type UserInput struct {
	Email      string  `json:"email"`
	FullName   string  `json:"full_name"`
	SupabaseID *string `json:"supabase_id,omitempty"`
}
