// Package storage defines the persistence contract for the CareerBoost API
// and its two interchangeable implementations: a Postgres-backed store used
// when DATABASE_URL is configured and an in-memory store used otherwise.
package storage

import (
	"careerboost-api/internal/model"
	"careerboost-api/pkg/config"
	"careerboost-api/pkg/database"
	applog "careerboost-api/pkg/logger"
)

// Storage is the complete set of persistence operations the handlers may
// perform. Lookups signal absence with a nil record and a nil error; errors
// are reserved for storage failures. Creates stamp server-side timestamps
// and assign ids; updates merge only the fields the caller supplied.
type Storage interface {
	// Users
	GetUser(id uint) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserBySupabaseID(supabaseID string) (*model.User, error)
	CreateUser(input *model.UserInput) (*model.User, error)

	// Resumes
	GetUserResumes(userID uint) ([]model.Resume, error)
	CreateResume(input *model.ResumeInput) (*model.Resume, error)
	UpdateResume(id uint, update *model.ResumeUpdate) (*model.Resume, error)
	DeleteResume(id uint) (bool, error)

	// Applications
	GetUserApplications(userID uint) ([]model.Application, error)
	CreateApplication(input *model.ApplicationInput) (*model.Application, error)
	UpdateApplication(id uint, update *model.ApplicationUpdate) (*model.Application, error)

	// Profiles
	GetUserProfile(userID uint) (*model.UserProfile, error)
	CreateOrUpdateProfile(input *model.ProfileInput) (*model.UserProfile, error)
}

// New selects the storage backend from configuration. With DATABASE_URL set
// it connects to Postgres and migrates the schema; otherwise it falls back
// to the process-local in-memory store, which loses its contents on restart.
func New(cfg *config.Config) (Storage, error) {
	log := applog.GetLogger()

	if cfg.Database.Configured() {
		if err := database.InitDB(cfg); err != nil {
			return nil, err
		}
		log.Info("Using Postgres storage")
		return NewPostgresStorage(database.GetDB()), nil
	}

	log.Warn("DATABASE_URL not set, using in-memory storage; data will not survive a restart")
	return NewMemoryStorage(), nil
}
