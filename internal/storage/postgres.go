package storage

import (
	"errors"
	"time"

	"careerboost-api/internal/model"
	"careerboost-api/prometheus"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgresStorage implements Storage on top of GORM. Every operation maps
// to a single statement; the profile upsert relies on the unique index on
// user_profiles.user_id and INSERT ... ON CONFLICT, so concurrent upserts
// for the same user cannot create a second row.
type PostgresStorage struct {
	db *gorm.DB
}

// NewPostgresStorage wraps an initialized GORM connection
func NewPostgresStorage(db *gorm.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

// firstOrNil runs a First query and maps "record not found" to absence.
func firstOrNil[T any](query *gorm.DB, dest *T) (*T, error) {
	if err := query.First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return dest, nil
}

func (s *PostgresStorage) GetUser(id uint) (*model.User, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var user model.User
	return firstOrNil(s.db.Where("id = ?", id), &user)
}

func (s *PostgresStorage) GetUserByEmail(email string) (*model.User, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var user model.User
	return firstOrNil(s.db.Where("email = ?", email), &user)
}

func (s *PostgresStorage) GetUserBySupabaseID(supabaseID string) (*model.User, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var user model.User
	return firstOrNil(s.db.Where("supabase_id = ?", supabaseID), &user)
}

func (s *PostgresStorage) CreateUser(input *model.UserInput) (*model.User, error) {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	user := model.User{
		Email:      input.Email,
		FullName:   input.FullName,
		SupabaseID: input.SupabaseID,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *PostgresStorage) GetUserResumes(userID uint) ([]model.Resume, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	resumes := []model.Resume{}
	if err := s.db.Where("user_id = ?", userID).Find(&resumes).Error; err != nil {
		return nil, err
	}
	return resumes, nil
}

func (s *PostgresStorage) CreateResume(input *model.ResumeInput) (*model.Resume, error) {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	resume := model.Resume{
		UserID:  input.UserID,
		Title:   input.Title,
		Content: input.Content,
	}
	if input.ATSScore != nil {
		resume.ATSScore = *input.ATSScore
	}
	if err := s.db.Create(&resume).Error; err != nil {
		return nil, err
	}
	return &resume, nil
}

func (s *PostgresStorage) UpdateResume(id uint, update *model.ResumeUpdate) (*model.Resume, error) {
	defer prometheus.TrackDBOperation("update")(time.Now())

	// Single UPDATE ... RETURNING with only the supplied columns, so
	// concurrent partial updates to different fields both land and a row
	// deleted in between simply reports absence.
	var resume model.Resume
	result := s.db.Model(&resume).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(resumeAssignments(update))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &resume, nil
}

// resumeAssignments maps the supplied fields to UPDATE assignments.
// updated_at is always refreshed, so an empty update still touches the
// timestamp without writing any other column.
func resumeAssignments(update *model.ResumeUpdate) map[string]interface{} {
	assignments := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if update.Title != nil {
		assignments["title"] = *update.Title
	}
	if len(update.Content) > 0 {
		assignments["content"] = update.Content
	}
	if update.ATSScore != nil {
		assignments["ats_score"] = *update.ATSScore
	}
	return assignments
}

func (s *PostgresStorage) DeleteResume(id uint) (bool, error) {
	defer prometheus.TrackDBOperation("delete")(time.Now())

	result := s.db.Delete(&model.Resume{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *PostgresStorage) GetUserApplications(userID uint) ([]model.Application, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	applications := []model.Application{}
	if err := s.db.Where("user_id = ?", userID).Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (s *PostgresStorage) CreateApplication(input *model.ApplicationInput) (*model.Application, error) {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	application := model.Application{
		UserID:    input.UserID,
		Company:   input.Company,
		Position:  input.Position,
		Status:    input.Status,
		AppliedAt: time.Now(),
		Notes:     input.Notes,
	}
	if application.Status == "" {
		application.Status = model.StatusPending
	}
	if err := s.db.Create(&application).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

func (s *PostgresStorage) UpdateApplication(id uint, update *model.ApplicationUpdate) (*model.Application, error) {
	defer prometheus.TrackDBOperation("update")(time.Now())

	// applied_at stays as created and the model carries no updated_at, so
	// an update with no supplied fields has nothing to write; a bare
	// existence read answers the contract with one statement either way.
	assignments := applicationAssignments(update)
	if len(assignments) == 0 {
		var application model.Application
		return firstOrNil(s.db.Where("id = ?", id), &application)
	}

	var application model.Application
	result := s.db.Model(&application).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(assignments)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &application, nil
}

// applicationAssignments maps the supplied fields to UPDATE assignments.
// applied_at is immutable and never appears here.
func applicationAssignments(update *model.ApplicationUpdate) map[string]interface{} {
	assignments := map[string]interface{}{}
	if update.Company != nil {
		assignments["company"] = *update.Company
	}
	if update.Position != nil {
		assignments["position"] = *update.Position
	}
	if update.Status != nil {
		assignments["status"] = *update.Status
	}
	if update.Notes != nil {
		assignments["notes"] = *update.Notes
	}
	return assignments
}

func (s *PostgresStorage) GetUserProfile(userID uint) (*model.UserProfile, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var profile model.UserProfile
	return firstOrNil(s.db.Where("user_id = ?", userID), &profile)
}

func (s *PostgresStorage) CreateOrUpdateProfile(input *model.ProfileInput) (*model.UserProfile, error) {
	defer prometheus.TrackDBOperation("upsert")(time.Now())

	// Only the fields the caller supplied are assigned on conflict, so a
	// partial payload merges instead of blanking the stored profile.
	assignments := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if len(input.Skills) > 0 {
		assignments["skills"] = input.Skills
	}
	if len(input.Preferences) > 0 {
		assignments["preferences"] = input.Preferences
	}
	if input.LinkedIn != nil {
		assignments["linkedin"] = *input.LinkedIn
	}
	if input.GitHub != nil {
		assignments["github"] = *input.GitHub
	}
	if input.Phone != nil {
		assignments["phone"] = *input.Phone
	}
	if input.Location != nil {
		assignments["location"] = *input.Location
	}

	profile := model.UserProfile{
		UserID:      input.UserID,
		Skills:      input.Skills,
		Preferences: input.Preferences,
		LinkedIn:    input.LinkedIn,
		GitHub:      input.GitHub,
		Phone:       input.Phone,
		Location:    input.Location,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(&profile).Error
	if err != nil {
		return nil, err
	}

	// Re-read to return the merged row; the atomic write has already landed.
	return s.GetUserProfile(input.UserID)
}
