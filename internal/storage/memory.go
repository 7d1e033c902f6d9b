package storage

import (
	"sync"
	"time"

	"careerboost-api/internal/model"
)

// MemoryStorage is the fallback store used when no database is configured.
// A single counter hands out ids across all entity types, so ids are unique
// process-wide but not densely packed per entity. The mutex makes every
// operation atomic, including the profile upsert; unlike the Postgres
// backend it does NOT enforce email uniqueness.
type MemoryStorage struct {
	mu           sync.Mutex
	users        map[uint]model.User
	resumes      map[uint]model.Resume
	applications map[uint]model.Application
	profiles     map[uint]model.UserProfile
	currentID    uint
}

// NewMemoryStorage creates an empty in-memory store
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:        make(map[uint]model.User),
		resumes:      make(map[uint]model.Resume),
		applications: make(map[uint]model.Application),
		profiles:     make(map[uint]model.UserProfile),
	}
}

// nextID hands out the next id from the shared counter. Callers must hold mu.
func (s *MemoryStorage) nextID() uint {
	s.currentID++
	return s.currentID
}

func (s *MemoryStorage) GetUser(id uint) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user, ok := s.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

func (s *MemoryStorage) GetUserByEmail(email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (s *MemoryStorage) GetUserBySupabaseID(supabaseID string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.SupabaseID != nil && *user.SupabaseID == supabaseID {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (s *MemoryStorage) CreateUser(input *model.UserInput) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	user := model.User{
		ID:         s.nextID(),
		Email:      input.Email,
		FullName:   input.FullName,
		SupabaseID: input.SupabaseID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.users[user.ID] = user
	return &user, nil
}

func (s *MemoryStorage) GetUserResumes(userID uint) ([]model.Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resumes := []model.Resume{}
	for _, resume := range s.resumes {
		if resume.UserID == userID {
			resumes = append(resumes, resume)
		}
	}
	return resumes, nil
}

func (s *MemoryStorage) CreateResume(input *model.ResumeInput) (*model.Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	resume := model.Resume{
		ID:        s.nextID(),
		UserID:    input.UserID,
		Title:     input.Title,
		Content:   input.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.ATSScore != nil {
		resume.ATSScore = *input.ATSScore
	}
	s.resumes[resume.ID] = resume
	return &resume, nil
}

func (s *MemoryStorage) UpdateResume(id uint, update *model.ResumeUpdate) (*model.Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resume, ok := s.resumes[id]
	if !ok {
		return nil, nil
	}

	if update.Title != nil {
		resume.Title = *update.Title
	}
	if len(update.Content) > 0 {
		resume.Content = update.Content
	}
	if update.ATSScore != nil {
		resume.ATSScore = *update.ATSScore
	}
	resume.UpdatedAt = time.Now()

	s.resumes[id] = resume
	return &resume, nil
}

func (s *MemoryStorage) DeleteResume(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.resumes[id]; !ok {
		return false, nil
	}
	delete(s.resumes, id)
	return true, nil
}

func (s *MemoryStorage) GetUserApplications(userID uint) ([]model.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	applications := []model.Application{}
	for _, application := range s.applications {
		if application.UserID == userID {
			applications = append(applications, application)
		}
	}
	return applications, nil
}

func (s *MemoryStorage) CreateApplication(input *model.ApplicationInput) (*model.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	application := model.Application{
		ID:        s.nextID(),
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
	s.applications[application.ID] = application
	return &application, nil
}

func (s *MemoryStorage) UpdateApplication(id uint, update *model.ApplicationUpdate) (*model.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	application, ok := s.applications[id]
	if !ok {
		return nil, nil
	}

	if update.Company != nil {
		application.Company = *update.Company
	}
	if update.Position != nil {
		application.Position = *update.Position
	}
	if update.Status != nil {
		application.Status = *update.Status
	}
	if update.Notes != nil {
		application.Notes = update.Notes
	}
	// AppliedAt is immutable: no timestamp refresh on update.

	s.applications[id] = application
	return &application, nil
}

func (s *MemoryStorage) GetUserProfile(userID uint) (*model.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if profile, ok := s.profileByUser(userID); ok {
		return &profile, nil
	}
	return nil, nil
}

// profileByUser finds the at-most-one profile for a user. Callers must hold mu.
func (s *MemoryStorage) profileByUser(userID uint) (model.UserProfile, bool) {
	for _, profile := range s.profiles {
		if profile.UserID == userID {
			return profile, true
		}
	}
	return model.UserProfile{}, false
}

func (s *MemoryStorage) CreateOrUpdateProfile(input *model.ProfileInput) (*model.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	if profile, ok := s.profileByUser(input.UserID); ok {
		if len(input.Skills) > 0 {
			profile.Skills = input.Skills
		}
		if len(input.Preferences) > 0 {
			profile.Preferences = input.Preferences
		}
		if input.LinkedIn != nil {
			profile.LinkedIn = input.LinkedIn
		}
		if input.GitHub != nil {
			profile.GitHub = input.GitHub
		}
		if input.Phone != nil {
			profile.Phone = input.Phone
		}
		if input.Location != nil {
			profile.Location = input.Location
		}
		profile.UpdatedAt = now

		s.profiles[profile.ID] = profile
		return &profile, nil
	}

	profile := model.UserProfile{
		ID:          s.nextID(),
		UserID:      input.UserID,
		Skills:      input.Skills,
		Preferences: input.Preferences,
		LinkedIn:    input.LinkedIn,
		GitHub:      input.GitHub,
		Phone:       input.Phone,
		Location:    input.Location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.profiles[profile.ID] = profile
	return &profile, nil
}
