package service

import (
	"bitechoice/internal/domain"
)

type PreferenceService struct {
	repository PreferenceRepository
}

func NewPreferenceService(repository PreferenceRepository) *PreferenceService {
	return &PreferenceService{repository: repository}
}

// Get returns the user's stored preferences, or nil when none exist yet.
// Absence is not an error.
func (s *PreferenceService) Get(userID int) (*domain.UserPreferences, error) {
	return s.repository.FindPreferences(userID)
}

// Update upserts the preference record; it is created lazily on the first
// call for a user.
func (s *PreferenceService) Update(userID int, prefs *domain.UserPreferences) (*domain.UserPreferences, error) {
	prefs.UserID = userID
	if err := s.repository.UpsertPreferences(prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

var _ PreferenceServiceInterface = (*PreferenceService)(nil)
