// FILE: internal/service/preference_service.go
// UI preferences, loaded once per page and written on every change
package service

import (
	"context"
	"errors"

	"storefront-be/internal/dto"
	"storefront-be/internal/pkg/logger"
	"storefront-be/internal/repository/contract"
)

const (
	PrefHighContrast          = "high_contrast"
	PrefWelcomeModalDismissed = "welcome_modal_dismissed"
)

var ErrUnknownPreference = errors.New("unknown preference")

// DefaultPreferences applies to every owner until a key is written.
func DefaultPreferences() map[string]bool {
	return map[string]bool{
		PrefHighContrast:          false,
		PrefWelcomeModalDismissed: false,
	}
}

type IPreferenceService interface {
	Load(ctx context.Context, owner string) (*dto.PreferencesResponse, error)
	Set(ctx context.Context, owner, key string, value bool) (*dto.PreferencesResponse, error)
}

type preferenceService struct {
	repo   contract.PreferenceRepository
	logger logger.ILogger
}

func NewPreferenceService(repo contract.PreferenceRepository, log logger.ILogger) IPreferenceService {
	return &preferenceService{
		repo:   repo,
		logger: log,
	}
}

func (s *preferenceService) Load(ctx context.Context, owner string) (*dto.PreferencesResponse, error) {
	stored, err := s.repo.Load(ctx, owner)
	if err != nil {
		return nil, err
	}

	prefs := DefaultPreferences()
	for k, v := range stored {
		if _, known := prefs[k]; known {
			prefs[k] = v
		}
	}
	return &dto.PreferencesResponse{Owner: owner, Preferences: prefs}, nil
}

func (s *preferenceService) Set(ctx context.Context, owner, key string, value bool) (*dto.PreferencesResponse, error) {
	if _, known := DefaultPreferences()[key]; !known {
		return nil, ErrUnknownPreference
	}

	if err := s.repo.Set(ctx, owner, key, value); err != nil {
		s.logger.Error("PREFERENCE", "Failed to store preference", map[string]interface{}{
			"owner": owner,
			"key":   key,
			"error": err.Error(),
		})
		return nil, err
	}
	return s.Load(ctx, owner)
}
