package preference

import (
	"context"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/preference"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/store"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
)

type PreferenceServiceImpl struct {
	repo store.Repository
}

func NewPreferenceService(repo store.Repository) preference.PreferenceService {
	return &PreferenceServiceImpl{repo: repo}
}

// Get implements preference.PreferenceService.
func (s *PreferenceServiceImpl) Get(ctx context.Context) (preference.Preferences, error) {
	if _, err := user.ActorFromContext(ctx); err != nil {
		return preference.Preferences{}, err
	}

	var prefs preference.Preferences
	err := s.repo.View(ctx, func(doc *store.Document) error {
		prefs = preference.Preferences{Language: doc.Language, DarkMode: doc.DarkMode}
		return nil
	})
	return prefs, err
}

// Update implements preference.PreferenceService. Preferences are stored once
// per document, so every actor shares them.
func (s *PreferenceServiceImpl) Update(ctx context.Context, req preference.UpdateRequest) (preference.Preferences, error) {
	if _, err := user.ActorFromContext(ctx); err != nil {
		return preference.Preferences{}, err
	}
	if err := req.Validate(); err != nil {
		return preference.Preferences{}, err
	}

	var prefs preference.Preferences
	err := s.repo.Update(ctx, func(doc *store.Document) error {
		if req.Language != nil {
			doc.Language = *req.Language
		}
		if req.DarkMode != nil {
			doc.DarkMode = *req.DarkMode
		}
		prefs = preference.Preferences{Language: doc.Language, DarkMode: doc.DarkMode}
		return nil
	})
	if err != nil {
		return preference.Preferences{}, err
	}
	return prefs, nil
}
