package preference

import "context"

type PreferenceService interface {
	Get(ctx context.Context) (Preferences, error)
	Update(ctx context.Context, req UpdateRequest) (Preferences, error)
}
