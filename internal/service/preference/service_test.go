package preference

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/preference"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferences(t *testing.T) {
	repo := testutil.NewRepository(t, testutil.NewClock(time.Now()))
	svc := NewPreferenceService(repo)
	ctx := testutil.As(testutil.Member)

	prefs, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, preference.Preferences{Language: "ar", DarkMode: false}, prefs)

	dark := true
	prefs, err = svc.Update(ctx, preference.UpdateRequest{DarkMode: &dark})
	require.NoError(t, err)
	assert.Equal(t, preference.Preferences{Language: "ar", DarkMode: true}, prefs)

	en := "en"
	_, err = svc.Update(ctx, preference.UpdateRequest{Language: &en})
	require.NoError(t, err)
	prefs, err = svc.Get(testutil.As(testutil.Admin))
	require.NoError(t, err)
	assert.Equal(t, "en", prefs.Language)

	fr := "fr"
	_, err = svc.Update(ctx, preference.UpdateRequest{Language: &fr})
	assert.Error(t, err)

	_, err = svc.Get(context.Background())
	assert.ErrorIs(t, err, user.ErrActorMissing)
}
