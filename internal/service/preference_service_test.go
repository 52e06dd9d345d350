package service

import (
	"context"
	"errors"
	"testing"

	"storefront-be/internal/pkg/logger"
	"storefront-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingPreferences struct{}

func (failingPreferences) Load(ctx context.Context, owner string) (map[string]bool, error) {
	return nil, errors.New("redis down")
}

func (failingPreferences) Set(ctx context.Context, owner, key string, value bool) error {
	return errors.New("redis down")
}

func TestPreferenceService_LoadAppliesDefaults(t *testing.T) {
	svc := NewPreferenceService(memory.NewPreferenceRepository(), logger.NewNopLogger())

	res, err := svc.Load(context.Background(), "guest-1")
	require.NoError(t, err)
	assert.Equal(t, "guest-1", res.Owner)
	assert.Equal(t, DefaultPreferences(), res.Preferences)
}

func TestPreferenceService_SetPersists(t *testing.T) {
	svc := NewPreferenceService(memory.NewPreferenceRepository(), logger.NewNopLogger())
	ctx := context.Background()

	res, err := svc.Set(ctx, "guest-1", PrefHighContrast, true)
	require.NoError(t, err)
	assert.True(t, res.Preferences[PrefHighContrast])
	assert.False(t, res.Preferences[PrefWelcomeModalDismissed])

	res, err = svc.Load(ctx, "guest-1")
	require.NoError(t, err)
	assert.True(t, res.Preferences[PrefHighContrast])
}

func TestPreferenceService_RejectsUnknownKey(t *testing.T) {
	svc := NewPreferenceService(memory.NewPreferenceRepository(), logger.NewNopLogger())

	_, err := svc.Set(context.Background(), "guest-1", "dark_mode", true)
	assert.ErrorIs(t, err, ErrUnknownPreference)
}

func TestPreferenceService_StoreErrors(t *testing.T) {
	svc := NewPreferenceService(failingPreferences{}, logger.NewNopLogger())

	_, err := svc.Load(context.Background(), "guest-1")
	assert.Error(t, err)
	_, err = svc.Set(context.Background(), "guest-1", PrefHighContrast, true)
	assert.Error(t, err)
}
