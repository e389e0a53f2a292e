package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	overrides map[string]float64
	getCalls  int
	setErr    error
}

func (f *fakeRepo) GetAll(context.Context) (map[string]float64, error) {
	f.getCalls++
	return f.overrides, nil
}

func (f *fakeRepo) Set(_ context.Context, key string, value float64) error {
	if f.setErr != nil {
		return f.setErr
	}
	if f.overrides == nil {
		f.overrides = map[string]float64{}
	}
	f.overrides[key] = value
	return nil
}

func TestGet_MergesOverridesOverDefaults(t *testing.T) {
	repo := &fakeRepo{overrides: map[string]float64{
		"starting_cash":        1000,
		"theft_cooldown_sec":   300,
		"betray_steal_percent": 45,
		"unknown_key":          7,
	}}
	service := New(repo, time.Minute)

	cfg, err := service.Get(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1000.0, cfg.StartingCash)
	assert.Equal(t, 5*time.Minute, cfg.TheftCooldown)
	assert.Equal(t, 45.0, cfg.BetrayStealPercent)
	// Everything without an override keeps its default.
	assert.Equal(t, Default().SkillMax, cfg.SkillMax)
	assert.Equal(t, Default().ReferralBonus, cfg.ReferralBonus)
}

func TestGet_CachesWithinTTL(t *testing.T) {
	repo := &fakeRepo{}
	service := New(repo, time.Minute)

	first, err := service.Get(context.Background())
	assert.NoError(t, err)
	second, err := service.Get(context.Background())
	assert.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, repo.getCalls)
}

func TestGet_ZeroTTLAlwaysReloads(t *testing.T) {
	repo := &fakeRepo{}
	service := New(repo, 0)

	_, err := service.Get(context.Background())
	assert.NoError(t, err)
	_, err = service.Get(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, 2, repo.getCalls)
}

func TestSet_InvalidatesCache(t *testing.T) {
	repo := &fakeRepo{}
	service := New(repo, time.Minute)

	cfg, err := service.Get(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, Default().StartingCash, cfg.StartingCash)

	assert.NoError(t, service.Set(context.Background(), "starting_cash", 750))

	cfg, err = service.Get(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 750.0, cfg.StartingCash)
	assert.Equal(t, 2, repo.getCalls)
}

func TestSet_StoreFailureKeepsCache(t *testing.T) {
	repo := &fakeRepo{}
	service := New(repo, time.Minute)

	first, err := service.Get(context.Background())
	assert.NoError(t, err)

	repo.setErr = errors.New("db error")
	assert.Error(t, service.Set(context.Background(), "starting_cash", 750))

	second, err := service.Get(context.Background())
	assert.NoError(t, err)
	assert.Same(t, first, second)
}
