// Package settings holds the tunable game economy values. Values live in
// the settings table as overrides over compiled-in defaults and are served
// through a TTL cache that is invalidated on every write, replacing the
// process-global settings map of earlier versions.
package settings

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Settings struct {
	StartingCash float64
	SkillMax     int

	ExpMultiplier         int
	StatPerLevel          int
	LevelRewardCash       float64
	LevelRewardReputation int

	PriceMin int
	PriceMax int

	HeistJoinWindow  time.Duration
	HeistSplitWindow time.Duration

	BetrayBaseChance         int
	BetraySkillBonus         int
	BetrayMaxChance          int
	BetrayStealPercent       float64
	BetrayFailPenaltyPercent float64
	DefenseBonusStep         int
	DefenseBonusCap          int
	BetrayExpSuccess         int
	BetrayExpFail            int

	TheftDefenseBase   int
	TheftDefenseRepDiv int
	TheftDefenseRepCap int
	TheftSuccessBase   int
	TheftSuccessRepDiv int
	TheftSuccessRepCap int
	TheftPenalty       float64
	TheftStealMin      int
	TheftStealMax      int
	TheftCryptoReward  float64
	TheftExpSuccess    int
	TheftExpFail       int
	TheftExpDefense    int
	TheftCooldown      time.Duration

	ReferralThreshold int
	ReferralBonus     float64
}

// Default returns the compiled-in values before any stored overrides.
func Default() Settings {
	return Settings{
		StartingCash: 500.00,
		SkillMax:     10,

		ExpMultiplier:         100,
		StatPerLevel:          1,
		LevelRewardCash:       50.00,
		LevelRewardReputation: 1,

		PriceMin: 1,
		PriceMax: 1_000_000,

		HeistJoinWindow:  120 * time.Second,
		HeistSplitWindow: 180 * time.Second,

		BetrayBaseChance:         20,
		BetraySkillBonus:         5,
		BetrayMaxChance:          80,
		BetrayStealPercent:       30,
		BetrayFailPenaltyPercent: 10,
		DefenseBonusStep:         10,
		DefenseBonusCap:          50,
		BetrayExpSuccess:         15,
		BetrayExpFail:            5,

		TheftDefenseBase:   30,
		TheftDefenseRepDiv: 10,
		TheftDefenseRepCap: 20,
		TheftSuccessBase:   40,
		TheftSuccessRepDiv: 20,
		TheftSuccessRepCap: 15,
		TheftPenalty:       15.00,
		TheftStealMin:      10,
		TheftStealMax:      60,
		TheftCryptoReward:  0.0005,
		TheftExpSuccess:    10,
		TheftExpFail:       3,
		TheftExpDefense:    5,
		TheftCooldown:      time.Hour,

		ReferralThreshold: 10,
		ReferralBonus:     100.00,
	}
}

func (s *Settings) apply(key string, value float64) {
	switch key {
	case "starting_cash":
		s.StartingCash = value
	case "skill_max":
		s.SkillMax = int(value)
	case "exp_multiplier":
		s.ExpMultiplier = int(value)
	case "stat_per_level":
		s.StatPerLevel = int(value)
	case "level_reward_cash":
		s.LevelRewardCash = value
	case "level_reward_reputation":
		s.LevelRewardReputation = int(value)
	case "price_min":
		s.PriceMin = int(value)
	case "price_max":
		s.PriceMax = int(value)
	case "heist_join_window_sec":
		s.HeistJoinWindow = time.Duration(value) * time.Second
	case "heist_split_window_sec":
		s.HeistSplitWindow = time.Duration(value) * time.Second
	case "betray_base_chance":
		s.BetrayBaseChance = int(value)
	case "betray_skill_bonus":
		s.BetraySkillBonus = int(value)
	case "betray_max_chance":
		s.BetrayMaxChance = int(value)
	case "betray_steal_percent":
		s.BetrayStealPercent = value
	case "betray_fail_penalty_percent":
		s.BetrayFailPenaltyPercent = value
	case "defense_bonus_step":
		s.DefenseBonusStep = int(value)
	case "defense_bonus_cap":
		s.DefenseBonusCap = int(value)
	case "betray_exp_success":
		s.BetrayExpSuccess = int(value)
	case "betray_exp_fail":
		s.BetrayExpFail = int(value)
	case "theft_defense_base":
		s.TheftDefenseBase = int(value)
	case "theft_defense_rep_div":
		s.TheftDefenseRepDiv = int(value)
	case "theft_defense_rep_cap":
		s.TheftDefenseRepCap = int(value)
	case "theft_success_base":
		s.TheftSuccessBase = int(value)
	case "theft_success_rep_div":
		s.TheftSuccessRepDiv = int(value)
	case "theft_success_rep_cap":
		s.TheftSuccessRepCap = int(value)
	case "theft_penalty":
		s.TheftPenalty = value
	case "theft_steal_min":
		s.TheftStealMin = int(value)
	case "theft_steal_max":
		s.TheftStealMax = int(value)
	case "theft_crypto_reward":
		s.TheftCryptoReward = value
	case "theft_exp_success":
		s.TheftExpSuccess = int(value)
	case "theft_exp_fail":
		s.TheftExpFail = int(value)
	case "theft_exp_defense":
		s.TheftExpDefense = int(value)
	case "theft_cooldown_sec":
		s.TheftCooldown = time.Duration(value) * time.Second
	case "referral_threshold":
		s.ReferralThreshold = int(value)
	case "referral_bonus":
		s.ReferralBonus = value
	default:
		zap.L().Warn("unknown setting key ignored", zap.String("key", key))
	}
}

type Repo interface {
	GetAll(ctx context.Context) (map[string]float64, error)
	Set(ctx context.Context, key string, value float64) error
}

// Service caches the merged settings for up to ttl and drops the cache on
// every write.
type Service struct {
	repo Repo
	ttl  time.Duration

	mu       sync.Mutex
	cached   *Settings
	cachedAt time.Time
}

func New(repo Repo, ttl time.Duration) *Service {
	return &Service{
		repo: repo,
		ttl:  ttl,
	}
}

func (s *Service) Get(ctx context.Context) (*Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && time.Since(s.cachedAt) < s.ttl {
		return s.cached, nil
	}

	overrides, err := s.repo.GetAll(ctx)
	if err != nil {
		zap.L().Error("failed to load settings", zap.Error(err))
		return nil, err
	}

	merged := Default()
	for key, value := range overrides {
		merged.apply(key, value)
	}

	s.cached = &merged
	s.cachedAt = time.Now()
	return s.cached, nil
}

func (s *Service) Set(ctx context.Context, key string, value float64) error {
	if err := s.repo.Set(ctx, key, value); err != nil {
		zap.L().Error("failed to store setting", zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
	return nil
}
