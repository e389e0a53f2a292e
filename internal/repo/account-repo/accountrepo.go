package accountrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/streetwars/economy/internal/domain"
	"github.com/streetwars/economy/internal/pg"
)

const accountColumns = `id, username, cash, debt, crypto, reputation,
		skill_share, skill_luck, skill_betray, strength, agility, defense,
		exp, level, theft_attempts, theft_success, theft_failed, theft_protected,
		heists_joined, heists_betray_attempts, heists_betray_success, heists_betrayed_count,
		heists_earned, referrer_id, referral_reward_given, created_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanAccount(row pg.Scanner, acc *domain.Account) error {
	return row.Scan(
		&acc.ID, &acc.Username, &acc.Cash, &acc.Debt, &acc.Crypto, &acc.Reputation,
		&acc.SkillShare, &acc.SkillLuck, &acc.SkillBetray, &acc.Strength, &acc.Agility, &acc.Defense,
		&acc.Exp, &acc.Level, &acc.TheftAttempts, &acc.TheftSuccess, &acc.TheftFailed, &acc.TheftProtected,
		&acc.HeistsJoined, &acc.HeistBetrayAttempts, &acc.HeistBetraySuccess, &acc.HeistsBetrayedCount,
		&acc.HeistsEarned, &acc.ReferrerID, &acc.ReferralRewardGiven, &acc.CreatedAt,
	)
}

func (r *Repository) Get(ctx context.Context, id int64) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var acc domain.Account
	err := scanAccount(row, &acc)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	return &acc, nil
}

// GetForUpdate locks the account row for the rest of the surrounding
// transaction. Outside a transaction the lock is released immediately, so
// callers are expected to be inside txManager.Begin.
func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE id = $1
        FOR UPDATE
    `
	row := r.db.QueryRow(ctx, query, id)
	var acc domain.Account
	err := scanAccount(row, &acc)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to lock account", zap.Error(err))
		return nil, err
	}
	return &acc, nil
}

// Create inserts the account with its starting cash grant, or refreshes the
// username if the account already exists.
func (r *Repository) Create(ctx context.Context, id int64, username string, startingCash float64) (*domain.Account, error) {
	query := `
        INSERT INTO accounts (id, username, cash)
        VALUES ($1, $2, $3)
        ON CONFLICT (id) DO UPDATE SET username = EXCLUDED.username
        RETURNING ` + accountColumns + `
    `
	row := r.db.QueryRow(ctx, query, id, username, startingCash)
	var acc domain.Account
	if err := scanAccount(row, &acc); err != nil {
		zap.L().Error("failed to create account", zap.Error(err))
		return nil, err
	}
	return &acc, nil
}

// CreditCash adds a cash amount, rounded to 2 decimal places.
func (r *Repository) CreditCash(ctx context.Context, id int64, amount float64) (float64, error) {
	query := `
        UPDATE accounts
        SET cash = ROUND((cash + $1)::numeric, 2)::double precision
        WHERE id = $2
        RETURNING cash
    `
	var cash float64
	if err := r.db.QueryRow(ctx, query, amount, id).Scan(&cash); err != nil {
		if err != pgx.ErrNoRows {
			zap.L().Error("failed to credit cash", zap.Error(err))
		}
		return 0, err
	}
	return cash, nil
}

// DebitCash removes a cash amount; any shortfall grows debt and cash is
// clamped to zero. Both expressions read the pre-update row values, so the
// whole debit is one atomic statement.
func (r *Repository) DebitCash(ctx context.Context, id int64, amount float64) (cash, debt float64, err error) {
	query := `
        UPDATE accounts
        SET cash = ROUND(GREATEST(cash - $1, 0)::numeric, 2)::double precision,
            debt = ROUND((debt + GREATEST($1 - cash, 0))::numeric, 2)::double precision
        WHERE id = $2
        RETURNING cash, debt
    `
	if err = r.db.QueryRow(ctx, query, amount, id).Scan(&cash, &debt); err != nil {
		if err != pgx.ErrNoRows {
			zap.L().Error("failed to debit cash", zap.Error(err))
		}
		return 0, 0, err
	}
	return cash, debt, nil
}

// DebitCashStrict removes cash only when the full amount is covered.
// pgx.ErrNoRows means the balance was insufficient (or the account is
// missing); the service layer tells the two apart.
func (r *Repository) DebitCashStrict(ctx context.Context, id int64, amount float64) (float64, error) {
	query := `
        UPDATE accounts
        SET cash = ROUND((cash - $1)::numeric, 2)::double precision
        WHERE id = $2 AND cash >= $1
        RETURNING cash
    `
	var cash float64
	if err := r.db.QueryRow(ctx, query, amount, id).Scan(&cash); err != nil {
		if err != pgx.ErrNoRows {
			zap.L().Error("failed to debit cash strictly", zap.Error(err))
		}
		return 0, err
	}
	return cash, nil
}

func (r *Repository) CreditCrypto(ctx context.Context, id int64, amount float64) (float64, error) {
	query := `
        UPDATE accounts
        SET crypto = ROUND((crypto + $1)::numeric, 4)::double precision
        WHERE id = $2
        RETURNING crypto
    `
	var crypto float64
	if err := r.db.QueryRow(ctx, query, amount, id).Scan(&crypto); err != nil {
		if err != pgx.ErrNoRows {
			zap.L().Error("failed to credit crypto", zap.Error(err))
		}
		return 0, err
	}
	return crypto, nil
}

// DebitCrypto fails (pgx.ErrNoRows) instead of driving the balance negative.
func (r *Repository) DebitCrypto(ctx context.Context, id int64, amount float64) (float64, error) {
	query := `
        UPDATE accounts
        SET crypto = ROUND((crypto - $1)::numeric, 4)::double precision
        WHERE id = $2 AND crypto >= $1
        RETURNING crypto
    `
	var crypto float64
	if err := r.db.QueryRow(ctx, query, amount, id).Scan(&crypto); err != nil {
		if err != pgx.ErrNoRows {
			zap.L().Error("failed to debit crypto", zap.Error(err))
		}
		return 0, err
	}
	return crypto, nil
}

func (r *Repository) AdjustReputation(ctx context.Context, id int64, delta int) (int, error) {
	query := `
        UPDATE accounts
        SET reputation = reputation + $1
        WHERE id = $2
        RETURNING reputation
    `
	var reputation int
	if err := r.db.QueryRow(ctx, query, delta, id).Scan(&reputation); err != nil {
		if err != pgx.ErrNoRows {
			zap.L().Error("failed to adjust reputation", zap.Error(err))
		}
		return 0, err
	}
	return reputation, nil
}

// Skill columns are a closed set; each kind maps to its own literal query.
var skillQueries = map[domain.SkillKind]string{
	domain.SkillShare: `
        UPDATE accounts
        SET skill_share = LEAST(GREATEST(skill_share + $1, 0), $2)
        WHERE id = $3
        RETURNING skill_share
    `,
	domain.SkillLuck: `
        UPDATE accounts
        SET skill_luck = LEAST(GREATEST(skill_luck + $1, 0), $2)
        WHERE id = $3
        RETURNING skill_luck
    `,
	domain.SkillBetray: `
        UPDATE accounts
        SET skill_betray = LEAST(GREATEST(skill_betray + $1, 0), $2)
        WHERE id = $3
        RETURNING skill_betray
    `,
}

func (r *Repository) AdjustSkill(ctx context.Context, id int64, kind domain.SkillKind, delta, max int) (int, error) {
	query, ok := skillQueries[kind]
	if !ok {
		return 0, fmt.Errorf("unknown skill kind: %s", kind)
	}
	var level int
	if err := r.db.QueryRow(ctx, query, delta, max, id).Scan(&level); err != nil {
		if err != pgx.ErrNoRows {
			zap.L().Error("failed to adjust skill", zap.Error(err), zap.String("kind", string(kind)))
		}
		return 0, err
	}
	return level, nil
}

// Counter columns are a closed set as well.
var counterQueries = map[domain.CounterKind]string{
	domain.CounterTheftAttempts:       `UPDATE accounts SET theft_attempts = theft_attempts + $1 WHERE id = $2`,
	domain.CounterTheftSuccess:        `UPDATE accounts SET theft_success = theft_success + $1 WHERE id = $2`,
	domain.CounterTheftFailed:         `UPDATE accounts SET theft_failed = theft_failed + $1 WHERE id = $2`,
	domain.CounterTheftProtected:      `UPDATE accounts SET theft_protected = theft_protected + $1 WHERE id = $2`,
	domain.CounterHeistsJoined:        `UPDATE accounts SET heists_joined = heists_joined + $1 WHERE id = $2`,
	domain.CounterHeistBetrayAttempts: `UPDATE accounts SET heists_betray_attempts = heists_betray_attempts + $1 WHERE id = $2`,
	domain.CounterHeistBetraySuccess:  `UPDATE accounts SET heists_betray_success = heists_betray_success + $1 WHERE id = $2`,
	domain.CounterHeistsBetrayedCount: `UPDATE accounts SET heists_betrayed_count = heists_betrayed_count + $1 WHERE id = $2`,
}

func (r *Repository) IncrementCounter(ctx context.Context, id int64, kind domain.CounterKind, delta int) error {
	query, ok := counterQueries[kind]
	if !ok {
		return fmt.Errorf("unknown counter kind: %s", kind)
	}
	if _, err := r.db.Exec(ctx, query, delta, id); err != nil {
		zap.L().Error("failed to increment counter", zap.Error(err), zap.String("kind", string(kind)))
		return err
	}
	return nil
}

func (r *Repository) AddHeistEarnings(ctx context.Context, id int64, amount float64) error {
	query := `
        UPDATE accounts
        SET heists_earned = ROUND((heists_earned + $1)::numeric, 2)::double precision
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, amount, id); err != nil {
		zap.L().Error("failed to add heist earnings", zap.Error(err))
		return err
	}
	return nil
}

// UpdateProgress stores the post-cascade experience, level and stats.
func (r *Repository) UpdateProgress(ctx context.Context, id int64, exp int64, level, strength, agility, defense int) error {
	query := `
        UPDATE accounts
        SET exp = $1, level = $2, strength = $3, agility = $4, defense = $5
        WHERE id = $6
    `
	if _, err := r.db.Exec(ctx, query, exp, level, strength, agility, defense, id); err != nil {
		zap.L().Error("failed to update progress", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetReferralRewardGiven(ctx context.Context, id int64) error {
	query := `
        UPDATE accounts
        SET referral_reward_given = TRUE
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		zap.L().Error("failed to set referral flag", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetCooldown(ctx context.Context, id int64, action string) (*time.Time, error) {
	query := `
        SELECT last_used
        FROM cooldowns
        WHERE account_id = $1 AND action = $2
    `
	var lastUsed time.Time
	err := r.db.QueryRow(ctx, query, id, action).Scan(&lastUsed)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get cooldown", zap.Error(err))
		return nil, err
	}
	return &lastUsed, nil
}

func (r *Repository) SetCooldown(ctx context.Context, id int64, action string, at time.Time) error {
	query := `
        INSERT INTO cooldowns (account_id, action, last_used)
        VALUES ($1, $2, $3)
        ON CONFLICT (account_id, action) DO UPDATE SET last_used = EXCLUDED.last_used
    `
	if _, err := r.db.Exec(ctx, query, id, action, at); err != nil {
		zap.L().Error("failed to set cooldown", zap.Error(err))
		return err
	}
	return nil
}
