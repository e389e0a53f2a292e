package heistrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/streetwars/economy/internal/domain"
	"github.com/streetwars/economy/internal/pg"
)

const heistColumns = `id, room_id, event_id, pot, bonus, phase, join_deadline, split_deadline, created_at`

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

func scanHeist(row pg.Scanner, h *domain.Heist) error {
	return row.Scan(&h.ID, &h.RoomID, &h.EventID, &h.Pot, &h.Bonus, &h.Phase, &h.JoinDeadline, &h.SplitDeadline, &h.CreatedAt)
}

// RandomEvent picks one heist template uniformly.
func (r *Repository) RandomEvent(ctx context.Context) (*domain.HeistEvent, error) {
	query := `
        SELECT id, title, keyword, pot_min, pot_max, bonus_chance, bonus_min, bonus_max
        FROM heist_events
        ORDER BY random()
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query)
	var event domain.HeistEvent
	err := row.Scan(&event.ID, &event.Title, &event.Keyword, &event.PotMin, &event.PotMax, &event.BonusChance, &event.BonusMin, &event.BonusMax)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to pick heist event", zap.Error(err))
		return nil, err
	}
	return &event, nil
}

func (r *Repository) Create(ctx context.Context, heist *domain.Heist) (*domain.Heist, error) {
	query := `
        INSERT INTO heists (room_id, event_id, pot, bonus, join_deadline, split_deadline)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + heistColumns + `
    `
	row := r.db.QueryRow(ctx, query, heist.RoomID, heist.EventID, heist.Pot, heist.Bonus, heist.JoinDeadline, heist.SplitDeadline)
	var saved domain.Heist
	if err := scanHeist(row, &saved); err != nil {
		zap.L().Error("failed to create heist", zap.Error(err))
		return nil, err
	}
	return &saved, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Heist, error) {
	query := `
        SELECT ` + heistColumns + `
        FROM heists
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var heist domain.Heist
	err := scanHeist(row, &heist)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get heist", zap.Error(err))
		return nil, err
	}
	return &heist, nil
}

// GetByIDForUpdate locks the heist row so a phase transition and a player
// action cannot interleave.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int) (*domain.Heist, error) {
	query := `
        SELECT ` + heistColumns + `
        FROM heists
        WHERE id = $1
        FOR UPDATE
    `
	row := r.db.QueryRow(ctx, query, id)
	var heist domain.Heist
	err := scanHeist(row, &heist)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to lock heist", zap.Error(err))
		return nil, err
	}
	return &heist, nil
}

func (r *Repository) GetActiveByRoom(ctx context.Context, roomID int64) (*domain.Heist, error) {
	query := `
        SELECT ` + heistColumns + `
        FROM heists
        WHERE room_id = $1 AND phase <> 'finished'
    `
	row := r.db.QueryRow(ctx, query, roomID)
	var heist domain.Heist
	err := scanHeist(row, &heist)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get room heist", zap.Error(err))
		return nil, err
	}
	return &heist, nil
}

// ListUnfinished returns all heists whose deadline transitions may still be
// pending, for scheduler recovery after a restart.
func (r *Repository) ListUnfinished(ctx context.Context) ([]domain.Heist, error) {
	query := `
        SELECT ` + heistColumns + `
        FROM heists
        WHERE phase <> 'finished'
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to list unfinished heists", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var heists []domain.Heist
	for rows.Next() {
		var heist domain.Heist
		if err := scanHeist(rows, &heist); err != nil {
			zap.L().Error("failed to scan heist row", zap.Error(err))
			return nil, err
		}
		heists = append(heists, heist)
	}
	return heists, nil
}

// AdvancePhase moves the heist from an expected phase to the next one.
// Returns false without error when the row is no longer in the expected
// phase, so a late deadline timer degrades to a no-op.
func (r *Repository) AdvancePhase(ctx context.Context, id int, from, to domain.HeistPhase) (bool, error) {
	query := `
        UPDATE heists
        SET phase = $1
        WHERE id = $2 AND phase = $3
    `
	tag, err := r.db.Exec(ctx, query, to, id, from)
	if err != nil {
		zap.L().Error("failed to advance heist phase", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// AddParticipant registers the account once; a repeat join is reported as
// already-joined, not an error.
func (r *Repository) AddParticipant(ctx context.Context, heistID int, accountID int64) (bool, error) {
	query := `
        INSERT INTO heist_participants (heist_id, account_id)
        VALUES ($1, $2)
        ON CONFLICT (heist_id, account_id) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, heistID, accountID)
	if err != nil {
		zap.L().Error("failed to add participant", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanParticipant(row pg.Scanner, p *domain.HeistParticipant) error {
	return row.Scan(&p.HeistID, &p.AccountID, &p.BaseShare, &p.CurrentShare, &p.BonusShare, &p.DefenseBonus, &p.JoinedAt)
}

const participantColumns = `heist_id, account_id, base_share, current_share, bonus_share, defense_bonus, joined_at`

func (r *Repository) ListParticipants(ctx context.Context, heistID int) ([]domain.HeistParticipant, error) {
	query := `
        SELECT ` + participantColumns + `
        FROM heist_participants
        WHERE heist_id = $1
        ORDER BY account_id ASC
    `
	rows, err := r.db.Query(ctx, query, heistID)
	if err != nil {
		zap.L().Error("failed to list participants", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var participants []domain.HeistParticipant
	for rows.Next() {
		var p domain.HeistParticipant
		if err := scanParticipant(rows, &p); err != nil {
			zap.L().Error("failed to scan participant row", zap.Error(err))
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, nil
}

// ListParticipantsForUpdate locks every participant row of the heist in
// account-id order, for the split payout.
func (r *Repository) ListParticipantsForUpdate(ctx context.Context, heistID int) ([]domain.HeistParticipant, error) {
	query := `
        SELECT ` + participantColumns + `
        FROM heist_participants
        WHERE heist_id = $1
        ORDER BY account_id ASC
        FOR UPDATE
    `
	rows, err := r.db.Query(ctx, query, heistID)
	if err != nil {
		zap.L().Error("failed to lock participants", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var participants []domain.HeistParticipant
	for rows.Next() {
		var p domain.HeistParticipant
		if err := scanParticipant(rows, &p); err != nil {
			zap.L().Error("failed to scan participant row", zap.Error(err))
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, nil
}

// LockPair locks exactly the attacker's and target's participant rows,
// always in ascending account-id order so two concurrent betrayals cannot
// deadlock each other.
func (r *Repository) LockPair(ctx context.Context, heistID int, a, b int64) ([]domain.HeistParticipant, error) {
	query := `
        SELECT ` + participantColumns + `
        FROM heist_participants
        WHERE heist_id = $1 AND account_id IN ($2, $3)
        ORDER BY account_id ASC
        FOR UPDATE
    `
	rows, err := r.db.Query(ctx, query, heistID, a, b)
	if err != nil {
		zap.L().Error("failed to lock participant pair", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var participants []domain.HeistParticipant
	for rows.Next() {
		var p domain.HeistParticipant
		if err := scanParticipant(rows, &p); err != nil {
			zap.L().Error("failed to scan participant row", zap.Error(err))
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, nil
}

// SetAllShares seeds every participant's base and current share at the
// join-deadline transition.
func (r *Repository) SetAllShares(ctx context.Context, heistID int, baseShare, bonusShare float64) error {
	query := `
        UPDATE heist_participants
        SET base_share = $1, current_share = $1, bonus_share = $2
        WHERE heist_id = $3
    `
	if _, err := r.db.Exec(ctx, query, baseShare, bonusShare, heistID); err != nil {
		zap.L().Error("failed to set participant shares", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateParticipant(ctx context.Context, heistID int, accountID int64, currentShare float64, defenseBonus int) error {
	query := `
        UPDATE heist_participants
        SET current_share = $1, defense_bonus = $2
        WHERE heist_id = $3 AND account_id = $4
    `
	if _, err := r.db.Exec(ctx, query, currentShare, defenseBonus, heistID, accountID); err != nil {
		zap.L().Error("failed to update participant", zap.Error(err))
		return err
	}
	return nil
}

// DeleteParticipants removes paid-out participant rows.
func (r *Repository) DeleteParticipants(ctx context.Context, heistID int) error {
	query := `
        DELETE FROM heist_participants
        WHERE heist_id = $1
    `
	if _, err := r.db.Exec(ctx, query, heistID); err != nil {
		zap.L().Error("failed to delete participants", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SaveBetrayal(ctx context.Context, b *domain.Betrayal) error {
	query := `
        INSERT INTO heist_betrayals (heist_id, attacker_id, target_id, success, amount)
        VALUES ($1, $2, $3, $4, $5)
    `
	if _, err := r.db.Exec(ctx, query, b.HeistID, b.AttackerID, b.TargetID, b.Success, b.Amount); err != nil {
		zap.L().Error("failed to save betrayal", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListBetrayals(ctx context.Context, heistID int) ([]domain.Betrayal, error) {
	query := `
        SELECT id, heist_id, attacker_id, target_id, success, amount, created_at
        FROM heist_betrayals
        WHERE heist_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, heistID)
	if err != nil {
		zap.L().Error("failed to list betrayals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var betrayals []domain.Betrayal
	for rows.Next() {
		var b domain.Betrayal
		if err := rows.Scan(&b.ID, &b.HeistID, &b.AttackerID, &b.TargetID, &b.Success, &b.Amount, &b.CreatedAt); err != nil {
			zap.L().Error("failed to scan betrayal row", zap.Error(err))
			return nil, err
		}
		betrayals = append(betrayals, b)
	}
	return betrayals, nil
}
