package settingsrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/streetwars/economy/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll(ctx context.Context) (map[string]float64, error) {
	query := `
        SELECT key, value
        FROM settings
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to load settings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	values := make(map[string]float64)
	for rows.Next() {
		var key string
		var value float64
		if err := rows.Scan(&key, &value); err != nil {
			zap.L().Error("failed to scan setting row", zap.Error(err))
			return nil, err
		}
		values[key] = value
	}
	return values, nil
}

func (r *Repository) Set(ctx context.Context, key string, value float64) error {
	query := `
        INSERT INTO settings (key, value)
        VALUES ($1, $2)
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
    `
	if _, err := r.db.Exec(ctx, query, key, value); err != nil {
		zap.L().Error("failed to store setting", zap.Error(err))
		return err
	}
	return nil
}
