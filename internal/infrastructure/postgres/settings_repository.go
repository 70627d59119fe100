package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tax1/inventory-api/internal/domain/entity"
	"github.com/tax1/inventory-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación de SettingsRepository sobre PostgreSQL.
type SettingsRepo struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository construye el adaptador de preferencias.
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepo {
	return &SettingsRepo{pool: pool}
}

// Get devuelve las preferencias del usuario o nil si nunca las configuró.
func (r *SettingsRepo) Get(userID string) (*entity.UserSettings, error) {
	query := `SELECT user_id, valuation_method, updated_at FROM user_settings WHERE user_id = $1`
	var s entity.UserSettings
	err := r.pool.QueryRow(context.Background(), query, userID).Scan(
		&s.UserID, &s.ValuationMethod, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza las preferencias del usuario.
func (r *SettingsRepo) Upsert(settings *entity.UserSettings) error {
	query := `
		INSERT INTO user_settings (user_id, valuation_method, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET valuation_method = EXCLUDED.valuation_method, updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(context.Background(), query,
		settings.UserID, settings.ValuationMethod, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
