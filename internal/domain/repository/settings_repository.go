package repository

import "github.com/tax1/inventory-api/internal/domain/entity"

// SettingsRepository acceso a preferencias por usuario.
type SettingsRepository interface {
	// Get devuelve las preferencias del usuario o nil si nunca las configuró.
	Get(userID string) (*entity.UserSettings, error)
	Upsert(settings *entity.UserSettings) error
}
