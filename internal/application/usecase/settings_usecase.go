package usecase

import (
	"time"

	"github.com/tax1/inventory-api/internal/application/dto"
	"github.com/tax1/inventory-api/internal/domain"
	"github.com/tax1/inventory-api/internal/domain/entity"
	"github.com/tax1/inventory-api/internal/domain/repository"
	"github.com/tax1/inventory-api/internal/domain/valuation"
)

// SettingsUseCase preferencias por usuario. El método de valoración que
// devuelve GetValuationMethod es el que el handler inyecta en la venta: cambiar
// la preferencia solo afecta ventas futuras, nunca las ya registradas.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// GetValuationMethod devuelve el método de valoración activo del usuario.
// Si nunca configuró preferencias aplica el default (FIFO).
func (uc *SettingsUseCase) GetValuationMethod(userID string) (valuation.Method, error) {
	settings, err := uc.repo.Get(userID)
	if err != nil {
		return "", err
	}
	if settings == nil {
		return valuation.DefaultMethod, nil
	}
	method := valuation.Method(settings.ValuationMethod)
	if !method.IsValid() {
		return valuation.DefaultMethod, nil
	}
	return method, nil
}

// Get devuelve las preferencias del usuario (con defaults si no existen).
func (uc *SettingsUseCase) Get(userID string) (*dto.SettingsResponse, error) {
	method, err := uc.GetValuationMethod(userID)
	if err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{ValuationMethod: method.String()}, nil
}

// Update guarda el método de valoración del usuario.
func (uc *SettingsUseCase) Update(userID string, in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	method := valuation.Method(in.ValuationMethod)
	if !method.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	settings := &entity.UserSettings{
		UserID:          userID,
		ValuationMethod: method.String(),
		UpdatedAt:       time.Now(),
	}
	if err := uc.repo.Upsert(settings); err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{ValuationMethod: settings.ValuationMethod}, nil
}
