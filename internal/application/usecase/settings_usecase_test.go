package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tax1/inventory-api/internal/application/dto"
	"github.com/tax1/inventory-api/internal/application/usecase"
	"github.com/tax1/inventory-api/internal/domain"
	"github.com/tax1/inventory-api/internal/domain/entity"
	"github.com/tax1/inventory-api/internal/domain/valuation"
)

// fakeSettingsRepo almacén en memoria de preferencias.
type fakeSettingsRepo struct {
	byUser map[string]*entity.UserSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{byUser: make(map[string]*entity.UserSettings)}
}

func (r *fakeSettingsRepo) Get(userID string) (*entity.UserSettings, error) {
	s, ok := r.byUser[userID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSettingsRepo) Upsert(settings *entity.UserSettings) error {
	cp := *settings
	r.byUser[settings.UserID] = &cp
	return nil
}

// Usuario sin preferencias guardadas: aplica el default FIFO.
func TestGetValuationMethod_DefaultFIFO(t *testing.T) {
	uc := usecase.NewSettingsUseCase(newFakeSettingsRepo())

	method, err := uc.GetValuationMethod("user-1")
	require.NoError(t, err)
	assert.Equal(t, valuation.MethodFIFO, method)
}

// Preferencia guardada corrupta (valor desconocido): cae al default en vez de
// propagar un método inválido a la venta.
func TestGetValuationMethod_ValorCorruptoCaeAlDefault(t *testing.T) {
	repo := newFakeSettingsRepo()
	repo.byUser["user-1"] = &entity.UserSettings{
		UserID: "user-1", ValuationMethod: "LIFO", UpdatedAt: time.Now(),
	}
	uc := usecase.NewSettingsUseCase(repo)

	method, err := uc.GetValuationMethod("user-1")
	require.NoError(t, err)
	assert.Equal(t, valuation.MethodFIFO, method)
}

// Update guarda WAC y GetValuationMethod lo devuelve.
func TestUpdateSettings_GuardaWAC(t *testing.T) {
	uc := usecase.NewSettingsUseCase(newFakeSettingsRepo())

	resp, err := uc.Update("user-1", dto.UpdateSettingsRequest{ValuationMethod: "WAC"})
	require.NoError(t, err)
	assert.Equal(t, "WAC", resp.ValuationMethod)

	method, err := uc.GetValuationMethod("user-1")
	require.NoError(t, err)
	assert.Equal(t, valuation.MethodWAC, method)
}

// Método desconocido: rechazado con ErrInvalidInput.
func TestUpdateSettings_MetodoInvalido(t *testing.T) {
	uc := usecase.NewSettingsUseCase(newFakeSettingsRepo())

	_, err := uc.Update("user-1", dto.UpdateSettingsRequest{ValuationMethod: "LIFO"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
