package repository

import "github.com/tax1/inventory-api/internal/domain/entity"

// PurchaseRepository acceso a registros de compras.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	ListByUser(userID string, limit, offset int) ([]*entity.Purchase, error)
}
