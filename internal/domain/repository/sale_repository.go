package repository

import (
	"time"

	"github.com/tax1/inventory-api/internal/domain/entity"
)

// SaleRepository acceso a registros de ventas. Las ventas son inmutables una
// vez creadas: no hay Update (el costo estampado nunca se recalcula).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Sale, error)
	ListForExport(userID string, from, to *time.Time) ([]*entity.Sale, error)
}
