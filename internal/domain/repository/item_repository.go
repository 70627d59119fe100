package repository

import "github.com/tax1/inventory-api/internal/domain/entity"

// ItemRepository acceso a artículos del inventario.
// GetForUpdate debe usarse dentro de una transacción: bloquea la fila del
// artículo (SELECT FOR UPDATE) para serializar compras/ventas concurrentes
// sobre el mismo stock.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetForUpdate(id string) (*entity.Item, error)
	Update(item *entity.Item) error
	ListByUser(userID string, limit, offset int) ([]*entity.Item, error)
	ListLowStock(userID string) ([]*entity.Item, error)
	Delete(id string) error
}
