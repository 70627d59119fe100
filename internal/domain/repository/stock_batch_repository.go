package repository

import (
	"github.com/tax1/inventory-api/internal/domain/entity"
	"github.com/tax1/inventory-api/internal/domain/valuation"
)

// StockBatchRepository acceso al ledger de lotes de stock.
// Los lotes nunca se borran físicamente; los agotados (quantity_remaining = 0)
// se conservan para auditoría.
type StockBatchRepository interface {
	Create(batch *entity.StockBatch) error

	// ListActiveForUpdate devuelve los lotes con unidades restantes de un
	// artículo, ordenados por fecha de creación ascendente (más antiguo
	// primero), bloqueando sus filas (FOR UPDATE). Usar dentro de una tx.
	ListActiveForUpdate(itemID string) ([]*entity.StockBatch, error)

	// ApplyConsumption persiste las nuevas cantidades restantes calculadas
	// por el consumo FIFO. Debe ejecutarse en la misma tx que el decremento
	// del stock del artículo.
	ApplyConsumption(updates []valuation.BatchUpdate) error

	// ListByItem lista todos los lotes de un artículo, incluidos los
	// agotados, en orden de recepción (consulta de auditoría).
	ListByItem(itemID string) ([]*entity.StockBatch, error)
}
