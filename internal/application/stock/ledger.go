package stock

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tax1/inventory-api/internal/domain/entity"
	"github.com/tax1/inventory-api/internal/domain/repository"
	"github.com/tax1/inventory-api/internal/domain/valuation"
)

// Ledger opera el ledger de lotes de un artículo dentro de una transacción.
// Se mantiene sincronizado bajo AMBAS políticas: las compras siempre crean un
// lote y las ventas siempre consumen, aunque la política activa sea WAC, para
// que cambiar de política a mitad de vida no pierda datos. Redundancia
// deliberada; no optimizar.
type Ledger struct {
	batches repository.StockBatchRepository
}

// NewLedger construye el ledger sobre el repositorio atado a la tx activa.
func NewLedger(batches repository.StockBatchRepository) *Ledger {
	return &Ledger{batches: batches}
}

// Append crea un lote nuevo con quantity_remaining igual a la cantidad
// comprada y el costo unitario de esta recepción. Una llamada por compra.
func (l *Ledger) Append(itemID, userID string, quantity int64, unitCost decimal.Decimal, now time.Time) (*entity.StockBatch, error) {
	batch := &entity.StockBatch{
		ID:                uuid.New().String(),
		ItemID:            itemID,
		UserID:            userID,
		QuantityRemaining: quantity,
		UnitCost:          unitCost,
		CreatedAt:         now,
	}
	if err := l.batches.Create(batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// Consume toma quantity unidades de los lotes del artículo en orden de
// recepción (FIFO) y persiste las cantidades restantes resultantes. Devuelve
// el costo total consumido. Los lotes agotados quedan en cero, no se borran.
func (l *Ledger) Consume(itemID string, quantity int64) (decimal.Decimal, []valuation.BatchUpdate, error) {
	active, err := l.batches.ListActiveForUpdate(itemID)
	if err != nil {
		return decimal.Zero, nil, err
	}
	ordered := make([]valuation.Batch, 0, len(active))
	for _, b := range active {
		ordered = append(ordered, valuation.Batch{
			ID:                b.ID,
			QuantityRemaining: b.QuantityRemaining,
			UnitCost:          b.UnitCost,
		})
	}
	totalCost, updates := valuation.ComputeFIFOCost(quantity, ordered)
	if len(updates) > 0 {
		if err := l.batches.ApplyConsumption(updates); err != nil {
			return decimal.Zero, nil, err
		}
	}
	return totalCost, updates, nil
}
