package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockBatch es un lote de recepción de stock: el registro de costo de una
// compra concreta. UnitCost es inmutable desde la creación; QuantityRemaining
// inicia igual a la cantidad comprada y solo decrece (consumo FIFO).
//
// Un lote con QuantityRemaining == 0 queda inerte pero NUNCA se borra: se
// conserva como pista de auditoría y para consulta de costos históricos.
// Los lotes se consumen en orden de CreatedAt ascendente (más antiguo primero).
type StockBatch struct {
	ID                string
	ItemID            string
	UserID            string
	QuantityRemaining int64
	UnitCost          decimal.Decimal
	CreatedAt         time.Time
}
