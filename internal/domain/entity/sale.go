package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale registra una venta. CostAtSale y ValuationMethodUsed se estampan en el
// momento de la transacción y no se recalculan nunca: un cambio posterior de
// política de valoración no altera ventas históricas.
type Sale struct {
	ID           string
	InvoiceID    string // identificador legible para el recibo/factura
	UserID       string
	ItemID       string
	QuantitySold int64  // unidades base
	UnitType     string // "base" | "package"
	UnitQuantity int64
	CustomerName string
	TotalAmount  decimal.Decimal // total cobrado, IVA incluido

	// CostAtSale costo unitario atribuido a la venta (base de COGS):
	// bajo FIFO es el costo consumido del ledger / cantidad; bajo WAC es el
	// promedio ponderado del artículo al momento de vender.
	CostAtSale          decimal.Decimal
	ValuationMethodUsed string // "FIFO" | "WAC"

	SaleDate time.Time
}
