package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesExportRow una venta formateada para el P&L: ingreso con y sin IVA,
// COGS según el método de valoración estampado y utilidad bruta.
type SalesExportRow struct {
	Date            time.Time       `json:"date"`
	Item            string          `json:"item"`
	Quantity        int64           `json:"quantity"`
	RevenueIncVAT   decimal.Decimal `json:"revenue_inc_vat"`
	RevenueExVAT    decimal.Decimal `json:"revenue_ex_vat"`
	VATAmount       decimal.Decimal `json:"vat_amount"`
	COGS            decimal.Decimal `json:"cogs"`
	GrossProfit     decimal.Decimal `json:"gross_profit"`
	ValuationMethod string          `json:"valuation_method"`
}

// LowStockItemDTO artículo en o por debajo de su umbral de stock bajo.
type LowStockItemDTO struct {
	ItemID            string `json:"item_id"`
	Name              string `json:"name"`
	Quantity          int64  `json:"quantity"`
	LowStockThreshold int64  `json:"low_stock_threshold"`
	BaseUnit          string `json:"base_unit"`
}
