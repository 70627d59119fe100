package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordPurchaseRequest body para POST /api/purchases.
// UnitQuantity se expresa en UnitType ("base" | "package"); Cost es el total
// pagado por toda la compra, no por unidad.
type RecordPurchaseRequest struct {
	ItemID          string           `json:"item_id"`
	UnitType        string           `json:"unit_type"`
	UnitQuantity    int64            `json:"unit_quantity"`
	Cost            decimal.Decimal  `json:"cost"`
	NewSellingPrice *decimal.Decimal `json:"new_selling_price,omitempty"`
	SupplierName    string           `json:"supplier_name"`
}

// PurchaseResponse resultado de registrar una compra: artículo actualizado y
// el lote creado en el ledger.
type PurchaseResponse struct {
	Purchase PurchaseRecord     `json:"purchase"`
	Item     ItemResponse       `json:"item"`
	NewBatch StockBatchResponse `json:"new_batch"`
}

// PurchaseRecord representación de una compra registrada.
type PurchaseRecord struct {
	ID                string           `json:"id"`
	ItemID            string           `json:"item_id"`
	QuantityPurchased int64            `json:"quantity_purchased"`
	UnitType          string           `json:"unit_type"`
	UnitQuantity      int64            `json:"unit_quantity"`
	Cost              decimal.Decimal  `json:"cost"`
	NewSellingPrice   *decimal.Decimal `json:"new_selling_price,omitempty"`
	SupplierName      string           `json:"supplier_name,omitempty"`
	PurchaseDate      time.Time        `json:"purchase_date"`
}

// StockBatchResponse representación de un lote del ledger.
type StockBatchResponse struct {
	ID                string          `json:"id"`
	ItemID            string          `json:"item_id"`
	QuantityRemaining int64           `json:"quantity_remaining"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	CreatedAt         time.Time       `json:"created_at"`
}

// StockBatchListResponse ledger completo de un artículo, incluidos los lotes
// agotados, en orden de recepción.
type StockBatchListResponse struct {
	ItemID  string               `json:"item_id"`
	Batches []StockBatchResponse `json:"batches"`
}

// RecordSaleRequest body para POST /api/sales.
// La política de valoración NO viaja en el request: la inyecta el handler
// desde la configuración del usuario.
type RecordSaleRequest struct {
	ItemID       string `json:"item_id"`
	UnitType     string `json:"unit_type"`
	UnitQuantity int64  `json:"unit_quantity"`
	CustomerName string `json:"customer_name"`
}

// SaleResponse resultado de registrar una venta.
type SaleResponse struct {
	Sale SaleRecord   `json:"sale"`
	Item ItemResponse `json:"item"`
}

// SaleRecord representación de una venta registrada, con el desglose de IVA.
type SaleRecord struct {
	ID                  string          `json:"id"`
	InvoiceID           string          `json:"invoice_id"`
	ItemID              string          `json:"item_id"`
	QuantitySold        int64           `json:"quantity_sold"`
	UnitType            string          `json:"unit_type"`
	UnitQuantity        int64           `json:"unit_quantity"`
	CustomerName        string          `json:"customer_name,omitempty"`
	Subtotal            decimal.Decimal `json:"subtotal"`
	VATAmount           decimal.Decimal `json:"vat_amount"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	CostAtSale          decimal.Decimal `json:"cost_at_sale"`
	ValuationMethodUsed string          `json:"valuation_method_used"`
	SaleDate            time.Time       `json:"sale_date"`
}

// PurchaseListResponse listado paginado de compras.
type PurchaseListResponse struct {
	Purchases []PurchaseRecord `json:"purchases"`
	Page      PageResponse     `json:"page"`
}

// SaleListResponse listado paginado de ventas.
type SaleListResponse struct {
	Sales []SaleRecord `json:"sales"`
	Page  PageResponse `json:"page"`
}
