package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest body para POST /api/items.
// Quantity inicial se permite solo en la creación (inventario de apertura);
// después solo se muta vía compras/ventas.
type CreateItemRequest struct {
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Category          string          `json:"category"`
	Barcode           string          `json:"barcode"`
	Price             decimal.Decimal `json:"price"`
	Quantity          int64           `json:"quantity"`
	BaseUnit          string          `json:"base_unit"`
	PackagingUnit     string          `json:"packaging_unit"`
	UnitsPerPackage   int64           `json:"units_per_package"`
	LowStockThreshold int64           `json:"low_stock_threshold"`
}

// UpdateItemRequest body para PUT /api/items/:id. Campos nil no se tocan.
// Quantity y WeightedAvgCost no son actualizables por esta vía.
type UpdateItemRequest struct {
	Name              *string          `json:"name,omitempty"`
	Description       *string          `json:"description,omitempty"`
	Category          *string          `json:"category,omitempty"`
	Barcode           *string          `json:"barcode,omitempty"`
	Price             *decimal.Decimal `json:"price,omitempty"`
	BaseUnit          *string          `json:"base_unit,omitempty"`
	PackagingUnit     *string          `json:"packaging_unit,omitempty"`
	UnitsPerPackage   *int64           `json:"units_per_package,omitempty"`
	LowStockThreshold *int64           `json:"low_stock_threshold,omitempty"`
}

// ItemResponse representación de un artículo en respuestas.
type ItemResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Category          string          `json:"category"`
	Barcode           string          `json:"barcode,omitempty"`
	Price             decimal.Decimal `json:"price"`
	Quantity          int64           `json:"quantity"`
	WeightedAvgCost   decimal.Decimal `json:"weighted_avg_cost"`
	BaseUnit          string          `json:"base_unit"`
	PackagingUnit     string          `json:"packaging_unit,omitempty"`
	UnitsPerPackage   int64           `json:"units_per_package"`
	LowStockThreshold int64           `json:"low_stock_threshold"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ItemListResponse listado paginado de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
