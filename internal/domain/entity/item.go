package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del inventario del negocio.
// Quantity y WeightedAvgCost se mutan exclusivamente vía transacciones de
// compra/venta (casos de uso de stock), nunca desde reportes ni exportaciones.
type Item struct {
	ID          string
	UserID      string
	Name        string
	Description string
	Category    string
	Barcode     string
	Price       decimal.Decimal // precio de venta por unidad base, sin IVA
	Quantity    int64           // unidades base en stock, siempre >= 0

	// WeightedAvgCost costo promedio ponderado por unidad base. Solo es
	// significativo bajo política WAC; se recalcula en cada compra y se lee
	// (sin mutar) en cada venta WAC.
	WeightedAvgCost decimal.Decimal

	// Conversión de unidades: una compra/venta expresada en PackagingUnit
	// (ej. "cartón") equivale a UnitsPerPackage unidades BaseUnit (ej. "pieza").
	BaseUnit        string
	PackagingUnit   string
	UnitsPerPackage int64 // >= 1; 1 si el artículo no se empaqueta

	LowStockThreshold int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
