package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase registra una entrada de stock: qué artículo, cuántas unidades base
// y el costo total pagado. QuantityPurchased ya está resuelto a unidades base;
// UnitType/UnitQuantity conservan cómo lo expresó el usuario.
type Purchase struct {
	ID                string
	UserID            string
	ItemID            string
	QuantityPurchased int64  // unidades base
	UnitType          string // "base" | "package"
	UnitQuantity      int64  // cantidad tal como la capturó el usuario
	Cost              decimal.Decimal
	NewSellingPrice   *decimal.Decimal // opcional: actualiza el precio de venta
	SupplierName      string
	PurchaseDate      time.Time
}
