package stock

import (
	"context"

	"github.com/tax1/inventory-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de la base de datos: los
// repositorios recibidos están atados a la misma tx y todo lo escrito en fn
// se confirma o revierte como unidad atómica. Implementado en
// infrastructure/postgres.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		batchRepo repository.StockBatchRepository,
		purchaseRepo repository.PurchaseRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
