package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tax1/inventory-api/internal/application/dto"
	"github.com/tax1/inventory-api/internal/domain"
	"github.com/tax1/inventory-api/internal/domain/entity"
	"github.com/tax1/inventory-api/internal/domain/repository"
	"github.com/tax1/inventory-api/internal/domain/valuation"
)

// RecordPurchaseUseCase registra una entrada de stock de forma transaccional:
// recalcula el costo promedio ponderado, agrega un lote al ledger FIFO y suma
// la cantidad al artículo, todo con bloqueo de fila (SELECT FOR UPDATE) y
// Commit/Rollback. El lote se crea SIEMPRE, también bajo política WAC.
type RecordPurchaseUseCase struct {
	txRunner TxRunner
	itemRepo repository.ItemRepository
}

// NewRecordPurchaseUseCase construye el caso de uso.
func NewRecordPurchaseUseCase(txRunner TxRunner, itemRepo repository.ItemRepository) *RecordPurchaseUseCase {
	return &RecordPurchaseUseCase{txRunner: txRunner, itemRepo: itemRepo}
}

// Execute valida la entrada, resuelve la cantidad a unidades base y aplica la
// compra. Los pasos dentro de la tx (recalcular WAC, crear lote, actualizar
// artículo, guardar la compra) se confirman como unidad: una aplicación
// parcial es estado inconsistente y el rollback la impide.
func (uc *RecordPurchaseUseCase) Execute(ctx context.Context, userID string, in dto.RecordPurchaseRequest) (*dto.PurchaseResponse, error) {
	unitType := valuation.UnitType(in.UnitType)
	if in.ItemID == "" || !unitType.IsValid() || in.UnitQuantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Cost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.NewSellingPrice != nil && in.NewSellingPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	// Validar que el artículo exista y sea del usuario (lectura fuera de la tx)
	existing, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if existing.UserID != userID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	var resp *dto.PurchaseResponse

	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		batchRepo repository.StockBatchRepository,
		purchaseRepo repository.PurchaseRepository,
		_ repository.SaleRepository,
	) error {
		// Bloquea la fila del artículo para serializar compras/ventas concurrentes
		item, err := itemRepo.GetForUpdate(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		baseQty := valuation.ToBaseUnits(unitType, in.UnitQuantity, item.UnitsPerPackage)

		// Nuevo promedio ponderado con el stock y costo actuales + esta compra
		newAvgCost := valuation.UpdateWeightedAverage(item.Quantity, item.WeightedAvgCost, baseQty, in.Cost)

		// Lote al costo unitario de esta recepción (costo total / unidades base)
		unitCost := in.Cost.Div(decimal.NewFromInt(baseQty))
		ledger := NewLedger(batchRepo)
		batch, err := ledger.Append(item.ID, userID, baseQty, unitCost, now)
		if err != nil {
			return err
		}

		item.Quantity += baseQty
		item.WeightedAvgCost = newAvgCost
		if in.NewSellingPrice != nil {
			item.Price = *in.NewSellingPrice
		}
		item.UpdatedAt = now
		if err := itemRepo.Update(item); err != nil {
			return err
		}

		purchase := &entity.Purchase{
			ID:                uuid.New().String(),
			UserID:            userID,
			ItemID:            item.ID,
			QuantityPurchased: baseQty,
			UnitType:          string(unitType),
			UnitQuantity:      in.UnitQuantity,
			Cost:              in.Cost,
			NewSellingPrice:   in.NewSellingPrice,
			SupplierName:      in.SupplierName,
			PurchaseDate:      now,
		}
		if err := purchaseRepo.Create(purchase); err != nil {
			return err
		}

		resp = &dto.PurchaseResponse{
			Purchase: toPurchaseRecord(purchase),
			Item:     toItemResponse(item),
			NewBatch: toStockBatchResponse(batch),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
