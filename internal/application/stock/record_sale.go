package stock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tax1/inventory-api/internal/application/dto"
	"github.com/tax1/inventory-api/internal/domain"
	"github.com/tax1/inventory-api/internal/domain/entity"
	"github.com/tax1/inventory-api/internal/domain/repository"
	"github.com/tax1/inventory-api/internal/domain/valuation"
	"github.com/tax1/inventory-api/pkg/money"
)

// RecordSaleUseCase registra una venta de forma transaccional: valida
// suficiencia de stock bajo bloqueo de fila, consume el ledger FIFO (siempre,
// sea cual sea la política activa), estampa cost_at_sale según la política y
// descuenta el stock. Commit o Rollback como unidad.
//
// La política de valoración llega como parámetro: este caso de uso no lee
// configuración ambiente ni global.
type RecordSaleUseCase struct {
	txRunner TxRunner
	itemRepo repository.ItemRepository
	vatRate  decimal.Decimal
}

// NewRecordSaleUseCase construye el caso de uso con la tasa de IVA a aplicar
// sobre el precio de venta.
func NewRecordSaleUseCase(txRunner TxRunner, itemRepo repository.ItemRepository, vatRate decimal.Decimal) *RecordSaleUseCase {
	return &RecordSaleUseCase{txRunner: txRunner, itemRepo: itemRepo, vatRate: vatRate}
}

// Execute aplica la venta. Si el stock es insuficiente retorna
// domain.ErrInsufficientStock sin mutar nada (ni artículo ni lotes).
func (uc *RecordSaleUseCase) Execute(ctx context.Context, userID string, in dto.RecordSaleRequest, method valuation.Method) (*dto.SaleResponse, error) {
	unitType := valuation.UnitType(in.UnitType)
	if in.ItemID == "" || !unitType.IsValid() || in.UnitQuantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !method.IsValid() {
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
	var resp *dto.SaleResponse

	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		batchRepo repository.StockBatchRepository,
		_ repository.PurchaseRepository,
		saleRepo repository.SaleRepository,
	) error {
		// Bloquea la fila del artículo: dos ventas concurrentes se serializan
		// aquí y la segunda ve la cantidad ya descontada (evita sobre-venta).
		item, err := itemRepo.GetForUpdate(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		baseQty := valuation.ToBaseUnits(unitType, in.UnitQuantity, item.UnitsPerPackage)
		if item.Quantity < baseQty {
			return domain.ErrInsufficientStock
		}

		// Consumir el ledger SIEMPRE, también bajo WAC, para que los lotes
		// sigan siendo correctos si el usuario cambia de política después.
		ledger := NewLedger(batchRepo)
		fifoCost, _, err := ledger.Consume(item.ID, baseQty)
		if err != nil {
			return err
		}

		// cost_at_sale según la política activa; bajo WAC el costo FIFO
		// calculado se descarta (el consumo de lotes ya quedó aplicado).
		var costAtSale decimal.Decimal
		if method == valuation.MethodFIFO {
			costAtSale = fifoCost.Div(decimal.NewFromInt(baseQty))
		} else {
			costAtSale = item.WeightedAvgCost
		}

		item.Quantity -= baseQty
		item.UpdatedAt = now
		if err := itemRepo.Update(item); err != nil {
			return err
		}

		subtotal := item.Price.Mul(decimal.NewFromInt(baseQty))
		vatAmount := money.VATAmount(subtotal, uc.vatRate)

		sale := &entity.Sale{
			ID:                  uuid.New().String(),
			InvoiceID:           newInvoiceID(now),
			UserID:              userID,
			ItemID:              item.ID,
			QuantitySold:        baseQty,
			UnitType:            string(unitType),
			UnitQuantity:        in.UnitQuantity,
			CustomerName:        in.CustomerName,
			TotalAmount:         subtotal.Add(vatAmount),
			CostAtSale:          costAtSale,
			ValuationMethodUsed: method.String(),
			SaleDate:            now,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		resp = &dto.SaleResponse{
			Sale: toSaleRecord(sale, uc.vatRate),
			Item: toItemResponse(item),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// newInvoiceID genera un identificador legible para el recibo: fecha + sufijo
// corto aleatorio (ej. INV-20260828-3F9A21C4).
func newInvoiceID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("INV-%s-%s", now.Format("20060102"), suffix)
}
