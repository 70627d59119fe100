package usecase

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tax1/inventory-api/internal/application/dto"
	"github.com/tax1/inventory-api/internal/domain/entity"
	"github.com/tax1/inventory-api/internal/domain/repository"
	"github.com/tax1/inventory-api/pkg/money"
)

// ReportUseCase reportes de solo lectura: export de ventas con P&L y listado
// de stock bajo.
type ReportUseCase struct {
	saleRepo repository.SaleRepository
	itemRepo repository.ItemRepository
	vatRate  decimal.Decimal
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(saleRepo repository.SaleRepository, itemRepo repository.ItemRepository, vatRate decimal.Decimal) *ReportUseCase {
	return &ReportUseCase{saleRepo: saleRepo, itemRepo: itemRepo, vatRate: vatRate}
}

// SalesExport arma las filas del P&L para el rango de fechas dado (ambos
// extremos opcionales). El COGS usa el costo estampado en cada venta, con el
// método vigente en ese momento; cambiar la política hoy no reescribe filas
// históricas.
func (uc *ReportUseCase) SalesExport(userID string, from, to *time.Time) ([]dto.SalesExportRow, error) {
	sales, err := uc.saleRepo.ListForExport(userID, from, to)
	if err != nil {
		return nil, err
	}

	// Resolver nombres de artículo una sola vez por ID
	names := make(map[string]string)
	rows := make([]dto.SalesExportRow, 0, len(sales))
	for _, s := range sales {
		name, ok := names[s.ItemID]
		if !ok {
			item, err := uc.itemRepo.GetByID(s.ItemID)
			if err != nil {
				return nil, err
			}
			if item != nil {
				name = item.Name
			}
			names[s.ItemID] = name
		}

		revenueExVAT := money.RemoveVAT(s.TotalAmount, uc.vatRate)
		cogs := s.CostAtSale.Mul(decimal.NewFromInt(s.QuantitySold))
		rows = append(rows, dto.SalesExportRow{
			Date:            s.SaleDate,
			Item:            name,
			Quantity:        s.QuantitySold,
			RevenueIncVAT:   s.TotalAmount,
			RevenueExVAT:    revenueExVAT,
			VATAmount:       s.TotalAmount.Sub(revenueExVAT),
			COGS:            cogs,
			GrossProfit:     revenueExVAT.Sub(cogs),
			ValuationMethod: s.ValuationMethodUsed,
		})
	}
	return rows, nil
}

// LowStock lista los artículos del usuario en o por debajo de su umbral.
func (uc *ReportUseCase) LowStock(userID string) ([]dto.LowStockItemDTO, error) {
	items, err := uc.itemRepo.ListLowStock(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockItemDTO, 0, len(items))
	for _, i := range items {
		out = append(out, toLowStockDTO(i))
	}
	return out, nil
}

func toLowStockDTO(i *entity.Item) dto.LowStockItemDTO {
	return dto.LowStockItemDTO{
		ItemID:            i.ID,
		Name:              i.Name,
		Quantity:          i.Quantity,
		LowStockThreshold: i.LowStockThreshold,
		BaseUnit:          i.BaseUnit,
	}
}
