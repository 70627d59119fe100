package stock

import (
	"github.com/shopspring/decimal"
	"github.com/tax1/inventory-api/internal/application/dto"
	"github.com/tax1/inventory-api/internal/domain/entity"
	"github.com/tax1/inventory-api/pkg/money"
)

func toItemResponse(i *entity.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:                i.ID,
		Name:              i.Name,
		Description:       i.Description,
		Category:          i.Category,
		Barcode:           i.Barcode,
		Price:             i.Price,
		Quantity:          i.Quantity,
		WeightedAvgCost:   i.WeightedAvgCost,
		BaseUnit:          i.BaseUnit,
		PackagingUnit:     i.PackagingUnit,
		UnitsPerPackage:   i.UnitsPerPackage,
		LowStockThreshold: i.LowStockThreshold,
		CreatedAt:         i.CreatedAt,
		UpdatedAt:         i.UpdatedAt,
	}
}

func toPurchaseRecord(p *entity.Purchase) dto.PurchaseRecord {
	return dto.PurchaseRecord{
		ID:                p.ID,
		ItemID:            p.ItemID,
		QuantityPurchased: p.QuantityPurchased,
		UnitType:          p.UnitType,
		UnitQuantity:      p.UnitQuantity,
		Cost:              p.Cost,
		NewSellingPrice:   p.NewSellingPrice,
		SupplierName:      p.SupplierName,
		PurchaseDate:      p.PurchaseDate,
	}
}

func toStockBatchResponse(b *entity.StockBatch) dto.StockBatchResponse {
	return dto.StockBatchResponse{
		ID:                b.ID,
		ItemID:            b.ItemID,
		QuantityRemaining: b.QuantityRemaining,
		UnitCost:          b.UnitCost,
		CreatedAt:         b.CreatedAt,
	}
}

// toSaleRecord reconstruye el desglose subtotal/IVA a partir del total bruto
// guardado (total / (1+tasa)), que es como se reporta en el P&L.
func toSaleRecord(s *entity.Sale, vatRate decimal.Decimal) dto.SaleRecord {
	subtotal := money.RemoveVAT(s.TotalAmount, vatRate)
	return dto.SaleRecord{
		ID:                  s.ID,
		InvoiceID:           s.InvoiceID,
		ItemID:              s.ItemID,
		QuantitySold:        s.QuantitySold,
		UnitType:            s.UnitType,
		UnitQuantity:        s.UnitQuantity,
		CustomerName:        s.CustomerName,
		Subtotal:            subtotal,
		VATAmount:           s.TotalAmount.Sub(subtotal),
		TotalAmount:         s.TotalAmount,
		CostAtSale:          s.CostAtSale,
		ValuationMethodUsed: s.ValuationMethodUsed,
		SaleDate:            s.SaleDate,
	}
}
