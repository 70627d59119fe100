package stock

import (
	"github.com/shopspring/decimal"
	"github.com/tax1/inventory-api/internal/application/dto"
	"github.com/tax1/inventory-api/internal/domain"
	"github.com/tax1/inventory-api/internal/domain/repository"
)

// HistoryUseCase listados de compras, ventas y lotes por usuario (solo
// lectura, fuera de transacción).
type HistoryUseCase struct {
	itemRepo     repository.ItemRepository
	batchRepo    repository.StockBatchRepository
	purchaseRepo repository.PurchaseRepository
	saleRepo     repository.SaleRepository
	vatRate      decimal.Decimal
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(
	itemRepo repository.ItemRepository,
	batchRepo repository.StockBatchRepository,
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
	vatRate decimal.Decimal,
) *HistoryUseCase {
	return &HistoryUseCase{
		itemRepo:     itemRepo,
		batchRepo:    batchRepo,
		purchaseRepo: purchaseRepo,
		saleRepo:     saleRepo,
		vatRate:      vatRate,
	}
}

// ListPurchases lista compras del usuario con paginación.
func (uc *HistoryUseCase) ListPurchases(userID string, limit, offset int) (*dto.PurchaseListResponse, error) {
	list, err := uc.purchaseRepo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	records := make([]dto.PurchaseRecord, 0, len(list))
	for _, p := range list {
		records = append(records, toPurchaseRecord(p))
	}
	return &dto.PurchaseListResponse{
		Purchases: records,
		Page:      dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListSales lista ventas del usuario con paginación.
func (uc *HistoryUseCase) ListSales(userID string, limit, offset int) (*dto.SaleListResponse, error) {
	list, err := uc.saleRepo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	records := make([]dto.SaleRecord, 0, len(list))
	for _, s := range list {
		records = append(records, toSaleRecord(s, uc.vatRate))
	}
	return &dto.SaleListResponse{
		Sales: records,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListBatches lista el ledger completo de un artículo en orden de recepción,
// incluidos los lotes agotados (consulta de auditoría de costos históricos).
func (uc *HistoryUseCase) ListBatches(userID, itemID string) (*dto.StockBatchListResponse, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.UserID != userID {
		return nil, domain.ErrForbidden
	}
	batches, err := uc.batchRepo.ListByItem(itemID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockBatchResponse, 0, len(batches))
	for _, b := range batches {
		out = append(out, toStockBatchResponse(b))
	}
	return &dto.StockBatchListResponse{ItemID: itemID, Batches: out}, nil
}
