package billing

import (
	"github.com/shopspring/decimal"
	"github.com/tax1/inventory-api/internal/domain"
	"github.com/tax1/inventory-api/internal/domain/repository"
	"github.com/tax1/inventory-api/pkg/money"
)

// ReceiptUseCase genera el recibo PDF de una venta registrada. El desglose de
// IVA se reconstruye desde el total bruto guardado; el recibo refleja la venta
// tal como se estampó, no el estado actual del artículo.
type ReceiptUseCase struct {
	saleRepo  repository.SaleRepository
	itemRepo  repository.ItemRepository
	userRepo  repository.UserRepository
	generator ReceiptPDFGenerator
	vatRate   decimal.Decimal
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	generator ReceiptPDFGenerator,
	vatRate decimal.Decimal,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		saleRepo:  saleRepo,
		itemRepo:  itemRepo,
		userRepo:  userRepo,
		generator: generator,
		vatRate:   vatRate,
	}
}

// Execute busca la venta (validando propiedad), arma los datos del recibo y
// devuelve el PDF renderizado.
func (uc *ReceiptUseCase) Execute(userID, saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.UserID != userID {
		return nil, domain.ErrForbidden
	}

	item, err := uc.itemRepo.GetByID(sale.ItemID)
	if err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	itemName := sale.ItemID
	unit := "unidad"
	if item != nil {
		itemName = item.Name
		unit = item.BaseUnit
	}
	businessName := ""
	if user != nil {
		businessName = user.BusinessName
	}

	subtotal := money.RemoveVAT(sale.TotalAmount, uc.vatRate)
	qty := decimal.NewFromInt(sale.QuantitySold)
	unitPrice := decimal.Zero
	if sale.QuantitySold > 0 {
		unitPrice = subtotal.Div(qty)
	}

	return uc.generator.Generate(ReceiptData{
		InvoiceID:    sale.InvoiceID,
		BusinessName: businessName,
		CustomerName: sale.CustomerName,
		SaleDate:     sale.SaleDate,
		ItemName:     itemName,
		Quantity:     sale.QuantitySold,
		Unit:         unit,
		UnitPrice:    unitPrice,
		Subtotal:     subtotal,
		VATRate:      uc.vatRate,
		VATAmount:    sale.TotalAmount.Sub(subtotal),
		Total:        sale.TotalAmount,
	})
}
