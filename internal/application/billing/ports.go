package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptData datos ya resueltos para renderizar el recibo de una venta.
type ReceiptData struct {
	InvoiceID    string
	BusinessName string
	CustomerName string
	SaleDate     time.Time

	ItemName  string
	Quantity  int64
	Unit      string
	UnitPrice decimal.Decimal

	Subtotal  decimal.Decimal
	VATRate   decimal.Decimal
	VATAmount decimal.Decimal
	Total     decimal.Decimal
}

// ReceiptPDFGenerator renderiza el recibo como documento PDF.
type ReceiptPDFGenerator interface {
	Generate(data ReceiptData) ([]byte, error)
}
