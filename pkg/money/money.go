// Package money concentra los cálculos de IVA (tasa plana sobre el precio de
// venta) y el formato de montos en Naira para recibos y reportes.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultVATRate tasa de IVA por defecto (Nigeria: 7.5%). Configurable vía
// VAT_RATE; ver pkg/config.
var DefaultVATRate = decimal.NewFromFloat(0.075)

// VATAmount devuelve el IVA correspondiente a un monto neto (sin IVA).
func VATAmount(net, rate decimal.Decimal) decimal.Decimal {
	return net.Mul(rate)
}

// AddVAT devuelve el monto bruto: neto + IVA.
func AddVAT(net, rate decimal.Decimal) decimal.Decimal {
	return net.Add(VATAmount(net, rate))
}

// RemoveVAT devuelve el monto neto a partir de un bruto con IVA incluido.
// Ej: con tasa 0.075, bruto / 1.075.
func RemoveVAT(gross, rate decimal.Decimal) decimal.Decimal {
	divisor := decimal.NewFromInt(1).Add(rate)
	if divisor.IsZero() {
		return gross
	}
	return gross.Div(divisor)
}

var ngnPrinter = message.NewPrinter(language.English)

var ngnUnit = currency.MustParseISO("NGN")

// FormatNGN formatea un monto en Naira con el símbolo ₦ y separadores de
// miles (ej. ₦1,250,000.00). Solo para presentación; los cálculos siempre
// usan decimal.Decimal.
func FormatNGN(amount decimal.Decimal) string {
	return ngnPrinter.Sprint(currency.NarrowSymbol(ngnUnit.Amount(amount.InexactFloat64())))
}
