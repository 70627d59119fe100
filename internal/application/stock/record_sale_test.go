package stock_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tax1/inventory-api/internal/application/dto"
	"github.com/tax1/inventory-api/internal/application/stock"
	"github.com/tax1/inventory-api/internal/domain"
	"github.com/tax1/inventory-api/internal/domain/valuation"
)

var testVATRate = decimal.RequireFromString("0.075")

func newSaleUC(s *fakeStore) *stock.RecordSaleUseCase {
	return stock.NewRecordSaleUseCase(&fakeTxRunner{s}, &fakeItemRepo{s}, testVATRate)
}

// seedWithTwoBatches deja el artículo con 10 uds en dos lotes:
// 5 a ₦10 c/u (viejo) y 5 a ₦20 c/u (nuevo). Promedio ponderado: ₦15.
func seedWithTwoBatches(t *testing.T, s *fakeStore) {
	t.Helper()
	seedBasicItem(s)
	uc := newPurchaseUC(s)
	ctx := context.Background()

	_, err := uc.Execute(ctx, testUserID, dto.RecordPurchaseRequest{
		ItemID: testItemID, UnitType: "base", UnitQuantity: 5, Cost: decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	_, err = uc.Execute(ctx, testUserID, dto.RecordPurchaseRequest{
		ItemID: testItemID, UnitType: "base", UnitQuantity: 5, Cost: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
}

// Venta FIFO de 7 uds sobre lotes [5@10, 5@20]: costo consumido ₦90, costo
// unitario estampado 90/7, lotes quedan [0, 3] y el artículo con 3 uds.
func TestRecordSale_FIFO(t *testing.T) {
	s := newFakeStore()
	seedWithTwoBatches(t, s)
	uc := newSaleUC(s)

	resp, err := uc.Execute(context.Background(), testUserID, dto.RecordSaleRequest{
		ItemID: testItemID, UnitType: "base", UnitQuantity: 7, CustomerName: "Amina",
	}, valuation.MethodFIFO)
	require.NoError(t, err)

	wantCost := decimal.NewFromInt(90).Div(decimal.NewFromInt(7))
	assert.True(t, wantCost.Equal(resp.Sale.CostAtSale),
		"cost_at_sale esperado %s, obtuvo %s", wantCost, resp.Sale.CostAtSale)
	assert.Equal(t, valuation.MethodFIFO.String(), resp.Sale.ValuationMethodUsed)
	assert.Equal(t, int64(3), resp.Item.Quantity)

	require.Len(t, s.batches, 2)
	assert.Equal(t, int64(0), s.batches[0].QuantityRemaining, "el lote viejo debe quedar drenado en cero")
	assert.Equal(t, int64(3), s.batches[1].QuantityRemaining)
}

// IVA del 7.5% sobre el subtotal: 7 uds a ₦100 → subtotal ₦700, IVA ₦52.50,
// total ₦752.50.
func TestRecordSale_DesgloseIVA(t *testing.T) {
	s := newFakeStore()
	seedWithTwoBatches(t, s)
	uc := newSaleUC(s)

	resp, err := uc.Execute(context.Background(), testUserID, dto.RecordSaleRequest{
		ItemID: testItemID, UnitType: "base", UnitQuantity: 7,
	}, valuation.MethodFIFO)
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("752.5").Equal(resp.Sale.TotalAmount),
		"total con IVA esperado 752.5, obtuvo %s", resp.Sale.TotalAmount)
	assert.True(t, decimal.RequireFromString("52.5").Equal(resp.Sale.VATAmount),
		"IVA esperado 52.5, obtuvo %s", resp.Sale.VATAmount)

	require.Len(t, s.sales, 1)
	assert.True(t, decimal.RequireFromString("752.5").Equal(s.sales[0].TotalAmount))
}

// Venta WAC: estampa el promedio ponderado (₦15) como costo, pero el ledger
// FIFO se consume igual, para poder cambiar de política después sin perder datos.
func TestRecordSale_WACConsumeLedgerIgual(t *testing.T) {
	s := newFakeStore()
	seedWithTwoBatches(t, s)
	uc := newSaleUC(s)

	resp, err := uc.Execute(context.Background(), testUserID, dto.RecordSaleRequest{
		ItemID: testItemID, UnitType: "base", UnitQuantity: 7,
	}, valuation.MethodWAC)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(15).Equal(resp.Sale.CostAtSale),
		"bajo WAC el costo estampado es el promedio, obtuvo %s", resp.Sale.CostAtSale)
	assert.Equal(t, valuation.MethodWAC.String(), resp.Sale.ValuationMethodUsed)

	// Doble escritura: los lotes también se consumieron
	assert.Equal(t, int64(0), s.batches[0].QuantityRemaining)
	assert.Equal(t, int64(3), s.batches[1].QuantityRemaining)
}

// Stock insuficiente: error y CERO mutaciones (ni artículo, ni lotes, ni venta).
func TestRecordSale_StockInsuficienteNoMutaNada(t *testing.T) {
	s := newFakeStore()
	seedWithTwoBatches(t, s)
	uc := newSaleUC(s)

	_, err := uc.Execute(context.Background(), testUserID, dto.RecordSaleRequest{
		ItemID: testItemID, UnitType: "base", UnitQuantity: 20,
	}, valuation.MethodFIFO)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(10), s.items[testItemID].Quantity, "la cantidad no debe cambiar")
	assert.Equal(t, int64(5), s.batches[0].QuantityRemaining, "los lotes no deben cambiar")
	assert.Equal(t, int64(5), s.batches[1].QuantityRemaining)
	assert.Empty(t, s.sales, "no debe registrarse la venta")
}

// Venta en empaques: 1 cartón de 12 con solo 10 uds disponibles → insuficiente.
func TestRecordSale_EmpaqueExcedeStock(t *testing.T) {
	s := newFakeStore()
	seedWithTwoBatches(t, s)
	uc := newSaleUC(s)

	_, err := uc.Execute(context.Background(), testUserID, dto.RecordSaleRequest{
		ItemID: testItemID, UnitType: "package", UnitQuantity: 1,
	}, valuation.MethodFIFO)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// Cambiar de política entre ventas: cada venta conserva el método y costo con
// el que se estampó; el cambio solo afecta hacia adelante.
func TestRecordSale_CambioDePoliticaNoReescribeHistoria(t *testing.T) {
	s := newFakeStore()
	seedWithTwoBatches(t, s)
	uc := newSaleUC(s)
	ctx := context.Background()

	first, err := uc.Execute(ctx, testUserID, dto.RecordSaleRequest{
		ItemID: testItemID, UnitType: "base", UnitQuantity: 5,
	}, valuation.MethodFIFO)
	require.NoError(t, err)

	_, err = uc.Execute(ctx, testUserID, dto.RecordSaleRequest{
		ItemID: testItemID, UnitType: "base", UnitQuantity: 2,
	}, valuation.MethodWAC)
	require.NoError(t, err)

	require.Len(t, s.sales, 2)
	assert.Equal(t, valuation.MethodFIFO.String(), s.sales[0].ValuationMethodUsed)
	assert.True(t, first.Sale.CostAtSale.Equal(s.sales[0].CostAtSale),
		"la primera venta conserva su costo original")
	assert.Equal(t, valuation.MethodWAC.String(), s.sales[1].ValuationMethodUsed)
}

// Método inválido y demás validaciones de entrada.
func TestRecordSale_EntradaInvalida(t *testing.T) {
	s := newFakeStore()
	seedWithTwoBatches(t, s)
	uc := newSaleUC(s)
	ctx := context.Background()

	_, err := uc.Execute(ctx, testUserID, dto.RecordSaleRequest{
		ItemID: testItemID, UnitType: "base", UnitQuantity: 1,
	}, valuation.Method("LIFO"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Execute(ctx, testUserID, dto.RecordSaleRequest{
		ItemID: testItemID, UnitType: "base", UnitQuantity: 0,
	}, valuation.MethodFIFO)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Artículo de otro usuario.
func TestRecordSale_ArticuloAjeno(t *testing.T) {
	s := newFakeStore()
	seedWithTwoBatches(t, s)
	uc := newSaleUC(s)

	_, err := uc.Execute(context.Background(), otherUserID, dto.RecordSaleRequest{
		ItemID: testItemID, UnitType: "base", UnitQuantity: 1,
	}, valuation.MethodFIFO)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, s.sales)
}
