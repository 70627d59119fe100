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
)

func newPurchaseUC(s *fakeStore) *stock.RecordPurchaseUseCase {
	return stock.NewRecordPurchaseUseCase(&fakeTxRunner{s}, &fakeItemRepo{s})
}

// Primera compra: 10 uds por ₦1.000. El promedio pasa a ₦100, se crea un lote
// de 10 a ₦100 c/u y la cantidad del artículo sube a 10.
func TestRecordPurchase_PrimeraCompra(t *testing.T) {
	s := newFakeStore()
	seedBasicItem(s)
	uc := newPurchaseUC(s)

	resp, err := uc.Execute(context.Background(), testUserID, dto.RecordPurchaseRequest{
		ItemID:       testItemID,
		UnitType:     "base",
		UnitQuantity: 10,
		Cost:         decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.Item.Quantity)
	assert.True(t, decimal.NewFromInt(100).Equal(resp.Item.WeightedAvgCost),
		"promedio esperado 100, obtuvo %s", resp.Item.WeightedAvgCost)

	require.Len(t, s.batches, 1, "cada compra debe crear exactamente un lote")
	assert.Equal(t, int64(10), s.batches[0].QuantityRemaining)
	assert.True(t, decimal.NewFromInt(100).Equal(s.batches[0].UnitCost))

	require.Len(t, s.purchases, 1)
	assert.Equal(t, int64(10), s.purchases[0].QuantityPurchased)
}

// Segunda compra más cara: con 10 uds a promedio ₦100, comprar 10 por ₦3.000
// deja el promedio en ₦200 y un segundo lote a ₦300 c/u.
func TestRecordPurchase_RecalculaPromedio(t *testing.T) {
	s := newFakeStore()
	seedBasicItem(s)
	uc := newPurchaseUC(s)
	ctx := context.Background()

	_, err := uc.Execute(ctx, testUserID, dto.RecordPurchaseRequest{
		ItemID: testItemID, UnitType: "base", UnitQuantity: 10, Cost: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	resp, err := uc.Execute(ctx, testUserID, dto.RecordPurchaseRequest{
		ItemID: testItemID, UnitType: "base", UnitQuantity: 10, Cost: decimal.NewFromInt(3000),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(20), resp.Item.Quantity)
	assert.True(t, decimal.NewFromInt(200).Equal(resp.Item.WeightedAvgCost),
		"promedio esperado 200, obtuvo %s", resp.Item.WeightedAvgCost)

	require.Len(t, s.batches, 2)
	assert.True(t, decimal.NewFromInt(300).Equal(s.batches[1].UnitCost),
		"el segundo lote conserva su costo propio, no el promedio")
}

// Compra en empaques: 2 cartones de 12 por ₦2.400 → 24 unidades base a ₦100 c/u.
func TestRecordPurchase_EnEmpaques(t *testing.T) {
	s := newFakeStore()
	seedBasicItem(s)
	uc := newPurchaseUC(s)

	resp, err := uc.Execute(context.Background(), testUserID, dto.RecordPurchaseRequest{
		ItemID:       testItemID,
		UnitType:     "package",
		UnitQuantity: 2,
		Cost:         decimal.NewFromInt(2400),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(24), resp.Item.Quantity, "2 cartones de 12 son 24 unidades base")
	assert.Equal(t, int64(24), resp.Purchase.QuantityPurchased)
	assert.Equal(t, int64(2), resp.Purchase.UnitQuantity, "la compra conserva la cantidad tal como la expresó el usuario")
	assert.True(t, decimal.NewFromInt(100).Equal(resp.NewBatch.UnitCost))
}

// NewSellingPrice opcional: si viene, actualiza el precio de venta del artículo.
func TestRecordPurchase_ActualizaPrecioDeVenta(t *testing.T) {
	s := newFakeStore()
	seedBasicItem(s)
	uc := newPurchaseUC(s)
	newPrice := decimal.NewFromInt(150)

	resp, err := uc.Execute(context.Background(), testUserID, dto.RecordPurchaseRequest{
		ItemID:          testItemID,
		UnitType:        "base",
		UnitQuantity:    5,
		Cost:            decimal.NewFromInt(500),
		NewSellingPrice: &newPrice,
	})
	require.NoError(t, err)
	assert.True(t, newPrice.Equal(resp.Item.Price))
}

// Validaciones de entrada.
func TestRecordPurchase_EntradaInvalida(t *testing.T) {
	s := newFakeStore()
	seedBasicItem(s)
	uc := newPurchaseUC(s)
	ctx := context.Background()

	cases := []dto.RecordPurchaseRequest{
		{ItemID: "", UnitType: "base", UnitQuantity: 1, Cost: decimal.NewFromInt(10)},
		{ItemID: testItemID, UnitType: "crate", UnitQuantity: 1, Cost: decimal.NewFromInt(10)},
		{ItemID: testItemID, UnitType: "base", UnitQuantity: 0, Cost: decimal.NewFromInt(10)},
		{ItemID: testItemID, UnitType: "base", UnitQuantity: 1, Cost: decimal.NewFromInt(-10)},
	}
	for _, in := range cases {
		_, err := uc.Execute(ctx, testUserID, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, s.batches, "ninguna entrada inválida debe crear lotes")
}

// Artículo de otro usuario: prohibido, sin efectos.
func TestRecordPurchase_ArticuloAjeno(t *testing.T) {
	s := newFakeStore()
	seedBasicItem(s)
	uc := newPurchaseUC(s)

	_, err := uc.Execute(context.Background(), otherUserID, dto.RecordPurchaseRequest{
		ItemID: testItemID, UnitType: "base", UnitQuantity: 1, Cost: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, s.purchases)
}

// Artículo inexistente.
func TestRecordPurchase_ArticuloInexistente(t *testing.T) {
	s := newFakeStore()
	uc := newPurchaseUC(s)

	_, err := uc.Execute(context.Background(), testUserID, dto.RecordPurchaseRequest{
		ItemID: "no-existe", UnitType: "base", UnitQuantity: 1, Cost: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
