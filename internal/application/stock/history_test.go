package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tax1/inventory-api/internal/application/dto"
	"github.com/tax1/inventory-api/internal/application/stock"
	"github.com/tax1/inventory-api/internal/domain"
	"github.com/tax1/inventory-api/internal/domain/valuation"
)

func newHistoryUC(s *fakeStore) *stock.HistoryUseCase {
	return stock.NewHistoryUseCase(
		&fakeItemRepo{s}, &fakeBatchRepo{s}, &fakePurchaseRepo{s}, &fakeSaleRepo{s}, testVATRate,
	)
}

// El ledger de auditoría incluye los lotes agotados: tras vender 7 de
// [5@10, 5@20] siguen apareciendo ambos lotes, el viejo en cero.
func TestListBatches_IncluyeLotesAgotados(t *testing.T) {
	s := newFakeStore()
	seedWithTwoBatches(t, s)

	_, err := newSaleUC(s).Execute(context.Background(), testUserID, dto.RecordSaleRequest{
		ItemID: testItemID, UnitType: "base", UnitQuantity: 7,
	}, valuation.MethodFIFO)
	require.NoError(t, err)

	resp, err := newHistoryUC(s).ListBatches(testUserID, testItemID)
	require.NoError(t, err)

	require.Len(t, resp.Batches, 2, "los lotes agotados no desaparecen del ledger")
	assert.Equal(t, int64(0), resp.Batches[0].QuantityRemaining)
	assert.Equal(t, int64(3), resp.Batches[1].QuantityRemaining)
}

// El ledger de otro usuario no es consultable.
func TestListBatches_ArticuloAjeno(t *testing.T) {
	s := newFakeStore()
	seedWithTwoBatches(t, s)

	_, err := newHistoryUC(s).ListBatches(otherUserID, testItemID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Compras y ventas registradas aparecen en los listados del usuario.
func TestHistory_Listados(t *testing.T) {
	s := newFakeStore()
	seedWithTwoBatches(t, s)
	uc := newHistoryUC(s)

	_, err := newSaleUC(s).Execute(context.Background(), testUserID, dto.RecordSaleRequest{
		ItemID: testItemID, UnitType: "base", UnitQuantity: 2,
	}, valuation.MethodWAC)
	require.NoError(t, err)

	purchases, err := uc.ListPurchases(testUserID, 20, 0)
	require.NoError(t, err)
	assert.Len(t, purchases.Purchases, 2)

	sales, err := uc.ListSales(testUserID, 20, 0)
	require.NoError(t, err)
	require.Len(t, sales.Sales, 1)
	assert.Equal(t, valuation.MethodWAC.String(), sales.Sales[0].ValuationMethodUsed)
}
