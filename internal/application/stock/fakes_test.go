package stock_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tax1/inventory-api/internal/application/stock"
	"github.com/tax1/inventory-api/internal/domain/entity"
	"github.com/tax1/inventory-api/internal/domain/repository"
	"github.com/tax1/inventory-api/internal/domain/valuation"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: un único almacén compartido entre los repos y el runner,
// suficiente para ejercitar los casos de uso sin PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	items     map[string]*entity.Item
	batches   []*entity.StockBatch // en orden de recepción
	purchases []*entity.Purchase
	sales     []*entity.Sale
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: make(map[string]*entity.Item)}
}

// seedItem registra un artículo directamente en el almacén.
func (s *fakeStore) seedItem(item *entity.Item) {
	cp := *item
	s.items[item.ID] = &cp
}

// ── ItemRepository ────────────────────────────────────────────────────────────

type fakeItemRepo struct{ s *fakeStore }

func (r *fakeItemRepo) Create(item *entity.Item) error {
	cp := *item
	r.s.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	item, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r *fakeItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	return r.GetByID(id)
}

func (r *fakeItemRepo) Update(item *entity.Item) error {
	cp := *item
	r.s.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) ListByUser(userID string, limit, offset int) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, i := range r.s.items {
		if i.UserID == userID {
			cp := *i
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) ListLowStock(userID string) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, i := range r.s.items {
		if i.UserID == userID && i.LowStockThreshold > 0 && i.Quantity <= i.LowStockThreshold {
			cp := *i
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) Delete(id string) error {
	delete(r.s.items, id)
	return nil
}

// ── StockBatchRepository ──────────────────────────────────────────────────────

type fakeBatchRepo struct{ s *fakeStore }

func (r *fakeBatchRepo) Create(batch *entity.StockBatch) error {
	cp := *batch
	r.s.batches = append(r.s.batches, &cp)
	return nil
}

func (r *fakeBatchRepo) ListActiveForUpdate(itemID string) ([]*entity.StockBatch, error) {
	var out []*entity.StockBatch
	for _, b := range r.s.batches {
		if b.ItemID == itemID && b.QuantityRemaining > 0 {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeBatchRepo) ApplyConsumption(updates []valuation.BatchUpdate) error {
	for _, u := range updates {
		for _, b := range r.s.batches {
			if b.ID == u.ID {
				b.QuantityRemaining = u.QuantityRemaining
			}
		}
	}
	return nil
}

func (r *fakeBatchRepo) ListByItem(itemID string) ([]*entity.StockBatch, error) {
	var out []*entity.StockBatch
	for _, b := range r.s.batches {
		if b.ItemID == itemID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ── PurchaseRepository / SaleRepository ───────────────────────────────────────

type fakePurchaseRepo struct{ s *fakeStore }

func (r *fakePurchaseRepo) Create(p *entity.Purchase) error {
	cp := *p
	r.s.purchases = append(r.s.purchases, &cp)
	return nil
}

func (r *fakePurchaseRepo) ListByUser(userID string, limit, offset int) ([]*entity.Purchase, error) {
	var out []*entity.Purchase
	for _, p := range r.s.purchases {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeSaleRepo struct{ s *fakeStore }

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	cp := *sale
	r.s.sales = append(r.s.sales, &cp)
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	for _, s := range r.s.sales {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) ListByUser(userID string, limit, offset int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.s.sales {
		if s.UserID == userID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) ListForExport(userID string, from, to *time.Time) ([]*entity.Sale, error) {
	return r.ListByUser(userID, 0, 0)
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta fn directamente sobre los repos del almacén compartido.
type fakeTxRunner struct{ s *fakeStore }

var _ stock.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	batchRepo repository.StockBatchRepository,
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return fn(&fakeItemRepo{r.s}, &fakeBatchRepo{r.s}, &fakePurchaseRepo{r.s}, &fakeSaleRepo{r.s})
}

// ── helpers ───────────────────────────────────────────────────────────────────

const (
	testUserID  = "user-1"
	otherUserID = "user-2"
	testItemID  = "item-1"
)

func seedBasicItem(s *fakeStore) {
	s.seedItem(&entity.Item{
		ID:              testItemID,
		UserID:          testUserID,
		Name:            "Bolsa de arroz 5kg",
		Price:           decimal.NewFromInt(100),
		Quantity:        0,
		WeightedAvgCost: decimal.Zero,
		BaseUnit:        "pieza",
		PackagingUnit:   "cartón",
		UnitsPerPackage: 12,
	})
}
