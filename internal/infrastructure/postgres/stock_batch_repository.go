package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tax1/inventory-api/internal/domain/entity"
	"github.com/tax1/inventory-api/internal/domain/repository"
	"github.com/tax1/inventory-api/internal/domain/valuation"
)

var _ repository.StockBatchRepository = (*StockBatchRepo)(nil)

// StockBatchRepo implementación de StockBatchRepository sobre PostgreSQL
// (usable con pool o tx). Los lotes nunca se borran: los agotados quedan con
// quantity_remaining = 0 para auditoría.
type StockBatchRepo struct {
	q Querier
}

// NewStockBatchRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewStockBatchRepository(q Querier) *StockBatchRepo {
	return &StockBatchRepo{q: q}
}

// Create persiste un lote nuevo.
func (r *StockBatchRepo) Create(batch *entity.StockBatch) error {
	query := `
		INSERT INTO stock_batches (id, item_id, user_id, quantity_remaining, unit_cost, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.ItemID, batch.UserID, batch.QuantityRemaining, batch.UnitCost, batch.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock batch: %w", err)
	}
	return nil
}

// ListActiveForUpdate devuelve los lotes con unidades restantes del artículo,
// más antiguo primero, bloqueando las filas (FOR UPDATE). Usar dentro de una tx.
func (r *StockBatchRepo) ListActiveForUpdate(itemID string) ([]*entity.StockBatch, error) {
	query := `
		SELECT id, item_id, user_id, quantity_remaining, unit_cost, created_at
		FROM stock_batches
		WHERE item_id = $1 AND quantity_remaining > 0
		ORDER BY created_at ASC
		FOR UPDATE`
	rows, err := r.q.Query(context.Background(), query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list active batches: %w", err)
	}
	defer rows.Close()
	return scanBatches(rows)
}

// ApplyConsumption persiste las cantidades restantes calculadas por el consumo FIFO.
func (r *StockBatchRepo) ApplyConsumption(updates []valuation.BatchUpdate) error {
	for _, u := range updates {
		tag, err := r.q.Exec(context.Background(),
			`UPDATE stock_batches SET quantity_remaining = $2 WHERE id = $1`,
			u.ID, u.QuantityRemaining,
		)
		if err != nil {
			return fmt.Errorf("apply batch consumption: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("apply batch consumption: lote %s no existe", u.ID)
		}
	}
	return nil
}

// ListByItem lista todos los lotes del artículo, incluidos los agotados, en orden de recepción.
func (r *StockBatchRepo) ListByItem(itemID string) ([]*entity.StockBatch, error) {
	query := `
		SELECT id, item_id, user_id, quantity_remaining, unit_cost, created_at
		FROM stock_batches
		WHERE item_id = $1
		ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()
	return scanBatches(rows)
}

func scanBatches(rows pgx.Rows) ([]*entity.StockBatch, error) {
	var batches []*entity.StockBatch
	for rows.Next() {
		var b entity.StockBatch
		if err := rows.Scan(&b.ID, &b.ItemID, &b.UserID, &b.QuantityRemaining, &b.UnitCost, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		batches = append(batches, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate batches: %w", err)
	}
	return batches, nil
}
