package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tax1/inventory-api/internal/domain"
	"github.com/tax1/inventory-api/internal/domain/entity"
	"github.com/tax1/inventory-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, user_id, name, description, category, barcode, price, quantity,
		weighted_avg_cost, base_unit, packaging_unit, units_per_package,
		low_stock_threshold, created_at, updated_at`

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de artículos. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un artículo nuevo.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.UserID, item.Name, item.Description, item.Category, item.Barcode,
		item.Price, item.Quantity, item.WeightedAvgCost, item.BaseUnit, item.PackagingUnit,
		item.UnitsPerPackage, item.LowStockThreshold, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID; nil si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene el artículo bloqueando la fila (SELECT FOR UPDATE).
// Usar dentro de una transacción: serializa compras/ventas concurrentes.
func (r *ItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

// Update guarda el estado completo del artículo.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET
			name = $2, description = $3, category = $4, barcode = $5, price = $6,
			quantity = $7, weighted_avg_cost = $8, base_unit = $9, packaging_unit = $10,
			units_per_package = $11, low_stock_threshold = $12, updated_at = $13
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.Category, item.Barcode, item.Price,
		item.Quantity, item.WeightedAvgCost, item.BaseUnit, item.PackagingUnit,
		item.UnitsPerPackage, item.LowStockThreshold, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByUser lista artículos del usuario con paginación, ordenados por nombre.
func (r *ItemRepo) ListByUser(userID string, limit, offset int) ([]*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + ` FROM items
		WHERE user_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// ListLowStock lista los artículos en o por debajo de su umbral de stock bajo.
func (r *ItemRepo) ListLowStock(userID string) ([]*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + ` FROM items
		WHERE user_id = $1 AND low_stock_threshold > 0 AND quantity <= low_stock_threshold
		ORDER BY quantity ASC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list low stock items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// Delete elimina un artículo por ID.
func (r *ItemRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ItemRepo) scanOne(query string, args ...any) (*entity.Item, error) {
	var i entity.Item
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&i.ID, &i.UserID, &i.Name, &i.Description, &i.Category, &i.Barcode,
		&i.Price, &i.Quantity, &i.WeightedAvgCost, &i.BaseUnit, &i.PackagingUnit,
		&i.UnitsPerPackage, &i.LowStockThreshold, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &i, nil
}

func scanItems(rows pgx.Rows) ([]*entity.Item, error) {
	var items []*entity.Item
	for rows.Next() {
		var i entity.Item
		if err := rows.Scan(
			&i.ID, &i.UserID, &i.Name, &i.Description, &i.Category, &i.Barcode,
			&i.Price, &i.Quantity, &i.WeightedAvgCost, &i.BaseUnit, &i.PackagingUnit,
			&i.UnitsPerPackage, &i.LowStockThreshold, &i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, &i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}
