package postgres

import (
	"context"
	"fmt"

	"github.com/tax1/inventory-api/internal/domain/entity"
	"github.com/tax1/inventory-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de compras. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste un registro de compra.
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (id, user_id, item_id, quantity_purchased, unit_type,
			unit_quantity, cost, new_selling_price, supplier_name, purchase_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.UserID, purchase.ItemID, purchase.QuantityPurchased,
		purchase.UnitType, purchase.UnitQuantity, purchase.Cost, purchase.NewSellingPrice,
		purchase.SupplierName, purchase.PurchaseDate,
	)
	if err != nil {
		return fmt.Errorf("create purchase: %w", err)
	}
	return nil
}

// ListByUser lista compras del usuario, más reciente primero.
func (r *PurchaseRepo) ListByUser(userID string, limit, offset int) ([]*entity.Purchase, error) {
	query := `
		SELECT id, user_id, item_id, quantity_purchased, unit_type, unit_quantity,
			cost, new_selling_price, supplier_name, purchase_date
		FROM purchases
		WHERE user_id = $1
		ORDER BY purchase_date DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	var purchases []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.ItemID, &p.QuantityPurchased, &p.UnitType,
			&p.UnitQuantity, &p.Cost, &p.NewSellingPrice, &p.SupplierName, &p.PurchaseDate,
		); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		purchases = append(purchases, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate purchases: %w", err)
	}
	return purchases, nil
}
