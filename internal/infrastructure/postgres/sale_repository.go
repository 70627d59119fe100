package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tax1/inventory-api/internal/domain/entity"
	"github.com/tax1/inventory-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, invoice_id, user_id, item_id, quantity_sold, unit_type, unit_quantity,
		customer_name, total_amount, cost_at_sale, valuation_method_used, sale_date`

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
// Solo inserta y lee: las ventas son inmutables.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste un registro de venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.InvoiceID, sale.UserID, sale.ItemID, sale.QuantitySold,
		sale.UnitType, sale.UnitQuantity, sale.CustomerName, sale.TotalAmount,
		sale.CostAtSale, sale.ValuationMethodUsed, sale.SaleDate,
	)
	if err != nil {
		return fmt.Errorf("create sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID; nil si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.InvoiceID, &s.UserID, &s.ItemID, &s.QuantitySold,
		&s.UnitType, &s.UnitQuantity, &s.CustomerName, &s.TotalAmount,
		&s.CostAtSale, &s.ValuationMethodUsed, &s.SaleDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// ListByUser lista ventas del usuario, más reciente primero.
func (r *SaleRepo) ListByUser(userID string, limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + ` FROM sales
		WHERE user_id = $1
		ORDER BY sale_date DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	return scanSales(rows)
}

// ListForExport lista las ventas del rango para el P&L, más antigua primero.
// from/to son opcionales (nil = sin límite por ese extremo).
func (r *SaleRepo) ListForExport(userID string, from, to *time.Time) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE user_id = $1`
	args := []any{userID}
	if from != nil {
		args = append(args, *from)
		query += ` AND sale_date >= $` + strconv.Itoa(len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += ` AND sale_date <= $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY sale_date ASC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales for export: %w", err)
	}
	defer rows.Close()
	return scanSales(rows)
}

func scanSales(rows pgx.Rows) ([]*entity.Sale, error) {
	var sales []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.InvoiceID, &s.UserID, &s.ItemID, &s.QuantitySold,
			&s.UnitType, &s.UnitQuantity, &s.CustomerName, &s.TotalAmount,
			&s.CostAtSale, &s.ValuationMethodUsed, &s.SaleDate,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sales: %w", err)
	}
	return sales, nil
}
