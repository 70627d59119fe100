package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tax1/inventory-api/internal/application/dto"
	"github.com/tax1/inventory-api/internal/application/usecase"
)

// ReportHandler maneja los reportes de solo lectura (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// SalesExport godoc
// @Summary      Export de ventas (P&L)
// @Description  Una fila por venta con ingreso bruto y neto de IVA, COGS según
//	el método de valoración estampado y utilidad bruta.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "fecha inicial (RFC 3339 o 2006-01-02)"
// @Param        to    query  string  false  "fecha final (RFC 3339 o 2006-01-02)"
// @Success      200  {array}   dto.SalesExportRow
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales-export [get]
func (h *ReportHandler) SalesExport(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	from, err := parseDateQuery(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "fecha 'from' inválida"})
	}
	to, err := parseDateQuery(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "fecha 'to' inválida"})
	}
	rows, err := h.uc.SalesExport(userID, from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{
		"total": len(rows),
		"rows":  rows,
	})
}

// LowStock godoc
// @Summary      Artículos con stock bajo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LowStockItemDTO
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	items, err := h.uc.LowStock(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{
		"total": len(items),
		"items": items,
	})
}

// parseDateQuery acepta RFC 3339 o fecha simple (2006-01-02); vacío = nil.
func parseDateQuery(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
