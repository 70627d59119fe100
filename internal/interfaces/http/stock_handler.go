package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tax1/inventory-api/internal/application/dto"
	"github.com/tax1/inventory-api/internal/application/stock"
	"github.com/tax1/inventory-api/internal/application/usecase"
	"github.com/tax1/inventory-api/internal/domain"
)

// StockHandler maneja compras y ventas (protegido). Para registrar una venta
// resuelve el método de valoración activo del usuario y lo inyecta al caso de
// uso: la política nunca viaja en el body del request.
type StockHandler struct {
	recordPurchase *stock.RecordPurchaseUseCase
	recordSale     *stock.RecordSaleUseCase
	history        *stock.HistoryUseCase
	settings       *usecase.SettingsUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(
	recordPurchase *stock.RecordPurchaseUseCase,
	recordSale *stock.RecordSaleUseCase,
	history *stock.HistoryUseCase,
	settings *usecase.SettingsUseCase,
) *StockHandler {
	return &StockHandler{
		recordPurchase: recordPurchase,
		recordSale:     recordSale,
		history:        history,
		settings:       settings,
	}
}

// RecordPurchase godoc
// @Summary      Registrar compra (entrada de stock)
// @Description  Recalcula el costo promedio ponderado, crea un lote FIFO y
//	suma la cantidad al artículo en una sola transacción.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordPurchaseRequest  true  "item_id, unit_type (base|package), unit_quantity, cost total"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *StockHandler) RecordPurchase(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RecordPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.recordPurchase.Execute(c.Context(), userID, in)
	if err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// RecordSale godoc
// @Summary      Registrar venta (salida de stock)
// @Description  Valida suficiencia de stock bajo bloqueo de fila, consume el
//	ledger FIFO y estampa cost_at_sale con el método de valoración activo del
//	usuario. Con stock insuficiente responde 409 sin mutar nada.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "item_id, unit_type (base|package), unit_quantity"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *StockHandler) RecordSale(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	method, err := h.settings.GetValuationMethod(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	resp, err := h.recordSale.Execute(c.Context(), userID, in, method)
	if err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListPurchases godoc
// @Summary      Listar compras
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máx 100, default 20"
// @Param        offset  query  int  false  "default 0"
// @Success      200  {object}  dto.PurchaseListResponse
// @Router       /api/purchases [get]
func (h *StockHandler) ListPurchases(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.history.ListPurchases(userID, page.Limit, page.Offset)
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(list)
}

// ListSales godoc
// @Summary      Listar ventas
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máx 100, default 20"
// @Param        offset  query  int  false  "default 0"
// @Success      200  {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *StockHandler) ListSales(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.history.ListSales(userID, page.Limit, page.Offset)
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(list)
}

// ListBatches godoc
// @Summary      Ledger de lotes de un artículo
// @Description  Todos los lotes en orden de recepción, incluidos los agotados
//	(quantity_remaining = 0); los lotes nunca se borran.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Item ID"
// @Success      200  {object}  dto.StockBatchListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/batches [get]
func (h *StockHandler) ListBatches(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	resp, err := h.history.ListBatches(userID, c.Params("id"))
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(resp)
}

func stockError(c *fiber.Ctx, err error) error {
	if err == domain.ErrInvalidInput {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	if err == domain.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	}
	if err == domain.ErrForbidden {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	}
	if err == domain.ErrInsufficientStock {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
