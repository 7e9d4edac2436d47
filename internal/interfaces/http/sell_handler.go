package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/application/sales"
	"github.com/jhoicas/farmacia-api/internal/domain"
)

// SellHandler maneja el registro de ventas y el reporte por fecha.
type SellHandler struct {
	createUC *sales.CreateSellUseCase
	reportUC *sales.SellReportUseCase
}

// NewSellHandler construye el handler.
func NewSellHandler(createUC *sales.CreateSellUseCase, reportUC *sales.SellReportUseCase) *SellHandler {
	return &SellHandler{createUC: createUC, reportUC: reportUC}
}

// Create registra una venta y descuenta stock. La respuesta solo se
// escribe después del Commit de la transacción.
func (h *SellHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSellRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.createUC.CreateSell(c.Context(), in)
	if err != nil {
		if se, ok := domain.IsStockError(err); ok {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: se.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Product not found"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity debe ser mayor que cero"})
		}
		log.Error().Err(err).Int64("product_id", in.ProductID).Msg("registrar venta")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error creating sell"})
	}
	return c.JSON(out)
}

// ListByDate devuelve las ventas del día indicado en el path ("YYYY-MM-DD").
func (h *SellHandler) ListByDate(c *fiber.Ctx) error {
	out, err := h.reportUC.ListByDate(c.Params("date"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "Invalid date format. Use YYYY-MM-DD."})
		}
		log.Error().Err(err).Str("date", c.Params("date")).Msg("reporte de ventas")
		// El detalle se devuelve al caller en este endpoint de solo lectura.
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
