package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/envasadora/insumos-api/internal/application/dto"
	"github.com/envasadora/insumos-api/internal/application/usecase"
	"github.com/envasadora/insumos-api/internal/domain/repository"
)

// ReportHandler reportes exportables del inventario.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// InventoryXLSX godoc
// @Summary      Exportar inventario a Excel
// @Tags         reportes
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        client  query  string  false  "Cliente"
// @Param        type    query  string  false  "Tipo de embarque"
// @Success      200  {file}  binary
// @Router       /api/reportes/inventario.xlsx [get]
func (h *ReportHandler) InventoryXLSX(c *fiber.Ctx) error {
	filter := repository.InventoryItemFilter{
		ClientName:   c.Query("client"),
		ShipmentType: c.Query("type"),
	}
	data, err := h.uc.InventoryReport(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.xlsx"`)
	return c.Send(data)
}
