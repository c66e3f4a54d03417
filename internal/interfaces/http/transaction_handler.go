package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/envasadora/insumos-api/internal/application/dto"
	"github.com/envasadora/insumos-api/internal/application/transactions"
	"github.com/envasadora/insumos-api/internal/domain"
)

// TransactionHandler maneja el envío y consulta de recepciones y entregas.
type TransactionHandler struct {
	submitUC  *transactions.SubmitUseCase
	historyUC *transactions.HistoryUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(submitUC *transactions.SubmitUseCase, historyUC *transactions.HistoryUseCase) *TransactionHandler {
	return &TransactionHandler{submitUC: submitUC, historyUC: historyUC}
}

// CreateReception godoc
// @Summary      Enviar formulario de recepción
// @Description  Resuelve cada línea contra el inventario y suma stock. Con auto_create_missing crea los registros faltantes y reintenta una vez.
// @Tags         recepciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitTransactionRequest  true  "Formulario"
// @Success      201   {object}  dto.SubmissionResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/recepciones [post]
func (h *TransactionHandler) CreateReception(c *fiber.Ctx) error {
	var in dto.SubmitTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.submitUC.SubmitReception(c.Context(), GetUserID(c), in)
	if err != nil {
		return submissionError(c, err)
	}
	return c.Status(submissionStatus(out)).JSON(out)
}

// ListReceptions godoc
// @Summary      Listar recepciones
// @Tags         recepciones
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {array}  dto.TransactionDocumentDTO
// @Router       /api/recepciones [get]
func (h *TransactionHandler) ListReceptions(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.historyUC.ListReceptions(c.Context(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetReception godoc
// @Summary      Obtener recepción por ID
// @Tags         recepciones
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la recepción"
// @Success      200  {object}  dto.TransactionDocumentDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recepciones/{id} [get]
func (h *TransactionHandler) GetReception(c *fiber.Ctx) error {
	out, err := h.historyUC.GetReception(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recepción no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreateDelivery godoc
// @Summary      Enviar formulario de entrega
// @Description  Resuelve cada línea contra el inventario y descuenta cantidad más merma. Cualquier línea sin stock suficiente rechaza el envío completo.
// @Tags         entregas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitTransactionRequest  true  "Formulario"
// @Success      201   {object}  dto.SubmissionResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/entregas [post]
func (h *TransactionHandler) CreateDelivery(c *fiber.Ctx) error {
	var in dto.SubmitTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.submitUC.SubmitDelivery(c.Context(), GetUserID(c), in)
	if err != nil {
		return submissionError(c, err)
	}
	return c.Status(submissionStatus(out)).JSON(out)
}

// ListDeliveries godoc
// @Summary      Listar entregas
// @Tags         entregas
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {array}  dto.TransactionDocumentDTO
// @Router       /api/entregas [get]
func (h *TransactionHandler) ListDeliveries(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.historyUC.ListDeliveries(c.Context(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetDelivery godoc
// @Summary      Obtener entrega por ID
// @Tags         entregas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la entrega"
// @Success      200  {object}  dto.TransactionDocumentDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entregas/{id} [get]
func (h *TransactionHandler) GetDelivery(c *fiber.Ctx) error {
	out, err := h.historyUC.GetDelivery(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrega no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// submissionStatus mapea el resultado al código HTTP: created -> 201, el resto -> 422.
func submissionStatus(out *dto.SubmissionResult) int {
	if out.Status == dto.StatusCreated {
		return fiber.StatusCreated
	}
	return fiber.StatusUnprocessableEntity
}

func submissionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "client, type y supplies son requeridos; date con formato YYYY-MM-DD"})
	case errors.Is(err, domain.ErrNoResolvableSupplies):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NO_RESOLVABLE_SUPPLIES", Message: "ninguna línea del formulario pudo resolverse contra el inventario"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "el stock cambió durante el envío; reintente"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
