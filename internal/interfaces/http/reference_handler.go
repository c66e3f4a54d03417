package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/envasadora/insumos-api/internal/application/dto"
	"github.com/envasadora/insumos-api/internal/application/usecase"
	"github.com/envasadora/insumos-api/internal/domain"
)

// ReferenceHandler maneja las listas de referencia del formulario (clientes, presentaciones, categorías).
type ReferenceHandler struct {
	uc *usecase.ReferenceUseCase
}

// NewReferenceHandler construye el handler.
func NewReferenceHandler(uc *usecase.ReferenceUseCase) *ReferenceHandler {
	return &ReferenceHandler{uc: uc}
}

// FormReferences godoc
// @Summary      Listas de referencia del formulario
// @Description  Carga clientes, presentaciones y categorías en paralelo. Si alguna lista falla, responde 207 con las listas que sí cargaron.
// @Tags         referencias
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FormReferencesResponse
// @Success      207  {object}  dto.FormReferencesResponse
// @Router       /api/referencias [get]
func (h *ReferenceHandler) FormReferences(c *fiber.Ctx) error {
	out, err := h.uc.FormReferences(c.Context())
	if err != nil {
		// Respuesta parcial: las listas que cargaron van en el cuerpo.
		if out != nil {
			return c.Status(fiber.StatusMultiStatus).JSON(out)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListClients godoc
// @Summary      Listar clientes
// @Tags         referencias
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ClientDTO
// @Router       /api/clientes [get]
func (h *ReferenceHandler) ListClients(c *fiber.Ctx) error {
	out, err := h.uc.ListClients(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreateClient godoc
// @Summary      Crear cliente
// @Tags         referencias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClientRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.ClientDTO
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clientes [post]
func (h *ReferenceHandler) CreateClient(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateClient(in)
	if err != nil {
		return referenceError(c, err, "el cliente ya existe")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPresentations godoc
// @Summary      Listar presentaciones
// @Tags         referencias
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PresentationDTO
// @Router       /api/presentaciones [get]
func (h *ReferenceHandler) ListPresentations(c *fiber.Ctx) error {
	out, err := h.uc.ListPresentations(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreatePresentation godoc
// @Summary      Crear presentación
// @Tags         referencias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePresentationRequest  true  "Volumen, ej. 750ML"
// @Success      201   {object}  dto.PresentationDTO
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/presentaciones [post]
func (h *ReferenceHandler) CreatePresentation(c *fiber.Ctx) error {
	var in dto.CreatePresentationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreatePresentation(in)
	if err != nil {
		return referenceError(c, err, "la presentación ya existe")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCategories godoc
// @Summary      Listar categorías canónicas
// @Tags         referencias
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryDTO
// @Router       /api/categorias [get]
func (h *ReferenceHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreateCategory godoc
// @Summary      Crear categoría
// @Tags         referencias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Nombre canónico"
// @Success      201   {object}  dto.CategoryDTO
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categorias [post]
func (h *ReferenceHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateCategory(in)
	if err != nil {
		return referenceError(c, err, "la categoría ya existe")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func referenceError(c *fiber.Ctx, err error, dupMessage string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: dupMessage})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
