package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restostock-api/internal/application/dto"
	"github.com/jhoicas/restostock-api/internal/application/stock"
	"github.com/jhoicas/restostock-api/internal/domain"
	"github.com/jhoicas/restostock-api/internal/domain/repository"
)

// StockHandler maneja movimientos del libro: registro individual, salida por
// receta y consulta (protegido).
type StockHandler struct {
	registerUC *stock.RegisterMovementUseCase
	queryUC    *stock.LedgerQueryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(registerUC *stock.RegisterMovementUseCase, queryUC *stock.LedgerQueryUseCase) *StockHandler {
	return &StockHandler{registerUC: registerUC, queryUC: queryUC}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_id, type, quantity"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/movements [post]
func (h *StockHandler) RegisterMovement(c *fiber.Ctx) error {
	orgID, userID := GetOrgID(c), GetUserID(c)
	if orgID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.registerUC.RegisterMovementFromRequest(c.UserContext(), orgID, userID, in)
	if err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(stock.ToMovementResponse(mov))
}

// RecipeExit godoc
// @Summary      Salida por receta: descuenta todos los ingredientes en un lote atómico
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecipeExitRequest  true  "recipe_id, portions"
// @Success      201   {object}  dto.RecipeExitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/recipe-exit [post]
func (h *StockHandler) RecipeExit(c *fiber.Ctx) error {
	orgID, userID := GetOrgID(c), GetUserID(c)
	if orgID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	var in dto.RecipeExitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.registerUC.RegisterRecipeExitFromRequest(c.UserContext(), orgID, userID, in)
	if err != nil {
		return stockError(c, err)
	}
	resp := dto.RecipeExitResponse{
		RecipeID:  in.RecipeID,
		Portions:  in.Portions,
		Applied:   result.Applied,
		Movements: make([]dto.MovementResponse, 0, len(result.Movements)),
	}
	for _, m := range result.Movements {
		resp.Movements = append(resp.Movements, *stock.ToMovementResponse(m))
	}
	status := fiber.StatusCreated
	if !result.Applied {
		// reentrega idempotente: nada nuevo que crear
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(resp)
}

// ListMovements godoc
// @Summary      Listar movimientos (más recientes primero)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        type        query  string  false  "entry | exit | loss | adjustment"
// @Param        from        query  string  false  "Desde (RFC3339)"
// @Param        to          query  string  false  "Hasta (RFC3339)"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200         {object}  dto.MovementListResponse
// @Router       /api/stock/movements [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	if orgID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	limit, offset := pageParams(c)

	var filter repository.MovementFilter
	filter.ProductID = c.Query("product_id")
	filter.Type = c.Query("type")
	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser RFC3339"})
		}
		filter.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser RFC3339"})
		}
		filter.To = &t
	}

	out, err := h.queryUC.List(orgID, filter, limit, offset)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtro inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// stockError mapea errores de dominio del libro a códigos HTTP.
func stockError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "movimiento inválido"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o receta no encontrados"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrPartialBatch):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PARTIAL_BATCH", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "operación no permitida"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
