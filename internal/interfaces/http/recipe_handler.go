package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restostock-api/internal/application/dto"
	"github.com/jhoicas/restostock-api/internal/application/recipe"
	"github.com/jhoicas/restostock-api/internal/domain"
)

// RecipeHandler maneja las peticiones HTTP para Recipe (protegido).
type RecipeHandler struct {
	uc *recipe.UseCase
}

// NewRecipeHandler construye el handler.
func NewRecipeHandler(uc *recipe.UseCase) *RecipeHandler {
	return &RecipeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear receta (el costo se fotografía al guardar)
// @Tags         recipes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRecipeRequest  true  "Datos de la receta"
// @Success      201   {object}  dto.RecipeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/recipes [post]
func (h *RecipeHandler) Create(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	if orgID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	var in dto.CreateRecipeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(orgID, in)
	if err != nil {
		return recipeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener receta por ID
// @Tags         recipes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la receta"
// @Success      200  {object}  dto.RecipeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recipes/{id} [get]
func (h *RecipeHandler) GetByID(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(orgID, id)
	if err != nil {
		return recipeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar receta (ingredients no nulo recalcula el costo foto)
// @Tags         recipes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la receta"
// @Param        body  body  dto.UpdateRecipeRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.RecipeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/recipes/{id} [put]
func (h *RecipeHandler) Update(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateRecipeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(orgID, id, in)
	if err != nil {
		return recipeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar receta
// @Tags         recipes
// @Security     Bearer
// @Param        id  path  string  true  "ID de la receta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recipes/{id} [delete]
func (h *RecipeHandler) Delete(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(orgID, id); err != nil {
		return recipeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar recetas
// @Tags         recipes
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.RecipeListResponse
// @Router       /api/recipes [get]
func (h *RecipeHandler) List(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	if orgID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.List(orgID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func recipeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de receta inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "receta o producto no encontrados"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
