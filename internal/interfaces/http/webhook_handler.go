package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restostock-api/internal/application/dto"
	"github.com/jhoicas/restostock-api/internal/application/stock"
	"github.com/jhoicas/restostock-api/internal/domain"
)

// SalesWebhookRequest body del webhook de ventas de las plataformas
// (iFood, Rappi, etc.). Cada ítem referencia una receta vendida.
type SalesWebhookRequest struct {
	Platform        string `json:"platform"`
	ExternalOrderID string `json:"external_order_id"`
	Items           []struct {
		RecipeID string `json:"recipe_id"`
		Quantity int    `json:"quantity"`
	} `json:"items"`
}

// SalesWebhookResponse resultado por ítem del pedido.
type SalesWebhookResponse struct {
	Reference string                   `json:"reference"`
	Results   []dto.RecipeExitResponse `json:"results"`
}

// WebhookHandler recibe ventas de plataformas externas y las convierte en
// salidas por receta (protegido; las plataformas usan un token de integración).
type WebhookHandler struct {
	registerUC *stock.RegisterMovementUseCase
}

// NewWebhookHandler construye el handler.
func NewWebhookHandler(registerUC *stock.RegisterMovementUseCase) *WebhookHandler {
	return &WebhookHandler{registerUC: registerUC}
}

// Sales godoc
// @Summary      Webhook de ventas: una salida por receta por cada ítem del pedido
// @Description  Idempotente por (platform, external_order_id, recipe_id): la reentrega del mismo pedido no descuenta dos veces.
// @Tags         webhooks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  SalesWebhookRequest  true  "platform, external_order_id, items"
// @Success      200   {object}  SalesWebhookResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/webhooks/sales [post]
func (h *WebhookHandler) Sales(c *fiber.Ctx) error {
	orgID, userID := GetOrgID(c), GetUserID(c)
	if orgID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	var in SalesWebhookRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Platform == "" || in.ExternalOrderID == "" || len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "platform, external_order_id e items son requeridos"})
	}

	resp := SalesWebhookResponse{
		Reference: in.Platform + ":" + in.ExternalOrderID,
		Results:   make([]dto.RecipeExitResponse, 0, len(in.Items)),
	}
	for _, item := range in.Items {
		reference := fmt.Sprintf("%s:%s:%s", in.Platform, in.ExternalOrderID, item.RecipeID)
		result, err := h.registerUC.RegisterRecipeExit(c.UserContext(), orgID, userID, stock.RecipeExitInput{
			RecipeID:  item.RecipeID,
			Portions:  item.Quantity,
			Reason:    fmt.Sprintf("Venta %s pedido %s", in.Platform, in.ExternalOrderID),
			Reference: reference,
		})
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "receta no encontrada: " + item.RecipeID})
			}
			return stockError(c, err)
		}
		exit := dto.RecipeExitResponse{
			RecipeID:  item.RecipeID,
			Portions:  item.Quantity,
			Applied:   result.Applied,
			Movements: make([]dto.MovementResponse, 0, len(result.Movements)),
		}
		for _, m := range result.Movements {
			exit.Movements = append(exit.Movements, *stock.ToMovementResponse(m))
		}
		resp.Results = append(resp.Results, exit)
	}
	return c.JSON(resp)
}
