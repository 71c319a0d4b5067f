package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restostock-api/internal/application/dto"
	"github.com/jhoicas/restostock-api/internal/application/report"
	"github.com/jhoicas/restostock-api/internal/domain"
	"github.com/jhoicas/restostock-api/internal/domain/repository"
)

const defaultConsumptionDays = 30 // rango por defecto del reporte de consumo

// ReportHandler maneja las agregaciones de lectura: panel, alertas, lista de
// compras y consumo, con export a PDF (protegido).
type ReportHandler struct {
	uc      *report.UseCase
	pdfGen  report.PDFGenerator
	orgRepo repository.OrganizationRepository
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase, pdfGen report.PDFGenerator, orgRepo repository.OrganizationRepository) *ReportHandler {
	return &ReportHandler{uc: uc, pdfGen: pdfGen, orgRepo: orgRepo}
}

// Dashboard godoc
// @Summary      Estadísticas del panel
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	if orgID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	out, err := h.uc.Dashboard(orgID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Productos en o bajo su stock mínimo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LowStockAlertDTO
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	if orgID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	out, err := h.uc.LowStock(orgID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ShoppingList godoc
// @Summary      Lista de compras sugerida
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        growth_pct  query  number  false  "Aumento de demanda esperado (%)"  default(0)
// @Success      200  {object}  dto.ShoppingListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/shopping-list [get]
func (h *ReportHandler) ShoppingList(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	if orgID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	growth, err := growthParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "growth_pct debe ser un número no negativo"})
	}
	out, err := h.uc.ShoppingList(orgID, growth)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "growth_pct debe ser un número no negativo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ShoppingListPDF godoc
// @Summary      Lista de compras sugerida en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        growth_pct  query  number  false  "Aumento de demanda esperado (%)"  default(0)
// @Success      200  {file}  byte
// @Router       /api/reports/shopping-list/pdf [get]
func (h *ReportHandler) ShoppingListPDF(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	if orgID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	growth, err := growthParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "growth_pct debe ser un número no negativo"})
	}
	list, err := h.uc.ShoppingList(orgID, growth)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	pdfBytes, err := h.pdfGen.ShoppingListPDF(c.UserContext(), h.orgName(orgID), list)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_ERROR", Message: err.Error()})
	}
	return sendPDF(c, "lista-de-compras.pdf", pdfBytes)
}

// Consumption godoc
// @Summary      Reporte de consumo (salidas + pérdidas) del período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Desde (RFC3339 o YYYY-MM-DD; default 30 días atrás)"
// @Param        to    query  string  false  "Hasta (RFC3339 o YYYY-MM-DD; default ahora)"
// @Success      200   {object}  dto.ConsumptionReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/consumption [get]
func (h *ReportHandler) Consumption(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	if orgID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	from, to, err := rangeParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Consumption(orgID, from, to)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to no puede ser anterior a from"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ConsumptionPDF godoc
// @Summary      Reporte de consumo del período en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        from  query  string  false  "Desde (RFC3339 o YYYY-MM-DD)"
// @Param        to    query  string  false  "Hasta (RFC3339 o YYYY-MM-DD)"
// @Success      200   {file}  byte
// @Router       /api/reports/consumption/pdf [get]
func (h *ReportHandler) ConsumptionPDF(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	if orgID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	from, to, err := rangeParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	rep, err := h.uc.Consumption(orgID, from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	pdfBytes, err := h.pdfGen.ConsumptionPDF(c.UserContext(), h.orgName(orgID), rep)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_ERROR", Message: err.Error()})
	}
	return sendPDF(c, "reporte-de-consumo.pdf", pdfBytes)
}

// orgName resuelve el nombre del negocio para el encabezado del PDF. Si la
// organización no se encuentra se usa un encabezado genérico, no se falla.
func (h *ReportHandler) orgName(orgID string) string {
	org, err := h.orgRepo.GetByID(orgID)
	if err != nil || org == nil {
		return "Inventario"
	}
	return org.Name
}

func growthParam(c *fiber.Ctx) (decimal.Decimal, error) {
	raw := c.Query("growth_pct")
	if raw == "" {
		return decimal.Zero, nil
	}
	growth, err := decimal.NewFromString(raw)
	if err != nil || growth.LessThan(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("growth_pct inválido")
	}
	return growth, nil
}

// rangeParams lee from/to. Defaults: últimos defaultConsumptionDays días.
func rangeParams(c *fiber.Ctx) (from, to time.Time, err error) {
	now := time.Now()
	from = now.AddDate(0, 0, -defaultConsumptionDays)
	to = now
	if raw := c.Query("from"); raw != "" {
		from, err = parseDate(raw)
		if err != nil {
			return from, to, fmt.Errorf("from debe ser RFC3339 o YYYY-MM-DD")
		}
	}
	if raw := c.Query("to"); raw != "" {
		to, err = parseDate(raw)
		if err != nil {
			return from, to, fmt.Errorf("to debe ser RFC3339 o YYYY-MM-DD")
		}
	}
	return from, to, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func sendPDF(c *fiber.Ctx, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
