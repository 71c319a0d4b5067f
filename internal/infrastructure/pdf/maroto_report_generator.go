// Package pdf genera los reportes exportables en PDF con Maroto v2.
//
// Layout de la página A4 (ambos reportes comparten la estructura):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  Título + Fecha              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: una fila por producto                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES                                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	marotoentity "github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/restostock-api/internal/application/dto"
	"github.com/jhoicas/restostock-api/internal/application/report"
	"github.com/jhoicas/restostock-api/internal/domain/metrics"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 96, Blue: 57}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorUrgent  = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorHigh    = &props.Color{Red: 200, Green: 120, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ report.PDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// ShoppingListPDF genera el PDF de la lista de compras sugerida.
func (g *MarotoReportGenerator) ShoppingListPDF(
	_ context.Context,
	orgName string,
	list *dto.ShoppingListResponse,
) ([]byte, error) {
	m := maroto.New(reportConfig("Lista de Compras"))

	m.AddRows(headerRow(orgName, "LISTA DE COMPRAS SUGERIDA"))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(shoppingHeaderRow())
	for _, item := range list.Items {
		m.AddRows(shoppingItemRow(item))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow("Costo total estimado:", "$"+list.TotalEstimatedCost.StringFixed(2)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar lista de compras: %w", err)
	}
	return doc.GetBytes(), nil
}

// ConsumptionPDF genera el PDF del reporte de consumo del período.
func (g *MarotoReportGenerator) ConsumptionPDF(
	_ context.Context,
	orgName string,
	rep *dto.ConsumptionReportResponse,
) ([]byte, error) {
	m := maroto.New(reportConfig("Reporte de Consumo"))

	m.AddRows(headerRow(orgName, "REPORTE DE CONSUMO"))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(consumptionHeaderRow())
	for _, item := range rep.Items {
		m.AddRows(consumptionItemRow(item))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow("Costo total consumido:", "$"+rep.TotalCost.StringFixed(2)))
	m.AddRows(summaryRow(rep))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte de consumo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func reportConfig(title string) *marotoentity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
}

// headerRow: nombre del negocio (izq) y título + fecha de emisión (der).
func headerRow(orgName, title string) core.Row {
	fecha := time.Now().Format("02/01/2006")
	return row.New(16).Add(
		col.New(7).Add(
			text.New(orgName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func shoppingHeaderRow() core.Row {
	return row.New(8).Add(
		tableHeader("Producto", 4, align.Left),
		tableHeader("Stock", 2, align.Right),
		tableHeader("Mínimo", 2, align.Right),
		tableHeader("Comprar", 2, align.Right),
		tableHeader("Costo est.", 2, align.Right),
	)
}

func shoppingItemRow(item dto.ShoppingListItemDTO) core.Row {
	nameColor := colorForUrgency(item.Urgency)
	return row.New(7).Add(
		col.New(4).Add(text.New(item.Name, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1, Color: nameColor,
		})),
		cell(item.CurrentStock.String()+" "+item.Unit, 2),
		cell(item.MinimumStock.String()+" "+item.Unit, 2),
		cell(item.SuggestedQuantity.String()+" "+item.Unit, 2),
		cell("$"+item.EstimatedCost.StringFixed(2), 2),
	)
}

func consumptionHeaderRow() core.Row {
	return row.New(8).Add(
		tableHeader("Producto", 5, align.Left),
		tableHeader("Cantidad", 2, align.Right),
		tableHeader("Costo", 3, align.Right),
		tableHeader("%", 2, align.Right),
	)
}

func consumptionItemRow(item dto.ConsumptionItemDTO) core.Row {
	return row.New(7).Add(
		col.New(5).Add(text.New(item.Name, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		cell(item.Quantity.String()+" "+item.Unit, 2),
		cell("$"+item.Cost.StringFixed(2), 3),
		cell(item.Percentage.StringFixed(2)+"%", 2),
	)
}

// totalRow: etiqueta + valor destacados, alineados a la derecha.
func totalRow(label, value string) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New(value, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// summaryRow: totales valorizados del período (entradas, salidas, pérdidas).
func summaryRow(rep *dto.ConsumptionReportResponse) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(
			fmt.Sprintf("Entradas: $%s   |   Salidas: $%s   |   Pérdidas: $%s",
				rep.TotalValueIn.StringFixed(2),
				rep.TotalValueOut.StringFixed(2),
				rep.TotalValueLost.StringFixed(2),
			),
			props.Text{Size: 8, Align: align.Right, Top: 2, Color: colorGray},
		)),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func tableHeader(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorPrimary, Top: 2, Left: 1, Right: 1,
	}))
}

func cell(value string, size int) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: align.Right, Top: 1, Right: 1,
	}))
}

func colorForUrgency(urgency string) *props.Color {
	switch urgency {
	case metrics.UrgencyUrgent:
		return colorUrgent
	case metrics.UrgencyHigh:
		return colorHigh
	default:
		return nil
	}
}
