package report

import (
	"context"

	"github.com/jhoicas/restostock-api/internal/application/dto"
)

// PDFGenerator genera los reportes exportables. Consumidor puro de los DTOs
// ya calculados; ninguna lógica del núcleo vive aguas abajo de este puerto.
type PDFGenerator interface {
	ShoppingListPDF(ctx context.Context, orgName string, list *dto.ShoppingListResponse) ([]byte, error)
	ConsumptionPDF(ctx context.Context, orgName string, report *dto.ConsumptionReportResponse) ([]byte, error)
}
