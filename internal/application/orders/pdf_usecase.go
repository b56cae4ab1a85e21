package orders

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Manufactura-api/internal/domain"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

// PDFUseCase genera la hoja de ruta (traveler) imprimible de una orden:
// cabecera, requerimientos de material según la BOM activa y pasos de ruta.
type PDFUseCase struct {
	orderRepo     repository.ManufacturingOrderRepository
	workOrderRepo repository.WorkOrderRepository
	bomRepo       repository.BOMRepository
	generator     OrderPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	orderRepo repository.ManufacturingOrderRepository,
	workOrderRepo repository.WorkOrderRepository,
	bomRepo repository.BOMRepository,
	generator OrderPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		orderRepo:     orderRepo,
		workOrderRepo: workOrderRepo,
		bomRepo:       bomRepo,
		generator:     generator,
	}
}

// DownloadOrderPDF recupera orden, BOM activa y pasos, y genera el PDF.
// Retorna (pdfBytes, filename, nil) o domain.ErrNotFound si la orden no existe.
func (uc *PDFUseCase) DownloadOrderPDF(ctx context.Context, orderID string) ([]byte, string, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener orden: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}
	workOrders, err := uc.workOrderRepo.ListByOrder(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener pasos: %w", err)
	}
	// La BOM puede no existir; la hoja se imprime igualmente sin materiales.
	bom, err := uc.bomRepo.GetActiveByProduct(order.ProductID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener BOM: %w", err)
	}

	pdfBytes, err := uc.generator.GenerateOrderPDF(ctx, order, bom, workOrders)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar: %w", err)
	}
	// El dashboard muestra "MO #<primer segmento del uuid>"; el archivo usa lo mismo.
	short := orderID
	if i := strings.IndexByte(orderID, '-'); i > 0 {
		short = orderID[:i]
	}
	return pdfBytes, fmt.Sprintf("orden_%s.pdf", short), nil
}
