package orders

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Manufactura-api/internal/application/dto"
	"github.com/jhoicas/Manufactura-api/internal/domain"
	"github.com/jhoicas/Manufactura-api/internal/domain/manufacturing"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

// AvailabilityUseCase verificación de materiales contra el stock derivado del
// libro. Solo lectura, sin reserva: dos verificaciones concurrentes pueden ver
// ambas "disponible" y sobrecomprometer stock; es un riesgo aceptado del negocio.
type AvailabilityUseCase struct {
	bomRepo    repository.BOMRepository
	ledgerRepo repository.StockLedgerRepository
}

// NewAvailabilityUseCase construye el caso de uso.
func NewAvailabilityUseCase(bomRepo repository.BOMRepository, ledgerRepo repository.StockLedgerRepository) *AvailabilityUseCase {
	return &AvailabilityUseCase{bomRepo: bomRepo, ledgerRepo: ledgerRepo}
}

// Check calcula, por componente de la BOM activa, requerido = cantidad por
// unidad × unidades, y lo compara contra el stock actual de cada componente.
// El stock se consulta secuencialmente por componente; la corrección no
// depende del orden de lectura. Sin BOM activa devuelve ErrNotFound.
func (uc *AvailabilityUseCase) Check(in dto.CheckAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	bom, err := uc.bomRepo.GetActiveByProduct(in.ProductID)
	if err != nil {
		return nil, err
	}
	if bom == nil {
		return nil, domain.ErrNotFound
	}

	items := make([]manufacturing.ComponentRequirement, 0, len(bom.Items))
	stocks := make(map[string]decimal.Decimal, len(bom.Items))
	for _, line := range bom.Items {
		name := line.ComponentProductID
		if line.Component != nil {
			name = line.Component.Name
		}
		items = append(items, manufacturing.ComponentRequirement{
			ComponentProductID: line.ComponentProductID,
			Name:               name,
			QuantityPerUnit:    line.Quantity,
		})
		stock, err := uc.ledgerRepo.SumByProduct(line.ComponentProductID)
		if err != nil {
			return nil, err
		}
		stocks[line.ComponentProductID] = stock
	}

	result := manufacturing.CheckAvailability(items, in.Quantity, stocks)
	missing := make([]dto.MissingItemResponse, 0, len(result.MissingItems))
	for _, m := range result.MissingItems {
		missing = append(missing, dto.MissingItemResponse{
			Name:      m.Name,
			Required:  m.Required,
			Available: m.Available,
		})
	}
	return &dto.AvailabilityResponse{Available: result.Available, MissingItems: missing}, nil
}
