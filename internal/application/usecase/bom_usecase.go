package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Manufactura-api/internal/application/dto"
	"github.com/jhoicas/Manufactura-api/internal/domain"
	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

// BOMTxRunner corre fn contra un repositorio de BOMs ligado a una transacción:
// cabecera y líneas se persisten juntas o no se persisten.
type BOMTxRunner interface {
	RunBOM(ctx context.Context, fn func(bomRepo repository.BOMRepository) error) error
}

// BOMUseCase casos de uso de listas de materiales: navegador, detalle y alta.
type BOMUseCase struct {
	bomRepo     repository.BOMRepository
	productRepo repository.ProductRepository
	tx          BOMTxRunner
}

// NewBOMUseCase construye el caso de uso.
func NewBOMUseCase(bomRepo repository.BOMRepository, productRepo repository.ProductRepository, tx BOMTxRunner) *BOMUseCase {
	return &BOMUseCase{bomRepo: bomRepo, productRepo: productRepo, tx: tx}
}

// List devuelve el navegador de BOMs: cada fila con producto y conteo de líneas.
func (uc *BOMUseCase) List(page dto.PageRequest) (*dto.BOMListResponse, error) {
	page.DefaultPage()
	summaries, err := uc.bomRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BOMSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		item := dto.BOMSummaryResponse{
			ID:        s.Bom.ID,
			Name:      s.Bom.Name,
			Version:   s.Bom.Version,
			IsActive:  s.Bom.IsActive,
			ProductID: s.Bom.ProductID,
			ItemCount: s.ItemCount,
			CreatedAt: s.Bom.CreatedAt,
		}
		if s.Bom.Product != nil {
			item.ProductName = s.Bom.Product.Name
			item.ProductSKU = s.Bom.Product.SKU
		}
		items = append(items, item)
	}
	return &dto.BOMListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// GetActiveByProduct devuelve la BOM activa del producto con sus líneas, o nil
// si el producto no tiene BOM activa.
func (uc *BOMUseCase) GetActiveByProduct(productID string) (*dto.BOMResponse, error) {
	bom, err := uc.bomRepo.GetActiveByProduct(productID)
	if err != nil {
		return nil, err
	}
	if bom == nil {
		return nil, nil
	}
	return toBOMResponse(bom), nil
}

// Create crea una BOM con sus líneas en una sola transacción. El producto debe
// existir y cada línea necesita componente y cantidad positiva. Un producto
// solo admite una BOM activa: la segunda devuelve ErrDuplicate.
func (uc *BOMUseCase) Create(ctx context.Context, in dto.CreateBOMRequest) (*dto.BOMResponse, error) {
	if in.ProductID == "" || in.Name == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.ComponentID == "" || !it.Quantity.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	bom := &entity.BillOfMaterial{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Name:      in.Name,
		Version:   "1.0",
		IsActive:  true,
		CreatedAt: now,
	}
	items := make([]*entity.BomItem, 0, len(in.Items))
	for _, it := range in.Items {
		unit := it.Unit
		if unit == "" {
			unit = "unidad"
		}
		items = append(items, &entity.BomItem{
			ID:                 uuid.New().String(),
			BomID:              bom.ID,
			ComponentProductID: it.ComponentID,
			Quantity:           it.Quantity,
			Unit:               unit,
		})
	}

	err = uc.tx.RunBOM(ctx, func(bomRepo repository.BOMRepository) error {
		if err := bomRepo.Create(bom); err != nil {
			return err
		}
		return bomRepo.CreateItems(items)
	})
	if err != nil {
		return nil, err
	}

	bom.Items = make([]entity.BomItem, 0, len(items))
	for _, it := range items {
		bom.Items = append(bom.Items, *it)
	}
	return toBOMResponse(bom), nil
}

func toBOMResponse(bom *entity.BillOfMaterial) *dto.BOMResponse {
	resp := &dto.BOMResponse{
		ID:        bom.ID,
		ProductID: bom.ProductID,
		Name:      bom.Name,
		Version:   bom.Version,
		IsActive:  bom.IsActive,
		CreatedAt: bom.CreatedAt,
		Items:     make([]dto.BOMItemResponse, 0, len(bom.Items)),
	}
	for _, it := range bom.Items {
		item := dto.BOMItemResponse{
			ID:              it.ID,
			ComponentID:     it.ComponentProductID,
			QuantityPerUnit: it.Quantity,
			Unit:            it.Unit,
		}
		if it.Component != nil {
			item.ComponentName = it.Component.Name
			item.ComponentSKU = it.Component.SKU
		}
		resp.Items = append(resp.Items, item)
	}
	return resp
}
