package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Manufactura-api/internal/application/dto"
	"github.com/jhoicas/Manufactura-api/internal/domain"
	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.byID[p.ID] = p; return nil }

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) { return f.byID[id], nil }

func (f *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range f.byID {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, nil
}

type fakeBOMRepo struct {
	active    map[string]*entity.BillOfMaterial
	items     []*entity.BomItem
	createErr error
}

func (f *fakeBOMRepo) GetActiveByProduct(productID string) (*entity.BillOfMaterial, error) {
	return f.active[productID], nil
}

func (f *fakeBOMRepo) List(limit, offset int) ([]repository.BOMSummary, error) {
	var out []repository.BOMSummary
	for _, b := range f.active {
		out = append(out, repository.BOMSummary{Bom: *b, ItemCount: len(b.Items)})
	}
	return out, nil
}

func (f *fakeBOMRepo) Create(bom *entity.BillOfMaterial) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.active[bom.ProductID] != nil {
		return domain.ErrDuplicate
	}
	f.active[bom.ProductID] = bom
	return nil
}

func (f *fakeBOMRepo) CreateItems(items []*entity.BomItem) error {
	f.items = append(f.items, items...)
	return nil
}

type fakeBOMTx struct {
	repo *fakeBOMRepo
}

func (f *fakeBOMTx) RunBOM(_ context.Context, fn func(repository.BOMRepository) error) error {
	return fn(f.repo)
}

func newBOMUC(t *testing.T) (*BOMUseCase, *fakeBOMRepo, *fakeProductRepo) {
	t.Helper()
	bomRepo := &fakeBOMRepo{active: map[string]*entity.BillOfMaterial{}}
	productRepo := &fakeProductRepo{byID: map[string]*entity.Product{
		"prod-1": {ID: "prod-1", Name: "Mesa de roble", SKU: "MES-001"},
		"comp-1": {ID: "comp-1", Name: "Tablero", SKU: "TAB-001"},
	}}
	return NewBOMUseCase(bomRepo, productRepo, &fakeBOMTx{repo: bomRepo}), bomRepo, productRepo
}

func TestBOMUseCase_Create(t *testing.T) {
	uc, bomRepo, _ := newBOMUC(t)

	resp, err := uc.Create(context.Background(), dto.CreateBOMRequest{
		ProductID: "prod-1",
		Name:      "Mesa estándar",
		Items: []dto.CreateBOMItemRequest{
			{ComponentID: "comp-1", Quantity: decimal.NewFromInt(4), Unit: "unidad"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "1.0", resp.Version)
	assert.True(t, resp.IsActive)
	require.Len(t, resp.Items, 1)
	assert.Len(t, bomRepo.items, 1)
}

func TestBOMUseCase_Create_Invalida(t *testing.T) {
	uc, _, _ := newBOMUC(t)

	_, err := uc.Create(context.Background(), dto.CreateBOMRequest{
		ProductID: "prod-1", Name: "Sin líneas",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateBOMRequest{
		ProductID: "prod-1", Name: "Cantidad cero",
		Items: []dto.CreateBOMItemRequest{{ComponentID: "comp-1", Quantity: decimal.Zero}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateBOMRequest{
		ProductID: "no-existe", Name: "Producto fantasma",
		Items: []dto.CreateBOMItemRequest{{ComponentID: "comp-1", Quantity: decimal.NewFromInt(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBOMUseCase_Create_ActivaDuplicada(t *testing.T) {
	uc, _, _ := newBOMUC(t)
	req := dto.CreateBOMRequest{
		ProductID: "prod-1", Name: "Mesa estándar",
		Items: []dto.CreateBOMItemRequest{{ComponentID: "comp-1", Quantity: decimal.NewFromInt(4)}},
	}

	_, err := uc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductUseCase_Create_SKUDuplicado(t *testing.T) {
	_, _, productRepo := newBOMUC(t)
	uc := NewProductUseCase(productRepo)

	_, err := uc.Create(dto.CreateProductRequest{Name: "Otra mesa", SKU: "MES-001"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	resp, err := uc.Create(dto.CreateProductRequest{Name: "Silla", SKU: "SIL-001"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
}

func TestProductUseCase_GetByID_NoExiste(t *testing.T) {
	_, _, productRepo := newBOMUC(t)
	uc := NewProductUseCase(productRepo)

	resp, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, resp)
}
