package orders

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia.

type fakeOrderRepo struct {
	orders    map[string]*entity.ManufacturingOrder
	summaries []repository.OrderSummary
	createErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.ManufacturingOrder{}}
}

func (f *fakeOrderRepo) Create(o *entity.ManufacturingOrder) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetByID(id string) (*entity.ManufacturingOrder, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) List(statuses []string, limit, offset int) ([]repository.OrderSummary, error) {
	return f.summaries, nil
}

func (f *fakeOrderRepo) UpdateStatus(id, status string, updatedAt time.Time) error {
	if o, ok := f.orders[id]; ok {
		o.Status = status
		o.UpdatedAt = updatedAt
	}
	return nil
}

type fakeWorkOrderRepo struct {
	byID     map[string]*entity.WorkOrder
	byOrder  map[string][]*entity.WorkOrder
	rows     []repository.WorkOrderRow
	batchErr error
}

func newFakeWorkOrderRepo() *fakeWorkOrderRepo {
	return &fakeWorkOrderRepo{
		byID:    map[string]*entity.WorkOrder{},
		byOrder: map[string][]*entity.WorkOrder{},
	}
}

func (f *fakeWorkOrderRepo) CreateBatch(wos []*entity.WorkOrder) error {
	if f.batchErr != nil {
		return f.batchErr
	}
	for _, wo := range wos {
		cp := *wo
		f.byID[wo.ID] = &cp
		f.byOrder[wo.ManufacturingOrderID] = append(f.byOrder[wo.ManufacturingOrderID], &cp)
	}
	return nil
}

func (f *fakeWorkOrderRepo) GetByID(id string) (*entity.WorkOrder, error) {
	wo, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *wo
	return &cp, nil
}

func (f *fakeWorkOrderRepo) ListByOrder(orderID string) ([]*entity.WorkOrder, error) {
	return f.byOrder[orderID], nil
}

func (f *fakeWorkOrderRepo) List(status string, limit, offset int) ([]repository.WorkOrderRow, error) {
	return f.rows, nil
}

func (f *fakeWorkOrderRepo) Update(wo *entity.WorkOrder) error {
	cp := *wo
	f.byID[wo.ID] = &cp
	return nil
}

type fakeBOMRepo struct {
	active map[string]*entity.BillOfMaterial
}

func newFakeBOMRepo() *fakeBOMRepo {
	return &fakeBOMRepo{active: map[string]*entity.BillOfMaterial{}}
}

func (f *fakeBOMRepo) GetActiveByProduct(productID string) (*entity.BillOfMaterial, error) {
	return f.active[productID], nil
}

func (f *fakeBOMRepo) List(limit, offset int) ([]repository.BOMSummary, error) { return nil, nil }
func (f *fakeBOMRepo) Create(bom *entity.BillOfMaterial) error                 { return nil }
func (f *fakeBOMRepo) CreateItems(items []*entity.BomItem) error               { return nil }

type fakeLedgerRepo struct {
	sums  map[string]decimal.Decimal
	reads []string // orden de consulta, por si el test lo verifica
}

func (f *fakeLedgerRepo) Create(e *entity.StockLedgerEntry) error { return nil }

func (f *fakeLedgerRepo) SumByProduct(productID string) (decimal.Decimal, error) {
	f.reads = append(f.reads, productID)
	return f.sums[productID], nil
}

func (f *fakeLedgerRepo) ListByProduct(productID string) ([]*entity.StockLedgerEntry, error) {
	return nil, nil
}
func (f *fakeLedgerRepo) ListAll(limit, offset int) ([]*entity.StockLedgerEntry, error) {
	return nil, nil
}
func (f *fakeLedgerRepo) Levels() ([]repository.StockLevel, error) { return nil, nil }

// fakeTxRunner pasa los fakes al callback y simula el rollback: si fn falla,
// restaura el estado previo de los repositorios.
type fakeTxRunner struct {
	orderRepo     *fakeOrderRepo
	workOrderRepo *fakeWorkOrderRepo
	bomRepo       *fakeBOMRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.ManufacturingOrderRepository,
	workOrderRepo repository.WorkOrderRepository,
	bomRepo repository.BOMRepository,
) error) error {
	ordersBefore := make(map[string]*entity.ManufacturingOrder, len(f.orderRepo.orders))
	for k, v := range f.orderRepo.orders {
		ordersBefore[k] = v
	}
	wosBefore := make(map[string]*entity.WorkOrder, len(f.workOrderRepo.byID))
	for k, v := range f.workOrderRepo.byID {
		wosBefore[k] = v
	}

	if err := fn(f.orderRepo, f.workOrderRepo, f.bomRepo); err != nil {
		f.orderRepo.orders = ordersBefore
		f.workOrderRepo.byID = wosBefore
		return err
	}
	return nil
}
