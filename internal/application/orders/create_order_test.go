package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Manufactura-api/internal/application/dto"
	"github.com/jhoicas/Manufactura-api/internal/domain"
	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testBOM(productID string) *entity.BillOfMaterial {
	return &entity.BillOfMaterial{
		ID:        "bom-1",
		ProductID: productID,
		Name:      "BOM estándar",
		Version:   "1.0",
		IsActive:  true,
		Items: []entity.BomItem{
			{
				ID:                 "item-1",
				BomID:              "bom-1",
				ComponentProductID: "comp-a",
				Quantity:           decimal.NewFromInt(2),
				Unit:               "und",
				Component:          &entity.Product{ID: "comp-a", Name: "componentA", SKU: "CA"},
			},
		},
	}
}

// Con BOM activa se derivan exactamente los cuatro pasos de la ruta estándar,
// todos pending, dentro de la misma unidad transaccional.
func TestCreateOrder_DerivaRutaEstandar(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	woRepo := newFakeWorkOrderRepo()
	bomRepo := newFakeBOMRepo()
	bomRepo.active["prod-1"] = testBOM("prod-1")
	uc := NewCreateOrderUseCase(&fakeTxRunner{orderRepo: orderRepo, workOrderRepo: woRepo, bomRepo: bomRepo})
	uc.now = fixedClock(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))

	out, err := uc.Create(context.Background(), dto.CreateOrderRequest{ProductID: "prod-1", Quantity: 5})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, out.Status)
	assert.Equal(t, 5, out.Quantity)
	require.Len(t, out.WorkOrders, 4)
	names := []string{out.WorkOrders[0].Name, out.WorkOrders[1].Name, out.WorkOrders[2].Name, out.WorkOrders[3].Name}
	assert.Equal(t, []string{"Material Staging", "Assembly", "Quality Inspection", "Packaging"}, names)
	for _, wo := range out.WorkOrders {
		assert.Equal(t, entity.WorkOrderStatusPending, wo.Status)
		assert.Zero(t, wo.ActualMinutes)
	}
	assert.Len(t, woRepo.byOrder[out.ID], 4)
}

// Producto sin BOM activa: la orden se crea igualmente, con cero órdenes de trabajo.
func TestCreateOrder_SinBOMActivaCeroPasos(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	woRepo := newFakeWorkOrderRepo()
	uc := NewCreateOrderUseCase(&fakeTxRunner{orderRepo: orderRepo, workOrderRepo: woRepo, bomRepo: newFakeBOMRepo()})

	out, err := uc.Create(context.Background(), dto.CreateOrderRequest{ProductID: "prod-sin-bom", Quantity: 3})

	require.NoError(t, err)
	assert.Empty(t, out.WorkOrders)
	assert.Zero(t, out.WorkOrderCount)
	require.Len(t, orderRepo.orders, 1)
	assert.Empty(t, woRepo.byID)
}

func TestCreateOrder_EntradaInvalida(t *testing.T) {
	uc := NewCreateOrderUseCase(&fakeTxRunner{orderRepo: newFakeOrderRepo(), workOrderRepo: newFakeWorkOrderRepo(), bomRepo: newFakeBOMRepo()})

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{ProductID: "", Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateOrderRequest{ProductID: "prod-1", Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	due := start.Add(-24 * time.Hour)
	_, err = uc.Create(context.Background(), dto.CreateOrderRequest{ProductID: "prod-1", Quantity: 1, StartDate: &start, DueDate: &due})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Si la inserción de los pasos falla, la orden tampoco queda aplicada:
// una sola unidad de trabajo, sin la ventana de inconsistencia original.
func TestCreateOrder_FalloEnPasosRevierteLaOrden(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	woRepo := newFakeWorkOrderRepo()
	woRepo.batchErr = errors.New("insert work_orders: conexión perdida")
	bomRepo := newFakeBOMRepo()
	bomRepo.active["prod-1"] = testBOM("prod-1")
	uc := NewCreateOrderUseCase(&fakeTxRunner{orderRepo: orderRepo, workOrderRepo: woRepo, bomRepo: bomRepo})

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{ProductID: "prod-1", Quantity: 2})

	require.Error(t, err)
	assert.Empty(t, orderRepo.orders, "la orden no debe persistir si los pasos fallan")
	assert.Empty(t, woRepo.byID)
}
