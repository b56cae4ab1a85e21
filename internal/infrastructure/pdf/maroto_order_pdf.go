// Package pdf implementa la hoja de ruta (traveler) imprimible de una orden
// de fabricación: la hoja que acompaña al lote por la planta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Producto + SKU  │  N° Orden + Fechas               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA MATERIALES: Componente | SKU | Cant/ud | Total        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA RUTA: Paso | Centro | Estimado | Real | Estado        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FIRMAS: Operario / Supervisor                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

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
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Manufactura-api/internal/application/orders"
	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ orders.OrderPDFGenerator = (*MarotoOrderPDFGenerator)(nil)

// MarotoOrderPDFGenerator implementa orders.OrderPDFGenerator usando Maroto v2.
type MarotoOrderPDFGenerator struct{}

// NewMarotoOrderPDFGenerator construye el generador.
func NewMarotoOrderPDFGenerator() *MarotoOrderPDFGenerator { return &MarotoOrderPDFGenerator{} }

// GenerateOrderPDF genera la hoja de ruta y devuelve sus bytes. bom puede ser
// nil: la hoja se imprime sin la tabla de materiales.
func (g *MarotoOrderPDFGenerator) GenerateOrderPDF(
	_ context.Context,
	order *entity.ManufacturingOrder,
	bom *entity.BillOfMaterial,
	workOrders []*entity.WorkOrder,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orden de Fabricación", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if bom != nil && len(bom.Items) > 0 {
		m.AddRows(sectionTitle("MATERIALES REQUERIDOS"))
		m.AddRows(materialsHeaderRow())
		for _, r := range materialRows(bom, order.Quantity) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	}

	m.AddRows(sectionTitle("RUTA DE FABRICACIÓN"))
	m.AddRows(routingHeaderRow())
	for _, r := range routingRows(workOrders) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(signatureRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: producto + SKU (izq) y número de orden + fechas (der).
func headerRow(order *entity.ManufacturingOrder) core.Row {
	productName := "—"
	productSKU := "—"
	if order.Product != nil {
		productName = order.Product.Name
		productSKU = order.Product.SKU
	}

	dueDate := "—"
	if order.DueDate != nil {
		dueDate = order.DueDate.Format("02/01/2006")
	}

	return row.New(20).Add(
		col.New(7).Add(
			text.New(productName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("SKU: "+productSKU, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Cantidad a producir: %d", order.Quantity), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 15,
			}),
		),
		col.New(5).Add(
			text.New("ORDEN DE FABRICACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(shortID(order.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Entrega: "+dueDate, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

// materialsHeaderRow: cabecera de la tabla de materiales.
func materialsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Componente", 5, align.Left),
		h("SKU", 2, align.Left),
		h("Cant./ud", 2, align.Right),
		h("Total lote", 3, align.Right),
	)
}

// materialRows: una fila por línea de BOM, con el total escalado al lote.
func materialRows(bom *entity.BillOfMaterial, quantity int) []core.Row {
	qty := decimal.NewFromInt(int64(quantity))
	result := make([]core.Row, 0, len(bom.Items))
	for _, it := range bom.Items {
		name := it.ComponentProductID
		sku := "—"
		if it.Component != nil {
			name = it.Component.Name
			sku = it.Component.SKU
		}
		total := it.Quantity.Mul(qty)
		result = append(result, row.New(6).Add(
			col.New(5).Add(text.New(name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(sku, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
			col.New(2).Add(text.New(
				it.Quantity.String()+" "+it.Unit,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				total.String()+" "+it.Unit,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Style: fontstyle.Bold},
			)),
		))
	}
	return result
}

// routingHeaderRow: cabecera de la tabla de pasos de ruta.
func routingHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Paso", 4, align.Left),
		h("Centro de trabajo", 3, align.Left),
		h("Est. (min)", 2, align.Right),
		h("Real (min)", 2, align.Right),
		h("Estado", 1, align.Center),
	)
}

// routingRows: una fila por orden de trabajo, en orden de creación.
func routingRows(workOrders []*entity.WorkOrder) []core.Row {
	result := make([]core.Row, 0, len(workOrders))
	for i, w := range workOrders {
		actual := "—"
		if w.ActualMinutes > 0 || w.Status == entity.WorkOrderStatusCompleted {
			actual = strconv.Itoa(w.ActualMinutes)
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				fmt.Sprintf("%d. %s", i+1, w.Name),
				props.Text{Size: 8, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(w.WorkCenter, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
			col.New(2).Add(text.New(
				strconv.Itoa(w.EstimatedMinutes),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(actual, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(statusLabel(w.Status), props.Text{Size: 7, Align: align.Center, Top: 1})),
		))
	}
	return result
}

// signatureRow: espacios de firma para operario y supervisor.
func signatureRow() core.Row {
	sig := func(label string) core.Col {
		return col.New(6).Add(
			text.New("_______________________________", props.Text{
				Size: 9, Align: align.Center, Top: 10, Color: colorGray,
			}),
			text.New(label, props.Text{
				Size: 8, Align: align.Center, Top: 16, Color: colorGray,
			}),
		)
	}
	return row.New(22).Add(sig("Operario"), sig("Supervisor de planta"))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// shortID devuelve el primer segmento del UUID, suficiente para identificar
// la hoja en planta.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return strings.ToUpper(id[:i])
	}
	return strings.ToUpper(id)
}

func statusLabel(status string) string {
	switch status {
	case entity.WorkOrderStatusPending:
		return "Pend."
	case entity.WorkOrderStatusInProgress:
		return "En curso"
	case entity.WorkOrderStatusCompleted:
		return "OK"
	}
	return status
}
