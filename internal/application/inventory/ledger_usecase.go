// Package inventory contiene los casos de uso del libro de stock: registro de
// movimientos, listado con saldo corrido, niveles agregados y exportación CSV.
package inventory

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Manufactura-api/internal/application/dto"
	"github.com/jhoicas/Manufactura-api/internal/domain"
	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
	"github.com/jhoicas/Manufactura-api/internal/domain/manufacturing"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

// LedgerUseCase casos de uso del libro de stock (append-only).
type LedgerUseCase struct {
	ledgerRepo  repository.StockLedgerRepository
	productRepo repository.ProductRepository
	now         func() time.Time
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(ledgerRepo repository.StockLedgerRepository, productRepo repository.ProductRepository) *LedgerUseCase {
	return &LedgerUseCase{ledgerRepo: ledgerRepo, productRepo: productRepo, now: time.Now}
}

// Register agrega un movimiento al libro. El cambio debe ser distinto de cero;
// el libro nunca se edita ni se borra.
func (uc *LedgerUseCase) Register(in dto.RegisterEntryRequest) (*dto.LedgerEntryResponse, error) {
	if in.ProductID == "" || in.QuantityChange.IsZero() || in.Reason == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	entry := &entity.StockLedgerEntry{
		ID:             uuid.New().String(),
		ProductID:      in.ProductID,
		QuantityChange: in.QuantityChange,
		Reason:         in.Reason,
		CreatedAt:      uc.now(),
	}
	if err := uc.ledgerRepo.Create(entry); err != nil {
		return nil, err
	}
	return &dto.LedgerEntryResponse{
		ID:             entry.ID,
		ProductID:      entry.ProductID,
		ProductName:    product.Name,
		ProductSKU:     product.SKU,
		QuantityChange: entry.QuantityChange,
		Reason:         entry.Reason,
		CreatedAt:      entry.CreatedAt,
	}, nil
}

// List devuelve el libro más reciente primero. Con filtro de producto trae el
// libro completo de ese producto y calcula su saldo corrido (suma prefija en
// orden ascendente, presentada descendente); sin filtro el saldo corrido se
// omite porque mezclado entre productos no significa nada.
func (uc *LedgerUseCase) List(productID string, page dto.PageRequest) (*dto.LedgerListResponse, error) {
	page.DefaultPage()
	if productID == "" || productID == "all" {
		entries, err := uc.ledgerRepo.ListAll(page.Limit, page.Offset)
		if err != nil {
			return nil, err
		}
		return &dto.LedgerListResponse{
			Items: toEntryResponses(entries, nil),
			Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
		}, nil
	}

	entries, err := uc.ledgerRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	changes := make([]decimal.Decimal, len(entries))
	for i, e := range entries {
		changes[i] = e.QuantityChange
	}
	balances := manufacturing.RunningBalance(changes)

	// Presentación: más reciente primero.
	reverse(entries)
	reverseDecimals(balances)

	return &dto.LedgerListResponse{
		Items: toEntryResponses(entries, balances),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(entries)},
	}, nil
}

// CurrentStock stock actual del producto: Σ quantity_change.
func (uc *LedgerUseCase) CurrentStock(productID string) (decimal.Decimal, error) {
	if productID == "" {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return uc.ledgerRepo.SumByProduct(productID)
}

// Levels stock agregado por producto, con marca de stock bajo.
func (uc *LedgerUseCase) Levels() (*dto.StockLevelsResponse, error) {
	levels, err := uc.ledgerRepo.Levels()
	if err != nil {
		return nil, err
	}
	threshold := decimal.NewFromInt(manufacturing.LowStockThreshold)
	items := make([]dto.StockLevelResponse, 0, len(levels))
	for _, lv := range levels {
		items = append(items, dto.StockLevelResponse{
			ProductID:   lv.ProductID,
			ProductName: lv.ProductName,
			ProductSKU:  lv.ProductSKU,
			Quantity:    lv.Quantity,
			LowStock:    lv.Quantity.LessThan(threshold),
		})
	}
	return &dto.StockLevelsResponse{Items: items}, nil
}

// ExportCSV genera el CSV de la vista del libro: Date, Product, Type (IN/OUT),
// Change, Reason, Reference. Reference queda vacío: hoy la referencia va
// implícita en el reason.
func (uc *LedgerUseCase) ExportCSV(productID string) ([]byte, error) {
	list, err := uc.List(productID, dto.PageRequest{Limit: exportLimit})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Date", "Product", "Type", "Change", "Reason", "Reference"}); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	for _, e := range list.Items {
		direction := "IN"
		if e.QuantityChange.IsNegative() {
			direction = "OUT"
		}
		record := []string{
			e.CreatedAt.Format("2006-01-02 15:04"),
			e.ProductName,
			direction,
			e.QuantityChange.String(),
			e.Reason,
			"",
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("export csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	return buf.Bytes(), nil
}

const exportLimit = 10000

func toEntryResponses(entries []*entity.StockLedgerEntry, balances []decimal.Decimal) []dto.LedgerEntryResponse {
	items := make([]dto.LedgerEntryResponse, 0, len(entries))
	for i, e := range entries {
		item := dto.LedgerEntryResponse{
			ID:             e.ID,
			ProductID:      e.ProductID,
			QuantityChange: e.QuantityChange,
			Reason:         e.Reason,
			CreatedAt:      e.CreatedAt,
		}
		if e.Product != nil {
			item.ProductName = e.Product.Name
			item.ProductSKU = e.Product.SKU
		}
		if balances != nil {
			b := balances[i]
			item.RunningBalance = &b
		}
		items = append(items, item)
	}
	return items
}

func reverse(entries []*entity.StockLedgerEntry) {
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
}

func reverseDecimals(ds []decimal.Decimal) {
	for i, j := 0, len(ds)-1; i < j; i, j = i+1, j-1 {
		ds[i], ds[j] = ds[j], ds[i]
	}
}
