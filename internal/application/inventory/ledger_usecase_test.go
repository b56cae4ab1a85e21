package inventory

import (
	"sort"
	"strings"
	"testing"
	"time"

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

type fakeLedgerRepo struct {
	entries []*entity.StockLedgerEntry
}

func (f *fakeLedgerRepo) Create(e *entity.StockLedgerEntry) error {
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeLedgerRepo) SumByProduct(productID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range f.entries {
		if e.ProductID == productID {
			total = total.Add(e.QuantityChange)
		}
	}
	return total, nil
}

func (f *fakeLedgerRepo) ListByProduct(productID string) ([]*entity.StockLedgerEntry, error) {
	var out []*entity.StockLedgerEntry
	for _, e := range f.entries {
		if e.ProductID == productID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeLedgerRepo) ListAll(limit, offset int) ([]*entity.StockLedgerEntry, error) {
	out := make([]*entity.StockLedgerEntry, len(f.entries))
	copy(out, f.entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeLedgerRepo) Levels() ([]repository.StockLevel, error) {
	sums := map[string]decimal.Decimal{}
	for _, e := range f.entries {
		sums[e.ProductID] = sums[e.ProductID].Add(e.QuantityChange)
	}
	var out []repository.StockLevel
	for id, qty := range sums {
		out = append(out, repository.StockLevel{ProductID: id, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func newLedgerUC(t *testing.T) (*LedgerUseCase, *fakeLedgerRepo, *fakeProductRepo) {
	t.Helper()
	ledger := &fakeLedgerRepo{}
	products := &fakeProductRepo{byID: map[string]*entity.Product{
		"prod-1": {ID: "prod-1", Name: "Mesa de roble", SKU: "MES-001"},
		"prod-2": {ID: "prod-2", Name: "Silla de roble", SKU: "SIL-001"},
	}}
	uc := NewLedgerUseCase(ledger, products)
	uc.now = func() time.Time { return time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC) }
	return uc, ledger, products
}

func seedEntry(repo *fakeLedgerRepo, productID string, change int64, reason string, at time.Time) {
	repo.entries = append(repo.entries, &entity.StockLedgerEntry{
		ID:             reason,
		ProductID:      productID,
		QuantityChange: decimal.NewFromInt(change),
		Reason:         reason,
		CreatedAt:      at,
		Product:        &entity.Product{ID: productID, Name: "Mesa de roble", SKU: "MES-001"},
	})
}

func TestLedgerUseCase_Register(t *testing.T) {
	uc, ledger, _ := newLedgerUC(t)

	resp, err := uc.Register(dto.RegisterEntryRequest{
		ProductID:      "prod-1",
		QuantityChange: decimal.NewFromInt(50),
		Reason:         "Recepción inicial",
	})
	require.NoError(t, err)
	assert.Equal(t, "Mesa de roble", resp.ProductName)
	assert.True(t, resp.QuantityChange.Equal(decimal.NewFromInt(50)))
	assert.Len(t, ledger.entries, 1)
}

func TestLedgerUseCase_Register_Invalido(t *testing.T) {
	uc, _, _ := newLedgerUC(t)

	_, err := uc.Register(dto.RegisterEntryRequest{ProductID: "prod-1", Reason: "ajuste"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(dto.RegisterEntryRequest{
		ProductID:      "no-existe",
		QuantityChange: decimal.NewFromInt(5),
		Reason:         "ajuste",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLedgerUseCase_List_SaldoCorrido(t *testing.T) {
	uc, ledger, _ := newLedgerUC(t)
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	seedEntry(ledger, "prod-1", 100, "recepción", base)
	seedEntry(ledger, "prod-1", -30, "consumo", base.Add(time.Hour))
	seedEntry(ledger, "prod-1", 10, "devolución", base.Add(2*time.Hour))
	seedEntry(ledger, "prod-2", 7, "otro producto", base.Add(3*time.Hour))

	list, err := uc.List("prod-1", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list.Items, 3)

	// Más reciente primero, con su saldo corrido.
	assert.Equal(t, "devolución", list.Items[0].Reason)
	require.NotNil(t, list.Items[0].RunningBalance)
	assert.True(t, list.Items[0].RunningBalance.Equal(decimal.NewFromInt(80)))
	assert.True(t, list.Items[1].RunningBalance.Equal(decimal.NewFromInt(70)))
	assert.True(t, list.Items[2].RunningBalance.Equal(decimal.NewFromInt(100)))
}

func TestLedgerUseCase_List_TodosSinSaldo(t *testing.T) {
	uc, ledger, _ := newLedgerUC(t)
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	seedEntry(ledger, "prod-1", 100, "recepción", base)
	seedEntry(ledger, "prod-2", 7, "recepción sillas", base.Add(time.Hour))

	list, err := uc.List("all", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "recepción sillas", list.Items[0].Reason)
	assert.Nil(t, list.Items[0].RunningBalance)
	assert.Nil(t, list.Items[1].RunningBalance)
}

func TestLedgerUseCase_Levels_StockBajo(t *testing.T) {
	uc, ledger, _ := newLedgerUC(t)
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	seedEntry(ledger, "prod-1", 9, "poco stock", base)
	seedEntry(ledger, "prod-2", 10, "justo en el umbral", base)

	levels, err := uc.Levels()
	require.NoError(t, err)
	require.Len(t, levels.Items, 2)
	assert.True(t, levels.Items[0].LowStock)  // 9 < 10
	assert.False(t, levels.Items[1].LowStock) // 10 no cuenta como alerta
}

func TestLedgerUseCase_ExportCSV(t *testing.T) {
	uc, ledger, _ := newLedgerUC(t)
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	seedEntry(ledger, "prod-1", 100, "recepción", base)
	seedEntry(ledger, "prod-1", -30, "consumo", base.Add(time.Hour))

	out, err := uc.ExportCSV("prod-1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Product,Type,Change,Reason,Reference", lines[0])
	assert.Equal(t, "2026-03-01 09:00,Mesa de roble,OUT,-30,consumo,", lines[1])
	assert.Equal(t, "2026-03-01 08:00,Mesa de roble,IN,100,recepción,", lines[2])
}
