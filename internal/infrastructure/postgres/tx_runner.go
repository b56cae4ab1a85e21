package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Manufactura-api/internal/application/orders"
	"github.com/jhoicas/Manufactura-api/internal/application/usecase"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

// Ensure TxRunner implements orders.TxRunner and usecase.BOMTxRunner.
var _ orders.TxRunner = (*TxRunner)(nil)
var _ usecase.BOMTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Lo usa la creación de órdenes: orden y lote de órdenes
// de trabajo se persisten juntas o ninguna.
func (r *TxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.ManufacturingOrderRepository,
	workOrderRepo repository.WorkOrderRepository,
	bomRepo repository.BOMRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewManufacturingOrderRepository(tx)
	workOrderRepo := NewWorkOrderRepository(tx)
	bomRepo := NewBOMRepository(tx)

	if err := fn(orderRepo, workOrderRepo, bomRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunBOM inicia una transacción con el repo de BOMs (cabecera + líneas en un alta).
func (r *TxRunner) RunBOM(ctx context.Context, fn func(bomRepo repository.BOMRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewBOMRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
