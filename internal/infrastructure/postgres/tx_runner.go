package postgres

import (
	"context"
	"fmt"
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Sobre un pgx.Tx, Begin abre un savepoint.
type TxRunner struct {
	q Querier
}

// NewTxRunner construye el runner con el pool (o una tx).
func NewTxRunner(q Querier) *TxRunner {
	return &TxRunner{q: q}
}

// Run inicia una transacción, ejecuta fn con un Querier atado a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(tx Querier) error) error {
	tx, err := r.q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
