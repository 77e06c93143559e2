package tx

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type TxRepository interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	CommitTx(tx *sqlx.Tx) error
	RollbackTx(tx *sqlx.Tx) error
}

type txRepo struct {
	db       *sqlx.DB
	lockWait time.Duration
}

// NewTxRepository returns a transaction factory. A positive lockWait bounds every row lock
// wait inside the transaction; MySQL reports the overrun as error 1205.
func NewTxRepository(db *sqlx.DB, lockWait time.Duration) TxRepository {
	return &txRepo{db: db, lockWait: lockWait}
}

func (r *txRepo) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	if secs := int(r.lockWait / time.Second); secs > 0 {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("SET SESSION innodb_lock_wait_timeout = %d", secs)); err != nil {
			_ = tx.Rollback()
			return nil, err
		}
	}
	return tx, nil
}

func (r *txRepo) CommitTx(tx *sqlx.Tx) error {
	return tx.Commit()
}

func (r *txRepo) RollbackTx(tx *sqlx.Tx) error {
	return tx.Rollback()
}
