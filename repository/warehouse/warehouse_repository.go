package warehouse

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/drims/constant"
	"github.com/muhammadheryan/drims/model"
	"github.com/shopspring/decimal"
)

type WarehouseRepository interface {
	GetWarehouseForUpdateTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64) (*model.Warehouse, error)
	CheckReservedStockTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64) (decimal.Decimal, error)
	UpdateWarehouseStatusTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64, status constant.WarehouseStatus, actor string, at time.Time) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewWarehouseRepository(conn *sqlx.DB) WarehouseRepository {
	return &SQL{conn: conn}
}

func (r *SQL) GetWarehouseForUpdateTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64) (*model.Warehouse, error) {
	var wh model.Warehouse
	q := "SELECT warehouse_id, warehouse_name, status_code FROM warehouse WHERE warehouse_id = ? FOR UPDATE"
	if err := tx.QueryRowxContext(ctx, q, warehouseID).StructScan(&wh); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &wh, nil
}

// CheckReservedStockTx locks the warehouse's inventory rows, so no reservation can land
// between the check and the status change.
func (r *SQL) CheckReservedStockTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64) (decimal.Decimal, error) {
	var total decimal.Decimal
	q := "SELECT COALESCE(SUM(reserved_qty),0) FROM inventory WHERE inventory_id = ? FOR UPDATE"
	if err := tx.GetContext(ctx, &total, q, warehouseID); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (r *SQL) UpdateWarehouseStatusTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64, status constant.WarehouseStatus, actor string, at time.Time) error {
	res, err := tx.ExecContext(ctx, "UPDATE warehouse SET status_code = ?, update_by_id = ?, update_dtime = ? WHERE warehouse_id = ?", status, actor, at, warehouseID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
