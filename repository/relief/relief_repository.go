package relief

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/drims/model"
	"github.com/muhammadheryan/drims/repository/guard"
)

// ReliefRepository covers relief packages, their item rows and the request they fill.
// Package item rows are never deleted.
type ReliefRepository interface {
	GetPackageForUpdateTx(ctx context.Context, tx *sqlx.Tx, packageID uint64) (*model.ReliefPackage, error)
	UpdatePackageTx(ctx context.Context, tx *sqlx.Tx, p *model.ReliefPackage) error

	GetPackageItems(ctx context.Context, packageID uint64) ([]model.ReliefPackageItem, error)
	GetPackageItemsForUpdateTx(ctx context.Context, tx *sqlx.Tx, packageID uint64) ([]model.ReliefPackageItem, error)
	InsertPackageItemTx(ctx context.Context, tx *sqlx.Tx, it *model.ReliefPackageItem) error
	UpdatePackageItemQtyTx(ctx context.Context, tx *sqlx.Tx, it *model.ReliefPackageItem) error

	GetRequestForUpdateTx(ctx context.Context, tx *sqlx.Tx, requestID uint64) (*model.ReliefRequest, error)
	UpdateRequestTx(ctx context.Context, tx *sqlx.Tx, r *model.ReliefRequest) error
	GetRequestItemForUpdateTx(ctx context.Context, tx *sqlx.Tx, requestID, itemID uint64) (*model.ReliefRequestItem, error)
	UpdateRequestItemIssueTx(ctx context.Context, tx *sqlx.Tx, ri *model.ReliefRequestItem) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewReliefRepository(conn *sqlx.DB) ReliefRepository {
	return &SQL{conn: conn}
}

const (
	getPackageForUpdate = `SELECT reliefpkg_id, reliefrqst_id, to_inventory_id, status_code, dispatch_dtime, verify_by_id, verify_dtime,
create_by_id, create_dtime, update_by_id, update_dtime, version_nbr
FROM reliefpkg WHERE reliefpkg_id = ? FOR UPDATE`

	packageItemColumns = `SELECT reliefpkg_id, fr_inventory_id, batch_id, item_id, item_qty, uom_code,
create_by_id, create_dtime, update_by_id, update_dtime, version_nbr
FROM reliefpkg_item WHERE reliefpkg_id = ? ORDER BY fr_inventory_id, batch_id, item_id`

	insertPackageItem = `INSERT INTO reliefpkg_item (reliefpkg_id, fr_inventory_id, batch_id, item_id, item_qty, uom_code,
create_by_id, create_dtime, update_by_id, update_dtime, version_nbr)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	getRequestForUpdate = `SELECT reliefrqst_id, agency_id, status_code, action_by_id, action_dtime,
create_by_id, create_dtime, update_by_id, update_dtime, version_nbr
FROM reliefrqst WHERE reliefrqst_id = ? FOR UPDATE`

	getRequestItemForUpdate = `SELECT reliefrqst_id, item_id, request_qty, issue_qty,
create_by_id, create_dtime, update_by_id, update_dtime, version_nbr
FROM reliefrqst_item WHERE reliefrqst_id = ? AND item_id = ? FOR UPDATE`
)

func (r *SQL) GetPackageForUpdateTx(ctx context.Context, tx *sqlx.Tx, packageID uint64) (*model.ReliefPackage, error) {
	var p model.ReliefPackage
	if err := tx.QueryRowxContext(ctx, getPackageForUpdate, packageID).StructScan(&p); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *SQL) UpdatePackageTx(ctx context.Context, tx *sqlx.Tx, p *model.ReliefPackage) error {
	row := guard.Row{Table: "reliefpkg", Key: guard.KeyOf("reliefpkg_id", p.ID), Where: "reliefpkg_id = ?", Args: []any{p.ID}}
	return guard.Update(ctx, tx, row, p,
		"status_code = ?, dispatch_dtime = ?, verify_by_id = ?, verify_dtime = ?, update_by_id = ?, update_dtime = ?",
		p.Status, p.DispatchDtime, p.VerifyByID, p.VerifyDtime, p.UpdateByID, p.UpdateDtime)
}

func (r *SQL) GetPackageItems(ctx context.Context, packageID uint64) ([]model.ReliefPackageItem, error) {
	items := make([]model.ReliefPackageItem, 0)
	if err := r.conn.SelectContext(ctx, &items, packageItemColumns, packageID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) GetPackageItemsForUpdateTx(ctx context.Context, tx *sqlx.Tx, packageID uint64) ([]model.ReliefPackageItem, error) {
	items := make([]model.ReliefPackageItem, 0)
	if err := tx.SelectContext(ctx, &items, packageItemColumns+" FOR UPDATE", packageID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) InsertPackageItemTx(ctx context.Context, tx *sqlx.Tx, it *model.ReliefPackageItem) error {
	_, err := tx.ExecContext(ctx, insertPackageItem,
		it.PackageID, it.WarehouseID, it.BatchID, it.ItemID, it.ItemQty, it.UOMCode,
		it.CreateByID, it.CreateDtime, it.UpdateByID, it.UpdateDtime, it.VersionNbr)
	return err
}

func (r *SQL) UpdatePackageItemQtyTx(ctx context.Context, tx *sqlx.Tx, it *model.ReliefPackageItem) error {
	row := guard.Row{
		Table: "reliefpkg_item",
		Key:   fmt.Sprintf("reliefpkg_id=%d,fr_inventory_id=%d,batch_id=%d,item_id=%d", it.PackageID, it.WarehouseID, it.BatchID, it.ItemID),
		Where: "reliefpkg_id = ? AND fr_inventory_id = ? AND batch_id = ? AND item_id = ?",
		Args:  []any{it.PackageID, it.WarehouseID, it.BatchID, it.ItemID},
	}
	return guard.Update(ctx, tx, row, it, "item_qty = ?, uom_code = ?, update_by_id = ?, update_dtime = ?",
		it.ItemQty, it.UOMCode, it.UpdateByID, it.UpdateDtime)
}

func (r *SQL) GetRequestForUpdateTx(ctx context.Context, tx *sqlx.Tx, requestID uint64) (*model.ReliefRequest, error) {
	var rq model.ReliefRequest
	if err := tx.QueryRowxContext(ctx, getRequestForUpdate, requestID).StructScan(&rq); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &rq, nil
}

func (r *SQL) UpdateRequestTx(ctx context.Context, tx *sqlx.Tx, rq *model.ReliefRequest) error {
	row := guard.Row{Table: "reliefrqst", Key: guard.KeyOf("reliefrqst_id", rq.ID), Where: "reliefrqst_id = ?", Args: []any{rq.ID}}
	return guard.Update(ctx, tx, row, rq, "status_code = ?, action_by_id = ?, action_dtime = ?, update_by_id = ?, update_dtime = ?",
		rq.Status, rq.ActionByID, rq.ActionDtime, rq.UpdateByID, rq.UpdateDtime)
}

func (r *SQL) GetRequestItemForUpdateTx(ctx context.Context, tx *sqlx.Tx, requestID, itemID uint64) (*model.ReliefRequestItem, error) {
	var ri model.ReliefRequestItem
	if err := tx.QueryRowxContext(ctx, getRequestItemForUpdate, requestID, itemID).StructScan(&ri); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &ri, nil
}

func (r *SQL) UpdateRequestItemIssueTx(ctx context.Context, tx *sqlx.Tx, ri *model.ReliefRequestItem) error {
	row := guard.Row{
		Table: "reliefrqst_item",
		Key:   fmt.Sprintf("reliefrqst_id=%d,item_id=%d", ri.RequestID, ri.ItemID),
		Where: "reliefrqst_id = ? AND item_id = ?",
		Args:  []any{ri.RequestID, ri.ItemID},
	}
	return guard.Update(ctx, tx, row, ri, "issue_qty = ?, update_by_id = ?, update_dtime = ?",
		ri.IssueQty, ri.UpdateByID, ri.UpdateDtime)
}
