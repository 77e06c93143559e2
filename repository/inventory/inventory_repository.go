package inventory

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/drims/model"
	"github.com/muhammadheryan/drims/repository/guard"
)

// InventoryRepository reads and writes the Inventory aggregates, their ItemBatch lots and the
// batch number sequence. Quantity writes go through the version guard; callers must hold the
// row lock from the matching ForUpdate read.
type InventoryRepository interface {
	GetBatchForUpdateTx(ctx context.Context, tx *sqlx.Tx, batchID uint64) (*model.ItemBatch, error)
	FindBatchForUpdateTx(ctx context.Context, tx *sqlx.Tx, warehouseID, itemID uint64, batchNo *string) (*model.ItemBatch, error)
	BatchNumberExists(ctx context.Context, itemID uint64, batchNo string) (bool, error)
	BatchNumberExistsTx(ctx context.Context, tx *sqlx.Tx, itemID uint64, batchNo string) (bool, error)
	InsertBatchTx(ctx context.Context, tx *sqlx.Tx, b *model.ItemBatch) (uint64, error)
	UpdateBatchQtyTx(ctx context.Context, tx *sqlx.Tx, b *model.ItemBatch) error

	GetInventory(ctx context.Context, warehouseID, itemID uint64) (*model.Inventory, error)
	GetInventoryForUpdateTx(ctx context.Context, tx *sqlx.Tx, warehouseID, itemID uint64) (*model.Inventory, error)
	InsertInventoryTx(ctx context.Context, tx *sqlx.Tx, inv *model.Inventory) error
	UpdateInventoryQtyTx(ctx context.Context, tx *sqlx.Tx, inv *model.Inventory) error

	NextBatchSequenceTx(ctx context.Context, tx *sqlx.Tx, prefix string) (int, error)

	ListStock(ctx context.Context, warehouseID uint64, page, perPage int) ([]model.StockListItem, int64, error)
	GetBatchTotals(ctx context.Context, warehouseID, itemID uint64) (*model.BatchTotals, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewInventoryRepository(conn *sqlx.DB) InventoryRepository {
	return &SQL{conn: conn}
}

const (
	batchColumns = `SELECT batch_id, inventory_id, item_id, batch_no, batch_date, expiry_date,
usable_qty, reserved_qty, defective_qty, expired_qty, uom_code, avg_unit_value, status_code,
create_by_id, create_dtime, update_by_id, update_dtime, version_nbr
FROM itembatch`

	getBatchForUpdate      = batchColumns + ` WHERE batch_id = ? FOR UPDATE`
	findBatchForUpdate     = batchColumns + ` WHERE inventory_id = ? AND item_id = ? AND batch_no = ? FOR UPDATE`
	findNullBatchForUpdate = batchColumns + ` WHERE inventory_id = ? AND item_id = ? AND batch_no IS NULL ORDER BY batch_id LIMIT 1 FOR UPDATE`

	batchNumberExists          = `SELECT COUNT(*) FROM itembatch WHERE item_id = ? AND batch_no = ?`
	batchNumberExistsForUpdate = `SELECT COUNT(*) FROM itembatch WHERE item_id = ? AND batch_no = ? FOR UPDATE`

	insertBatch = `INSERT INTO itembatch (inventory_id, item_id, batch_no, batch_date, expiry_date,
usable_qty, reserved_qty, defective_qty, expired_qty, uom_code, avg_unit_value, status_code,
create_by_id, create_dtime, update_by_id, update_dtime, version_nbr)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	inventoryColumns = `SELECT inventory_id, item_id, usable_qty, reserved_qty, defective_qty, expired_qty, uom_code, status_code,
create_by_id, create_dtime, update_by_id, update_dtime, version_nbr
FROM inventory`

	getInventory          = inventoryColumns + ` WHERE inventory_id = ? AND item_id = ?`
	getInventoryForUpdate = getInventory + ` FOR UPDATE`

	insertInventory = `INSERT INTO inventory (inventory_id, item_id, usable_qty, reserved_qty, defective_qty, expired_qty, uom_code, status_code,
create_by_id, create_dtime, update_by_id, update_dtime, version_nbr)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	getSequenceForUpdate = `SELECT last_seq FROM batch_sequence WHERE prefix = ? FOR UPDATE`
	maxExistingSequence  = `SELECT COALESCE(MAX(CAST(SUBSTRING(batch_no, ?) AS UNSIGNED)), 0) FROM itembatch WHERE batch_no LIKE ?`
	seedSequence         = `INSERT INTO batch_sequence (prefix, last_seq) VALUES (?, 0) ON DUPLICATE KEY UPDATE last_seq = last_seq`
	updateSequence       = `UPDATE batch_sequence SET last_seq = ? WHERE prefix = ?`

	listStockBase = `SELECT i.item_id, it.item_code, it.item_name, i.usable_qty, i.reserved_qty, i.defective_qty, i.expired_qty, i.uom_code,
(i.usable_qty - i.reserved_qty) < it.reorder_qty AS below_reorder
FROM inventory i
JOIN item it ON it.item_id = i.item_id
WHERE i.inventory_id = ?`

	countStockQuery = `SELECT COUNT(*) FROM inventory WHERE inventory_id = ?`

	batchTotalsQuery = `SELECT COALESCE(SUM(usable_qty),0) AS usable_qty, COALESCE(SUM(reserved_qty),0) AS reserved_qty,
COALESCE(SUM(defective_qty),0) AS defective_qty, COALESCE(SUM(expired_qty),0) AS expired_qty
FROM itembatch WHERE inventory_id = ? AND item_id = ?`
)

func (r *SQL) GetBatchForUpdateTx(ctx context.Context, tx *sqlx.Tx, batchID uint64) (*model.ItemBatch, error) {
	return getBatch(tx.QueryRowxContext(ctx, getBatchForUpdate, batchID))
}

// FindBatchForUpdateTx locates the lot for (warehouse, item, batch number); a nil batchNo
// selects the untracked lot of that pair.
func (r *SQL) FindBatchForUpdateTx(ctx context.Context, tx *sqlx.Tx, warehouseID, itemID uint64, batchNo *string) (*model.ItemBatch, error) {
	if batchNo == nil {
		return getBatch(tx.QueryRowxContext(ctx, findNullBatchForUpdate, warehouseID, itemID))
	}
	return getBatch(tx.QueryRowxContext(ctx, findBatchForUpdate, warehouseID, itemID, *batchNo))
}

func getBatch(row *sqlx.Row) (*model.ItemBatch, error) {
	var b model.ItemBatch
	if err := row.StructScan(&b); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *SQL) BatchNumberExists(ctx context.Context, itemID uint64, batchNo string) (bool, error) {
	var n int64
	if err := r.conn.GetContext(ctx, &n, batchNumberExists, itemID, batchNo); err != nil {
		return false, err
	}
	return n > 0, nil
}

// BatchNumberExistsTx also takes the index range lock, so a concurrent insert of the same
// (item, batch number) waits for this transaction.
func (r *SQL) BatchNumberExistsTx(ctx context.Context, tx *sqlx.Tx, itemID uint64, batchNo string) (bool, error) {
	var n int64
	if err := tx.GetContext(ctx, &n, batchNumberExistsForUpdate, itemID, batchNo); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SQL) InsertBatchTx(ctx context.Context, tx *sqlx.Tx, b *model.ItemBatch) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertBatch,
		b.WarehouseID, b.ItemID, b.BatchNo, b.BatchDate, b.ExpiryDate,
		b.UsableQty, b.ReservedQty, b.DefectiveQty, b.ExpiredQty, b.UOMCode, b.AvgUnitValue, b.Status,
		b.CreateByID, b.CreateDtime, b.UpdateByID, b.UpdateDtime, b.VersionNbr)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	b.ID = uint64(id)
	return b.ID, nil
}

func (r *SQL) UpdateBatchQtyTx(ctx context.Context, tx *sqlx.Tx, b *model.ItemBatch) error {
	row := guard.Row{Table: "itembatch", Key: guard.KeyOf("batch_id", b.ID), Where: "batch_id = ?", Args: []any{b.ID}}
	return guard.Update(ctx, tx, row, b,
		"usable_qty = ?, reserved_qty = ?, defective_qty = ?, expired_qty = ?, avg_unit_value = ?, update_by_id = ?, update_dtime = ?",
		b.UsableQty, b.ReservedQty, b.DefectiveQty, b.ExpiredQty, b.AvgUnitValue, b.UpdateByID, b.UpdateDtime)
}

func (r *SQL) GetInventory(ctx context.Context, warehouseID, itemID uint64) (*model.Inventory, error) {
	return getInventoryRow(r.conn.QueryRowxContext(ctx, getInventory, warehouseID, itemID))
}

func (r *SQL) GetInventoryForUpdateTx(ctx context.Context, tx *sqlx.Tx, warehouseID, itemID uint64) (*model.Inventory, error) {
	return getInventoryRow(tx.QueryRowxContext(ctx, getInventoryForUpdate, warehouseID, itemID))
}

func getInventoryRow(row *sqlx.Row) (*model.Inventory, error) {
	var inv model.Inventory
	if err := row.StructScan(&inv); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (r *SQL) InsertInventoryTx(ctx context.Context, tx *sqlx.Tx, inv *model.Inventory) error {
	_, err := tx.ExecContext(ctx, insertInventory,
		inv.WarehouseID, inv.ItemID, inv.UsableQty, inv.ReservedQty, inv.DefectiveQty, inv.ExpiredQty, inv.UOMCode, inv.Status,
		inv.CreateByID, inv.CreateDtime, inv.UpdateByID, inv.UpdateDtime, inv.VersionNbr)
	return err
}

func (r *SQL) UpdateInventoryQtyTx(ctx context.Context, tx *sqlx.Tx, inv *model.Inventory) error {
	row := guard.Row{
		Table: "inventory",
		Key:   "inventory_id=" + strconv.FormatUint(inv.WarehouseID, 10) + ",item_id=" + strconv.FormatUint(inv.ItemID, 10),
		Where: "inventory_id = ? AND item_id = ?",
		Args:  []any{inv.WarehouseID, inv.ItemID},
	}
	return guard.Update(ctx, tx, row, inv,
		"usable_qty = ?, reserved_qty = ?, defective_qty = ?, expired_qty = ?, update_by_id = ?, update_dtime = ?",
		inv.UsableQty, inv.ReservedQty, inv.DefectiveQty, inv.ExpiredQty, inv.UpdateByID, inv.UpdateDtime)
}

// NextBatchSequenceTx hands out the next suffix for a batch number prefix. The sequence row is
// seeded before it is locked, so concurrent first callers for a new prefix queue on the row
// instead of taking gap locks that deadlock their inserts. The lock is held for the rest of the
// transaction.
func (r *SQL) NextBatchSequenceTx(ctx context.Context, tx *sqlx.Tx, prefix string) (int, error) {
	if _, err := tx.ExecContext(ctx, seedSequence, prefix); err != nil {
		return 0, err
	}

	var last int64
	if err := tx.GetContext(ctx, &last, getSequenceForUpdate, prefix); err != nil {
		return 0, err
	}

	// Batch numbers entered by hand can run ahead of the sequence.
	var existing int64
	pattern := strings.NewReplacer("%", `\%`, "_", `\_`).Replace(prefix) + "-%"
	if err := tx.GetContext(ctx, &existing, maxExistingSequence, len(prefix)+2, pattern); err != nil {
		return 0, err
	}

	next := existing
	if last > next {
		next = last
	}
	next++

	if _, err := tx.ExecContext(ctx, updateSequence, next, prefix); err != nil {
		return 0, err
	}
	return int(next), nil
}

func (r *SQL) ListStock(ctx context.Context, warehouseID uint64, page, perPage int) ([]model.StockListItem, int64, error) {
	offset := (page - 1) * perPage

	query := listStockBase + " ORDER BY it.item_name LIMIT ? OFFSET ?"
	rows, err := r.conn.QueryxContext(ctx, query, warehouseID, perPage, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.StockListItem, 0)
	for rows.Next() {
		var it model.StockListItem
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.conn.GetContext(ctx, &total, countStockQuery, warehouseID); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *SQL) GetBatchTotals(ctx context.Context, warehouseID, itemID uint64) (*model.BatchTotals, error) {
	var t model.BatchTotals
	if err := r.conn.GetContext(ctx, &t, batchTotalsQuery, warehouseID, itemID); err != nil {
		return nil, err
	}
	return &t, nil
}
