package dispatch

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/drims/constant"
	"github.com/muhammadheryan/drims/model"
	"github.com/muhammadheryan/drims/thirdparty/rabbitmq"
	"github.com/muhammadheryan/drims/utils/audit"
	"github.com/muhammadheryan/drims/utils/errors"
	"github.com/muhammadheryan/drims/utils/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// reconciler carries one dispatch through its steps. Batches and aggregates are locked once
// and the same structs are updated by every later step, so each guarded update sees the
// version the previous step left behind.
type reconciler struct {
	app   *dispatchAppImpl
	tx    *sqlx.Tx
	actor string
	now   time.Time

	pkg   *model.ReliefPackage
	old   []model.ReliefPackageItem
	final []model.Allocation

	batches     map[uint64]*model.ItemBatch
	inventories map[model.StockKey]*model.Inventory
}

// normalizePlan drops zero lines and rejects anything that cannot be a final allocation. The
// result is ordered by key.
func normalizePlan(plan []model.Allocation) ([]model.Allocation, error) {
	out := make([]model.Allocation, 0, len(plan))
	seen := make(map[model.AllocationKey]bool, len(plan))
	for _, a := range plan {
		if a.WarehouseID == 0 || a.BatchID == 0 || a.ItemID == 0 {
			return nil, &errors.DispatchError{Message: "Each allocation needs a warehouse, batch and item"}
		}
		if a.Quantity.IsNegative() {
			return nil, &errors.DispatchError{Message: fmt.Sprintf("Negative quantity %s for item %d from batch %d", a.Quantity.String(), a.ItemID, a.BatchID)}
		}
		if a.Quantity.IsZero() {
			continue
		}
		if seen[a.Key()] {
			return nil, &errors.DispatchError{Message: fmt.Sprintf("Batch %d of item %d is allocated more than once", a.BatchID, a.ItemID)}
		}
		seen[a.Key()] = true
		a.UOMCode = strings.ToUpper(strings.TrimSpace(a.UOMCode))
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return keyLess(out[i].Key(), out[j].Key()) })
	return out, nil
}

func keyLess(a, b model.AllocationKey) bool {
	if a.WarehouseID != b.WarehouseID {
		return a.WarehouseID < b.WarehouseID
	}
	if a.BatchID != b.BatchID {
		return a.BatchID < b.BatchID
	}
	return a.ItemID < b.ItemID
}

func stockLess(a, b model.StockKey) bool {
	if a.WarehouseID != b.WarehouseID {
		return a.WarehouseID < b.WarehouseID
	}
	return a.ItemID < b.ItemID
}

func sortedStockKeys[V any](m map[model.StockKey]V) []model.StockKey {
	keys := make([]model.StockKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return stockLess(keys[i], keys[j]) })
	return keys
}

// lockStock locks every aggregate and batch either plan touches: aggregates by (warehouse, item),
// then batches by id. Intake verification and stock receipts also take the aggregate before its
// batches, so a dispatch queues behind them instead of deadlocking.
func (r *reconciler) lockStock(ctx context.Context) error {
	batchIDs := make(map[uint64]bool)
	stock := make(map[model.StockKey]bool)
	for _, it := range r.old {
		if it.ItemQty.IsPositive() {
			batchIDs[it.BatchID] = true
			stock[model.StockKey{WarehouseID: it.WarehouseID, ItemID: it.ItemID}] = true
		}
	}
	for _, a := range r.final {
		batchIDs[a.BatchID] = true
		stock[model.StockKey{WarehouseID: a.WarehouseID, ItemID: a.ItemID}] = true
	}

	r.inventories = make(map[model.StockKey]*model.Inventory, len(stock))
	for _, k := range sortedStockKeys(stock) {
		inv, err := r.app.inventoryRepo.GetInventoryForUpdateTx(ctx, r.tx, k.WarehouseID, k.ItemID)
		if err != nil {
			return err
		}
		r.inventories[k] = inv
	}

	ids := make([]uint64, 0, len(batchIDs))
	for id := range batchIDs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	r.batches = make(map[uint64]*model.ItemBatch, len(ids))
	for _, id := range ids {
		b, err := r.app.inventoryRepo.GetBatchForUpdateTx(ctx, r.tx, id)
		if err != nil {
			return err
		}
		if b == nil {
			return &errors.DispatchError{Message: fmt.Sprintf("Batch %d not found", id)}
		}
		r.batches[id] = b
	}

	for i := range r.final {
		a := &r.final[i]
		b := r.batches[a.BatchID]
		if b.WarehouseID != a.WarehouseID || b.ItemID != a.ItemID {
			return &errors.DispatchError{Message: fmt.Sprintf("Batch %d does not hold item %d in warehouse %d", a.BatchID, a.ItemID, a.WarehouseID)}
		}
		if a.UOMCode == "" {
			a.UOMCode = b.UOMCode
		}
	}
	return nil
}

// undoReservations releases what the logistics officer reserved, batch first and then aggregate.
func (r *reconciler) undoReservations(ctx context.Context) error {
	totals := make(map[model.StockKey]decimal.Decimal)
	for _, it := range r.old {
		if !it.ItemQty.IsPositive() {
			continue
		}
		b := r.batches[it.BatchID]
		if b.ReservedQty.LessThan(it.ItemQty) {
			return &errors.ConsistencyError{Message: fmt.Sprintf("Inconsistent reservation state: batch %d has reserved_qty %s but LO allocated %s",
				b.ID, b.ReservedQty.String(), it.ItemQty.String())}
		}
		b.ReservedQty = b.ReservedQty.Sub(it.ItemQty)
		if err := r.saveBatch(ctx, b); err != nil {
			return err
		}
		k := model.StockKey{WarehouseID: it.WarehouseID, ItemID: it.ItemID}
		totals[k] = totals[k].Add(it.ItemQty)
	}

	for _, k := range sortedStockKeys(totals) {
		qty := totals[k]
		inv := r.inventories[k]
		if inv == nil {
			return &errors.ConsistencyError{Message: fmt.Sprintf("Inconsistent reservation state: no inventory for item %d in warehouse %d but LO allocated %s",
				k.ItemID, k.WarehouseID, qty.String())}
		}
		if inv.ReservedQty.LessThan(qty) {
			return &errors.ConsistencyError{Message: fmt.Sprintf("Inconsistent reservation state: inventory for item %d in warehouse %d has reserved_qty %s but LO allocated %s",
				k.ItemID, k.WarehouseID, inv.ReservedQty.String(), qty.String())}
		}
		inv.ReservedQty = inv.ReservedQty.Sub(qty)
		if err := r.saveInventory(ctx, inv); err != nil {
			return err
		}
	}
	return nil
}

// overwritePackageItems makes the package rows match the final plan. Rows dropped from the plan
// are zeroed, never deleted; rows whose quantity and unit are unchanged are left alone.
func (r *reconciler) overwritePackageItems(ctx context.Context) error {
	existing := make(map[model.AllocationKey]*model.ReliefPackageItem, len(r.old))
	for i := range r.old {
		existing[r.old[i].Key()] = &r.old[i]
	}

	planned := make(map[model.AllocationKey]bool, len(r.final))
	for _, a := range r.final {
		planned[a.Key()] = true
		if it, ok := existing[a.Key()]; ok {
			if it.ItemQty.Equal(a.Quantity) && it.UOMCode == a.UOMCode {
				continue
			}
			it.ItemQty = a.Quantity
			it.UOMCode = a.UOMCode
			if err := r.savePackageItem(ctx, it); err != nil {
				return err
			}
			continue
		}

		it := &model.ReliefPackageItem{
			PackageID:   r.pkg.ID,
			WarehouseID: a.WarehouseID,
			BatchID:     a.BatchID,
			ItemID:      a.ItemID,
			ItemQty:     a.Quantity,
			UOMCode:     a.UOMCode,
		}
		if err := audit.Stamp(it, r.actor, true, r.now); err != nil {
			return err
		}
		if err := r.app.reliefRepo.InsertPackageItemTx(ctx, r.tx, it); err != nil {
			return err
		}
	}

	for i := range r.old {
		it := &r.old[i]
		if planned[it.Key()] || it.ItemQty.IsZero() {
			continue
		}
		it.ItemQty = decimal.Zero
		if err := r.savePackageItem(ctx, it); err != nil {
			return err
		}
	}
	return nil
}

// depleteStock removes the final plan from usable stock. Batch and aggregate are checked
// independently.
func (r *reconciler) depleteStock(ctx context.Context) error {
	totals := make(map[model.StockKey]decimal.Decimal)
	for _, a := range r.final {
		b := r.batches[a.BatchID]
		if b.UsableQty.LessThan(a.Quantity) {
			return r.shortage(ctx, a.ItemID, a.WarehouseID, a.Quantity, b.UsableQty, false)
		}
		b.UsableQty = b.UsableQty.Sub(a.Quantity)
		if err := r.saveBatch(ctx, b); err != nil {
			return err
		}
		k := model.StockKey{WarehouseID: a.WarehouseID, ItemID: a.ItemID}
		totals[k] = totals[k].Add(a.Quantity)
	}

	for _, k := range sortedStockKeys(totals) {
		qty := totals[k]
		inv := r.inventories[k]
		if inv == nil {
			return r.shortage(ctx, k.ItemID, k.WarehouseID, qty, decimal.Zero, true)
		}
		if inv.UsableQty.LessThan(qty) {
			return r.shortage(ctx, k.ItemID, k.WarehouseID, qty, inv.UsableQty, true)
		}
		inv.UsableQty = inv.UsableQty.Sub(qty)
		if err := r.saveInventory(ctx, inv); err != nil {
			return err
		}
	}
	return nil
}

func (r *reconciler) shortage(ctx context.Context, itemID, warehouseID uint64, need, available decimal.Decimal, aggregate bool) error {
	return &errors.InsufficientStockError{
		ItemID:        itemID,
		ItemName:      r.app.itemName(ctx, itemID),
		WarehouseID:   warehouseID,
		WarehouseName: r.app.warehouseName(ctx, warehouseID),
		Need:          need,
		Available:     available,
		Aggregate:     aggregate,
	}
}

// finalize marks the package dispatched and credits the request with what left.
func (r *reconciler) finalize(ctx context.Context, request *model.ReliefRequest) error {
	r.pkg.Status = constant.PackageStatusDispatched
	r.pkg.DispatchDtime = &r.now
	if err := audit.StampVerify(r.pkg, r.actor, r.now); err != nil {
		return err
	}
	if err := audit.Stamp(r.pkg, r.actor, false, r.now); err != nil {
		return err
	}
	if err := r.app.reliefRepo.UpdatePackageTx(ctx, r.tx, r.pkg); err != nil {
		return err
	}

	issued := make(map[uint64]decimal.Decimal)
	for _, a := range r.final {
		issued[a.ItemID] = issued[a.ItemID].Add(a.Quantity)
	}
	itemIDs := make([]uint64, 0, len(issued))
	for id := range issued {
		itemIDs = append(itemIDs, id)
	}
	sort.Slice(itemIDs, func(i, j int) bool { return itemIDs[i] < itemIDs[j] })

	for _, itemID := range itemIDs {
		ri, err := r.app.reliefRepo.GetRequestItemForUpdateTx(ctx, r.tx, request.ID, itemID)
		if err != nil {
			return err
		}
		if ri == nil {
			logger.Warn("[SubmitForDispatch] request has no line for dispatched item",
				zap.Uint64("request_id", request.ID), zap.Uint64("item_id", itemID))
			continue
		}
		ri.IssueQty = ri.IssueQty.Add(issued[itemID])
		if err := audit.Stamp(ri, r.actor, false, r.now); err != nil {
			return err
		}
		if err := r.app.reliefRepo.UpdateRequestItemIssueTx(ctx, r.tx, ri); err != nil {
			return err
		}
	}

	request.Status = constant.ReliefRequestStatusPartFilled
	request.ActionByID = &r.actor
	request.ActionDtime = &r.now
	if err := audit.Stamp(request, r.actor, false, r.now); err != nil {
		return err
	}
	return r.app.reliefRepo.UpdateRequestTx(ctx, r.tx, request)
}

func (r *reconciler) saveBatch(ctx context.Context, b *model.ItemBatch) error {
	if err := audit.Stamp(b, r.actor, false, r.now); err != nil {
		return err
	}
	return r.app.inventoryRepo.UpdateBatchQtyTx(ctx, r.tx, b)
}

func (r *reconciler) saveInventory(ctx context.Context, inv *model.Inventory) error {
	if err := audit.Stamp(inv, r.actor, false, r.now); err != nil {
		return err
	}
	return r.app.inventoryRepo.UpdateInventoryQtyTx(ctx, r.tx, inv)
}

func (r *reconciler) savePackageItem(ctx context.Context, it *model.ReliefPackageItem) error {
	if err := audit.Stamp(it, r.actor, false, r.now); err != nil {
		return err
	}
	return r.app.reliefRepo.UpdatePackageItemQtyTx(ctx, r.tx, it)
}

func (r *reconciler) event(request *model.ReliefRequest) rabbitmq.PackageDispatchedMessage {
	msg := rabbitmq.PackageDispatchedMessage{
		PackageID:    r.pkg.ID,
		RequestID:    request.ID,
		DispatchedBy: r.actor,
		DispatchedAt: r.now,
		Lines:        make([]rabbitmq.StockLineInfo, 0, len(r.final)),
	}
	for _, a := range r.final {
		msg.Lines = append(msg.Lines, rabbitmq.StockLineInfo{WarehouseID: a.WarehouseID, ItemID: a.ItemID, BatchID: a.BatchID, Quantity: a.Quantity})
	}
	return msg
}
