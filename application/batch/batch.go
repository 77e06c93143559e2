package batch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/drims/cmd/config"
	"github.com/muhammadheryan/drims/constant"
	"github.com/muhammadheryan/drims/model"
	catalogrepo "github.com/muhammadheryan/drims/repository/catalog"
	inventoryrepo "github.com/muhammadheryan/drims/repository/inventory"
	txrepo "github.com/muhammadheryan/drims/repository/tx"
	"github.com/muhammadheryan/drims/utils/audit"
	"github.com/muhammadheryan/drims/utils/clock"
	"github.com/muhammadheryan/drims/utils/errors"
	"github.com/muhammadheryan/drims/utils/form"
	"github.com/muhammadheryan/drims/utils/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BatchApp owns lot identity: number generation, creation, additive merges, and the matching
// Inventory aggregate. The Tx methods run inside a caller's unit of work.
type BatchApp interface {
	GenerateBatchNumber(ctx context.Context, req *model.BatchNumberRequest) (*model.BatchNumberResponse, error)
	ReceiveStock(ctx context.Context, warehouseID uint64, actor string, req *model.ReceiptRequest) (*model.ReceiptResponse, error)

	GenerateBatchNumberTx(ctx context.Context, tx *sqlx.Tx, itemCode string, warehouseID uint64, date time.Time) (string, error)
	CreateBatchTx(ctx context.Context, tx *sqlx.Tx, req *model.BatchRequest) (*model.ItemBatch, error)
	FindOrCreateBatchTx(ctx context.Context, tx *sqlx.Tx, req *model.BatchRequest) (*model.ItemBatch, error)
	PostInventoryTx(ctx context.Context, tx *sqlx.Tx, warehouseID, itemID uint64, uomCode string, delta model.StockDelta, actor string) (*model.Inventory, error)
}

type batchAppImpl struct {
	config        *config.Config
	clock         clock.Clock
	txRepo        txrepo.TxRepository
	inventoryRepo inventoryrepo.InventoryRepository
	catalogRepo   catalogrepo.CatalogRepository
}

func NewBatchApp(config *config.Config, clk clock.Clock, txRepo txrepo.TxRepository, inventoryRepo inventoryrepo.InventoryRepository, catalogRepo catalogrepo.CatalogRepository) BatchApp {
	return &batchAppImpl{config: config, clock: clk, txRepo: txRepo, inventoryRepo: inventoryRepo, catalogRepo: catalogRepo}
}

// FormatBatchNumber renders ITEMCODE-WAREHOUSE-YYYYMMDD-NNN. The item code gives up whatever
// the rendered warehouse id and sequence need to fit the batch_no column.
func FormatBatchNumber(itemCode string, warehouseID uint64, date time.Time, seq int) string {
	suffix := fmt.Sprintf("-%03d-%s-%03d", warehouseID, date.Format("20060102"), seq)
	return fitCode(itemCode, constant.BatchNumberMaxLen-len(suffix)) + suffix
}

// batchPrefix is the sequence key. It is the number without "-NNN", so it matches every number
// issued while the sequence still has three digits.
func batchPrefix(itemCode string, warehouseID uint64, date time.Time) string {
	suffix := fmt.Sprintf("-%03d-%s", warehouseID, date.Format("20060102"))
	return fitCode(itemCode, constant.BatchNumberMaxLen-len(suffix)-len("-000")) + suffix
}

func fitCode(itemCode string, limit int) string {
	code := strings.ToUpper(strings.TrimSpace(itemCode))
	if limit < 0 {
		limit = 0
	}
	if len(code) > limit {
		code = code[:limit]
	}
	return code
}

func (s *batchAppImpl) GenerateBatchNumber(ctx context.Context, req *model.BatchNumberRequest) (*model.BatchNumberResponse, error) {
	date := clock.Today(s.clock)
	if req.Date != "" {
		d, err := clock.ParseDate(req.Date)
		if err != nil {
			return nil, errors.NewValidationError([]string{"Invalid date format. Use YYYY-MM-DD."})
		}
		date = d
	}

	// A deadlock rolls the whole transaction back, so a retry starts a fresh one.
	for attempt := 0; ; attempt++ {
		batchNo, err := s.generateBatchNumber(ctx, req, date)
		if err == nil {
			return &model.BatchNumberResponse{BatchNo: batchNo}, nil
		}
		if !errors.IsDeadlock(err) || attempt >= s.config.Batch.SequenceRetries {
			logger.Error("[GenerateBatchNumber] generate", zap.String("error", err.Error()))
			return nil, errors.Classify(err)
		}
		logger.Warn("[GenerateBatchNumber] deadlock, retrying", zap.String("item_code", req.ItemCode),
			zap.Uint64("warehouse_id", req.WarehouseID), zap.Int("attempt", attempt+1))
	}
}

func (s *batchAppImpl) generateBatchNumber(ctx context.Context, req *model.BatchNumberRequest, date time.Time) (string, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[GenerateBatchNumber] begin tx", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	batchNo, err := s.GenerateBatchNumberTx(ctx, tx, req.ItemCode, req.WarehouseID, date)
	if err != nil {
		return "", err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[GenerateBatchNumber] commit tx", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return batchNo, nil
}

// GenerateBatchNumberTx draws the next sequence for the prefix. The sequence row stays locked
// until tx ends, so concurrent callers for one prefix get distinct numbers.
func (s *batchAppImpl) GenerateBatchNumberTx(ctx context.Context, tx *sqlx.Tx, itemCode string, warehouseID uint64, date time.Time) (string, error) {
	prefix := batchPrefix(itemCode, warehouseID, date)
	seq, err := s.inventoryRepo.NextBatchSequenceTx(ctx, tx, prefix)
	if err != nil {
		return "", err
	}
	batchNo := FormatBatchNumber(itemCode, warehouseID, date, seq)
	if len(batchNo) > constant.BatchNumberMaxLen || strings.HasPrefix(batchNo, "-") {
		return "", errors.NewValidationError([]string{
			fmt.Sprintf("Cannot generate a batch number for item %s in warehouse %d", itemCode, warehouseID),
		})
	}
	return batchNo, nil
}

// CreateBatchTx opens a new lot for a lot-tracked item. It returns nil without writing when the
// item is not lot-tracked, and generates a batch number when none is given.
func (s *batchAppImpl) CreateBatchTx(ctx context.Context, tx *sqlx.Tx, req *model.BatchRequest) (*model.ItemBatch, error) {
	item, err := s.lookupItem(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if !item.IsBatched {
		return nil, nil
	}

	if req.BatchDate == nil {
		today := clock.Today(s.clock)
		req.BatchDate = &today
	}
	if req.BatchNo == nil {
		no, err := s.GenerateBatchNumberTx(ctx, tx, item.Code, req.WarehouseID, *req.BatchDate)
		if err != nil {
			return nil, err
		}
		req.BatchNo = &no
	}
	return s.insertBatch(ctx, tx, item, req)
}

// FindOrCreateBatchTx merges the delta into the lot identified by (warehouse, item, batch number),
// creating it when absent. A nil batch number addresses the single untracked lot of the pair.
func (s *batchAppImpl) FindOrCreateBatchTx(ctx context.Context, tx *sqlx.Tx, req *model.BatchRequest) (*model.ItemBatch, error) {
	item, err := s.lookupItem(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if req.BatchNo != nil {
		no := strings.ToUpper(strings.TrimSpace(*req.BatchNo))
		req.BatchNo = &no
	}

	existing, err := s.inventoryRepo.FindBatchForUpdateTx(ctx, tx, req.WarehouseID, req.ItemID, req.BatchNo)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return s.insertBatch(ctx, tx, item, req)
	}

	existing.AvgUnitValue = weightedUnitValue(existing, req)
	existing.UsableQty = existing.UsableQty.Add(req.Delta.Usable)
	existing.DefectiveQty = existing.DefectiveQty.Add(req.Delta.Defective)
	existing.ExpiredQty = existing.ExpiredQty.Add(req.Delta.Expired)
	if err := audit.Stamp(existing, req.Actor, false, s.clock.Now()); err != nil {
		return nil, err
	}
	if err := s.inventoryRepo.UpdateBatchQtyTx(ctx, tx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func weightedUnitValue(b *model.ItemBatch, req *model.BatchRequest) decimal.Decimal {
	oldQty := b.UsableQty.Add(b.DefectiveQty).Add(b.ExpiredQty)
	addQty := req.Delta.Total()
	if !req.AvgUnitValue.IsPositive() || !addQty.IsPositive() {
		return b.AvgUnitValue
	}
	if !oldQty.IsPositive() || !b.AvgUnitValue.IsPositive() {
		return req.AvgUnitValue
	}
	sum := b.AvgUnitValue.Mul(oldQty).Add(req.AvgUnitValue.Mul(addQty))
	return sum.Div(oldQty.Add(addQty)).Round(2)
}

// insertBatch writes a new Active lot. Numbered lots are unique per item across every
// warehouse; the check reads under lock and the unique index backs it up.
func (s *batchAppImpl) insertBatch(ctx context.Context, tx *sqlx.Tx, item *model.Item, req *model.BatchRequest) (*model.ItemBatch, error) {
	if req.BatchNo != nil {
		no := strings.ToUpper(*req.BatchNo)
		req.BatchNo = &no
		exists, err := s.inventoryRepo.BatchNumberExistsTx(ctx, tx, req.ItemID, no)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, errors.SetCustomErrorMessage(constant.ErrBatchExists,
				fmt.Sprintf("Batch number %s already exists for item %s.", no, item.Name))
		}
	}

	uom := req.UOMCode
	if uom == "" {
		uom = item.DefaultUOMCode
	}
	b := &model.ItemBatch{
		WarehouseID:  req.WarehouseID,
		ItemID:       req.ItemID,
		BatchNo:      req.BatchNo,
		BatchDate:    req.BatchDate,
		ExpiryDate:   req.ExpiryDate,
		UsableQty:    req.Delta.Usable,
		ReservedQty:  decimal.Zero,
		DefectiveQty: req.Delta.Defective,
		ExpiredQty:   req.Delta.Expired,
		UOMCode:      uom,
		AvgUnitValue: req.AvgUnitValue,
		Status:       constant.BatchStatusActive,
	}
	if err := audit.Stamp(b, req.Actor, true, s.clock.Now()); err != nil {
		return nil, err
	}
	id, err := s.inventoryRepo.InsertBatchTx(ctx, tx, b)
	if err != nil {
		if errors.IsDuplicateEntry(err) {
			return nil, errors.SetCustomError(constant.ErrBatchExists)
		}
		return nil, err
	}
	b.ID = id
	return b, nil
}

// PostInventoryTx adds the delta to the (warehouse, item) aggregate, creating it on first use.
func (s *batchAppImpl) PostInventoryTx(ctx context.Context, tx *sqlx.Tx, warehouseID, itemID uint64, uomCode string, delta model.StockDelta, actor string) (*model.Inventory, error) {
	now := s.clock.Now()
	inv, err := s.inventoryRepo.GetInventoryForUpdateTx(ctx, tx, warehouseID, itemID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		inv = &model.Inventory{
			WarehouseID:  warehouseID,
			ItemID:       itemID,
			UsableQty:    delta.Usable,
			ReservedQty:  decimal.Zero,
			DefectiveQty: delta.Defective,
			ExpiredQty:   delta.Expired,
			UOMCode:      uomCode,
			Status:       constant.WarehouseStatusActive,
		}
		if err := audit.Stamp(inv, actor, true, now); err != nil {
			return nil, err
		}
		if err := s.inventoryRepo.InsertInventoryTx(ctx, tx, inv); err != nil {
			return nil, err
		}
		return inv, nil
	}

	inv.UsableQty = inv.UsableQty.Add(delta.Usable)
	inv.DefectiveQty = inv.DefectiveQty.Add(delta.Defective)
	inv.ExpiredQty = inv.ExpiredQty.Add(delta.Expired)
	if err := audit.Stamp(inv, actor, false, now); err != nil {
		return nil, err
	}
	if err := s.inventoryRepo.UpdateInventoryQtyTx(ctx, tx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *batchAppImpl) lookupItem(ctx context.Context, itemID uint64) (*model.Item, error) {
	item, err := s.catalogRepo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, &errors.ItemNotFoundError{ItemID: itemID}
	}
	return item, nil
}

// ReceiveStock posts stock straight into a warehouse: the lot and the aggregate move together.
func (s *batchAppImpl) ReceiveStock(ctx context.Context, warehouseID uint64, actor string, req *model.ReceiptRequest) (*model.ReceiptResponse, error) {
	if _, err := audit.NormalizeActor(actor); err != nil {
		return nil, err
	}

	wh, err := s.catalogRepo.GetWarehouse(ctx, warehouseID)
	if err != nil {
		logger.Error("[ReceiveStock] get warehouse", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if wh == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if wh.Status != constant.WarehouseStatusActive {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, fmt.Sprintf("Warehouse %s is not active.", wh.Name))
	}

	item, err := s.lookupItem(ctx, req.ItemID)
	if err != nil {
		if errors.TypeOf(err) == constant.ErrInternal {
			logger.Error("[ReceiveStock] get item", zap.String("error", err.Error()))
		}
		return nil, errors.Classify(err)
	}

	breq, verr := s.parseReceipt(item, warehouseID, actor, req)
	if verr != nil {
		return nil, verr
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ReceiveStock] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// Aggregate before batch, the lock order every stock workflow shares.
	if _, err := s.PostInventoryTx(ctx, tx, warehouseID, item.ID, breq.UOMCode, breq.Delta, actor); err != nil {
		logger.Error("[ReceiveStock] post inventory", zap.Uint64("item_id", item.ID), zap.String("error", err.Error()))
		return nil, errors.Classify(err)
	}

	var b *model.ItemBatch
	if item.IsBatched && breq.BatchNo == nil {
		b, err = s.CreateBatchTx(ctx, tx, breq)
	} else {
		b, err = s.FindOrCreateBatchTx(ctx, tx, breq)
	}
	if err != nil {
		logger.Error("[ReceiveStock] post batch", zap.Uint64("item_id", item.ID), zap.String("error", err.Error()))
		return nil, errors.Classify(err)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ReceiveStock] commit tx", zap.String("error", err.Error()))
		return nil, errors.Classify(err)
	}
	committed = true

	logger.Info("[ReceiveStock] received", zap.Uint64("warehouse_id", warehouseID), zap.Uint64("item_id", item.ID), zap.Uint64("batch_id", b.ID))
	return &model.ReceiptResponse{BatchID: b.ID, BatchNo: b.BatchNo}, nil
}

func (s *batchAppImpl) parseReceipt(item *model.Item, warehouseID uint64, actor string, req *model.ReceiptRequest) (*model.BatchRequest, error) {
	var msgs []string
	today := clock.Today(s.clock)

	usable, _, err := form.Decimal(req.UsableQty)
	if err != nil || !usable.IsPositive() {
		msgs = append(msgs, "Usable quantity must be a number greater than zero.")
	}
	defective, _, err := form.Decimal(req.DefectiveQty)
	if err != nil || defective.IsNegative() {
		msgs = append(msgs, "Defective quantity must be zero or more.")
	}
	expired, _, err := form.Decimal(req.ExpiredQty)
	if err != nil || expired.IsNegative() {
		msgs = append(msgs, "Expired quantity must be zero or more.")
	}
	unitValue, _, err := form.Decimal(req.AvgUnitValue)
	if err != nil || unitValue.IsNegative() {
		msgs = append(msgs, "Average unit value must be zero or more.")
	}

	batchDate, err := form.Date(req.BatchDate)
	if err != nil {
		msgs = append(msgs, "Invalid batch date format. Use YYYY-MM-DD.")
	} else if batchDate != nil && batchDate.After(today) {
		msgs = append(msgs, "Batch date cannot be in the future.")
	}

	var expiry *time.Time
	if item.CanExpire {
		expiry, err = form.Date(req.ExpiryDate)
		switch {
		case err != nil:
			msgs = append(msgs, "Invalid expiry date format. Use YYYY-MM-DD.")
		case expiry == nil:
			msgs = append(msgs, fmt.Sprintf("Expiry date is required for %s.", item.Name))
		case expiry.Before(today):
			msgs = append(msgs, fmt.Sprintf("Expiry date for %s has already passed.", item.Name))
		}
	}

	batchNo := form.Text(req.BatchNo)
	if batchNo != nil && len(*batchNo) > constant.BatchNumberMaxLen {
		msgs = append(msgs, fmt.Sprintf("Batch number cannot exceed %d characters.", constant.BatchNumberMaxLen))
	}

	if len(msgs) > 0 {
		return nil, errors.NewValidationError(msgs)
	}
	uom := strings.ToUpper(strings.TrimSpace(req.UOMCode))
	if uom == "" {
		uom = item.DefaultUOMCode
	}
	return &model.BatchRequest{
		WarehouseID:  warehouseID,
		ItemID:       item.ID,
		BatchNo:      batchNo,
		BatchDate:    batchDate,
		ExpiryDate:   expiry,
		UOMCode:      uom,
		AvgUnitValue: unitValue,
		Delta:        model.StockDelta{Usable: usable, Defective: defective, Expired: expired},
		Actor:        actor,
	}, nil
}
