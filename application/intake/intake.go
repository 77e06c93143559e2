package intake

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	batchapp "github.com/muhammadheryan/drims/application/batch"
	"github.com/muhammadheryan/drims/constant"
	"github.com/muhammadheryan/drims/model"
	catalogrepo "github.com/muhammadheryan/drims/repository/catalog"
	donationrepo "github.com/muhammadheryan/drims/repository/donation"
	inventoryrepo "github.com/muhammadheryan/drims/repository/inventory"
	txrepo "github.com/muhammadheryan/drims/repository/tx"
	"github.com/muhammadheryan/drims/thirdparty/rabbitmq"
	"github.com/muhammadheryan/drims/utils/audit"
	"github.com/muhammadheryan/drims/utils/clock"
	"github.com/muhammadheryan/drims/utils/errors"
	"github.com/muhammadheryan/drims/utils/logger"
	"go.uber.org/zap"
)

// IntakeApp is the two-phase donation intake. Entry stages a reviewable record without touching
// stock; verification posts it to batches and inventory in one transaction.
type IntakeApp interface {
	CreateIntakeEntry(ctx context.Context, donationID, warehouseID uint64, actor string, f *model.IntakeEntryForm) (*model.WorkflowResult, error)
	VerifyIntakeEntry(ctx context.Context, donationID, warehouseID uint64, actor string, f *model.IntakeVerifyForm) (*model.WorkflowResult, error)
}

type intakeAppImpl struct {
	clock         clock.Clock
	txRepo        txrepo.TxRepository
	donationRepo  donationrepo.DonationRepository
	inventoryRepo inventoryrepo.InventoryRepository
	catalogRepo   catalogrepo.CatalogRepository
	batchApp      batchapp.BatchApp
	publisher     rabbitmq.EventPublisher
}

func NewIntakeApp(clk clock.Clock, txRepo txrepo.TxRepository, donationRepo donationrepo.DonationRepository, inventoryRepo inventoryrepo.InventoryRepository,
	catalogRepo catalogrepo.CatalogRepository, batchApp batchapp.BatchApp, publisher rabbitmq.EventPublisher) IntakeApp {
	return &intakeAppImpl{
		clock:         clk,
		txRepo:        txRepo,
		donationRepo:  donationRepo,
		inventoryRepo: inventoryRepo,
		catalogRepo:   catalogRepo,
		batchApp:      batchApp,
		publisher:     publisher,
	}
}

func (s *intakeAppImpl) CreateIntakeEntry(ctx context.Context, donationID, warehouseID uint64, actor string, f *model.IntakeEntryForm) (*model.WorkflowResult, error) {
	if _, err := audit.NormalizeActor(actor); err != nil {
		return nil, err
	}
	wh, err := s.warehouse(ctx, "[CreateIntakeEntry]", warehouseID)
	if err != nil {
		return nil, err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateIntakeEntry] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	donation, err := s.donationRepo.GetDonationForUpdateTx(ctx, tx, donationID)
	if err != nil {
		logger.Error("[CreateIntakeEntry] get donation", zap.String("error", err.Error()))
		return nil, errors.Classify(err)
	}
	if donation == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, fmt.Sprintf("Donation #%d not found", donationID))
	}
	if donation.Status != constant.DonationStatusVerified {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidDonationStatus, "Only verified donations can be intaken")
	}

	existing, err := s.donationRepo.GetIntakeForUpdateTx(ctx, tx, donationID, warehouseID)
	if err != nil {
		logger.Error("[CreateIntakeEntry] get intake", zap.String("error", err.Error()))
		return nil, errors.Classify(err)
	}
	if existing != nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrDuplicateIntake,
			fmt.Sprintf("Intake already exists for Donation #%d at %s", donationID, wh.Name))
	}

	goods, err := s.goodsItems(ctx, tx, "[CreateIntakeEntry]", donationID)
	if err != nil {
		return nil, err
	}

	today := clock.Today(s.clock)
	header, lines, msgs := validateEntry(f, goods, today)
	for _, l := range lines {
		if l.BatchNo == nil {
			continue
		}
		exists, err := s.inventoryRepo.BatchNumberExists(ctx, l.ItemID, *l.BatchNo)
		if err != nil {
			logger.Error("[CreateIntakeEntry] check batch number", zap.String("error", err.Error()))
			return nil, errors.Classify(err)
		}
		if exists {
			msgs = append(msgs, fmt.Sprintf("%s: This batch number %q already exists for this item. Please enter a unique batch number.",
				goods[l.ItemID].item.Name, *l.BatchNo))
		}
	}
	if len(msgs) > 0 {
		logger.Info("[CreateIntakeEntry] rejected", zap.Uint64("donation_id", donationID), zap.Int("errors", len(msgs)))
		return nil, errors.NewValidationError(msgs)
	}

	now := s.clock.Now()
	intake := &model.DonationIntake{
		DonationID:   donationID,
		WarehouseID:  warehouseID,
		IntakeDate:   header.intakeDate,
		CommentsText: header.comments,
		Status:       constant.IntakeStatusEntered,
	}
	if err := audit.Stamp(intake, actor, true, now); err != nil {
		return nil, err
	}
	if err := s.donationRepo.InsertIntakeTx(ctx, tx, intake); err != nil {
		if errors.IsDuplicateEntry(err) {
			return nil, errors.SetCustomError(constant.ErrDuplicateIntake)
		}
		logger.Error("[CreateIntakeEntry] insert intake", zap.String("error", err.Error()))
		return nil, errors.Classify(err)
	}

	for _, l := range lines {
		l.DonationID = donationID
		l.WarehouseID = warehouseID
		if err := audit.Stamp(l, actor, true, now); err != nil {
			return nil, err
		}
		if _, err := s.donationRepo.InsertIntakeItemTx(ctx, tx, l); err != nil {
			logger.Error("[CreateIntakeEntry] insert intake item", zap.Uint64("item_id", l.ItemID), zap.String("error", err.Error()))
			return nil, errors.Classify(err)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateIntakeEntry] commit tx", zap.String("error", err.Error()))
		return nil, errors.Classify(err)
	}
	committed = true

	return &model.WorkflowResult{
		Success: true,
		Message: fmt.Sprintf("Intake entry for Donation #%d submitted for verification", donationID),
		Errors:  []string{},
	}, nil
}

func (s *intakeAppImpl) VerifyIntakeEntry(ctx context.Context, donationID, warehouseID uint64, actor string, f *model.IntakeVerifyForm) (*model.WorkflowResult, error) {
	if _, err := audit.NormalizeActor(actor); err != nil {
		return nil, err
	}
	if _, err := s.warehouse(ctx, "[VerifyIntakeEntry]", warehouseID); err != nil {
		return nil, err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[VerifyIntakeEntry] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// Lock order: donation, intake header, intake lines, then lots and aggregates by item.
	donation, err := s.donationRepo.GetDonationForUpdateTx(ctx, tx, donationID)
	if err != nil {
		logger.Error("[VerifyIntakeEntry] get donation", zap.String("error", err.Error()))
		return nil, errors.Classify(err)
	}
	if donation == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, fmt.Sprintf("Donation #%d not found", donationID))
	}

	intake, err := s.donationRepo.GetIntakeForUpdateTx(ctx, tx, donationID, warehouseID)
	if err != nil {
		logger.Error("[VerifyIntakeEntry] get intake", zap.String("error", err.Error()))
		return nil, errors.Classify(err)
	}
	if intake == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "Intake not found")
	}
	switch {
	case intake.Status == constant.IntakeStatusVerified:
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidIntakeStatus, "This intake has already been verified")
	case intake.Status != constant.IntakeStatusEntered:
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidIntakeStatus, "This intake cannot be verified in its current state")
	}
	if donation.Status != constant.DonationStatusVerified {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidDonationStatus, "The associated donation is no longer in verified status")
	}

	items, err := s.donationRepo.GetIntakeItemsForUpdateTx(ctx, tx, donationID, warehouseID)
	if err != nil {
		logger.Error("[VerifyIntakeEntry] get intake items", zap.String("error", err.Error()))
		return nil, errors.Classify(err)
	}
	goods, err := s.goodsItems(ctx, tx, "[VerifyIntakeEntry]", donationID)
	if err != nil {
		return nil, err
	}

	lines, msgs := validateVerification(f, items, goods, clock.Today(s.clock))
	if len(msgs) > 0 {
		logger.Info("[VerifyIntakeEntry] rejected", zap.Uint64("donation_id", donationID), zap.Int("errors", len(msgs)))
		return nil, errors.NewValidationError(msgs)
	}

	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].item.ItemID != lines[j].item.ItemID {
			return lines[i].item.ItemID < lines[j].item.ItemID
		}
		return lines[i].item.ID < lines[j].item.ID
	})

	// Entry-time checks can be days old; re-check numbered lots against the live table under lock.
	for _, v := range lines {
		if v.batchNo == nil {
			continue
		}
		exists, err := s.inventoryRepo.BatchNumberExistsTx(ctx, tx, v.item.ItemID, *v.batchNo)
		if err != nil {
			logger.Error("[VerifyIntakeEntry] check batch number", zap.String("error", err.Error()))
			return nil, errors.Classify(err)
		}
		if exists {
			msgs = append(msgs, fmt.Sprintf("%s: Batch number %q already exists. Please use a unique batch number.",
				goods[v.item.ItemID].item.Name, *v.batchNo))
		}
	}
	if len(msgs) > 0 {
		return nil, errors.NewValidationError(msgs)
	}

	now := s.clock.Now()
	intake.Status = constant.IntakeStatusVerified
	if err := audit.StampVerify(intake, actor, now); err != nil {
		return nil, err
	}
	if err := audit.Stamp(intake, actor, false, now); err != nil {
		return nil, err
	}
	if err := s.donationRepo.UpdateIntakeTx(ctx, tx, intake); err != nil {
		return nil, s.fail("[VerifyIntakeEntry] update intake", err)
	}

	event := rabbitmq.IntakeVerifiedMessage{DonationID: donationID, WarehouseID: warehouseID, VerifiedBy: *intake.VerifyByID, VerifiedAt: now}
	for _, v := range lines {
		batch, err := s.postLine(ctx, tx, intake, v, actor, now)
		if err != nil {
			return nil, s.fail("[VerifyIntakeEntry] post line", err)
		}
		line := rabbitmq.StockLineInfo{WarehouseID: warehouseID, ItemID: v.item.ItemID, Quantity: v.usable}
		if batch != nil {
			line.BatchID = batch.ID
		}
		event.Lines = append(event.Lines, line)
	}

	donation.Status = constant.DonationStatusProcessed
	if err := audit.Stamp(donation, actor, false, now); err != nil {
		return nil, err
	}
	if err := s.donationRepo.UpdateDonationStatusTx(ctx, tx, donation); err != nil {
		return nil, s.fail("[VerifyIntakeEntry] update donation", err)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[VerifyIntakeEntry] commit tx", zap.String("error", err.Error()))
		return nil, errors.Classify(err)
	}
	committed = true

	if s.publisher != nil {
		if err := s.publisher.PublishIntakeVerified(ctx, event); err != nil {
			logger.Error("[VerifyIntakeEntry] publish intake verified", zap.String("error", err.Error()))
		}
	}

	return &model.WorkflowResult{
		Success: true,
		Message: fmt.Sprintf("Intake for Donation #%d verified and inventory updated", donationID),
		Errors:  []string{},
	}, nil
}

// postLine marks one intake line verified and moves its quantities into the lot and the aggregate.
func (s *intakeAppImpl) postLine(ctx context.Context, tx *sqlx.Tx, intake *model.DonationIntake, v *verifiedLine, actor string, now time.Time) (*model.ItemBatch, error) {
	it := v.item
	it.BatchNo = v.batchNo
	it.BatchDate = v.batchDate
	it.ExpiryDate = v.expiryDate
	it.UsableQty = v.usable
	it.DefectiveQty = v.defective
	it.ExpiredQty = v.expired
	it.ExtItemCost = it.AvgUnitValue.Mul(it.TotalQty())
	it.CommentsText = v.comments
	it.Status = constant.IntakeItemStatusVerified
	if err := audit.Stamp(it, actor, false, now); err != nil {
		return nil, err
	}
	if err := s.donationRepo.UpdateIntakeItemTx(ctx, tx, it); err != nil {
		return nil, err
	}

	// Aggregate before batch, the lock order dispatch uses too.
	delta := model.StockDelta{Usable: v.usable, Defective: v.defective, Expired: v.expired}
	if _, err := s.batchApp.PostInventoryTx(ctx, tx, intake.WarehouseID, it.ItemID, it.UOMCode, delta, actor); err != nil {
		return nil, err
	}
	batch, err := s.batchApp.FindOrCreateBatchTx(ctx, tx, &model.BatchRequest{
		WarehouseID:  intake.WarehouseID,
		ItemID:       it.ItemID,
		BatchNo:      v.batchNo,
		BatchDate:    v.batchDate,
		ExpiryDate:   v.expiryDate,
		UOMCode:      it.UOMCode,
		AvgUnitValue: it.AvgUnitValue,
		Delta:        delta,
		Actor:        actor,
	})
	if err != nil {
		return nil, err
	}
	return batch, nil
}

func (s *intakeAppImpl) fail(op string, err error) error {
	out := errors.Classify(err)
	if errors.TypeOf(out) == constant.ErrInternal {
		logger.Error(op, zap.String("error", err.Error()))
	} else {
		logger.Warn(op, zap.String("error", err.Error()))
	}
	return out
}

func (s *intakeAppImpl) warehouse(ctx context.Context, op string, warehouseID uint64) (*model.Warehouse, error) {
	wh, err := s.catalogRepo.GetWarehouse(ctx, warehouseID)
	if err != nil {
		logger.Error(op+" get warehouse", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if wh == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, fmt.Sprintf("Warehouse %d not found", warehouseID))
	}
	if wh.Status != constant.WarehouseStatusActive {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, fmt.Sprintf("Warehouse %s is not active", wh.Name))
	}
	return wh, nil
}

// goodsItems returns the donation's GOODS lines keyed by item. FUNDS lines never reach intake.
func (s *intakeAppImpl) goodsItems(ctx context.Context, tx *sqlx.Tx, op string, donationID uint64) (map[uint64]goodsItem, error) {
	rows, err := s.donationRepo.GetDonationItemsTx(ctx, tx, donationID)
	if err != nil {
		logger.Error(op+" get donation items", zap.String("error", err.Error()))
		return nil, errors.Classify(err)
	}
	goods := make(map[uint64]goodsItem)
	for _, r := range rows {
		if r.DonationType != constant.DonationTypeGoods {
			continue
		}
		item, err := s.catalogRepo.GetItem(ctx, r.ItemID)
		if err != nil {
			logger.Error(op+" get item", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if item == nil {
			return nil, &errors.ItemNotFoundError{ItemID: r.ItemID}
		}
		goods[r.ItemID] = goodsItem{donated: r, item: item}
	}
	if len(goods) == 0 {
		return nil, errors.NewValidationError([]string{"This donation has no GOODS items eligible for intake"})
	}
	return goods, nil
}
